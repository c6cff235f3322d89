// Package styles renders CLI output with lipgloss.
package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconGlobe     = "" // browser/web
	IconVersion   = "" // tag
	IconGitBranch = "" // git branch
	IconCalendar  = "" // calendar
	IconGithub    = "" // github
	IconGo        = "" // go gopher
	IconKey       = "" // key
	IconServer    = "" // server

	// Doctor / diagnostics
	IconDoctor  = "" // stethoscope
	IconCheck   = "" // check
	IconX       = "" // x
	IconWarning = "" // warning
	IconPackage = "" // archive/package
	IconConfig  = "" // config
	IconFolder  = "" // folder
	IconCode    = "" // code
)
