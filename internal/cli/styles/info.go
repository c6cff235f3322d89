package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/tabshell/internal/domain/build"
)

// Field is one key/value line.
type Field struct {
	Icon  string
	Key   string
	Value string
}

// InfoRenderer renders key/value listings.
type InfoRenderer struct {
	theme *Theme
}

// NewInfoRenderer creates an info renderer.
func NewInfoRenderer(theme *Theme) *InfoRenderer {
	return &InfoRenderer{theme: theme}
}

// Render renders fields aligned on their keys.
func (r *InfoRenderer) Render(fields []Field) string {
	width := 0
	for _, f := range fields {
		width = max(width, lipgloss.Width(f.Key))
	}

	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	keyStyle := r.theme.Subtle.Width(width)
	lines := make([]string, 0, len(fields))
	for _, f := range fields {
		icon := f.Icon
		if icon == "" {
			icon = " "
		}
		lines = append(lines, fmt.Sprintf("%s %s  %s",
			iconStyle.Render(icon), keyStyle.Render(f.Key), r.theme.Highlight.Render(f.Value)))
	}
	return strings.Join(lines, "\n")
}

// RenderBuild renders build information.
func (r *InfoRenderer) RenderBuild(info build.Info) string {
	return r.Render([]Field{
		{IconVersion, "Version", info.Version},
		{IconGitBranch, "Commit", info.Commit},
		{IconCalendar, "Built", info.BuildDate},
		{IconGo, "Go", info.GoVersion},
		{IconGithub, "Repository", build.RepoURL()},
	})
}

// RenderError renders err on one line.
func (r *InfoRenderer) RenderError(err error) string {
	return fmt.Sprintf("%s %s", r.theme.ErrorStyle.Render(IconX), r.theme.Normal.Render(err.Error()))
}

// RenderSuccess renders msg on one line.
func (r *InfoRenderer) RenderSuccess(msg string) string {
	return fmt.Sprintf("%s %s", r.theme.SuccessStyle.Render(IconCheck), r.theme.Normal.Render(msg))
}
