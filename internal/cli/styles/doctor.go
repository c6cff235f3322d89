package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// DoctorRenderer renders the doctor report.
type DoctorRenderer struct {
	theme *Theme
}

// NewDoctorRenderer creates a doctor renderer.
func NewDoctorRenderer(theme *Theme) *DoctorRenderer {
	return &DoctorRenderer{theme: theme}
}

// DoctorStatus is the outcome of one check.
type DoctorStatus int

const (
	DoctorOK DoctorStatus = iota
	DoctorWarn
	DoctorFail
)

// DoctorCheck is one line of the report.
type DoctorCheck struct {
	Name   string
	Status DoctorStatus
	Detail string
}

// DoctorSection groups checks under a heading.
type DoctorSection struct {
	Title  string
	Checks []DoctorCheck
}

// DoctorReport is everything the doctor command found.
type DoctorReport struct {
	Sections []DoctorSection
}

// OK reports whether no check failed. Warnings do not count.
func (r DoctorReport) OK() bool {
	for _, s := range r.Sections {
		for _, c := range s.Checks {
			if c.Status == DoctorFail {
				return false
			}
		}
	}
	return true
}

// Render renders report.
func (r *DoctorRenderer) Render(report DoctorReport) string {
	sections := make([]string, 0, len(report.Sections))
	for _, s := range report.Sections {
		sections = append(sections, r.renderSection(s))
	}
	return lipgloss.JoinVertical(lipgloss.Left, r.renderHeader(report.OK()), "", strings.Join(sections, "\n\n"))
}

func (r *DoctorRenderer) renderHeader(ok bool) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	statusStyle := r.theme.SuccessStyle
	statusText := "OK"
	if !ok {
		statusStyle = r.theme.ErrorStyle
		statusText = "Needs attention"
	}

	title := fmt.Sprintf("%s %s", iconStyle.Render(IconDoctor), r.theme.Title.Render("Doctor"))
	badge := r.theme.BadgeMuted.Render(statusStyle.Render(statusText))
	return lipgloss.JoinHorizontal(lipgloss.Center, title, " ", badge)
}

func (r *DoctorRenderer) renderSection(s DoctorSection) string {
	lines := make([]string, 0, len(s.Checks))
	for _, c := range s.Checks {
		lines = append(lines, r.renderCheck(c))
	}
	header := r.theme.BoxHeader.Render(fmt.Sprintf("%s %s", r.theme.Highlight.Render(IconPackage), s.Title))
	return r.theme.Box.Render(header + "\n" + strings.Join(lines, "\n"))
}

func (r *DoctorRenderer) renderCheck(c DoctorCheck) string {
	icon, style := IconCheck, r.theme.SuccessStyle
	switch c.Status {
	case DoctorWarn:
		icon, style = IconWarning, r.theme.WarningStyle
	case DoctorFail:
		icon, style = IconX, r.theme.ErrorStyle
	}

	line := fmt.Sprintf("%s %s", style.Render(icon), r.theme.Normal.Render(c.Name))
	if c.Detail != "" {
		line += " " + r.theme.Subtle.Render(c.Detail)
	}
	return line
}
