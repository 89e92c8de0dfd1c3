// Package style is the only place lipgloss and termenv are imported. Help
// and error output use the semantic helpers on Sheet; Echo uses the fixed
// color tables in colors.go.
//
// When disabled, all helpers return the input string unchanged with no ANSI
// codes.
package style

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Sheet holds the semantic styles for one application instance. Each App
// builds its own Sheet at construction time, so the color setting of one
// instance never bleeds into another.
type Sheet struct {
	enabled bool

	header lipgloss.Style
	info   lipgloss.Style
	muted  lipgloss.Style
	err    lipgloss.Style
}

// NewSheet builds a style sheet. It respects the NO_COLOR and HYPE_NO_COLOR
// environment variables; if either is set, styling is disabled regardless of
// the enable parameter.
func NewSheet(enable bool) *Sheet {
	if os.Getenv("NO_COLOR") != "" || os.Getenv("HYPE_NO_COLOR") != "" {
		enable = false
	}

	s := &Sheet{enabled: enable}
	if enable {
		// Pin the profile so rendering does not depend on TTY detection.
		lipgloss.SetColorProfile(termenv.ANSI256)

		s.header = lipgloss.NewStyle().Bold(true)
		s.info = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
		s.muted = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
		s.err = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	}
	return s
}

// Enabled returns whether this sheet renders ANSI codes. A nil sheet is
// treated as disabled.
func (s *Sheet) Enabled() bool {
	return s != nil && s.enabled
}

// Header styles section headers in help output.
func (s *Sheet) Header(text string) string {
	if !s.Enabled() {
		return text
	}
	return s.header.Render(text)
}

// Info styles command names and usage lines.
func (s *Sheet) Info(text string) string {
	if !s.Enabled() {
		return text
	}
	return s.info.Render(text)
}

// Muted styles secondary information.
func (s *Sheet) Muted(text string) string {
	if !s.Enabled() {
		return text
	}
	return s.muted.Render(text)
}

// Error styles error messages.
func (s *Sheet) Error(text string) string {
	if !s.Enabled() {
		return text
	}
	return s.err.Render(text)
}
