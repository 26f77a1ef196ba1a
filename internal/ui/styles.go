package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/wahlandcase/qd/internal/models"
)

// Note: Warp terminal fix is in internal/termfix package, imported first in cmd/qd

var (
	ColorCyan     = lipgloss.Color("#00FFFF")
	ColorGreen    = lipgloss.Color("#00FF00")
	ColorYellow   = lipgloss.Color("#FFFF00")
	ColorRed      = lipgloss.Color("#FF0000")
	ColorMagenta  = lipgloss.Color("#FF00FF")
	ColorDarkGray = lipgloss.Color("8") // ANSI 8
)

// StatusColor returns the color used for a change status
func StatusColor(status models.ChangeStatus) lipgloss.Color {
	switch status {
	case models.StatusAdded:
		return ColorGreen
	case models.StatusDeleted:
		return ColorRed
	case models.StatusModified:
		return ColorYellow
	default:
		return ColorDarkGray
	}
}

// Styles are the lipgloss styles bound to one output renderer, so that
// the color profile of that output is respected
type Styles struct {
	Bold      lipgloss.Style
	Dim       lipgloss.Style
	Title     lipgloss.Style
	Hash      lipgloss.Style
	Added     lipgloss.Style
	Removed   lipgloss.Style
	Hunk      lipgloss.Style
	Meta      lipgloss.Style
	Warning   lipgloss.Style
	Error     lipgloss.Style
	Header    lipgloss.Style
	Selected  lipgloss.Style
	renderer  *lipgloss.Renderer
	statusFor map[models.ChangeStatus]lipgloss.Style
}

// NewStyles builds the qd styles on the given renderer
func NewStyles(r *lipgloss.Renderer) Styles {
	s := Styles{
		Bold:     r.NewStyle().Bold(true),
		Dim:      r.NewStyle().Foreground(ColorDarkGray),
		Title:    r.NewStyle().Foreground(ColorCyan).Bold(true),
		Hash:     r.NewStyle().Foreground(ColorYellow).Bold(true),
		Added:    r.NewStyle().Foreground(ColorGreen),
		Removed:  r.NewStyle().Foreground(ColorRed),
		Hunk:     r.NewStyle().Foreground(ColorCyan),
		Meta:     r.NewStyle().Bold(true),
		Warning:  r.NewStyle().Foreground(ColorYellow),
		Error:    r.NewStyle().Foreground(ColorRed),
		Header:   r.NewStyle().Bold(true),
		Selected: r.NewStyle().Foreground(ColorMagenta).Bold(true),
		renderer: r,
	}
	s.statusFor = map[models.ChangeStatus]lipgloss.Style{
		models.StatusAdded:    r.NewStyle().Foreground(StatusColor(models.StatusAdded)),
		models.StatusDeleted:  r.NewStyle().Foreground(StatusColor(models.StatusDeleted)),
		models.StatusModified: r.NewStyle().Foreground(StatusColor(models.StatusModified)),
		models.StatusBinary:   r.NewStyle().Foreground(StatusColor(models.StatusBinary)),
	}
	return s
}

// Status returns the style for a change status
func (s Styles) Status(status models.ChangeStatus) lipgloss.Style {
	if style, ok := s.statusFor[status]; ok {
		return style
	}
	return s.renderer.NewStyle()
}

// Renderer returns the renderer the styles were built on
func (s Styles) Renderer() *lipgloss.Renderer {
	return s.renderer
}
