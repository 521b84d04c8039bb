package ui

import "github.com/charmbracelet/lipgloss"

// Color palette: one lime accent over grays.
const (
	ColorLime     = "154" // Primary accent (#AFFF00)
	ColorLimeDim  = "106" // Chips, inactive borders
	ColorWhite    = "255" // Titles
	ColorGray     = "245" // Meta line, labels
	ColorDarkGray = "238" // Card borders, hints
	ColorRed      = "196" // Errors
)

// Styles holds all UI styles for TUI rendering.
type Styles struct {
	// Text styles
	Header lipgloss.Style
	Title  lipgloss.Style
	Meta   lipgloss.Style
	Lyrics lipgloss.Style
	Tag    lipgloss.Style
	Prompt lipgloss.Style
	Dim    lipgloss.Style
	Error  lipgloss.Style

	// Card container
	Card lipgloss.Style
}

// DefaultStyles returns styled components for TUI mode.
func DefaultStyles() Styles {
	return Styles{
		Header: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorLime)),
		Title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorWhite)),
		Meta:   lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGray)),
		Lyrics: lipgloss.NewStyle(),
		Tag: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorLime)).
			Background(lipgloss.Color(ColorDarkGray)).
			Padding(0, 1),
		Prompt: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorLime)),
		Dim:    lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDarkGray)),
		Error:  lipgloss.NewStyle().Foreground(lipgloss.Color(ColorRed)),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ColorLimeDim)).
			Padding(0, 1),
	}
}

// NoColorStyles returns unstyled components for plain mode.
func NoColorStyles() Styles {
	return Styles{
		Header: lipgloss.NewStyle(),
		Title:  lipgloss.NewStyle(),
		Meta:   lipgloss.NewStyle(),
		Lyrics: lipgloss.NewStyle(),
		Tag:    lipgloss.NewStyle(),
		Prompt: lipgloss.NewStyle(),
		Dim:    lipgloss.NewStyle(),
		Error:  lipgloss.NewStyle(),
		Card:   lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1),
	}
}

// GetStyles returns the appropriate styles based on color preference.
func GetStyles(noColor bool) Styles {
	if noColor {
		return NoColorStyles()
	}
	return DefaultStyles()
}
