// Package styles provides the colour theme and text styles for the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme is the colour palette. The defaults lean on the trip's
// geography: Cantabrian sea tones with txakoli and sunset accents.
type Theme struct {
	// Primary colours headers and the day title.
	Primary lipgloss.Color

	// Accent colours section subtitles and group labels.
	Accent lipgloss.Color

	// Foreground is the default text colour.
	Foreground lipgloss.Color

	// Muted is for details, hints and help lines.
	Muted lipgloss.Color

	// Highlight is the background of the selected row.
	Highlight lipgloss.Color

	// Success marks confirmed bookings and done tasks.
	Success lipgloss.Color

	// Warning marks pending bookings.
	Warning lipgloss.Color

	// Error marks todo bookings and failures.
	Error lipgloss.Color
}

// DefaultTheme returns the built-in palette.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:    lipgloss.Color("#2AA4BF"), // Cantabrian teal
		Accent:     lipgloss.Color("#E07A5F"), // Terracotta
		Foreground: lipgloss.Color("#E8E3D6"), // Sand
		Muted:      lipgloss.Color("#73878C"), // Sea mist
		Highlight:  lipgloss.Color("#15505E"), // Deep water
		Success:    lipgloss.Color("#8FBF5F"), // Txakoli green
		Warning:    lipgloss.Color("#E6AA3C"), // Sunset amber
		Error:      lipgloss.Color("#D64550"), // Piquillo red
	}
}

// Styles holds the pre-built lipgloss styles the views render with.
type Styles struct {
	theme *Theme

	// Title heads a view: the day header, the list title.
	Title lipgloss.Style

	// Subtitle heads a section within a view: "Bookings", a trip leg.
	Subtitle lipgloss.Style

	// Normal is plain list text.
	Normal lipgloss.Style

	// Muted is detail text: descriptions, codes, hints.
	Muted lipgloss.Style

	// Selected is the cursor row.
	Selected lipgloss.Style

	// Success, Warning and Error colour status badges and messages.
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style

	// Help is the keybinding line at the bottom of each view.
	Help lipgloss.Style
}

// NewStyles builds the style set from a theme. A nil theme gets the
// default palette.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	return &Styles{
		theme: theme,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		Subtitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Accent),

		Normal: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Foreground).
			Background(theme.Highlight),

		Success: lipgloss.NewStyle().
			Foreground(theme.Success),

		Warning: lipgloss.NewStyle().
			Foreground(theme.Warning),

		Error: lipgloss.NewStyle().
			Foreground(theme.Error),

		Help: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Italic(true),
	}
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}
