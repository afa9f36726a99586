// Package menu provides the main navigation menu view for the TUI.
package menu

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tripdeck-labs/tripdeck-cli/internal/adapters/driving/tui/messages"
	"github.com/tripdeck-labs/tripdeck-cli/internal/adapters/driving/tui/styles"
	"github.com/tripdeck-labs/tripdeck-cli/internal/core/domain"
)

// Item represents a single menu option.
type Item struct {
	Label string
	View  messages.ViewType
	Quit  bool // If true, selecting this item quits the app
}

// View represents the main menu view. It also renders the departure
// countdown, refreshed by the app's ticker.
type View struct {
	styles    *styles.Styles
	items     []Item
	selected  int
	countdown domain.Countdown
	tripName  string
	width     int
	height    int
	ready     bool
}

// NewView creates a new menu view.
func NewView(s *styles.Styles, tripName string) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles:   s,
		tripName: tripName,
		items: []Item{
			{Label: "Itinerary", View: messages.ViewItinerary},
			{Label: "Bookings", View: messages.ViewBookings},
			{Label: "Guide", View: messages.ViewGuide},
			{Label: "Entertainment", View: messages.ViewEntertainment},
			{Label: "Tasks", View: messages.ViewTasks},
			{Label: "Diary", View: messages.ViewDiary},
			{Label: "Help", View: messages.ViewHelp},
			{Label: "Quit", Quit: true},
		},
		selected: 0,
		width:    80,
		height:   24,
	}
}

// Init initialises the menu view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		return v, nil

	case messages.CountdownTicked:
		v.countdown = msg.Countdown
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.selected > 0 {
				v.selected--
			}
			return v, nil

		case "down", "j":
			if v.selected < len(v.items)-1 {
				v.selected++
			}
			return v, nil

		case "enter":
			item := v.items[v.selected]
			if item.Quit {
				return v, tea.Quit
			}
			return v, func() tea.Msg {
				return messages.ViewChanged{View: item.View}
			}

		case "q":
			return v, tea.Quit
		}
	}

	return v, nil
}

// View renders the menu.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder

	title := v.styles.Title.Render("Tripdeck")
	b.WriteString(title)
	b.WriteString("\n\n")

	subtitle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Render(v.tripName)
	b.WriteString(subtitle)
	b.WriteString("\n")
	b.WriteString(v.renderCountdown())
	b.WriteString("\n\n")

	for i, item := range v.items {
		cursor := "  "
		style := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))

		if i == v.selected {
			cursor = "> "
			style = lipgloss.NewStyle().
				Foreground(lipgloss.Color("86")).
				Bold(true)
		}

		line := cursor + style.Render(item.Label)
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	footer := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Render("[j/k] Navigate  [Enter] Select  [q] Quit")
	b.WriteString(footer)

	return b.String()
}

// renderCountdown formats the departure countdown line.
func (v *View) renderCountdown() string {
	if v.countdown.State == domain.Arrived {
		return v.styles.Success.Render("On the road!")
	}
	return v.styles.Subtitle.Render(fmt.Sprintf(
		"Departure in %dd %02dh %02dm %02ds",
		v.countdown.Days, v.countdown.Hours, v.countdown.Minutes, v.countdown.Seconds,
	))
}

// SetCountdown sets the countdown directly (for testing).
func (v *View) SetCountdown(c domain.Countdown) {
	v.countdown = c
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Selected returns the currently selected index.
func (v *View) Selected() int {
	return v.selected
}

// Countdown returns the last countdown the view received.
func (v *View) Countdown() domain.Countdown {
	return v.countdown
}
