// Package bookings provides the cross-day bookings overview for the TUI.
//
// The list is a recomputed aggregate of the merged per-day state; every
// entry carries its composite key so actions address the right record
// regardless of filtering.
package bookings

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tripdeck-labs/tripdeck-cli/internal/adapters/driving/tui/messages"
	"github.com/tripdeck-labs/tripdeck-cli/internal/adapters/driving/tui/styles"
	"github.com/tripdeck-labs/tripdeck-cli/internal/core/domain"
	"github.com/tripdeck-labs/tripdeck-cli/internal/core/ports/driving"
)

// Filter selects which bookings the list shows.
type Filter int

const (
	// FilterAll shows every booking.
	FilterAll Filter = iota
	// FilterPending shows only bookings still needing action.
	FilterPending
)

// copyFlashDuration is how long the "copied" confirmation shows.
const copyFlashDuration = 2 * time.Second

// View is the aggregated bookings view.
type View struct {
	styles      *styles.Styles
	planner     driving.PlannerService
	annotations driving.AnnotationService

	filter       Filter
	selected     int
	copyFlashKey string

	// Trip-wide notes editor.
	editingNotes bool
	notesInput   textinput.Model

	err    error
	width  int
	height int
	ready  bool
}

// NewView creates a new bookings view.
func NewView(s *styles.Styles, planner driving.PlannerService, annotations driving.AnnotationService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	notesInput := textinput.New()
	notesInput.Placeholder = "Notes for the whole trip"
	notesInput.CharLimit = 1024

	return &View{
		styles:      s,
		planner:     planner,
		annotations: annotations,
		notesInput:  notesInput,
	}
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// entries returns the list under the active filter.
func (v *View) entries() []domain.DayBooking {
	if v.filter == FilterPending {
		return v.planner.PendingBookings()
	}
	return v.planner.AllBookings()
}

// Update handles messages for the bookings view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		return v, nil

	case messages.CodeCopied:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.copyFlashKey = msg.Key
		key := msg.Key
		return v, tea.Tick(copyFlashDuration, func(time.Time) tea.Msg {
			return messages.CopyFlashExpired{Key: key}
		})

	case messages.CopyFlashExpired:
		if v.copyFlashKey == msg.Key {
			v.copyFlashKey = ""
		}
		return v, nil

	case tea.KeyMsg:
		if v.editingNotes {
			return v.handleNotesKeys(msg)
		}
		return v.handleListKeys(msg)
	}

	return v, nil
}

func (v *View) handleListKeys(msg tea.KeyMsg) (*View, tea.Cmd) {
	entries := v.entries()

	switch msg.String() {
	case "esc":
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}

	case "up", "k":
		if v.selected > 0 {
			v.selected--
		}

	case "down", "j":
		if v.selected < len(entries)-1 {
			v.selected++
		}

	case "p":
		if v.filter == FilterAll {
			v.filter = FilterPending
		} else {
			v.filter = FilterAll
		}
		v.selected = 0

	case "c":
		if v.selected < len(entries) && entries[v.selected].Booking.Code != "" {
			e := entries[v.selected]
			return v, func() tea.Msg {
				err := clipboard.WriteAll(e.Booking.Code)
				return messages.CodeCopied{Key: e.Key, Code: e.Booking.Code, Err: err}
			}
		}

	case "n":
		v.editingNotes = true
		v.notesInput.SetValue(v.annotations.TripNotes())
		return v, v.notesInput.Focus()
	}

	return v, nil
}

func (v *View) handleNotesKeys(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "esc":
		v.editingNotes = false
		v.notesInput.Blur()
		return v, nil

	case "enter":
		v.annotations.SetTripNotes(v.notesInput.Value())
		v.editingNotes = false
		v.notesInput.Blur()
		return v, nil

	default:
		var cmd tea.Cmd
		v.notesInput, cmd = v.notesInput.Update(msg)
		return v, cmd
	}
}

// View renders the bookings view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	if v.editingNotes {
		var b strings.Builder
		b.WriteString(v.styles.Title.Render("Trip notes"))
		b.WriteString("\n\n")
		b.WriteString(v.notesInput.View())
		b.WriteString("\n\n")
		b.WriteString(v.styles.Help.Render("[enter] save  [esc] cancel"))
		return b.String()
	}

	var b strings.Builder

	title := "All bookings"
	if v.filter == FilterPending {
		title = "Bookings needing action"
	}
	b.WriteString(v.styles.Title.Render(title))
	b.WriteString("\n\n")

	if v.err != nil {
		b.WriteString(v.styles.Error.Render("Error: " + v.err.Error()))
		b.WriteString("\n\n")
	}

	entries := v.entries()
	if len(entries) == 0 {
		if v.filter == FilterPending {
			b.WriteString(v.styles.Success.Render("Everything is booked. Nothing left to do."))
		} else {
			b.WriteString(v.styles.Muted.Render("No bookings."))
		}
		b.WriteString("\n")
	}

	lastDay := -1
	for i, e := range entries {
		if e.DayIndex != lastDay {
			lastDay = e.DayIndex
			b.WriteString(v.styles.Subtitle.Render(e.DayDate))
			b.WriteString("\n")
		}
		b.WriteString(v.renderEntry(i, e))
	}

	if notes := v.annotations.TripNotes(); notes != "" {
		b.WriteString("\n")
		b.WriteString(v.styles.Subtitle.Render("Trip notes"))
		b.WriteString("\n")
		b.WriteString(v.styles.Normal.Render("  " + notes))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[j/k] move  [p] pending only  [c] copy code  [n] trip notes  [esc] back"))
	return b.String()
}

func (v *View) renderEntry(i int, e domain.DayBooking) string {
	var b strings.Builder

	cursor := "  "
	if i == v.selected {
		cursor = "> "
	}

	bk := e.Booking
	line := fmt.Sprintf("%s[%s] %s %s", cursor, bk.Type.Description(), bk.Name, v.statusBadge(bk.Status))
	if bk.Code != "" {
		code := bk.Code
		if v.copyFlashKey == e.Key {
			code += " " + v.styles.Success.Render("(copied)")
		}
		line += v.styles.Muted.Render("  " + code)
	}

	if i == v.selected {
		b.WriteString(v.styles.Selected.Render(line))
		b.WriteString("\n")
		if bk.Time != "" {
			b.WriteString(v.styles.Muted.Render("    " + bk.Time))
			b.WriteString("\n")
		}
		if bk.Price != "" {
			b.WriteString(v.styles.Muted.Render("    " + bk.Price))
			b.WriteString("\n")
		}
	} else {
		b.WriteString(v.styles.Normal.Render(line))
		b.WriteString("\n")
	}

	return b.String()
}

func (v *View) statusBadge(s domain.BookingStatus) string {
	switch s {
	case domain.StatusConfirmed:
		return v.styles.Success.Render("✓")
	case domain.StatusPending:
		return v.styles.Warning.Render("~")
	case domain.StatusTodo:
		return v.styles.Error.Render("!")
	default:
		return ""
	}
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Reset returns the view to its initial browse state.
func (v *View) Reset() {
	v.filter = FilterAll
	v.selected = 0
	v.editingNotes = false
	v.copyFlashKey = ""
	v.err = nil
	v.notesInput.Blur()
}

// CurrentFilter returns the active filter (for testing).
func (v *View) CurrentFilter() Filter {
	return v.filter
}

// Selected returns the cursor position (for testing).
func (v *View) Selected() int {
	return v.selected
}
