// Package diary provides the travel diary view: dated entries with
// embedded photos, written during the trip.
package diary

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tripdeck-labs/tripdeck-cli/internal/adapters/driving/tui/messages"
	"github.com/tripdeck-labs/tripdeck-cli/internal/adapters/driving/tui/styles"
	"github.com/tripdeck-labs/tripdeck-cli/internal/core/domain"
	"github.com/tripdeck-labs/tripdeck-cli/internal/core/ports/driving"
)

// Fields of the add-entry form, in tab order.
const (
	addFieldTitle = iota
	addFieldText
	addFieldLocation
	addFieldImage
	addFieldCount
)

// View is the diary view.
type View struct {
	styles *styles.Styles
	diary  driving.DiaryService

	selected int

	adding    bool
	addInputs [addFieldCount]textinput.Model
	addFocus  int

	err    error
	width  int
	height int
	ready  bool
}

// NewView creates a new diary view.
func NewView(s *styles.Styles, diary driving.DiaryService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	v := &View{
		styles: s,
		diary:  diary,
	}

	placeholders := [addFieldCount]string{"Title", "What happened", "Location (optional)", "Photo path (optional)"}
	for i := range v.addInputs {
		in := textinput.New()
		in.Placeholder = placeholders[i]
		in.CharLimit = 1024
		v.addInputs[i] = in
	}

	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the diary view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		return v, nil

	case tea.KeyMsg:
		if v.adding {
			return v.handleAddKeys(msg)
		}
		return v.handleBrowseKeys(msg)
	}

	return v, nil
}

func (v *View) handleBrowseKeys(msg tea.KeyMsg) (*View, tea.Cmd) {
	entries := v.diary.Entries()

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

	case "a":
		v.adding = true
		v.addFocus = 0
		for i := range v.addInputs {
			v.addInputs[i].SetValue("")
		}
		return v, v.addInputs[0].Focus()

	case "d":
		if v.selected < len(entries) {
			v.diary.RemoveEntry(entries[v.selected].ID)
			if v.selected > 0 {
				v.selected--
			}
		}
	}

	return v, nil
}

func (v *View) handleAddKeys(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "esc":
		v.adding = false
		v.blurAddInputs()
		return v, nil

	case "tab", "down":
		v.addInputs[v.addFocus].Blur()
		v.addFocus = (v.addFocus + 1) % addFieldCount
		return v, v.addInputs[v.addFocus].Focus()

	case "shift+tab", "up":
		v.addInputs[v.addFocus].Blur()
		v.addFocus = (v.addFocus + addFieldCount - 1) % addFieldCount
		return v, v.addInputs[v.addFocus].Focus()

	case "enter":
		return v.saveEntry()

	default:
		var cmd tea.Cmd
		v.addInputs[v.addFocus], cmd = v.addInputs[v.addFocus].Update(msg)
		return v, cmd
	}
}

func (v *View) saveEntry() (*View, tea.Cmd) {
	title := strings.TrimSpace(v.addInputs[addFieldTitle].Value())
	if title == "" {
		return v, nil
	}

	entry := domain.DiaryEntry{
		Title:    title,
		Text:     v.addInputs[addFieldText].Value(),
		Location: v.addInputs[addFieldLocation].Value(),
	}

	if path := strings.TrimSpace(v.addInputs[addFieldImage].Value()); path != "" {
		img, err := v.diary.AttachImage(path)
		if err != nil {
			v.err = err
			return v, nil
		}
		entry.Images = append(entry.Images, img)
	}

	if _, err := v.diary.AddEntry(entry); err != nil {
		v.err = err
		return v, nil
	}

	v.adding = false
	v.err = nil
	v.blurAddInputs()
	return v, nil
}

func (v *View) blurAddInputs() {
	for i := range v.addInputs {
		v.addInputs[i].Blur()
	}
}

// View renders the diary view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	if v.adding {
		var b strings.Builder
		b.WriteString(v.styles.Title.Render("New diary entry"))
		b.WriteString("\n\n")
		if v.err != nil {
			b.WriteString(v.styles.Error.Render("Error: " + v.err.Error()))
			b.WriteString("\n\n")
		}
		for i := range v.addInputs {
			b.WriteString(v.addInputs[i].View())
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(v.styles.Help.Render("[tab] next field  [enter] save  [esc] cancel"))
		return b.String()
	}

	var b strings.Builder
	b.WriteString(v.styles.Title.Render("Diary"))
	b.WriteString("\n\n")

	if v.err != nil {
		b.WriteString(v.styles.Error.Render("Error: " + v.err.Error()))
		b.WriteString("\n\n")
	}

	entries := v.diary.Entries()
	if len(entries) == 0 {
		b.WriteString(v.styles.Muted.Render("No entries yet. Press 'a' to write one."))
		b.WriteString("\n")
	}

	for i, e := range entries {
		cursor := "  "
		if i == v.selected {
			cursor = "> "
		}

		line := fmt.Sprintf("%s%s  %s", cursor, e.Date, e.Title)
		if len(e.Images) > 0 {
			line += v.styles.Muted.Render(fmt.Sprintf("  [%d photo(s)]", len(e.Images)))
		}

		if i == v.selected {
			b.WriteString(v.styles.Selected.Render(line))
			b.WriteString("\n")
			if e.Location != "" {
				b.WriteString(v.styles.Muted.Render("    " + e.Location))
				b.WriteString("\n")
			}
			if e.Text != "" {
				b.WriteString(v.styles.Normal.Render("    " + e.Text))
				b.WriteString("\n")
			}
		} else {
			b.WriteString(v.styles.Normal.Render(line))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[j/k] move  [a] add  [d] delete  [esc] back"))
	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Reset returns the view to its initial state.
func (v *View) Reset() {
	v.adding = false
	v.err = nil
	v.blurAddInputs()
}

// Selected returns the cursor position (for testing).
func (v *View) Selected() int {
	return v.selected
}
