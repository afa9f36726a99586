// Package tasks provides the preparation view: the pre-trip task list
// grouped by trip leg and the packing checklist grouped by category,
// each with a completion bar.
package tasks

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tripdeck-labs/tripdeck-cli/internal/adapters/driving/tui/messages"
	"github.com/tripdeck-labs/tripdeck-cli/internal/adapters/driving/tui/styles"
	"github.com/tripdeck-labs/tripdeck-cli/internal/core/ports/driving"
)

// Tab selects which list the view shows.
type Tab int

const (
	// TabTasks lists the leg-tagged preparation tasks.
	TabTasks Tab = iota
	// TabPacking lists the packing checklist.
	TabPacking

	tabCount
)

// String returns the tab's display name.
func (t Tab) String() string {
	switch t {
	case TabTasks:
		return "Tasks"
	case TabPacking:
		return "Packing"
	default:
		return "unknown"
	}
}

// View is the preparation view.
type View struct {
	styles      *styles.Styles
	tasks       driving.TaskService
	annotations driving.AnnotationService

	tab      Tab
	selected int
	bar      progress.Model

	adding     bool
	textInput  textinput.Model
	groupInput textinput.Model
	addFocus   int

	err    error
	width  int
	height int
	ready  bool
}

// NewView creates a new preparation view.
func NewView(s *styles.Styles, tasks driving.TaskService, annotations driving.AnnotationService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	textInput := textinput.New()
	textInput.CharLimit = 256

	groupInput := textinput.New()
	groupInput.CharLimit = 64

	return &View{
		styles:      s,
		tasks:       tasks,
		annotations: annotations,
		bar:         progress.New(progress.WithDefaultGradient()),
		textInput:   textInput,
		groupInput:  groupInput,
	}
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// rowCount returns how many entries the active tab has.
func (v *View) rowCount() int {
	if v.tab == TabPacking {
		return len(v.annotations.Checklist())
	}
	return len(v.tasks.Tasks())
}

// Update handles messages for the preparation view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.bar.Width = msg.Width - 8
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

//nolint:gocognit // central key handler for the browse mode
func (v *View) handleBrowseKeys(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}

	case "left", "h":
		if v.tab > 0 {
			v.tab--
			v.selected = 0
		}

	case "right", "l":
		if v.tab < tabCount-1 {
			v.tab++
			v.selected = 0
		}

	case "up", "k":
		if v.selected > 0 {
			v.selected--
		}

	case "down", "j":
		if v.selected < v.rowCount()-1 {
			v.selected++
		}

	case " ", "x", "enter":
		v.toggleSelected()

	case "a":
		v.adding = true
		v.addFocus = 0
		v.textInput.SetValue("")
		v.groupInput.SetValue("")
		if v.tab == TabPacking {
			v.textInput.Placeholder = "Item"
			v.groupInput.Placeholder = "Category (optional)"
		} else {
			v.textInput.Placeholder = "Task"
			v.groupInput.Placeholder = "Leg (optional)"
		}
		return v, v.textInput.Focus()

	case "d":
		v.removeSelected()
	}

	return v, nil
}

func (v *View) toggleSelected() {
	if v.tab == TabPacking {
		items := v.annotations.Checklist()
		if v.selected < len(items) {
			v.annotations.ToggleChecklistItem(items[v.selected].ID)
		}
		return
	}
	list := v.tasks.Tasks()
	if v.selected < len(list) {
		v.tasks.ToggleTask(list[v.selected].ID)
	}
}

func (v *View) removeSelected() {
	if v.tab == TabPacking {
		items := v.annotations.Checklist()
		if v.selected < len(items) {
			v.annotations.RemoveChecklistItem(items[v.selected].ID)
			if v.selected > 0 {
				v.selected--
			}
		}
		return
	}
	list := v.tasks.Tasks()
	if v.selected < len(list) {
		v.tasks.RemoveTask(list[v.selected].ID)
		if v.selected > 0 {
			v.selected--
		}
	}
}

func (v *View) handleAddKeys(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "esc":
		v.adding = false
		v.textInput.Blur()
		v.groupInput.Blur()
		return v, nil

	case "tab", "down", "shift+tab", "up":
		if v.addFocus == 0 {
			v.addFocus = 1
			v.textInput.Blur()
			return v, v.groupInput.Focus()
		}
		v.addFocus = 0
		v.groupInput.Blur()
		return v, v.textInput.Focus()

	case "enter":
		text := strings.TrimSpace(v.textInput.Value())
		if text == "" {
			return v, nil
		}
		group := strings.TrimSpace(v.groupInput.Value())
		var err error
		if v.tab == TabPacking {
			_, err = v.annotations.AddChecklistItem(text, group)
		} else {
			_, err = v.tasks.AddTask(text, group)
		}
		if err != nil {
			v.err = err
			return v, nil
		}
		v.adding = false
		v.textInput.Blur()
		v.groupInput.Blur()
		return v, nil

	default:
		var cmd tea.Cmd
		if v.addFocus == 0 {
			v.textInput, cmd = v.textInput.Update(msg)
		} else {
			v.groupInput, cmd = v.groupInput.Update(msg)
		}
		return v, cmd
	}
}

// View renders the preparation view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	if v.adding {
		var b strings.Builder
		b.WriteString(v.styles.Title.Render("Add to " + v.tab.String()))
		b.WriteString("\n\n")
		b.WriteString(v.textInput.View())
		b.WriteString("\n")
		b.WriteString(v.groupInput.View())
		b.WriteString("\n\n")
		b.WriteString(v.styles.Help.Render("[tab] next field  [enter] save  [esc] cancel"))
		return b.String()
	}

	var b strings.Builder
	b.WriteString(v.renderTabs())
	b.WriteString("\n\n")

	done, total := v.progressCounts()
	b.WriteString(v.styles.Title.Render(fmt.Sprintf("%s  %d/%d", v.tab, done, total)))
	b.WriteString("\n")
	ratio := 0.0
	if total > 0 {
		ratio = float64(done) / float64(total)
	}
	b.WriteString(v.bar.ViewAs(ratio))
	b.WriteString("\n\n")

	if v.err != nil {
		b.WriteString(v.styles.Error.Render("Error: " + v.err.Error()))
		b.WriteString("\n\n")
	}

	if v.tab == TabPacking {
		b.WriteString(v.renderChecklist())
	} else {
		b.WriteString(v.renderTasks())
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[h/l] tab  [j/k] move  [space] toggle  [a] add  [d] delete  [esc] back"))
	return b.String()
}

func (v *View) progressCounts() (done, total int) {
	if v.tab == TabPacking {
		items := v.annotations.Checklist()
		for _, it := range items {
			if it.Checked {
				done++
			}
		}
		return done, len(items)
	}
	prog := v.tasks.Progress()
	return prog.Done, prog.Total
}

func (v *View) renderTabs() string {
	parts := make([]string, 0, tabCount)
	for t := TabTasks; t < tabCount; t++ {
		label := t.String()
		if t == v.tab {
			parts = append(parts, v.styles.Selected.Render(" "+label+" "))
		} else {
			parts = append(parts, v.styles.Muted.Render(" "+label+" "))
		}
	}
	return strings.Join(parts, " ")
}

func (v *View) renderTasks() string {
	var b strings.Builder

	list := v.tasks.Tasks()
	if len(list) == 0 {
		b.WriteString(v.styles.Muted.Render("No tasks. Press 'a' to add one."))
		b.WriteString("\n")
	}

	lastLeg := "\x00"
	for i, t := range list {
		if t.Leg != lastLeg {
			lastLeg = t.Leg
			b.WriteString(v.styles.Subtitle.Render(groupLabel(t.Leg)))
			b.WriteString("\n")
		}
		b.WriteString(v.renderRow(i, t.Text, t.Done))
	}

	return b.String()
}

func (v *View) renderChecklist() string {
	var b strings.Builder

	items := v.annotations.Checklist()
	if len(items) == 0 {
		b.WriteString(v.styles.Muted.Render("Nothing to pack yet. Press 'a' to add an item."))
		b.WriteString("\n")
	}

	lastCategory := "\x00"
	for i, it := range items {
		if it.Category != lastCategory {
			lastCategory = it.Category
			b.WriteString(v.styles.Subtitle.Render(groupLabel(it.Category)))
			b.WriteString("\n")
		}
		b.WriteString(v.renderRow(i, it.Text, it.Checked))
	}

	return b.String()
}

func (v *View) renderRow(i int, text string, done bool) string {
	var b strings.Builder

	cursor := "  "
	if i == v.selected {
		cursor = "> "
	}
	mark := "[ ]"
	if done {
		mark = v.styles.Success.Render("[✓]")
		text = v.styles.Muted.Render(text)
	}

	line := fmt.Sprintf("%s%s %s", cursor, mark, text)
	if i == v.selected {
		b.WriteString(v.styles.Selected.Render(line))
	} else {
		b.WriteString(v.styles.Normal.Render(line))
	}
	b.WriteString("\n")

	return b.String()
}

func groupLabel(group string) string {
	if group == "" {
		return "general"
	}
	return group
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.bar.Width = width - 8
	v.ready = true
}

// Reset returns the view to its initial state.
func (v *View) Reset() {
	v.adding = false
	v.err = nil
	v.textInput.Blur()
	v.groupInput.Blur()
}

// CurrentTab returns the active tab (for testing).
func (v *View) CurrentTab() Tab {
	return v.tab
}

// Selected returns the cursor position (for testing).
func (v *View) Selected() int {
	return v.selected
}
