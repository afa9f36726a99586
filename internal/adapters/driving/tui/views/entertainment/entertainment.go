// Package entertainment provides the films, series and reading-list
// view for the long train and car hours of the trip.
package entertainment

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

// Tab selects which list the view shows.
type Tab int

const (
	// TabFilms lists film suggestions.
	TabFilms Tab = iota
	// TabSeries lists TV series suggestions.
	TabSeries
	// TabReading lists articles and long reads.
	TabReading

	tabCount
)

// String returns the tab's display name.
func (t Tab) String() string {
	switch t {
	case TabFilms:
		return "Films"
	case TabSeries:
		return "Series"
	case TabReading:
		return "Reading"
	default:
		return "unknown"
	}
}

// View is the entertainment view. Films can be marked watched and
// extended with custom entries; series and reading are baseline-only.
type View struct {
	styles      *styles.Styles
	planner     driving.PlannerService
	annotations driving.AnnotationService

	tab      Tab
	selected int

	adding     bool
	titleInput textinput.Model
	whereInput textinput.Model
	addFocus   int

	err    error
	width  int
	height int
	ready  bool
}

// NewView creates a new entertainment view.
func NewView(s *styles.Styles, planner driving.PlannerService, annotations driving.AnnotationService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	titleInput := textinput.New()
	titleInput.Placeholder = "Title"
	titleInput.CharLimit = 256

	whereInput := textinput.New()
	whereInput.Placeholder = "Where to watch"
	whereInput.CharLimit = 128

	return &View{
		styles:      s,
		planner:     planner,
		annotations: annotations,
		titleInput:  titleInput,
		whereInput:  whereInput,
	}
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

func (v *View) rowCount() int {
	switch v.tab {
	case TabFilms:
		return len(v.planner.Films())
	case TabSeries:
		return len(v.planner.Trip().Guide.Series)
	case TabReading:
		return len(v.planner.Trip().Guide.ReadingList)
	default:
		return 0
	}
}

// Update handles messages for the entertainment view.
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

	case " ", "x":
		if v.tab == TabFilms {
			if key := v.selectedFilmKey(); key != "" {
				v.annotations.ToggleVisited(key)
			}
		}

	case "a":
		if v.tab == TabFilms {
			v.adding = true
			v.addFocus = 0
			v.titleInput.SetValue("")
			v.whereInput.SetValue("")
			return v, v.titleInput.Focus()
		}

	case "d":
		if v.tab == TabFilms {
			films := v.planner.Films()
			if v.selected < len(films) && films[v.selected].IsCustom {
				v.annotations.RemoveFilm(films[v.selected].ID)
				if v.selected > 0 {
					v.selected--
				}
			}
		}
	}

	return v, nil
}

func (v *View) handleAddKeys(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "esc":
		v.adding = false
		v.titleInput.Blur()
		v.whereInput.Blur()
		return v, nil

	case "tab", "down", "shift+tab", "up":
		if v.addFocus == 0 {
			v.addFocus = 1
			v.titleInput.Blur()
			return v, v.whereInput.Focus()
		}
		v.addFocus = 0
		v.whereInput.Blur()
		return v, v.titleInput.Focus()

	case "enter":
		title := strings.TrimSpace(v.titleInput.Value())
		if title == "" {
			return v, nil
		}
		_, err := v.annotations.AddFilm(domain.Film{
			Title:     title,
			Streaming: v.whereInput.Value(),
		})
		if err != nil {
			v.err = err
			return v, nil
		}
		v.adding = false
		v.titleInput.Blur()
		v.whereInput.Blur()
		return v, nil

	default:
		var cmd tea.Cmd
		if v.addFocus == 0 {
			v.titleInput, cmd = v.titleInput.Update(msg)
		} else {
			v.whereInput, cmd = v.whereInput.Update(msg)
		}
		return v, cmd
	}
}

func (v *View) selectedFilmKey() string {
	films := v.planner.Films()
	if v.selected >= len(films) {
		return ""
	}
	if films[v.selected].IsCustom {
		return domain.CustomKey("film", films[v.selected].ID)
	}
	return domain.FilmKey(v.selected)
}

// View renders the entertainment view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	if v.adding {
		var b strings.Builder
		b.WriteString(v.styles.Title.Render("Add film"))
		b.WriteString("\n\n")
		b.WriteString(v.titleInput.View())
		b.WriteString("\n")
		b.WriteString(v.whereInput.View())
		b.WriteString("\n\n")
		b.WriteString(v.styles.Help.Render("[tab] next field  [enter] save  [esc] cancel"))
		return b.String()
	}

	var b strings.Builder
	b.WriteString(v.renderTabs())
	b.WriteString("\n\n")

	if v.err != nil {
		b.WriteString(v.styles.Error.Render("Error: " + v.err.Error()))
		b.WriteString("\n\n")
	}

	switch v.tab {
	case TabFilms:
		b.WriteString(v.renderFilms())
	case TabSeries:
		b.WriteString(v.renderSeries())
	case TabReading:
		b.WriteString(v.renderReading())
	}

	b.WriteString("\n")
	help := "[h/l] tab  [j/k] move  [esc] back"
	if v.tab == TabFilms {
		help = "[h/l] tab  [j/k] move  [space] watched  [a] add  [d] delete  [esc] back"
	}
	b.WriteString(v.styles.Help.Render(help))
	return b.String()
}

func (v *View) renderTabs() string {
	parts := make([]string, 0, tabCount)
	for t := TabFilms; t < tabCount; t++ {
		label := t.String()
		if t == v.tab {
			parts = append(parts, v.styles.Selected.Render(" "+label+" "))
		} else {
			parts = append(parts, v.styles.Muted.Render(" "+label+" "))
		}
	}
	return strings.Join(parts, " ")
}

func (v *View) renderFilms() string {
	var b strings.Builder

	for i, f := range v.planner.Films() {
		key := domain.FilmKey(i)
		if f.IsCustom {
			key = domain.CustomKey("film", f.ID)
		}

		cursor := "  "
		if i == v.selected {
			cursor = "> "
		}
		mark := "[ ]"
		if v.annotations.IsVisited(key) {
			mark = v.styles.Success.Render("[✓]")
		}

		line := fmt.Sprintf("%s%s %s", cursor, mark, f.Title)
		if f.Year != 0 {
			line += v.styles.Muted.Render(fmt.Sprintf(" (%d)", f.Year))
		}
		if f.Streaming != "" {
			line += v.styles.Muted.Render(" · " + f.Streaming)
		}
		if f.IsCustom {
			line += v.styles.Muted.Render(" (added)")
		}

		if i == v.selected {
			b.WriteString(v.styles.Selected.Render(line))
			b.WriteString("\n")
			if f.Description != "" {
				b.WriteString(v.styles.Muted.Render("      " + f.Description))
				b.WriteString("\n")
			}
		} else {
			b.WriteString(v.styles.Normal.Render(line))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func (v *View) renderSeries() string {
	var b strings.Builder

	for i, s := range v.planner.Trip().Guide.Series {
		cursor := "  "
		if i == v.selected {
			cursor = "> "
		}

		line := fmt.Sprintf("%s%s", cursor, s.Title)
		if s.Recommended != "" {
			line += v.styles.Muted.Render(" · " + s.Recommended)
		}

		if i == v.selected {
			b.WriteString(v.styles.Selected.Render(line))
			b.WriteString("\n")
			if s.Description != "" {
				b.WriteString(v.styles.Muted.Render("    " + s.Description))
				b.WriteString("\n")
			}
		} else {
			b.WriteString(v.styles.Normal.Render(line))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func (v *View) renderReading() string {
	var b strings.Builder

	for i, r := range v.planner.Trip().Guide.ReadingList {
		cursor := "  "
		if i == v.selected {
			cursor = "> "
		}

		line := fmt.Sprintf("%s%s", cursor, r.Title)
		if r.ReadTime != "" {
			line += v.styles.Muted.Render(" · " + r.ReadTime)
		}

		if i == v.selected {
			b.WriteString(v.styles.Selected.Render(line))
			b.WriteString("\n")
			b.WriteString(v.styles.Muted.Render("    " + r.Description))
			b.WriteString("\n")
		} else {
			b.WriteString(v.styles.Normal.Render(line))
			b.WriteString("\n")
		}
	}

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
	v.titleInput.Blur()
	v.whereInput.Blur()
}

// CurrentTab returns the active tab (for testing).
func (v *View) CurrentTab() Tab {
	return v.tab
}
