// Package guide provides the city guide view: pintxos bars, must-see
// places and the Bilbao side-trip list, with visited and favourite
// marks and user-added entries.
package guide

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

// Tab selects which catalog the view shows.
type Tab int

const (
	// TabPintxos lists the pintxos bars.
	TabPintxos Tab = iota
	// TabMustSee lists the San Sebastián must-see places.
	TabMustSee
	// TabBilbao lists the Bilbao side-trip places.
	TabBilbao

	tabCount
)

// String returns the tab's display name.
func (t Tab) String() string {
	switch t {
	case TabPintxos:
		return "Pintxos"
	case TabMustSee:
		return "Must-see"
	case TabBilbao:
		return "Bilbao"
	default:
		return "unknown"
	}
}

// Fields of the add form, in tab order. The second field doubles as
// specialty (pintxos) or description (places).
const (
	addFieldName = iota
	addFieldDetail
	addFieldCount
)

// View is the guide view.
type View struct {
	styles      *styles.Styles
	planner     driving.PlannerService
	annotations driving.AnnotationService

	tab      Tab
	selected int

	adding    bool
	addInputs [addFieldCount]textinput.Model
	addFocus  int

	err    error
	width  int
	height int
	ready  bool
}

// NewView creates a new guide view.
func NewView(s *styles.Styles, planner driving.PlannerService, annotations driving.AnnotationService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	v := &View{
		styles:      s,
		planner:     planner,
		annotations: annotations,
	}

	for i := range v.addInputs {
		in := textinput.New()
		in.CharLimit = 256
		v.addInputs[i] = in
	}
	v.addInputs[addFieldName].Placeholder = "Name"
	v.addInputs[addFieldDetail].Placeholder = "Specialty / description"

	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// rowCount returns how many entries the active tab has.
func (v *View) rowCount() int {
	switch v.tab {
	case TabPintxos:
		return len(v.planner.PintxoBars())
	case TabMustSee:
		return len(v.planner.MustSee())
	case TabBilbao:
		return len(v.planner.BilbaoPlaces())
	default:
		return 0
	}
}

// Update handles messages for the guide view.
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

	case " ", "x":
		if key := v.selectedKey(); key != "" {
			v.annotations.ToggleVisited(key)
		}

	case "f":
		if key := v.selectedKey(); key != "" {
			v.annotations.ToggleFavorite(key)
		}

	case "a":
		v.adding = true
		v.addFocus = 0
		for i := range v.addInputs {
			v.addInputs[i].SetValue("")
		}
		return v, v.addInputs[0].Focus()

	case "d":
		v.removeSelected()
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
		return v.saveAdd()

	default:
		var cmd tea.Cmd
		v.addInputs[v.addFocus], cmd = v.addInputs[v.addFocus].Update(msg)
		return v, cmd
	}
}

func (v *View) saveAdd() (*View, tea.Cmd) {
	name := strings.TrimSpace(v.addInputs[addFieldName].Value())
	if name == "" {
		return v, nil
	}
	detail := v.addInputs[addFieldDetail].Value()

	var err error
	switch v.tab {
	case TabPintxos:
		_, err = v.annotations.AddPintxoBar(domain.PintxoBar{Name: name, Specialty: detail})
	case TabMustSee:
		_, err = v.annotations.AddPlace(domain.Place{Name: name, Description: detail})
	case TabBilbao:
		_, err = v.annotations.AddBilbaoPlace(domain.Place{Name: name, Description: detail})
	}
	if err != nil {
		v.err = err
		return v, nil
	}

	v.adding = false
	v.blurAddInputs()
	return v, nil
}

func (v *View) blurAddInputs() {
	for i := range v.addInputs {
		v.addInputs[i].Blur()
	}
}

// selectedKey returns the composite key of the selected entry.
func (v *View) selectedKey() string {
	switch v.tab {
	case TabPintxos:
		bars := v.planner.PintxoBars()
		if v.selected >= len(bars) {
			return ""
		}
		if bars[v.selected].IsCustom {
			return domain.CustomKey("pintxo", bars[v.selected].ID)
		}
		return domain.PintxoKey(v.selected)

	case TabMustSee:
		places := v.planner.MustSee()
		if v.selected >= len(places) {
			return ""
		}
		if places[v.selected].IsCustom {
			return domain.CustomKey("place", places[v.selected].ID)
		}
		return domain.PlaceKey(v.selected)

	case TabBilbao:
		places := v.planner.BilbaoPlaces()
		if v.selected >= len(places) {
			return ""
		}
		if places[v.selected].IsCustom {
			return domain.CustomKey("bilbao", places[v.selected].ID)
		}
		return domain.BilbaoKey(v.selected)
	}
	return ""
}

// removeSelected deletes the selected entry if it is user-added.
// Baseline entries cannot be removed.
func (v *View) removeSelected() {
	switch v.tab {
	case TabPintxos:
		bars := v.planner.PintxoBars()
		if v.selected < len(bars) && bars[v.selected].IsCustom {
			v.annotations.RemovePintxoBar(bars[v.selected].ID)
		}
	case TabMustSee:
		places := v.planner.MustSee()
		if v.selected < len(places) && places[v.selected].IsCustom {
			v.annotations.RemovePlace(places[v.selected].ID)
		}
	case TabBilbao:
		places := v.planner.BilbaoPlaces()
		if v.selected < len(places) && places[v.selected].IsCustom {
			v.annotations.RemoveBilbaoPlace(places[v.selected].ID)
		}
	}
	if v.selected > 0 {
		v.selected--
	}
}

// View renders the guide view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	if v.adding {
		var b strings.Builder
		b.WriteString(v.styles.Title.Render("Add to " + v.tab.String()))
		b.WriteString("\n\n")
		for i := range v.addInputs {
			b.WriteString(v.addInputs[i].View())
			b.WriteString("\n")
		}
		b.WriteString("\n")
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
	case TabPintxos:
		b.WriteString(v.renderPintxos())
	case TabMustSee:
		b.WriteString(v.renderPlaces(v.planner.MustSee(), domain.PlaceKey, "place"))
	case TabBilbao:
		b.WriteString(v.renderPlaces(v.planner.BilbaoPlaces(), domain.BilbaoKey, "bilbao"))
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[h/l] tab  [j/k] move  [space] visited  [f] favourite  [a] add  [d] delete  [esc] back"))
	return b.String()
}

func (v *View) renderTabs() string {
	parts := make([]string, 0, tabCount)
	for t := TabPintxos; t < tabCount; t++ {
		label := t.String()
		if t == v.tab {
			parts = append(parts, v.styles.Selected.Render(" "+label+" "))
		} else {
			parts = append(parts, v.styles.Muted.Render(" "+label+" "))
		}
	}
	return strings.Join(parts, " ")
}

func (v *View) renderPintxos() string {
	var b strings.Builder

	bars := v.planner.PintxoBars()
	for i, bar := range bars {
		key := domain.PintxoKey(i)
		if bar.IsCustom {
			key = domain.CustomKey("pintxo", bar.ID)
		}
		b.WriteString(v.renderRow(i, bar.Name, bar.Specialty, bar.IsCustom, key))
	}
	if len(bars) == 0 {
		b.WriteString(v.styles.Muted.Render("No bars yet."))
		b.WriteString("\n")
	}

	return b.String()
}

func (v *View) renderPlaces(places []domain.Place, baseKey func(int) string, kind string) string {
	var b strings.Builder

	for i, p := range places {
		key := baseKey(i)
		if p.IsCustom {
			key = domain.CustomKey(kind, p.ID)
		}
		detail := p.Description
		if p.Time != "" {
			detail += v.styles.Muted.Render(" · " + p.Time)
		}
		b.WriteString(v.renderRow(i, p.Name, detail, p.IsCustom, key))
	}
	if len(places) == 0 {
		b.WriteString(v.styles.Muted.Render("No places yet."))
		b.WriteString("\n")
	}

	return b.String()
}

func (v *View) renderRow(i int, name, detail string, isCustom bool, key string) string {
	var b strings.Builder

	cursor := "  "
	if i == v.selected {
		cursor = "> "
	}

	mark := "[ ]"
	if v.annotations.IsVisited(key) {
		mark = v.styles.Success.Render("[✓]")
	}
	fav := ""
	if v.annotations.IsFavorite(key) {
		fav = " ★"
	}

	line := fmt.Sprintf("%s%s %s%s", cursor, mark, name, fav)
	if isCustom {
		line += v.styles.Muted.Render(" (added)")
	}

	if i == v.selected {
		b.WriteString(v.styles.Selected.Render(line))
		b.WriteString("\n")
		if detail != "" {
			b.WriteString(v.styles.Muted.Render("      " + detail))
			b.WriteString("\n")
		}
	} else {
		b.WriteString(v.styles.Normal.Render(line))
		b.WriteString("\n")
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
	v.blurAddInputs()
}

// CurrentTab returns the active tab (for testing).
func (v *View) CurrentTab() Tab {
	return v.tab
}

// Selected returns the cursor position (for testing).
func (v *View) Selected() int {
	return v.selected
}
