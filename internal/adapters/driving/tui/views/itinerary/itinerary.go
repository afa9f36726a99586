// Package itinerary provides the day-by-day itinerary view for the TUI.
//
// The view shows one day at a time: its merged bookings (baseline with
// edits applied, then custom ones), the free-time suggestions, the
// optional road-trip segment and the day note. Bookings can be edited
// field by field, custom entries added and removed, and booking codes
// copied to the clipboard.
package itinerary

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

// Mode tracks what the view is currently doing.
type Mode int

const (
	// ModeBrowse is normal list navigation.
	ModeBrowse Mode = iota
	// ModeEditBooking is the field-edit form over a baseline booking.
	ModeEditBooking
	// ModeAddBooking is the add-custom-booking form.
	ModeAddBooking
	// ModeNote is the day-note editor.
	ModeNote
)

// copyFlashDuration is how long the "copied" confirmation shows.
const copyFlashDuration = 2 * time.Second

// Fields of the booking edit form, in tab order.
const (
	editFieldTime = iota
	editFieldNotes
	editFieldCode
	editFieldPhone
	editFieldPrice
	editFieldStatus
	editFieldCount
)

// Fields of the add-booking form, in tab order.
const (
	addFieldName = iota
	addFieldType
	addFieldTime
	addFieldNotes
	addFieldCount
)

// View is the itinerary view.
type View struct {
	styles      *styles.Styles
	planner     driving.PlannerService
	annotations driving.AnnotationService

	// Navigation state.
	dayIdx      int
	selectedRow int
	mode        Mode

	// jumpedToToday tracks the one-time auto-jump to the current day.
	jumpedToToday bool

	// copyFlashKey is the booking key showing a "copied" flash.
	copyFlashKey string

	// Edit form state.
	editPos    int // baseline position being edited
	editInputs [editFieldCount]textinput.Model
	editFocus  int

	// Add form state.
	addInputs [addFieldCount]textinput.Model
	addFocus  int

	// Note editor state.
	noteInput textinput.Model

	err    error
	width  int
	height int
	ready  bool
}

// NewView creates a new itinerary view.
func NewView(s *styles.Styles, planner driving.PlannerService, annotations driving.AnnotationService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	v := &View{
		styles:      s,
		planner:     planner,
		annotations: annotations,
	}

	placeholders := [editFieldCount]string{"Time", "Notes", "Code", "Phone", "Price", "Status (confirmed/pending/todo)"}
	for i := range v.editInputs {
		in := textinput.New()
		in.Placeholder = placeholders[i]
		in.CharLimit = 256
		v.editInputs[i] = in
	}

	addPlaceholders := [addFieldCount]string{"Name", "Type (train/hotel/car/restaurant)", "Time", "Notes"}
	for i := range v.addInputs {
		in := textinput.New()
		in.Placeholder = addPlaceholders[i]
		in.CharLimit = 256
		v.addInputs[i] = in
	}

	v.noteInput = textinput.New()
	v.noteInput.Placeholder = "Note for this day"
	v.noteInput.CharLimit = 512

	return v
}

// Init initialises the view. On first entry it jumps to today if the
// trip is in progress.
func (v *View) Init() tea.Cmd {
	if !v.jumpedToToday {
		v.jumpedToToday = true
		if idx := v.planner.TodayIndex(time.Now()); idx >= 0 {
			v.dayIdx = idx
		}
	}
	return nil
}

// Update handles messages for the itinerary view.
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
		switch v.mode {
		case ModeBrowse:
			return v.handleBrowseKeys(msg)
		case ModeEditBooking:
			return v.handleEditKeys(msg)
		case ModeAddBooking:
			return v.handleAddKeys(msg)
		case ModeNote:
			return v.handleNoteKeys(msg)
		}
	}

	return v, nil
}

//nolint:gocognit,gocyclo // central key handler for the browse mode
func (v *View) handleBrowseKeys(msg tea.KeyMsg) (*View, tea.Cmd) {
	days := v.planner.Trip().Days
	bookings := v.planner.DayBookings(v.dayIdx)
	activities := v.planner.DayActivities(v.dayIdx)
	stops := v.dayStops()
	rowCount := len(bookings) + len(activities) + len(stops)

	switch msg.String() {
	case "esc":
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}

	case "left", "h":
		if v.dayIdx > 0 {
			v.dayIdx--
			v.selectedRow = 0
		}

	case "right", "l":
		if v.dayIdx < len(days)-1 {
			v.dayIdx++
			v.selectedRow = 0
		}

	case "up", "k":
		if v.selectedRow > 0 {
			v.selectedRow--
		}

	case "down", "j":
		if v.selectedRow < rowCount-1 {
			v.selectedRow++
		}

	case "t":
		if idx := v.planner.TodayIndex(time.Now()); idx >= 0 {
			v.dayIdx = idx
			v.selectedRow = 0
		}

	case "c":
		if b, ok := v.selectedBooking(bookings); ok && b.Code != "" {
			return v, v.copyCode(v.selectedBookingKey(bookings), b.Code)
		}

	case "e":
		// Field edits apply to baseline bookings only; custom
		// bookings are whole records.
		if v.selectedRow < len(bookings) && !bookings[v.selectedRow].IsCustom {
			v.startEdit(v.selectedRow, bookings[v.selectedRow])
			return v, v.editInputs[v.editFocus].Focus()
		}

	case "a":
		v.startAdd()
		return v, v.addInputs[v.addFocus].Focus()

	case "d":
		if b, ok := v.selectedBooking(bookings); ok && b.IsCustom {
			v.annotations.RemoveBooking(v.dayIdx, b.ID)
			if v.selectedRow > 0 {
				v.selectedRow--
			}
			return v, nil
		}
		if a, ok := v.selectedActivity(bookings, activities); ok && a.IsCustom {
			v.annotations.RemoveActivity(v.dayIdx, a.ID)
			if v.selectedRow > 0 {
				v.selectedRow--
			}
			return v, nil
		}

	case " ", "x":
		if _, ok := v.selectedActivity(bookings, activities); ok {
			v.annotations.ToggleFavorite(v.selectedActivityKey(bookings, activities))
			return v, nil
		}
		if i := v.selectedStopIndex(bookings, activities); i >= 0 {
			v.annotations.ToggleFavorite(domain.StopKey(v.dayIdx, i))
			return v, nil
		}

	case "n":
		v.mode = ModeNote
		v.noteInput.SetValue(v.annotations.DayNote(v.dayIdx))
		return v, v.noteInput.Focus()
	}

	return v, nil
}

func (v *View) handleEditKeys(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "esc":
		v.mode = ModeBrowse
		v.blurEditInputs()
		return v, nil

	case "tab", "down":
		v.editInputs[v.editFocus].Blur()
		v.editFocus = (v.editFocus + 1) % editFieldCount
		return v, v.editInputs[v.editFocus].Focus()

	case "shift+tab", "up":
		v.editInputs[v.editFocus].Blur()
		v.editFocus = (v.editFocus + editFieldCount - 1) % editFieldCount
		return v, v.editInputs[v.editFocus].Focus()

	case "enter":
		return v.saveEdit()

	default:
		var cmd tea.Cmd
		v.editInputs[v.editFocus], cmd = v.editInputs[v.editFocus].Update(msg)
		return v, cmd
	}
}

func (v *View) handleAddKeys(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "esc":
		v.mode = ModeBrowse
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

func (v *View) handleNoteKeys(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "esc":
		v.mode = ModeBrowse
		v.noteInput.Blur()
		return v, nil

	case "enter":
		v.annotations.SetDayNote(v.dayIdx, v.noteInput.Value())
		v.mode = ModeBrowse
		v.noteInput.Blur()
		return v, nil

	default:
		var cmd tea.Cmd
		v.noteInput, cmd = v.noteInput.Update(msg)
		return v, cmd
	}
}

// startEdit pre-fills the edit form with the merged booking values.
func (v *View) startEdit(pos int, merged domain.Booking) {
	v.mode = ModeEditBooking
	v.editPos = pos
	v.editFocus = 0
	v.editInputs[editFieldTime].SetValue(merged.Time)
	v.editInputs[editFieldNotes].SetValue(merged.Notes)
	v.editInputs[editFieldCode].SetValue(merged.Code)
	v.editInputs[editFieldPhone].SetValue(merged.Phone)
	v.editInputs[editFieldPrice].SetValue(merged.Price)
	v.editInputs[editFieldStatus].SetValue(merged.Status.String())
}

// saveEdit builds a partial edit: only fields differing from the
// baseline record become overrides, so clearing a field back to the
// baseline value drops its override.
func (v *View) saveEdit() (*View, tea.Cmd) {
	days := v.planner.Trip().Days
	if v.dayIdx >= len(days) || v.editPos >= len(days[v.dayIdx].Bookings) {
		v.mode = ModeBrowse
		v.blurEditInputs()
		return v, nil
	}
	baseline := days[v.dayIdx].Bookings[v.editPos]

	statusText := strings.TrimSpace(v.editInputs[editFieldStatus].Value())
	status := domain.BookingStatus(statusText)
	if statusText != "" && !status.IsValid() {
		// Invalid status: stay in the form, nothing is saved.
		return v, nil
	}

	var edit domain.BookingEdit
	if val := v.editInputs[editFieldTime].Value(); val != baseline.Time {
		edit.Time = &val
	}
	if val := v.editInputs[editFieldNotes].Value(); val != baseline.Notes {
		edit.Notes = &val
	}
	if val := v.editInputs[editFieldCode].Value(); val != baseline.Code {
		edit.Code = &val
	}
	if val := v.editInputs[editFieldPhone].Value(); val != baseline.Phone {
		edit.Phone = &val
	}
	if val := v.editInputs[editFieldPrice].Value(); val != baseline.Price {
		edit.Price = &val
	}
	if statusText != "" && status != baseline.Status {
		edit.Status = &status
	}

	if edit.IsZero() {
		v.annotations.ClearBookingEdit(v.dayIdx, v.editPos)
	} else {
		v.annotations.SetBookingEdit(v.dayIdx, v.editPos, edit)
	}

	v.mode = ModeBrowse
	v.blurEditInputs()
	return v, nil
}

func (v *View) startAdd() {
	v.mode = ModeAddBooking
	v.addFocus = 0
	for i := range v.addInputs {
		v.addInputs[i].SetValue("")
	}
}

func (v *View) saveAdd() (*View, tea.Cmd) {
	name := strings.TrimSpace(v.addInputs[addFieldName].Value())
	if name == "" {
		return v, nil
	}

	bookingType := domain.BookingType(strings.TrimSpace(v.addInputs[addFieldType].Value()))
	if bookingType == "" {
		bookingType = domain.BookingRestaurant
	}
	if !bookingType.IsValid() {
		return v, nil
	}

	_, err := v.annotations.AddBooking(v.dayIdx, domain.Booking{
		Type:   bookingType,
		Name:   name,
		Time:   v.addInputs[addFieldTime].Value(),
		Notes:  v.addInputs[addFieldNotes].Value(),
		Status: domain.StatusConfirmed,
	})
	if err != nil {
		v.err = err
		return v, nil
	}

	v.mode = ModeBrowse
	v.blurAddInputs()
	return v, nil
}

func (v *View) blurEditInputs() {
	for i := range v.editInputs {
		v.editInputs[i].Blur()
	}
}

func (v *View) blurAddInputs() {
	for i := range v.addInputs {
		v.addInputs[i].Blur()
	}
}

// copyCode copies a booking code to the clipboard asynchronously.
func (v *View) copyCode(key, code string) tea.Cmd {
	return func() tea.Msg {
		err := clipboard.WriteAll(code)
		return messages.CodeCopied{Key: key, Code: code, Err: err}
	}
}

// Selection helpers over the merged row list: bookings first, then
// free-time activities, then road-trip stops.

// dayStops returns the road-trip stops of the shown day, if any.
func (v *View) dayStops() []domain.RoadStop {
	days := v.planner.Trip().Days
	if v.dayIdx >= len(days) || days[v.dayIdx].RoadTrip == nil {
		return nil
	}
	return days[v.dayIdx].RoadTrip.Stops
}

// selectedStopIndex returns the stop index under the cursor, or -1.
func (v *View) selectedStopIndex(bookings []domain.Booking, activities []domain.Activity) int {
	idx := v.selectedRow - len(bookings) - len(activities)
	if idx >= 0 && idx < len(v.dayStops()) {
		return idx
	}
	return -1
}

func (v *View) selectedBooking(bookings []domain.Booking) (domain.Booking, bool) {
	if v.selectedRow >= 0 && v.selectedRow < len(bookings) {
		return bookings[v.selectedRow], true
	}
	return domain.Booking{}, false
}

func (v *View) selectedBookingKey(bookings []domain.Booking) string {
	b, ok := v.selectedBooking(bookings)
	if !ok {
		return ""
	}
	if b.IsCustom {
		return domain.CustomKey("booking", b.ID)
	}
	return domain.BookingKey(v.dayIdx, v.selectedRow)
}

func (v *View) selectedActivity(bookings []domain.Booking, activities []domain.Activity) (domain.Activity, bool) {
	idx := v.selectedRow - len(bookings)
	if idx >= 0 && idx < len(activities) {
		return activities[idx], true
	}
	return domain.Activity{}, false
}

func (v *View) selectedActivityKey(bookings []domain.Booking, activities []domain.Activity) string {
	a, ok := v.selectedActivity(bookings, activities)
	if !ok {
		return ""
	}
	if a.IsCustom {
		return domain.CustomKey("activity", a.ID)
	}
	return domain.ActivityKey(v.dayIdx, v.selectedRow-len(bookings))
}

// View renders the itinerary view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	switch v.mode {
	case ModeEditBooking:
		return v.renderEditForm()
	case ModeAddBooking:
		return v.renderAddForm()
	case ModeNote:
		return v.renderNoteEditor()
	default:
		return v.renderDay()
	}
}

//nolint:gocognit // rendering walks every section of the day
func (v *View) renderDay() string {
	var b strings.Builder

	days := v.planner.Trip().Days
	if v.dayIdx >= len(days) {
		return v.styles.Muted.Render("No itinerary data")
	}
	day := days[v.dayIdx]

	header := fmt.Sprintf("Day %d/%d  %s %s — %s", v.dayIdx+1, len(days), day.DayOfWeek, day.Date, day.Title)
	b.WriteString(v.styles.Title.Render(header))
	if day.State(time.Now()) == domain.DayToday {
		b.WriteString("  ")
		b.WriteString(v.styles.Success.Render("[today]"))
	}
	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render(fmt.Sprintf("%s · %s", day.Subtitle, day.Location)))
	b.WriteString("\n\n")

	if v.err != nil {
		b.WriteString(v.styles.Error.Render("Error: " + v.err.Error()))
		b.WriteString("\n\n")
	}

	bookings := v.planner.DayBookings(v.dayIdx)
	activities := v.planner.DayActivities(v.dayIdx)

	if len(bookings) > 0 {
		b.WriteString(v.styles.Subtitle.Render("Bookings"))
		b.WriteString("\n")
		for i, bk := range bookings {
			b.WriteString(v.renderBookingRow(i, bk, bookings))
		}
		b.WriteString("\n")
	}

	if len(activities) > 0 {
		title := "Free time"
		if day.FreeTime != nil && day.FreeTime.Hours != "" {
			title += " · " + day.FreeTime.Hours
		}
		b.WriteString(v.styles.Subtitle.Render(title))
		b.WriteString("\n")
		for i, a := range activities {
			b.WriteString(v.renderActivityRow(i, a, bookings, activities))
		}
		b.WriteString("\n")
	}

	if day.RoadTrip != nil {
		rt := day.RoadTrip
		b.WriteString(v.styles.Subtitle.Render(fmt.Sprintf("Road trip: %s → %s (%s)", rt.From, rt.To, rt.Duration)))
		b.WriteString("\n")
		for i, stop := range rt.Stops {
			b.WriteString(v.renderStopRow(i, stop, bookings, activities))
		}
		b.WriteString("\n")
	}

	if note := v.annotations.DayNote(v.dayIdx); note != "" {
		b.WriteString(v.styles.Subtitle.Render("Note"))
		b.WriteString("\n")
		b.WriteString(v.styles.Normal.Render("  " + note))
		b.WriteString("\n\n")
	}

	b.WriteString(v.styles.Help.Render(
		"[h/l] day  [j/k] move  [enter/e] edit  [a] add  [d] delete  [space] fav  [c] copy code  [n] note  [t] today  [esc] back"))

	return b.String()
}

func (v *View) renderBookingRow(i int, bk domain.Booking, bookings []domain.Booking) string {
	var b strings.Builder

	cursor := "  "
	if i == v.selectedRow {
		cursor = "> "
	}

	status := v.statusBadge(bk.Status)
	line := fmt.Sprintf("%s[%s] %s %s", cursor, bk.Type.Description(), bk.Name, status)
	if bk.IsCustom {
		line += v.styles.Muted.Render(" (added)")
	}

	if i == v.selectedRow {
		b.WriteString(v.styles.Selected.Render(line))
	} else {
		b.WriteString(v.styles.Normal.Render(line))
	}
	b.WriteString("\n")

	// Expanded details for the selected booking.
	if i == v.selectedRow {
		b.WriteString(v.renderBookingDetails(bk, bookings))
	}

	return b.String()
}

func (v *View) renderBookingDetails(bk domain.Booking, bookings []domain.Booking) string {
	var b strings.Builder
	detail := func(label, value string) {
		if value != "" {
			b.WriteString(v.styles.Muted.Render(fmt.Sprintf("    %s: %s", label, value)))
			b.WriteString("\n")
		}
	}

	detail("Time", bk.Time)
	detail("Where", bk.Address)
	if bk.Code != "" {
		code := bk.Code
		if v.copyFlashKey != "" && v.copyFlashKey == v.selectedBookingKey(bookings) {
			code += " " + v.styles.Success.Render("(copied)")
		}
		detail("Code", code)
	}
	if bk.Phone != "" {
		detail("Phone", fmt.Sprintf("%s (%s)", bk.Phone, domain.TelLink(bk.Phone)))
	}
	if bk.Carriage != "" || bk.Seat != "" {
		detail("Seat", fmt.Sprintf("carriage %s, seat %s, %s", bk.Carriage, bk.Seat, bk.Class))
	}
	detail("Price", bk.Price)
	detail("Notes", bk.Notes)
	detail("Link", bk.Link)
	detail("Ticket", bk.TicketPDF)
	if bk.Address != "" {
		detail("Map", domain.MapLink(bk.Address))
	}

	return b.String()
}

func (v *View) renderActivityRow(i int, a domain.Activity, bookings []domain.Booking, activities []domain.Activity) string {
	var b strings.Builder

	row := len(bookings) + i
	cursor := "  "
	if row == v.selectedRow {
		cursor = "> "
	}

	fav := " "
	key := domain.ActivityKey(v.dayIdx, i)
	if a.IsCustom {
		key = domain.CustomKey("activity", a.ID)
	}
	if v.annotations.IsFavorite(key) {
		fav = "★"
	}

	line := fmt.Sprintf("%s%s %s", cursor, fav, a.Name)
	if a.Duration != "" {
		line += v.styles.Muted.Render(" · " + a.Duration)
	}

	if row == v.selectedRow {
		b.WriteString(v.styles.Selected.Render(line))
		b.WriteString("\n")
		if a.Description != "" {
			b.WriteString(v.styles.Muted.Render("    " + a.Description))
			b.WriteString("\n")
		}
		if a.Tips != "" {
			b.WriteString(v.styles.Muted.Render("    Tip: " + a.Tips))
			b.WriteString("\n")
		}
	} else {
		b.WriteString(v.styles.Normal.Render(line))
		b.WriteString("\n")
	}

	return b.String()
}

func (v *View) renderStopRow(i int, stop domain.RoadStop, bookings []domain.Booking, activities []domain.Activity) string {
	var b strings.Builder

	row := len(bookings) + len(activities) + i
	cursor := "  "
	if row == v.selectedRow {
		cursor = "> "
	}
	fav := " "
	if v.annotations.IsFavorite(domain.StopKey(v.dayIdx, i)) {
		fav = "★"
	}

	line := fmt.Sprintf("%s%s %s (%s)", cursor, fav, stop.Name, stop.StayTime)
	if row == v.selectedRow {
		b.WriteString(v.styles.Selected.Render(line))
	} else {
		b.WriteString(v.styles.Normal.Render(line))
	}
	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render("    " + stop.Description))
	b.WriteString("\n")

	return b.String()
}

func (v *View) statusBadge(s domain.BookingStatus) string {
	switch s {
	case domain.StatusConfirmed:
		return v.styles.Success.Render("✓ " + s.Description())
	case domain.StatusPending:
		return v.styles.Warning.Render("~ " + s.Description())
	case domain.StatusTodo:
		return v.styles.Error.Render("! " + s.Description())
	default:
		return v.styles.Muted.Render(s.String())
	}
}

func (v *View) renderEditForm() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Edit booking"))
	b.WriteString("\n\n")

	labels := [editFieldCount]string{"Time", "Notes", "Code", "Phone", "Price", "Status"}
	for i, in := range v.editInputs {
		b.WriteString(v.styles.Normal.Render(labels[i] + ":"))
		b.WriteString("\n")
		b.WriteString(in.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[tab] next field  [enter] save  [esc] cancel"))
	return b.String()
}

func (v *View) renderAddForm() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Add booking"))
	b.WriteString("\n\n")

	labels := [addFieldCount]string{"Name", "Type", "Time", "Notes"}
	for i, in := range v.addInputs {
		b.WriteString(v.styles.Normal.Render(labels[i] + ":"))
		b.WriteString("\n")
		b.WriteString(in.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[tab] next field  [enter] save  [esc] cancel"))
	return b.String()
}

func (v *View) renderNoteEditor() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Day note"))
	b.WriteString("\n\n")
	b.WriteString(v.noteInput.View())
	b.WriteString("\n\n")
	b.WriteString(v.styles.Help.Render("[enter] save  [esc] cancel"))
	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Reset returns the view to browse mode without losing the day cursor.
func (v *View) Reset() {
	v.mode = ModeBrowse
	v.err = nil
	v.copyFlashKey = ""
	v.blurEditInputs()
	v.blurAddInputs()
	v.noteInput.Blur()
}

// DayIndex returns the currently shown day (for testing).
func (v *View) DayIndex() int {
	return v.dayIdx
}

// SelectedRow returns the cursor row (for testing).
func (v *View) SelectedRow() int {
	return v.selectedRow
}

// Mode returns the current interaction mode (for testing).
func (v *View) Mode() Mode {
	return v.mode
}
