package services

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/tripdeck-labs/tripdeck-cli/internal/core/domain"
	"github.com/tripdeck-labs/tripdeck-cli/internal/core/ports/driving"
)

// Ensure AnnotationStore implements the interface.
var _ driving.AnnotationService = (*AnnotationStore)(nil)

// DayNote returns the free-text note of a day, or "" if none.
func (s *AnnotationStore) DayNote(dayIdx int) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dayNotes[dayIdx]
}

// SetDayNote replaces the note of a day. An empty text removes the
// note entirely, so absence keeps meaning "no note".
func (s *AnnotationStore) SetDayNote(dayIdx int, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if text == "" {
		delete(s.dayNotes, dayIdx)
	} else {
		s.dayNotes[dayIdx] = text
	}
	s.persist(keyDayNotes, s.dayNotes)
}

// TripNotes returns the whole-trip agenda note.
func (s *AnnotationStore) TripNotes() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tripNotes
}

// SetTripNotes replaces the whole-trip agenda note. Last write wins.
func (s *AnnotationStore) SetTripNotes(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tripNotes = text
	s.persist(keyTripNotes, s.tripNotes)
}

// Checklist returns a copy of the checklist.
func (s *AnnotationStore) Checklist() []domain.ChecklistItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.ChecklistItem, len(s.checklist))
	copy(out, s.checklist)
	return out
}

// AddChecklistItem appends a new unchecked item.
func (s *AnnotationStore) AddChecklistItem(text, category string) (domain.ChecklistItem, error) {
	if strings.TrimSpace(text) == "" {
		return domain.ChecklistItem{}, fmt.Errorf("checklist item text: %w", domain.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	item := domain.ChecklistItem{
		ID:       uuid.NewString(),
		Text:     text,
		Category: category,
	}
	s.checklist = append(s.checklist, item)
	s.persist(keyChecklist, s.checklist)
	return item, nil
}

// ToggleChecklistItem flips the checked flag. Unknown ids are a no-op.
func (s *AnnotationStore) ToggleChecklistItem(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.checklist {
		if s.checklist[i].ID == id {
			s.checklist[i].Checked = !s.checklist[i].Checked
			s.persist(keyChecklist, s.checklist)
			return
		}
	}
}

// RemoveChecklistItem deletes an item. Unknown ids are a no-op.
func (s *AnnotationStore) RemoveChecklistItem(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.checklist {
		if s.checklist[i].ID == id {
			s.checklist = append(s.checklist[:i], s.checklist[i+1:]...)
			s.persist(keyChecklist, s.checklist)
			return
		}
	}
}

// IsFavorite reports whether the composite key is marked favorite.
func (s *AnnotationStore) IsFavorite(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.favorites.Has(key)
}

// ToggleFavorite flips the favorite mark for a composite key.
// Toggling twice restores the original set.
func (s *AnnotationStore) ToggleFavorite(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.favorites = s.favorites.Toggle(key)
	s.persist(keyFavorites, s.favorites.Encode())
}

// IsVisited reports whether the composite key is marked visited.
func (s *AnnotationStore) IsVisited(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.visited.Has(key)
}

// ToggleVisited flips the visited mark for a composite key.
func (s *AnnotationStore) ToggleVisited(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.visited = s.visited.Toggle(key)
	s.persist(keyVisited, s.visited.Encode())
}

// AddBooking appends a custom booking to a day. The name is required;
// an unrecognised status defaults to pending.
func (s *AnnotationStore) AddBooking(dayIdx int, b domain.Booking) (domain.Booking, error) {
	if strings.TrimSpace(b.Name) == "" {
		return domain.Booking{}, fmt.Errorf("booking name: %w", domain.ErrInvalidInput)
	}
	if !b.Type.IsValid() {
		return domain.Booking{}, fmt.Errorf("booking type %q: %w", b.Type, domain.ErrInvalidInput)
	}
	if !b.Status.IsValid() {
		b.Status = domain.StatusPending
	}
	b.ID = uuid.NewString()
	b.IsCustom = true

	s.mu.Lock()
	defer s.mu.Unlock()
	s.customBookings[dayIdx] = append(s.customBookings[dayIdx], b)
	s.persist(keyCustomBookings, s.customBookings)
	return b, nil
}

// RemoveBooking deletes a custom booking by generated id. Baseline
// bookings have no id and can never be removed here.
func (s *AnnotationStore) RemoveBooking(dayIdx int, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := s.customBookings[dayIdx]
	for i := range list {
		if list[i].ID == id {
			s.customBookings[dayIdx] = append(list[:i], list[i+1:]...)
			s.persist(keyCustomBookings, s.customBookings)
			return
		}
	}
}

// AddActivity appends a custom free-time activity to a day.
func (s *AnnotationStore) AddActivity(dayIdx int, a domain.Activity) (domain.Activity, error) {
	if strings.TrimSpace(a.Name) == "" {
		return domain.Activity{}, fmt.Errorf("activity name: %w", domain.ErrInvalidInput)
	}
	if !a.Type.IsValid() {
		a.Type = domain.ActivityLeisure
	}
	a.ID = uuid.NewString()
	a.IsCustom = true

	s.mu.Lock()
	defer s.mu.Unlock()
	s.customActivities[dayIdx] = append(s.customActivities[dayIdx], a)
	s.persist(keyCustomActivities, s.customActivities)
	return a, nil
}

// RemoveActivity deletes a custom activity by generated id.
func (s *AnnotationStore) RemoveActivity(dayIdx int, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := s.customActivities[dayIdx]
	for i := range list {
		if list[i].ID == id {
			s.customActivities[dayIdx] = append(list[:i], list[i+1:]...)
			s.persist(keyCustomActivities, s.customActivities)
			return
		}
	}
}

// BookingEdit returns the stored edit for a baseline booking, if any.
func (s *AnnotationStore) BookingEdit(dayIdx, pos int) (domain.BookingEdit, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.bookingEdits[domain.BookingKey(dayIdx, pos)]
	return e, ok
}

// SetBookingEdit stores a field-level edit for a baseline booking,
// replacing any previous edit for the same key. A zero edit clears
// the record instead of storing an empty patch.
func (s *AnnotationStore) SetBookingEdit(dayIdx, pos int, edit domain.BookingEdit) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := domain.BookingKey(dayIdx, pos)
	if edit.IsZero() {
		delete(s.bookingEdits, key)
	} else {
		s.bookingEdits[key] = edit
	}
	s.persist(keyBookingEdits, s.bookingEdits)
}

// ClearBookingEdit removes the edit for a baseline booking, restoring
// the pure baseline view. Missing edits are a no-op.
func (s *AnnotationStore) ClearBookingEdit(dayIdx, pos int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := domain.BookingKey(dayIdx, pos)
	if _, ok := s.bookingEdits[key]; !ok {
		return
	}
	delete(s.bookingEdits, key)
	s.persist(keyBookingEdits, s.bookingEdits)
}

// bookingEditsSnapshot copies the edit map for merge computations.
func (s *AnnotationStore) bookingEditsSnapshot() map[string]domain.BookingEdit {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]domain.BookingEdit, len(s.bookingEdits))
	for k, v := range s.bookingEdits {
		out[k] = v
	}
	return out
}

// customBookingsSnapshot copies the custom booking map.
func (s *AnnotationStore) customBookingsSnapshot() map[int][]domain.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[int][]domain.Booking, len(s.customBookings))
	for k, v := range s.customBookings {
		list := make([]domain.Booking, len(v))
		copy(list, v)
		out[k] = list
	}
	return out
}

// customActivitiesSnapshot copies the custom activity map.
func (s *AnnotationStore) customActivitiesSnapshot() map[int][]domain.Activity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[int][]domain.Activity, len(s.customActivities))
	for k, v := range s.customActivities {
		list := make([]domain.Activity, len(v))
		copy(list, v)
		out[k] = list
	}
	return out
}

// AddPintxoBar appends a custom pintxos bar to the guide.
func (s *AnnotationStore) AddPintxoBar(b domain.PintxoBar) (domain.PintxoBar, error) {
	if strings.TrimSpace(b.Name) == "" {
		return domain.PintxoBar{}, fmt.Errorf("bar name: %w", domain.ErrInvalidInput)
	}
	b.ID = uuid.NewString()
	b.IsCustom = true

	s.mu.Lock()
	defer s.mu.Unlock()
	s.customPintxos = append(s.customPintxos, b)
	s.persist(keyCustomPintxos, s.customPintxos)
	return b, nil
}

// RemovePintxoBar deletes a custom bar by generated id.
func (s *AnnotationStore) RemovePintxoBar(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.customPintxos {
		if s.customPintxos[i].ID == id {
			s.customPintxos = append(s.customPintxos[:i], s.customPintxos[i+1:]...)
			s.persist(keyCustomPintxos, s.customPintxos)
			return
		}
	}
}

// AddPlace appends a custom must-see place to the guide.
func (s *AnnotationStore) AddPlace(p domain.Place) (domain.Place, error) {
	if strings.TrimSpace(p.Name) == "" {
		return domain.Place{}, fmt.Errorf("place name: %w", domain.ErrInvalidInput)
	}
	p.ID = uuid.NewString()
	p.IsCustom = true

	s.mu.Lock()
	defer s.mu.Unlock()
	s.customPlaces = append(s.customPlaces, p)
	s.persist(keyCustomPlaces, s.customPlaces)
	return p, nil
}

// RemovePlace deletes a custom place by generated id.
func (s *AnnotationStore) RemovePlace(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.customPlaces {
		if s.customPlaces[i].ID == id {
			s.customPlaces = append(s.customPlaces[:i], s.customPlaces[i+1:]...)
			s.persist(keyCustomPlaces, s.customPlaces)
			return
		}
	}
}

// AddBilbaoPlace appends a custom Bilbao place to the guide.
func (s *AnnotationStore) AddBilbaoPlace(p domain.Place) (domain.Place, error) {
	if strings.TrimSpace(p.Name) == "" {
		return domain.Place{}, fmt.Errorf("place name: %w", domain.ErrInvalidInput)
	}
	p.ID = uuid.NewString()
	p.IsCustom = true

	s.mu.Lock()
	defer s.mu.Unlock()
	s.customBilbao = append(s.customBilbao, p)
	s.persist(keyCustomBilbao, s.customBilbao)
	return p, nil
}

// RemoveBilbaoPlace deletes a custom Bilbao place by generated id.
func (s *AnnotationStore) RemoveBilbaoPlace(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.customBilbao {
		if s.customBilbao[i].ID == id {
			s.customBilbao = append(s.customBilbao[:i], s.customBilbao[i+1:]...)
			s.persist(keyCustomBilbao, s.customBilbao)
			return
		}
	}
}

// AddFilm appends a custom film to the watch list.
func (s *AnnotationStore) AddFilm(f domain.Film) (domain.Film, error) {
	if strings.TrimSpace(f.Title) == "" {
		return domain.Film{}, fmt.Errorf("film title: %w", domain.ErrInvalidInput)
	}
	f.ID = uuid.NewString()
	f.IsCustom = true

	s.mu.Lock()
	defer s.mu.Unlock()
	s.customFilms = append(s.customFilms, f)
	s.persist(keyCustomFilms, s.customFilms)
	return f, nil
}

// RemoveFilm deletes a custom film by generated id.
func (s *AnnotationStore) RemoveFilm(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.customFilms {
		if s.customFilms[i].ID == id {
			s.customFilms = append(s.customFilms[:i], s.customFilms[i+1:]...)
			s.persist(keyCustomFilms, s.customFilms)
			return
		}
	}
}
