package services

import (
	"encoding/json"
	"sync"

	"github.com/tripdeck-labs/tripdeck-cli/internal/core/domain"
	"github.com/tripdeck-labs/tripdeck-cli/internal/core/ports/driven"
	"github.com/tripdeck-labs/tripdeck-cli/internal/logger"
)

// Storage keys. Each annotation collection persists under its own key
// so a corrupt record can only ever take down its own collection.
const (
	keyDayNotes         = "day_notes"
	keyTripNotes        = "trip_notes"
	keyChecklist        = "checklist"
	keyFavorites        = "favorites"
	keyVisited          = "visited"
	keyCustomBookings   = "custom_bookings"
	keyCustomActivities = "custom_activities"
	keyBookingEdits     = "booking_edits"
	keyCustomPintxos    = "custom_pintxos"
	keyCustomPlaces     = "custom_places"
	keyCustomBilbao     = "custom_bilbao"
	keyCustomFilms      = "custom_films"
	keyTasks            = "tasks"
	keyDiary            = "diary"
)

// AnnotationStore holds every user-mutable collection, hydrated once
// at construction and written back on every mutation. All mutations
// are read-modify-write over the whole owning collection under a
// single lock, so two mutations never interleave.
type AnnotationStore struct {
	mu sync.RWMutex
	kv driven.KVStore

	dayNotes         map[int]string
	tripNotes        string
	checklist        []domain.ChecklistItem
	favorites        domain.MarkSet
	visited          domain.MarkSet
	customBookings   map[int][]domain.Booking
	customActivities map[int][]domain.Activity
	bookingEdits     map[string]domain.BookingEdit
	customPintxos    []domain.PintxoBar
	customPlaces     []domain.Place
	customBilbao     []domain.Place
	customFilms      []domain.Film
	tasks            []domain.Task
	diary            []domain.DiaryEntry
}

// NewAnnotationStore hydrates all collections from kv. A missing,
// corrupt or unreadable record falls back to that collection's
// default without touching any other collection. The task list is
// seeded with DefaultTasks on first run.
func NewAnnotationStore(kv driven.KVStore) *AnnotationStore {
	s := &AnnotationStore{
		kv:               kv,
		dayNotes:         loadJSON(kv, keyDayNotes, map[int]string{}),
		tripNotes:        loadJSON(kv, keyTripNotes, ""),
		checklist:        loadJSON(kv, keyChecklist, []domain.ChecklistItem{}),
		favorites:        domain.DecodeMarkSet(loadJSON(kv, keyFavorites, []string{})),
		visited:          domain.DecodeMarkSet(loadJSON(kv, keyVisited, []string{})),
		customBookings:   loadJSON(kv, keyCustomBookings, map[int][]domain.Booking{}),
		customActivities: loadJSON(kv, keyCustomActivities, map[int][]domain.Activity{}),
		bookingEdits:     loadJSON(kv, keyBookingEdits, map[string]domain.BookingEdit{}),
		customPintxos:    loadJSON(kv, keyCustomPintxos, []domain.PintxoBar{}),
		customPlaces:     loadJSON(kv, keyCustomPlaces, []domain.Place{}),
		customBilbao:     loadJSON(kv, keyCustomBilbao, []domain.Place{}),
		customFilms:      loadJSON(kv, keyCustomFilms, []domain.Film{}),
		diary:            loadJSON(kv, keyDiary, []domain.DiaryEntry{}),
	}

	if _, ok := kv.Get(keyTasks); !ok {
		s.tasks = DefaultTasks()
		s.persist(keyTasks, s.tasks)
	} else {
		s.tasks = loadJSON(kv, keyTasks, DefaultTasks())
	}

	logger.Debug("annotation store hydrated from %s", kv.Path())
	return s
}

// loadJSON reads and decodes one record, returning def unchanged when
// the record is absent or unparsable. Read failures never propagate.
func loadJSON[T any](kv driven.KVStore, key string, def T) T {
	raw, ok := kv.Get(key)
	if !ok {
		return def
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		logger.Warn("record %q is corrupt, using default: %v", key, err)
		return def
	}
	return v
}

// persist encodes and writes one collection. Failures are logged and
// swallowed: the in-memory state keeps the mutation for the rest of
// the session even if it will not survive a reload.
func (s *AnnotationStore) persist(key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		logger.Warn("encoding %q failed, change not saved: %v", key, err)
		return
	}
	if err := s.kv.Set(key, raw); err != nil {
		logger.Warn("writing %q failed, change not saved: %v", key, err)
	}
}
