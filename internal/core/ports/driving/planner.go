package driving

import (
	"time"

	"github.com/tripdeck-labs/tripdeck-cli/internal/core/domain"
)

// PlannerService exposes the merged trip projections: baseline data
// overlaid with the user's edits and custom additions. All returned
// slices are freshly computed per call and safe for the caller to
// hold; aggregate views are never persisted.
type PlannerService interface {
	// Trip returns the immutable baseline dataset.
	Trip() *domain.Trip

	// DayBookings returns the merged bookings of one day.
	DayBookings(dayIdx int) []domain.Booking

	// DayActivities returns the merged free-time suggestions of one day.
	DayActivities(dayIdx int) []domain.Activity

	// AllBookings flattens the merged bookings across all days.
	AllBookings() []domain.DayBooking

	// PendingBookings returns merged bookings still needing action.
	PendingBookings() []domain.DayBooking

	// PintxoBars, MustSee, BilbaoPlaces and Films return the merged
	// flat catalogs: baseline entries then custom ones.
	PintxoBars() []domain.PintxoBar
	MustSee() []domain.Place
	BilbaoPlaces() []domain.Place
	Films() []domain.Film

	// TodayIndex returns the itinerary index matching now, or -1.
	TodayIndex(now time.Time) int

	// Countdown computes the departure countdown at now.
	Countdown(now time.Time) domain.Countdown
}

// AnnotationService exposes the mutable annotation collections and
// their setters. Every mutation is a synchronous read-modify-write of
// the whole owning collection followed by an immediate persist; a
// failed persist is logged and the in-memory state keeps the change.
type AnnotationService interface {
	// Day notes: one free-text note per day, last write wins.
	DayNote(dayIdx int) string
	SetDayNote(dayIdx int, text string)

	// TripNotes is the free-text agenda note for the whole trip.
	TripNotes() string
	SetTripNotes(text string)

	// Checklist operations.
	Checklist() []domain.ChecklistItem
	AddChecklistItem(text, category string) (domain.ChecklistItem, error)
	ToggleChecklistItem(id string)
	RemoveChecklistItem(id string)

	// Favorite and visited marks, addressed by composite keys.
	IsFavorite(key string) bool
	ToggleFavorite(key string)
	IsVisited(key string) bool
	ToggleVisited(key string)

	// Custom bookings and activities, keyed by owning day.
	AddBooking(dayIdx int, b domain.Booking) (domain.Booking, error)
	RemoveBooking(dayIdx int, id string)
	AddActivity(dayIdx int, a domain.Activity) (domain.Activity, error)
	RemoveActivity(dayIdx int, id string)

	// Field-level edits of baseline bookings.
	BookingEdit(dayIdx, pos int) (domain.BookingEdit, bool)
	SetBookingEdit(dayIdx, pos int, edit domain.BookingEdit)
	ClearBookingEdit(dayIdx, pos int)

	// Custom guide catalog entries.
	AddPintxoBar(b domain.PintxoBar) (domain.PintxoBar, error)
	RemovePintxoBar(id string)
	AddPlace(p domain.Place) (domain.Place, error)
	RemovePlace(id string)
	AddBilbaoPlace(p domain.Place) (domain.Place, error)
	RemoveBilbaoPlace(id string)
	AddFilm(f domain.Film) (domain.Film, error)
	RemoveFilm(id string)
}

// TaskService manages the leg-tagged preparation tasks. The list is
// seeded with defaults on first hydration and fully mutable after.
type TaskService interface {
	Tasks() []domain.Task
	AddTask(text, leg string) (domain.Task, error)
	ToggleTask(id string)
	RemoveTask(id string)
	Progress() domain.TaskProgress
}

// DiaryService manages travel diary entries with embedded images.
type DiaryService interface {
	Entries() []domain.DiaryEntry
	AddEntry(e domain.DiaryEntry) (domain.DiaryEntry, error)
	RemoveEntry(id string)

	// AttachImage reads a local image file and returns it as a
	// self-contained embeddable payload.
	AttachImage(path string) (domain.DiaryImage, error)
}
