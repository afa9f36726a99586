package services

import (
	"fmt"
	"sync"
	"time"

	"github.com/tripdeck-labs/tripdeck-cli/internal/core/domain"
	"github.com/tripdeck-labs/tripdeck-cli/internal/core/ports/driven"
	"github.com/tripdeck-labs/tripdeck-cli/internal/core/ports/driving"
	"github.com/tripdeck-labs/tripdeck-cli/internal/logger"
)

// Ensure Planner implements the interface.
var _ driving.PlannerService = (*Planner)(nil)

// Planner computes the merged trip projections: the immutable baseline
// overlaid with the annotation store's edits and custom additions.
// Projections are recomputed on every call; nothing here is persisted.
//
// The trip pointer is guarded by mu: Reload runs on the file watcher's
// goroutine while the UI reads projections.
type Planner struct {
	mu    sync.RWMutex
	trip  *domain.Trip
	store *AnnotationStore
}

// NewPlanner loads the baseline catalog from source and pairs it with
// the annotation store.
func NewPlanner(source driven.TripSource, store *AnnotationStore) (*Planner, error) {
	trip, err := source.Load()
	if err != nil {
		return nil, fmt.Errorf("loading trip data: %w", err)
	}
	if trip == nil || len(trip.Days) == 0 {
		return nil, domain.ErrNoTrip
	}
	logger.Debug("loaded trip %q with %d days", trip.Name, len(trip.Days))
	return &Planner{trip: trip, store: store}, nil
}

// Reload swaps in a freshly loaded baseline catalog. Annotations are
// untouched; positional identities re-attach to the new catalog.
func (p *Planner) Reload(source driven.TripSource) error {
	trip, err := source.Load()
	if err != nil {
		return fmt.Errorf("reloading trip data: %w", err)
	}
	if trip == nil || len(trip.Days) == 0 {
		return domain.ErrNoTrip
	}
	p.mu.Lock()
	p.trip = trip
	p.mu.Unlock()
	return nil
}

// Trip returns the baseline dataset.
func (p *Planner) Trip() *domain.Trip {
	return p.currentTrip()
}

// currentTrip snapshots the trip pointer under the read lock. The
// returned dataset itself is immutable; Reload only ever swaps the
// pointer.
func (p *Planner) currentTrip() *domain.Trip {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.trip
}

// DayBookings returns the merged bookings of one day: baseline with
// edits applied, then custom entries in insertion order. An index out
// of range yields nil.
func (p *Planner) DayBookings(dayIdx int) []domain.Booking {
	trip := p.currentTrip()
	if dayIdx < 0 || dayIdx >= len(trip.Days) {
		return nil
	}
	return domain.MergedBookings(
		trip.Days[dayIdx], dayIdx,
		p.store.bookingEditsSnapshot(),
		p.store.customBookingsSnapshot(),
	)
}

// DayActivities returns the merged free-time suggestions of one day.
func (p *Planner) DayActivities(dayIdx int) []domain.Activity {
	trip := p.currentTrip()
	if dayIdx < 0 || dayIdx >= len(trip.Days) {
		return nil
	}
	return domain.MergedActivities(
		trip.Days[dayIdx], dayIdx,
		p.store.customActivitiesSnapshot(),
	)
}

// AllBookings flattens the merged bookings across all days.
func (p *Planner) AllBookings() []domain.DayBooking {
	return domain.AllBookings(
		p.currentTrip().Days,
		p.store.bookingEditsSnapshot(),
		p.store.customBookingsSnapshot(),
	)
}

// PendingBookings returns the merged bookings still needing action.
func (p *Planner) PendingBookings() []domain.DayBooking {
	return domain.PendingBookings(p.AllBookings())
}

// PintxoBars returns the merged pintxos bar catalog.
func (p *Planner) PintxoBars() []domain.PintxoBar {
	p.store.mu.RLock()
	custom := p.store.customPintxos
	p.store.mu.RUnlock()
	return domain.MergedPintxoBars(p.currentTrip().Guide.PintxoBars, custom)
}

// MustSee returns the merged must-see catalog.
func (p *Planner) MustSee() []domain.Place {
	p.store.mu.RLock()
	custom := p.store.customPlaces
	p.store.mu.RUnlock()
	return domain.MergedPlaces(p.currentTrip().Guide.MustSee, custom)
}

// BilbaoPlaces returns the merged Bilbao catalog.
func (p *Planner) BilbaoPlaces() []domain.Place {
	p.store.mu.RLock()
	custom := p.store.customBilbao
	p.store.mu.RUnlock()
	return domain.MergedPlaces(p.currentTrip().Guide.BilbaoPlaces, custom)
}

// Films returns the merged film catalog.
func (p *Planner) Films() []domain.Film {
	p.store.mu.RLock()
	custom := p.store.customFilms
	p.store.mu.RUnlock()
	return domain.MergedFilms(p.currentTrip().Guide.Films, custom)
}

// TodayIndex returns the itinerary index matching now, or -1.
func (p *Planner) TodayIndex(now time.Time) int {
	return domain.TodayIndex(p.currentTrip().Days, now)
}

// Countdown computes the departure countdown at now. A missing or
// unparsable start instant reports Arrived, which freezes the display
// rather than showing a bogus timer.
func (p *Planner) Countdown(now time.Time) domain.Countdown {
	target, err := time.Parse(time.RFC3339, p.currentTrip().StartsAt)
	if err != nil {
		return domain.Countdown{State: domain.Arrived}
	}
	return domain.ComputeCountdown(now, target)
}
