package itinerary

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripdeck-labs/tripdeck-cli/internal/adapters/driven/storage/memory"
	"github.com/tripdeck-labs/tripdeck-cli/internal/adapters/driving/tui/messages"
	"github.com/tripdeck-labs/tripdeck-cli/internal/core/domain"
	"github.com/tripdeck-labs/tripdeck-cli/internal/core/services"
)

type stubSource struct {
	trip *domain.Trip
}

func (s stubSource) Load() (*domain.Trip, error) {
	return s.trip, nil
}

func testTrip() *domain.Trip {
	return &domain.Trip{
		Name:     "San Sebastián 2026",
		StartsAt: "2026-02-01T16:10:00+01:00",
		Days: []domain.DayPlan{
			{
				Date:      "1 February",
				ISODate:   "2026-02-01",
				DayOfWeek: "Sunday",
				Title:     "Roma → Torino",
				Bookings: []domain.Booking{
					{Type: domain.BookingTrain, Name: "Frecciarossa 9588", Code: "L8DZY5", Time: "16:10 → 21:00", Status: domain.StatusConfirmed},
					{Type: domain.BookingRestaurant, Name: "Dinner in Torino", Status: domain.StatusTodo},
				},
				FreeTime: &domain.FreeTime{
					Available:   true,
					Suggestions: []domain.Activity{{Name: "Via Roma stroll", Type: domain.ActivityLeisure}},
				},
			},
			{
				Date:      "2 February",
				ISODate:   "2026-02-02",
				DayOfWeek: "Monday",
				Title:     "Torino → San Sebastián",
				Bookings: []domain.Booking{
					{Type: domain.BookingHotel, Name: "Hotel Villa Soro", Status: domain.StatusPending},
				},
				RoadTrip: &domain.RoadTrip{
					From: "Torino", To: "San Sebastián", Duration: "9h",
					Stops: []domain.RoadStop{{Name: "Carcassonne", Description: "Walled city", StayTime: "2h"}},
				},
			},
		},
	}
}

func newTestView(t *testing.T) (*View, *services.AnnotationStore) {
	t.Helper()
	store := services.NewAnnotationStore(memory.NewKVStore())
	planner, err := services.NewPlanner(stubSource{trip: testTrip()}, store)
	require.NoError(t, err)

	v := NewView(nil, planner, store)
	v.SetDimensions(100, 40)
	return v, store
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func typeText(v *View, text string) *View {
	for _, r := range text {
		v, _ = v.Update(keyRune(r))
	}
	return v
}

func TestItineraryNavigation(t *testing.T) {
	t.Run("h and l switch days within bounds", func(t *testing.T) {
		v, _ := newTestView(t)

		v, _ = v.Update(keyRune('h'))
		assert.Equal(t, 0, v.DayIndex(), "already at the first day")

		v, _ = v.Update(keyRune('l'))
		assert.Equal(t, 1, v.DayIndex())

		v, _ = v.Update(keyRune('l'))
		assert.Equal(t, 1, v.DayIndex(), "already at the last day")
	})

	t.Run("switching day resets the row cursor", func(t *testing.T) {
		v, _ := newTestView(t)

		v, _ = v.Update(keyRune('j'))
		require.Equal(t, 1, v.SelectedRow())

		v, _ = v.Update(keyRune('l'))
		assert.Equal(t, 0, v.SelectedRow())
	})

	t.Run("j and k move across bookings and activities", func(t *testing.T) {
		v, _ := newTestView(t)

		// Day 0 has 2 bookings and 1 activity.
		v, _ = v.Update(keyRune('j'))
		v, _ = v.Update(keyRune('j'))
		assert.Equal(t, 2, v.SelectedRow())

		v, _ = v.Update(keyRune('j'))
		assert.Equal(t, 2, v.SelectedRow(), "stops at the last row")

		v, _ = v.Update(keyRune('k'))
		assert.Equal(t, 1, v.SelectedRow())
	})

	t.Run("esc goes back to the menu", func(t *testing.T) {
		v, _ := newTestView(t)

		_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEsc})
		require.NotNil(t, cmd)

		viewChanged, ok := cmd().(messages.ViewChanged)
		require.True(t, ok)
		assert.Equal(t, messages.ViewMenu, viewChanged.View)
	})
}

func TestItineraryEditBooking(t *testing.T) {
	t.Run("saving unchanged fields stores no edit", func(t *testing.T) {
		v, store := newTestView(t)

		v, _ = v.Update(keyRune('e'))
		require.Equal(t, ModeEditBooking, v.Mode())

		v, _ = v.Update(tea.KeyMsg{Type: tea.KeyEnter})

		assert.Equal(t, ModeBrowse, v.Mode())
		_, ok := store.BookingEdit(0, 0)
		assert.False(t, ok)
	})

	t.Run("only changed fields become overrides", func(t *testing.T) {
		v, store := newTestView(t)

		v, _ = v.Update(keyRune('e'))
		// Focus starts on the time field; append to the prefilled value.
		v = typeText(v, " (delayed)")
		v, _ = v.Update(tea.KeyMsg{Type: tea.KeyEnter})

		edit, ok := store.BookingEdit(0, 0)
		require.True(t, ok)
		require.NotNil(t, edit.Time)
		assert.Equal(t, "16:10 → 21:00 (delayed)", *edit.Time)
		assert.Nil(t, edit.Notes)
		assert.Nil(t, edit.Status)
	})

	t.Run("invalid status keeps the form open", func(t *testing.T) {
		v, store := newTestView(t)

		v, _ = v.Update(keyRune('e'))
		for i := 0; i < editFieldCount-1; i++ {
			v, _ = v.Update(tea.KeyMsg{Type: tea.KeyTab})
		}
		v = typeText(v, "nonsense")
		v, _ = v.Update(tea.KeyMsg{Type: tea.KeyEnter})

		assert.Equal(t, ModeEditBooking, v.Mode())
		_, ok := store.BookingEdit(0, 0)
		assert.False(t, ok)
	})

	t.Run("edits re-applied through the planner", func(t *testing.T) {
		v, store := newTestView(t)
		notes := "seat changed"
		store.SetBookingEdit(0, 0, domain.BookingEdit{Notes: &notes})

		// Re-editing and saving without touching the form keeps the
		// stored override: the merged value differs from baseline.
		v, _ = v.Update(keyRune('e'))
		v, _ = v.Update(tea.KeyMsg{Type: tea.KeyEnter})

		edit, ok := store.BookingEdit(0, 0)
		require.True(t, ok)
		assert.Equal(t, "seat changed", *edit.Notes)
	})

	t.Run("custom bookings cannot be field-edited", func(t *testing.T) {
		v, store := newTestView(t)
		_, err := store.AddBooking(0, domain.Booking{Name: "Extra dinner", Type: domain.BookingRestaurant})
		require.NoError(t, err)

		v, _ = v.Update(keyRune('j'))
		v, _ = v.Update(keyRune('j')) // row 2 = the custom booking
		v, _ = v.Update(keyRune('e'))

		assert.Equal(t, ModeBrowse, v.Mode())
	})
}

func TestItineraryAddBooking(t *testing.T) {
	t.Run("name and defaults", func(t *testing.T) {
		v, _ := newTestView(t)

		v, _ = v.Update(keyRune('a'))
		require.Equal(t, ModeAddBooking, v.Mode())

		v = typeText(v, "Pintxos crawl")
		v, _ = v.Update(tea.KeyMsg{Type: tea.KeyEnter})

		require.Equal(t, ModeBrowse, v.Mode())

		bookings := v.planner.DayBookings(0)
		require.Len(t, bookings, 3)
		added := bookings[2]
		assert.Equal(t, "Pintxos crawl", added.Name)
		assert.Equal(t, domain.BookingRestaurant, added.Type, "empty type defaults to restaurant")
		assert.Equal(t, domain.StatusConfirmed, added.Status)
		assert.True(t, added.IsCustom)
	})

	t.Run("empty name is not saved", func(t *testing.T) {
		v, _ := newTestView(t)

		v, _ = v.Update(keyRune('a'))
		v, _ = v.Update(tea.KeyMsg{Type: tea.KeyEnter})

		assert.Equal(t, ModeAddBooking, v.Mode())
		assert.Len(t, v.planner.DayBookings(0), 2)
	})

	t.Run("unknown type is not saved", func(t *testing.T) {
		v, _ := newTestView(t)

		v, _ = v.Update(keyRune('a'))
		v = typeText(v, "Flight home")
		v, _ = v.Update(tea.KeyMsg{Type: tea.KeyTab})
		v = typeText(v, "flight")
		v, _ = v.Update(tea.KeyMsg{Type: tea.KeyEnter})

		assert.Equal(t, ModeAddBooking, v.Mode())
		assert.Len(t, v.planner.DayBookings(0), 2)
	})
}

func TestItineraryDelete(t *testing.T) {
	t.Run("removes only custom bookings", func(t *testing.T) {
		v, store := newTestView(t)
		_, err := store.AddBooking(0, domain.Booking{Name: "Extra dinner", Type: domain.BookingRestaurant})
		require.NoError(t, err)

		// Baseline booking: delete is a no-op.
		v.Update(keyRune('d'))
		assert.Len(t, v.planner.DayBookings(0), 3)

		// Custom booking at row 2.
		v, _ = v.Update(keyRune('j'))
		v, _ = v.Update(keyRune('j'))
		v.Update(keyRune('d'))
		assert.Len(t, v.planner.DayBookings(0), 2)
	})
}

func TestItineraryFavoriteActivity(t *testing.T) {
	v, store := newTestView(t)

	// Row 2 is the first free-time activity.
	v, _ = v.Update(keyRune('j'))
	v, _ = v.Update(keyRune('j'))
	v.Update(keyRune('x'))

	assert.True(t, store.IsFavorite(domain.ActivityKey(0, 0)))

	v.Update(keyRune('x'))
	assert.False(t, store.IsFavorite(domain.ActivityKey(0, 0)))
}

func TestItineraryDayNote(t *testing.T) {
	v, store := newTestView(t)

	v, _ = v.Update(keyRune('n'))
	require.Equal(t, ModeNote, v.Mode())

	v = typeText(v, "pack the rain jacket")
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, ModeBrowse, v.Mode())
	assert.Equal(t, "pack the rain jacket", store.DayNote(0))

	t.Run("esc cancels without saving", func(t *testing.T) {
		v, _ = v.Update(keyRune('n'))
		v = typeText(v, " and boots")
		v, _ = v.Update(tea.KeyMsg{Type: tea.KeyEsc})

		assert.Equal(t, "pack the rain jacket", store.DayNote(0))
	})
}

func TestItineraryCopyFlash(t *testing.T) {
	v, _ := newTestView(t)

	t.Run("copy on a booking with a code returns a command", func(t *testing.T) {
		_, cmd := v.Update(keyRune('c'))
		assert.NotNil(t, cmd)
	})

	t.Run("copy on a booking without a code does nothing", func(t *testing.T) {
		v, _ = v.Update(keyRune('j'))
		_, cmd := v.Update(keyRune('c'))
		assert.Nil(t, cmd)
		v, _ = v.Update(keyRune('k'))
	})

	t.Run("flash shows then expires", func(t *testing.T) {
		key := domain.BookingKey(0, 0)
		v, cmd := v.Update(messages.CodeCopied{Key: key, Code: "L8DZY5"})
		require.NotNil(t, cmd, "expiry tick must be scheduled")
		assert.Contains(t, v.View(), "(copied)")

		v, _ = v.Update(messages.CopyFlashExpired{Key: key})
		assert.NotContains(t, v.View(), "(copied)")
	})

	t.Run("stale expiry does not clear a newer flash", func(t *testing.T) {
		v, _ = v.Update(messages.CodeCopied{Key: domain.BookingKey(0, 0), Code: "L8DZY5"})
		v, _ = v.Update(messages.CopyFlashExpired{Key: domain.BookingKey(0, 1)})
		assert.Contains(t, v.View(), "(copied)")
	})
}

func TestItineraryFavoriteStop(t *testing.T) {
	v, store := newTestView(t)

	// Day 1: one booking, no activities, one road-trip stop.
	v, _ = v.Update(keyRune('l'))
	v, _ = v.Update(keyRune('j'))
	require.Equal(t, 1, v.SelectedRow())

	v.Update(keyRune('x'))
	assert.True(t, store.IsFavorite(domain.StopKey(1, 0)))
	assert.Contains(t, v.View(), "★")

	v.Update(keyRune('x'))
	assert.False(t, store.IsFavorite(domain.StopKey(1, 0)))
}

func TestItineraryRender(t *testing.T) {
	v, store := newTestView(t)

	out := v.View()
	assert.Contains(t, out, "Day 1/2")
	assert.Contains(t, out, "Frecciarossa 9588")
	assert.Contains(t, out, "Via Roma stroll")

	t.Run("road trip day lists the stops", func(t *testing.T) {
		v, _ = v.Update(keyRune('l'))
		out := v.View()
		assert.Contains(t, out, "Road trip: Torino → San Sebastián")
		assert.Contains(t, out, "Carcassonne")
	})

	t.Run("day note is rendered", func(t *testing.T) {
		store.SetDayNote(1, "long drive, start early")
		assert.Contains(t, v.View(), "long drive, start early")
	})
}

func TestItineraryJumpToToday(t *testing.T) {
	store := services.NewAnnotationStore(memory.NewKVStore())
	trip := testTrip()
	today := time.Now()
	trip.Days[1].ISODate = today.Format("2006-01-02")
	planner, err := services.NewPlanner(stubSource{trip: trip}, store)
	require.NoError(t, err)

	v := NewView(nil, planner, store)
	v.SetDimensions(100, 40)

	v.Init()
	assert.Equal(t, 1, v.DayIndex(), "first entry jumps to today")

	t.Run("jump happens only once", func(t *testing.T) {
		v, _ = v.Update(keyRune('h'))
		v.Init()
		assert.Equal(t, 0, v.DayIndex())
	})

	t.Run("t jumps back to today", func(t *testing.T) {
		v.Update(keyRune('t'))
		assert.Equal(t, 1, v.DayIndex())
	})
}
