package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBookingTypeIsValid(t *testing.T) {
	tests := []struct {
		name        string
		bookingType BookingType
		want        bool
	}{
		{"train is valid", BookingTrain, true},
		{"hotel is valid", BookingHotel, true},
		{"car is valid", BookingCar, true},
		{"restaurant is valid", BookingRestaurant, true},
		{"empty is invalid", BookingType(""), false},
		{"unknown is invalid", BookingType("flight"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.bookingType.IsValid())
		})
	}
}

func TestBookingStatusNeedsAction(t *testing.T) {
	assert.False(t, StatusConfirmed.NeedsAction())
	assert.True(t, StatusPending.NeedsAction())
	assert.True(t, StatusTodo.NeedsAction())
}

func TestDayPlanState(t *testing.T) {
	now := time.Date(2026, 2, 3, 14, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		isoDate string
		want    DayState
	}{
		{"yesterday is past", "2026-02-02", DayPast},
		{"same calendar day is today", "2026-02-03", DayToday},
		{"tomorrow is future", "2026-02-04", DayFuture},
		{"unparsable date falls back to future", "not-a-date", DayFuture},
		{"empty date falls back to future", "", DayFuture},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := DayPlan{ISODate: tt.isoDate}
			assert.Equal(t, tt.want, d.State(now))
		})
	}
}

func TestTodayIndex(t *testing.T) {
	days := []DayPlan{
		{ISODate: "2026-02-01"},
		{ISODate: "2026-02-02"},
		{ISODate: "2026-02-03"},
	}

	t.Run("finds the matching day", func(t *testing.T) {
		now := time.Date(2026, 2, 2, 9, 0, 0, 0, time.UTC)
		assert.Equal(t, 1, TodayIndex(days, now))
	})

	t.Run("returns -1 outside the trip", func(t *testing.T) {
		now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
		assert.Equal(t, -1, TodayIndex(days, now))
	})
}
