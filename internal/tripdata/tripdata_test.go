package tripdata

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinCatalog(t *testing.T) {
	trip, err := NewSource().Load()
	require.NoError(t, err)
	require.NotNil(t, trip)

	t.Run("has an itinerary and a name", func(t *testing.T) {
		assert.NotEmpty(t, trip.Name)
		assert.NotEmpty(t, trip.Days)
	})

	t.Run("departure instant parses", func(t *testing.T) {
		_, err := time.Parse(time.RFC3339, trip.StartsAt)
		assert.NoError(t, err)
	})

	t.Run("every day has the calendar fields set", func(t *testing.T) {
		for _, day := range trip.Days {
			assert.NotEmpty(t, day.Date)
			_, err := time.Parse("2006-01-02", day.ISODate)
			assert.NoError(t, err, "day %q", day.Date)
		}
	})

	t.Run("every booking has a valid type and status", func(t *testing.T) {
		for di, day := range trip.Days {
			for bi, b := range day.Bookings {
				assert.True(t, b.Type.IsValid(), "day %d booking %d", di, bi)
				assert.True(t, b.Status.IsValid(), "day %d booking %d", di, bi)
				assert.NotEmpty(t, b.Name)
			}
		}
	})

	t.Run("guide catalogs are populated", func(t *testing.T) {
		assert.NotEmpty(t, trip.Guide.PintxoBars)
		assert.NotEmpty(t, trip.Guide.MustSee)
		assert.NotEmpty(t, trip.Guide.Films)
	})
}
