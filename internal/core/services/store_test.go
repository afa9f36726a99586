package services

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripdeck-labs/tripdeck-cli/internal/adapters/driven/storage/memory"
	"github.com/tripdeck-labs/tripdeck-cli/internal/core/domain"
)

func TestNewAnnotationStoreHydration(t *testing.T) {
	t.Run("empty store yields defaults", func(t *testing.T) {
		s := NewAnnotationStore(memory.NewKVStore())

		assert.Empty(t, s.TripNotes())
		assert.Empty(t, s.Checklist())
		assert.Empty(t, s.Entries())
		assert.False(t, s.IsFavorite(domain.PintxoKey(0)))
	})

	t.Run("seeds default tasks on first run", func(t *testing.T) {
		kv := memory.NewKVStore()
		s := NewAnnotationStore(kv)

		assert.Len(t, s.Tasks(), len(DefaultTasks()))

		raw, ok := kv.Get("tasks")
		require.True(t, ok, "seeded tasks must be persisted immediately")
		var persisted []domain.Task
		require.NoError(t, json.Unmarshal(raw, &persisted))
		assert.Len(t, persisted, len(DefaultTasks()))
	})

	t.Run("does not reseed over an emptied task list", func(t *testing.T) {
		kv := memory.NewKVStore()
		require.NoError(t, kv.Set("tasks", []byte("[]")))

		s := NewAnnotationStore(kv)
		assert.Empty(t, s.Tasks(), "a deliberately emptied list stays empty")
	})

	t.Run("corrupt record only takes down its own collection", func(t *testing.T) {
		kv := memory.NewKVStore()
		require.NoError(t, kv.Set("trip_notes", []byte(`"remember the chargers"`)))
		require.NoError(t, kv.Set("favorites", []byte("{not json")))

		s := NewAnnotationStore(kv)

		assert.Equal(t, "remember the chargers", s.TripNotes(), "healthy record survives")
		assert.False(t, s.IsFavorite(domain.PintxoKey(1)), "corrupt collection falls back to empty")
	})
}

func TestAnnotationStoreRoundTrip(t *testing.T) {
	kv := memory.NewKVStore()

	first := NewAnnotationStore(kv)
	first.SetTripNotes("passports in the front pocket")
	first.SetDayNote(2, "meeting starts at nine")
	first.ToggleFavorite(domain.PintxoKey(3))
	first.ToggleVisited(domain.PlaceKey(0))

	second := NewAnnotationStore(kv)

	assert.Equal(t, "passports in the front pocket", second.TripNotes())
	assert.Equal(t, "meeting starts at nine", second.DayNote(2))
	assert.True(t, second.IsFavorite(domain.PintxoKey(3)))
	assert.True(t, second.IsVisited(domain.PlaceKey(0)))
	assert.False(t, second.IsFavorite(domain.PlaceKey(0)), "favorite and visited sets stay separate")
}

func TestAnnotationStoreWriteFailure(t *testing.T) {
	kv := memory.NewKVStore()
	s := NewAnnotationStore(kv)

	kv.SetFailWrites(errors.New("disk full"))
	s.SetTripNotes("written into the void")
	s.ToggleFavorite(domain.PintxoKey(0))

	t.Run("session keeps the mutation", func(t *testing.T) {
		assert.Equal(t, "written into the void", s.TripNotes())
		assert.True(t, s.IsFavorite(domain.PintxoKey(0)))
	})

	t.Run("reload loses the unwritten mutation", func(t *testing.T) {
		kv.SetFailWrites(nil)
		reloaded := NewAnnotationStore(kv)
		assert.Empty(t, reloaded.TripNotes())
		assert.False(t, reloaded.IsFavorite(domain.PintxoKey(0)))
	})
}

func TestDayNotes(t *testing.T) {
	s := NewAnnotationStore(memory.NewKVStore())

	s.SetDayNote(1, "pack the rain jacket")
	assert.Equal(t, "pack the rain jacket", s.DayNote(1))
	assert.Empty(t, s.DayNote(0), "other days unaffected")

	t.Run("empty text removes the note", func(t *testing.T) {
		s.SetDayNote(1, "")
		assert.Empty(t, s.DayNote(1))
	})
}

func TestChecklist(t *testing.T) {
	s := NewAnnotationStore(memory.NewKVStore())

	t.Run("rejects blank text", func(t *testing.T) {
		_, err := s.AddChecklistItem("   ", "documents")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	item, err := s.AddChecklistItem("Passport", "documents")
	require.NoError(t, err)
	require.NotEmpty(t, item.ID)
	assert.False(t, item.Checked)

	t.Run("toggle flips and unknown id is a no-op", func(t *testing.T) {
		s.ToggleChecklistItem(item.ID)
		require.Len(t, s.Checklist(), 1)
		assert.True(t, s.Checklist()[0].Checked)

		s.ToggleChecklistItem("no-such-id")
		assert.True(t, s.Checklist()[0].Checked)
	})

	t.Run("remove deletes the item", func(t *testing.T) {
		s.RemoveChecklistItem(item.ID)
		assert.Empty(t, s.Checklist())
	})
}
