package sqlite

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStoreRoundTrip(t *testing.T) {
	s := newTestStore(t)

	t.Run("missing key reads as absent", func(t *testing.T) {
		_, ok := s.Get("never_written")
		assert.False(t, ok)
	})

	t.Run("set then get", func(t *testing.T) {
		require.NoError(t, s.Set("trip_notes", []byte(`"remember the chargers"`)))

		got, ok := s.Get("trip_notes")
		require.True(t, ok)
		assert.Equal(t, `"remember the chargers"`, string(got))
	})

	t.Run("set replaces the previous value", func(t *testing.T) {
		require.NoError(t, s.Set("trip_notes", []byte(`"updated"`)))

		got, ok := s.Get("trip_notes")
		require.True(t, ok)
		assert.Equal(t, `"updated"`, string(got))
	})

	t.Run("delete removes, missing delete is a no-op", func(t *testing.T) {
		require.NoError(t, s.Delete("trip_notes"))
		_, ok := s.Get("trip_notes")
		assert.False(t, ok)

		require.NoError(t, s.Delete("trip_notes"))
	})
}

func TestStoreKeys(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Set("visited", []byte("[]")))
	require.NoError(t, s.Set("favorites", []byte("[]")))

	assert.Equal(t, []string{"favorites", "visited"}, s.Keys())
}

func TestStorePersistsAcrossOpens(t *testing.T) {
	dir := t.TempDir()

	first, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, first.Set("tasks", []byte("[]")))
	require.NoError(t, first.Close())

	second, err := NewStore(dir)
	require.NoError(t, err)
	defer second.Close()

	got, ok := second.Get("tasks")
	require.True(t, ok)
	assert.Equal(t, "[]", string(got))
	assert.Equal(t, filepath.Join(dir, "trip.db"), second.Path())
}
