package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkSetToggle(t *testing.T) {
	t.Run("adds a missing key", func(t *testing.T) {
		s := NewMarkSet()
		out := s.Toggle("place-2")

		assert.True(t, out.Has("place-2"))
		assert.False(t, s.Has("place-2"), "original set must not change")
	})

	t.Run("removes a present key", func(t *testing.T) {
		s := NewMarkSet("place-2", "pintxo-0")
		out := s.Toggle("place-2")

		assert.False(t, out.Has("place-2"))
		assert.True(t, out.Has("pintxo-0"))
	})

	t.Run("double toggle restores the set", func(t *testing.T) {
		s := NewMarkSet("booking-0-1")
		out := s.Toggle("film-3").Toggle("film-3")

		assert.Equal(t, s.Encode(), out.Encode())
	})
}

func TestMarkSetEncode(t *testing.T) {
	t.Run("is sorted", func(t *testing.T) {
		s := NewMarkSet("pintxo-2", "bilbao-0", "place-1")

		assert.Equal(t, []string{"bilbao-0", "pintxo-2", "place-1"}, s.Encode())
	})

	t.Run("empty set encodes as empty non-nil slice", func(t *testing.T) {
		enc := NewMarkSet().Encode()

		require.NotNil(t, enc)
		assert.Empty(t, enc)
	})

	t.Run("round-trips through decode", func(t *testing.T) {
		s := NewMarkSet("a", "b", "c")
		out := DecodeMarkSet(s.Encode())

		assert.Equal(t, s, out)
	})

	t.Run("decode collapses duplicates", func(t *testing.T) {
		out := DecodeMarkSet([]string{"a", "a", "b"})

		assert.Len(t, out, 2)
	})
}
