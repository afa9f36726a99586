package diary

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripdeck-labs/tripdeck-cli/internal/adapters/driven/storage/memory"
	"github.com/tripdeck-labs/tripdeck-cli/internal/adapters/driving/tui/messages"
	"github.com/tripdeck-labs/tripdeck-cli/internal/core/domain"
	"github.com/tripdeck-labs/tripdeck-cli/internal/core/services"
)

func newTestView(t *testing.T) (*View, *services.AnnotationStore) {
	t.Helper()
	store := services.NewAnnotationStore(memory.NewKVStore())

	_, err := store.AddEntry(domain.DiaryEntry{Title: "Arrival", Text: "Made it to Donostia", Location: "San Sebastián"})
	require.NoError(t, err)
	_, err = store.AddEntry(domain.DiaryEntry{Title: "First pintxos"})
	require.NoError(t, err)

	v := NewView(nil, store)
	v.SetDimensions(80, 24)
	return v, store
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestDiaryNavigation(t *testing.T) {
	v, _ := newTestView(t)

	v, _ = v.Update(keyRune('j'))
	assert.Equal(t, 1, v.Selected())

	// stops at the last entry
	v, _ = v.Update(keyRune('j'))
	assert.Equal(t, 1, v.Selected())

	v, _ = v.Update(keyRune('k'))
	assert.Equal(t, 0, v.Selected())
}

func TestDiaryAddFlow(t *testing.T) {
	v, store := newTestView(t)

	v, _ = v.Update(keyRune('a'))
	for _, r := range "La Concha at dusk" {
		v, _ = v.Update(keyRune(r))
	}
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyTab})
	for _, r := range "Walked the whole bay" {
		v, _ = v.Update(keyRune(r))
	}
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	entries := store.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, "La Concha at dusk", entries[2].Title)
	assert.Equal(t, "Walked the whole bay", entries[2].Text)

	t.Run("empty title is not saved", func(t *testing.T) {
		v, _ = v.Update(keyRune('a'))
		v, _ = v.Update(tea.KeyMsg{Type: tea.KeyEnter})

		assert.Len(t, store.Entries(), 3)
		v, _ = v.Update(tea.KeyMsg{Type: tea.KeyEsc})
	})

	t.Run("bad photo path keeps the form open", func(t *testing.T) {
		v, _ = v.Update(keyRune('a'))
		for _, r := range "Photo test" {
			v, _ = v.Update(keyRune(r))
		}
		for range [3]int{} {
			v, _ = v.Update(tea.KeyMsg{Type: tea.KeyTab})
		}
		for _, r := range "/nonexistent/concha.jpg" {
			v, _ = v.Update(keyRune(r))
		}
		v, _ = v.Update(tea.KeyMsg{Type: tea.KeyEnter})

		assert.True(t, v.adding)
		assert.Len(t, store.Entries(), 3)
		v, _ = v.Update(tea.KeyMsg{Type: tea.KeyEsc})
	})
}

func TestDiaryDelete(t *testing.T) {
	v, store := newTestView(t)

	v, _ = v.Update(keyRune('j'))
	v.Update(keyRune('d'))

	entries := store.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "Arrival", entries[0].Title)
	assert.Equal(t, 0, v.Selected(), "cursor moves up after deleting")
}

func TestDiaryBack(t *testing.T) {
	v, _ := newTestView(t)

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)

	viewChanged, ok := cmd().(messages.ViewChanged)
	require.True(t, ok)
	assert.Equal(t, messages.ViewMenu, viewChanged.View)
}

func TestDiaryRender(t *testing.T) {
	v, store := newTestView(t)

	out := v.View()
	assert.Contains(t, out, "Diary")
	assert.Contains(t, out, "Arrival")
	assert.Contains(t, out, "San Sebastián", "selected entry shows its location")
	assert.Contains(t, out, "Made it to Donostia")

	t.Run("empty diary shows the hint", func(t *testing.T) {
		for _, e := range store.Entries() {
			store.RemoveEntry(e.ID)
		}
		assert.Contains(t, v.View(), "No entries yet")
	})
}
