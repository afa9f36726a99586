package guide

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

type stubSource struct {
	trip *domain.Trip
}

func (s stubSource) Load() (*domain.Trip, error) {
	return s.trip, nil
}

func newTestView(t *testing.T) (*View, *services.AnnotationStore) {
	t.Helper()
	store := services.NewAnnotationStore(memory.NewKVStore())
	planner, err := services.NewPlanner(stubSource{trip: &domain.Trip{
		Name: "test",
		Days: []domain.DayPlan{{Date: "1 February", ISODate: "2026-02-01"}},
		Guide: domain.GuideCatalog{
			PintxoBars: []domain.PintxoBar{
				{Name: "Gandarias", Specialty: "Solomillo"},
				{Name: "Bar Nestor", Specialty: "Tortilla"},
			},
			MustSee:      []domain.Place{{Name: "La Concha"}},
			BilbaoPlaces: []domain.Place{{Name: "Guggenheim"}},
		},
	}}, store)
	require.NoError(t, err)

	v := NewView(nil, planner, store)
	v.SetDimensions(80, 24)
	return v, store
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestGuideTabs(t *testing.T) {
	v, _ := newTestView(t)

	v, _ = v.Update(keyRune('h'))
	assert.Equal(t, TabPintxos, v.CurrentTab(), "already at the first tab")

	v, _ = v.Update(keyRune('l'))
	assert.Equal(t, TabMustSee, v.CurrentTab())

	v, _ = v.Update(keyRune('l'))
	assert.Equal(t, TabBilbao, v.CurrentTab())

	v, _ = v.Update(keyRune('l'))
	assert.Equal(t, TabBilbao, v.CurrentTab(), "already at the last tab")
}

func TestGuideTabSwitchResetsCursor(t *testing.T) {
	v, _ := newTestView(t)

	v, _ = v.Update(keyRune('j'))
	require.Equal(t, 1, v.Selected())

	v, _ = v.Update(keyRune('l'))
	assert.Equal(t, 0, v.Selected())
}

func TestGuideMarks(t *testing.T) {
	v, store := newTestView(t)

	t.Run("x toggles visited", func(t *testing.T) {
		v.Update(keyRune('x'))
		assert.True(t, store.IsVisited(domain.PintxoKey(0)))

		v.Update(keyRune('x'))
		assert.False(t, store.IsVisited(domain.PintxoKey(0)))
	})

	t.Run("f toggles favourite independently", func(t *testing.T) {
		v.Update(keyRune('f'))
		assert.True(t, store.IsFavorite(domain.PintxoKey(0)))
		assert.False(t, store.IsVisited(domain.PintxoKey(0)))
	})

	t.Run("marks follow the active tab", func(t *testing.T) {
		v, _ = v.Update(keyRune('l')) // must-see
		v.Update(keyRune('x'))
		assert.True(t, store.IsVisited(domain.PlaceKey(0)))
	})
}

func TestGuideAdd(t *testing.T) {
	v, _ := newTestView(t)

	v, _ = v.Update(keyRune('a'))
	for _, r := range "Antonio Bar" {
		v, _ = v.Update(keyRune(r))
	}
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyTab})
	for _, r := range "Tortilla" {
		v, _ = v.Update(keyRune(r))
	}
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	bars := v.planner.PintxoBars()
	require.Len(t, bars, 3)
	assert.Equal(t, "Antonio Bar", bars[2].Name)
	assert.Equal(t, "Tortilla", bars[2].Specialty)
	assert.True(t, bars[2].IsCustom)

	t.Run("empty name is not saved", func(t *testing.T) {
		v, _ = v.Update(keyRune('a'))
		v, _ = v.Update(tea.KeyMsg{Type: tea.KeyEnter})

		assert.Len(t, v.planner.PintxoBars(), 3)
		v, _ = v.Update(tea.KeyMsg{Type: tea.KeyEsc})
	})
}

func TestGuideDelete(t *testing.T) {
	v, store := newTestView(t)
	_, err := store.AddPintxoBar(domain.PintxoBar{Name: "Antonio Bar"})
	require.NoError(t, err)

	t.Run("baseline entries cannot be removed", func(t *testing.T) {
		v.Update(keyRune('d'))
		assert.Len(t, v.planner.PintxoBars(), 3)
	})

	t.Run("custom entries can", func(t *testing.T) {
		v, _ = v.Update(keyRune('j'))
		v, _ = v.Update(keyRune('j'))
		v.Update(keyRune('d'))
		assert.Len(t, v.planner.PintxoBars(), 2)
	})
}

func TestGuideBack(t *testing.T) {
	v, _ := newTestView(t)

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)

	viewChanged, ok := cmd().(messages.ViewChanged)
	require.True(t, ok)
	assert.Equal(t, messages.ViewMenu, viewChanged.View)
}

func TestGuideRender(t *testing.T) {
	v, store := newTestView(t)

	out := v.View()
	assert.Contains(t, out, "Pintxos")
	assert.Contains(t, out, "Gandarias")
	assert.Contains(t, out, "Solomillo", "selected row shows its detail")

	t.Run("visited and favourite markers", func(t *testing.T) {
		store.ToggleVisited(domain.PintxoKey(0))
		store.ToggleFavorite(domain.PintxoKey(0))

		out := v.View()
		assert.Contains(t, out, "✓")
		assert.Contains(t, out, "★")
	})
}
