package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTheme(t *testing.T) {
	theme := DefaultTheme()

	require.NotNil(t, theme)
	assert.NotEmpty(t, string(theme.Primary))
	assert.NotEmpty(t, string(theme.Accent))
	assert.NotEmpty(t, string(theme.Foreground))
	assert.NotEmpty(t, string(theme.Muted))
	assert.NotEmpty(t, string(theme.Highlight))
	assert.NotEmpty(t, string(theme.Success))
	assert.NotEmpty(t, string(theme.Warning))
	assert.NotEmpty(t, string(theme.Error))
}

func TestDefaultTheme_ColorsAreDistinct(t *testing.T) {
	theme := DefaultTheme()

	colors := []lipgloss.Color{
		theme.Primary,
		theme.Accent,
		theme.Success,
		theme.Warning,
		theme.Error,
	}

	seen := make(map[string]bool)
	for _, c := range colors {
		s := string(c)
		assert.False(t, seen[s], "duplicate color: %s", s)
		seen[s] = true
	}
}

func TestNewStyles(t *testing.T) {
	t.Run("with a theme", func(t *testing.T) {
		theme := DefaultTheme()
		s := NewStyles(theme)

		require.NotNil(t, s)
		assert.Equal(t, theme, s.Theme())
	})

	t.Run("nil theme falls back to the default", func(t *testing.T) {
		s := NewStyles(nil)

		require.NotNil(t, s)
		assert.NotNil(t, s.Theme())
	})
}

func TestStyles_AllStylesInitialised(t *testing.T) {
	s := DefaultStyles()

	assert.NotEqual(t, lipgloss.Style{}, s.Title)
	assert.NotEqual(t, lipgloss.Style{}, s.Subtitle)
	assert.NotEqual(t, lipgloss.Style{}, s.Normal)
	assert.NotEqual(t, lipgloss.Style{}, s.Muted)
	assert.NotEqual(t, lipgloss.Style{}, s.Selected)
	assert.NotEqual(t, lipgloss.Style{}, s.Success)
	assert.NotEqual(t, lipgloss.Style{}, s.Warning)
	assert.NotEqual(t, lipgloss.Style{}, s.Error)
	assert.NotEqual(t, lipgloss.Style{}, s.Help)
}

func TestStyles_CanRenderText(t *testing.T) {
	s := DefaultStyles()

	testCases := []struct {
		name  string
		style lipgloss.Style
	}{
		{"Title", s.Title},
		{"Subtitle", s.Subtitle},
		{"Normal", s.Normal},
		{"Muted", s.Muted},
		{"Selected", s.Selected},
		{"Success", s.Success},
		{"Warning", s.Warning},
		{"Error", s.Error},
		{"Help", s.Help},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.NotEmpty(t, tc.style.Render("test text"))
		})
	}
}
