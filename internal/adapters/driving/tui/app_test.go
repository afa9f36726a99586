package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripdeck-labs/tripdeck-cli/internal/adapters/driving/tui/messages"
	"github.com/tripdeck-labs/tripdeck-cli/internal/core/domain"
)

func TestNewApp_Success(t *testing.T) {
	app, err := NewApp(newTestPorts(t))

	require.NoError(t, err)
	require.NotNil(t, app)
	assert.Equal(t, messages.ViewMenu, app.CurrentView())
}

func TestNewApp_InvalidPorts(t *testing.T) {
	ports := newTestPorts(t)
	ports.Planner = nil

	app, err := NewApp(ports)

	assert.Error(t, err)
	assert.Nil(t, app)
}

func TestApp_WithContext(t *testing.T) {
	app, _ := NewApp(newTestPorts(t))

	type contextKey string
	ctx := context.WithValue(context.Background(), contextKey("key"), "value")
	result := app.WithContext(ctx)

	assert.Equal(t, app, result)
}

func TestApp_Init(t *testing.T) {
	app, _ := NewApp(newTestPorts(t))

	cmd := app.Init()

	assert.NotNil(t, cmd)
}

func TestApp_Update_WindowSize(t *testing.T) {
	app, _ := NewApp(newTestPorts(t))

	model, cmd := app.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	assert.Equal(t, app, model)
	assert.Nil(t, cmd)
	assert.True(t, app.Ready())
}

func TestApp_Update_CountdownTicked(t *testing.T) {
	t.Run("counting down schedules the next tick", func(t *testing.T) {
		app, _ := NewApp(newTestPorts(t))

		msg := messages.CountdownTicked{
			Countdown: domain.Countdown{State: domain.CountingDown, Days: 3},
			At:        time.Now(),
		}
		_, cmd := app.Update(msg)

		assert.NotNil(t, cmd)
		assert.False(t, app.CountdownDone())
	})

	t.Run("arrived stops the ticker for good", func(t *testing.T) {
		app, _ := NewApp(newTestPorts(t))

		msg := messages.CountdownTicked{
			Countdown: domain.Countdown{State: domain.Arrived},
			At:        time.Now(),
		}
		_, cmd := app.Update(msg)

		assert.Nil(t, cmd)
		assert.True(t, app.CountdownDone())
	})
}

func TestApp_Update_TripReloaded(t *testing.T) {
	t.Run("failed reload surfaces the error", func(t *testing.T) {
		app, _ := NewApp(newTestPorts(t))

		_, cmd := app.Update(messages.TripReloaded{Err: errors.New("bad trip file")})

		assert.Nil(t, cmd)
		assert.Error(t, app.Err())
	})

	t.Run("reload clears a stale error", func(t *testing.T) {
		app, _ := NewApp(newTestPorts(t))
		app.Update(messages.ErrorOccurred{Err: errors.New("old news")})

		app.Update(messages.TripReloaded{})

		assert.NoError(t, app.Err())
	})

	t.Run("restarts a stopped countdown", func(t *testing.T) {
		app, _ := NewApp(newTestPorts(t))
		app.Update(messages.CountdownTicked{Countdown: domain.Countdown{State: domain.Arrived}, At: time.Now()})
		require.True(t, app.CountdownDone())

		_, cmd := app.Update(messages.TripReloaded{})

		assert.NotNil(t, cmd)
		assert.False(t, app.CountdownDone())
	})

	t.Run("leaves a live countdown ticking once", func(t *testing.T) {
		app, _ := NewApp(newTestPorts(t))

		_, cmd := app.Update(messages.TripReloaded{})

		assert.Nil(t, cmd)
	})
}

func TestApp_Update_ViewChanged(t *testing.T) {
	views := []messages.ViewType{
		messages.ViewItinerary,
		messages.ViewBookings,
		messages.ViewGuide,
		messages.ViewEntertainment,
		messages.ViewTasks,
		messages.ViewDiary,
		messages.ViewHelp,
		messages.ViewMenu,
	}

	for _, view := range views {
		t.Run(view.String(), func(t *testing.T) {
			app, _ := NewApp(newTestPorts(t))
			app.SetDimensions(80, 24)

			model, _ := app.Update(messages.ViewChanged{View: view})

			assert.Equal(t, app, model)
			assert.Equal(t, view, app.CurrentView())
		})
	}
}

func TestApp_Update_KeyMsg_CtrlC(t *testing.T) {
	app, _ := NewApp(newTestPorts(t))

	model, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	assert.Equal(t, app, model)
	assert.NotNil(t, cmd)
}

func TestApp_Update_KeyMsg_Quit(t *testing.T) {
	app, _ := NewApp(newTestPorts(t))
	app.SetDimensions(80, 24)

	// 'q' from the menu quits
	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})

	assert.NotNil(t, cmd)
}

func TestApp_Update_KeyMsg_InHelpView_Escape(t *testing.T) {
	app, _ := NewApp(newTestPorts(t))
	app.SetDimensions(80, 24)
	app.Update(messages.ViewChanged{View: messages.ViewHelp})

	model, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, app, model)
	assert.Nil(t, cmd)
	assert.Equal(t, messages.ViewMenu, app.CurrentView())
}

func TestApp_Update_KeyMsg_InHelpView_OtherKey(t *testing.T) {
	app, _ := NewApp(newTestPorts(t))
	app.SetDimensions(80, 24)
	app.Update(messages.ViewChanged{View: messages.ViewHelp})

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyDown})

	assert.Nil(t, cmd)
	assert.Equal(t, messages.ViewHelp, app.CurrentView())
}

func TestApp_Update_MenuNavigationToItinerary(t *testing.T) {
	app, _ := NewApp(newTestPorts(t))
	app.SetDimensions(80, 24)

	// Enter on the first menu item selects Itinerary
	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	msg := cmd()
	viewChanged, ok := msg.(messages.ViewChanged)
	require.True(t, ok)
	assert.Equal(t, messages.ViewItinerary, viewChanged.View)

	app.Update(viewChanged)
	assert.Equal(t, messages.ViewItinerary, app.CurrentView())
}

func TestApp_Update_ErrorOccurred(t *testing.T) {
	app, _ := NewApp(newTestPorts(t))

	model, cmd := app.Update(messages.ErrorOccurred{Err: errors.New("something went wrong")})

	assert.Equal(t, app, model)
	assert.Nil(t, cmd)
	assert.Error(t, app.Err())
}

func TestApp_Update_Quit(t *testing.T) {
	app, _ := NewApp(newTestPorts(t))

	_, cmd := app.Update(messages.Quit{})

	assert.NotNil(t, cmd)
}

func TestApp_View_NotReady(t *testing.T) {
	app, _ := NewApp(newTestPorts(t))

	assert.Contains(t, app.View(), "Initialising")
}

func TestApp_View_MenuView(t *testing.T) {
	app, _ := NewApp(newTestPorts(t))
	app.SetDimensions(80, 24)

	view := app.View()

	assert.Contains(t, view, "Tripdeck")
	assert.Contains(t, view, "Itinerary")
}

func TestApp_View_HelpView(t *testing.T) {
	app, _ := NewApp(newTestPorts(t))
	app.SetDimensions(80, 24)
	app.Update(messages.ViewChanged{View: messages.ViewHelp})

	view := app.View()

	assert.Contains(t, view, "Help")
	assert.Contains(t, view, "Navigation")
}

func TestApp_View_TasksView(t *testing.T) {
	app, _ := NewApp(newTestPorts(t))
	app.SetDimensions(80, 24)
	app.Update(messages.ViewChanged{View: messages.ViewTasks})

	assert.NotEmpty(t, app.View())
}

func TestApp_View_DefaultView(t *testing.T) {
	app, _ := NewApp(newTestPorts(t))
	app.SetDimensions(80, 24)
	app.currentView = messages.ViewType(999)

	// Unknown view types fall back to the menu
	assert.Contains(t, app.View(), "Tripdeck")
}

func TestApp_SetDimensions(t *testing.T) {
	app, _ := NewApp(newTestPorts(t))

	assert.False(t, app.Ready())

	app.SetDimensions(100, 50)

	assert.True(t, app.Ready())
}
