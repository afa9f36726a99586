package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tripdeck-labs/tripdeck-cli/internal/adapters/driving/tui/keymap"
	"github.com/tripdeck-labs/tripdeck-cli/internal/adapters/driving/tui/messages"
	"github.com/tripdeck-labs/tripdeck-cli/internal/adapters/driving/tui/styles"
	"github.com/tripdeck-labs/tripdeck-cli/internal/adapters/driving/tui/views/bookings"
	"github.com/tripdeck-labs/tripdeck-cli/internal/adapters/driving/tui/views/diary"
	"github.com/tripdeck-labs/tripdeck-cli/internal/adapters/driving/tui/views/entertainment"
	"github.com/tripdeck-labs/tripdeck-cli/internal/adapters/driving/tui/views/guide"
	"github.com/tripdeck-labs/tripdeck-cli/internal/adapters/driving/tui/views/itinerary"
	"github.com/tripdeck-labs/tripdeck-cli/internal/adapters/driving/tui/views/menu"
	"github.com/tripdeck-labs/tripdeck-cli/internal/adapters/driving/tui/views/tasks"
	"github.com/tripdeck-labs/tripdeck-cli/internal/core/domain"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// keys holds the global keybindings.
	keys *keymap.KeyMap

	// menuView is the main navigation menu.
	menuView *menu.View

	// itineraryView is the day-by-day itinerary view.
	itineraryView *itinerary.View

	// bookingsView is the aggregated bookings view.
	bookingsView *bookings.View

	// guideView is the pintxos/places guide view.
	guideView *guide.View

	// entertainmentView is the films and series view.
	entertainmentView *entertainment.View

	// tasksView is the task checklist view.
	tasksView *tasks.View

	// diaryView is the travel diary view.
	diaryView *diary.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// countdownDone stops the per-second tick once the trip started.
	countdownDone bool

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	trip := ports.Planner.Trip()
	menuView := menu.NewView(s, trip.Name)
	itineraryView := itinerary.NewView(s, ports.Planner, ports.Annotations)
	bookingsView := bookings.NewView(s, ports.Planner, ports.Annotations)
	guideView := guide.NewView(s, ports.Planner, ports.Annotations)
	entertainmentView := entertainment.NewView(s, ports.Planner, ports.Annotations)
	tasksView := tasks.NewView(s, ports.Tasks, ports.Annotations)
	diaryView := diary.NewView(s, ports.Diary)

	return &App{
		ports:             ports,
		ctx:               context.Background(),
		styles:            s,
		keys:              keymap.DefaultKeyMap(),
		menuView:          menuView,
		itineraryView:     itineraryView,
		bookingsView:      bookingsView,
		guideView:         guideView,
		entertainmentView: entertainmentView,
		tasksView:         tasksView,
		diaryView:         diaryView,
		currentView:       messages.ViewMenu, // Start with menu
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
// It runs initial commands when the program starts.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("tripdeck - "+a.ports.Planner.Trip().Name),
		a.tickCountdown(time.Now()),
	)
}

// tickCountdown computes the countdown immediately and schedules the
// next second's refresh. Ticking stops for good once the countdown
// reaches Arrived; the state machine is terminal.
func (a *App) tickCountdown(now time.Time) tea.Cmd {
	c := a.ports.Planner.Countdown(now)
	emit := func() tea.Msg {
		return messages.CountdownTicked{Countdown: c, At: now}
	}
	if c.State == domain.Arrived {
		return emit
	}
	return tea.Batch(emit, tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return messages.CountdownTicked{Countdown: a.ports.Planner.Countdown(t), At: t}
	}))
}

// Update implements tea.Model.
// It handles messages and updates the model state.
//
//nolint:gocognit,gocyclo // central message handler requires complexity
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		// Forward to all views for proper sizing
		a.menuView.SetDimensions(msg.Width, msg.Height)
		a.itineraryView.SetDimensions(msg.Width, msg.Height)
		a.bookingsView.SetDimensions(msg.Width, msg.Height)
		a.guideView.SetDimensions(msg.Width, msg.Height)
		a.entertainmentView.SetDimensions(msg.Width, msg.Height)
		a.tasksView.SetDimensions(msg.Width, msg.Height)
		a.diaryView.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case messages.CountdownTicked:
		a.menuView, _ = a.menuView.Update(msg)
		if msg.Countdown.State == domain.Arrived {
			a.countdownDone = true
			return a, nil
		}
		return a, tea.Tick(time.Second, func(t time.Time) tea.Msg {
			return messages.CountdownTicked{Countdown: a.ports.Planner.Countdown(t), At: t}
		})

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		// Forward key messages to active view
		switch a.currentView {
		case messages.ViewMenu:
			a.menuView, cmd = a.menuView.Update(msg)
			return a, cmd

		case messages.ViewItinerary:
			a.itineraryView, cmd = a.itineraryView.Update(msg)
			return a, cmd

		case messages.ViewBookings:
			a.bookingsView, cmd = a.bookingsView.Update(msg)
			return a, cmd

		case messages.ViewGuide:
			a.guideView, cmd = a.guideView.Update(msg)
			return a, cmd

		case messages.ViewEntertainment:
			a.entertainmentView, cmd = a.entertainmentView.Update(msg)
			return a, cmd

		case messages.ViewTasks:
			a.tasksView, cmd = a.tasksView.Update(msg)
			return a, cmd

		case messages.ViewDiary:
			a.diaryView, cmd = a.diaryView.Update(msg)
			return a, cmd

		case messages.ViewHelp:
			// Esc from help goes to menu
			if keymap.Matches(msg.String(), a.keys.Back) {
				a.currentView = messages.ViewMenu
				return a, nil
			}
			return a, nil
		}
		return a, nil

	case messages.ViewChanged:
		a.currentView = msg.View
		// Initialise views when switching to them
		switch msg.View {
		case messages.ViewItinerary:
			a.itineraryView.Reset()
			return a, a.itineraryView.Init()
		case messages.ViewBookings:
			a.bookingsView.Reset()
			return a, a.bookingsView.Init()
		case messages.ViewGuide:
			a.guideView.Reset()
			return a, a.guideView.Init()
		case messages.ViewEntertainment:
			a.entertainmentView.Reset()
			return a, a.entertainmentView.Init()
		case messages.ViewTasks:
			a.tasksView.Reset()
			return a, a.tasksView.Init()
		case messages.ViewDiary:
			a.diaryView.Reset()
			return a, a.diaryView.Init()
		case messages.ViewMenu, messages.ViewHelp:
			// These views don't need special initialisation
		}
		return a, nil

	case messages.CodeCopied, messages.CopyFlashExpired:
		// Clipboard flashes belong to whichever view triggered them
		switch a.currentView {
		case messages.ViewItinerary:
			a.itineraryView, cmd = a.itineraryView.Update(msg)
		case messages.ViewBookings:
			a.bookingsView, cmd = a.bookingsView.Update(msg)
		case messages.ViewMenu, messages.ViewGuide, messages.ViewEntertainment,
			messages.ViewTasks, messages.ViewDiary, messages.ViewHelp:
			// Other views don't copy codes
		}
		return a, cmd

	case messages.TripReloaded:
		if msg.Err != nil {
			a.err = msg.Err
			return a, nil
		}
		a.err = nil
		// A live tick chain recomputes from the planner every second;
		// only a stopped countdown needs restarting in case the
		// departure instant moved.
		if a.countdownDone {
			a.countdownDone = false
			return a, a.tickCountdown(time.Now())
		}
		return a, nil

	case messages.ErrorOccurred:
		a.err = msg.Err
		return a, nil

	case messages.Quit:
		return a, tea.Quit
	}

	// Forward other messages to active view
	switch a.currentView {
	case messages.ViewMenu:
		a.menuView, cmd = a.menuView.Update(msg)
	case messages.ViewItinerary:
		a.itineraryView, cmd = a.itineraryView.Update(msg)
	case messages.ViewBookings:
		a.bookingsView, cmd = a.bookingsView.Update(msg)
	case messages.ViewGuide:
		a.guideView, cmd = a.guideView.Update(msg)
	case messages.ViewEntertainment:
		a.entertainmentView, cmd = a.entertainmentView.Update(msg)
	case messages.ViewTasks:
		a.tasksView, cmd = a.tasksView.Update(msg)
	case messages.ViewDiary:
		a.diaryView, cmd = a.diaryView.Update(msg)
	case messages.ViewHelp:
		// Help view doesn't need to handle other messages
	}

	return a, cmd
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewMenu:
		return a.menuView.View()
	case messages.ViewItinerary:
		return a.itineraryView.View()
	case messages.ViewBookings:
		return a.bookingsView.View()
	case messages.ViewGuide:
		return a.guideView.View()
	case messages.ViewEntertainment:
		return a.entertainmentView.View()
	case messages.ViewTasks:
		return a.tasksView.View()
	case messages.ViewDiary:
		return a.diaryView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	default:
		return a.menuView.View()
	}
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	return `Help

Navigation:
  esc         Back to Menu
  ctrl+c      Quit

Menu:
  j/k, ↑/↓    Navigate options
  enter       Select option
  q           Quit

Itinerary:
  h/l, ←/→    Previous/next day
  j/k, ↑/↓    Move within the day
  e           Edit the selected booking
  a           Add a booking
  d           Delete a booking or activity you added
  space       Favourite the selected activity
  c           Copy the booking code
  n           Edit the day note
  t           Jump to today

Guide / Entertainment:
  h/l         Switch tab
  space       Mark visited / watched
  f           Favourite (guide)
  a / d       Add / delete your own entries

Tasks / Diary:
  h/l         Tasks / packing checklist
  space       Toggle task or packing item
  a / d       Add / delete

[esc] back to menu`
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// CountdownDone reports whether the per-second tick has stopped.
func (a *App) CountdownDone() bool {
	return a.countdownDone
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.menuView.SetDimensions(width, height)
	a.itineraryView.SetDimensions(width, height)
	a.bookingsView.SetDimensions(width, height)
	a.guideView.SetDimensions(width, height)
	a.entertainmentView.SetDimensions(width, height)
	a.tasksView.SetDimensions(width, height)
	a.diaryView.SetDimensions(width, height)
}
