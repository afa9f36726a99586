package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/tripdeck-labs/tripdeck-cli/internal/adapters/driving/tui"
	"github.com/tripdeck-labs/tripdeck-cli/internal/adapters/driving/tui/messages"
)

// program is the running bubbletea program, if any. The trip file
// watcher posts reload events into it.
var program *tea.Program

// NotifyTripReloaded forwards a trip file reload to the running TUI.
// Without a running TUI it is a no-op; the next command reads the
// reloaded catalog anyway.
func NotifyTripReloaded(err error) {
	if program != nil {
		program.Send(messages.TripReloaded{Err: err})
	}
}

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface for tripdeck.

The TUI shows the day-by-day itinerary with the departure countdown,
lets you edit bookings, tick off tasks, keep the guide lists and write
the diary, all with keyboard navigation.

Controls:
  ↑/k, ↓/j - Navigate
  ←/h, →/l - Previous/next day or tab
  Enter    - Select
  Esc      - Back / Cancel
  ?        - Help (from the menu)
  q        - Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	ports := tui.NewPorts(plannerService, annotationService, taskService, diaryService)

	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	app.WithContext(cmd.Context())

	program = tea.NewProgram(app, tea.WithAltScreen())
	defer func() { program = nil }()
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
