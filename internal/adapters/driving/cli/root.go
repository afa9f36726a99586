// Package cli implements the tripdeck command-line interface. It is a
// driving adapter: commands talk to the core exclusively through the
// driving ports injected at startup.
package cli

import (
	"os"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tripdeck-labs/tripdeck-cli/internal/core/ports/driving"
	"github.com/tripdeck-labs/tripdeck-cli/internal/logger"
)

// version is the application version, overridable at build time.
var version = "0.1.0"

// Injected driving ports. Set once from main before Execute.
var (
	plannerService    driving.PlannerService
	annotationService driving.AnnotationService
	taskService       driving.TaskService
	diaryService      driving.DiaryService
)

// Services bundles the driving ports the CLI needs.
type Services struct {
	Planner     driving.PlannerService
	Annotations driving.AnnotationService
	Tasks       driving.TaskService
	Diary       driving.DiaryService
}

// SetServices injects the core services into the CLI commands.
func SetServices(s Services) {
	plannerService = s.Planner
	annotationService = s.Annotations
	taskService = s.Tasks
	diaryService = s.Diary
}

// bootstrap is called once before any command runs, after flags are
// parsed. Main injects it to build the services with flag values in
// effect.
var (
	bootstrapFn   func() error
	bootstrapOnce sync.Once
)

// SetBootstrap registers the service construction hook.
func SetBootstrap(fn func() error) {
	bootstrapFn = fn
}

func runBootstrap() error {
	var err error
	bootstrapOnce.Do(func() {
		if bootstrapFn != nil {
			err = bootstrapFn()
		}
	})
	return err
}

// Flag values bound on the root command.
var (
	flagVerbose bool
	flagDataDir string
	flagTrip    string
)

// rootCmd is the base command. Run without arguments on a terminal it
// launches the TUI; piped or redirected it prints help instead.
var rootCmd = &cobra.Command{
	Use:   "tripdeck",
	Short: "Personal trip companion in the terminal",
	Long: `Tripdeck is a personal travel companion: the full itinerary,
bookings, city guide, task list and diary of the trip, in the terminal.

All annotations are stored locally. The baseline itinerary ships with
the binary and can be overridden with a JSON file (--trip).`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		return runBootstrap()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return runTUI(cmd, args)
		}
		return cmd.Help()
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// DataDir returns the --data-dir flag value.
func DataDir() string {
	return flagDataDir
}

// TripFile returns the --trip flag value.
func TripFile() string {
	return flagTrip
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable diagnostic logging")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "directory for the annotation database")
	rootCmd.PersistentFlags().StringVar(&flagTrip, "trip", "", "JSON file overriding the built-in trip data")

	cobra.OnInitialize(func() {
		if flagVerbose {
			logger.SetVerbose(true)
		}
	})
}
