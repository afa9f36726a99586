package cli

import (
	"errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/tripdeck-labs/tripdeck-cli/internal/core/domain"
)

var countdownCmd = &cobra.Command{
	Use:   "countdown",
	Short: "Show the departure countdown",
	RunE:  runCountdown,
}

func init() {
	rootCmd.AddCommand(countdownCmd)
}

func runCountdown(cmd *cobra.Command, _ []string) error {
	if plannerService == nil {
		return errors.New("planner service not configured")
	}

	c := plannerService.Countdown(time.Now())
	if c.State == domain.Arrived {
		cmd.Println("On the road!")
		return nil
	}

	cmd.Printf("Departure in %dd %02dh %02dm %02ds\n", c.Days, c.Hours, c.Minutes, c.Seconds)
	return nil
}
