package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var bookingsCmd = &cobra.Command{
	Use:   "bookings",
	Short: "List bookings across the whole trip",
	Long: `Show every booking of the trip, day by day, with its status and
reservation code. Field edits and bookings you added are included.`,
	RunE: runBookingsList,
}

var flagBookingsPending bool

func init() {
	bookingsCmd.Flags().BoolVar(&flagBookingsPending, "pending", false, "only bookings still needing action")
	rootCmd.AddCommand(bookingsCmd)
}

func runBookingsList(cmd *cobra.Command, _ []string) error {
	if plannerService == nil {
		return errors.New("planner service not configured")
	}

	entries := plannerService.AllBookings()
	if flagBookingsPending {
		entries = plannerService.PendingBookings()
	}

	if len(entries) == 0 {
		if flagBookingsPending {
			cmd.Println("Everything is booked. Nothing left to do.")
		} else {
			cmd.Println("No bookings.")
		}
		return nil
	}

	lastDay := -1
	for _, e := range entries {
		if e.DayIndex != lastDay {
			lastDay = e.DayIndex
			cmd.Printf("\n%s\n", e.DayDate)
		}

		b := e.Booking
		cmd.Printf("  [%s] %-35s %s\n", b.Type.Description(), b.Name, b.Status.Description())
		if b.Time != "" {
			cmd.Printf("      %s\n", b.Time)
		}
		if b.Code != "" {
			cmd.Printf("      Code: %s\n", b.Code)
		}
		if b.Price != "" {
			cmd.Printf("      %s\n", b.Price)
		}
	}

	return nil
}
