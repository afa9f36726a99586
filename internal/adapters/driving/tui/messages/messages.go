// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"time"

	"github.com/tripdeck-labs/tripdeck-cli/internal/core/domain"
)

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewItinerary is the day-by-day itinerary view.
	ViewItinerary
	// ViewBookings is the aggregated bookings view.
	ViewBookings
	// ViewGuide is the pintxos/places guide view.
	ViewGuide
	// ViewEntertainment is the films, series and reading view.
	ViewEntertainment
	// ViewTasks is the pre-trip task checklist view.
	ViewTasks
	// ViewDiary is the travel diary view.
	ViewDiary
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewItinerary:
		return "itinerary"
	case ViewBookings:
		return "bookings"
	case ViewGuide:
		return "guide"
	case ViewEntertainment:
		return "entertainment"
	case ViewTasks:
		return "tasks"
	case ViewDiary:
		return "diary"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// CountdownTicked carries the freshly computed departure countdown.
// It is emitted once per second until the countdown reaches Arrived.
type CountdownTicked struct {
	Countdown domain.Countdown
	At        time.Time
}

// CodeCopied signals a booking code was copied to the clipboard.
// The view shows a short confirmation flash until CopyFlashExpired.
type CodeCopied struct {
	Key  string
	Code string
	Err  error
}

// CopyFlashExpired clears the clipboard confirmation flash.
type CopyFlashExpired struct {
	Key string
}

// TripReloaded signals the baseline catalog was reloaded from disk.
// The countdown restarts because the departure instant may have moved.
type TripReloaded struct {
	Err error
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
