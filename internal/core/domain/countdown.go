package domain

import "time"

// CountdownState is the departure countdown state machine.
type CountdownState int

// Countdown states. The only transition is CountingDown -> Arrived,
// taken when the remaining duration reaches zero; there is no way
// back. Re-entering the view after departure computes Arrived
// directly, without replaying intermediate ticks.
const (
	// CountingDown means the target instant is still ahead.
	CountingDown CountdownState = iota
	// Arrived means the target instant has passed; the display
	// freezes in this terminal state.
	Arrived
)

// String returns the string representation of the state.
func (s CountdownState) String() string {
	switch s {
	case CountingDown:
		return "counting_down"
	case Arrived:
		return "arrived"
	default:
		return "unknown"
	}
}

// Countdown is a days/hours/minutes/seconds breakdown of the time
// remaining until departure. Purely display state; never persisted.
type Countdown struct {
	State   CountdownState
	Days    int
	Hours   int
	Minutes int
	Seconds int
}

// ComputeCountdown computes the remaining time from now to target.
// Once target has passed it returns the Arrived state with all
// numeric fields at zero; the components are never negative.
func ComputeCountdown(now, target time.Time) Countdown {
	remaining := target.Sub(now)
	if remaining <= 0 {
		return Countdown{State: Arrived}
	}
	return Countdown{
		State:   CountingDown,
		Days:    int(remaining / (24 * time.Hour)),
		Hours:   int(remaining/time.Hour) % 24,
		Minutes: int(remaining/time.Minute) % 60,
		Seconds: int(remaining/time.Second) % 60,
	}
}
