package driven

import "github.com/tripdeck-labs/tripdeck-cli/internal/core/domain"

// TripSource supplies the immutable baseline catalog. The core treats
// the returned value as read-only and fully loaded; there is no lazy
// loading and no partial failure mode.
type TripSource interface {
	// Load returns the baseline trip dataset.
	Load() (*domain.Trip, error)
}
