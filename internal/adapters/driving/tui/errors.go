package tui

import "errors"

// Errors returned when constructing the TUI with missing ports.
var (
	// ErrMissingPlannerService indicates the planner service port is not set.
	ErrMissingPlannerService = errors.New("planner service is required")

	// ErrMissingAnnotationService indicates the annotation service port is not set.
	ErrMissingAnnotationService = errors.New("annotation service is required")

	// ErrMissingTaskService indicates the task service port is not set.
	ErrMissingTaskService = errors.New("task service is required")

	// ErrMissingDiaryService indicates the diary service port is not set.
	ErrMissingDiaryService = errors.New("diary service is required")
)
