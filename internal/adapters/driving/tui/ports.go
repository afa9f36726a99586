// Package tui provides the interactive terminal interface for tripdeck.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/tripdeck-labs/tripdeck-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Planner exposes the merged itinerary and guide projections.
	Planner driving.PlannerService

	// Annotations manages user annotations over the baseline catalog.
	Annotations driving.AnnotationService

	// Tasks manages the pre-trip checklist of tasks.
	Tasks driving.TaskService

	// Diary manages travel diary entries.
	Diary driving.DiaryService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(
	planner driving.PlannerService,
	annotations driving.AnnotationService,
	tasks driving.TaskService,
	diary driving.DiaryService,
) *Ports {
	return &Ports{
		Planner:     planner,
		Annotations: annotations,
		Tasks:       tasks,
		Diary:       diary,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil.
func (p *Ports) Validate() error {
	if p.Planner == nil {
		return ErrMissingPlannerService
	}
	if p.Annotations == nil {
		return ErrMissingAnnotationService
	}
	if p.Tasks == nil {
		return ErrMissingTaskService
	}
	if p.Diary == nil {
		return ErrMissingDiaryService
	}
	return nil
}
