package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tripdeck-labs/tripdeck-cli/internal/core/domain"
	"github.com/tripdeck-labs/tripdeck-cli/internal/core/ports/driving"
)

// Ensure AnnotationStore implements the interface.
var _ driving.TaskService = (*AnnotationStore)(nil)

// DefaultTasks returns the initial preparation task set, seeded into
// the store on first run. The user can toggle, delete and extend it
// freely afterwards.
func DefaultTasks() []domain.Task {
	now := time.Now()
	mk := func(text, leg string) domain.Task {
		return domain.Task{ID: uuid.NewString(), Text: text, Leg: leg, CreatedAt: now}
	}
	return []domain.Task{
		mk("Book dinner in Torino", "torino"),
		mk("Download train tickets offline", "outbound"),
		mk("Check in for the TGV legs", "outbound"),
		mk("Credit card for the rental deposit", "roadtrip"),
		mk("International driving permit", "roadtrip"),
		mk("Print hotel confirmations", "san-sebastian"),
		mk("Reserve pintxos tour", "san-sebastian"),
		mk("Guggenheim tickets", "bilbao"),
		mk("Download films for the trains", "outbound"),
	}
}

// Tasks returns a copy of the task list.
func (s *AnnotationStore) Tasks() []domain.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// AddTask appends a new open task tagged with a trip leg.
func (s *AnnotationStore) AddTask(text, leg string) (domain.Task, error) {
	if strings.TrimSpace(text) == "" {
		return domain.Task{}, fmt.Errorf("task text: %w", domain.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	task := domain.Task{
		ID:        uuid.NewString(),
		Text:      text,
		Leg:       leg,
		CreatedAt: time.Now(),
	}
	s.tasks = append(s.tasks, task)
	s.persist(keyTasks, s.tasks)
	return task, nil
}

// ToggleTask flips the done flag. Unknown ids are a no-op.
func (s *AnnotationStore) ToggleTask(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i].Done = !s.tasks[i].Done
			s.persist(keyTasks, s.tasks)
			return
		}
	}
}

// RemoveTask deletes a task. Unknown ids are a no-op.
func (s *AnnotationStore) RemoveTask(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			s.persist(keyTasks, s.tasks)
			return
		}
	}
}

// Progress summarises task completion.
func (s *AnnotationStore) Progress() domain.TaskProgress {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.ProgressOf(s.tasks)
}
