package services

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tripdeck-labs/tripdeck-cli/internal/core/domain"
	"github.com/tripdeck-labs/tripdeck-cli/internal/core/ports/driving"
)

// Ensure AnnotationStore implements the interface.
var _ driving.DiaryService = (*AnnotationStore)(nil)

// Entries returns a copy of the diary, in creation order.
func (s *AnnotationStore) Entries() []domain.DiaryEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.DiaryEntry, len(s.diary))
	copy(out, s.diary)
	return out
}

// AddEntry appends a diary entry. Title is required; the entry gets a
// generated id and creation timestamp, and defaults its date to today
// when none was supplied.
func (s *AnnotationStore) AddEntry(e domain.DiaryEntry) (domain.DiaryEntry, error) {
	if strings.TrimSpace(e.Title) == "" {
		return domain.DiaryEntry{}, fmt.Errorf("diary title: %w", domain.ErrInvalidInput)
	}
	e.ID = uuid.NewString()
	e.CreatedAt = time.Now()
	if e.Date == "" {
		e.Date = e.CreatedAt.Format("2006-01-02")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.diary = append(s.diary, e)
	s.persist(keyDiary, s.diary)
	return e, nil
}

// RemoveEntry deletes a diary entry. Unknown ids are a no-op.
func (s *AnnotationStore) RemoveEntry(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.diary {
		if s.diary[i].ID == id {
			s.diary = append(s.diary[:i], s.diary[i+1:]...)
			s.persist(keyDiary, s.diary)
			return
		}
	}
}

// AttachImage reads a local image file into a self-contained base64
// payload. Nothing is uploaded; the bytes live inside the entry.
func (s *AnnotationStore) AttachImage(path string) (domain.DiaryImage, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return domain.DiaryImage{}, fmt.Errorf("reading image %s: %w", path, err)
	}
	return domain.DiaryImage{
		Name: filepath.Base(path),
		Data: base64.StdEncoding.EncodeToString(raw),
	}, nil
}
