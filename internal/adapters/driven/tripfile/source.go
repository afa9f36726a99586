// Package tripfile loads the baseline trip catalog from a JSON file,
// letting the owner tweak the plan without rebuilding the binary. The
// file is read whole at startup; the optional watcher reloads it when
// it changes on disk.
package tripfile

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tripdeck-labs/tripdeck-cli/internal/core/domain"
	"github.com/tripdeck-labs/tripdeck-cli/internal/core/ports/driven"
)

// Ensure Source implements the interface.
var _ driven.TripSource = (*Source)(nil)

// Source is a file-based implementation of driven.TripSource.
type Source struct {
	path string
}

// NewSource creates a trip source reading from the given JSON file.
func NewSource(path string) *Source {
	return &Source{path: path}
}

// Load reads and decodes the catalog file.
func (s *Source) Load() (*domain.Trip, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("reading trip file %s: %w", s.path, err)
	}
	var trip domain.Trip
	if err := json.Unmarshal(data, &trip); err != nil {
		return nil, fmt.Errorf("parsing trip file %s: %w", s.path, err)
	}
	return &trip, nil
}

// Path returns the catalog file path.
func (s *Source) Path() string {
	return s.path
}
