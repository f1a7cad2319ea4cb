package dataset

import (
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/fandomstats/kudoscope/models"
)

// Store serves a harvested dataset file to readers, reloading it whenever
// the file changes on disk so a long-running API sees fresh harvests.
// It is safe for concurrent use.
type Store struct {
	path string

	mu      sync.RWMutex
	works   []models.Work
	modTime time.Time
}

// NewStore creates a Store over the dataset at path. Nothing is read until
// the first Works call.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the dataset file the store reads from.
func (s *Store) Path() string {
	return s.path
}

// Works returns the current dataset, reloading the file if its modification
// time moved since the last read. Callers must not mutate the returned slice.
func (s *Store) Works() ([]models.Work, error) {
	info, err := os.Stat(s.path)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	if !s.modTime.IsZero() && info.ModTime().Equal(s.modTime) {
		works := s.works
		s.mu.RUnlock()
		return works, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	// Another reader may have reloaded while we waited for the lock.
	if !s.modTime.IsZero() && info.ModTime().Equal(s.modTime) {
		return s.works, nil
	}

	works, err := ReadCSV(s.path)
	if err != nil {
		return nil, err
	}
	s.works = works
	s.modTime = info.ModTime()
	slog.Info("dataset loaded", "path", s.path, "works", len(works))
	return works, nil
}
