// Package gamestate persists run progress between sessions: the level
// reached, the food carried into it, and the best day ever reached.
package gamestate

import (
	"fmt"
	"log"
	"sync"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// Storage keys
const (
	progressObject   = "progress"
	progressProperty = "current"
)

// Progress holds all persistent run data
type Progress struct {
	Level     int    `yaml:"level"`     // Level to resume, 0 when no run is in progress
	Food      int    `yaml:"food"`      // Food carried into Level
	BestLevel int    `yaml:"bestLevel"` // Highest level ever reached
	Runs      int    `yaml:"runs"`      // Finished runs
	LastRun   string `yaml:"lastRun"`   // Run ID of the last recorded run
}

// Store wraps a gdata manager. A nil manager keeps progress in memory only.
type Store struct {
	mu       sync.RWMutex
	manager  *gdata.Manager
	progress Progress
}

// Open creates a store backed by the per-user data directory of appName.
func Open(appName string) (*Store, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("failed to open save data: %w", err)
	}
	return NewStore(m), nil
}

// NewStore creates a store and loads any saved progress. Load failures are
// logged and leave the store empty.
func NewStore(m *gdata.Manager) *Store {
	s := &Store{manager: m}
	if err := s.Load(); err != nil {
		log.Printf("[Progress] Warning: %v (starting fresh)", err)
	}
	return s
}

// Persistent reports whether the store writes to disk.
func (s *Store) Persistent() bool {
	return s.manager != nil
}

// Load reads the saved progress
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.progress = Progress{}
	if s.manager == nil || !s.manager.ObjectPropExists(progressObject, progressProperty) {
		return nil
	}
	data, err := s.manager.LoadObjectProp(progressObject, progressProperty)
	if err != nil {
		return fmt.Errorf("failed to load progress: %w", err)
	}
	var p Progress
	if err := yaml.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("failed to unmarshal progress: %w", err)
	}
	s.progress = p
	return nil
}

// Save writes the current progress. Memory-only stores succeed silently.
func (s *Store) Save() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.save()
}

func (s *Store) save() error {
	if s.manager == nil {
		return nil
	}
	data, err := yaml.Marshal(&s.progress)
	if err != nil {
		return fmt.Errorf("failed to marshal progress: %w", err)
	}
	if err := s.manager.SaveObjectProp(progressObject, progressProperty, data); err != nil {
		return fmt.Errorf("failed to save progress: %w", err)
	}
	return nil
}

// Progress returns a copy of the current progress
func (s *Store) Progress() Progress {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.progress
}

// Resume returns the level and food of an unfinished run.
func (s *Store) Resume() (level, food int, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.progress.Level < 1 || s.progress.Food <= 0 {
		return 0, 0, false
	}
	return s.progress.Level, s.progress.Food, true
}

// RecordLevel stores the level about to be played and the food carried
// into it, then saves.
func (s *Store) RecordLevel(runID string, level, food int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.progress.Level = level
	s.progress.Food = food
	s.progress.LastRun = runID
	if level > s.progress.BestLevel {
		s.progress.BestLevel = level
	}
	return s.save()
}

// RecordGameOver ends the current run, keeping only the best level, then
// saves.
func (s *Store) RecordGameOver(runID string, level int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.progress.Level = 0
	s.progress.Food = 0
	s.progress.Runs++
	s.progress.LastRun = runID
	if level > s.progress.BestLevel {
		s.progress.BestLevel = level
	}
	return s.save()
}

// Reset clears all progress including the best level.
func (s *Store) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.progress = Progress{}
	return s.save()
}
