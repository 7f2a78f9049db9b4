package archive

import (
	"path/filepath"
	"sync"
)

// Tracker remembers which source paths have already been handled.
type Tracker interface {
	Seen(path string) bool
	Mark(path string)
}

// ProcessedSet is an in-memory Tracker. Entries are never evicted.
type ProcessedSet struct {
	mu    sync.Mutex
	paths map[string]struct{}
}

// NewProcessedSet creates an empty set.
func NewProcessedSet() *ProcessedSet {
	return &ProcessedSet{paths: make(map[string]struct{})}
}

// Seen reports whether path was marked.
func (s *ProcessedSet) Seen(path string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.paths[normalizePath(path)]
	return ok
}

// Mark records path as handled.
func (s *ProcessedSet) Mark(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.paths[normalizePath(path)] = struct{}{}
}

// Len returns the number of tracked paths.
func (s *ProcessedSet) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.paths)
}

func normalizePath(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return filepath.Clean(path)
}
