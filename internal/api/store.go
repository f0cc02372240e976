package api

import (
	"sync"
	"time"

	"github.com/hrpower/meetreport/internal/results"
)

// Store holds the current result snapshot served by the handlers. The
// watch-mode rebuild swaps in a fresh table; handlers only ever read.
type Store struct {
	mu      sync.RWMutex
	table   *results.Table
	builtAt time.Time
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// Update replaces the served snapshot.
func (s *Store) Update(table *results.Table) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.table = table
	s.builtAt = time.Now()
}

// Snapshot returns the current table, its build time, and whether a
// snapshot exists yet.
func (s *Store) Snapshot() (*results.Table, time.Time, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.table, s.builtAt, s.table != nil
}
