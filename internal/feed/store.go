package feed

import (
	"sort"
	"sync"
)

// Store is the one piece of state shared between the fetch goroutines
// and the render loop. Writers hold the lock only for the merge+sort
// step; readers take a snapshot copy so layout work never runs under
// the lock.
type Store struct {
	mu      sync.RWMutex
	entries []Entry
}

func NewStore() *Store {
	return &Store{}
}

// Merge appends a completed source's entries and restores the global
// order: descending by publish time, stable so ties keep merge order.
// Entries from different sources that hash to the same id coexist.
func (s *Store) Merge(batch []Entry) {
	if len(batch) == 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = append(s.entries, batch...)
	sort.SliceStable(s.entries, func(i, j int) bool {
		return s.entries[i].PublishedAt.After(s.entries[j].PublishedAt)
	})
}

// Snapshot returns a copy of the current merged list, newest first.
func (s *Store) Snapshot() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
