package dataset

import (
	"errors"
	"sync"
)

var ErrNotLoaded = errors.New("no snapshot loaded")

// Store hands out the current snapshot to handlers and swaps in a new
// one on reload. Readers always see a complete, consistent load.
type Store struct {
	mu   sync.RWMutex
	snap *Snapshot
}

func NewStore(snap *Snapshot) *Store {
	return &Store{snap: snap}
}

func (s *Store) Current() (*Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.snap == nil {
		return nil, ErrNotLoaded
	}
	return s.snap, nil
}

func (s *Store) Swap(snap *Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = snap
}
