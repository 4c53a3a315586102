// Package overrides keeps manual point adjustments entered by the admin.
// The store is session-scoped: it lives in process memory and is gone on
// restart. Overrides are added to computed points at presentation time
// and never feed back into the calculators.
package overrides

import (
	"sort"
	"sync"
	"time"

	"github.com/jumbohomes/backend/internal/models"
	"github.com/jumbohomes/backend/internal/utils"
)

type Store struct {
	mu      sync.RWMutex
	entries map[string]models.Override
}

func NewStore() *Store {
	return &Store{entries: map[string]models.Override{}}
}

// Set upserts the override for a person, last write wins.
func (s *Store) Set(person string, tours, googleRatings int) models.Override {
	ov := models.Override{
		Person:        person,
		Tours:         tours,
		GoogleRatings: googleRatings,
		UpdatedAt:     time.Now().UTC(),
	}
	s.mu.Lock()
	s.entries[utils.NormalizeKey(person)] = ov
	s.mu.Unlock()
	return ov
}

// Get returns the zero override when the person has none.
func (s *Store) Get(person string) models.Override {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if ov, ok := s.entries[utils.NormalizeKey(person)]; ok {
		return ov
	}
	return models.Override{Person: person}
}

func (s *Store) Delete(person string) {
	s.mu.Lock()
	delete(s.entries, utils.NormalizeKey(person))
	s.mu.Unlock()
}

func (s *Store) All() []models.Override {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Override, 0, len(s.entries))
	for _, ov := range s.entries {
		out = append(out, ov)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Person < out[j].Person })
	return out
}

// Bonus is the total the presentation layer adds on top of computed points.
func (s *Store) Bonus(person string) int {
	ov := s.Get(person)
	return ov.Tours + ov.GoogleRatings
}
