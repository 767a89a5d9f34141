package loadout

import (
	"fmt"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/ArcPlanner_Go/internal/domain"
	"github.com/osse101/ArcPlanner_Go/internal/metrics"
)

// Store keeps loadouts in memory. Entries expire after the TTL and the least
// recently used ones are evicted once the store is full; nothing is persisted.
type Store struct {
	mu  sync.Mutex
	lru *expirable.LRU[string, *Loadout]
}

// NewStore creates a store holding at most size loadouts for ttl each
func NewStore(size int, ttl time.Duration) *Store {
	if size <= 0 {
		size = DefaultStoreSize
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		lru: expirable.NewLRU[string, *Loadout](size, nil, ttl),
	}
}

// Create stores a new empty loadout and returns a copy of it
func (s *Store) Create() *Loadout {
	s.mu.Lock()
	defer s.mu.Unlock()

	l := New()
	s.lru.Add(l.ID, l)
	s.recordSize()
	return l.Clone()
}

// Get returns a copy of the loadout
func (s *Store) Get(id string) (*Loadout, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.lru.Get(id)
	if !ok {
		return nil, fmt.Errorf(ErrFmtLoadoutMissing, domain.ErrLoadoutNotFound, id)
	}
	return l.Clone(), nil
}

// Update applies fn to a copy of the loadout and stores the copy only when fn succeeds
func (s *Store) Update(id string, fn func(*Loadout) error) (*Loadout, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.lru.Get(id)
	if !ok {
		return nil, fmt.Errorf(ErrFmtLoadoutMissing, domain.ErrLoadoutNotFound, id)
	}

	next := current.Clone()
	if err := fn(next); err != nil {
		return nil, err
	}
	s.lru.Add(id, next)
	return next.Clone(), nil
}

// Delete drops a loadout, reporting whether it existed
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	ok := s.lru.Remove(id)
	s.recordSize()
	return ok
}

// Len returns the number of live loadouts
func (s *Store) Len() int {
	return s.lru.Len()
}

func (s *Store) recordSize() {
	metrics.LoadoutsActive.Set(float64(s.lru.Len()))
}
