package hashing

import (
	"sync"

	"github.com/lgbarn/threatboard/internal/engine"
)

// ThreadSafePositionSet wraps PositionSet with mutex protection for concurrent access.
type ThreadSafePositionSet struct {
	set *PositionSet
	mu  sync.RWMutex
}

// NewThreadSafePositionSet creates a new thread-safe set.
// maxCapacity of 0 means unlimited capacity.
func NewThreadSafePositionSet(maxCapacity int) *ThreadSafePositionSet {
	return &ThreadSafePositionSet{
		set: NewPositionSet(maxCapacity),
	}
}

// CheckAndAdd atomically checks whether g's position was seen and records it.
// The signature is computed outside the lock.
func (s *ThreadSafePositionSet) CheckAndAdd(g *engine.Game) bool {
	if g == nil {
		return false
	}
	sig := SignatureOf(g)
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.set.checkAndAdd(sig)
}

// DuplicateCount returns the number of repeated positions detected.
func (s *ThreadSafePositionSet) DuplicateCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.set.DuplicateCount()
}

// UniqueCount returns the number of distinct positions stored.
func (s *ThreadSafePositionSet) UniqueCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.set.UniqueCount()
}

// LoadFrom copies entries from an existing set. Call before concurrent use.
func (s *ThreadSafePositionSet) LoadFrom(other *PositionSet) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sigs := range other.table {
		for _, sig := range sigs {
			s.set.checkAndAdd(sig)
		}
	}
}

// IsFull returns true if the set has reached its capacity limit.
func (s *ThreadSafePositionSet) IsFull() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.set.IsFull()
}
