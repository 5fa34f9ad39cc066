package booking

import (
	"sync"
)

// CourtLocks serializes write attempts per court. Reserve, block and schedule
// mutations are read-validate-then-write sequences; every read feeding a
// validation must happen while the court's lock is held, otherwise two
// concurrent writers can both pass validation against stale state.
type CourtLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewCourtLocks constructs an empty lock table.
func NewCourtLocks() *CourtLocks {
	return &CourtLocks{locks: make(map[string]*sync.Mutex)}
}

// Lock acquires the mutex for a court, returning the release function.
func (l *CourtLocks) Lock(courtID string) func() {
	l.mu.Lock()
	m, ok := l.locks[courtID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[courtID] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
