package auth

import (
	"sync"
	"time"
)

const (
	// FailureThreshold is the number of recent failures that locks an
	// identifier.
	FailureThreshold = 5

	// LockoutDuration is how long failures are retained. Pruning is
	// anchored to "now minus LockoutDuration" on every check, never to
	// the time of the fifth failure, so the window slides forward with
	// each check.
	LockoutDuration = 10 * time.Minute
)

// Tracker counts recent authentication failures per client identifier and
// decides whether further attempts are temporarily blocked. IsLocked must be
// consulted BEFORE the credential is compared, so a locked-out caller learns
// nothing about the password.
//
// The in-process implementation is not shared across server processes;
// multi-instance deployments must use the redis-backed implementation.
type Tracker interface {
	// IsLocked prunes stale failures and reports whether the identifier
	// is currently locked out.
	IsLocked(id string) bool

	// RecordFailure appends a failure timestamp for the identifier.
	RecordFailure(id string)

	// Clear discards all recorded failures for the identifier,
	// called on successful login.
	Clear(id string)
}

// MemoryTracker is the in-process Tracker for single-instance deployments.
// All three operations serialize on one mutex; admin login traffic is far
// too low for that to matter.
type MemoryTracker struct {
	mu       sync.Mutex
	failures map[string][]time.Time
	now      timeNow
}

// NewMemoryTracker creates a MemoryTracker using the wall clock.
func NewMemoryTracker() *MemoryTracker {
	return NewMemoryTrackerWithClock(time.Now)
}

// NewMemoryTrackerWithClock creates a MemoryTracker with an injected clock.
func NewMemoryTrackerWithClock(now timeNow) *MemoryTracker {
	return &MemoryTracker{
		failures: make(map[string][]time.Time),
		now:      now,
	}
}

// IsLocked prunes failures older than LockoutDuration and reports whether
// at least FailureThreshold remain. Pruning on every check is what keeps the
// map growth-free.
func (t *MemoryTracker) IsLocked(id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	remaining := t.pruneLocked(id)

	return len(remaining) >= FailureThreshold
}

// RecordFailure appends a failure timestamp for the identifier.
func (t *MemoryTracker) RecordFailure(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.failures[id] = append(t.pruneLocked(id), t.now())
}

// Clear discards all recorded failures for the identifier.
func (t *MemoryTracker) Clear(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	delete(t.failures, id)
}

// pruneLocked discards timestamps older than the lockout duration and stores
// the survivors back. Caller must hold the mutex.
func (t *MemoryTracker) pruneLocked(id string) []time.Time {
	cutoff := t.now().Add(-LockoutDuration)

	kept := t.failures[id][:0]
	for _, ts := range t.failures[id] {
		if ts.After(cutoff) {
			kept = append(kept, ts)
		}
	}

	if len(kept) == 0 {
		delete(t.failures, id)
		return nil
	}

	t.failures[id] = kept

	return kept
}
