package submission

import (
	"sync"
	"time"
)

// Tracker holds the progress descriptor of every in-flight submission,
// keyed by submission id. Terminal entries linger long enough for the
// frontend to render the final state, then disappear: 3s after success,
// 5s after failure (the form keeps user input on failure so they can
// correct and resubmit).
type Tracker struct {
	mu      sync.RWMutex
	entries map[string]Progress

	successTTL time.Duration
	failureTTL time.Duration
}

func NewTracker() *Tracker {
	return &Tracker{
		entries:    make(map[string]Progress),
		successTTL: 3 * time.Second,
		failureTTL: 5 * time.Second,
	}
}

// NewTrackerWithTTLs exists for tests that cannot wait wall-clock seconds.
func NewTrackerWithTTLs(successTTL, failureTTL time.Duration) *Tracker {
	t := NewTracker()
	t.successTTL = successTTL
	t.failureTTL = failureTTL
	return t
}

func (t *Tracker) Set(id string, p Progress) {
	t.mu.Lock()
	t.entries[id] = p
	t.mu.Unlock()

	switch p.Stage {
	case StageSucceeded:
		t.clearAfter(id, t.successTTL)
	case StageFailed:
		t.clearAfter(id, t.failureTTL)
	}
}

// Get returns the current descriptor, or an idle descriptor when the id is
// unknown (never started, or already cleared after its terminal delay).
func (t *Tracker) Get(id string) (Progress, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	p, ok := t.entries[id]
	if !ok {
		return Progress{Stage: StageIdle}, false
	}
	return p, true
}

func (t *Tracker) clearAfter(id string, d time.Duration) {
	time.AfterFunc(d, func() {
		t.mu.Lock()
		delete(t.entries, id)
		t.mu.Unlock()
	})
}
