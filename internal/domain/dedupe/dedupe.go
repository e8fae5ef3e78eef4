// Package dedupe tracks seen session IDs so a replayed submission is
// acknowledged instead of scored twice.
package dedupe

import (
	"context"
	"sync"
)

// Tracker records seen session IDs to ensure at-most-once scoring.
type Tracker interface {
	// SeenAndRecord atomically checks whether id was seen and records it
	// if not. Returns true if id was already seen.
	SeenAndRecord(ctx context.Context, id string) bool

	// Unrecord removes an ID, allowing the session to be resubmitted.
	// Used when a submission was recorded but failed to enqueue.
	Unrecord(ctx context.Context, id string)

	// Size returns the number of IDs currently tracked.
	Size() int
}

// memoryTracker implements Tracker with a map plus a FIFO ring: when the
// bound is reached the oldest recorded ID is forgotten first, since old
// sessions are the least likely to be replayed. maxSize <= 0 disables
// eviction.
type memoryTracker struct {
	mu      sync.Mutex
	seen    map[string]struct{}
	order   []string // insertion order; head is the eviction candidate
	head    int
	maxSize int
}

const defaultMaxSize = 50000

// NewTracker creates an in-memory tracker with configuration options.
func NewTracker(opts ...Option) Tracker {
	t := &memoryTracker{maxSize: defaultMaxSize}
	for _, opt := range opts {
		opt(t)
	}

	t.seen = make(map[string]struct{})
	if t.maxSize > 0 {
		t.order = make([]string, 0, t.maxSize)
	}
	return t
}

func (t *memoryTracker) SeenAndRecord(_ context.Context, id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.seen[id]; ok {
		return true
	}

	if t.maxSize > 0 && len(t.seen) >= t.maxSize {
		t.evictOldest()
	}

	t.seen[id] = struct{}{}
	if t.maxSize > 0 {
		t.order = append(t.order, id)
	}
	return false
}

func (t *memoryTracker) Unrecord(_ context.Context, id string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	// The order slice keeps a stale entry; evictOldest skips IDs that are
	// no longer in the map.
	delete(t.seen, id)
}

func (t *memoryTracker) Size() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.seen)
}

// evictOldest drops the oldest still-tracked ID. Must be called with the
// lock held.
func (t *memoryTracker) evictOldest() {
	for t.head < len(t.order) {
		id := t.order[t.head]
		t.head++
		if _, ok := t.seen[id]; ok {
			delete(t.seen, id)
			break
		}
	}

	// Compact once the consumed prefix dominates the slice.
	if t.head > len(t.order)/2 {
		t.order = append(t.order[:0], t.order[t.head:]...)
		t.head = 0
	}
}
