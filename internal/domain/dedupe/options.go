package dedupe

// Option applies a configuration option to the tracker.
type Option func(*memoryTracker)

// WithMaxSize bounds the number of session IDs kept in memory. Oldest IDs
// are evicted first. maxSize <= 0 means unbounded.
func WithMaxSize(maxSize int) Option {
	return func(t *memoryTracker) {
		t.maxSize = maxSize
	}
}
