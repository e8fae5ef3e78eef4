package repository

import "time"

// Option applies a configuration option to the MemStore.
type Option func(*MemStore, *int)

// WithShardCount sets the number of shards used to spread lock contention.
func WithShardCount(count int) Option {
	return func(_ *MemStore, shardCount *int) {
		if count > 0 {
			*shardCount = count
		}
	}
}

// WithClock injects the timestamp source, used by tests to pin StoredAt.
func WithClock(now func() time.Time) Option {
	return func(s *MemStore, _ *int) {
		if now != nil {
			s.now = now
		}
	}
}
