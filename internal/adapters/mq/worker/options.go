package worker

import "github.com/wasal/kidscore/pkg/logger"

// Option configures a Pool.
type Option func(*Pool)

// WithWorkerCount sets the number of concurrent workers. Values below one
// fall back to the default.
func WithWorkerCount(n int) Option {
	return func(p *Pool) {
		if n > 0 {
			p.count = n
		}
	}
}

// WithName sets the pool name used in logs.
func WithName(name string) Option {
	return func(p *Pool) {
		if name != "" {
			p.name = name
		}
	}
}

// WithLogger sets the logger for the pool.
func WithLogger(l logger.Logger) Option {
	return func(p *Pool) {
		if l != nil {
			p.log = l
		}
	}
}
