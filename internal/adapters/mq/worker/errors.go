package worker

import "errors"

var (
	// ErrMissingDependency is returned when a pool is constructed without a
	// queue, scorer or store.
	ErrMissingDependency = errors.New("missing worker pool dependency")

	// ErrAlreadyStarted is returned when Start is called on a running pool.
	ErrAlreadyStarted = errors.New("worker pool already started")

	// ErrShutdownTimeout is returned when workers do not drain in time.
	ErrShutdownTimeout = errors.New("worker pool shutdown timed out")
)
