package scoring

import "errors"

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	// ErrInsufficientData is returned when a session carries too few raw
	// events to score. The caller recovers by asking for a replay; it is
	// never retried automatically.
	ErrInsufficientData = errors.New("insufficient data, please replay")
)
