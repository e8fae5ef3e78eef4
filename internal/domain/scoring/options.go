package scoring

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithSpamThreshold sets the minimum inter-event interval in milliseconds.
// Events closer together than this to the previous kept event are dropped
// as spam.
func WithSpamThreshold(ms int64) Option {
	return func(e *Engine) {
		if ms > 0 {
			e.spamThresholdMS = ms
		}
	}
}

// WithHesitationThreshold sets the latency in milliseconds above which an
// attempt counts as a hesitation.
func WithHesitationThreshold(ms int64) Option {
	return func(e *Engine) {
		if ms > 0 {
			e.hesitationThresholdMS = ms
		}
	}
}

// WithLatencyOutlierCutoff sets the latency in milliseconds at and above
// which a gap is treated as a pause and excluded from the average.
func WithLatencyOutlierCutoff(ms int64) Option {
	return func(e *Engine) {
		if ms > 0 {
			e.latencyOutlierMS = ms
		}
	}
}

// WithFallbackLatency sets the mean latency assumed when a session yields
// no usable latency samples.
func WithFallbackLatency(ms float64) Option {
	return func(e *Engine) {
		if ms > 0 {
			e.fallbackLatencyMS = ms
		}
	}
}

// WithMinEvents sets the raw event count below which a session is rejected
// with ErrInsufficientData.
func WithMinEvents(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.minEvents = n
		}
	}
}

// WithAgeNorms replaces the age-band reference table. The map is copied to
// keep the engine's view immutable.
func WithAgeNorms(norms AgeNorms) Option {
	return func(e *Engine) {
		if len(norms) == 0 {
			return
		}
		cp := make(AgeNorms, len(norms))
		for band, n := range norms {
			cp[band] = n
		}
		e.norms = cp
	}
}

// WithWeights replaces the per-game weighting table. The map is copied to
// keep the engine's view immutable.
func WithWeights(weights WeightTable) Option {
	return func(e *Engine) {
		if len(weights) == 0 {
			return
		}
		cp := make(WeightTable, len(weights))
		for game, w := range weights {
			cp[game] = w
		}
		e.weights = cp
	}
}
