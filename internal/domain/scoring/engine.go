// Package scoring turns raw session event streams into auditable,
// age-normalized mini-reports. Everything here is deterministic,
// synchronous, pure computation: identical input always yields an
// identical report, and no call touches shared state or performs I/O.
package scoring

import (
	"context"
	"fmt"

	"github.com/wasal/kidscore/internal/domain/model"
)

// Default scoring configuration constants.
const (
	defaultSpamThresholdMS       = 100
	defaultHesitationThresholdMS = 1500
	defaultLatencyOutlierMS      = 10000
	defaultFallbackLatencyMS     = 1000
	defaultMinEvents             = 5
	maxScore                     = 100
)

// Scorer computes a mini-report from a completed session.
type Scorer interface {
	// MiniReport scores one session, honoring ctx for cancellation.
	MiniReport(ctx context.Context, s model.Session) (model.MiniReport, error)
}

// Engine implements Scorer with the full weighted, age-normalized model.
// Construct it once at startup; the tables it holds are read-only for the
// process lifetime. Concurrent calls are safe because nothing is mutated.
type Engine struct {
	spamThresholdMS       int64
	hesitationThresholdMS int64
	latencyOutlierMS      int64
	fallbackLatencyMS     float64
	minEvents             int

	norms   AgeNorms
	weights WeightTable
}

// NewEngine creates a scoring engine with configuration options.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		spamThresholdMS:       defaultSpamThresholdMS,
		hesitationThresholdMS: defaultHesitationThresholdMS,
		latencyOutlierMS:      defaultLatencyOutlierMS,
		fallbackLatencyMS:     defaultFallbackLatencyMS,
		minEvents:             defaultMinEvents,
		norms:                 DefaultAgeNorms(),
		weights:               DefaultWeights(),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// MiniReport scores a completed session. It fails with ErrInsufficientData
// when the raw (pre-denoise) event count is below the minimum: genuinely
// sparse sessions are rejected before filtering can degrade them further.
func (e *Engine) MiniReport(ctx context.Context, s model.Session) (model.MiniReport, error) {
	if err := ctx.Err(); err != nil {
		return model.MiniReport{}, fmt.Errorf("scoring cancelled: %w", err)
	}

	if len(s.Events) < e.minEvents {
		return model.MiniReport{}, fmt.Errorf("session %s has %d events, need %d: %w",
			s.SessionID, len(s.Events), e.minEvents, ErrInsufficientData)
	}

	denoised := Denoise(s.Events, e.spamThresholdMS)
	metrics := e.extractMetrics(denoised, s.Game)
	subs := e.subScores(metrics, s.Game, s.Age)
	score := e.gameScore(subs, s.Game)

	return model.MiniReport{
		Game:      s.Game,
		Score:     score,
		Status:    statusFor(score),
		SubScores: subs,
		Reasons:   e.reasons(subs, metrics, s.Game),
		Tip:       e.tip(score, s.Game, subs),
		Flags:     e.flags(metrics, subs, s.Game),
	}, nil
}

// Metrics exposes the intermediate metric extraction for callers that need
// the raw aggregates (diagnostics, tests). Same insufficient-data contract
// as MiniReport.
func (e *Engine) Metrics(ctx context.Context, s model.Session) (GameMetrics, error) {
	if err := ctx.Err(); err != nil {
		return GameMetrics{}, fmt.Errorf("scoring cancelled: %w", err)
	}
	if len(s.Events) < e.minEvents {
		return GameMetrics{}, fmt.Errorf("session %s has %d events, need %d: %w",
			s.SessionID, len(s.Events), e.minEvents, ErrInsufficientData)
	}
	return e.extractMetrics(Denoise(s.Events, e.spamThresholdMS), s.Game), nil
}

// MinEvents reports the configured minimum raw event count.
func (e *Engine) MinEvents() int {
	return e.minEvents
}
