package scoring

import "github.com/wasal/kidscore/internal/domain/model"

// GameMetrics is the aggregate view of one denoised session, computed in a
// single pass and consumed by the sub-score calculator.
type GameMetrics struct {
	Accuracy     float64 // correct/attempts, 0 when there were no attempts
	AvgLatencyMS float64 // mean of in-range latency samples, or the fallback
	Attempts     int
	Hesitations  int

	// LatencySamples keeps the raw in-range latencies so stability can be
	// derived from their dispersion.
	LatencySamples []float64

	// Attention-only extras.
	FalsePositives    int
	FalsePositiveRate float64

	// Logic-only extras.
	LevelReached int
}

// extractMetrics walks a denoised event stream once, tracking the gap to
// the previous event of any type. Attempt events (click/select/match)
// accumulate accuracy and latency; gaps outside (0, outlierMS) are treated
// as pauses and excluded from the average without invalidating the event.
func (e *Engine) extractMetrics(events []model.RawEvent, game model.GameType) GameMetrics {
	var m GameMetrics
	if len(events) == 0 {
		m.AvgLatencyMS = e.fallbackLatencyMS
		return m
	}

	var correct int
	lastTS := events[0].TimestampMS

	for _, ev := range events {
		if ev.Type.IsAttempt() {
			m.Attempts++
			if ev.Value.Correct {
				correct++
			}

			latency := ev.TimestampMS - lastTS
			if latency > 0 && latency < e.latencyOutlierMS {
				m.LatencySamples = append(m.LatencySamples, float64(latency))
			}
			if latency > e.hesitationThresholdMS {
				m.Hesitations++
			}
		}
		lastTS = ev.TimestampMS
	}

	if m.Attempts > 0 {
		m.Accuracy = float64(correct) / float64(m.Attempts)
	}

	if len(m.LatencySamples) > 0 {
		var sum float64
		for _, l := range m.LatencySamples {
			sum += l
		}
		m.AvgLatencyMS = sum / float64(len(m.LatencySamples))
	} else {
		m.AvgLatencyMS = e.fallbackLatencyMS
	}

	switch game {
	case model.GameAttention:
		for _, ev := range events {
			if ev.Type == model.EventClick && !ev.Value.IsTarget {
				m.FalsePositives++
			}
		}
		if m.Attempts > 0 {
			m.FalsePositiveRate = float64(m.FalsePositives) / float64(m.Attempts)
		}
	case model.GameLogic:
		for _, ev := range events {
			if ev.Type == model.EventLevelComplete {
				m.LevelReached++
			}
		}
	case model.GameMemory, model.GameVisual, model.GamePattern, model.GameCreative:
		// no game-specific extras
	}

	return m
}
