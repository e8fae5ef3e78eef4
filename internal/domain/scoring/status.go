package scoring

import "github.com/wasal/kidscore/internal/domain/model"

// Qualitative status bands keyed by final score.
const (
	StatusExcellent    = "excellent"
	StatusGood         = "good"
	StatusNeedsSupport = "acceptable, needs support"
	StatusClearSupport = "needs clear support"
)

// statusFor maps a final score to its band. Thresholds are monotonic and
// non-overlapping.
func statusFor(score int) string {
	switch {
	case score >= 85:
		return StatusExcellent
	case score >= 70:
		return StatusGood
	case score >= 50:
		return StatusNeedsSupport
	default:
		return StatusClearSupport
	}
}

// flags derives behavioral flags straight from metrics and sub-scores.
// The checks are independent; any subset may co-occur.
func (e *Engine) flags(m GameMetrics, s model.SubScores, game model.GameType) []string {
	var flags []string

	if m.Attempts < e.minEvents {
		flags = append(flags, model.FlagAvoidedGame)
	}
	if m.Hesitations > 10 {
		flags = append(flags, model.FlagHighHesitation)
	}
	if game == model.GameAttention && m.FalsePositiveRate > 0.3 {
		flags = append(flags, model.FlagImpulsiveErrors)
	}
	if s.Accuracy < 40 {
		flags = append(flags, model.FlagLowAccuracy)
	}

	return flags
}
