package scoring

import (
	"math"

	"github.com/wasal/kidscore/internal/domain/model"
)

// Impulsivity penalty is capped so a single noisy session cannot zero the
// dimension out.
const maxImpulsivityPenalty = 30

// clamp bounds v to [0,100].
func clamp(v float64) float64 {
	return math.Min(math.Max(v, 0), maxScore)
}

// roundClamp rounds to the nearest integer inside [0,100].
func roundClamp(v float64) int {
	return int(math.Round(clamp(v)))
}

// subScores converts normalized metrics into the orthogonal 0-100
// dimensions, scaled against the child's age band.
func (e *Engine) subScores(m GameMetrics, game model.GameType, age int) model.SubScores {
	norm := e.norms[BandFor(age)]

	// The +1 on hesitations guards division by zero and means a flawless
	// session still lands below 100 unless the band's reference is >= 1.
	// Calibration choice, not an accident.
	s := model.SubScores{
		Accuracy:   roundClamp(m.Accuracy * 100),
		Latency:    roundClamp(norm.LatencyRefMS / m.AvgLatencyMS * 100),
		Hesitation: roundClamp(norm.HesitationRef / float64(m.Hesitations+1) * 100),
		Stability:  roundClamp(100 - dispersionPenalty(m.LatencySamples)),
	}

	if game == model.GameAttention {
		penalty := math.Min(maxImpulsivityPenalty, m.FalsePositiveRate*100)
		imp := roundClamp(100 - penalty)
		s.Impulsivity = &imp
	}

	return s
}

// dispersionPenalty scales the coefficient of variation of the latency
// samples into a 0-100 penalty. Erratic response gaps cost stability;
// fewer than two samples give no basis for a penalty.
func dispersionPenalty(samples []float64) float64 {
	if len(samples) < 2 {
		return 0
	}

	var sum float64
	for _, s := range samples {
		sum += s
	}
	mean := sum / float64(len(samples))
	if mean <= 0 {
		return 0
	}

	var sq float64
	for _, s := range samples {
		d := s - mean
		sq += d * d
	}
	stddev := math.Sqrt(sq / float64(len(samples)))

	return math.Min(maxScore, stddev/mean*100)
}
