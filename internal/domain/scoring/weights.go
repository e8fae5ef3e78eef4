package scoring

import (
	"math"

	"github.com/wasal/kidscore/internal/domain/model"
)

// Weights defines the fixed linear combination of sub-scores for one game
// type. Each row sums to 1.0; dimensions a game does not use stay zero.
type Weights struct {
	Accuracy    float64
	Latency     float64
	Hesitation  float64
	Stability   float64
	Impulsivity float64
}

// WeightTable maps game types to their weighting rows. Fixed configuration,
// never tuned at runtime.
type WeightTable map[model.GameType]Weights

// DefaultWeights returns the per-game weighting scheme.
func DefaultWeights() WeightTable {
	return WeightTable{
		model.GameAttention: {Accuracy: 0.45, Latency: 0.35, Impulsivity: 0.15, Stability: 0.05},
		model.GameMemory:    {Accuracy: 0.50, Latency: 0.30, Hesitation: 0.20},
		model.GameLogic:     {Accuracy: 0.40, Latency: 0.35, Stability: 0.25},
		model.GameVisual:    {Accuracy: 0.45, Latency: 0.35, Stability: 0.20},
		model.GamePattern:   {Accuracy: 0.50, Latency: 0.30, Hesitation: 0.20},
		model.GameCreative:  {Accuracy: 0.60, Latency: 0.20, Stability: 0.20},
	}
}

// defaultRow covers unknown game types so new games degrade gracefully
// instead of erroring.
var defaultRow = Weights{Accuracy: 0.40, Latency: 0.35, Stability: 0.25}

// gameScore combines sub-scores into the final 0-100 score using the
// game's weighting row. A missing impulsivity dimension counts as a
// perfect 100 so the weight is not silently lost.
func (e *Engine) gameScore(s model.SubScores, game model.GameType) int {
	w, ok := e.weights[game]
	if !ok {
		w = defaultRow
	}

	impulsivity := float64(maxScore)
	if s.Impulsivity != nil {
		impulsivity = float64(*s.Impulsivity)
	}

	score := w.Accuracy*float64(s.Accuracy) +
		w.Latency*float64(s.Latency) +
		w.Hesitation*float64(s.Hesitation) +
		w.Stability*float64(s.Stability) +
		w.Impulsivity*impulsivity

	return int(math.Round(clamp(score)))
}
