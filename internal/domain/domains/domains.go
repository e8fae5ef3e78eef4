// Package domains combines individual game scores into cross-cutting
// cognitive-domain scores. Pure computation over a static game-to-domain
// mapping; recomputed from scratch each time rather than updated
// incrementally.
package domains

import (
	"math"

	"github.com/wasal/kidscore/internal/domain/model"
)

// Domain is a cross-game cognitive category.
type Domain string

// The six assessed domains.
const (
	Memory     Domain = "memory"
	Attention  Domain = "attention"
	Reasoning  Domain = "reasoning"
	Visual     Domain = "visual"
	Pattern    Domain = "pattern"
	Creativity Domain = "creativity"
)

// Primary evidence carries 0.7 of a domain score, secondary the rest.
const (
	primaryWeight   = 0.7
	secondaryWeight = 0.3
)

// mapping lists which games are primary and secondary evidence for each
// domain. Static configuration.
type gameSet struct {
	primary   []model.GameType
	secondary []model.GameType
}

var mapping = map[Domain]gameSet{
	Memory:     {primary: []model.GameType{model.GameMemory}, secondary: []model.GameType{model.GameAttention}},
	Attention:  {primary: []model.GameType{model.GameAttention}},
	Reasoning:  {primary: []model.GameType{model.GameLogic}, secondary: []model.GameType{model.GamePattern, model.GameVisual}},
	Visual:     {primary: []model.GameType{model.GameVisual}, secondary: []model.GameType{model.GamePattern}},
	Pattern:    {primary: []model.GameType{model.GamePattern}, secondary: []model.GameType{model.GameLogic}},
	Creativity: {primary: []model.GameType{model.GameCreative}},
}

// Scores derives domain scores from one assessment path's game scores.
// A domain appears in the result only when at least one primary-game score
// is present; when no secondary scores exist the primary average stands in
// for them.
func Scores(reports []model.GameScore) map[Domain]int {
	out := make(map[Domain]int, len(mapping))

	for domain, games := range mapping {
		primaryAvg, primaryOK := average(reports, games.primary)
		if !primaryOK {
			continue
		}

		secondaryAvg, secondaryOK := average(reports, games.secondary)
		if !secondaryOK {
			secondaryAvg = primaryAvg
		}

		out[domain] = int(math.Round(primaryWeight*primaryAvg + secondaryWeight*secondaryAvg))
	}

	return out
}

// average computes the mean score across reports whose game is in games.
// The second return is false when no matching score exists.
func average(reports []model.GameScore, games []model.GameType) (float64, bool) {
	var sum float64
	var n int
	for _, r := range reports {
		for _, g := range games {
			if r.Game == g {
				sum += float64(r.Score)
				n++
				break
			}
		}
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}

// Level bands for a domain score relative to age expectations.
const (
	LevelBelowNormal = "below_normal"
	LevelNearNormal  = "near_normal"
	LevelNormal      = "normal"
	LevelAboveNormal = "above_normal"
)

// Level classifies a domain score into its qualitative band.
func Level(score int) string {
	switch {
	case score < 40:
		return LevelBelowNormal
	case score < 60:
		return LevelNearNormal
	case score < 80:
		return LevelNormal
	default:
		return LevelAboveNormal
	}
}
