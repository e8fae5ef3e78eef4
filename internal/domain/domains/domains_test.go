package domains_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wasal/kidscore/internal/domain/domains"
	"github.com/wasal/kidscore/internal/domain/model"
)

func TestScoresFullPath(t *testing.T) {
	reports := []model.GameScore{
		{Game: model.GameMemory, Score: 80},
		{Game: model.GameAttention, Score: 60},
		{Game: model.GameLogic, Score: 70},
		{Game: model.GameVisual, Score: 90},
		{Game: model.GamePattern, Score: 50},
		{Game: model.GameCreative, Score: 85},
	}

	scores := domains.Scores(reports)
	require.Len(t, scores, 6)

	// memory: 0.7*80 + 0.3*60 = 74
	assert.Equal(t, 74, scores[domains.Memory])
	// attention has no secondary games; primary average stands in: 60
	assert.Equal(t, 60, scores[domains.Attention])
	// reasoning: 0.7*70 + 0.3*((50+90)/2) = 49 + 21 = 70
	assert.Equal(t, 70, scores[domains.Reasoning])
	// visual: 0.7*90 + 0.3*50 = 78
	assert.Equal(t, 78, scores[domains.Visual])
	// pattern: 0.7*50 + 0.3*70 = 56
	assert.Equal(t, 56, scores[domains.Pattern])
	// creativity: 85
	assert.Equal(t, 85, scores[domains.Creativity])
}

func TestScoresMissingPrimary(t *testing.T) {
	reports := []model.GameScore{
		{Game: model.GameAttention, Score: 72},
		{Game: model.GamePattern, Score: 64},
	}

	scores := domains.Scores(reports)

	// No memory primary: the domain is absent, not zero, even though the
	// attention secondary is available.
	_, ok := scores[domains.Memory]
	assert.False(t, ok)
	_, ok = scores[domains.Reasoning]
	assert.False(t, ok)
	_, ok = scores[domains.Creativity]
	assert.False(t, ok)

	assert.Equal(t, 72, scores[domains.Attention])
	// pattern: primary present, secondary (logic) absent -> primary stands in
	assert.Equal(t, 64, scores[domains.Pattern])
}

func TestScoresSecondaryFallback(t *testing.T) {
	reports := []model.GameScore{{Game: model.GameMemory, Score: 90}}

	scores := domains.Scores(reports)

	require.Contains(t, scores, domains.Memory)
	assert.Equal(t, 90, scores[domains.Memory])
}

func TestScoresEmpty(t *testing.T) {
	assert.Empty(t, domains.Scores(nil))
}

func TestScoresBounds(t *testing.T) {
	reports := []model.GameScore{
		{Game: model.GameMemory, Score: 100},
		{Game: model.GameAttention, Score: 100},
	}

	for _, score := range domains.Scores(reports) {
		assert.GreaterOrEqual(t, score, 0)
		assert.LessOrEqual(t, score, 100)
	}
}

func TestLevel(t *testing.T) {
	assert.Equal(t, domains.LevelBelowNormal, domains.Level(0))
	assert.Equal(t, domains.LevelBelowNormal, domains.Level(39))
	assert.Equal(t, domains.LevelNearNormal, domains.Level(40))
	assert.Equal(t, domains.LevelNearNormal, domains.Level(59))
	assert.Equal(t, domains.LevelNormal, domains.Level(60))
	assert.Equal(t, domains.LevelNormal, domains.Level(79))
	assert.Equal(t, domains.LevelAboveNormal, domains.Level(80))
	assert.Equal(t, domains.LevelAboveNormal, domains.Level(100))
}
