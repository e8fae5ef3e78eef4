package behavior_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wasal/kidscore/internal/domain/behavior"
	"github.com/wasal/kidscore/internal/domain/model"
)

var anchor = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func event(t model.BehaviorEventType, game model.GameType, daysAgo int) model.BehaviorEvent {
	return model.BehaviorEvent{Type: t, Game: game, At: anchor.AddDate(0, 0, -daysAgo)}
}

func completed(game model.GameType, daysAgo, score int, d time.Duration) model.BehaviorEvent {
	e := event(model.BehaviorGameComplete, game, daysAgo)
	e.Score = score
	e.Duration = d
	return e
}

func TestSummarize(t *testing.T) {
	log := []model.BehaviorEvent{
		event(model.BehaviorGameStart, model.GameMemory, 5),
		completed(model.GameMemory, 5, 80, 90*time.Second),
		event(model.BehaviorGameStart, model.GameMemory, 3),
		completed(model.GameMemory, 3, 70, 110*time.Second),
		event(model.BehaviorGameStart, model.GameLogic, 2),
		event(model.BehaviorGameQuit, model.GameLogic, 2),
		event(model.BehaviorGameSkip, model.GameCreative, 1),
		event(model.BehaviorHesitation, model.GameMemory, 1),
		event(model.BehaviorGameSwitch, model.GameLogic, 1),
		event(model.BehaviorPause, model.GameMemory, 1),
	}

	s := behavior.Summarize(log)

	assert.Equal(t, 2, s.TotalSessions)
	assert.Equal(t, 1, s.TotalSkips)
	assert.Equal(t, 1, s.TotalHesitations)
	assert.Equal(t, 1, s.TotalSwitches)
	assert.Equal(t, 1, s.TotalPauses)
	assert.InDelta(t, 2.0/3.0, s.CompletionRate, 1e-9)
	assert.Equal(t, 2, s.PlayCounts[model.GameMemory])
	assert.Equal(t, 1, s.SkipCounts[model.GameCreative])
	assert.Equal(t, 100*time.Second, s.AvgDuration[model.GameMemory])
}

func TestSummarizeEmpty(t *testing.T) {
	s := behavior.Summarize(nil)

	assert.Zero(t, s.TotalSessions)
	assert.Equal(t, 1.0, s.CompletionRate, "nothing started counts as fully completed")
	assert.Empty(t, s.PlayCounts)
}

func TestDetectAvoidant(t *testing.T) {
	log := []model.BehaviorEvent{
		event(model.BehaviorGameStart, model.GameLogic, 6),
		event(model.BehaviorGameQuit, model.GameLogic, 6),
		event(model.BehaviorGameStart, model.GameLogic, 4),
		event(model.BehaviorGameQuit, model.GameLogic, 4),
		event(model.BehaviorGameStart, model.GameLogic, 2),
		completed(model.GameLogic, 2, 55, time.Minute),
		event(model.BehaviorGameStart, model.GameLogic, 1),
		event(model.BehaviorGameQuit, model.GameLogic, 1),
	}

	patterns := behavior.Detect(log, anchor)

	found := findPattern(patterns, behavior.PatternAvoidant, model.GameLogic)
	require.NotNil(t, found, "1/4 completion should read as avoidant")
	assert.Equal(t, behavior.SeverityHigh, found.Severity)
	assert.Equal(t, 4, found.Frequency)
}

func TestDetectStable(t *testing.T) {
	log := []model.BehaviorEvent{
		completed(model.GamePattern, 9, 78, time.Minute),
		completed(model.GamePattern, 6, 82, time.Minute),
		completed(model.GamePattern, 3, 80, time.Minute),
	}

	patterns := behavior.Detect(log, anchor)

	found := findPattern(patterns, behavior.PatternStable, model.GamePattern)
	require.NotNil(t, found)
	assert.Equal(t, behavior.SeverityLow, found.Severity)

	// Widely scattered scores must not register as stable.
	scattered := []model.BehaviorEvent{
		completed(model.GameVisual, 9, 20, time.Minute),
		completed(model.GameVisual, 6, 90, time.Minute),
		completed(model.GameVisual, 3, 45, time.Minute),
	}
	assert.Nil(t, findPattern(behavior.Detect(scattered, anchor), behavior.PatternStable, model.GameVisual))
}

func TestDetectEarlyExit(t *testing.T) {
	recent := []model.BehaviorEvent{
		event(model.BehaviorGameQuit, model.GameAttention, 1),
		event(model.BehaviorGameQuit, model.GameAttention, 2),
		event(model.BehaviorGameQuit, model.GameAttention, 3),
	}

	found := findPattern(behavior.Detect(recent, anchor), behavior.PatternEarlyExit, model.GameAttention)
	require.NotNil(t, found)
	assert.Equal(t, behavior.SeverityMedium, found.Severity)

	// The same quits outside the seven-day window should not fire.
	stale := []model.BehaviorEvent{
		event(model.BehaviorGameQuit, model.GameAttention, 10),
		event(model.BehaviorGameQuit, model.GameAttention, 12),
		event(model.BehaviorGameQuit, model.GameAttention, 14),
	}
	assert.Nil(t, findPattern(behavior.Detect(stale, anchor), behavior.PatternEarlyExit, model.GameAttention))
}

func TestDetectRepetitive(t *testing.T) {
	var log []model.BehaviorEvent
	for i := 0; i < 6; i++ {
		log = append(log, event(model.BehaviorGameStart, model.GameMemory, 6-i))
	}
	log = append(log, completed(model.GameMemory, 0, 40, time.Minute))

	found := findPattern(behavior.Detect(log, anchor), behavior.PatternRepetitive, model.GameMemory)
	require.NotNil(t, found)
	assert.Equal(t, behavior.SeverityMedium, found.Severity)
	assert.Equal(t, 6, found.Frequency)
}

func TestDetectQuietLog(t *testing.T) {
	log := []model.BehaviorEvent{
		event(model.BehaviorGameStart, model.GameCreative, 1),
		completed(model.GameCreative, 1, 88, time.Minute),
	}

	assert.Empty(t, behavior.Detect(log, anchor))
}

func findPattern(patterns []behavior.Pattern, pt behavior.PatternType, game model.GameType) *behavior.Pattern {
	for i := range patterns {
		if patterns[i].Type == pt && patterns[i].Game == game {
			return &patterns[i]
		}
	}
	return nil
}
