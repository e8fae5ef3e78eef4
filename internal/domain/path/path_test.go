package path_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wasal/kidscore/internal/domain/model"
	"github.com/wasal/kidscore/internal/domain/path"
)

func TestFullAssessmentPath(t *testing.T) {
	p := path.New(nil)

	assert.Equal(t, path.StatusInProgress, p.Status)
	assert.Len(t, p.Target, 6, "empty target means the full six-game assessment")

	prog := p.Progress()
	assert.Equal(t, 0, prog.Completed)
	assert.Equal(t, 0, prog.Percentage)
	require.NotNil(t, prog.NextGame)
	assert.Equal(t, model.GameMemory, *prog.NextGame)
}

func TestRecordResult(t *testing.T) {
	p := path.New([]model.GameType{model.GameMemory, model.GameLogic})

	require.NoError(t, p.RecordResult(model.GameMemory, 80, 90*time.Second))

	assert.Equal(t, 80.0, p.AverageScore)
	assert.Equal(t, 90*time.Second, p.TotalDuration)
	assert.Equal(t, path.StatusInProgress, p.Status)

	prog := p.Progress()
	assert.Equal(t, 50, prog.Percentage)
	require.NotNil(t, prog.NextGame)
	assert.Equal(t, model.GameLogic, *prog.NextGame)

	require.NoError(t, p.RecordResult(model.GameLogic, 60, 2*time.Minute))

	assert.Equal(t, 70.0, p.AverageScore, "running average of 80 and 60")
	assert.Equal(t, path.StatusCompleted, p.Status)
	assert.Nil(t, p.Progress().NextGame)
	assert.Equal(t, 100, p.Progress().Percentage)
}

func TestRecordResultRejections(t *testing.T) {
	p := path.New([]model.GameType{model.GameMemory})

	assert.Error(t, p.RecordResult(model.GameCreative, 50, time.Minute), "game outside the target set")

	require.NoError(t, p.RecordResult(model.GameMemory, 75, time.Minute))
	assert.Error(t, p.RecordResult(model.GameMemory, 90, time.Minute), "double completion")

	// Completed path accepts nothing further.
	assert.Equal(t, path.StatusCompleted, p.Status)
}

func TestAbandon(t *testing.T) {
	p := path.New([]model.GameType{model.GameVisual, model.GamePattern})
	require.NoError(t, p.RecordResult(model.GameVisual, 66, time.Minute))

	p.Abandon()

	assert.Equal(t, path.StatusAbandoned, p.Status)
	assert.Error(t, p.RecordResult(model.GamePattern, 70, time.Minute))

	// Abandoning a completed path must not rewrite its status.
	done := path.New([]model.GameType{model.GameMemory})
	require.NoError(t, done.RecordResult(model.GameMemory, 90, time.Minute))
	done.Abandon()
	assert.Equal(t, path.StatusCompleted, done.Status)
}

func TestScoresFeedDomainAggregation(t *testing.T) {
	p := path.New([]model.GameType{model.GameMemory, model.GameAttention})
	require.NoError(t, p.RecordResult(model.GameMemory, 80, time.Minute))
	require.NoError(t, p.RecordResult(model.GameAttention, 60, time.Minute))

	assert.Equal(t, []model.GameScore{
		{Game: model.GameMemory, Score: 80},
		{Game: model.GameAttention, Score: 60},
	}, p.Scores)
}
