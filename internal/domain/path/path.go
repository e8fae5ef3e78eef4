// Package path tracks progress through an assessment path: the ordered
// set of games a child is working through in one combined assessment.
// A Path is a plain value; persistence belongs to the caller.
package path

import (
	"fmt"
	"time"

	"github.com/wasal/kidscore/internal/domain/model"
)

// Status of an assessment path.
const (
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusAbandoned  = "abandoned"
)

// Path is one child's run through a target set of games.
type Path struct {
	Target        []model.GameType `json:"target_games"`
	Completed     []model.GameType `json:"completed_games"`
	Scores        []model.GameScore `json:"scores"`
	AverageScore  float64          `json:"average_score"`
	TotalDuration time.Duration    `json:"total_duration"`
	Status        string           `json:"status"`
}

// Progress is a snapshot of how far along a path is.
type Progress struct {
	Completed  int             `json:"completed"`
	Total      int             `json:"total"`
	Percentage int             `json:"percentage"`
	NextGame   *model.GameType `json:"next_game,omitempty"`
}

// New starts a path over the given target games. An empty target means a
// full six-game assessment.
func New(target []model.GameType) *Path {
	if len(target) == 0 {
		target = model.AllGames()
	}
	return &Path{
		Target: append([]model.GameType(nil), target...),
		Status: StatusInProgress,
	}
}

// RecordResult marks a game finished with its score and play time, keeping
// the running average current. Finishing a game twice or finishing one
// outside the target is rejected.
func (p *Path) RecordResult(game model.GameType, score int, duration time.Duration) error {
	if p.Status != StatusInProgress {
		return fmt.Errorf("path is %s, cannot record %s", p.Status, game)
	}
	if !p.targets(game) {
		return fmt.Errorf("game %s is not part of this path", game)
	}
	if p.Done(game) {
		return fmt.Errorf("game %s already completed in this path", game)
	}

	n := float64(len(p.Completed))
	p.AverageScore = (p.AverageScore*n + float64(score)) / (n + 1)
	p.Completed = append(p.Completed, game)
	p.Scores = append(p.Scores, model.GameScore{Game: game, Score: score})
	p.TotalDuration += duration

	if len(p.Completed) == len(p.Target) {
		p.Status = StatusCompleted
	}
	return nil
}

// Abandon marks a path as given up; no further results are accepted.
func (p *Path) Abandon() {
	if p.Status == StatusInProgress {
		p.Status = StatusAbandoned
	}
}

// Done reports whether a game has been finished on this path.
func (p *Path) Done(game model.GameType) bool {
	for _, g := range p.Completed {
		if g == game {
			return true
		}
	}
	return false
}

// NextGame returns the first target game not yet finished, or nil when the
// path is done.
func (p *Path) NextGame() *model.GameType {
	for _, g := range p.Target {
		if !p.Done(g) {
			next := g
			return &next
		}
	}
	return nil
}

// Progress snapshots completion state.
func (p *Path) Progress() Progress {
	prog := Progress{
		Completed: len(p.Completed),
		Total:     len(p.Target),
		NextGame:  p.NextGame(),
	}
	if prog.Total > 0 {
		prog.Percentage = prog.Completed * 100 / prog.Total
	}
	return prog
}

func (p *Path) targets(game model.GameType) bool {
	for _, g := range p.Target {
		if g == game {
			return true
		}
	}
	return false
}
