// Package behavior summarizes a child's engagement log across sessions and
// detects recurring behavioral patterns with deterministic rules. The
// narrative interpretation layered on top of these findings is an external
// concern; everything here is pure computation over the log.
package behavior

import (
	"time"

	"github.com/wasal/kidscore/internal/domain/model"
)

// Summary aggregates an engagement log into the counters the reporting
// layer consumes.
type Summary struct {
	TotalSessions   int `json:"total_sessions"` // completed sessions
	TotalSkips      int `json:"total_skips"`
	TotalHesitations int `json:"total_hesitations"`
	TotalSwitches   int `json:"total_switches"`
	TotalPauses     int `json:"total_pauses"`

	// CompletionRate is completed sessions over started sessions, 1 when
	// nothing was started.
	CompletionRate float64 `json:"completion_rate"`

	PlayCounts  map[model.GameType]int           `json:"play_counts"`
	SkipCounts  map[model.GameType]int           `json:"skip_counts"`
	AvgDuration map[model.GameType]time.Duration `json:"avg_duration"`
}

// Summarize walks the log once and aggregates per-game engagement.
func Summarize(log []model.BehaviorEvent) Summary {
	s := Summary{
		CompletionRate: 1,
		PlayCounts:     make(map[model.GameType]int),
		SkipCounts:     make(map[model.GameType]int),
		AvgDuration:    make(map[model.GameType]time.Duration),
	}

	var starts int
	totals := make(map[model.GameType]time.Duration)

	for _, e := range log {
		switch e.Type {
		case model.BehaviorGameStart:
			starts++
		case model.BehaviorGameComplete:
			s.TotalSessions++
			s.PlayCounts[e.Game]++
			totals[e.Game] += e.Duration
		case model.BehaviorGameSkip:
			s.TotalSkips++
			s.SkipCounts[e.Game]++
		case model.BehaviorHesitation:
			s.TotalHesitations++
		case model.BehaviorGameSwitch:
			s.TotalSwitches++
		case model.BehaviorPause:
			s.TotalPauses++
		case model.BehaviorGameQuit:
			// quits count against the completion rate via starts only
		}
	}

	for game, total := range totals {
		s.AvgDuration[game] = total / time.Duration(s.PlayCounts[game])
	}

	if starts > 0 {
		s.CompletionRate = float64(s.TotalSessions) / float64(starts)
	}

	return s
}
