package behavior

import (
	"time"

	"github.com/wasal/kidscore/internal/domain/model"
)

// PatternType identifies a recurring behavioral pattern.
type PatternType string

// Detected pattern types.
const (
	PatternAvoidant   PatternType = "avoidant"
	PatternStable     PatternType = "stable"
	PatternEarlyExit  PatternType = "early_exit"
	PatternRepetitive PatternType = "repetitive"
)

// Severity grades how strongly a pattern showed.
type Severity string

// Severity grades.
const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Pattern is one detected behavioral finding for a game.
type Pattern struct {
	Type      PatternType    `json:"type"`
	Game      model.GameType `json:"game"`
	Frequency int            `json:"frequency"`
	Severity  Severity       `json:"severity"`
}

// Detection thresholds.
const (
	avoidantMinStarts    = 3
	avoidantRate         = 0.5
	avoidantHighRate     = 0.3
	stableMinScores      = 3
	stableVarianceCeil   = 100.0
	earlyExitWindow      = 7 * 24 * time.Hour
	earlyExitMinQuits    = 3
	earlyExitHighQuits   = 5
	repetitiveTailLength = 10
	repetitiveMinStarts  = 5
	repetitiveMaxDone    = 2
)

// Detect applies the pattern rules per game over the engagement log. The
// log is expected in chronological order; now anchors the early-exit
// window so detection stays deterministic under test.
func Detect(log []model.BehaviorEvent, now time.Time) []Pattern {
	var out []Pattern

	for _, game := range model.AllGames() {
		var events []model.BehaviorEvent
		for _, e := range log {
			if e.Game == game {
				events = append(events, e)
			}
		}
		if len(events) == 0 {
			continue
		}

		if p, ok := detectAvoidant(game, events); ok {
			out = append(out, p)
		}
		if p, ok := detectStable(game, events); ok {
			out = append(out, p)
		}
		if p, ok := detectEarlyExit(game, events, now); ok {
			out = append(out, p)
		}
		if p, ok := detectRepetitive(game, events); ok {
			out = append(out, p)
		}
	}

	return out
}

// detectAvoidant fires when a child starts a game but rarely finishes it.
func detectAvoidant(game model.GameType, events []model.BehaviorEvent) (Pattern, bool) {
	var starts, completes int
	for _, e := range events {
		switch e.Type {
		case model.BehaviorGameStart:
			starts++
		case model.BehaviorGameComplete:
			completes++
		}
	}
	if starts < avoidantMinStarts {
		return Pattern{}, false
	}

	rate := float64(completes) / float64(starts)
	if rate >= avoidantRate {
		return Pattern{}, false
	}

	severity := SeverityMedium
	if rate < avoidantHighRate {
		severity = SeverityHigh
	}
	return Pattern{Type: PatternAvoidant, Game: game, Frequency: starts, Severity: severity}, true
}

// detectStable fires when recent scores for a game barely vary, a signal
// the child is ready for more challenge.
func detectStable(game model.GameType, events []model.BehaviorEvent) (Pattern, bool) {
	var scores []float64
	for _, e := range events {
		if e.Type == model.BehaviorGameComplete {
			scores = append(scores, float64(e.Score))
		}
	}
	if len(scores) < stableMinScores {
		return Pattern{}, false
	}

	var sum float64
	for _, s := range scores {
		sum += s
	}
	mean := sum / float64(len(scores))

	var sq float64
	for _, s := range scores {
		d := s - mean
		sq += d * d
	}
	variance := sq / float64(len(scores))

	if variance >= stableVarianceCeil {
		return Pattern{}, false
	}
	return Pattern{Type: PatternStable, Game: game, Frequency: len(scores), Severity: SeverityLow}, true
}

// detectEarlyExit fires on repeated quits inside the recent window.
func detectEarlyExit(game model.GameType, events []model.BehaviorEvent, now time.Time) (Pattern, bool) {
	cutoff := now.Add(-earlyExitWindow)
	var quits int
	for _, e := range events {
		if e.Type == model.BehaviorGameQuit && e.At.After(cutoff) {
			quits++
		}
	}
	if quits < earlyExitMinQuits {
		return Pattern{}, false
	}

	severity := SeverityMedium
	if quits > earlyExitHighQuits {
		severity = SeverityHigh
	}
	return Pattern{Type: PatternEarlyExit, Game: game, Frequency: quits, Severity: severity}, true
}

// detectRepetitive fires when the recent log shows many starts with almost
// no completions: the child keeps retrying without getting through.
func detectRepetitive(game model.GameType, events []model.BehaviorEvent) (Pattern, bool) {
	tail := events
	if len(tail) > repetitiveTailLength {
		tail = tail[len(tail)-repetitiveTailLength:]
	}

	var starts, completes int
	for _, e := range tail {
		switch e.Type {
		case model.BehaviorGameStart:
			starts++
		case model.BehaviorGameComplete:
			completes++
		}
	}

	if starts < repetitiveMinStarts || completes >= repetitiveMaxDone {
		return Pattern{}, false
	}
	return Pattern{Type: PatternRepetitive, Game: game, Frequency: starts, Severity: SeverityMedium}, true
}
