// Package model contains domain models passed between layers.
package model

import "time"

// GameType identifies one of the assessment mini-games. The set is closed;
// scoring falls back to default weights for anything it does not recognize.
type GameType string

// Known game types.
const (
	GameMemory    GameType = "memory"
	GameAttention GameType = "attention"
	GameLogic     GameType = "logic"
	GameVisual    GameType = "visual"
	GamePattern   GameType = "pattern"
	GameCreative  GameType = "creative"
)

// AllGames lists every known game type in assessment-path order.
func AllGames() []GameType {
	return []GameType{GameMemory, GameAttention, GameLogic, GameVisual, GamePattern, GameCreative}
}

// Known reports whether g is one of the supported game types.
func (g GameType) Known() bool {
	switch g {
	case GameMemory, GameAttention, GameLogic, GameVisual, GamePattern, GameCreative:
		return true
	}
	return false
}

// EventType identifies an interaction record emitted by a game UI.
type EventType string

// Interaction event types.
const (
	EventClick         EventType = "click"
	EventSelect        EventType = "select"
	EventMatch         EventType = "match"
	EventSymbolShown   EventType = "symbol_shown"
	EventMissedTarget  EventType = "missed_target"
	EventCardFlip      EventType = "card_flip"
	EventLevelComplete EventType = "level_complete"
	EventGameStart     EventType = "game_start"
	EventGameComplete  EventType = "game_complete"
)

// IsAttempt reports whether the event type counts toward accuracy and
// latency (a deliberate answer rather than a presentation or lifecycle
// record).
func (t EventType) IsAttempt() bool {
	return t == EventClick || t == EventSelect || t == EventMatch
}

// AttemptPayload carries the game-specific fields attached to attempt
// events. Non-attempt events leave it zero.
type AttemptPayload struct {
	Correct        bool  `json:"correct"`
	IsTarget       bool  `json:"is_target"`
	ResponseTimeMS int64 `json:"response_time_ms,omitempty"`
}

// RawEvent is one timestamped interaction record. Timestamps are
// milliseconds, monotonically non-decreasing within a session.
type RawEvent struct {
	TimestampMS int64          `json:"timestamp_ms"`
	Type        EventType      `json:"type"`
	Value       AttemptPayload `json:"value"`
}

// Session is a completed play-through handed to the scorer: the full
// buffered event stream plus the context needed to normalize it.
type Session struct {
	SessionID string     `json:"session_id"` // unique id for idempotency
	ChildID   string     `json:"child_id"`
	Game      GameType   `json:"game"`
	Age       int        `json:"age"` // child's age in years
	Events    []RawEvent `json:"events"`
}

// SubScores holds the orthogonal 0-100 dimensions combined into a final
// game score. Impulsivity is only produced for attention games; nil means
// absent, which the aggregator treats as a perfect 100.
type SubScores struct {
	Accuracy    int  `json:"accuracy"`
	Latency     int  `json:"latency"`
	Hesitation  int  `json:"hesitation"`
	Stability   int  `json:"stability"`
	Impulsivity *int `json:"impulsivity,omitempty"`
}

// Behavioral flags derived independently from metrics and sub-scores.
const (
	FlagAvoidedGame     = "AVOIDED_GAME"
	FlagHighHesitation  = "HIGH_HESITATION"
	FlagImpulsiveErrors = "IMPULSIVE_ERRORS"
	FlagLowAccuracy     = "LOW_ACCURACY"
)

// MiniReport is the scorer's terminal output for one session. Immutable
// once produced; the narrative layer and the domain aggregator consume it
// as-is.
type MiniReport struct {
	Game      GameType  `json:"game"`
	Score     int       `json:"score"`
	Status    string    `json:"status"`
	SubScores SubScores `json:"sub_scores"`
	Reasons   []string  `json:"reasons"`
	Tip       string    `json:"tip"`
	Flags     []string  `json:"flags"`
}

// GameScore pairs a game with its final score, the input shape for the
// cross-domain aggregator.
type GameScore struct {
	Game  GameType `json:"game"`
	Score int      `json:"score"`
}

// BehaviorEvent is one entry in a child's engagement log, tracked across
// sessions rather than within one.
type BehaviorEvent struct {
	Type     BehaviorEventType `json:"type"`
	Game     GameType          `json:"game"`
	At       time.Time         `json:"at"`
	Duration time.Duration     `json:"duration,omitempty"` // play time, for complete/quit
	Score    int               `json:"score,omitempty"`    // final score, for complete
}

// BehaviorEventType identifies an engagement log entry.
type BehaviorEventType string

// Engagement event types.
const (
	BehaviorGameStart    BehaviorEventType = "game_start"
	BehaviorGameComplete BehaviorEventType = "game_complete"
	BehaviorGameQuit     BehaviorEventType = "game_quit"
	BehaviorGameSkip     BehaviorEventType = "game_skip"
	BehaviorGameSwitch   BehaviorEventType = "game_switch"
	BehaviorPause        BehaviorEventType = "pause"
	BehaviorHesitation   BehaviorEventType = "hesitation"
)
