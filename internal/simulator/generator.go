package simulator

import (
	"context"
	"math/rand"

	"github.com/google/uuid"

	"github.com/wasal/kidscore/internal/domain/model"
	"github.com/wasal/kidscore/pkg/logger"
)

// Child play profiles. Each shapes accuracy, tempo and pauses differently
// so a run exercises the full range of statuses and flags.
const (
	profileSteady = iota
	profileQuick
	profileHesitant
	profileImpulsive
	profileStruggling
	profileErratic
	profileCount
)

// Event pacing constants, in milliseconds.
const (
	minGapMS        = 300
	gapJitterMS     = 900
	hesitantPauseMS = 2200
	burstGapMS      = 40
)

const (
	minEventsPerSession = 8
	eventJitter         = 10
	minAge              = 3
	ageRange            = 10
)

// attemptType picks the attempt event type suited to a game.
func attemptType(game model.GameType) model.EventType {
	switch game {
	case model.GameMemory:
		return model.EventMatch
	case model.GameAttention:
		return model.EventClick
	default:
		return model.EventSelect
	}
}

// generateSession builds one session for a child with the given profile.
func generateSession(rng *rand.Rand, childID string, game model.GameType, age, profile int) model.Session {
	n := minEventsPerSession + rng.Intn(eventJitter)
	events := make([]model.RawEvent, 0, n)

	var (
		ts       int64
		accuracy float64
	)

	switch profile {
	case profileSteady:
		accuracy = 0.75
	case profileQuick:
		accuracy = 0.9
	case profileHesitant:
		accuracy = 0.65
	case profileImpulsive:
		accuracy = 0.55
	case profileStruggling:
		accuracy = 0.3
	default: // erratic
		accuracy = 0.5
	}

	for i := 0; i < n; i++ {
		gap := int64(minGapMS + rng.Intn(gapJitterMS))
		switch profile {
		case profileQuick:
			gap = int64(minGapMS/2 + rng.Intn(gapJitterMS/3))
		case profileHesitant:
			if i%3 == 0 {
				gap = int64(hesitantPauseMS + rng.Intn(gapJitterMS))
			}
		case profileImpulsive:
			// occasional double-tap burst the denoiser should drop
			if i%4 == 0 {
				gap = burstGapMS
			}
		case profileErratic:
			if rng.Intn(2) == 0 {
				gap = int64(minGapMS / 2)
			} else {
				gap = int64(hesitantPauseMS)
			}
		}
		ts += gap

		correct := rng.Float64() < accuracy
		isTarget := true
		if game == model.GameAttention {
			// impulsive players click distractors
			isTarget = profile != profileImpulsive || rng.Intn(3) != 0
		}
		events = append(events, model.RawEvent{
			TimestampMS: ts,
			Type:        attemptType(game),
			Value: model.AttemptPayload{
				Correct:        correct,
				IsTarget:       isTarget,
				ResponseTimeMS: gap,
			},
		})
	}

	return model.Session{
		SessionID: uuid.New().String(),
		ChildID:   childID,
		Game:      game,
		Age:       age,
		Events:    events,
	}
}

// generateSessions creates the configured number of sessions spread across
// the simulated children and all game types.
func generateSessions(ctx context.Context, config *Config, stats *Stats) []model.Session {
	logger.Get().Info(ctx, "generating sessions",
		logger.Int("sessions", config.NumSessions),
		logger.Int("children", config.NumChildren),
		logger.Int64("seed", config.Seed),
	)

	rng := rand.New(rand.NewSource(config.Seed))
	games := model.AllGames()

	children := make([]string, config.NumChildren)
	profiles := make([]int, config.NumChildren)
	ages := make([]int, config.NumChildren)
	for i := range children {
		children[i] = uuid.New().String()
		profiles[i] = rng.Intn(profileCount)
		ages[i] = minAge + rng.Intn(ageRange)
	}

	sessions := make([]model.Session, 0, config.NumSessions)
	for i := 0; i < config.NumSessions; i++ {
		child := i % config.NumChildren
		game := games[rng.Intn(len(games))]
		s := generateSession(rng, children[child], game, ages[child], profiles[child])
		sessions = append(sessions, s)
	}

	stats.SessionsGenerated = len(sessions)
	return sessions
}
