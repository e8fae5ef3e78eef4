// Package simulator generates synthetic play sessions and drives them
// through a running service instance, then samples the resulting reports
// and domain scores.
package simulator

import (
	"context"
	"fmt"
	"time"

	"github.com/wasal/kidscore/internal/domain/model"
	"github.com/wasal/kidscore/pkg/logger"
)

// settle time between submission and report sampling, to let the async
// workers drain the queue.
const drainWait = 2 * time.Second

// Run executes a full simulation: generate, submit, sample.
func Run(ctx context.Context, config *Config) error {
	log := logger.Get()
	stats := &Stats{StartTime: time.Now()}

	sessions := generateSessions(ctx, config, stats)
	if err := submitSessions(ctx, config, sessions, stats); err != nil {
		return fmt.Errorf("submission failed: %w", err)
	}

	select {
	case <-time.After(drainWait):
	case <-ctx.Done():
		return ctx.Err()
	}

	if err := sampleResults(ctx, config, sessions, stats); err != nil {
		return fmt.Errorf("sampling failed: %w", err)
	}

	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)

	log.Info(ctx, "simulation finished",
		logger.Int("generated", stats.SessionsGenerated),
		logger.Int("successful", stats.SessionsSuccessful),
		logger.Int("duplicate", stats.SessionsDuplicate),
		logger.Int("failed", stats.SessionsFailed),
		logger.Int("reports", stats.ReportsRetrieved),
		logger.Duration("duration", stats.Duration),
	)
	return nil
}

// sampleChildren caps how many children the sampler queries.
const sampleChildren = 3

// sampleResults fetches reports and domain scores for a handful of the
// simulated children and logs what came back.
func sampleResults(ctx context.Context, config *Config, sessions []model.Session, stats *Stats) error {
	log := logger.Get()
	client := newHTTPClient(config.Timeout)

	seen := make(map[string]struct{})
	var children []string
	for _, s := range sessions {
		if _, ok := seen[s.ChildID]; ok {
			continue
		}
		seen[s.ChildID] = struct{}{}
		children = append(children, s.ChildID)
		if len(children) == sampleChildren {
			break
		}
	}

	for _, childID := range children {
		reports, err := fetchReports(ctx, client, config.BaseURL, childID)
		if err != nil {
			log.Warn(ctx, "no reports for child", logger.String("child_id", childID), logger.Error(err))
			continue
		}
		stats.ReportsRetrieved += len(reports.Reports)

		domains, err := fetchDomains(ctx, client, config.BaseURL, childID)
		if err != nil {
			log.Warn(ctx, "no domain scores for child", logger.String("child_id", childID), logger.Error(err))
			continue
		}

		for name, d := range domains.Domains {
			log.Info(ctx, "domain score",
				logger.String("child_id", childID),
				logger.String("domain", name),
				logger.Int("score", d.Score),
				logger.String("level", d.Level),
			)
		}
	}
	return nil
}
