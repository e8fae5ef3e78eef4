package repository

import (
	"context"
	"hash/fnv"
	"sync"
	"time"

	"github.com/wasal/kidscore/internal/domain/model"
	"github.com/wasal/kidscore/pkg/metrics"
)

// Default store configuration constants.
const defaultShardCount = 8

// MemStore implements Store with per-child report lists spread over
// sharded maps. Access is always a per-child lookup, so shards only need
// to reduce lock contention; no cross-shard ordering exists.
type MemStore struct {
	shards []*shard
	now    func() time.Time

	reportCount int64
	childCount  int64
	countMu     sync.Mutex
}

type shard struct {
	mu      sync.RWMutex
	reports map[string][]StoredReport
}

// NewMemStore creates an in-memory report store with configuration options.
func NewMemStore(_ context.Context, opts ...Option) *MemStore {
	s := &MemStore{now: time.Now}

	shardCount := defaultShardCount
	for _, opt := range opts {
		opt(s, &shardCount)
	}

	s.shards = make([]*shard, shardCount)
	for i := range s.shards {
		s.shards[i] = &shard{reports: make(map[string][]StoredReport)}
	}

	metrics.UpdateReportsStored(0)
	metrics.UpdateChildrenTracked(0)
	return s
}

func (s *MemStore) shardFor(childID string) *shard {
	h := fnv.New32a()
	_, _ = h.Write([]byte(childID))
	return s.shards[int(h.Sum32())%len(s.shards)]
}

// SaveReport appends a scored session for a child.
func (s *MemStore) SaveReport(_ context.Context, childID, sessionID string, report model.MiniReport) error {
	sh := s.shardFor(childID)

	sh.mu.Lock()
	existing, known := sh.reports[childID]
	sh.reports[childID] = append(existing, StoredReport{
		SessionID: sessionID,
		ChildID:   childID,
		Report:    report,
		StoredAt:  s.now(),
	})
	sh.mu.Unlock()

	s.countMu.Lock()
	s.reportCount++
	if !known {
		s.childCount++
	}
	reports, children := int(s.reportCount), int(s.childCount)
	s.countMu.Unlock()

	metrics.UpdateReportsStored(reports)
	metrics.UpdateChildrenTracked(children)
	return nil
}

// Reports returns a child's reports in storage order.
func (s *MemStore) Reports(_ context.Context, childID string) ([]StoredReport, error) {
	sh := s.shardFor(childID)

	sh.mu.RLock()
	defer sh.mu.RUnlock()

	stored, ok := sh.reports[childID]
	if !ok {
		return nil, ErrChildNotFound
	}

	out := make([]StoredReport, len(stored))
	copy(out, stored)
	return out, nil
}

// LatestScores returns the most recent score per game for a child.
func (s *MemStore) LatestScores(_ context.Context, childID string) ([]model.GameScore, error) {
	sh := s.shardFor(childID)

	sh.mu.RLock()
	stored, ok := sh.reports[childID]
	if !ok {
		sh.mu.RUnlock()
		return nil, ErrChildNotFound
	}

	latest := make(map[model.GameType]int)
	var order []model.GameType
	for _, r := range stored {
		if _, seen := latest[r.Report.Game]; !seen {
			order = append(order, r.Report.Game)
		}
		latest[r.Report.Game] = r.Report.Score // later entries overwrite
	}
	sh.mu.RUnlock()

	out := make([]model.GameScore, 0, len(order))
	for _, game := range order {
		out = append(out, model.GameScore{Game: game, Score: latest[game]})
	}
	return out, nil
}

// Children returns the number of distinct children tracked.
func (s *MemStore) Children(_ context.Context) int {
	s.countMu.Lock()
	defer s.countMu.Unlock()
	return int(s.childCount)
}

// ReportCount returns the total number of stored reports.
func (s *MemStore) ReportCount(_ context.Context) int {
	s.countMu.Lock()
	defer s.countMu.Unlock()
	return int(s.reportCount)
}
