// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"runtime"
	"sync"
	"time"

	sessionqueue "github.com/wasal/kidscore/internal/adapters/mq/queue"
	workerpool "github.com/wasal/kidscore/internal/adapters/mq/worker"
	repository "github.com/wasal/kidscore/internal/adapters/repository"
	"github.com/wasal/kidscore/internal/domain/dedupe"
	"github.com/wasal/kidscore/internal/domain/domains"
	"github.com/wasal/kidscore/internal/domain/model"
	"github.com/wasal/kidscore/internal/domain/scoring"
	"github.com/wasal/kidscore/pkg/logger"
	"github.com/wasal/kidscore/pkg/metrics"
)

// Service wires the scoring engine, store, dedupe tracker, queue and
// worker pool into the assessment pipeline.
type Service struct {
	mu sync.RWMutex

	// Core components
	store   repository.Store
	tracker dedupe.Tracker
	queue   *sessionqueue.InMemoryQueue
	engine  *scoring.Engine
	pool    *workerpool.Pool

	// Configuration
	workerCount int
	queueSize   int
	dedupeSize  int
	shardCount  int
	engineOpts  []scoring.Option

	// State
	started bool
	stopCh  chan struct{}

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithWorkerCount sets the number of scoring worker goroutines.
func WithWorkerCount(count int) Option {
	return func(s *Service) {
		if count > 0 {
			s.workerCount = count
		}
	}
}

// WithQueueSize sets the maximum size of the session queue.
func WithQueueSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.queueSize = size
		}
	}
}

// WithDedupeSize sets the size of the session deduplication cache.
func WithDedupeSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.dedupeSize = size
		}
	}
}

// WithShardCount sets the number of report store shards.
func WithShardCount(count int) Option {
	return func(s *Service) {
		if count > 0 {
			s.shardCount = count
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithEngineOptions forwards options to the scoring engine, for tuning
// spam and hesitation thresholds or the minimum event count.
func WithEngineOptions(opts ...scoring.Option) Option {
	return func(s *Service) {
		s.engineOpts = append(s.engineOpts, opts...)
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		workerCount: runtime.NumCPU() * 2,
		queueSize:   100000,
		dedupeSize:  50000,
		stopCh:      make(chan struct{}),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start initializes and starts the service components.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting assessment service...")

	var storeOpts []repository.Option
	if s.shardCount > 0 {
		storeOpts = append(storeOpts, repository.WithShardCount(s.shardCount))
	}
	s.store = repository.NewMemStore(ctx, storeOpts...)
	s.tracker = dedupe.NewTracker(
		dedupe.WithMaxSize(s.dedupeSize),
	)
	s.queue = sessionqueue.NewInMemoryQueue(
		sessionqueue.WithCapacity(s.queueSize),
	)
	s.engine = scoring.NewEngine(s.engineOpts...)

	pool, err := workerpool.NewPool(s.queue, s.engine, s.store,
		workerpool.WithWorkerCount(s.workerCount),
		workerpool.WithLogger(s.logger),
	)
	if err != nil {
		return err
	}
	s.pool = pool
	if err := s.pool.Start(ctx); err != nil {
		return err
	}

	s.started = true
	s.logger.Info(ctx, "assessment service started",
		logger.Int("workers", s.workerCount),
		logger.Int("queueSize", s.queueSize),
		logger.Int("dedupeSize", s.dedupeSize),
	)

	return nil
}

// Stop gracefully shuts down the service.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	ctx := context.Background()
	s.logger.Info(ctx, "stopping assessment service...")

	// Close the queue first so draining workers see the end of the stream.
	if s.queue != nil {
		_ = s.queue.Close()
	}
	if s.pool != nil {
		if err := s.pool.Shutdown(); err != nil {
			s.logger.Warn(ctx, "worker pool did not drain", logger.Error(err))
		}
	}

	select {
	case <-s.stopCh:
	default:
		close(s.stopCh)
	}

	s.started = false
	s.logger.Info(ctx, "assessment service stopped")
}

// SeenAndRecord atomically checks if a session id was seen and records it
// if not. Returns true if the session was already seen.
func (s *Service) SeenAndRecord(ctx context.Context, id string) bool {
	seen := s.tracker.SeenAndRecord(ctx, id)
	if seen {
		metrics.RecordDuplicateSession()
	}
	return seen
}

// Unrecord removes a session ID from the seen list so the submission can
// be retried, used when enqueueing fails after recording.
func (s *Service) Unrecord(ctx context.Context, id string) {
	s.tracker.Unrecord(ctx, id)
}

// Enqueue submits a session for asynchronous scoring. Returns false when
// the queue is full.
func (s *Service) Enqueue(ctx context.Context, sess model.Session) bool {
	s.logger.Debug(ctx, "enqueueing session",
		logger.String("session_id", sess.SessionID),
		logger.String("child_id", sess.ChildID),
		logger.String("game", string(sess.Game)),
		logger.Int("events", len(sess.Events)),
	)
	return s.queue.Enqueue(ctx, sess)
}

// Score runs the scoring pipeline synchronously and stores the resulting
// report before returning it.
func (s *Service) Score(ctx context.Context, sess model.Session) (model.MiniReport, error) {
	start := time.Now()

	report, err := s.engine.MiniReport(ctx, sess)
	if err != nil {
		return model.MiniReport{}, err
	}

	if err := s.store.SaveReport(ctx, sess.ChildID, sess.SessionID, report); err != nil {
		return model.MiniReport{}, err
	}

	metrics.RecordSessionScored(string(sess.Game))
	metrics.RecordScoringLatency(float64(time.Since(start).Microseconds()) / 1000)
	return report, nil
}

// ChildReports returns a child's stored reports in storage order.
func (s *Service) ChildReports(ctx context.Context, childID string) ([]repository.StoredReport, error) {
	return s.store.Reports(ctx, childID)
}

// ChildDomains recomputes the child's cross-domain scores from the latest
// stored score per game.
func (s *Service) ChildDomains(ctx context.Context, childID string) (map[domains.Domain]int, error) {
	scores, err := s.store.LatestScores(ctx, childID)
	if err != nil {
		return nil, err
	}

	metrics.RecordDomainRecompute()
	return domains.Scores(scores), nil
}

// MinEvents exposes the engine's minimum event threshold for request
// validation at the API edge.
func (s *Service) MinEvents() int {
	return s.engine.MinEvents()
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx := context.Background()
	stats := map[string]interface{}{
		"started":     s.started,
		"workerCount": s.workerCount,
		"queueSize":   s.queueSize,
		"dedupeSize":  s.dedupeSize,
	}

	if s.started {
		queueLen := s.queue.Len(ctx)
		children := s.store.Children(ctx)
		reports := s.store.ReportCount(ctx)

		stats["queueLength"] = queueLen
		stats["children"] = children
		stats["reports"] = reports
		stats["dedupeEntries"] = s.tracker.Size()

		metrics.UpdateQueueSize(queueLen)
		metrics.UpdateChildrenTracked(children)
		metrics.UpdateReportsStored(reports)
	}

	return stats
}

// Size returns the current number of tracked session IDs.
func (s *Service) Size() int {
	if s.tracker == nil {
		return 0
	}
	return s.tracker.Size()
}
