// Package worker consumes queued sessions and turns them into stored
// mini-reports.
package worker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/wasal/kidscore/internal/domain/model"
	"github.com/wasal/kidscore/internal/domain/scoring"
	"github.com/wasal/kidscore/pkg/logger"
	"github.com/wasal/kidscore/pkg/metrics"
)

// Default worker pool configuration constants.
const (
	defaultWorkerCount     = 4
	defaultShutdownTimeout = 10 * time.Second
)

// Queue is the consuming side of the session queue.
type Queue interface {
	Dequeue(ctx context.Context) <-chan model.Session
}

// Store persists finished mini-reports.
type Store interface {
	SaveReport(ctx context.Context, childID, sessionID string, report model.MiniReport) error
}

// Pool runs a fixed set of workers that score sessions from a queue.
type Pool struct {
	queue  Queue
	scorer scoring.Scorer
	store  Store
	log    logger.Logger

	count int
	name  string

	wg      sync.WaitGroup
	cancel  context.CancelFunc
	started bool
	mu      sync.Mutex
}

// NewPool creates a worker pool. The queue, scorer and store are required;
// everything else is configurable through options.
func NewPool(q Queue, s scoring.Scorer, st Store, opts ...Option) (*Pool, error) {
	if q == nil || s == nil || st == nil {
		return nil, ErrMissingDependency
	}

	p := &Pool{
		queue:  q,
		scorer: s,
		store:  st,
		log:    logger.Get(),
		count:  defaultWorkerCount,
		name:   "scoring",
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Start launches the workers. It is an error to start a pool twice.
func (p *Pool) Start(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.started {
		return ErrAlreadyStarted
	}
	p.started = true

	wctx, cancel := context.WithCancel(ctx)
	p.cancel = cancel

	sessions := p.queue.Dequeue(wctx)
	for i := 0; i < p.count; i++ {
		p.wg.Add(1)
		go p.run(wctx, sessions)
	}
	metrics.UpdateWorkerActiveCount(p.count)
	p.log.Info(ctx, "worker pool started", logger.String("pool", p.name), logger.Int("workers", p.count))
	return nil
}

// Shutdown stops the workers and waits for in-flight sessions, up to the
// shutdown timeout.
func (p *Pool) Shutdown() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started {
		return nil
	}
	p.started = false
	p.cancel()

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(defaultShutdownTimeout):
		metrics.RecordWorkerError()
		return ErrShutdownTimeout
	}

	metrics.UpdateWorkerActiveCount(0)
	p.log.Info(context.Background(), "worker pool stopped", logger.String("pool", p.name))
	return nil
}

// run is the main loop of a single worker.
func (p *Pool) run(ctx context.Context, sessions <-chan model.Session) {
	defer p.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case s, ok := <-sessions:
			if !ok {
				return
			}
			p.process(ctx, s)
		}
	}
}

// process scores a single session and stores the resulting report.
func (p *Pool) process(ctx context.Context, s model.Session) {
	start := time.Now()

	report, err := p.scorer.MiniReport(ctx, s)
	if err != nil {
		if errors.Is(err, scoring.ErrInsufficientData) {
			// Too few events to score. Not a failure, the child just
			// needs to replay; count it and move on.
			metrics.RecordInsufficientData()
			p.log.Info(ctx, "session has insufficient data",
				logger.String("session_id", s.SessionID),
				logger.String("child_id", s.ChildID),
				logger.String("game", string(s.Game)))
			return
		}
		metrics.RecordScoringError()
		metrics.RecordWorkerError()
		p.log.Error(ctx, "failed to score session", logger.Error(err),
			logger.String("session_id", s.SessionID),
			logger.String("child_id", s.ChildID))
		return
	}

	if err := p.store.SaveReport(ctx, s.ChildID, s.SessionID, report); err != nil {
		metrics.RecordWorkerError()
		p.log.Error(ctx, "failed to store report", logger.Error(err),
			logger.String("session_id", s.SessionID),
			logger.String("child_id", s.ChildID))
		return
	}

	elapsedMS := float64(time.Since(start).Microseconds()) / 1000
	metrics.RecordSessionScored(string(s.Game))
	metrics.RecordScoringLatency(elapsedMS)
	metrics.RecordWorkerProcessingLatency(elapsedMS)

	p.log.Debug(ctx, "session scored",
		logger.String("session_id", s.SessionID),
		logger.String("child_id", s.ChildID),
		logger.String("game", string(s.Game)),
		logger.Int("score", report.Score))
}
