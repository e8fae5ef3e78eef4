package worker

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/wasal/kidscore/internal/adapters/mq/queue"
	"github.com/wasal/kidscore/internal/domain/model"
	"github.com/wasal/kidscore/internal/domain/scoring"
)

type stubScorer struct {
	err error
}

func (s *stubScorer) MiniReport(_ context.Context, sess model.Session) (model.MiniReport, error) {
	if s.err != nil {
		return model.MiniReport{}, s.err
	}
	return model.MiniReport{Game: sess.Game, Score: 75, Status: scoring.StatusGood}, nil
}

type recordingStore struct {
	mu    sync.Mutex
	saved []string
	err   error
}

func (r *recordingStore) SaveReport(_ context.Context, _, sessionID string, _ model.MiniReport) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.saved = append(r.saved, sessionID)
	return nil
}

func (r *recordingStore) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.saved)
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}

func TestPool(t *testing.T) {
	Convey("Given a worker pool over a session queue", t, func() {
		ctx := context.Background()

		Convey("When a session is enqueued", func() {
			q := queue.NewInMemoryQueue(queue.WithCapacity(8))
			store := &recordingStore{}
			pool, err := NewPool(q, &stubScorer{}, store, WithWorkerCount(2))
			So(err, ShouldBeNil)
			So(pool.Start(ctx), ShouldBeNil)

			q.Enqueue(ctx, model.Session{SessionID: "s-1", ChildID: "c-1", Game: model.GameMemory, Age: 6})

			Convey("Then the scored report is stored", func() {
				waitFor(t, func() bool { return store.count() == 1 })
				So(pool.Shutdown(), ShouldBeNil)
				q.Close()
			})
		})

		Convey("When the scorer reports insufficient data", func() {
			q := queue.NewInMemoryQueue(queue.WithCapacity(8))
			store := &recordingStore{}
			pool, err := NewPool(q, &stubScorer{err: scoring.ErrInsufficientData}, store)
			So(err, ShouldBeNil)
			So(pool.Start(ctx), ShouldBeNil)

			q.Enqueue(ctx, model.Session{SessionID: "s-1", ChildID: "c-1", Game: model.GameLogic, Age: 8})

			Convey("Then nothing is stored and the pool keeps running", func() {
				waitFor(t, func() bool { return q.Len(ctx) == 0 })
				time.Sleep(20 * time.Millisecond)
				So(store.count(), ShouldEqual, 0)
				So(pool.Shutdown(), ShouldBeNil)
				q.Close()
			})
		})

		Convey("When the store fails", func() {
			q := queue.NewInMemoryQueue(queue.WithCapacity(8))
			store := &recordingStore{err: errors.New("disk full")}
			pool, err := NewPool(q, &stubScorer{}, store)
			So(err, ShouldBeNil)
			So(pool.Start(ctx), ShouldBeNil)

			q.Enqueue(ctx, model.Session{SessionID: "s-1", ChildID: "c-1", Game: model.GameVisual, Age: 5})

			Convey("Then the session is dropped without crashing the worker", func() {
				waitFor(t, func() bool { return q.Len(ctx) == 0 })
				So(pool.Shutdown(), ShouldBeNil)
				q.Close()
			})
		})

		Convey("When constructed without dependencies", func() {
			_, err := NewPool(nil, nil, nil)

			Convey("Then construction fails", func() {
				So(err, ShouldEqual, ErrMissingDependency)
			})
		})

		Convey("When started twice", func() {
			q := queue.NewInMemoryQueue(queue.WithCapacity(2))
			pool, err := NewPool(q, &stubScorer{}, &recordingStore{})
			So(err, ShouldBeNil)
			So(pool.Start(ctx), ShouldBeNil)

			Convey("Then the second start fails", func() {
				So(pool.Start(ctx), ShouldEqual, ErrAlreadyStarted)
				So(pool.Shutdown(), ShouldBeNil)
				q.Close()
			})
		})

		Convey("When shut down before starting", func() {
			q := queue.NewInMemoryQueue(queue.WithCapacity(2))
			pool, err := NewPool(q, &stubScorer{}, &recordingStore{})
			So(err, ShouldBeNil)

			Convey("Then shutdown is a no-op", func() {
				So(pool.Shutdown(), ShouldBeNil)
				q.Close()
			})
		})
	})
}
