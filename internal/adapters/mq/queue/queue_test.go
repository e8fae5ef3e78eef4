package queue

import (
	"context"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/wasal/kidscore/internal/domain/model"
)

func session(id string) model.Session {
	return model.Session{
		SessionID: id,
		ChildID:   "child-1",
		Game:      model.GameMemory,
		Age:       6,
	}
}

func TestInMemoryQueue(t *testing.T) {
	Convey("Given an in-memory session queue", t, func() {
		ctx := context.Background()

		Convey("When sessions are enqueued within capacity", func() {
			q := NewInMemoryQueue(WithCapacity(4))
			defer q.Close()

			ok1 := q.Enqueue(ctx, session("s-1"))
			ok2 := q.Enqueue(ctx, session("s-2"))

			Convey("Then both enqueues succeed and Len reflects them", func() {
				So(ok1, ShouldBeTrue)
				So(ok2, ShouldBeTrue)
				So(q.Len(ctx), ShouldEqual, 2)
			})
		})

		Convey("When the queue is full", func() {
			q := NewInMemoryQueue(WithCapacity(1))
			defer q.Close()

			So(q.Enqueue(ctx, session("s-1")), ShouldBeTrue)

			Convey("Then further enqueues are rejected without blocking", func() {
				So(q.Enqueue(ctx, session("s-2")), ShouldBeFalse)
				So(q.Len(ctx), ShouldEqual, 1)
			})
		})

		Convey("When sessions are dequeued", func() {
			q := NewInMemoryQueue(WithCapacity(4))

			q.Enqueue(ctx, session("s-1"))
			q.Enqueue(ctx, session("s-2"))

			out := q.Dequeue(ctx)

			Convey("Then they arrive in FIFO order", func() {
				first := <-out
				second := <-out
				So(first.SessionID, ShouldEqual, "s-1")
				So(second.SessionID, ShouldEqual, "s-2")
				q.Close()
			})
		})

		Convey("When the queue is closed", func() {
			q := NewInMemoryQueue(WithCapacity(2))
			q.Enqueue(ctx, session("s-1"))
			So(q.Close(), ShouldBeNil)

			Convey("Then enqueue is rejected and closing again is a no-op", func() {
				So(q.Enqueue(ctx, session("s-2")), ShouldBeFalse)
				So(q.Close(), ShouldBeNil)
			})

			Convey("Then the dequeue channel drains and closes", func() {
				out := q.Dequeue(ctx)
				s, open := <-out
				So(open, ShouldBeTrue)
				So(s.SessionID, ShouldEqual, "s-1")

				select {
				case _, open := <-out:
					So(open, ShouldBeFalse)
				case <-time.After(time.Second):
					t.Fatal("dequeue channel did not close")
				}
			})
		})

		Convey("When the consumer context is cancelled", func() {
			q := NewInMemoryQueue(WithCapacity(2))
			defer q.Close()

			cctx, cancel := context.WithCancel(ctx)
			out := q.Dequeue(cctx)
			cancel()

			q.Enqueue(ctx, session("s-1"))

			Convey("Then the dequeue channel eventually closes", func() {
				closed := false
				deadline := time.After(time.Second)
				for !closed {
					select {
					case _, open := <-out:
						if !open {
							closed = true
						}
					case <-deadline:
						t.Fatal("dequeue channel did not close after cancel")
					}
				}
				So(closed, ShouldBeTrue)
			})
		})
	})
}
