package repository_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	repository "github.com/wasal/kidscore/internal/adapters/repository"
	model "github.com/wasal/kidscore/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func report(game model.GameType, score int) model.MiniReport {
	return model.MiniReport{Game: game, Score: score, Status: "good"}
}

func TestMemStore(t *testing.T) {
	Convey("Given an in-memory report store", t, func() {
		ctx := context.Background()
		fixed := time.Date(2026, 2, 14, 9, 0, 0, 0, time.UTC)
		store := repository.NewMemStore(ctx,
			repository.WithShardCount(4),
			repository.WithClock(func() time.Time { return fixed }),
		)

		Convey("When saving reports for a child", func() {
			So(store.SaveReport(ctx, "child-1", "s-1", report(model.GameMemory, 75)), ShouldBeNil)
			So(store.SaveReport(ctx, "child-1", "s-2", report(model.GameLogic, 60)), ShouldBeNil)

			Convey("Then reports should come back in storage order", func() {
				stored, err := store.Reports(ctx, "child-1")
				So(err, ShouldBeNil)
				So(stored, ShouldHaveLength, 2)
				So(stored[0].SessionID, ShouldEqual, "s-1")
				So(stored[0].Report.Game, ShouldEqual, model.GameMemory)
				So(stored[1].SessionID, ShouldEqual, "s-2")
				So(stored[0].StoredAt, ShouldEqual, fixed)
			})

			Convey("Then counters should track totals", func() {
				So(store.Children(ctx), ShouldEqual, 1)
				So(store.ReportCount(ctx), ShouldEqual, 2)
			})
		})

		Convey("When a game is replayed", func() {
			So(store.SaveReport(ctx, "child-2", "s-3", report(model.GameMemory, 50)), ShouldBeNil)
			So(store.SaveReport(ctx, "child-2", "s-4", report(model.GameMemory, 82)), ShouldBeNil)
			So(store.SaveReport(ctx, "child-2", "s-5", report(model.GameVisual, 64)), ShouldBeNil)

			Convey("Then LatestScores should keep only the newest per game", func() {
				scores, err := store.LatestScores(ctx, "child-2")
				So(err, ShouldBeNil)
				So(scores, ShouldResemble, []model.GameScore{
					{Game: model.GameMemory, Score: 82},
					{Game: model.GameVisual, Score: 64},
				})
			})
		})

		Convey("When querying an unknown child", func() {
			_, err := store.Reports(ctx, "nobody")
			_, err2 := store.LatestScores(ctx, "nobody")

			Convey("Then ErrChildNotFound should be returned", func() {
				So(errors.Is(err, repository.ErrChildNotFound), ShouldBeTrue)
				So(errors.Is(err2, repository.ErrChildNotFound), ShouldBeTrue)
			})
		})

		Convey("When many goroutines write for many children", func() {
			var wg sync.WaitGroup
			for g := 0; g < 8; g++ {
				wg.Add(1)
				go func(g int) {
					defer wg.Done()
					for i := 0; i < 25; i++ {
						child := fmt.Sprintf("child-%d", g)
						_ = store.SaveReport(ctx, child, fmt.Sprintf("s-%d-%d", g, i), report(model.GamePattern, i))
					}
				}(g)
			}
			wg.Wait()

			Convey("Then every write should land", func() {
				So(store.ReportCount(ctx), ShouldEqual, 200)
				So(store.Children(ctx), ShouldEqual, 8)

				stored, err := store.Reports(ctx, "child-3")
				So(err, ShouldBeNil)
				So(stored, ShouldHaveLength, 25)
			})
		})

		Convey("When a returned slice is mutated", func() {
			So(store.SaveReport(ctx, "child-9", "s-9", report(model.GameCreative, 91)), ShouldBeNil)

			stored, err := store.Reports(ctx, "child-9")
			So(err, ShouldBeNil)
			stored[0].Report.Score = 0

			Convey("Then the store's copy should be unaffected", func() {
				again, err := store.Reports(ctx, "child-9")
				So(err, ShouldBeNil)
				So(again[0].Report.Score, ShouldEqual, 91)
			})
		})
	})
}
