package logger_test

import (
	"context"
	"testing"

	"github.com/wasal/kidscore/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func TestLogger(t *testing.T) {
	Convey("Given the global logger", t, func() {
		So(logger.Init(), ShouldBeNil)
		ctx := context.Background()

		Convey("When logging at every level", func() {
			log := logger.Get()

			So(func() {
				log.Debug(ctx, "debug message", logger.String("k", "v"))
				log.Info(ctx, "info message", logger.Int("count", 3))
				log.Warn(ctx, "warn message", logger.Float64("ratio", 0.5))
				log.Error(ctx, "error message", logger.Any("payload", map[string]int{"a": 1}))
			}, ShouldNotPanic)
		})

		Convey("When deriving a named logger", func() {
			named := logger.Named("scoring")

			So(named, ShouldNotBeNil)
			So(func() { named.Info(ctx, "from named logger") }, ShouldNotPanic)
		})

		Convey("When setting log levels from strings", func() {
			So(logger.SetLevelString("debug"), ShouldBeNil)
			So(logger.SetLevelString("INFO"), ShouldBeNil)
			So(logger.SetLevelString("warning"), ShouldBeNil)
			So(logger.SetLevelString("error"), ShouldBeNil)
			So(logger.SetLevelString(""), ShouldBeNil)
			So(logger.SetLevelString("verbose"), ShouldNotBeNil)
		})
	})
}
