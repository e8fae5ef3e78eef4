package model_test

import (
	"testing"

	model "github.com/wasal/kidscore/internal/domain/model"
	"github.com/smartystreets/goconvey/convey"
)

func TestGameType(t *testing.T) {
	convey.Convey("Given the set of game types", t, func() {
		convey.Convey("When checking known types", func() {
			for _, g := range model.AllGames() {
				convey.So(g.Known(), convey.ShouldBeTrue)
			}
		})

		convey.Convey("When checking unknown types", func() {
			convey.So(model.GameType("chess").Known(), convey.ShouldBeFalse)
			convey.So(model.GameType("").Known(), convey.ShouldBeFalse)
		})

		convey.Convey("When listing all games", func() {
			games := model.AllGames()

			convey.Convey("Then all six games should be present", func() {
				convey.So(games, convey.ShouldHaveLength, 6)
				convey.So(games[0], convey.ShouldEqual, model.GameMemory)
				convey.So(games[5], convey.ShouldEqual, model.GameCreative)
			})
		})
	})
}

func TestEventType(t *testing.T) {
	convey.Convey("Given interaction event types", t, func() {
		convey.Convey("When classifying attempt events", func() {
			convey.So(model.EventClick.IsAttempt(), convey.ShouldBeTrue)
			convey.So(model.EventSelect.IsAttempt(), convey.ShouldBeTrue)
			convey.So(model.EventMatch.IsAttempt(), convey.ShouldBeTrue)
		})

		convey.Convey("When classifying non-attempt events", func() {
			convey.So(model.EventSymbolShown.IsAttempt(), convey.ShouldBeFalse)
			convey.So(model.EventGameStart.IsAttempt(), convey.ShouldBeFalse)
			convey.So(model.EventGameComplete.IsAttempt(), convey.ShouldBeFalse)
			convey.So(model.EventLevelComplete.IsAttempt(), convey.ShouldBeFalse)
		})
	})
}

func TestSession(t *testing.T) {
	convey.Convey("Given a session", t, func() {
		convey.Convey("When constructing one from a completed game", func() {
			s := model.Session{
				SessionID: "session-123",
				ChildID:   "child-456",
				Game:      model.GameMemory,
				Age:       7,
				Events: []model.RawEvent{
					{TimestampMS: 0, Type: model.EventGameStart},
					{TimestampMS: 600, Type: model.EventClick, Value: model.AttemptPayload{Correct: true}},
				},
			}

			convey.Convey("Then it should hold the event stream as-is", func() {
				convey.So(s.Events, convey.ShouldHaveLength, 2)
				convey.So(s.Events[1].Value.Correct, convey.ShouldBeTrue)
				convey.So(s.Game.Known(), convey.ShouldBeTrue)
			})
		})
	})
}
