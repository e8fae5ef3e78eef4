package scoring

import "github.com/wasal/kidscore/internal/domain/model"

// At most two explanation strings survive; the rule order below is the
// priority order.
const maxReasons = 2

// reasons runs the deterministic explanation rules against the session's
// sub-scores and metrics.
func (e *Engine) reasons(s model.SubScores, m GameMetrics, game model.GameType) []string {
	var out []string

	if s.Accuracy >= 80 && s.Latency >= 70 {
		out = append(out, "high accuracy and good speed")
	} else if s.Accuracy >= 70 && s.Latency < 60 {
		out = append(out, "deliberate thinker; needs gentle speed drills")
	}

	if m.AvgLatencyMS > 1500 {
		out = append(out, "response time above age reference")
	}

	if m.Hesitations > 5 {
		out = append(out, "noticeable hesitation before choosing")
	}

	if game == model.GameAttention && m.FalsePositiveRate > 0.2 {
		out = append(out, "impulsive errors (pressing off-target)")
	}

	if s.Accuracy < 60 {
		out = append(out, "needs more focus and practice")
	}

	if len(out) == 0 {
		out = append(out, "generally balanced performance")
	}

	if len(out) > maxReasons {
		out = out[:maxReasons]
	}
	return out
}

// tipPair holds the two improvement suggestions for a game: the first for
// generally adequate speed, the second more remedial for slow latency.
type tipPair [2]string

var tipTable = map[model.GameType]tipPair{
	model.GameMemory: {
		"play a ten-minute find-the-object exercise three times a week",
		"play a five-minute picture recall game every day",
	},
	model.GameAttention: {
		"play press-on-the-star for three minutes a day",
		"practice counting down while focusing on a chosen number",
	},
	model.GameLogic: {
		"solve simple age-appropriate puzzles every day",
		"sort shapes by logical rules together",
	},
	model.GameVisual: {
		"practice spot-the-difference picture exercises",
		"build shapes out of loose pieces",
	},
	model.GamePattern: {
		"complete colored pattern sequences every day",
		"guess the next shape in a series",
	},
	model.GameCreative: {
		"free drawing for ten minutes a day",
		"imagine a story and draw it",
	},
}

const (
	encouragementTip = "keep up the daily practice to maintain this great level!"
	genericTip       = "keep practicing and improving!"
)

// tip selects the single improvement suggestion. High scorers get a fixed
// encouragement; otherwise the game's remedial entry is chosen when the
// latency sub-score is poor.
func (e *Engine) tip(score int, game model.GameType, s model.SubScores) string {
	if score >= 85 {
		return encouragementTip
	}

	pair, ok := tipTable[game]
	if !ok {
		return genericTip
	}
	if s.Latency < 50 {
		return pair[1]
	}
	return pair[0]
}
