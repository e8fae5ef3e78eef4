package scoring

import "github.com/wasal/kidscore/internal/domain/model"

// Denoise filters spam and duplicate events out of an ordered stream. The
// first event is always kept; every later event survives only if its
// timestamp exceeds the previous kept event's by more than threshold
// milliseconds. Order is preserved and the input is never mutated.
//
// Filtering against the last kept event (rather than the raw predecessor)
// makes the operation idempotent: denoising an already-denoised stream
// returns it unchanged.
func Denoise(events []model.RawEvent, thresholdMS int64) []model.RawEvent {
	if len(events) == 0 {
		return nil
	}

	kept := make([]model.RawEvent, 0, len(events))
	kept = append(kept, events[0])
	lastKept := events[0].TimestampMS

	for _, e := range events[1:] {
		if e.TimestampMS-lastKept > thresholdMS {
			kept = append(kept, e)
			lastKept = e.TimestampMS
		}
	}
	return kept
}
