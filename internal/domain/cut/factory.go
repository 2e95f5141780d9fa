package cut

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/twistedmove/lhotse/internal/domain/feature"
	"github.com/twistedmove/lhotse/internal/domain/supervision"
)

// MakeCutsFromSupervisions builds one cut per supervision: the cut's window
// is the supervision's window, its features are the matching record for that
// recording and channel, and its supervision list holds exactly that one
// segment re-expressed relative to the cut (start 0). A supervision whose
// recording and channel have no covering feature record fails the whole
// build.
func MakeCutsFromSupervisions(sups supervision.Set, feats feature.Set) (Set, error) {
	cuts := make([]Any, 0, len(sups))
	for _, sup := range sups {
		if sup.Duration <= 0 {
			return Set{}, fmt.Errorf("%w: supervision %q", ErrNonPositiveDuration, sup.ID)
		}
		rec := feats.Find(sup.RecordingID, sup.Channel, sup.Start, sup.Duration)
		if rec == nil {
			return Set{}, fmt.Errorf("%w: supervision %q (recording %q, channel %d)",
				ErrMissingFeatures, sup.ID, sup.RecordingID, sup.Channel)
		}
		rel := sup
		rel.Start = 0
		cuts = append(cuts, Cut{
			CutID:    uuid.NewString(),
			Start:    sup.Start,
			Duration: sup.Duration,
			Channel:  sup.Channel,
			Features: rec,
			Sups:     []supervision.Segment{rel},
		})
	}
	return NewSet(cuts...)
}
