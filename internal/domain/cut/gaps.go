package cut

import (
	"sort"

	"github.com/google/uuid"
)

// interval is a half-open [start, end) span on a cut's own timeline.
type interval struct {
	start, end float64
}

// TrimToUnsupervisedSegments returns new cuts covering the maximal
// supervision-free sub-intervals of c, left to right. Supervisions are first
// clipped to the cut's bounds, so intervals hanging past either edge never
// produce negative gaps. The result is independent of the supervisions'
// order, and a fully covered cut yields nothing.
func (c Cut) TrimToUnsupervisedSegments() []Cut {
	covered := make([]interval, 0, len(c.Sups))
	for _, s := range c.Sups {
		iv := interval{start: s.Start, end: s.End()}
		if iv.start < 0 {
			iv.start = 0
		}
		if iv.end > c.Duration {
			iv.end = c.Duration
		}
		if iv.end > iv.start {
			covered = append(covered, iv)
		}
	}
	sort.Slice(covered, func(i, j int) bool { return covered[i].start < covered[j].start })

	var gaps []Cut
	cursor := 0.0
	emit := func(start, end float64) {
		if end <= start {
			return
		}
		gaps = append(gaps, Cut{
			CutID:    uuid.NewString(),
			Start:    c.Start + start,
			Duration: end - start,
			Channel:  c.Channel,
			Features: c.Features,
		})
	}
	for _, iv := range covered {
		emit(cursor, iv.start)
		if iv.end > cursor {
			cursor = iv.end
		}
	}
	emit(cursor, c.Duration)
	return gaps
}
