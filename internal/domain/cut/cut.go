// Package cut implements the cut-composition algebra: time-bounded views into
// precomputed feature matrices (Cut), weighted superpositions of such views
// (MixedCut), and the ordered collections (Set) they travel in.
//
// Every value in this package is immutable once constructed; all operations
// return new entities and never touch their inputs, so concurrent readers
// need no synchronization.
package cut

import (
	"github.com/twistedmove/lhotse/internal/domain/feature"
	"github.com/twistedmove/lhotse/internal/domain/supervision"
)

// Any is the closed set of cut variants: Cut or MixedCut. Callers dispatch on
// the concrete type; Duration and Supervisions cover the common questions.
type Any interface {
	ID() string

	// sealed keeps the variant set closed to this package.
	sealed()
}

// Cut is an atomic reference to a time window within one recording's feature
// matrix, together with the supervisions that fall on it. The feature record
// is borrowed: the same record legitimately backs many cuts.
type Cut struct {
	CutID    string
	Start    float64
	Duration float64
	Channel  int
	Features *feature.Record

	// Sups holds supervision intervals with Start relative to the cut.
	// Intervals may extend past the cut's bounds; consumers that need
	// in-bounds intervals clip them (see TrimToUnsupervisedSegments).
	Sups []supervision.Segment
}

// ID returns the cut's identifier.
func (c Cut) ID() string { return c.CutID }

// End returns the cut's exclusive end on the recording's timeline.
func (c Cut) End() float64 { return c.Start + c.Duration }

func (c Cut) sealed() {}

// MixTrack places a borrowed cut inside a MixedCut: Offset is the track's
// start relative to the mix's own time origin, Gain a linear multiplier on
// the track's feature energy.
type MixTrack struct {
	Cut    Cut
	Offset float64
	Gain   float64
}

// NewMixTrack returns a track at the given offset with unit gain.
func NewMixTrack(c Cut, offset float64) MixTrack {
	return MixTrack{Cut: c, Offset: offset, Gain: 1.0}
}

// MixedCut is the flat, weighted superposition of one or more tracks. It owns
// its track list but borrows every referenced cut, and it has no feature
// matrix of its own.
type MixedCut struct {
	CutID  string
	Tracks []MixTrack
}

// ID returns the mixed cut's identifier.
func (m MixedCut) ID() string { return m.CutID }

// Duration returns the effective duration of the mix: the furthest point any
// track reaches.
func (m MixedCut) Duration() float64 {
	var d float64
	for _, t := range m.Tracks {
		if end := t.Offset + t.Cut.Duration; end > d {
			d = end
		}
	}
	return d
}

// Supervisions returns the union of the tracks' supervisions, each shifted by
// its track's offset. They are computed on demand so the component cuts stay
// the single source of truth.
func (m MixedCut) Supervisions() []supervision.Segment {
	var sups []supervision.Segment
	for _, t := range m.Tracks {
		for _, s := range t.Cut.Sups {
			sups = append(sups, s.WithOffset(t.Offset))
		}
	}
	return sups
}

func (m MixedCut) sealed() {}

// Duration returns the effective duration of any cut variant.
func Duration(c Any) float64 {
	switch v := c.(type) {
	case Cut:
		return v.Duration
	case MixedCut:
		return v.Duration()
	}
	return 0
}

// Supervisions returns the supervisions of any cut variant, relative to the
// cut's own time origin.
func Supervisions(c Any) []supervision.Segment {
	switch v := c.(type) {
	case Cut:
		return v.Sups
	case MixedCut:
		return v.Supervisions()
	}
	return nil
}
