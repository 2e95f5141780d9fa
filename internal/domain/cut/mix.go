package cut

import (
	"fmt"
	"math"

	"github.com/google/uuid"
)

// EnergyFunc computes the scalar signal energy of an atomic cut's feature
// window. The algebra never reads feature matrices itself; callers inject
// whatever statistic their feature representation supports. FeatureEnergy is
// the manifest-backed default.
type EnergyFunc func(Cut) (float64, error)

// FeatureEnergy sums the per-frame energies of the cut's feature record over
// the cut's window.
func FeatureEnergy(c Cut) (float64, error) {
	if c.Features == nil {
		return 0, fmt.Errorf("cut %q: %w", c.CutID, ErrMissingFeatures)
	}
	return c.Features.WindowEnergy(c.Start, c.Duration), nil
}

// Engine mixes cuts into flat MixedCuts with SNR-driven gain.
type Engine struct {
	Energy EnergyFunc
}

// Mix overlays right onto left, starting right at offsetOtherBy seconds past
// left's origin, and returns a new MixedCut; neither input is modified.
//
// When snr is non-nil, right's gain is derived so that the ratio of left's
// energy to right's scaled energy equals 10^(snr/10); left is always the
// energy reference, so swapping operands is not symmetric. A nil snr means
// "no renormalization": both sides keep unit gain regardless of their
// relative energies.
//
// Mixed operands are flattened: the result's tracks are the concatenation of
// both sides' tracks with offsets re-based and gains scaled, never a mix
// nested inside a mix.
func (e Engine) Mix(left, right Any, offsetOtherBy float64, snr *float64) (MixedCut, error) {
	if offsetOtherBy < 0 {
		return MixedCut{}, fmt.Errorf("%w: %v", ErrNegativeOffset, offsetOtherBy)
	}

	gain := 1.0
	if snr != nil {
		leftEnergy, err := e.energyOf(left)
		if err != nil {
			return MixedCut{}, err
		}
		rightEnergy, err := e.energyOf(right)
		if err != nil {
			return MixedCut{}, err
		}
		if leftEnergy <= 0 || rightEnergy <= 0 {
			return MixedCut{}, fmt.Errorf("%w: left=%v right=%v", ErrNonPositiveEnergy, leftEnergy, rightEnergy)
		}
		gain = leftEnergy / (rightEnergy * math.Pow(10, *snr/10))
	}

	tracks := flatten(left, 0, 1.0)
	tracks = append(tracks, flatten(right, offsetOtherBy, gain)...)
	return MixedCut{CutID: uuid.NewString(), Tracks: tracks}, nil
}

// energyOf returns the reference energy of any cut variant. A mix contributes
// the gain-weighted sum of its tracks, consistent with the flat superposition
// it represents.
func (e Engine) energyOf(c Any) (float64, error) {
	switch v := c.(type) {
	case Cut:
		return e.Energy(v)
	case MixedCut:
		var sum float64
		for _, t := range v.Tracks {
			en, err := e.Energy(t.Cut)
			if err != nil {
				return 0, err
			}
			sum += t.Gain * en
		}
		return sum, nil
	}
	return 0, fmt.Errorf("unknown cut variant %T", c)
}

// flatten re-bases a cut variant's tracks by the given offset and scales
// their gains, yielding atomic tracks only.
func flatten(c Any, offset, gain float64) []MixTrack {
	switch v := c.(type) {
	case Cut:
		return []MixTrack{{Cut: v, Offset: offset, Gain: gain}}
	case MixedCut:
		out := make([]MixTrack, 0, len(v.Tracks))
		for _, t := range v.Tracks {
			out = append(out, MixTrack{Cut: t.Cut, Offset: offset + t.Offset, Gain: gain * t.Gain})
		}
		return out
	}
	return nil
}
