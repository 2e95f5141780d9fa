package cut

import "fmt"

// stereoKey identifies a recording window; channel is deliberately absent so
// that the two channel cuts of one window collide.
type stereoKey struct {
	recordingID string
	start       float64
	duration    float64
}

// MixStereo pairs same-recording, same-window cuts distinguished only by
// channel and sums each pair into a single MixedCut (offset 0, no gain
// adjustment, so each channel keeps its native energy). Every recording
// window must have exactly two channel cuts, and every member must be atomic.
// The input set is untouched; callers keep source and mixed sets separately.
func MixStereo(s Set, eng Engine) (Set, error) {
	var order []stereoKey
	pairs := make(map[stereoKey][]Cut)
	for _, c := range s.Cuts() {
		atomic, ok := c.(Cut)
		if !ok {
			return Set{}, fmt.Errorf("%w: cut %q is already mixed", ErrStereoPairing, c.ID())
		}
		if atomic.Features == nil {
			return Set{}, fmt.Errorf("cut %q: %w", atomic.CutID, ErrMissingFeatures)
		}
		key := stereoKey{
			recordingID: atomic.Features.RecordingID,
			start:       atomic.Start,
			duration:    atomic.Duration,
		}
		if _, seen := pairs[key]; !seen {
			order = append(order, key)
		}
		pairs[key] = append(pairs[key], atomic)
	}

	var mixed []Any
	for _, key := range order {
		pair := pairs[key]
		if len(pair) != 2 || pair[0].Channel == pair[1].Channel {
			return Set{}, fmt.Errorf("%w: recording %q window [%v, %v) has %d channel cuts",
				ErrStereoPairing, key.recordingID, key.start, key.start+key.duration, len(pair))
		}
		m, err := eng.Mix(pair[0], pair[1], 0, nil)
		if err != nil {
			return Set{}, err
		}
		mixed = append(mixed, m)
	}
	return NewSet(mixed...)
}
