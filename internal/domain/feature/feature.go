// Package feature describes precomputed feature-matrix manifests. The raw
// matrices live in external storage and are never read here; a Record carries
// enough metadata (span, frame layout, per-frame energies) for the cut algebra
// to reason about windows and signal energy without touching the samples.
package feature

import "fmt"

// Record is one feature manifest entry: the matrix computed for a single
// recording channel over a contiguous time span.
type Record struct {
	RecordingID string  `yaml:"recording_id" json:"recording_id"`
	Channel     int     `yaml:"channel" json:"channel"`
	Start       float64 `yaml:"start" json:"start"`
	Duration    float64 `yaml:"duration" json:"duration"`
	Type        string  `yaml:"type,omitempty" json:"type,omitempty"`
	StoragePath string  `yaml:"storage_path,omitempty" json:"storage_path,omitempty"`

	// FrameShift is the hop between consecutive frames in seconds.
	FrameShift float64 `yaml:"frame_shift,omitempty" json:"frame_shift,omitempty"`

	// FrameEnergies holds one scalar energy per frame, in timeline order.
	// It is the only numeric content of the matrix that the algebra consumes.
	FrameEnergies []float64 `yaml:"frame_energies,omitempty" json:"frame_energies,omitempty"`
}

// End returns the exclusive end of the span the record covers.
func (r *Record) End() float64 {
	return r.Start + r.Duration
}

// Covers reports whether the record's span contains [start, start+duration).
func (r *Record) Covers(start, duration float64) bool {
	return start >= r.Start && start+duration <= r.End()
}

// WindowEnergy returns the summed frame energy over the window
// [start, start+duration), with start on the recording's timeline.
// The window is clipped to the record's span.
func (r *Record) WindowEnergy(start, duration float64) float64 {
	if r.FrameShift <= 0 || len(r.FrameEnergies) == 0 {
		return 0
	}
	lo := start - r.Start
	hi := lo + duration
	if lo < 0 {
		lo = 0
	}
	if limit := float64(len(r.FrameEnergies)) * r.FrameShift; hi > limit {
		hi = limit
	}
	var sum float64
	for i, e := range r.FrameEnergies {
		frameStart := float64(i) * r.FrameShift
		if frameStart+r.FrameShift <= lo {
			continue
		}
		if frameStart >= hi {
			break
		}
		sum += e
	}
	return sum
}

// SubWindow returns a derived record covering [start, start+duration) only,
// with the frame energies narrowed accordingly. The window must lie within
// the record's span.
func (r *Record) SubWindow(start, duration float64) (*Record, error) {
	if !r.Covers(start, duration) {
		return nil, fmt.Errorf("window [%v, %v) outside feature span [%v, %v)",
			start, start+duration, r.Start, r.End())
	}
	sub := *r
	sub.Start = start
	sub.Duration = duration
	if r.FrameShift > 0 && len(r.FrameEnergies) > 0 {
		lo := int((start - r.Start) / r.FrameShift)
		hi := lo + int(duration/r.FrameShift)
		if hi > len(r.FrameEnergies) {
			hi = len(r.FrameEnergies)
		}
		if lo > len(r.FrameEnergies) {
			lo = len(r.FrameEnergies)
		}
		sub.FrameEnergies = r.FrameEnergies[lo:hi]
	}
	return &sub, nil
}

// Set is an ordered collection of feature records, typically loaded from a
// feature manifest.
type Set []Record

// Find returns the record matching the recording and channel whose span
// covers [start, start+duration), or nil when there is none.
func (s Set) Find(recordingID string, channel int, start, duration float64) *Record {
	for i := range s {
		r := &s[i]
		if r.RecordingID == recordingID && r.Channel == channel && r.Covers(start, duration) {
			return r
		}
	}
	return nil
}
