// Package supervision defines labeled time intervals within recordings.
package supervision

// Segment is a labeled sub-interval of a recording's timeline. Start is
// expressed in seconds relative to whatever timeline the segment is attached
// to: a recording for manifest entries, a cut for supervisions carried by one.
type Segment struct {
	ID          string  `yaml:"id" json:"id"`
	RecordingID string  `yaml:"recording_id" json:"recording_id"`
	Channel     int     `yaml:"channel,omitempty" json:"channel,omitempty"`
	Start       float64 `yaml:"start" json:"start"`
	Duration    float64 `yaml:"duration" json:"duration"`
	Text        string  `yaml:"text,omitempty" json:"text,omitempty"`
	Language    string  `yaml:"language,omitempty" json:"language,omitempty"`
	Speaker     string  `yaml:"speaker,omitempty" json:"speaker,omitempty"`
}

// End returns the exclusive end of the segment's interval.
func (s Segment) End() float64 {
	return s.Start + s.Duration
}

// WithOffset returns a copy of the segment shifted by delta seconds.
func (s Segment) WithOffset(delta float64) Segment {
	s.Start += delta
	return s
}

// Set is an ordered collection of supervision segments, typically loaded from
// a supervision manifest.
type Set []Segment
