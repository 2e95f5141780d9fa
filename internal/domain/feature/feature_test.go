package feature

import "testing"

func testRecord() *Record {
	return &Record{
		RecordingID:   "rec1",
		Channel:       0,
		Start:         10,
		Duration:      5,
		Type:          "fbank",
		FrameShift:    1,
		FrameEnergies: []float64{1, 2, 3, 4, 5},
	}
}

func TestRecordCovers(t *testing.T) {
	t.Parallel()

	r := testRecord()
	cases := []struct {
		name            string
		start, duration float64
		want            bool
	}{
		{"full span", 10, 5, true},
		{"sub window", 11, 2, true},
		{"starts early", 9, 2, false},
		{"ends late", 13, 3, false},
	}
	for _, tc := range cases {
		if got := r.Covers(tc.start, tc.duration); got != tc.want {
			t.Fatalf("%s: Covers(%v, %v) = %v, want %v", tc.name, tc.start, tc.duration, got, tc.want)
		}
	}
}

func TestRecordWindowEnergy(t *testing.T) {
	t.Parallel()

	r := testRecord()
	cases := []struct {
		name            string
		start, duration float64
		want            float64
	}{
		{"full span", 10, 5, 15},
		{"first two frames", 10, 2, 3},
		{"middle frame", 12, 1, 3},
		{"clipped to span", 8, 20, 15},
		{"empty window", 12, 0, 0},
	}
	for _, tc := range cases {
		if got := r.WindowEnergy(tc.start, tc.duration); got != tc.want {
			t.Fatalf("%s: WindowEnergy(%v, %v) = %v, want %v", tc.name, tc.start, tc.duration, got, tc.want)
		}
	}
}

func TestRecordWindowEnergyWithoutFrames(t *testing.T) {
	t.Parallel()

	r := &Record{RecordingID: "rec1", Start: 0, Duration: 10}
	if got := r.WindowEnergy(0, 10); got != 0 {
		t.Fatalf("expected zero energy without frame data, got %v", got)
	}
}

func TestRecordSubWindow(t *testing.T) {
	t.Parallel()

	r := testRecord()
	sub, err := r.SubWindow(11, 2)
	if err != nil {
		t.Fatalf("sub window: %v", err)
	}
	if sub.Start != 11 || sub.Duration != 2 {
		t.Fatalf("sub window span [%v, %v)", sub.Start, sub.End())
	}
	if len(sub.FrameEnergies) != 2 || sub.FrameEnergies[0] != 2 || sub.FrameEnergies[1] != 3 {
		t.Fatalf("sub window frames %v", sub.FrameEnergies)
	}
	// the parent record is untouched
	if len(r.FrameEnergies) != 5 {
		t.Fatalf("parent record narrowed: %v", r.FrameEnergies)
	}

	if _, err := r.SubWindow(9, 2); err == nil {
		t.Fatal("expected error for a window outside the span")
	}
}

func TestSetFind(t *testing.T) {
	t.Parallel()

	s := Set{
		{RecordingID: "rec1", Channel: 0, Start: 0, Duration: 10},
		{RecordingID: "rec1", Channel: 1, Start: 0, Duration: 10},
		{RecordingID: "rec2", Channel: 0, Start: 5, Duration: 10},
	}

	if got := s.Find("rec1", 1, 2, 5); got == nil || got.Channel != 1 {
		t.Fatalf("expected the rec1/ch1 record, got %+v", got)
	}
	if got := s.Find("rec2", 0, 0, 5); got != nil {
		t.Fatalf("expected no record for an uncovered window, got %+v", got)
	}
	if got := s.Find("rec3", 0, 0, 1); got != nil {
		t.Fatalf("expected no record for an unknown recording, got %+v", got)
	}
}
