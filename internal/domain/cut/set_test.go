package cut

import (
	"errors"
	"testing"
)

func testSetWithMixedCut(t *testing.T) (Set, Cut, Cut, MixedCut) {
	t.Helper()
	cut1 := testCut("cut-1", 0, 10)
	cut2 := testCut("cut-2", 0, 8)
	m := MixedCut{CutID: "mixed-cut-id", Tracks: []MixTrack{
		NewMixTrack(cut1, 0),
		{Cut: cut2, Offset: 1.0, Gain: 0.5},
	}}
	s, err := NewSet(cut1, cut2, m)
	if err != nil {
		t.Fatalf("new set: %v", err)
	}
	return s, cut1, cut2, m
}

func TestSetIterationOrder(t *testing.T) {
	t.Parallel()

	s, _, _, _ := testSetWithMixedCut(t)
	if s.Len() != 3 {
		t.Fatalf("expected 3 cuts, got %d", s.Len())
	}
	want := []string{"cut-1", "cut-2", "mixed-cut-id"}
	for i, c := range s.Cuts() {
		if c.ID() != want[i] {
			t.Fatalf("position %d: expected %q, got %q", i, want[i], c.ID())
		}
	}
}

func TestSetHoldsBothSimpleAndMixedCuts(t *testing.T) {
	t.Parallel()

	s, _, _, _ := testSetWithMixedCut(t)
	if got := len(s.SimpleCuts()); got != 2 {
		t.Fatalf("expected 2 simple cuts, got %d", got)
	}
	if got := len(s.MixedCuts()); got != 1 {
		t.Fatalf("expected 1 mixed cut, got %d", got)
	}
}

func TestSetDuplicateID(t *testing.T) {
	t.Parallel()

	_, err := NewSet(testCut("dup", 0, 5), testCut("dup", 5, 5))
	if !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("expected ErrDuplicateID, got %v", err)
	}
}

func TestSetFilter(t *testing.T) {
	t.Parallel()

	s, cut1, _, _ := testSetWithMixedCut(t)
	filtered := s.Filter(func(c Any) bool { return c.ID() == "cut-1" })
	if filtered.Len() != 1 {
		t.Fatalf("expected 1 cut after filter, got %d", filtered.Len())
	}
	got, ok := filtered.Get("cut-1")
	if !ok || got.ID() != cut1.CutID {
		t.Fatalf("expected cut-1 to survive the filter, got %v", got)
	}
	// the source set is untouched
	if s.Len() != 3 {
		t.Fatalf("filter mutated the source set: len=%d", s.Len())
	}
}

func TestSetUnion(t *testing.T) {
	t.Parallel()

	a, err := NewSet(testCut("a", 0, 5))
	if err != nil {
		t.Fatalf("new set: %v", err)
	}
	b, err := NewSet(testCut("b", 0, 5))
	if err != nil {
		t.Fatalf("new set: %v", err)
	}

	u, err := a.Union(b)
	if err != nil {
		t.Fatalf("union: %v", err)
	}
	if u.Len() != 2 {
		t.Fatalf("expected 2 cuts, got %d", u.Len())
	}
	if ids := u.Cuts(); ids[0].ID() != "a" || ids[1].ID() != "b" {
		t.Fatalf("union lost insertion order: %q, %q", ids[0].ID(), ids[1].ID())
	}

	if _, err := u.Union(a); !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("expected ErrDuplicateID on overlapping union, got %v", err)
	}
}

func TestDurationAndSupervisionsDispatch(t *testing.T) {
	t.Parallel()

	_, cut1, cut2, m := testSetWithMixedCut(t)

	if got := Duration(cut1); got != 10 {
		t.Fatalf("expected duration 10, got %v", got)
	}
	// cut2 starts 1s into the mix, so the mix reaches 1+8=9 < 10.
	if got := Duration(m); got != 10 {
		t.Fatalf("expected mix duration 10, got %v", got)
	}
	if got := Supervisions(cut2); len(got) != 0 {
		t.Fatalf("expected no supervisions, got %d", len(got))
	}
}
