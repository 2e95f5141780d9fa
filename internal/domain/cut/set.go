package cut

import "fmt"

// Set is an insertion-ordered, identifier-keyed collection of cuts. It is an
// immutable container: every transformation builds a new Set.
type Set struct {
	ids  []string
	byID map[string]Any
}

// NewSet builds a set from cuts, preserving their order. Identifiers must be
// unique across the whole set regardless of variant.
func NewSet(cuts ...Any) (Set, error) {
	s := Set{byID: make(map[string]Any, len(cuts))}
	for _, c := range cuts {
		if _, ok := s.byID[c.ID()]; ok {
			return Set{}, fmt.Errorf("%w: %q", ErrDuplicateID, c.ID())
		}
		s.ids = append(s.ids, c.ID())
		s.byID[c.ID()] = c
	}
	return s, nil
}

// Len returns the number of cuts in the set.
func (s Set) Len() int { return len(s.ids) }

// Get returns the cut with the given identifier.
func (s Set) Get(id string) (Any, bool) {
	c, ok := s.byID[id]
	return c, ok
}

// Cuts returns the members in insertion order.
func (s Set) Cuts() []Any {
	out := make([]Any, 0, len(s.ids))
	for _, id := range s.ids {
		out = append(out, s.byID[id])
	}
	return out
}

// SimpleCuts returns the atomic members, in insertion order.
func (s Set) SimpleCuts() []Cut {
	var out []Cut
	for _, id := range s.ids {
		if c, ok := s.byID[id].(Cut); ok {
			out = append(out, c)
		}
	}
	return out
}

// MixedCuts returns the composite members, in insertion order.
func (s Set) MixedCuts() []MixedCut {
	var out []MixedCut
	for _, id := range s.ids {
		if m, ok := s.byID[id].(MixedCut); ok {
			out = append(out, m)
		}
	}
	return out
}

// Filter returns a new set with the members satisfying keep, in order.
func (s Set) Filter(keep func(Any) bool) Set {
	out := Set{byID: make(map[string]Any)}
	for _, id := range s.ids {
		if c := s.byID[id]; keep(c) {
			out.ids = append(out.ids, id)
			out.byID[id] = c
		}
	}
	return out
}

// Union returns a new set holding the members of s followed by the members of
// other. Identifier collisions are an error.
func (s Set) Union(other Set) (Set, error) {
	cuts := s.Cuts()
	cuts = append(cuts, other.Cuts()...)
	return NewSet(cuts...)
}

// TrimToUnsupervisedSegments applies gap extraction to every atomic member
// and concatenates the results into one flat set. Mixed members contribute
// nothing: a gap cut needs a single borrowed feature window, which a mix does
// not have.
func (s Set) TrimToUnsupervisedSegments() (Set, error) {
	var out []Any
	for _, c := range s.SimpleCuts() {
		for _, gap := range c.TrimToUnsupervisedSegments() {
			out = append(out, gap)
		}
	}
	return NewSet(out...)
}
