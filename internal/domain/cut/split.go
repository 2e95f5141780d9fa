package cut

import (
	"fmt"
	"math/rand"
)

// Split partitions s into numSplits disjoint, non-empty sets whose sizes
// differ by at most one, with any remainder going to the first sets. With
// randomize the member order is shuffled first using rng (seeding is the
// caller's responsibility); otherwise partitioning follows insertion order
// and is fully deterministic. The splits' union is exactly s: no member is
// dropped or duplicated.
func Split(s Set, numSplits int, randomize bool, rng *rand.Rand) ([]Set, error) {
	if numSplits <= 0 || numSplits > s.Len() {
		return nil, fmt.Errorf("%w: %d splits for %d cuts", ErrInvalidSplit, numSplits, s.Len())
	}
	if randomize && rng == nil {
		return nil, fmt.Errorf("%w: randomize requires a random source", ErrInvalidSplit)
	}

	cuts := s.Cuts()
	if randomize {
		rng.Shuffle(len(cuts), func(i, j int) {
			cuts[i], cuts[j] = cuts[j], cuts[i]
		})
	}

	base := len(cuts) / numSplits
	rem := len(cuts) % numSplits
	splits := make([]Set, 0, numSplits)
	pos := 0
	for i := 0; i < numSplits; i++ {
		size := base
		if i < rem {
			size++
		}
		chunk, err := NewSet(cuts[pos : pos+size]...)
		if err != nil {
			return nil, err
		}
		splits = append(splits, chunk)
		pos += size
	}
	return splits, nil
}
