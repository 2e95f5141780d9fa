package usecase

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/twistedmove/lhotse/internal/domain/cut"
	"github.com/twistedmove/lhotse/internal/ports"
)

// Deps holds the external collaborators of the cut-building operations.
type Deps struct {
	Store ports.ManifestStore

	// Energy computes the scalar signal energy of an atomic cut. Defaults
	// to the manifest-backed statistic when nil.
	Energy cut.EnergyFunc
}

type Usecase struct{ d Deps }

func New(d Deps) Usecase {
	if d.Energy == nil {
		d.Energy = cut.FeatureEnergy
	}
	return Usecase{d: d}
}

func (u Usecase) engine() cut.Engine {
	return cut.Engine{Energy: u.d.Energy}
}

// buildSimple loads both manifests and joins supervisions with features.
func (u Usecase) buildSimple(ctx context.Context, supervisionManifest, featureManifest string) (cut.Set, error) {
	sups, err := u.d.Store.LoadSupervisionSet(ctx, supervisionManifest)
	if err != nil {
		return cut.Set{}, err
	}
	feats, err := u.d.Store.LoadFeatureSet(ctx, featureManifest)
	if err != nil {
		return cut.Set{}, err
	}
	return cut.MakeCutsFromSupervisions(sups, feats)
}

type SimpleInput struct {
	SupervisionManifest string
	FeatureManifest     string
	OutputCutManifest   string
}

// Simple creates one cut per supervision and writes the resulting set.
func (u Usecase) Simple(ctx context.Context, in SimpleInput) (cut.Set, error) {
	cs, err := u.buildSimple(ctx, in.SupervisionManifest, in.FeatureManifest)
	if err != nil {
		return cut.Set{}, err
	}
	if err := u.d.Store.SaveCutSet(ctx, cs, in.OutputCutManifest); err != nil {
		return cut.Set{}, err
	}
	return cs, nil
}

type RandomOverlayedInput struct {
	SupervisionManifest string
	FeatureManifest     string
	OutputCutManifest   string

	Seed        int64
	SNRRange    [2]float64
	OffsetRange [2]float64
}

// RandomOverlayed builds the simple set, splits it into two randomized
// halves, and overlays them pairwise with uniformly sampled SNR and relative
// offset (the right cut starts at left.duration times the sampled fraction).
// The written set contains both the overlayed cuts and the source cuts.
func (u Usecase) RandomOverlayed(ctx context.Context, in RandomOverlayedInput) (cut.Set, error) {
	source, err := u.buildSimple(ctx, in.SupervisionManifest, in.FeatureManifest)
	if err != nil {
		return cut.Set{}, err
	}

	rng := rand.New(rand.NewSource(in.Seed))
	halves, err := cut.Split(source, 2, true, rng)
	if err != nil {
		return cut.Set{}, err
	}
	left := halves[0].SimpleCuts()
	right := halves[1].SimpleCuts()
	if len(right) < len(left) {
		left = left[:len(right)]
	}

	eng := u.engine()
	mixed := make([]cut.Any, 0, len(left))
	for i := range left {
		snr := uniform(rng, in.SNRRange)
		relOffset := uniform(rng, in.OffsetRange)
		m, err := eng.Mix(left[i], right[i], left[i].Duration*relOffset, &snr)
		if err != nil {
			return cut.Set{}, err
		}
		mixed = append(mixed, m)
	}

	overlayed, err := cut.NewSet(mixed...)
	if err != nil {
		return cut.Set{}, err
	}
	combined, err := overlayed.Union(source)
	if err != nil {
		return cut.Set{}, err
	}
	if err := u.d.Store.SaveCutSet(ctx, combined, in.OutputCutManifest); err != nil {
		return cut.Set{}, err
	}
	return combined, nil
}

type StereoOverlayedInput struct {
	SupervisionManifest string
	FeatureManifest     string
	OutputDir           string
}

// StereoOverlayed builds the simple set, sums each recording window's two
// channel cuts, and writes source_cuts.yml and mixed_cuts.yml into OutputDir,
// creating it when needed. Both sets are returned so callers can keep either.
func (u Usecase) StereoOverlayed(ctx context.Context, in StereoOverlayedInput) (source, mixed cut.Set, err error) {
	source, err = u.buildSimple(ctx, in.SupervisionManifest, in.FeatureManifest)
	if err != nil {
		return cut.Set{}, cut.Set{}, err
	}
	mixed, err = cut.MixStereo(source, u.engine())
	if err != nil {
		return cut.Set{}, cut.Set{}, err
	}

	if err = os.MkdirAll(in.OutputDir, 0o755); err != nil {
		return cut.Set{}, cut.Set{}, err
	}
	if err = u.d.Store.SaveCutSet(ctx, source, filepath.Join(in.OutputDir, "source_cuts.yml")); err != nil {
		return cut.Set{}, cut.Set{}, err
	}
	if err = u.d.Store.SaveCutSet(ctx, mixed, filepath.Join(in.OutputDir, "mixed_cuts.yml")); err != nil {
		return cut.Set{}, cut.Set{}, err
	}
	return source, mixed, nil
}

type SplitInput struct {
	CutManifest string
	OutputDir   string
	NumSplits   int
	Randomize   bool
	Seed        int64
}

// Split partitions an existing cut manifest into near-equal shards written as
// cuts.<i>.yml under OutputDir. It returns the shard paths in order.
func (u Usecase) Split(ctx context.Context, in SplitInput) ([]string, error) {
	cs, err := u.d.Store.LoadCutSet(ctx, in.CutManifest)
	if err != nil {
		return nil, err
	}
	var rng *rand.Rand
	if in.Randomize {
		rng = rand.New(rand.NewSource(in.Seed))
	}
	splits, err := cut.Split(cs, in.NumSplits, in.Randomize, rng)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(in.OutputDir, 0o755); err != nil {
		return nil, err
	}
	paths := make([]string, 0, len(splits))
	for i, shard := range splits {
		p := filepath.Join(in.OutputDir, fmt.Sprintf("cuts.%d.yml", i))
		if err := u.d.Store.SaveCutSet(ctx, shard, p); err != nil {
			return nil, err
		}
		paths = append(paths, p)
	}
	return paths, nil
}

type TrimUnsupervisedInput struct {
	CutManifest       string
	OutputCutManifest string
}

// TrimUnsupervised extracts the supervision-free gaps of every cut in an
// existing manifest and writes them as a new flat set.
func (u Usecase) TrimUnsupervised(ctx context.Context, in TrimUnsupervisedInput) (cut.Set, error) {
	cs, err := u.d.Store.LoadCutSet(ctx, in.CutManifest)
	if err != nil {
		return cut.Set{}, err
	}
	gaps, err := cs.TrimToUnsupervisedSegments()
	if err != nil {
		return cut.Set{}, err
	}
	if err := u.d.Store.SaveCutSet(ctx, gaps, in.OutputCutManifest); err != nil {
		return cut.Set{}, err
	}
	return gaps, nil
}

func uniform(rng *rand.Rand, bounds [2]float64) float64 {
	lo, hi := bounds[0], bounds[1]
	if hi <= lo {
		return lo
	}
	return lo + rng.Float64()*(hi-lo)
}
