package cli

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/twistedmove/lhotse/internal/pipeline"
)

// newCutCommand groups the commands used to create cut manifests.
func newCutCommand(log *logrus.Logger) *cobra.Command {
	cut := &cobra.Command{
		Use:   "cut",
		Short: "Create and transform cut manifests",
	}
	cut.AddCommand(
		newSimpleCommand(log),
		newRandomOverlayedCommand(log),
		newStereoOverlayedCommand(log),
		newSplitCommand(log),
		newTrimUnsupervisedCommand(log),
	)
	return cut
}

func newSimpleCommand(log *logrus.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "simple SUPERVISION_MANIFEST FEATURE_MANIFEST OUTPUT_CUT_MANIFEST",
		Short: "Create one cut per supervision region",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return pipeline.RunSimple(context.Background(), pipeline.Config{
				SupervisionManifest: args[0],
				FeatureManifest:     args[1],
				OutputPath:          args[2],
				Log:                 log,
			})
		},
	}
}

func newRandomOverlayedCommand(log *logrus.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "random-overlayed SUPERVISION_MANIFEST FEATURE_MANIFEST OUTPUT_CUT_MANIFEST",
		Short: "Overlay two randomized halves of the simple cut set",
		Long: "Create a cut manifest that contains supervision regions from SUPERVISION_MANIFEST " +
			"and features supplied by FEATURE_MANIFEST. It first creates a trivial cut set, splits " +
			"it into two equal randomized parts and overlays their features to create a mix. " +
			"The parameters of the mix are controlled via --snr-range and --offset-range.",
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			seed, _ := cmd.Flags().GetInt64("random-seed")
			snrRange, _ := cmd.Flags().GetFloat64Slice("snr-range")
			offsetRange, _ := cmd.Flags().GetFloat64Slice("offset-range")
			snr, err := asRange(snrRange, "snr-range")
			if err != nil {
				return err
			}
			offset, err := asRange(offsetRange, "offset-range")
			if err != nil {
				return err
			}
			return pipeline.RunRandomOverlayed(context.Background(), pipeline.Config{
				SupervisionManifest: args[0],
				FeatureManifest:     args[1],
				OutputPath:          args[2],
				RandomSeed:          seed,
				SNRRange:            snr,
				OffsetRange:         offset,
				Log:                 log,
			})
		},
	}
	cmd.Flags().Int64P("random-seed", "r", 42, "Random seed value")
	cmd.Flags().Float64SliceP("snr-range", "s", []float64{20, 20},
		"Range of SNR values (in dB) sampled uniformly to overlay the signals")
	cmd.Flags().Float64SliceP("offset-range", "o", []float64{0.5, 0.5},
		"Range of relative offsets (0-1): the right signal starts this many times the left signal's duration later")
	return cmd
}

func newStereoOverlayedCommand(log *logrus.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "stereo-overlayed SUPERVISION_MANIFEST FEATURE_MANIFEST OUTPUT_DIR",
		Short: "Sum the two channels of every recording into mixed cuts",
		Long: "Create cut manifests in OUTPUT_DIR from SUPERVISION_MANIFEST and FEATURE_MANIFEST. " +
			"Every recording is assumed to have two channels with both supervisions and features; " +
			"the features of both channels are summed into a set of mixed cuts. Writes " +
			"source_cuts.yml and mixed_cuts.yml.",
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return pipeline.RunStereoOverlayed(context.Background(), pipeline.Config{
				SupervisionManifest: args[0],
				FeatureManifest:     args[1],
				OutputDir:           args[2],
				Log:                 log,
			})
		},
	}
}

func newSplitCommand(log *logrus.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "split CUT_MANIFEST OUTPUT_DIR",
		Short: "Partition a cut manifest into near-equal shards",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			numSplits, _ := cmd.Flags().GetInt("num-splits")
			randomize, _ := cmd.Flags().GetBool("randomize")
			seed, _ := cmd.Flags().GetInt64("random-seed")
			return pipeline.RunSplit(context.Background(), pipeline.Config{
				CutManifest: args[0],
				OutputDir:   args[1],
				NumSplits:   numSplits,
				Randomize:   randomize,
				RandomSeed:  seed,
				Log:         log,
			})
		},
	}
	cmd.Flags().IntP("num-splits", "n", 2, "Number of shards to produce")
	cmd.Flags().Bool("randomize", false, "Shuffle the cuts before partitioning")
	cmd.Flags().Int64P("random-seed", "r", 42, "Random seed value used with --randomize")
	return cmd
}

func newTrimUnsupervisedCommand(log *logrus.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "trim-unsupervised CUT_MANIFEST OUTPUT_CUT_MANIFEST",
		Short: "Extract the supervision-free gaps of every cut",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return pipeline.RunTrimUnsupervised(context.Background(), pipeline.Config{
				CutManifest: args[0],
				OutputPath:  args[1],
				Log:         log,
			})
		},
	}
}

func asRange(vals []float64, name string) ([2]float64, error) {
	if len(vals) != 2 {
		return [2]float64{}, fmt.Errorf("--%s expects exactly two values, got %d", name, len(vals))
	}
	return [2]float64{vals[0], vals[1]}, nil
}
