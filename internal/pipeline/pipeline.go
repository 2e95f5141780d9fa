package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/twistedmove/lhotse/internal/ports"
	"github.com/twistedmove/lhotse/internal/ports/adapters/manifest"
	"github.com/twistedmove/lhotse/internal/usecase"
)

// Config carries the settings shared by every cut command.
type Config struct {
	SupervisionManifest string
	FeatureManifest     string
	CutManifest         string
	OutputPath          string
	OutputDir           string

	RandomSeed  int64
	SNRRange    [2]float64
	OffsetRange [2]float64

	NumSplits int
	Randomize bool

	Log *logrus.Logger
}

func (c Config) log() *logrus.Logger {
	if c.Log != nil {
		return c.Log
	}
	return logrus.StandardLogger()
}

// validateInputs checks that every given manifest path exists.
func validateInputs(paths ...string) error {
	for _, p := range paths {
		if p == "" {
			return errors.New("input manifest path is empty")
		}
		if _, err := os.Stat(p); err != nil {
			return fmt.Errorf("stat input: %w", err)
		}
	}
	return nil
}

func (c Config) newUsecase() usecase.Usecase {
	return usecase.New(usecase.Deps{Store: manifest.New()})
}

// RunSimple builds the trivial one-cut-per-supervision set.
func RunSimple(ctx context.Context, cfg Config) error {
	if err := validateInputs(cfg.SupervisionManifest, cfg.FeatureManifest); err != nil {
		return err
	}
	cs, err := cfg.newUsecase().Simple(ctx, usecase.SimpleInput{
		SupervisionManifest: cfg.SupervisionManifest,
		FeatureManifest:     cfg.FeatureManifest,
		OutputCutManifest:   cfg.OutputPath,
	})
	if err != nil {
		return err
	}
	cfg.log().WithFields(logrus.Fields{
		"cuts":     cs.Len(),
		"manifest": cfg.OutputPath,
	}).Info("cut manifest written")
	return nil
}

// RunRandomOverlayed builds the simple set and overlays two randomized halves
// of it with sampled SNRs and offsets.
func RunRandomOverlayed(ctx context.Context, cfg Config) error {
	if err := validateInputs(cfg.SupervisionManifest, cfg.FeatureManifest); err != nil {
		return err
	}
	if cfg.SNRRange[1] < cfg.SNRRange[0] {
		return fmt.Errorf("snr range [%v, %v] is inverted", cfg.SNRRange[0], cfg.SNRRange[1])
	}
	if cfg.OffsetRange[0] < 0 || cfg.OffsetRange[1] < cfg.OffsetRange[0] {
		return fmt.Errorf("offset range [%v, %v] must be non-negative and ordered", cfg.OffsetRange[0], cfg.OffsetRange[1])
	}
	cs, err := cfg.newUsecase().RandomOverlayed(ctx, usecase.RandomOverlayedInput{
		SupervisionManifest: cfg.SupervisionManifest,
		FeatureManifest:     cfg.FeatureManifest,
		OutputCutManifest:   cfg.OutputPath,
		Seed:                cfg.RandomSeed,
		SNRRange:            cfg.SNRRange,
		OffsetRange:         cfg.OffsetRange,
	})
	if err != nil {
		return err
	}
	cfg.log().WithFields(logrus.Fields{
		"cuts":     cs.Len(),
		"mixed":    len(cs.MixedCuts()),
		"seed":     cfg.RandomSeed,
		"manifest": cfg.OutputPath,
	}).Info("overlayed cut manifest written")
	return nil
}

// RunStereoOverlayed sums each recording window's two channels and writes the
// source and mixed sets side by side.
func RunStereoOverlayed(ctx context.Context, cfg Config) error {
	if err := validateInputs(cfg.SupervisionManifest, cfg.FeatureManifest); err != nil {
		return err
	}
	source, mixed, err := cfg.newUsecase().StereoOverlayed(ctx, usecase.StereoOverlayedInput{
		SupervisionManifest: cfg.SupervisionManifest,
		FeatureManifest:     cfg.FeatureManifest,
		OutputDir:           cfg.OutputDir,
	})
	if err != nil {
		return err
	}
	cfg.log().WithFields(logrus.Fields{
		"source": source.Len(),
		"mixed":  mixed.Len(),
		"dir":    cfg.OutputDir,
	}).Info("stereo cut manifests written")
	return nil
}

// RunSplit shards an existing cut manifest.
func RunSplit(ctx context.Context, cfg Config) error {
	if err := validateInputs(cfg.CutManifest); err != nil {
		return err
	}
	paths, err := cfg.newUsecase().Split(ctx, usecase.SplitInput{
		CutManifest: cfg.CutManifest,
		OutputDir:   cfg.OutputDir,
		NumSplits:   cfg.NumSplits,
		Randomize:   cfg.Randomize,
		Seed:        cfg.RandomSeed,
	})
	if err != nil {
		return err
	}
	cfg.log().WithFields(logrus.Fields{
		"splits": len(paths),
		"dir":    cfg.OutputDir,
	}).Info("cut manifest shards written")
	return nil
}

// RunTrimUnsupervised extracts supervision-free gaps from an existing cut
// manifest.
func RunTrimUnsupervised(ctx context.Context, cfg Config) error {
	if err := validateInputs(cfg.CutManifest); err != nil {
		return err
	}
	gaps, err := cfg.newUsecase().TrimUnsupervised(ctx, usecase.TrimUnsupervisedInput{
		CutManifest:       cfg.CutManifest,
		OutputCutManifest: cfg.OutputPath,
	})
	if err != nil {
		return err
	}
	cfg.log().WithFields(logrus.Fields{
		"gaps":     gaps.Len(),
		"manifest": cfg.OutputPath,
	}).Info("unsupervised cut manifest written")
	return nil
}

// ensure the adapter implements the port
var _ ports.ManifestStore = manifest.Adapter{}
