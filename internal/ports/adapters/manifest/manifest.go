// Package manifest persists supervision, feature and cut manifests as YAML or
// JSON documents, transparently gzip-compressed for paths ending in ".gz".
// The cut records are self-describing: a type tag distinguishes atomic cuts
// from mixes so polymorphism survives a round trip.
package manifest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"gopkg.in/yaml.v3"

	"github.com/twistedmove/lhotse/internal/domain/cut"
	"github.com/twistedmove/lhotse/internal/domain/feature"
	"github.com/twistedmove/lhotse/internal/domain/supervision"
)

// ErrUnknownFormat indicates a manifest path with an unsupported extension.
var ErrUnknownFormat = errors.New("unknown manifest format")

// Type tags distinguishing cut variants in serialized form.
const (
	typeCut      = "Cut"
	typeMixedCut = "MixedCut"
)

// Adapter implements ports.ManifestStore on the local filesystem.
type Adapter struct{}

// New returns a filesystem-backed manifest store.
func New() Adapter { return Adapter{} }

// LoadSupervisionSet reads a supervision manifest.
func (Adapter) LoadSupervisionSet(_ context.Context, path string) (supervision.Set, error) {
	var sups supervision.Set
	if err := load(path, &sups); err != nil {
		return nil, fmt.Errorf("load supervision manifest: %w", err)
	}
	return sups, nil
}

// LoadFeatureSet reads a feature manifest.
func (Adapter) LoadFeatureSet(_ context.Context, path string) (feature.Set, error) {
	var feats feature.Set
	if err := load(path, &feats); err != nil {
		return nil, fmt.Errorf("load feature manifest: %w", err)
	}
	return feats, nil
}

// LoadCutSet reads a cut manifest, reconstructing the Cut/MixedCut variants
// from their type tags.
func (Adapter) LoadCutSet(_ context.Context, path string) (cut.Set, error) {
	var records []cutRecord
	if err := load(path, &records); err != nil {
		return cut.Set{}, fmt.Errorf("load cut manifest: %w", err)
	}
	cuts := make([]cut.Any, 0, len(records))
	for _, r := range records {
		c, err := decodeCut(r)
		if err != nil {
			return cut.Set{}, fmt.Errorf("load cut manifest: %w", err)
		}
		cuts = append(cuts, c)
	}
	return cut.NewSet(cuts...)
}

// SaveCutSet writes a cut manifest in insertion order.
func (Adapter) SaveCutSet(_ context.Context, cs cut.Set, path string) error {
	members := cs.Cuts()
	records := make([]cutRecord, 0, len(members))
	for _, c := range members {
		r, err := encodeCut(c)
		if err != nil {
			return fmt.Errorf("save cut manifest: %w", err)
		}
		records = append(records, r)
	}
	if err := save(path, records); err != nil {
		return fmt.Errorf("save cut manifest: %w", err)
	}
	return nil
}

// cutRecord is the serialized form of either cut variant. Atomic cuts fill
// the window fields; mixes fill Tracks only.
type cutRecord struct {
	Type         string                `yaml:"type" json:"type"`
	ID           string                `yaml:"id" json:"id"`
	Start        float64               `yaml:"start,omitempty" json:"start,omitempty"`
	Duration     float64               `yaml:"duration,omitempty" json:"duration,omitempty"`
	Channel      int                   `yaml:"channel,omitempty" json:"channel,omitempty"`
	Features     *feature.Record       `yaml:"features,omitempty" json:"features,omitempty"`
	Supervisions []supervision.Segment `yaml:"supervisions,omitempty" json:"supervisions,omitempty"`
	Tracks       []trackRecord         `yaml:"tracks,omitempty" json:"tracks,omitempty"`
}

type trackRecord struct {
	Cut    cutRecord `yaml:"cut" json:"cut"`
	Offset float64   `yaml:"offset,omitempty" json:"offset,omitempty"`
	Gain   float64   `yaml:"gain" json:"gain"`
}

func encodeCut(c cut.Any) (cutRecord, error) {
	switch v := c.(type) {
	case cut.Cut:
		return cutRecord{
			Type:         typeCut,
			ID:           v.CutID,
			Start:        v.Start,
			Duration:     v.Duration,
			Channel:      v.Channel,
			Features:     v.Features,
			Supervisions: v.Sups,
		}, nil
	case cut.MixedCut:
		tracks := make([]trackRecord, 0, len(v.Tracks))
		for _, t := range v.Tracks {
			inner, err := encodeCut(t.Cut)
			if err != nil {
				return cutRecord{}, err
			}
			tracks = append(tracks, trackRecord{Cut: inner, Offset: t.Offset, Gain: t.Gain})
		}
		return cutRecord{Type: typeMixedCut, ID: v.CutID, Tracks: tracks}, nil
	}
	return cutRecord{}, fmt.Errorf("unknown cut variant %T", c)
}

func decodeCut(r cutRecord) (cut.Any, error) {
	switch r.Type {
	case typeCut:
		return cut.Cut{
			CutID:    r.ID,
			Start:    r.Start,
			Duration: r.Duration,
			Channel:  r.Channel,
			Features: r.Features,
			Sups:     r.Supervisions,
		}, nil
	case typeMixedCut:
		tracks := make([]cut.MixTrack, 0, len(r.Tracks))
		for _, t := range r.Tracks {
			inner, err := decodeCut(t.Cut)
			if err != nil {
				return nil, err
			}
			atomic, ok := inner.(cut.Cut)
			if !ok {
				return nil, fmt.Errorf("cut %q: mix tracks must reference atomic cuts", r.ID)
			}
			tracks = append(tracks, cut.MixTrack{Cut: atomic, Offset: t.Offset, Gain: t.Gain})
		}
		return cut.MixedCut{CutID: r.ID, Tracks: tracks}, nil
	}
	return nil, fmt.Errorf("cut %q: unknown type tag %q", r.ID, r.Type)
}

// format returns the textual encoding a path implies, looking through a
// trailing ".gz".
func format(path string) (string, error) {
	p := strings.TrimSuffix(path, ".gz")
	switch filepath.Ext(p) {
	case ".yml", ".yaml":
		return "yaml", nil
	case ".json":
		return "json", nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, path)
}

func load(path string, v any) error {
	fm, err := format(path)
	if err != nil {
		return err
	}
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		zr, err := gzip.NewReader(f)
		if err != nil {
			return fmt.Errorf("open gzip: %w", err)
		}
		defer func() { _ = zr.Close() }()
		r = zr
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	if fm == "json" {
		return json.Unmarshal(data, v)
	}
	return yaml.Unmarshal(data, v)
}

func save(path string, v any) error {
	fm, err := format(path)
	if err != nil {
		return err
	}
	var data []byte
	if fm == "json" {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = yaml.Marshal(v)
	}
	if err != nil {
		return err
	}

	if strings.HasSuffix(path, ".gz") {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		zw := gzip.NewWriter(f)
		if _, err := zw.Write(data); err != nil {
			_ = zw.Close()
			_ = f.Close()
			return err
		}
		if err := zw.Close(); err != nil {
			_ = f.Close()
			return err
		}
		return f.Close()
	}
	return os.WriteFile(path, data, 0o644)
}
