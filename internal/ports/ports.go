package ports

import (
	"context"

	"github.com/twistedmove/lhotse/internal/domain/cut"
	"github.com/twistedmove/lhotse/internal/domain/feature"
	"github.com/twistedmove/lhotse/internal/domain/supervision"
)

// ManifestStore is the serialization collaborator: it persists and restores
// manifests in a structured textual format. The cut algebra itself never does
// I/O; everything file-shaped goes through this port.
type ManifestStore interface {
	LoadSupervisionSet(ctx context.Context, path string) (supervision.Set, error)
	LoadFeatureSet(ctx context.Context, path string) (feature.Set, error)
	LoadCutSet(ctx context.Context, path string) (cut.Set, error)
	SaveCutSet(ctx context.Context, cs cut.Set, path string) error
}
