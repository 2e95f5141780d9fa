package cut

import (
	"github.com/twistedmove/lhotse/internal/domain/feature"
	"github.com/twistedmove/lhotse/internal/domain/supervision"
)

// testFeatures returns a feature record covering [start, start+duration) of
// one recording channel, with one unit-energy frame per second.
func testFeatures(recordingID string, channel int, start, duration float64) *feature.Record {
	energies := make([]float64, int(duration))
	for i := range energies {
		energies[i] = 1
	}
	return &feature.Record{
		RecordingID:   recordingID,
		Channel:       channel,
		Start:         start,
		Duration:      duration,
		Type:          "fbank",
		FrameShift:    1,
		FrameEnergies: energies,
	}
}

// testCut returns an atomic cut over the given window, backed by its own
// feature record.
func testCut(id string, start, duration float64, sups ...supervision.Segment) Cut {
	return Cut{
		CutID:    id,
		Start:    start,
		Duration: duration,
		Channel:  0,
		Features: testFeatures("rec-"+id, 0, start, duration),
		Sups:     sups,
	}
}

// constEnergy returns an EnergyFunc serving fixed per-cut energies.
func constEnergy(byID map[string]float64) EnergyFunc {
	return func(c Cut) (float64, error) {
		return byID[c.CutID], nil
	}
}
