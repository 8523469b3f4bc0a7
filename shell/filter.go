package shell

import (
	"math"

	"github.com/pkg/errors"
)

// FilterConfig holds the clipping settings for Filter.
type FilterConfig struct {
	ClipThreshold uint8
	ClipRatio     float64
}

// Validate checks that the clip ratio is in [0, 1).
func (f FilterConfig) Validate() error {
	if math.IsNaN(f.ClipRatio) || f.ClipRatio < 0 || f.ClipRatio >= 1 {
		return errors.Errorf("clip ratio %v out of range [0, 1)", f.ClipRatio)
	}
	return nil
}

// FilterResult describes the samples left by Filter.
type FilterResult struct {
	// Threshold is the value below which the ratio clip
	// removed samples. It is 0 if nothing was removed.
	Threshold uint8

	// Valid is the number of nonzero samples remaining.
	Valid int

	Min uint8
	Max uint8
}

// Filter clips noise out of a grid in place.
//
// Samples under the hard threshold are zeroed first. Then
// the lowest ClipRatio fraction of the remaining samples
// is zeroed, and the range of the survivors is computed.
//
// If nothing survives, or the survivors are all equal, a
// *DegenerateInputError is returned.
func Filter(g *SampleGrid, cfg FilterConfig) (*FilterResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "filter samples")
	}

	var hist [256]int
	var countValid int
	for i, v := range g.Samples {
		if v < cfg.ClipThreshold {
			g.Samples[i] = 0
			continue
		}
		if v != 0 {
			hist[v]++
			countValid++
		}
	}

	res := &FilterResult{}
	rank := int(math.Floor(float64(countValid) * (1 - cfg.ClipRatio)))
	if rank < countValid {
		res.Threshold = valueAtRank(&hist, rank)
	}

	res.Min = math.MaxUint8
	for i, v := range g.Samples {
		if v < res.Threshold {
			g.Samples[i] = 0
			continue
		}
		if v == 0 {
			continue
		}
		res.Valid++
		res.Min = min(res.Min, v)
		res.Max = max(res.Max, v)
	}

	if res.Valid == 0 || res.Max <= res.Min {
		return nil, &DegenerateInputError{Valid: res.Valid, Min: res.Min, Max: res.Max}
	}
	return res, nil
}

// valueAtRank finds the value at the given index when the
// histogrammed values are sorted in descending order.
func valueAtRank(hist *[256]int, rank int) uint8 {
	var seen int
	for v := 255; v > 0; v-- {
		seen += hist[v]
		if seen > rank {
			return uint8(v)
		}
	}
	return 0
}
