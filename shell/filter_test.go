package shell

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterKeepsWellSpreadSamples(t *testing.T) {
	g := &SampleGrid{Width: 2, Height: 2, Samples: []uint8{50, 100, 150, 200}}
	res, err := Filter(g, DefaultConfig().Filter())
	require.NoError(t, err)

	assert.Equal(t, []uint8{50, 100, 150, 200}, g.Samples)
	assert.Equal(t, uint8(50), res.Min)
	assert.Equal(t, uint8(200), res.Max)
	assert.Equal(t, uint8(50), res.Threshold)
	assert.Equal(t, 4, res.Valid)
}

func TestFilterHardThreshold(t *testing.T) {
	g := &SampleGrid{Width: 5, Height: 1, Samples: []uint8{0, 5, 19, 20, 90}}
	res, err := Filter(g, FilterConfig{ClipThreshold: 20})
	require.NoError(t, err)

	assert.Equal(t, []uint8{0, 0, 0, 20, 90}, g.Samples)
	assert.Equal(t, uint8(0), res.Threshold, "a zero ratio clips nothing")
	assert.Equal(t, 2, res.Valid)
}

func TestFilterRatioClip(t *testing.T) {
	g := NewSampleGrid(10, 2)
	for i := range g.Samples {
		g.Samples[i] = uint8(30 + i*10)
	}
	// 20 valid samples, rank floor(20*0.75) = 15 in
	// descending order is the fifth smallest value.
	res, err := Filter(g, FilterConfig{ClipThreshold: 20, ClipRatio: 0.25})
	require.NoError(t, err)

	assert.Equal(t, uint8(70), res.Threshold)
	assert.Equal(t, 16, res.Valid)
	assert.Equal(t, uint8(70), res.Min)
	assert.Equal(t, uint8(220), res.Max)
	assert.Equal(t, res.Valid, g.NumNonZero())
	for i := 0; i < 4; i++ {
		assert.Zero(t, g.Samples[i])
	}
}

func TestFilterRatioClipWithDuplicates(t *testing.T) {
	g := &SampleGrid{Width: 6, Height: 1, Samples: []uint8{40, 40, 40, 80, 80, 120}}
	res, err := Filter(g, FilterConfig{ClipRatio: 0.5})
	require.NoError(t, err)

	// Descending order is 120 80 80 40 40 40; rank 3 is 40,
	// so nothing falls below the threshold.
	assert.Equal(t, uint8(40), res.Threshold)
	assert.Equal(t, 6, res.Valid)
}

func TestFilterDegenerate(t *testing.T) {
	t.Run("flat", func(t *testing.T) {
		g := &SampleGrid{Width: 2, Height: 2, Samples: []uint8{100, 100, 100, 100}}
		res, err := Filter(g, DefaultConfig().Filter())
		assert.Nil(t, res)

		var degenerate *DegenerateInputError
		require.True(t, errors.As(err, &degenerate))
		assert.Equal(t, 4, degenerate.Valid)
		assert.Equal(t, uint8(100), degenerate.Min)
		assert.Equal(t, uint8(100), degenerate.Max)
	})

	t.Run("empty", func(t *testing.T) {
		g := &SampleGrid{Width: 3, Height: 1, Samples: []uint8{0, 3, 19}}
		_, err := Filter(g, DefaultConfig().Filter())

		var degenerate *DegenerateInputError
		require.True(t, errors.As(err, &degenerate))
		assert.Zero(t, degenerate.Valid)
		assert.Contains(t, err.Error(), "no samples")
	})
}

func TestFilterRejectsBadRatio(t *testing.T) {
	for _, ratio := range []float64{-0.1, 1, 1.5} {
		g := &SampleGrid{Width: 2, Height: 1, Samples: []uint8{50, 60}}
		_, err := Filter(g, FilterConfig{ClipRatio: ratio})
		require.Error(t, err)

		var degenerate *DegenerateInputError
		assert.False(t, errors.As(err, &degenerate))
		assert.Equal(t, []uint8{50, 60}, g.Samples, "grid must be untouched")
	}
}
