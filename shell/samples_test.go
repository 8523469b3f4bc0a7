package shell

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleGridAccess(t *testing.T) {
	g := NewSampleGrid(3, 2)
	g.Set(2, 1, 9)
	g.Set(3, 1, 8)
	g.Set(-1, 0, 8)

	assert.Equal(t, uint8(9), g.Get(2, 1))
	assert.Equal(t, uint8(9), g.Samples[5])
	assert.Zero(t, g.Get(3, 1))
	assert.Zero(t, g.Get(0, -1))
	assert.Equal(t, 1, g.NumNonZero())

	c := g.Clone()
	c.Set(0, 0, 1)
	assert.Zero(t, g.Get(0, 0))
}

func TestSampleGridDownsample(t *testing.T) {
	g := NewSampleGrid(9, 6)
	for i := range g.Samples {
		g.Samples[i] = uint8(i)
	}
	d := g.Downsample(4)
	assert.Equal(t, 2, d.Width)
	assert.Equal(t, 1, d.Height)
	assert.Equal(t, []uint8{0, 4}, d.Samples)

	d = g.Downsample(2)
	assert.Equal(t, 4, d.Width)
	assert.Equal(t, 3, d.Height)
	assert.Equal(t, uint8(2*9+2), d.Get(1, 1))

	assert.Equal(t, g.Samples, g.Downsample(1).Samples)
}

func TestReadSamples(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 3, 2))
	img.SetGray(1, 0, color.Gray{Y: 77})
	img.SetGray(2, 1, color.Gray{Y: 255})

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	g, err := ReadSamples(&buf)
	require.NoError(t, err)
	assert.Equal(t, 3, g.Width)
	assert.Equal(t, 2, g.Height)
	assert.Equal(t, []uint8{0, 77, 0, 0, 0, 255}, g.Samples)

	_, err = ReadSamples(strings.NewReader("not an image"))
	assert.Error(t, err)
}

func TestSamplesFromImageOffsetBounds(t *testing.T) {
	img := image.NewRGBA(image.Rect(10, 20, 12, 21))
	img.Set(11, 20, color.RGBA{R: 255, G: 255, B: 255, A: 255})

	g := SamplesFromImage(img)
	assert.Equal(t, []uint8{0, 255}, g.Samples)
}

func TestReadSamplesJSON(t *testing.T) {
	g, err := ReadSamplesJSON(strings.NewReader("[[0, 1, 2], [3, 4, 255]]"))
	require.NoError(t, err)
	assert.Equal(t, 3, g.Width)
	assert.Equal(t, 2, g.Height)
	assert.Equal(t, uint8(255), g.Get(2, 1))

	_, err = ReadSamplesJSON(strings.NewReader("[[0, 1], [3]]"))
	assert.ErrorContains(t, err, "invalid dimensions")

	_, err = ReadSamplesJSON(strings.NewReader("[[0, 256]]"))
	assert.ErrorContains(t, err, "out of range")

	_, err = ReadSamplesJSON(strings.NewReader("{"))
	assert.Error(t, err)

	g, err = ReadSamplesJSON(strings.NewReader("[]"))
	require.NoError(t, err)
	assert.Zero(t, g.Width)
}
