package shell

import (
	"encoding/json"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/pkg/errors"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// SamplesFromImage converts an image into a SampleGrid
// using the luminance of each pixel.
func SamplesFromImage(img image.Image) *SampleGrid {
	bounds := img.Bounds()
	res := NewSampleGrid(bounds.Dx(), bounds.Dy())
	for y := 0; y < res.Height; y++ {
		for x := 0; x < res.Width; x++ {
			c := img.At(bounds.Min.X+x, bounds.Min.Y+y)
			res.Samples[x+y*res.Width] = color.GrayModel.Convert(c).(color.Gray).Y
		}
	}
	return res
}

// ReadSamples decodes a depth image.
//
// PNG, JPEG, GIF, BMP, TIFF and WebP are supported.
func ReadSamples(r io.Reader) (*SampleGrid, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, errors.Wrap(err, "read samples")
	}
	return SamplesFromImage(img), nil
}

// ReadSamplesJSON reads a SampleGrid encoded as a JSON
// array of rows.
func ReadSamplesJSON(r io.Reader) (*SampleGrid, error) {
	var rows [][]int
	dec := json.NewDecoder(r)
	if err := dec.Decode(&rows); err != nil {
		return nil, errors.Wrap(err, "read samples")
	}
	if len(rows) == 0 {
		return NewSampleGrid(0, 0), nil
	}
	width := len(rows[0])
	res := &SampleGrid{
		Width:   width,
		Height:  len(rows),
		Samples: make([]uint8, 0, width*len(rows)),
	}
	for _, row := range rows {
		if len(row) != width {
			return nil, errors.New("read samples: invalid dimensions")
		}
		for _, v := range row {
			if v < 0 || v > 255 {
				return nil, errors.Errorf("read samples: value out of range: %d", v)
			}
			res.Samples = append(res.Samples, uint8(v))
		}
	}
	return res, nil
}
