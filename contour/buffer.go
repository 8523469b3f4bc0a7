// Package contour turns rendered frames into black line
// drawings of their silhouettes.
package contour

import (
	"image"

	"golang.org/x/image/draw"
)

// A PixelBuffer is a row-major RGBA raster with four bytes
// per pixel. Colors are not premultiplied by alpha.
type PixelBuffer struct {
	Width  int
	Height int
	Pix    []uint8
}

// NewPixelBuffer creates a transparent black buffer.
func NewPixelBuffer(width, height int) *PixelBuffer {
	return &PixelBuffer{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height*4),
	}
}

// FromImage copies an image into a new buffer.
//
// Straight-alpha sources keep the color of transparent
// pixels, so a transparent white background still reads
// as white.
func FromImage(img image.Image) *PixelBuffer {
	bounds := img.Bounds()
	p := NewPixelBuffer(bounds.Dx(), bounds.Dy())
	switch img := img.(type) {
	case *image.NRGBA:
		for y := 0; y < p.Height; y++ {
			start := img.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			copy(p.Pix[p.offset(0, y):], img.Pix[start:start+p.Width*4])
		}
	case *image.NRGBA64:
		for y := 0; y < p.Height; y++ {
			for x := 0; x < p.Width; x++ {
				c := img.NRGBA64At(bounds.Min.X+x, bounds.Min.Y+y)
				i := p.offset(x, y)
				p.Pix[i] = uint8(c.R >> 8)
				p.Pix[i+1] = uint8(c.G >> 8)
				p.Pix[i+2] = uint8(c.B >> 8)
				p.Pix[i+3] = uint8(c.A >> 8)
			}
		}
	default:
		nrgba := image.NewNRGBA(image.Rect(0, 0, p.Width, p.Height))
		draw.Draw(nrgba, nrgba.Bounds(), img, bounds.Min, draw.Src)
		p.Pix = nrgba.Pix
	}
	return p
}

// Image wraps a copy of the buffer as an *image.NRGBA.
func (p *PixelBuffer) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.Width, p.Height))
	copy(img.Pix, p.Pix)
	return img
}

// Clone creates a deep copy of the buffer.
func (p *PixelBuffer) Clone() *PixelBuffer {
	return &PixelBuffer{
		Width:  p.Width,
		Height: p.Height,
		Pix:    append([]uint8{}, p.Pix...),
	}
}

// Fill sets every pixel to an opaque gray level.
func (p *PixelBuffer) Fill(level uint8) {
	for i := 0; i < len(p.Pix); i += 4 {
		p.setRGB(i, level)
		p.Pix[i+3] = 0xff
	}
}

// SetGray sets a pixel to an opaque gray level. Out of
// bounds writes are ignored.
func (p *PixelBuffer) SetGray(x, y int, level uint8) {
	if x < 0 || y < 0 || x >= p.Width || y >= p.Height {
		return
	}
	i := p.offset(x, y)
	p.setRGB(i, level)
	p.Pix[i+3] = 0xff
}

// RGB returns the color channels of a pixel.
func (p *PixelBuffer) RGB(x, y int) (r, g, b uint8) {
	i := p.offset(x, y)
	return p.Pix[i], p.Pix[i+1], p.Pix[i+2]
}

func (p *PixelBuffer) offset(x, y int) int {
	return (y*p.Width + x) * 4
}

func (p *PixelBuffer) isWhite(i int) bool {
	return p.Pix[i] == 0xff && p.Pix[i+1] == 0xff && p.Pix[i+2] == 0xff
}

func (p *PixelBuffer) isBlack(i int) bool {
	return p.Pix[i] == 0 && p.Pix[i+1] == 0 && p.Pix[i+2] == 0
}

func (p *PixelBuffer) setRGB(i int, level uint8) {
	p.Pix[i] = level
	p.Pix[i+1] = level
	p.Pix[i+2] = level
}
