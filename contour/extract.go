package contour

// Extract draws a one pixel black contour around every
// non-white region of src and erases everything else to
// white.
//
// Four sweeps run over a single working buffer, in order:
// rows left to right, rows right to left, columns top to
// bottom, and columns bottom to top. In each sweep a white
// pixel blackens the next pixel if that pixel is not white.
// Later sweeps see the writes of earlier ones. A final pass
// turns every pixel that is not pure black into pure white.
//
// Alpha values are preserved. The result is a new buffer;
// src is not modified.
func Extract(src *PixelBuffer) *PixelBuffer {
	p := src.Clone()
	w, h := p.Width, p.Height

	for y := 0; y < h; y++ {
		for x := 0; x < w-1; x++ {
			p.markEdge(p.offset(x, y), p.offset(x+1, y))
		}
	}
	for y := 0; y < h; y++ {
		for x := w - 1; x > 0; x-- {
			p.markEdge(p.offset(x, y), p.offset(x-1, y))
		}
	}
	for x := 0; x < w; x++ {
		for y := 0; y < h-1; y++ {
			p.markEdge(p.offset(x, y), p.offset(x, y+1))
		}
	}
	for x := 0; x < w; x++ {
		for y := h - 1; y > 0; y-- {
			p.markEdge(p.offset(x, y), p.offset(x, y-1))
		}
	}

	for i := 0; i < len(p.Pix); i += 4 {
		if !p.isBlack(i) {
			p.setRGB(i, 0xff)
		}
	}
	return p
}

func (p *PixelBuffer) markEdge(cur, next int) {
	if p.isWhite(cur) && !p.isWhite(next) {
		p.setRGB(next, 0)
	}
}
