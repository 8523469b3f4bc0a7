package shell

// A SampleGrid is a row-major grid of depth samples.
//
// A sample of 0 means there is no geometry at that point.
type SampleGrid struct {
	Width   int
	Height  int
	Samples []uint8
}

// NewSampleGrid creates an empty grid.
func NewSampleGrid(width, height int) *SampleGrid {
	return &SampleGrid{
		Width:   width,
		Height:  height,
		Samples: make([]uint8, width*height),
	}
}

// Get gets the sample at the given coordinates.
// If a coordinate is out of bounds, 0 is returned.
func (s *SampleGrid) Get(x, y int) uint8 {
	if !s.InBounds(x, y) {
		return 0
	}
	return s.Samples[x+y*s.Width]
}

// Set sets the sample at the given coordinates.
// Out of bounds writes are ignored.
func (s *SampleGrid) Set(x, y int, value uint8) {
	if s.InBounds(x, y) {
		s.Samples[x+y*s.Width] = value
	}
}

func (s *SampleGrid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < s.Width && y < s.Height
}

// Clone creates a deep copy of the grid.
func (s *SampleGrid) Clone() *SampleGrid {
	return &SampleGrid{
		Width:   s.Width,
		Height:  s.Height,
		Samples: append([]uint8{}, s.Samples...),
	}
}

// NumNonZero counts the samples holding geometry.
func (s *SampleGrid) NumNonZero() int {
	var n int
	for _, v := range s.Samples {
		if v != 0 {
			n++
		}
	}
	return n
}

// Downsample keeps every stride-th sample along both axes,
// starting at the origin.
//
// A stride of 1 returns a copy.
func (s *SampleGrid) Downsample(stride int) *SampleGrid {
	if stride <= 1 {
		return s.Clone()
	}
	res := NewSampleGrid(s.Width/stride, s.Height/stride)
	for y := 0; y < res.Height; y++ {
		for x := 0; x < res.Width; x++ {
			res.Samples[x+y*res.Width] = s.Samples[x*stride+y*stride*s.Width]
		}
	}
	return res
}
