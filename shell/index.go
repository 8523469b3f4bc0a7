package shell

// Absent marks a grid cell without a vertex.
const Absent = -1

// A Layer selects one side of the shell.
type Layer int

const (
	Front Layer = iota
	Back
)

// A VertexIndexGrid maps grid coordinates to the vertex
// indices of the front and back layers.
type VertexIndexGrid struct {
	Width  int
	Height int
	Front  []int
	Back   []int
}

// NewVertexIndexGrid creates a grid with every cell absent.
func NewVertexIndexGrid(width, height int) *VertexIndexGrid {
	v := &VertexIndexGrid{
		Width:  width,
		Height: height,
		Front:  make([]int, width*height),
		Back:   make([]int, width*height),
	}
	for i := range v.Front {
		v.Front[i] = Absent
		v.Back[i] = Absent
	}
	return v
}

// At looks up the vertex index of a cell.
//
// The second return value is false if the cell has no
// vertex or lies outside the grid.
func (v *VertexIndexGrid) At(layer Layer, x, y int) (int, bool) {
	if x < 0 || y < 0 || x >= v.Width || y >= v.Height {
		return Absent, false
	}
	idx := v.layer(layer)[x+y*v.Width]
	return idx, idx != Absent
}

// Present is shorthand for checking At's second result.
func (v *VertexIndexGrid) Present(layer Layer, x, y int) bool {
	_, ok := v.At(layer, x, y)
	return ok
}

func (v *VertexIndexGrid) set(layer Layer, x, y, idx int) {
	v.layer(layer)[x+y*v.Width] = idx
}

func (v *VertexIndexGrid) layer(layer Layer) []int {
	if layer == Back {
		return v.Back
	}
	return v.Front
}
