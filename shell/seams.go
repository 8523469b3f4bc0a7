package shell

type offset struct {
	dx, dy int
}

// Neighbor offsets in priority order. When several
// neighbors could serve as a stitch partner the first one
// listed wins.
var (
	axisNeighbors = []offset{
		{-1, 0}, // left
		{0, -1}, // up
		{1, 0},  // right
		{0, 1},  // down
	}
	diagonalNeighbors = []offset{
		{-1, -1}, // up-left
		{1, -1},  // up-right
		{-1, 1},  // down-left
		{1, 1},   // down-right
	}
)

// StitchSeams adds walls joining the front and back layers
// along the silhouette of the shell.
//
// An interior cell with a missing axis neighbor is joined
// to its first present axis neighbor, and likewise for
// diagonal neighbors. Each wall is emitted with both
// windings, so seams render from either side.
//
// A cell with no present neighbor in a set gets no wall
// for that set; isolated points stay open.
func StitchSeams(m *Mesh, indices *VertexIndexGrid) {
	for y := 1; y < indices.Height-1; y++ {
		for x := 1; x < indices.Width-1; x++ {
			if !indices.Present(Front, x, y) {
				continue
			}
			for _, set := range [][]offset{axisNeighbors, diagonalNeighbors} {
				if px, py, ok := stitchPartner(indices, x, y, set); ok {
					m.Counts.Seam += addWall(m, indices, x, y, px, py)
				}
			}
		}
	}
}

// stitchPartner finds the first present neighbor in set,
// provided that at least one neighbor in set is absent.
func stitchPartner(indices *VertexIndexGrid, x, y int, set []offset) (int, int, bool) {
	var onEdge bool
	for _, o := range set {
		if !indices.Present(Front, x+o.dx, y+o.dy) {
			onEdge = true
			break
		}
	}
	if !onEdge {
		return 0, 0, false
	}
	for _, o := range set {
		if indices.Present(Front, x+o.dx, y+o.dy) {
			return x + o.dx, y + o.dy, true
		}
	}
	return 0, 0, false
}

func addWall(m *Mesh, indices *VertexIndexGrid, x, y, px, py int) int {
	i0, _ := indices.At(Front, x, y)
	i1, ok1 := indices.At(Back, x, y)
	i2, _ := indices.At(Front, px, py)
	i3, ok3 := indices.At(Back, px, py)
	if !ok1 || !ok3 {
		return 0
	}
	m.addFace(i0, i1, i2)
	m.addFace(i1, i3, i2)
	m.addFace(i0, i2, i1)
	m.addFace(i1, i2, i3)
	return 4
}
