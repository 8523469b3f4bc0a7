package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// framedGrid creates a grid whose outer ring is empty and
// whose inside is filled with distinct samples.
func framedGrid(width, height int) *SampleGrid {
	g := NewSampleGrid(width, height)
	for y := 1; y < height-1; y++ {
		for x := 1; x < width-1; x++ {
			g.Set(x, y, uint8(100+x+10*y))
		}
	}
	return g
}

func buildUnstitched(t *testing.T, g *SampleGrid) (*Mesh, *VertexIndexGrid) {
	res, err := Filter(g, FilterConfig{})
	require.NoError(t, err)
	return BuildLayers(g, res, Scale{X: 1, Y: 1, Z: 1})
}

func TestStitchSeamsFramedSquare(t *testing.T) {
	mesh, indices := buildUnstitched(t, framedGrid(5, 5))
	require.Equal(t, 8, mesh.Counts.Front)
	require.Equal(t, 8, mesh.Counts.Back)

	StitchSeams(mesh, indices)

	// Every cell of the 3x3 block but the center touches the
	// empty frame both along an axis and along a diagonal.
	assert.Equal(t, 8*2*4, mesh.Counts.Seam)
	assert.Len(t, mesh.Faces, 16+mesh.Counts.Seam)

	seams := mesh.Faces[16:]

	// Cell (1,1) has empty left and up neighbors, so it is
	// joined to the right along the axis and down-right
	// along the diagonal.
	f0, b0 := 0, 9
	f1, b1 := 1, 10
	f4, b4 := 4, 13
	expected := [][3]int{
		{f0, b0, f1}, {b0, b1, f1}, {f0, f1, b0}, {b0, f1, b1},
		{f0, b0, f4}, {b0, b4, f4}, {f0, f4, b0}, {b0, f4, b4},
	}
	for i, e := range expected {
		assert.Equal(t, e, seams[i].Indices, "face %d", i)
	}
	assert.Equal(t, mesh.Vertices[b0].UV, seams[0].UVs[1])
}

func TestStitchSeamsAxisPriority(t *testing.T) {
	// Cell (2,1) misses its up neighbor; left wins over
	// right and down.
	mesh, indices := buildUnstitched(t, framedGrid(5, 5))
	StitchSeams(mesh, indices)

	seams := mesh.Faces[16:]
	front21, _ := indices.At(Front, 2, 1)
	front11, _ := indices.At(Front, 1, 1)
	axisWall := seams[8]
	assert.Equal(t, front21, axisWall.Indices[0])
	assert.Equal(t, front11, axisWall.Indices[2])

	// Its diagonal partner is down-left since both upper
	// diagonals are empty.
	front12, _ := indices.At(Front, 1, 2)
	diagonalWall := seams[12]
	assert.Equal(t, front21, diagonalWall.Indices[0])
	assert.Equal(t, front12, diagonalWall.Indices[2])
}

func TestStitchSeamsFullInterior(t *testing.T) {
	mesh, indices := buildUnstitched(t, rampGrid(6, 6))
	StitchSeams(mesh, indices)
	assert.Zero(t, mesh.Counts.Seam)
}

func TestStitchSeamsIsolatedPoint(t *testing.T) {
	g := NewSampleGrid(5, 5)
	g.Set(2, 2, 200)
	g.Set(0, 0, 100)
	mesh, indices := buildUnstitched(t, g)
	StitchSeams(mesh, indices)

	assert.Len(t, mesh.Vertices, 4)
	assert.Empty(t, mesh.Faces)
}

func TestStitchSeamsSkipsBorder(t *testing.T) {
	// A 3x1 strip has no interior coordinates at all.
	g := &SampleGrid{Width: 3, Height: 1, Samples: []uint8{50, 0, 90}}
	mesh, indices := buildUnstitched(t, g)
	StitchSeams(mesh, indices)
	assert.Zero(t, mesh.Counts.Seam)
}

func TestVertexIndexGridBounds(t *testing.T) {
	indices := NewVertexIndexGrid(2, 2)
	indices.set(Front, 1, 1, 7)

	idx, ok := indices.At(Front, 1, 1)
	assert.True(t, ok)
	assert.Equal(t, 7, idx)
	assert.False(t, indices.Present(Back, 1, 1))
	for _, c := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		idx, ok := indices.At(Front, c[0], c[1])
		assert.False(t, ok)
		assert.Equal(t, Absent, idx)
	}
}
