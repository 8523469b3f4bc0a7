package shell

import (
	"github.com/unixpickle/model3d/model2d"
	"github.com/unixpickle/model3d/model3d"
)

// Scale stretches grid coordinates and normalized depth
// values into model space.
type Scale struct {
	X float64
	Y float64
	Z float64
}

// BuildLayers creates the front and back surfaces of the
// shell from a filtered grid.
//
// Every nonzero sample gets a front vertex at +h and a
// back vertex at -h, where h is the sample mapped onto
// [0, 127.5*scale.Z] by the filtered range. Each 2x2
// block whose four corners exist in a layer is split into
// two triangles in that layer.
func BuildLayers(g *SampleGrid, r *FilterResult, scale Scale) (*Mesh, *VertexIndexGrid) {
	mesh := &Mesh{}
	indices := NewVertexIndexGrid(g.Width, g.Height)

	addLayer(mesh, indices, g, r, scale, Front)
	mesh.Counts.Front = addLayerFaces(mesh, indices, Front)
	addLayer(mesh, indices, g, r, scale, Back)
	mesh.Counts.Back = addLayerFaces(mesh, indices, Back)

	return mesh, indices
}

func addLayer(m *Mesh, indices *VertexIndexGrid, g *SampleGrid, r *FilterResult,
	scale Scale, layer Layer) {
	ratioTo255 := 255.0 / (float64(r.Max) - float64(r.Min))
	halfWidth := float64(g.Width) * 0.5
	halfHeight := float64(g.Height) * 0.5
	sign := 1.0
	if layer == Back {
		sign = -1
	}
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			s := g.Samples[x+y*g.Width]
			if s == 0 {
				continue
			}
			h := 0.5 * (float64(s) - float64(r.Min)) * ratioTo255 * scale.Z
			p := model3d.Coord3D{
				X: scale.X * (float64(x) - halfWidth),
				Y: scale.Y * (float64(y) - halfHeight),
				Z: sign * h,
			}
			uv := model2d.Coord{
				X: float64(x) / float64(g.Width),
				Y: float64(y) / float64(g.Height),
			}
			indices.set(layer, x, y, m.addVertex(p, uv))
		}
	}
}

func addLayerFaces(m *Mesh, indices *VertexIndexGrid, layer Layer) int {
	var count int
	for y := 0; y < indices.Height-1; y++ {
		for x := 0; x < indices.Width-1; x++ {
			i1, ok1 := indices.At(layer, x, y)
			i2, ok2 := indices.At(layer, x+1, y)
			i3, ok3 := indices.At(layer, x+1, y+1)
			i4, ok4 := indices.At(layer, x, y+1)
			if !(ok1 && ok2 && ok3 && ok4) {
				continue
			}
			if layer == Front {
				m.addFace(i1, i2, i4)
				m.addFace(i2, i3, i4)
			} else {
				m.addFace(i1, i4, i2)
				m.addFace(i2, i4, i3)
			}
			count += 2
		}
	}
	return count
}
