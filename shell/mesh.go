package shell

import (
	"io"

	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model2d"
	"github.com/unixpickle/model3d/model3d"
)

type Vertex struct {
	Position model3d.Coord3D
	UV       model2d.Coord
	Normal   model3d.Coord3D
}

// A Face is a triangle of vertex indices.
//
// Counter-clockwise winding, seen from outside, faces out.
type Face struct {
	Indices [3]int
	UVs     [3]model2d.Coord
	Normal  model3d.Coord3D
}

// FaceCounts breaks down the faces of a Mesh by origin.
// Meshes loaded from models have no counts.
type FaceCounts struct {
	Front int
	Back  int
	Seam  int
}

// A Mesh is an indexed triangle mesh, either built from a
// SampleGrid or indexed from a loaded model.
type Mesh struct {
	Vertices []Vertex
	Faces    []Face
	Counts   FaceCounts
}

// MeshFromModel indexes the triangles of a model.
//
// Corners at equal coordinates share a vertex. The mesh is
// not transformed, and UVs are left at zero.
func MeshFromModel(m *model3d.Mesh) *Mesh {
	res := &Mesh{}
	ids := map[model3d.Coord3D]int{}
	for _, t := range m.TriangleSlice() {
		var idx [3]int
		for i, c := range t {
			id, ok := ids[c]
			if !ok {
				id = res.addVertex(c, model2d.Coord{})
				ids[c] = id
			}
			idx[i] = id
		}
		res.addFace(idx[0], idx[1], idx[2])
	}
	res.computeNormals()
	return res
}

func (m *Mesh) addVertex(p model3d.Coord3D, uv model2d.Coord) int {
	m.Vertices = append(m.Vertices, Vertex{Position: p, UV: uv})
	return len(m.Vertices) - 1
}

func (m *Mesh) addFace(i1, i2, i3 int) {
	m.Faces = append(m.Faces, Face{
		Indices: [3]int{i1, i2, i3},
		UVs:     [3]model2d.Coord{m.Vertices[i1].UV, m.Vertices[i2].UV, m.Vertices[i3].UV},
	})
}

// finalize turns the mesh half a revolution around the z
// axis, so that image rows run top to bottom, and then
// computes normals.
func (m *Mesh) finalize() {
	rotation := &model3d.Matrix3Transform{
		Matrix: &model3d.Matrix3{
			-1, 0, 0,
			0, -1, 0,
			0, 0, 1,
		},
	}
	for i := range m.Vertices {
		m.Vertices[i].Position = rotation.Apply(m.Vertices[i].Position)
	}
	m.computeNormals()
}

// computeNormals sets unit face normals and area-weighted
// vertex normals. Degenerate faces, and vertices whose
// faces cancel out, get a zero normal.
func (m *Mesh) computeNormals() {
	sums := make([]model3d.Coord3D, len(m.Vertices))
	for i := range m.Faces {
		f := &m.Faces[i]
		p1 := m.Vertices[f.Indices[0]].Position
		p2 := m.Vertices[f.Indices[1]].Position
		p3 := m.Vertices[f.Indices[2]].Position
		cross := p2.Sub(p1).Cross(p3.Sub(p1))
		f.Normal = safeNormalize(cross)
		for _, idx := range f.Indices {
			sums[idx] = sums[idx].Add(cross)
		}
	}
	for i, s := range sums {
		m.Vertices[i].Normal = safeNormalize(s)
	}
}

func safeNormalize(c model3d.Coord3D) model3d.Coord3D {
	norm := c.Norm()
	if norm == 0 {
		return model3d.Coord3D{}
	}
	return c.Scale(1 / norm)
}

// Min gets the minimum corner of the bounding box.
func (m *Mesh) Min() model3d.Coord3D {
	if len(m.Vertices) == 0 {
		return model3d.Coord3D{}
	}
	res := m.Vertices[0].Position
	for _, v := range m.Vertices[1:] {
		res = res.Min(v.Position)
	}
	return res
}

// Max gets the maximum corner of the bounding box.
func (m *Mesh) Max() model3d.Coord3D {
	if len(m.Vertices) == 0 {
		return model3d.Coord3D{}
	}
	res := m.Vertices[0].Position
	for _, v := range m.Vertices[1:] {
		res = res.Max(v.Position)
	}
	return res
}

// Triangles creates a model3d triangle for every face.
func (m *Mesh) Triangles() []*model3d.Triangle {
	res := make([]*model3d.Triangle, len(m.Faces))
	for i, f := range m.Faces {
		res[i] = &model3d.Triangle{
			m.Vertices[f.Indices[0]].Position,
			m.Vertices[f.Indices[1]].Position,
			m.Vertices[f.Indices[2]].Position,
		}
	}
	return res
}

// Model3D converts the mesh into a model3d.Mesh.
func (m *Mesh) Model3D() *model3d.Mesh {
	return model3d.NewMeshTriangles(m.Triangles())
}

// WriteSTL encodes the mesh as a binary STL file.
func (m *Mesh) WriteSTL(w io.Writer) error {
	if err := model3d.WriteSTL(w, m.Triangles()); err != nil {
		return errors.Wrap(err, "write STL")
	}
	return nil
}
