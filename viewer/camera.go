package viewer

import (
	"math"

	"github.com/unixpickle/model3d/model3d"
)

const (
	DefaultFOV = 45.0

	// Camera placement used for meshes built from samples.
	MeshCameraZ    = 2000.0
	MeshCameraNear = 0.1
	MeshCameraFar  = 8000.0
)

// A Camera is a perspective camera looking at a target.
type Camera struct {
	Position model3d.Coord3D
	Target   model3d.Coord3D

	// FOV is the vertical field of view, in degrees.
	FOV float64

	Near float64
	Far  float64
}

// NewMeshCamera creates the camera used to frame a freshly
// built shell.
func NewMeshCamera() Camera {
	return Camera{
		Position: model3d.Coord3D{Z: MeshCameraZ},
		FOV:      DefaultFOV,
		Near:     MeshCameraNear,
		Far:      MeshCameraFar,
	}
}

// FrameModel creates a camera on the +z side of a model
// with the given bounds, far enough back that its x-y
// extent fits the frame.
func FrameModel(min, max model3d.Coord3D) Camera {
	xyAbsMax := math.Max(
		math.Max(math.Abs(max.X), math.Abs(min.X)),
		math.Max(math.Abs(max.Y), math.Abs(min.Y)),
	)
	zAbsMax := math.Max(math.Abs(max.Z), math.Abs(min.Z))
	dist := xyAbsMax / math.Tan(22.5*math.Pi/180)

	z := zAbsMax + dist*0.7
	near := z*0.8 - math.Max(zAbsMax, xyAbsMax)
	if near <= 0 {
		near = z * 0.01
	}
	far := math.Max(max.Z-min.Z+4.5*dist, z+zAbsMax)
	return Camera{
		Position: model3d.Coord3D{Y: 0.3, Z: z},
		FOV:      DefaultFOV,
		Near:     near,
		Far:      far,
	}
}

// A projector maps world coordinates onto a raster.
type projector struct {
	origin  model3d.Coord3D
	right   model3d.Coord3D
	up      model3d.Coord3D
	forward model3d.Coord3D

	focal   float64
	centerX float64
	centerY float64
	near    float64
	far     float64
}

func newProjector(c Camera, width, height int) *projector {
	forward := c.Target.Sub(c.Position).Normalize()
	worldUp := model3d.Coord3D{Y: 1}
	right := forward.Cross(worldUp)
	if right.Norm() < 1e-8 {
		// Looking straight up or down.
		worldUp = model3d.Coord3D{Z: -1}
		if forward.Y > 0 {
			worldUp = model3d.Coord3D{Z: 1}
		}
		right = forward.Cross(worldUp)
	}
	right = right.Normalize()
	return &projector{
		origin:  c.Position,
		right:   right,
		up:      right.Cross(forward),
		forward: forward,
		focal:   float64(height) / 2 / math.Tan(c.FOV*math.Pi/360),
		centerX: float64(width) / 2,
		centerY: float64(height) / 2,
		near:    c.Near,
		far:     c.Far,
	}
}

// Project returns raster coordinates and view depth for a
// point, or false if the point is outside the depth range.
func (p *projector) Project(c model3d.Coord3D) (x, y, depth float64, ok bool) {
	d := c.Sub(p.origin)
	depth = d.Dot(p.forward)
	if depth < p.near || depth > p.far {
		return 0, 0, depth, false
	}
	scale := p.focal / depth
	x = p.centerX + d.Dot(p.right)*scale
	y = p.centerY - d.Dot(p.up)*scale
	return x, y, depth, true
}

// Facing checks if a surface with the given normal at the
// given point faces the camera.
func (p *projector) Facing(point, normal model3d.Coord3D) bool {
	return normal.Dot(p.origin.Sub(point)) > 0
}
