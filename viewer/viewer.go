// Package viewer holds a shell built from depth samples,
// or a loaded model, in a scene and renders snapshots of it.
package viewer

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/unixpickle/depthshell/shell"
	"github.com/unixpickle/model3d/model3d"
)

// Default light colors.
var (
	DefaultAmbientLight     color.Color = color.Gray{Y: 0x60}
	DefaultDirectionalLight color.Color = color.Gray{Y: 0x80}
)

// A Viewer owns at most one mesh, the camera used to look
// at it, and the lights that shade it.
//
// A Viewer is not safe for concurrent use.
type Viewer struct {
	width  int
	height int

	camera Camera
	mesh   *shell.Mesh
	name   string

	ambient     color.Color
	directional color.Color
}

// New creates an empty viewer rendering frames of the
// given size.
func New(width, height int) *Viewer {
	return &Viewer{
		width:       width,
		height:      height,
		camera:      NewMeshCamera(),
		ambient:     DefaultAmbientLight,
		directional: DefaultDirectionalLight,
	}
}

func (v *Viewer) Width() int {
	return v.width
}

func (v *Viewer) Height() int {
	return v.height
}

// Name returns the name of the loaded object.
func (v *Viewer) Name() string {
	return v.name
}

// Mesh returns the mesh in the scene, or nil.
func (v *Viewer) Mesh() *shell.Mesh {
	return v.mesh
}

// SetMesh puts m into the scene, detaching and returning
// the mesh it replaces (if any).
func (v *Viewer) SetMesh(m *shell.Mesh) *shell.Mesh {
	prev := v.mesh
	v.mesh = m
	if prev != nil {
		shell.Logger().Info("detached mesh", "object", v.name,
			"vertices", len(prev.Vertices), "faces", len(prev.Faces))
	}
	return prev
}

// Clear removes the mesh from the scene.
func (v *Viewer) Clear() {
	v.SetMesh(nil)
}

// LoadSamples builds a shell from a sample grid and swaps
// it into the scene, pointing the camera at it.
//
// If the build fails, the scene and camera are left as
// they were.
func (v *Viewer) LoadSamples(name string, g *shell.SampleGrid, cfg shell.Config) error {
	mesh, err := shell.Build(g, cfg)
	if err != nil {
		return errors.Wrap(err, "load samples")
	}
	v.load(name, mesh, NewMeshCamera())
	return nil
}

// LoadImage is like LoadSamples, but g holds every pixel
// of a depth image and is sampled with cfg.SampleStride
// after filtering.
func (v *Viewer) LoadImage(name string, g *shell.SampleGrid, cfg shell.Config) error {
	mesh, err := shell.BuildImage(g, cfg)
	if err != nil {
		return errors.Wrap(err, "load image")
	}
	v.load(name, mesh, NewMeshCamera())
	return nil
}

// LoadModel swaps an existing model into the scene and
// frames the camera around its bounding box.
//
// Models without triangles, or whose triangles collapse
// to a point, are rejected and leave the scene as it was.
func (v *Viewer) LoadModel(name string, m *model3d.Mesh) error {
	mesh := shell.MeshFromModel(m)
	if len(mesh.Faces) == 0 {
		return errors.New("load model: no triangles")
	}
	min, max := mesh.Min(), mesh.Max()
	if max.Sub(min).Norm() == 0 {
		return errors.New("load model: zero extent")
	}
	v.load(name, mesh, FrameModel(min, max))
	return nil
}

func (v *Viewer) load(name string, mesh *shell.Mesh, camera Camera) {
	v.SetMesh(mesh)
	v.name = name
	v.camera = camera
	shell.Logger().Info("loaded mesh", "object", name,
		"vertices", len(mesh.Vertices), "faces", len(mesh.Faces))
}

// ReadModel reads a triangle mesh from an OFF or STL file,
// chosen by extension.
func ReadModel(path string) (*model3d.Mesh, error) {
	r, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "read model")
	}
	defer r.Close()

	var triangles []*model3d.Triangle
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".off":
		triangles, err = model3d.ReadOFF(r)
	case ".stl":
		triangles, err = model3d.ReadSTL(r)
	default:
		return nil, errors.Errorf("read model: unsupported extension %q", ext)
	}
	if err != nil {
		return nil, errors.Wrap(err, "read model")
	}
	return model3d.NewMeshTriangles(triangles), nil
}

// AmbientLightColor returns the color of the light that
// reaches every surface.
func (v *Viewer) AmbientLightColor() color.Color {
	return v.ambient
}

// SetAmbientLightColor changes the ambient light.
func (v *Viewer) SetAmbientLightColor(c color.Color) {
	v.ambient = c
}

// DirectionalLightColor returns the color of the light
// shining from the upper left.
func (v *Viewer) DirectionalLightColor() color.Color {
	return v.directional
}

// SetDirectionalLightColor changes the directional light.
func (v *Viewer) SetDirectionalLightColor(c color.Color) {
	v.directional = c
}

// Camera returns the current camera.
func (v *Viewer) Camera() Camera {
	return v.camera
}

// SetCamera replaces the camera.
func (v *Viewer) SetCamera(c Camera) {
	v.camera = c
}

// CameraZ returns the z coordinate of the camera.
func (v *Viewer) CameraZ() float64 {
	return v.camera.Position.Z
}

// SetCameraZ moves the camera along the z axis.
func (v *Viewer) SetCameraZ(z float64) {
	v.camera.Position.Z = z
}
