package viewer

import (
	"image/color"
	"image/png"
	"io"
	"math"
	"os"
	"sort"

	"github.com/gogpu/gg"
	"github.com/pkg/errors"
	"github.com/unixpickle/depthshell/contour"
	"github.com/unixpickle/model3d/model3d"
)

// A Mode selects how snapshots are drawn.
type Mode int

const (
	// ModeSilhouette draws the black contour of the shaded
	// object on white.
	ModeSilhouette Mode = iota

	// ModeDepth draws near surfaces bright and far surfaces
	// dark.
	ModeDepth
)

// Code returns the letter used for the mode in exported
// file names.
func (m Mode) Code() string {
	if m == ModeDepth {
		return "d"
	}
	return "s"
}

var lightDirection = model3d.Coord3D{X: -1000, Y: 1000}.Normalize()

type projectedFace struct {
	xs    [3]float64
	ys    [3]float64
	depth float64
	rgb   [3]float64
}

// Render draws the scene on a white background with the
// software rasterizer.
//
// In ModeSilhouette the surfaces are shaded by the ambient
// and directional lights; no contour is applied.
func (v *Viewer) Render(mode Mode) (*contour.PixelBuffer, error) {
	pm := gg.NewPixmap(v.width, v.height)
	pm.Clear(gg.White)
	dc := gg.NewContext(v.width, v.height, gg.WithPixmap(pm))

	for _, f := range v.projectFaces(mode) {
		dc.SetRGB(f.rgb[0], f.rgb[1], f.rgb[2])
		dc.MoveTo(f.xs[0], f.ys[0])
		dc.LineTo(f.xs[1], f.ys[1])
		dc.LineTo(f.xs[2], f.ys[2])
		dc.ClosePath()
		if err := dc.Fill(); err != nil {
			dc.Close()
			return nil, errors.Wrap(err, "render")
		}
	}

	// Queued work is only flushed into the pixmap on close.
	if err := dc.Close(); err != nil {
		return nil, errors.Wrap(err, "render")
	}

	return &contour.PixelBuffer{
		Width:  v.width,
		Height: v.height,
		Pix:    append([]uint8{}, pm.Data()...),
	}, nil
}

// Snapshot renders the scene and, in ModeSilhouette,
// reduces the frame to its contour.
func (v *Viewer) Snapshot(mode Mode) (*contour.PixelBuffer, error) {
	frame, err := v.Render(mode)
	if err != nil {
		return nil, err
	}
	if mode == ModeSilhouette {
		return contour.Extract(frame), nil
	}
	return frame, nil
}

// Save writes a PNG snapshot to w.
func (v *Viewer) Save(w io.Writer, mode Mode) error {
	frame, err := v.Snapshot(mode)
	if err != nil {
		return err
	}
	return EncodePNG(w, frame)
}

// projectFaces returns the visible faces of the mesh,
// farthest first.
func (v *Viewer) projectFaces(mode Mode) []projectedFace {
	if v.mesh == nil {
		return nil
	}
	proj := newProjector(v.camera, v.width, v.height)
	depthRange := v.camera.Far - v.camera.Near
	ambient := lightLevels(v.ambient)
	directional := lightLevels(v.directional)

	var res []projectedFace
	for _, f := range v.mesh.Faces {
		if f.Normal.Norm() == 0 {
			continue
		}
		var pf projectedFace
		var centroid model3d.Coord3D
		visible := true
		for i, idx := range f.Indices {
			p := v.mesh.Vertices[idx].Position
			centroid = centroid.Add(p.Scale(1.0 / 3))
			x, y, depth, ok := proj.Project(p)
			if !ok {
				visible = false
				break
			}
			pf.xs[i], pf.ys[i] = x, y
			pf.depth += depth / 3
		}
		if !visible || !proj.Facing(centroid, f.Normal) {
			continue
		}
		if mode == ModeDepth {
			level := clamp01(1 - (pf.depth-v.camera.Near)/depthRange)
			pf.rgb = [3]float64{level, level, level}
		} else {
			diffuse := math.Max(0, f.Normal.Dot(lightDirection))
			for i := range pf.rgb {
				pf.rgb[i] = clamp01(ambient[i] + directional[i]*diffuse)
			}
		}
		res = append(res, pf)
	}

	sort.SliceStable(res, func(i, j int) bool {
		return res[i].depth > res[j].depth
	})
	return res
}

func lightLevels(c color.Color) [3]float64 {
	r, g, b, _ := c.RGBA()
	return [3]float64{float64(r) / 0xffff, float64(g) / 0xffff, float64(b) / 0xffff}
}

func clamp01(x float64) float64 {
	return math.Max(0, math.Min(1, x))
}

// EncodePNG writes a pixel buffer as a PNG image.
func EncodePNG(w io.Writer, p *contour.PixelBuffer) error {
	if err := png.Encode(w, p.Image()); err != nil {
		return errors.Wrap(err, "encode PNG")
	}
	return nil
}

// SavePNG writes a pixel buffer to a PNG file.
func SavePNG(path string, p *contour.PixelBuffer) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "save PNG")
	}
	defer f.Close()
	if err := EncodePNG(f, p); err != nil {
		return err
	}
	return f.Close()
}
