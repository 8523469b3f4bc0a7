package viewer

import (
	"fmt"
	"math"
	"path/filepath"
	"strconv"

	"github.com/pkg/errors"
	"github.com/unixpickle/depthshell/shell"
	"github.com/unixpickle/model3d/model3d"
)

// NumCaptureViews is the number of views in a capture plan.
const NumCaptureViews = 26

// A View is one camera position of a capture plan.
type View struct {
	Index    int
	Position model3d.Coord3D
}

// CapturePlan lists the camera positions used by AutoSave,
// all at the given distance from the origin.
//
// The views are eight around the equator, eight on the
// upper 45 degree ring, the top, eight on the lower ring,
// and the bottom.
func CapturePlan(dist float64) []View {
	var res []View
	add := func(c model3d.Coord3D) {
		res = append(res, View{Index: len(res), Position: c})
	}
	ring := func(radius, y float64) {
		for angle := 0; angle < 360; angle += 45 {
			theta := float64(angle) * math.Pi / 180
			add(model3d.Coord3D{
				X: radius * math.Sin(theta),
				Y: y,
				Z: radius * math.Cos(theta),
			})
		}
	}
	diag := dist * math.Sin(math.Pi/4)

	ring(dist, 0)
	ring(diag, diag)
	add(model3d.Coord3D{Y: dist})
	ring(diag, -diag)
	add(model3d.Coord3D{Y: -dist})
	return res
}

// CaptureFileName names the image of one view:
// <name>[_<distRatio>]_<d|s><NN>.png.
//
// The ratio is left out when it is 1.
func CaptureFileName(name string, distRatio float64, mode Mode, index int) string {
	var ratio string
	if distRatio != 1 {
		ratio = "_" + strconv.FormatFloat(distRatio, 'f', -1, 64)
	}
	return fmt.Sprintf("%s%s_%s%02d.png", name, ratio, mode.Code(), index%100)
}

// AutoSave saves a snapshot from every view of the capture
// plan into dir, and returns the paths it wrote.
//
// The views are at distRatio times the current camera z.
// A distRatio of 0 means 1. The camera is restored before
// returning. If saved is non-nil, it is called after each
// file is written.
func (v *Viewer) AutoSave(dir string, distRatio float64, mode Mode,
	saved func(path string)) ([]string, error) {
	if distRatio == 0 {
		distRatio = 1
	}
	if distRatio < 0 || math.IsNaN(distRatio) {
		return nil, errors.Errorf("auto save: invalid distance ratio %v", distRatio)
	}

	prev := v.camera
	defer func() {
		v.camera = prev
	}()

	dist := v.camera.Position.Z * distRatio
	log := shell.Logger()
	log.Info("start auto save", "object", v.name, "ratio", distRatio, "distance", dist)

	var paths []string
	for _, view := range CapturePlan(dist) {
		v.camera.Position = view.Position
		v.camera.Target = model3d.Coord3D{}

		path := filepath.Join(dir, CaptureFileName(v.name, distRatio, mode, view.Index))
		frame, err := v.Snapshot(mode)
		if err != nil {
			return paths, errors.Wrap(err, "auto save")
		}
		if err := SavePNG(path, frame); err != nil {
			return paths, errors.Wrap(err, "auto save")
		}
		paths = append(paths, path)
		if saved != nil {
			saved(path)
		}
	}

	log.Info("end auto save", "object", v.name, "files", len(paths))
	return paths, nil
}
