package shell

import (
	"github.com/pkg/errors"
)

// Build turns a grid of depth samples into a closed
// double-sided shell.
//
// The grid is copied before filtering, so the caller's
// samples are left untouched. On failure no mesh is
// returned; in particular, a *DegenerateInputError is
// returned as-is when the samples have no usable range.
func Build(g *SampleGrid, cfg Config) (*Mesh, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "build mesh")
	}
	g = g.Clone()
	result, err := filterLogged(g, cfg)
	if err != nil {
		return nil, err
	}
	return buildFiltered(g, result, cfg), nil
}

// BuildImage is like Build, but g holds every pixel of a
// depth image rather than the samples themselves.
//
// The thresholds and depth range are computed over all the
// pixels, and only then is every cfg.SampleStride'th pixel
// kept as a sample.
func BuildImage(g *SampleGrid, cfg Config) (*Mesh, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "build mesh")
	}
	g = g.Clone()
	result, err := filterLogged(g, cfg)
	if err != nil {
		return nil, err
	}
	g = g.Downsample(cfg.SampleStride)
	if g.NumNonZero() == 0 {
		return nil, &DegenerateInputError{}
	}
	return buildFiltered(g, result, cfg), nil
}

func filterLogged(g *SampleGrid, cfg Config) (*FilterResult, error) {
	result, err := Filter(g, cfg.Filter())
	if err != nil {
		return nil, err
	}
	Logger().Debug("filtered samples",
		"width", g.Width, "height", g.Height,
		"valid", result.Valid, "threshold", result.Threshold,
		"min", result.Min, "max", result.Max)
	return result, nil
}

func buildFiltered(g *SampleGrid, result *FilterResult, cfg Config) *Mesh {
	log := Logger()

	mesh, indices := BuildLayers(g, result, Scale{X: cfg.ScaleX, Y: cfg.ScaleY, Z: cfg.ScaleZ})
	log.Debug("built layers", "vertices", len(mesh.Vertices),
		"front", mesh.Counts.Front, "back", mesh.Counts.Back)

	StitchSeams(mesh, indices)
	log.Debug("stitched seams", "faces", mesh.Counts.Seam)

	mesh.finalize()
	return mesh
}
