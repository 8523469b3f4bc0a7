package shell

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	DefaultClipThreshold = 20
	DefaultClipRatio     = 0.1
	DefaultSampleStride  = 4

	// DefaultScaleZ stretches normalized depth values.
	DefaultScaleZ = 2.5

	// scalePerStride is the horizontal stretch applied per
	// skipped source pixel.
	scalePerStride = 3.2
)

// Config controls how a SampleGrid is turned into a Mesh.
type Config struct {
	// ClipThreshold is the hard cutoff below which samples
	// are treated as background.
	ClipThreshold uint8 `yaml:"clipThreshold"`

	// ClipRatio is the fraction of the remaining samples,
	// taken from the low end, which are clipped away.
	// It must be in [0, 1).
	ClipRatio float64 `yaml:"clipRatio"`

	ScaleX float64 `yaml:"scaleX"`
	ScaleY float64 `yaml:"scaleY"`
	ScaleZ float64 `yaml:"scaleZ"`

	// SampleStride is the pixel step used when reading a
	// depth image into a SampleGrid.
	SampleStride int `yaml:"sampleStride"`
}

// DefaultConfig returns the settings of the original
// depth viewer.
func DefaultConfig() Config {
	return Config{
		ClipThreshold: DefaultClipThreshold,
		ClipRatio:     DefaultClipRatio,
		ScaleX:        scalePerStride * DefaultSampleStride,
		ScaleY:        scalePerStride * DefaultSampleStride,
		ScaleZ:        DefaultScaleZ,
		SampleStride:  DefaultSampleStride,
	}
}

// LoadConfig reads a YAML config file.
//
// Fields missing from the file keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "load config")
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrap(err, "load config")
	}
	if err := cfg.Validate(); err != nil {
		return cfg, errors.Wrap(err, "load config")
	}
	return cfg, nil
}

// Validate checks that the settings can produce a mesh.
func (c Config) Validate() error {
	if err := c.Filter().Validate(); err != nil {
		return err
	}
	if c.ScaleX <= 0 || c.ScaleY <= 0 || c.ScaleZ <= 0 {
		return errors.New("scales must be positive")
	}
	if c.SampleStride < 1 {
		return errors.New("sample stride must be at least 1")
	}
	return nil
}

// Filter returns the subset of the config used by Filter.
func (c Config) Filter() FilterConfig {
	return FilterConfig{
		ClipThreshold: c.ClipThreshold,
		ClipRatio:     c.ClipRatio,
	}
}

// WithStride returns a copy of c whose horizontal scales
// follow the given sample stride.
func (c Config) WithStride(stride int) Config {
	c.SampleStride = stride
	c.ScaleX = scalePerStride * float64(stride)
	c.ScaleY = scalePerStride * float64(stride)
	return c
}
