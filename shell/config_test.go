package shell

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, uint8(20), cfg.ClipThreshold)
	assert.Equal(t, 0.1, cfg.ClipRatio)
	assert.InDelta(t, 12.8, cfg.ScaleX, 1e-12)
	assert.InDelta(t, 12.8, cfg.ScaleY, 1e-12)
	assert.Equal(t, 4, cfg.SampleStride)
}

func TestLoadConfigPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shell.yaml")
	require.NoError(t, os.WriteFile(path, []byte("clipRatio: 0.25\nscaleZ: 4\n"), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 0.25, cfg.ClipRatio)
	assert.Equal(t, 4.0, cfg.ScaleZ)
	assert.Equal(t, uint8(DefaultClipThreshold), cfg.ClipThreshold)
	assert.Equal(t, DefaultSampleStride, cfg.SampleStride)
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadConfig(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("clipRatio: [1, 2]\n"), 0644))
	_, err = LoadConfig(bad)
	assert.Error(t, err)

	outOfRange := filepath.Join(dir, "range.yaml")
	require.NoError(t, os.WriteFile(outOfRange, []byte("clipRatio: 1.0\n"), 0644))
	_, err = LoadConfig(outOfRange)
	assert.ErrorContains(t, err, "clip ratio")
}

func TestConfigValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"negative ratio": func(c *Config) { c.ClipRatio = -0.5 },
		"zero scale":     func(c *Config) { c.ScaleX = 0 },
		"zero stride":    func(c *Config) { c.SampleStride = 0 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultConfig()
			mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestConfigWithStride(t *testing.T) {
	cfg := DefaultConfig().WithStride(1)
	assert.Equal(t, 1, cfg.SampleStride)
	assert.InDelta(t, 3.2, cfg.ScaleX, 1e-12)
	assert.InDelta(t, 3.2, cfg.ScaleY, 1e-12)
	assert.Equal(t, DefaultScaleZ, cfg.ScaleZ)
}
