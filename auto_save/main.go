// Command auto_save builds a shell from every depth image
// in a directory tree, loads every OFF or STL model, and
// exports snapshots of each object from 26 angles.
//
// Output files mirror the input tree and are named
// <name>[_<ratio>]_<d|s><NN>.png.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
	"github.com/unixpickle/depthshell/shell"
	"github.com/unixpickle/depthshell/viewer"
	"github.com/unixpickle/essentials"
)

var imageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".bmp":  true,
	".tif":  true,
	".tiff": true,
	".webp": true,
}

var modelExts = map[string]bool{
	".off": true,
	".stl": true,
}

func main() {
	var configPath string
	var distRatio float64
	var modeName string
	var width, height int
	var verbose bool
	var ambient, directional string

	flag.StringVar(&configPath, "config", "", "YAML file with shell settings")
	flag.Float64Var(&distRatio, "ratio", 1, "multiplier for the camera distance")
	flag.StringVar(&modeName, "mode", "s", "snapshot mode: s (silhouette) or d (depth map)")
	flag.IntVar(&width, "width", 600, "snapshot width")
	flag.IntVar(&height, "height", 600, "snapshot height")
	flag.StringVar(&ambient, "ambient", "606060", "ambient light color as RRGGBB")
	flag.StringVar(&directional, "directional", "808080", "directional light color as RRGGBB")
	flag.BoolVar(&verbose, "verbose", false, "log build stages and scene changes")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage:", os.Args[0], "[flags] <input_dir> <output_dir>")
		flag.PrintDefaults()
		os.Exit(1)
	}
	flag.Parse()
	if len(flag.Args()) != 2 {
		flag.Usage()
	}
	if verbose {
		shell.SetLogger(slog.New(slog.NewTextHandler(os.Stderr,
			&slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	var mode viewer.Mode
	switch modeName {
	case "s":
		mode = viewer.ModeSilhouette
	case "d":
		mode = viewer.ModeDepth
	default:
		essentials.Die("unknown mode:", modeName)
	}

	cfg := shell.DefaultConfig()
	if configPath != "" {
		var err error
		cfg, err = shell.LoadConfig(configPath)
		essentials.Must(err)
	}

	inDir := flag.Args()[0]
	outDir := flag.Args()[1]
	v := viewer.New(width, height)
	ambientColor, err := parseHexColor(ambient)
	essentials.Must(err)
	directionalColor, err := parseHexColor(directional)
	essentials.Must(err)
	v.SetAmbientLightColor(ambientColor)
	v.SetDirectionalLightColor(directionalColor)

	err = filepath.Walk(inDir, func(inPath string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		relPath, err := filepath.Rel(inDir, inPath)
		essentials.Must(err)
		outPath := filepath.Join(outDir, relPath)

		if info.IsDir() {
			if _, err := os.Stat(outPath); os.IsNotExist(err) {
				essentials.Must(os.Mkdir(outPath, 0755))
			}
			return nil
		}

		ext := strings.ToLower(filepath.Ext(inPath))
		if imageExts[ext] || modelExts[ext] {
			return CaptureModel(v, inPath, filepath.Dir(outPath), cfg, distRatio, mode)
		}
		return nil
	})
	essentials.Must(err)
}

// CaptureModel loads one depth image or model file into
// the viewer and saves its capture set.
//
// Images whose samples cannot form a shell are skipped.
func CaptureModel(v *viewer.Viewer, inPath, outDir string, cfg shell.Config,
	distRatio float64, mode viewer.Mode) error {
	log.Println("Capturing", inPath, "...")

	base := filepath.Base(inPath)
	ext := filepath.Ext(base)
	name := base[:len(base)-len(ext)]

	if modelExts[strings.ToLower(ext)] {
		model, err := viewer.ReadModel(inPath)
		if err != nil {
			return err
		}
		if err := v.LoadModel(name, model); err != nil {
			return err
		}
	} else {
		grid, err := readImage(inPath)
		if err != nil {
			return err
		}
		if err := v.LoadImage(name, grid, cfg); err != nil {
			var degenerate *shell.DegenerateInputError
			if errors.As(err, &degenerate) {
				log.Println("Skipping", inPath+":", err)
				return nil
			}
			return err
		}
	}

	bar := progressbar.Default(viewer.NumCaptureViews, name)
	defer bar.Close()
	_, err := v.AutoSave(outDir, distRatio, mode, func(string) {
		bar.Add(1)
	})
	return err
}

func readImage(path string) (*shell.SampleGrid, error) {
	r, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return shell.ReadSamples(r)
}

// parseHexColor parses an RRGGBB color, with an optional
// leading '#' or "0x".
func parseHexColor(s string) (color.Color, error) {
	hex := strings.TrimPrefix(strings.TrimPrefix(s, "#"), "0x")
	if len(hex) != 6 {
		return nil, errors.Errorf("invalid color %q", s)
	}
	value, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid color %q", s)
	}
	return color.RGBA{
		R: uint8(value >> 16),
		G: uint8(value >> 8),
		B: uint8(value),
		A: 0xff,
	}, nil
}
