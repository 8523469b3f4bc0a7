// Command depth_to_stl converts a depth image into a
// closed, double-sided shell and saves it as an STL file.
//
// Bright pixels are near the viewer and black pixels are
// empty space. With -json, the input is instead decoded
// as a JSON array of rows of sample values.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/unixpickle/depthshell/shell"
	"github.com/unixpickle/essentials"
)

func main() {
	var configPath string
	var outputPath string
	var clipRatio float64
	var stride int
	var jsonInput bool
	var verbose bool

	flag.StringVar(&configPath, "config", "", "YAML file with shell settings")
	flag.StringVar(&outputPath, "output", "output.stl", "output STL file")
	flag.Float64Var(&clipRatio, "clip-ratio", -1, "fraction of low samples to clip (overrides config)")
	flag.IntVar(&stride, "stride", 0, "pixels between samples (overrides config)")
	flag.BoolVar(&jsonInput, "json", false, "read a JSON sample grid instead of an image")
	flag.BoolVar(&verbose, "verbose", false, "log every build stage")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage:", os.Args[0], "[flags] <depth_image>")
		flag.PrintDefaults()
		os.Exit(1)
	}
	flag.Parse()
	if len(flag.Args()) != 1 {
		flag.Usage()
	}
	if verbose {
		shell.SetLogger(slog.New(slog.NewTextHandler(os.Stderr,
			&slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	cfg, err := loadConfig(configPath, clipRatio, stride)
	essentials.Must(err)

	inPath := flag.Args()[0]
	log.Println("Reading", inPath, "...")
	jsonInput = jsonInput || strings.EqualFold(filepath.Ext(inPath), ".json")
	grid, err := readSamples(inPath, jsonInput)
	essentials.Must(err)

	log.Println("Building shell from", grid.Width, "x", grid.Height, "grid ...")
	var mesh *shell.Mesh
	if jsonInput {
		mesh, err = shell.Build(grid, cfg)
	} else {
		mesh, err = shell.BuildImage(grid, cfg)
	}
	essentials.Must(err)

	log.Println("Saving", len(mesh.Faces), "triangles to", outputPath, "...")
	essentials.Must(saveSTL(outputPath, mesh))
}

func saveSTL(path string, mesh *shell.Mesh) error {
	w, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "save STL")
	}
	if err := mesh.WriteSTL(w); err != nil {
		w.Close()
		return err
	}
	return errors.Wrap(w.Close(), "save STL")
}

func loadConfig(path string, clipRatio float64, stride int) (shell.Config, error) {
	cfg := shell.DefaultConfig()
	if path != "" {
		var err error
		cfg, err = shell.LoadConfig(path)
		if err != nil {
			return cfg, err
		}
	}
	if clipRatio >= 0 {
		cfg.ClipRatio = clipRatio
	}
	if stride > 0 {
		cfg = cfg.WithStride(stride)
	}
	return cfg, cfg.Validate()
}

func readSamples(path string, jsonInput bool) (*shell.SampleGrid, error) {
	r, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "read samples")
	}
	defer r.Close()
	if jsonInput {
		return shell.ReadSamplesJSON(r)
	}
	return shell.ReadSamples(r)
}
