// Command depth_histogram plots the distribution of pixel
// depths in an image together with the thresholds that the
// shell filter would clip at.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"os"

	"github.com/unixpickle/depthshell/shell"
	"github.com/unixpickle/essentials"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

func main() {
	var configPath string
	var outputPath string
	var bins int
	flag.StringVar(&configPath, "config", "", "YAML file with shell settings")
	flag.StringVar(&outputPath, "output", "histogram.png", "output plot file")
	flag.IntVar(&bins, "bins", 64, "number of histogram bins")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage:", os.Args[0], "[flags] <depth_image>")
		flag.PrintDefaults()
		os.Exit(1)
	}
	flag.Parse()
	if len(flag.Args()) != 1 {
		flag.Usage()
	}

	cfg := shell.DefaultConfig()
	if configPath != "" {
		var err error
		cfg, err = shell.LoadConfig(configPath)
		essentials.Must(err)
	}

	r, err := os.Open(flag.Args()[0])
	essentials.Must(err)
	grid, err := shell.ReadSamples(r)
	r.Close()
	essentials.Must(err)

	var values plotter.Values
	for _, v := range grid.Samples {
		if v != 0 {
			values = append(values, float64(v))
		}
	}
	if len(values) == 0 {
		essentials.Die("no nonzero samples")
	}
	mean, std := stat.MeanStdDev(values, nil)
	log.Printf("%d nonzero samples, mean %.1f, std %.1f", len(values), mean, std)

	filtered := grid.Clone()
	result, err := shell.Filter(filtered, cfg.Filter())
	if err != nil {
		log.Println("Filter failed:", err)
	} else {
		log.Printf("%d samples kept in [%d, %d]", result.Valid, result.Min, result.Max)
	}

	p := plot.New()
	p.Title.Text = "Depth samples"
	p.X.Label.Text = "sample value"
	p.Y.Label.Text = "count"

	hist, err := plotter.NewHist(values, bins)
	essentials.Must(err)
	p.Add(hist)

	var maxCount float64
	for _, b := range hist.Bins {
		maxCount = max(maxCount, b.Weight)
	}
	addThreshold := func(name string, value float64, c color.Color) {
		line, err := plotter.NewLine(plotter.XYs{{X: value, Y: 0}, {X: value, Y: maxCount}})
		essentials.Must(err)
		line.Color = c
		line.Width = vg.Points(2)
		p.Add(line)
		p.Legend.Add(name, line)
	}
	addThreshold("hard clip", float64(cfg.ClipThreshold), color.RGBA{R: 0xff, A: 0xff})
	if result != nil && result.Threshold > 0 {
		addThreshold("ratio clip", float64(result.Threshold), color.RGBA{B: 0xff, A: 0xff})
	}

	log.Println("Saving", outputPath, "...")
	essentials.Must(p.Save(6*vg.Inch, 4*vg.Inch, outputPath))
}
