// Command contour_png reduces a rendered image to a black
// contour line drawing on white.
//
// Pure white pixels are treated as background. Any image
// format readable as a depth image is accepted.
package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"os"

	"github.com/unixpickle/depthshell/contour"
	"github.com/unixpickle/depthshell/viewer"
	"github.com/unixpickle/essentials"
)

func main() {
	var outputPath string
	flag.StringVar(&outputPath, "output", "contour.png", "output PNG file")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage:", os.Args[0], "[flags] <image>")
		flag.PrintDefaults()
		os.Exit(1)
	}
	flag.Parse()
	if len(flag.Args()) != 1 {
		flag.Usage()
	}

	r, err := os.Open(flag.Args()[0])
	essentials.Must(err)
	img, _, err := image.Decode(r)
	r.Close()
	essentials.Must(err)

	log.Println("Extracting contour ...")
	frame := contour.Extract(contour.FromImage(img))

	log.Println("Saving", outputPath, "...")
	essentials.Must(viewer.SavePNG(outputPath, frame))
}
