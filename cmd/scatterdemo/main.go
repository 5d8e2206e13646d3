// Command scatterdemo renders a few example scatter plots.
package main

import (
	"errors"
	"flag"
	"log"
	"log/slog"
	"math"
	"math/rand"
	"os"

	"github.com/gogpu/scatter"
)

func main() {
	var (
		outDir  = flag.String("out", ".", "output directory")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		scatter.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	// Linear data with automatic ranges.
	xs := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	ys := []float64{2.1, 3.9, 6.2, 7.8, 10.1, 12.0, 14.1, 15.9, 18.2, 19.8}
	save(*outDir+"/scatter_auto.png", xs, ys, scatter.DefaultOptions())

	// Noisy sine wave with custom size and marker radius.
	rng := rand.New(rand.NewSource(42))
	var sx, sy []float64
	for i := 0; i < 50; i++ {
		x := float64(i) * 0.2
		sx = append(sx, x)
		sy = append(sy, math.Sin(x)+(rng.Float64()-0.5)*0.2)
	}
	opt := scatter.DefaultOptions()
	opt.Width = 1024
	opt.Height = 768
	opt.MarkerRadius = 4
	save(*outDir+"/scatter_sine.png", sx, sy, opt)

	// Quadratic data with explicit axis ranges.
	opt = scatter.DefaultOptions()
	opt.AutoRange = false
	opt.XMin, opt.XMax = 0, 1
	opt.YMin, opt.YMax = 0, 3
	save(*outDir+"/scatter_explicit.png",
		[]float64{0.1, 0.2, 0.3, 0.4, 0.5},
		[]float64{0.1, 0.4, 0.9, 1.6, 2.5},
		opt)

	// Failure reporting: an inverted explicit range is rejected before
	// any file is written.
	opt.XMin, opt.XMax = 1, 0
	err := scatter.RenderFile(*outDir+"/never_written.png", xs, ys, opt)
	if !errors.Is(err, scatter.ErrInvalidRange) {
		log.Fatalf("expected invalid range error, got: %v", err)
	}
	log.Printf("invalid range rejected as expected: %v", err)
}

func save(path string, xs, ys []float64, opt scatter.Options) {
	if err := scatter.RenderFile(path, xs, ys, opt); err != nil {
		log.Fatalf("render %s: %v", path, err)
	}
	log.Printf("wrote %s (%dx%d, %d samples)", path, opt.Width, opt.Height, len(xs))
}
