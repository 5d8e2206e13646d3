// Package scatter renders numeric (x, y) sample pairs as scatter plots
// and encodes the result as PNG.
//
// # Overview
//
// scatter is a pure Go, single-shot scatter plot renderer. It draws a
// white canvas with an axis frame, grid mesh and numeric tick labels,
// plots one filled circular marker per sample, and serializes the pixel
// buffer with image/png. Rendering is deterministic: identical inputs
// produce byte-identical PNG files.
//
// # Quick Start
//
//	import "github.com/gogpu/scatter"
//
//	xs := []float64{1, 2, 3, 4, 5}
//	ys := []float64{2.1, 3.9, 6.2, 7.8, 10.1}
//
//	err := scatter.RenderFile("out.png", xs, ys, scatter.DefaultOptions())
//
// # Configuration
//
// Per-call parameters (image size, marker radius, axis ranges) live in
// Options. Stable style choices (colors, margins, font face) belong to a
// Plotter and are set with functional options:
//
//	p := scatter.New(
//	    scatter.WithMarkerColor(scatter.RGB(0.8, 0.2, 0.2)),
//	    scatter.WithMesh(false),
//	)
//	img, err := p.Render(xs, ys, scatter.DefaultOptions())
//
// # C boundary
//
// The capi directory builds as a c-shared library exposing
// plot_scatter_png and plot_last_error_message for callers in other
// languages. The Go API reports failures as wrapped sentinel errors
// (ErrEmptyInput, ErrInvalidRange, ...); the C boundary translates them
// into a status code plus a process-wide last-error message.
package scatter
