package scatter

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/gogpu/scatter/text"
)

// Plotter renders scatter plots with a fixed visual style.
// The zero-argument New() yields the default style: white background,
// blue markers, black frame and labels, light gray grid mesh.
//
// A Plotter is safe for concurrent use; each render call owns its pixel
// buffer exclusively.
type Plotter struct {
	style style

	fontOnce sync.Once
	source   *text.Source
}

// New creates a Plotter, applying any styling options.
func New(opts ...PlotterOption) *Plotter {
	st := defaultStyle()
	for _, opt := range opts {
		opt(&st)
	}
	return &Plotter{style: st}
}

// fontSource returns the label font, parsing configured font data once.
// Invalid font data falls back to the embedded default with a warning.
func (p *Plotter) fontSource() *text.Source {
	p.fontOnce.Do(func() {
		if p.style.faceData == nil {
			p.source = text.DefaultSource()
			return
		}
		s, err := text.NewSource(p.style.faceData)
		if err != nil {
			Logger().Warn("invalid font data, using embedded default", "error", err)
			s = text.DefaultSource()
		}
		p.source = s
	})
	return p.source
}

// validate checks the inputs of a render call. It runs before any pixel
// or file work so a failing call has no side effects.
func validate(xs, ys []float64, opt Options) error {
	if len(xs) != len(ys) {
		return fmt.Errorf("%w: len(xs)=%d, len(ys)=%d", ErrLengthMismatch, len(xs), len(ys))
	}
	if len(xs) == 0 {
		return ErrEmptyInput
	}
	if opt.Width <= 0 || opt.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, opt.Width, opt.Height)
	}
	if opt.MarkerRadius < 0 {
		return fmt.Errorf("scatter: marker radius must not be negative, got %d", opt.MarkerRadius)
	}
	return nil
}

// Render draws the samples and returns the completed pixel buffer.
//
// xs and ys pair by index and must have equal, nonzero length. The
// returned pixmap is owned by the caller.
func (p *Plotter) Render(xs, ys []float64, opt Options) (*Pixmap, error) {
	if err := validate(xs, ys, opt); err != nil {
		return nil, err
	}

	rng, err := resolveRange(xs, ys, opt)
	if err != nil {
		return nil, err
	}

	pm := NewPixmap(opt.Width, opt.Height)
	pm.Clear(p.style.background)

	v := newViewport(opt.Width, opt.Height, p.style, rng)

	if p.style.mesh {
		face := p.fontSource().Face(p.style.fontSize)
		drawMesh(pm, v, p.style, face)
	}

	// A radius beyond the image diagonal fills everything it can reach
	// anyway; capping it keeps absurd values from stalling the fill loop.
	radius := opt.MarkerRadius
	if limit := opt.Width + opt.Height; radius > limit {
		radius = limit
	}

	for i := range xs {
		px, py := v.pixel(xs[i], ys[i])
		fillDisc(pm, px, py, radius, p.style.markerColor)
	}

	Logger().Debug("rendered scatter plot",
		slog.Int("samples", len(xs)),
		slog.Int("width", opt.Width),
		slog.Int("height", opt.Height),
		slog.Group("range",
			slog.Float64("x_min", rng.XMin),
			slog.Float64("x_max", rng.XMax),
			slog.Float64("y_min", rng.YMin),
			slog.Float64("y_max", rng.YMax),
		),
	)
	return pm, nil
}

// EncodePNG renders the samples and writes PNG bytes to w.
func (p *Plotter) EncodePNG(w io.Writer, xs, ys []float64, opt Options) error {
	pm, err := p.Render(xs, ys, opt)
	if err != nil {
		return err
	}
	return pm.EncodePNG(w)
}

// RenderFile renders the samples and writes the PNG to path.
//
// The file is written to a temporary name in the destination directory
// and renamed into place, so path never holds a partial plot: on failure
// the previous file (if any) is left untouched.
func (p *Plotter) RenderFile(path string, xs, ys []float64, opt Options) error {
	pm, err := p.Render(xs, ys, opt)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	f, err := os.CreateTemp(dir, ".scatter-*.png")
	if err != nil {
		return fmt.Errorf("scatter: create temp file: %w", err)
	}
	tmp := f.Name()

	if err := pm.EncodePNG(f); err != nil {
		_ = f.Close()
		removeTemp(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		removeTemp(tmp)
		return fmt.Errorf("scatter: write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		removeTemp(tmp)
		return fmt.Errorf("scatter: rename into place: %w", err)
	}

	Logger().Debug("wrote scatter plot", "path", path)
	return nil
}

// removeTemp deletes a temporary file, logging (not failing) on error.
func removeTemp(path string) {
	if err := os.Remove(path); err != nil {
		Logger().Warn("failed to remove temp file", "path", path, "error", err)
	}
}

// defaultPlotter backs the package-level convenience functions.
var defaultPlotter = New()

// Render draws the samples with the default style and returns the pixel
// buffer.
func Render(xs, ys []float64, opt Options) (*Pixmap, error) {
	return defaultPlotter.Render(xs, ys, opt)
}

// RenderFile draws the samples with the default style and writes the PNG
// to path.
func RenderFile(path string, xs, ys []float64, opt Options) error {
	return defaultPlotter.RenderFile(path, xs, ys, opt)
}

// EncodePNG draws the samples with the default style and writes PNG bytes
// to w.
func EncodePNG(w io.Writer, xs, ys []float64, opt Options) error {
	return defaultPlotter.EncodePNG(w, xs, ys, opt)
}
