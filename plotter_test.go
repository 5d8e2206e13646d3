package scatter

import (
	"bytes"
	"errors"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestRenderDefaults(t *testing.T) {
	xs := []float64{1, 2, 3}
	ys := []float64{1, 2, 3}

	pm, err := Render(xs, ys, DefaultOptions())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if pm.Width() != 800 || pm.Height() != 600 {
		t.Errorf("size = %dx%d, want 800x600", pm.Width(), pm.Height())
	}

	// Background is white.
	if got := pm.GetPixel(1, 1); got != White {
		t.Errorf("corner pixel = %+v, want white", got)
	}

	// Blue marker pixels exist.
	if countColor(pm, Blue) == 0 {
		t.Error("no blue marker pixels found")
	}
}

func TestRenderFileProducesDecodablePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")

	err := RenderFile(path, []float64{1, 2, 3}, []float64{1, 2, 3}, DefaultOptions())
	if err != nil {
		t.Fatalf("RenderFile failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open output: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 800 || b.Dy() != 600 {
		t.Errorf("decoded size = %dx%d, want 800x600", b.Dx(), b.Dy())
	}
}

func TestRenderEmptyInput(t *testing.T) {
	_, err := Render(nil, nil, DefaultOptions())
	if !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("err = %v, want ErrEmptyInput", err)
	}
	if !bytes.Contains([]byte(err.Error()), []byte("empty input")) {
		t.Errorf("message %q does not mention empty input", err.Error())
	}
}

func TestRenderLengthMismatchWritesNoFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.png")

	err := RenderFile(path, []float64{1, 2, 3}, []float64{1, 2}, DefaultOptions())
	if !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("err = %v, want ErrLengthMismatch", err)
	}

	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Errorf("output file exists after failed validation")
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("directory not empty after failed validation: %v", entries)
	}
}

func TestRenderInvalidDimensions(t *testing.T) {
	opt := DefaultOptions()
	opt.Width = 0
	_, err := Render([]float64{1}, []float64{1}, opt)
	if !errors.Is(err, ErrInvalidDimensions) {
		t.Fatalf("width 0: err = %v, want ErrInvalidDimensions", err)
	}

	opt = DefaultOptions()
	opt.Height = 0
	_, err = Render([]float64{1}, []float64{1}, opt)
	if !errors.Is(err, ErrInvalidDimensions) {
		t.Fatalf("height 0: err = %v, want ErrInvalidDimensions", err)
	}
}

func TestRenderDegenerateData(t *testing.T) {
	// All x identical: must not fail and must still plot visible markers.
	xs := []float64{5, 5, 5}
	ys := []float64{1, 2, 3}

	pm, err := Render(xs, ys, DefaultOptions())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if countColor(pm, Blue) == 0 {
		t.Error("degenerate input produced no visible markers")
	}
}

func TestRenderNonFiniteData(t *testing.T) {
	// NaN and Inf samples make the auto range undefined; the call must
	// return an invalid-range error instead of rendering.
	tests := []struct {
		name string
		xs   []float64
		ys   []float64
	}{
		{"NaN x", []float64{1, math.NaN()}, []float64{1, 2}},
		{"Inf y", []float64{1, 2}, []float64{1, math.Inf(1)}},
		{"padding overflow", []float64{-1e308, 1e308}, []float64{1, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Render(tt.xs, tt.ys, DefaultOptions())
			if !errors.Is(err, ErrInvalidRange) {
				t.Errorf("err = %v, want ErrInvalidRange", err)
			}
		})
	}
}

func TestRenderExplicitRangeMarkerPositions(t *testing.T) {
	opt := DefaultOptions()
	opt.AutoRange = false
	opt.XMin, opt.XMax = 0, 1
	opt.YMin, opt.YMax = 0, 3

	xs := []float64{0.1, 0.2, 0.3, 0.4, 0.5}
	ys := []float64{0.1, 0.4, 0.9, 1.6, 2.5}

	pm, err := Render(xs, ys, opt)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	rng := Range{XMin: 0, XMax: 1, YMin: 0, YMax: 3}
	v := newViewport(opt.Width, opt.Height, defaultStyle(), rng)

	prevX, prevY := -1, pm.Height()
	for i := range xs {
		px, py := v.pixel(xs[i], ys[i])
		if got := pm.GetPixel(px, py); got.B < 0.9 || got.R > 0.1 {
			t.Errorf("sample %d: pixel (%d,%d) = %+v, want marker blue", i, px, py, got)
		}
		// Screen x increases, screen y decreases with the sample index.
		if px <= prevX || py >= prevY {
			t.Errorf("sample %d: position (%d,%d) not monotone after (%d,%d)", i, px, py, prevX, prevY)
		}
		prevX, prevY = px, py
	}
}

func TestRenderMarkerRadiusZero(t *testing.T) {
	p := New(WithMesh(false))

	pm, err := p.Render([]float64{1, 2, 3}, []float64{1, 2, 3}, Options{
		Width: 100, Height: 100, MarkerRadius: 0, AutoRange: true,
	})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if got := countColor(pm, Blue); got != 3 {
		t.Errorf("painted %d marker pixels, want exactly 3", got)
	}
}

func TestRenderIdempotent(t *testing.T) {
	xs := []float64{1, 2, 3, 4}
	ys := []float64{4, 1, 3, 2}
	opt := DefaultOptions()

	var a, b bytes.Buffer
	if err := EncodePNG(&a, xs, ys, opt); err != nil {
		t.Fatalf("first render failed: %v", err)
	}
	if err := EncodePNG(&b, xs, ys, opt); err != nil {
		t.Fatalf("second render failed: %v", err)
	}
	if !bytes.Equal(a.Bytes(), b.Bytes()) {
		t.Error("identical inputs produced different PNG bytes")
	}
}

func TestRenderFileOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	xs := []float64{1, 2}
	ys := []float64{2, 1}

	if err := RenderFile(path, xs, ys, DefaultOptions()); err != nil {
		t.Fatalf("first write failed: %v", err)
	}
	first, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if err := RenderFile(path, xs, ys, DefaultOptions()); err != nil {
		t.Fatalf("second write failed: %v", err)
	}
	second, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first, second) {
		t.Error("rewriting the same plot changed the file bytes")
	}
}

func TestRenderFileUnwritablePath(t *testing.T) {
	err := RenderFile("/nonexistent-dir/sub/out.png", []float64{1}, []float64{1}, DefaultOptions())
	if err == nil {
		t.Fatal("expected error for unwritable path")
	}
}

func TestRenderAutoRangeBoundsData(t *testing.T) {
	xs := []float64{-3, 0, 7, 42}
	ys := []float64{100, -5, 33, 8}
	opt := DefaultOptions()

	rng, err := resolveRange(xs, ys, opt)
	if err != nil {
		t.Fatal(err)
	}
	v := newViewport(opt.Width, opt.Height, defaultStyle(), rng)

	// Every sample maps strictly inside the plot area.
	for i := range xs {
		px, py := v.pixel(xs[i], ys[i])
		if px < v.x0 || px > v.x1 || py < v.y0 || py > v.y1 {
			t.Errorf("sample %d maps to (%d,%d), outside plot area [%d,%d]x[%d,%d]",
				i, px, py, v.x0, v.x1, v.y0, v.y1)
		}
	}
}

func TestPlotterCustomStyle(t *testing.T) {
	p := New(
		WithBackground(Black),
		WithMarkerColor(Red),
		WithMesh(false),
	)

	pm, err := p.Render([]float64{1, 2}, []float64{1, 2}, Options{
		Width: 50, Height: 50, MarkerRadius: 2, AutoRange: true,
	})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if got := pm.GetPixel(0, 0); got != Black {
		t.Errorf("background = %+v, want black", got)
	}
	if countColor(pm, Red) == 0 {
		t.Error("no red marker pixels found")
	}
}

// countColor counts pixels whose stored bytes match c after 8-bit
// quantization.
func countColor(pm *Pixmap, c RGBA) int {
	want := [4]uint8{
		uint8(clamp255(c.R * 255)),
		uint8(clamp255(c.G * 255)),
		uint8(clamp255(c.B * 255)),
		uint8(clamp255(c.A * 255)),
	}
	data := pm.Data()
	count := 0
	for i := 0; i < len(data); i += 4 {
		if data[i] == want[0] && data[i+1] == want[1] && data[i+2] == want[2] && data[i+3] == want[3] {
			count++
		}
	}
	return count
}
