package scatter

import (
	"errors"
	"math"
	"testing"
)

func TestResolveRangeAuto(t *testing.T) {
	xs := []float64{1, 2, 3, 4, 5}
	ys := []float64{10, 40, 20, 30, 50}

	rng, err := resolveRange(xs, ys, Options{AutoRange: true})
	if err != nil {
		t.Fatalf("resolveRange failed: %v", err)
	}

	// 2% of span on each side.
	if want := 1.0 - 0.08; math.Abs(rng.XMin-want) > 1e-12 {
		t.Errorf("XMin = %g, want %g", rng.XMin, want)
	}
	if want := 5.0 + 0.08; math.Abs(rng.XMax-want) > 1e-12 {
		t.Errorf("XMax = %g, want %g", rng.XMax, want)
	}
	if want := 10.0 - 0.8; math.Abs(rng.YMin-want) > 1e-12 {
		t.Errorf("YMin = %g, want %g", rng.YMin, want)
	}
	if want := 50.0 + 0.8; math.Abs(rng.YMax-want) > 1e-12 {
		t.Errorf("YMax = %g, want %g", rng.YMax, want)
	}

	// The padded range must strictly bound the data.
	if rng.XMin >= 1 || rng.XMax <= 5 || rng.YMin >= 10 || rng.YMax <= 50 {
		t.Errorf("range %+v does not bound the data", rng)
	}
}

func TestResolveRangeDegenerate(t *testing.T) {
	// All x equal: the x axis must still get a strictly positive span.
	xs := []float64{5, 5, 5}
	ys := []float64{1, 2, 3}

	rng, err := resolveRange(xs, ys, Options{AutoRange: true})
	if err != nil {
		t.Fatalf("resolveRange failed: %v", err)
	}
	if rng.SpanX() <= 0 {
		t.Fatalf("SpanX = %g, want > 0", rng.SpanX())
	}
	if rng.XMin != 4 || rng.XMax != 6 {
		t.Errorf("degenerate x range = [%g, %g], want [4, 6]", rng.XMin, rng.XMax)
	}

	// Single sample: both axes degenerate.
	rng, err = resolveRange([]float64{0}, []float64{0}, Options{AutoRange: true})
	if err != nil {
		t.Fatalf("resolveRange failed: %v", err)
	}
	if rng.SpanX() <= 0 || rng.SpanY() <= 0 {
		t.Errorf("single sample spans = (%g, %g), want both > 0", rng.SpanX(), rng.SpanY())
	}
}

func TestResolveRangeExplicit(t *testing.T) {
	opt := Options{AutoRange: false, XMin: 0, XMax: 1, YMin: -2, YMax: 3}

	rng, err := resolveRange([]float64{10}, []float64{10}, opt)
	if err != nil {
		t.Fatalf("resolveRange failed: %v", err)
	}
	// Explicit ranges pass through unpadded, ignoring the data.
	if rng != (Range{XMin: 0, XMax: 1, YMin: -2, YMax: 3}) {
		t.Errorf("range = %+v, want explicit options", rng)
	}
}

func TestResolveRangeInvalid(t *testing.T) {
	tests := []struct {
		name string
		opt  Options
	}{
		{"x inverted", Options{XMin: 1, XMax: 0, YMin: 0, YMax: 1}},
		{"x equal", Options{XMin: 1, XMax: 1, YMin: 0, YMax: 1}},
		{"y inverted", Options{XMin: 0, XMax: 1, YMin: 2, YMax: 1}},
		{"y equal", Options{XMin: 0, XMax: 1, YMin: 1, YMax: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := resolveRange([]float64{0}, []float64{0}, tt.opt)
			if !errors.Is(err, ErrInvalidRange) {
				t.Errorf("err = %v, want ErrInvalidRange", err)
			}
		})
	}
}

func TestResolveRangeNonFinite(t *testing.T) {
	auto := Options{AutoRange: true}
	tests := []struct {
		name string
		xs   []float64
		ys   []float64
		opt  Options
	}{
		{"NaN x sample", []float64{0, math.NaN()}, []float64{1, 2}, auto},
		{"NaN y sample", []float64{1, 2}, []float64{0, math.NaN()}, auto},
		{"+Inf sample", []float64{0, math.Inf(1)}, []float64{1, 2}, auto},
		{"-Inf sample", []float64{0, math.Inf(-1)}, []float64{1, 2}, auto},
		// Finite bounds whose padded span overflows float64.
		{"span overflow", []float64{-1e308, 1e308}, []float64{1, 2}, auto},
		{"explicit NaN bound", []float64{0}, []float64{0},
			Options{XMin: math.NaN(), XMax: 1, YMin: 0, YMax: 1}},
		{"explicit Inf bound", []float64{0}, []float64{0},
			Options{XMin: 0, XMax: math.Inf(1), YMin: 0, YMax: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := resolveRange(tt.xs, tt.ys, tt.opt)
			if !errors.Is(err, ErrInvalidRange) {
				t.Errorf("err = %v, want ErrInvalidRange", err)
			}
		})
	}
}
