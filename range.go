package scatter

import (
	"fmt"
	"math"
)

// autoRangePadding is the fraction of the data span added on each side of
// an auto-computed axis range so extreme markers are not glued to the frame.
const autoRangePadding = 0.02

// degenerateSpanPadding is the absolute padding applied to an axis whose
// data span is effectively zero (all samples share the same coordinate).
// It keeps the mapped span strictly positive.
const degenerateSpanPadding = 1.0

// Range is the data-space rectangle used to map samples to pixels.
type Range struct {
	XMin, XMax float64
	YMin, YMax float64
}

// SpanX returns the width of the range in data space.
func (r Range) SpanX() float64 { return r.XMax - r.XMin }

// SpanY returns the height of the range in data space.
func (r Range) SpanY() float64 { return r.YMax - r.YMin }

// resolveRange computes the effective axis ranges for a render call.
//
// With AutoRange set, the range tightly bounds the data and is then padded
// by 2% of each span. A degenerate axis (zero span) is expanded
// symmetrically by an absolute margin instead, so the downstream linear
// mapping never divides by zero.
//
// With AutoRange unset, the explicit ranges from opt are validated and
// used as-is; samples outside them are clipped at draw time.
func resolveRange(xs, ys []float64, opt Options) (Range, error) {
	if !opt.AutoRange {
		if r := (Range{XMin: opt.XMin, XMax: opt.XMax, YMin: opt.YMin, YMax: opt.YMax}); !r.finite() {
			return Range{}, fmt.Errorf("%w: non-finite bounds x=[%g, %g] y=[%g, %g]",
				ErrInvalidRange, opt.XMin, opt.XMax, opt.YMin, opt.YMax)
		}
		if opt.XMin >= opt.XMax {
			return Range{}, fmt.Errorf("%w: x_min (%g) >= x_max (%g)", ErrInvalidRange, opt.XMin, opt.XMax)
		}
		if opt.YMin >= opt.YMax {
			return Range{}, fmt.Errorf("%w: y_min (%g) >= y_max (%g)", ErrInvalidRange, opt.YMin, opt.YMax)
		}
		return Range{XMin: opt.XMin, XMax: opt.XMax, YMin: opt.YMin, YMax: opt.YMax}, nil
	}

	xMin, xMax := minMax(xs)
	yMin, yMax := minMax(ys)

	xPad := spanPadding(xMax - xMin)
	yPad := spanPadding(yMax - yMin)

	r := Range{
		XMin: xMin - xPad,
		XMax: xMax + xPad,
		YMin: yMin - yPad,
		YMax: yMax + yPad,
	}
	// NaN or Inf samples poison the bounds, and finite bounds near the
	// float64 limit can overflow when padded. Either way the linear
	// mapping has no defined result, so fail instead of drawing garbage.
	if !r.finite() {
		return Range{}, fmt.Errorf("%w: data produces non-finite axis bounds x=[%g, %g] y=[%g, %g]",
			ErrInvalidRange, xMin, xMax, yMin, yMax)
	}
	return r, nil
}

// finite reports whether all four bounds are finite numbers.
func (r Range) finite() bool {
	return isFinite(r.XMin) && isFinite(r.XMax) && isFinite(r.YMin) && isFinite(r.YMax)
}

// isFinite reports whether v is neither NaN nor an infinity.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// float64Epsilon is the difference between 1.0 and the next representable
// float64. Spans below it are treated as degenerate.
const float64Epsilon = 2.220446049250313e-16

// spanPadding returns the one-sided padding for a data span.
func spanPadding(span float64) float64 {
	if math.Abs(span) < float64Epsilon {
		return degenerateSpanPadding
	}
	return span * autoRangePadding
}

// minMax returns the minimum and maximum of a non-empty slice.
func minMax(vs []float64) (lo, hi float64) {
	lo = math.Inf(1)
	hi = math.Inf(-1)
	for _, v := range vs {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi
}
