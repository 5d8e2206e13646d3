package scatter

import "math"

// viewport maps data-space coordinates onto the plot area of the image.
//
// The plot area is the image rectangle left over after reserving the outer
// margin on every edge, the y label strip on the left and the x label
// strip at the bottom. The vertical mapping is inverted: pixel rows grow
// downward while plot y grows upward.
type viewport struct {
	rng Range

	// Plot area bounds in pixel space, inclusive.
	x0, y0 int // top-left
	x1, y1 int // bottom-right
}

// newViewport computes the plot area for an image of the given size.
// The area falls back to the full image when the margins and label strips
// would not leave room for at least one pixel in a direction.
func newViewport(width, height int, st style, rng Range) viewport {
	x0 := st.margin + st.yLabelArea
	y0 := st.margin
	x1 := width - st.margin - 1
	y1 := height - st.margin - st.xLabelArea - 1

	if x1 <= x0 {
		x0 = 0
		x1 = width - 1
	}
	if y1 <= y0 {
		y0 = 0
		y1 = height - 1
	}

	return viewport{rng: rng, x0: x0, y0: y0, x1: x1, y1: y1}
}

// pixelClamp bounds mapped coordinates so that far out-of-range samples
// (possible with explicit ranges) stay convertible to int. Anything this
// far outside the image is clipped by the rasterizer regardless.
const pixelClamp = 1 << 30

// round converts a mapped coordinate to a pixel index.
// NaN (a non-finite sample value) maps to the clamp boundary, where the
// rasterizer clips it like any other out-of-range point.
func round(v float64) int {
	v = math.Round(v)
	switch {
	case math.IsNaN(v):
		return pixelClamp
	case v > pixelClamp:
		return pixelClamp
	case v < -pixelClamp:
		return -pixelClamp
	}
	return int(v)
}

// pixelX maps a data-space x coordinate to a pixel column.
func (v viewport) pixelX(x float64) int {
	t := (x - v.rng.XMin) / v.rng.SpanX()
	return v.x0 + round(t*float64(v.x1-v.x0))
}

// pixelY maps a data-space y coordinate to a pixel row.
func (v viewport) pixelY(y float64) int {
	t := (y - v.rng.YMin) / v.rng.SpanY()
	return v.y1 - round(t*float64(v.y1-v.y0))
}

// pixel maps a data-space point to pixel coordinates.
// Points outside the resolved range map outside the plot area; the
// rasterizer clips them against the pixmap bounds.
func (v viewport) pixel(x, y float64) (px, py int) {
	return v.pixelX(x), v.pixelY(y)
}
