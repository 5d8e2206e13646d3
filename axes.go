package scatter

import (
	"math"
	"strconv"

	"github.com/gogpu/scatter/text"
)

// niceStep rounds a raw tick step up to the nearest value of the form
// 1, 2 or 5 times a power of ten.
func niceStep(raw float64) float64 {
	if raw <= 0 || math.IsInf(raw, 0) || math.IsNaN(raw) {
		return 1
	}
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	switch frac := raw / mag; {
	case frac <= 1:
		return mag
	case frac <= 2:
		return 2 * mag
	case frac <= 5:
		return 5 * mag
	default:
		return 10 * mag
	}
}

// ticks returns tick positions covering [lo, hi] at a nice step, aiming
// for roughly target ticks. Positions outside [lo, hi] are excluded.
// A range with non-finite or overflowing bounds yields no ticks.
func ticks(lo, hi float64, target int) []float64 {
	if !isFinite(lo) || !isFinite(hi) || !isFinite(hi-lo) {
		return nil
	}
	if target < 2 {
		target = 2
	}
	step := niceStep((hi - lo) / float64(target-1))

	first := math.Ceil(lo/step) * step
	var out []float64
	// Walk by index rather than accumulating to keep positions exact
	// across repeated renders. The progress check ends the walk if the
	// step is too small to move the position in float64.
	last := math.Inf(-1)
	for i := 0; ; i++ {
		v := first + float64(i)*step
		if v > hi+step*1e-9 || v <= last {
			break
		}
		last = v
		// Snap near-zero ticks so labels read "0" rather than "1.2e-16".
		if math.Abs(v) < step*1e-9 {
			v = 0
		}
		out = append(out, v)
	}
	return out
}

// tickLabel formats a tick value with just enough precision for its step.
func tickLabel(v, step float64) string {
	if step >= 1 || step <= 0 {
		abs := math.Abs(v)
		if abs >= 1e7 || (abs > 0 && abs < 1e-4) {
			return strconv.FormatFloat(v, 'g', 4, 64)
		}
		return strconv.FormatFloat(v, 'f', 0, 64)
	}

	decimals := int(math.Ceil(-math.Log10(step)))
	if decimals > 10 {
		return strconv.FormatFloat(v, 'g', 4, 64)
	}
	return strconv.FormatFloat(v, 'f', decimals, 64)
}

// hline draws a horizontal pixel run, clipped by the pixmap.
func hline(p *Pixmap, x0, x1, y int, c RGBA) {
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	for x := x0; x <= x1; x++ {
		p.SetPixel(x, y, c)
	}
}

// vline draws a vertical pixel run, clipped by the pixmap.
func vline(p *Pixmap, x, y0, y1 int, c RGBA) {
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	for y := y0; y <= y1; y++ {
		p.SetPixel(x, y, c)
	}
}

const tickMarkLength = 4

// drawMesh draws the grid lines, frame, tick marks and tick labels for
// the plot area. The frame is drawn after the grid so grid lines never
// overpaint it; markers are drawn later still and win over everything.
func drawMesh(p *Pixmap, v viewport, st style, face *text.Face) {
	xTicks := ticks(v.rng.XMin, v.rng.XMax, st.targetTicks)
	yTicks := ticks(v.rng.YMin, v.rng.YMax, st.targetTicks)
	xStep := tickStep(xTicks)
	yStep := tickStep(yTicks)

	// Grid mesh.
	for _, t := range xTicks {
		vline(p, v.pixelX(t), v.y0, v.y1, st.gridColor)
	}
	for _, t := range yTicks {
		hline(p, v.x0, v.x1, v.pixelY(t), st.gridColor)
	}

	// Frame.
	hline(p, v.x0, v.x1, v.y0, st.frameColor)
	hline(p, v.x0, v.x1, v.y1, st.frameColor)
	vline(p, v.x0, v.y0, v.y1, st.frameColor)
	vline(p, v.x1, v.y0, v.y1, st.frameColor)

	// Tick marks and labels.
	ascent, _ := face.Metrics()
	for _, t := range xTicks {
		px := v.pixelX(t)
		vline(p, px, v.y1+1, v.y1+tickMarkLength, st.frameColor)

		label := tickLabel(t, xStep)
		w, _ := text.Measure(label, face)
		text.Draw(p, label, face,
			float64(px)-w/2,
			float64(v.y1+tickMarkLength)+2+ascent,
			st.labelColor.Color())
	}
	for _, t := range yTicks {
		py := v.pixelY(t)
		hline(p, v.x0-tickMarkLength, v.x0-1, py, st.frameColor)

		label := tickLabel(t, yStep)
		w, _ := text.Measure(label, face)
		text.Draw(p, label, face,
			float64(v.x0-tickMarkLength)-4-w,
			float64(py)+ascent/2,
			st.labelColor.Color())
	}
}

// tickStep returns the spacing of a tick list, or 0 for fewer than two
// ticks.
func tickStep(ts []float64) float64 {
	if len(ts) < 2 {
		return 0
	}
	return ts[1] - ts[0]
}
