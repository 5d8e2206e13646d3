package text

import (
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Face is a Source at a specific pixel size.
// Face values are lightweight and safe for concurrent use.
type Face struct {
	source *Source
	size   float64
}

// Source returns the font source backing this face.
func (f *Face) Source() *Source { return f.source }

// Size returns the face size in pixels.
func (f *Face) Size() float64 { return f.size }

// ppem returns the face size as fixed-point pixels per em.
func (f *Face) ppem() fixed.Int26_6 {
	return fixed.Int26_6(f.size * 64)
}

// Metrics returns the ascent and descent of the face in pixels.
// Both values are positive; ascent extends above the baseline, descent
// below it.
func (f *Face) Metrics() (ascent, descent float64) {
	buf := f.source.acquireBuffer()
	defer f.source.releaseBuffer(buf)

	m, err := f.source.sfntFont.Metrics(buf, f.ppem(), font.HintingNone)
	if err != nil {
		// Fall back to a conventional split of the em square.
		return f.size * 0.8, f.size * 0.2
	}
	return fixedToFloat(m.Ascent), fixedToFloat(m.Descent)
}

// LineHeight returns the default line height of the face in pixels.
func (f *Face) LineHeight() float64 {
	ascent, descent := f.Metrics()
	return ascent + descent
}

// fixedToFloat converts a 26.6 fixed-point value to float64 pixels.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
