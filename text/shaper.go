package text

import (
	"sync"

	"github.com/go-text/typesetting/di"
	gtfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
)

// ShapedGlyph is a positioned glyph produced by shaping.
// Offsets and advances are in pixels, relative to the pen position on the
// baseline.
type ShapedGlyph struct {
	GID      uint32
	XAdvance float64
	YAdvance float64
	XOffset  float64
	YOffset  float64
}

// shaperPool pools HarfbuzzShaper instances. HarfbuzzShaper has internal
// mutable state and is not safe for concurrent use, but reusing instances
// across sequential calls avoids repeated buffer allocation.
var shaperPool = sync.Pool{
	New: func() any {
		return &shaping.HarfbuzzShaper{}
	},
}

// Shape converts a string into positioned glyphs using HarfBuzz shaping.
// This applies kerning and ligature substitution, and supports
// right-to-left scripts: the paragraph direction is resolved with the
// Unicode bidi algorithm and the returned glyphs are in visual order.
func Shape(s string, face *Face) []ShapedGlyph {
	if s == "" || face == nil {
		return nil
	}

	runes := []rune(s)
	dir := resolveDirection(s)

	// gtfont.Face is not safe for concurrent use; it is a cheap wrapper
	// around the thread-safe *Font, so each call gets its own instance.
	gtFace := gtfont.NewFace(face.source.shaped)

	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: dir,
		Face:      gtFace,
		Size:      face.ppem(),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	hb := shaperPool.Get().(*shaping.HarfbuzzShaper)
	output := hb.Shape(input)
	shaperPool.Put(hb)

	glyphs := make([]ShapedGlyph, len(output.Glyphs))
	for i, g := range output.Glyphs {
		glyphs[i] = ShapedGlyph{
			GID:      uint32(g.GlyphID),
			XAdvance: fixedToFloat(g.XAdvance),
			YAdvance: fixedToFloat(g.YAdvance),
			XOffset:  fixedToFloat(g.XOffset),
			YOffset:  fixedToFloat(g.YOffset),
		}
	}
	return glyphs
}

// detectScript inspects the runes and returns the script of the first
// non-space character. This is a simple heuristic; for mixed-script text,
// callers should split runs by script before shaping.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// mapDirection converts a bidi run level to a shaping direction.
func mapDirection(rtl bool) di.Direction {
	if rtl {
		return di.DirectionRTL
	}
	return di.DirectionLTR
}
