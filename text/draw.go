package text

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/vector"
)

// Draw renders a string to a destination image.
// Position (x, y) is the baseline origin: x is the left edge of the first
// glyph, y the baseline row. Glyph coverage is blended onto dst with
// source-over compositing; pixels outside dst are clipped.
func Draw(dst draw.Image, s string, face *Face, x, y float64, col color.Color) {
	if s == "" || face == nil {
		return
	}

	glyphs := Shape(s, face)

	buf := face.source.acquireBuffer()
	defer face.source.releaseBuffer(buf)

	penX := x
	for _, g := range glyphs {
		drawGlyph(dst, face, buf, g.GID, penX+g.XOffset, y-g.YOffset, col)
		penX += g.XAdvance
	}
}

// Measure returns the dimensions of a string.
// Width is the total horizontal advance, height the face line height.
func Measure(s string, face *Face) (width, height float64) {
	if s == "" || face == nil {
		return 0, 0
	}
	for _, g := range Shape(s, face) {
		width += g.XAdvance
	}
	return width, face.LineHeight()
}

// drawGlyph rasterizes a single glyph outline at the given baseline
// origin and blends it onto dst.
func drawGlyph(dst draw.Image, face *Face, buf *sfnt.Buffer, gid uint32, ox, oy float64, col color.Color) {
	segs, err := face.source.sfntFont.LoadGlyph(buf, sfnt.GlyphIndex(gid), face.ppem(), nil)
	if err != nil || len(segs) == 0 {
		// Glyphs without outlines (spaces) simply advance the pen.
		return
	}

	minX, minY, maxX, maxY := segmentBounds(segs)
	// Glyph bounding box in destination pixels, rounded outward.
	x0 := int(math.Floor(ox + minX))
	y0 := int(math.Floor(oy + minY))
	x1 := int(math.Ceil(ox+maxX)) + 1
	y1 := int(math.Ceil(oy+maxY)) + 1
	w := x1 - x0
	h := y1 - y0
	if w <= 0 || h <= 0 {
		return
	}

	// Rasterize in glyph-local space, then blend the alpha mask at
	// (x0, y0). Segment coordinates are y-down pixels relative to the
	// glyph origin on the baseline.
	z := vector.NewRasterizer(w, h)
	dx := float32(ox - float64(x0))
	dy := float32(oy - float64(y0))
	for _, seg := range segs {
		p0 := segPoint(seg, 0)
		p1 := segPoint(seg, 1)
		p2 := segPoint(seg, 2)
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			z.MoveTo(dx+p0[0], dy+p0[1])
		case sfnt.SegmentOpLineTo:
			z.LineTo(dx+p0[0], dy+p0[1])
		case sfnt.SegmentOpQuadTo:
			z.QuadTo(dx+p0[0], dy+p0[1], dx+p1[0], dy+p1[1])
		case sfnt.SegmentOpCubeTo:
			z.CubeTo(dx+p0[0], dy+p0[1], dx+p1[0], dy+p1[1], dx+p2[0], dy+p2[1])
		}
	}
	z.ClosePath()

	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	blendMask(dst, mask, x0, y0, col)
}

// segmentBounds returns the bounding box of the segment control points.
// Control points bound their curves, so this is conservative.
func segmentBounds(segs sfnt.Segments) (minX, minY, maxX, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, seg := range segs {
		n := 1
		switch seg.Op {
		case sfnt.SegmentOpQuadTo:
			n = 2
		case sfnt.SegmentOpCubeTo:
			n = 3
		}
		for i := 0; i < n; i++ {
			p := segPoint(seg, i)
			minX = math.Min(minX, float64(p[0]))
			minY = math.Min(minY, float64(p[1]))
			maxX = math.Max(maxX, float64(p[0]))
			maxY = math.Max(maxY, float64(p[1]))
		}
	}
	return minX, minY, maxX, maxY
}

// segPoint converts a fixed-point segment argument to float32 pixels.
func segPoint(seg sfnt.Segment, i int) [2]float32 {
	return [2]float32{
		float32(seg.Args[i].X) / 64,
		float32(seg.Args[i].Y) / 64,
	}
}

// blendMask composites a colored alpha mask onto dst at (x0, y0) using
// source-over blending. dst pixels outside bounds are skipped.
func blendMask(dst draw.Image, mask *image.Alpha, x0, y0 int, col color.Color) {
	bounds := dst.Bounds()
	cr, cg, cb, _ := col.RGBA()

	for j := 0; j < mask.Rect.Dy(); j++ {
		y := y0 + j
		if y < bounds.Min.Y || y >= bounds.Max.Y {
			continue
		}
		for i := 0; i < mask.Rect.Dx(); i++ {
			a := mask.AlphaAt(i, j).A
			if a == 0 {
				continue
			}
			x := x0 + i
			if x < bounds.Min.X || x >= bounds.Max.X {
				continue
			}
			if a == 255 {
				dst.Set(x, y, col)
				continue
			}

			er, eg, eb, ea := dst.At(x, y).RGBA()
			alpha := uint32(a)
			inv := 255 - alpha
			dst.Set(x, y, color.RGBA64{
				R: uint16((cr*alpha + er*inv) / 255),
				G: uint16((cg*alpha + eg*inv) / 255),
				B: uint16((cb*alpha + eb*inv) / 255),
				A: uint16((0xffff*alpha + ea*inv) / 255),
			})
		}
	}
}
