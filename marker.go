package scatter

// fillDisc paints a filled circular marker centered at (cx, cy) into the
// pixmap. The disc is clipped against the pixmap bounds; radius 0
// degenerates to a single pixel. Overlapping markers overwrite whatever
// was drawn before them, so draw order is sample order.
func fillDisc(p *Pixmap, cx, cy, radius int, c RGBA) {
	if radius <= 0 {
		p.SetPixel(cx, cy, c)
		return
	}

	r2 := radius * radius
	for dy := -radius; dy <= radius; dy++ {
		y := cy + dy
		if y < 0 || y >= p.Height() {
			continue
		}
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy > r2 {
				continue
			}
			p.SetPixel(cx+dx, y, c)
		}
	}
}
