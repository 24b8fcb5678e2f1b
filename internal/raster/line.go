package raster

import (
	"image/color"

	"softraster/internal/mathutil"
)

// Line draws the segment p0→p1 inclusive of both endpoints. It writes exactly
// max(|dx|,|dy|)+1 pixels, one per step along the dominant axis.
func Line(fb *FrameBuffer, p0, p1 mathutil.Vec2i, c color.NRGBA) {
	x0, y0, x1, y1 := p0.X, p0.Y, p1.X, p1.Y

	steep := false
	if mathutil.Abs(x0-x1) < mathutil.Abs(y0-y1) {
		x0, y0 = y0, x0
		x1, y1 = y1, x1
		steep = true
	}
	if x0 > x1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}

	// Both endpoints coincide: the walk below would divide by zero.
	if x0 == x1 {
		plot(fb, x0, y0, steep, c)
		return
	}

	span := float64(x1 - x0)
	for x := x0; x <= x1; x++ {
		t := float64(x-x0) / span
		y := mathutil.Round(float64(y0)*(1-t) + float64(y1)*t)
		plot(fb, x, y, steep, c)
	}
}

func plot(fb *FrameBuffer, x, y int, steep bool, c color.NRGBA) {
	if steep {
		fb.Set(y, x, c)
		return
	}
	fb.Set(x, y, c)
}

// TriangleOutline draws the three edges t0→t1, t1→t2, t2→t0.
func TriangleOutline(fb *FrameBuffer, t0, t1, t2 mathutil.Vec2i, c color.NRGBA) {
	Line(fb, t0, t1, c)
	Line(fb, t1, t2, c)
	Line(fb, t2, t0, c)
}
