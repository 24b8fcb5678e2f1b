package raster

import (
	"image/color"

	"softraster/internal/mathutil"
)

// Triangle fills a screen-space triangle with horizontal spans. There is no
// depth test: later calls overwrite earlier ones. A triangle whose vertices
// share one row, or are otherwise collinear, owns no pixels.
func Triangle(fb *FrameBuffer, t0, t1, t2 mathutil.Vec2i, c color.NRGBA) {
	if t0.Y == t1.Y && t0.Y == t2.Y {
		return
	}
	if area2(t0, t1, t2) == 0 {
		return
	}

	// Sort by y so the triangle splits into two halves at t1.
	if t0.Y > t1.Y {
		t0, t1 = t1, t0
	}
	if t0.Y > t2.Y {
		t0, t2 = t2, t0
	}
	if t1.Y > t2.Y {
		t1, t2 = t2, t1
	}

	total := t2.Y - t0.Y
	lower := t1.Y - t0.Y
	upper := t2.Y - t1.Y
	for y := 0; y <= total; y++ {
		second := y > lower || t1.Y == t0.Y

		alpha := float64(y) / float64(total)
		left := t0.Lerp(t2, alpha)

		var right mathutil.Vec2i
		if second {
			right = t1.Lerp(t2, float64(y-lower)/float64(upper))
		} else {
			right = t0.Lerp(t1, float64(y)/float64(lower))
		}
		if left.X > right.X {
			left, right = right, left
		}

		row := t0.Y + y
		if row < 0 || row >= fb.Height {
			continue
		}
		for x := max(left.X, 0); x <= right.X && x < fb.Width; x++ {
			fb.Set(x, row, c)
		}
	}
}

// area2 returns twice the signed area of the triangle.
func area2(t0, t1, t2 mathutil.Vec2i) int {
	e1 := t1.Sub(t0)
	e2 := t2.Sub(t0)
	return e1.X*e2.Y - e1.Y*e2.X
}
