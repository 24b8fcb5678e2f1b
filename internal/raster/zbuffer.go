package raster

import (
	"image/color"
	"math"

	"softraster/internal/mathutil"
)

// degenerateArea is the smallest |cross z| (twice the signed screen area) a
// triangle may have before Barycentric treats it as edge-on.
const degenerateArea = 1e-2

// Barycentric returns the weights of p relative to triangle (a, b, c) using
// only the x and y components. Degenerate triangles yield (-1, 1, 1) so that
// every pixel is rejected.
func Barycentric(a, b, c, p mathutil.Vec3) mathutil.Vec3 {
	u := mathutil.Vec3{c[0] - a[0], b[0] - a[0], a[0] - p[0]}.Cross(
		mathutil.Vec3{c[1] - a[1], b[1] - a[1], a[1] - p[1]})
	if math.Abs(u[2]) < degenerateArea {
		return mathutil.Vec3{-1, 1, 1}
	}
	return mathutil.Vec3{1 - (u[0]+u[1])/u[2], u[1] / u[2], u[0] / u[2]}
}

// TriangleZ fills a triangle given screen x, screen y and depth per vertex.
// A pixel is written when it lies inside the triangle and its interpolated
// depth is strictly greater (nearer) than the stored one; ties keep the
// earlier triangle. Without a z-buffer every inside pixel is written.
func TriangleZ(fb *FrameBuffer, pts [3]mathutil.Vec3, c color.NRGBA) {
	if fb.Width == 0 || fb.Height == 0 {
		return
	}

	lo := pts[0].Min(pts[1]).Min(pts[2])
	hi := pts[0].Max(pts[1]).Max(pts[2])

	// Entirely off-screen on one side.
	if hi[0] < 0 || hi[1] < 0 || lo[0] > float64(fb.Width-1) || lo[1] > float64(fb.Height-1) {
		return
	}

	minX := clampInt(math.Floor(lo[0]), 0, fb.Width-1)
	maxX := clampInt(math.Ceil(hi[0]), 0, fb.Width-1)
	minY := clampInt(math.Floor(lo[1]), 0, fb.Height-1)
	maxY := clampInt(math.Ceil(hi[1]), 0, fb.Height-1)

	for y := minY; y <= maxY; y++ {
		rowOff := y * fb.Width
		for x := minX; x <= maxX; x++ {
			p := mathutil.Vec3{float64(x), float64(y), 0}
			w := Barycentric(pts[0], pts[1], pts[2], p)
			if w[0] < 0 || w[1] < 0 || w[2] < 0 {
				continue
			}

			if fb.ZBuf != nil {
				z := w[0]*pts[0][2] + w[1]*pts[1][2] + w[2]*pts[2][2]
				zIdx := rowOff + x
				if !(z > fb.ZBuf[zIdx]) {
					continue
				}
				fb.ZBuf[zIdx] = z
			}
			fb.Set(x, y, c)
		}
	}
}

func clampInt(v float64, lo, hi int) int {
	if v < float64(lo) {
		return lo
	}
	if v > float64(hi) {
		return hi
	}
	return int(v)
}
