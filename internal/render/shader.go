package render

import (
	"image/color"

	"softraster/internal/mathutil"
)

// Shade computes the flat intensity of a face lit from direction light.
// The normal is (v2-v0) × (v1-v0), normalized. The face is visible only when
// the intensity is strictly positive; degenerate faces have a zero normal and
// are therefore never visible.
func Shade(v0, v1, v2, light mathutil.Vec3) (intensity float64, visible bool) {
	n := v2.Sub(v0).Cross(v1.Sub(v0)).Normalize()
	intensity = n.Dot(light)
	return intensity, intensity > 0
}

// FaceColor returns the opaque grey for a shaded face.
func FaceColor(intensity float64) color.NRGBA {
	v := intensity * 255
	switch {
	case v < 0:
		v = 0
	case v > 255:
		v = 255
	}
	g := uint8(v)
	return color.NRGBA{g, g, g, 255}
}
