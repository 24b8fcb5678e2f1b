package render

import "softraster/internal/mathutil"

// Projector maps the [-1,1] cube onto a Width×Height screen orthographically.
// Nothing is clipped: points outside the cube land outside the screen and the
// rasterizers drop them.
type Projector struct {
	Width  int
	Height int
}

// Project returns (screenX, screenY, depth) with depth passed through.
func (p Projector) Project(v mathutil.Vec3) mathutil.Vec3 {
	return mathutil.Vec3{
		(v[0] + 1) * float64(p.Width) / 2,
		(v[1] + 1) * float64(p.Height) / 2,
		v[2],
	}
}

// ProjectInt returns the nearest integer pixel for the 2D fillers.
func (p Projector) ProjectInt(v mathutil.Vec3) mathutil.Vec2i {
	s := p.Project(v)
	return mathutil.Vec2i{X: int(s[0] + .5), Y: int(s[1] + .5)}
}
