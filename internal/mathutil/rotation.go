package mathutil

import "math"

// RotX returns a 3×3 rotation matrix around the X axis. Angle in radians.
func RotX(a float64) Mat3 {
	c, s := math.Cos(a), math.Sin(a)
	return Mat3{
		1, 0, 0,
		0, c, -s,
		0, s, c,
	}
}

// RotY returns a 3×3 rotation matrix around the Y axis.
func RotY(a float64) Mat3 {
	c, s := math.Cos(a), math.Sin(a)
	return Mat3{
		c, 0, s,
		0, 1, 0,
		-s, 0, c,
	}
}

// Deg2Rad converts degrees to radians.
func Deg2Rad(d float64) float64 {
	return d * math.Pi / 180
}

// ViewRotation builds the model turn applied before projection: yaw around Y,
// then pitch around X. Both angles are in degrees.
func ViewRotation(yaw, pitch float64) Mat3 {
	if yaw == 0 && pitch == 0 {
		return Mat3Identity()
	}
	return Mat3Mul(RotX(Deg2Rad(pitch)), RotY(Deg2Rad(yaw)))
}
