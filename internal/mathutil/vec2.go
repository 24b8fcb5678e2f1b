package mathutil

// Vec2i is an integer screen position.
type Vec2i struct {
	X, Y int
}

func (a Vec2i) Add(b Vec2i) Vec2i {
	return Vec2i{a.X + b.X, a.Y + b.Y}
}

func (a Vec2i) Sub(b Vec2i) Vec2i {
	return Vec2i{a.X - b.X, a.Y - b.Y}
}

// Lerp returns a + (b-a)*t rounded to the nearest pixel.
func (a Vec2i) Lerp(b Vec2i, t float64) Vec2i {
	return Vec2i{
		a.X + Round(float64(b.X-a.X)*t),
		a.Y + Round(float64(b.Y-a.Y)*t),
	}
}

// Round rounds half away from zero and converts to int.
func Round(f float64) int {
	if f < 0 {
		return -int(-f + 0.5)
	}
	return int(f + 0.5)
}

// Abs returns |v|.
func Abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
