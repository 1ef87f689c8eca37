package fastmath

// Vec2 is a two-component float32 vector. Methods take value receivers and
// return new values; no operation mutates its receiver.
type Vec2 struct {
	X, Y float32
}

// Add returns the component-wise sum v + w.
func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{v.X + w.X, v.Y + w.Y}
}

// Sub returns the component-wise difference v - w.
func (v Vec2) Sub(w Vec2) Vec2 {
	return Vec2{v.X - w.X, v.Y - w.Y}
}

// Scale returns v with both components multiplied by s.
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Dot returns the dot product of v and w.
func (v Vec2) Dot(w Vec2) float32 {
	return v.X*w.X + v.Y*w.Y
}

// Length returns the Euclidean length of v, via [Sqrt].
func (v Vec2) Length() float32 {
	return Sqrt(v.Dot(v))
}

// Normalize returns v scaled to approximately unit length. Vectors with
// length at or below [Epsilon] are returned unchanged, so the zero vector
// stays zero instead of dividing into NaN.
func (v Vec2) Normalize() Vec2 {
	length := v.Length()
	if length <= Epsilon {
		return v
	}
	return v.Scale(1 / length)
}
