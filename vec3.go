package fastmath

// Vec3 is a three-component float32 vector. Methods take value receivers
// and return new values; no operation mutates its receiver.
type Vec3 struct {
	X, Y, Z float32
}

// Add returns the component-wise sum v + w.
func (v Vec3) Add(w Vec3) Vec3 {
	return Vec3{v.X + w.X, v.Y + w.Y, v.Z + w.Z}
}

// Sub returns the component-wise difference v - w.
func (v Vec3) Sub(w Vec3) Vec3 {
	return Vec3{v.X - w.X, v.Y - w.Y, v.Z - w.Z}
}

// Scale returns v with all components multiplied by s.
func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Dot returns the dot product of v and w.
func (v Vec3) Dot(w Vec3) float32 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Cross returns the cross product v × w, perpendicular to both operands
// in a right-handed coordinate system.
func (v Vec3) Cross(w Vec3) Vec3 {
	return Vec3{
		v.Y*w.Z - v.Z*w.Y,
		v.Z*w.X - v.X*w.Z,
		v.X*w.Y - v.Y*w.X,
	}
}

// Length returns the Euclidean length of v, via [Sqrt].
func (v Vec3) Length() float32 {
	return Sqrt(v.Dot(v))
}

// Normalize returns v scaled to approximately unit length. Vectors with
// length at or below [Epsilon] are returned unchanged, so the zero vector
// stays zero instead of dividing into NaN.
func (v Vec3) Normalize() Vec3 {
	length := v.Length()
	if length <= Epsilon {
		return v
	}
	return v.Scale(1 / length)
}
