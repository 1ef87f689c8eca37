package fastmath

// Step returns 0 for x < edge and 1 otherwise.
func Step(edge, x float32) float32 {
	if x < edge {
		return 0
	}
	return 1
}

// Lerp linearly interpolates between a and b by the factor t, computed as
// (1-t)*a + t*b so that t=0 yields exactly a and t=1 yields exactly b.
// The factor is not clamped; values outside [0, 1] extrapolate.
func Lerp(a, b, t float32) float32 {
	return (1-t)*a + t*b
}

// InvLerp returns where v sits between a and b as a factor, the inverse of
// [Lerp]: InvLerp(a, b, Lerp(a, b, t)) recovers t up to rounding. A
// degenerate range a == b divides by zero into an infinity or NaN.
func InvLerp(a, b, v float32) float32 {
	return (v - a) / (b - a)
}

// Remap maps v from the range [inMin, inMax] to [outMin, outMax], with
// values outside the input range extrapolating linearly.
func Remap(inMin, inMax, outMin, outMax, v float32) float32 {
	return Lerp(outMin, outMax, InvLerp(inMin, inMax, v))
}

// Smoothstep returns the cubic Hermite ramp 3t^2 - 2t^3 of the position of
// x between the two edges, clamped to [0, 1]. The curve has zero first
// derivative at both edges.
func Smoothstep(edge0, edge1, x float32) float32 {
	t := Clamp((x-edge0)/(edge1-edge0), 0, 1)
	return t * t * (3 - 2*t)
}

// Smootherstep returns the quintic ramp 6t^5 - 15t^4 + 10t^3 of the
// position of x between the two edges, clamped to [0, 1]. Both the first
// and second derivatives vanish at the edges.
func Smootherstep(edge0, edge1, x float32) float32 {
	t := Clamp((x-edge0)/(edge1-edge0), 0, 1)
	return t * t * t * (t*(t*6-15) + 10)
}
