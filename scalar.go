package fastmath

// Abs returns the absolute value of x, computed by clearing the sign bit.
// Abs(-0) is +0; NaN inputs keep their payload with the sign cleared.
func Abs(x float32) float32 {
	return FromBits(Bits(x) &^ signMask)
}

// Min returns the smaller of a and b. When either operand is NaN the
// comparison fails and b is returned; there is no NaN special-casing.
func Min(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a and b. When either operand is NaN the
// comparison fails and b is returned; there is no NaN special-casing.
func Max(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// Clamp constrains x to the range [lo, hi]. The bounds are not validated;
// callers must pass lo <= hi. A NaN input fails both comparisons and comes
// back unchanged.
func Clamp(x, lo, hi float32) float32 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Sign returns +1 for positive x, -1 for negative x and 0 otherwise.
// Both zeroes and NaN map to 0.
func Sign(x float32) float32 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// Copysign returns a value with the magnitude of x and the sign bit of y.
func Copysign(x, y float32) float32 {
	return FromBits(Bits(x)&^signMask | Bits(y)&signMask)
}

// Near reports whether a and b differ by at most tol. A NaN on either side
// makes the difference NaN and the comparison false.
func Near(a, b, tol float32) bool {
	return Abs(a-b) <= tol
}
