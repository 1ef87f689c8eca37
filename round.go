package fastmath

// noFractLimit is 2^23. Float32 values at or beyond this magnitude have no
// fractional part, so the rounding functions return them unchanged. The
// guard also keeps the int32 truncation below in range.
const noFractLimit = 1 << 23

// Floor returns the largest integer value less than or equal to x.
func Floor(x float32) float32 {
	if Abs(x) >= noFractLimit {
		return x
	}
	i := int32(x)
	if x < 0 && x != float32(i) {
		return float32(i - 1)
	}
	return float32(i)
}

// Ceil returns the smallest integer value greater than or equal to x.
func Ceil(x float32) float32 {
	if Abs(x) >= noFractLimit {
		return x
	}
	i := int32(x)
	if x > 0 && x != float32(i) {
		return float32(i + 1)
	}
	return float32(i)
}

// Round returns x rounded to the nearest integer, with halfway cases
// rounded away from zero: Round(2.5) is 3, Round(-2.5) is -3.
func Round(x float32) float32 {
	if x >= 0 {
		return Floor(x + 0.5)
	}
	return Ceil(x - 0.5)
}

// Fract returns the fractional part x - Floor(x), always in [0, 1):
// Fract(1.25) is 0.25 and Fract(-1.25) is 0.75.
func Fract(x float32) float32 {
	return x - Floor(x)
}

// Mod returns the remainder of x/y with the quotient truncated toward
// zero, matching the C fmod convention: the result keeps the sign of x.
// Divisors with magnitude below [Epsilon] yield 0. The quotient must fit
// in an int32.
func Mod(x, y float32) float32 {
	if Abs(y) < Epsilon {
		return 0
	}
	return x - y*float32(int32(x/y))
}

// FloorMod returns the remainder of x/y with the quotient rounded toward
// negative infinity: the result keeps the sign of y, which makes it the
// natural choice for wrapping angles and indices. Divisors with magnitude
// below [Epsilon] yield 0.
func FloorMod(x, y float32) float32 {
	if Abs(y) < Epsilon {
		return 0
	}
	return x - y*Floor(x/y)
}
