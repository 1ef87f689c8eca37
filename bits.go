package fastmath

import "math"

// IEEE-754 single precision layout: 1 sign bit, 8 exponent bits, 23
// mantissa bits.
const (
	signMask = 0x80000000
	expMask  = 0x7F800000
	mantMask = 0x007FFFFF

	expShift = 23
	expBias  = 127

	// oneBits is the representation of 1.0, used to pin a mantissa into
	// the interval [1, 2).
	oneBits = 0x3F800000
)

// Bits returns the IEEE-754 binary representation of f with the sign bit in
// bit 31, the exponent in bits 30..23 and the mantissa in bits 22..0.
func Bits(f float32) uint32 {
	return math.Float32bits(f)
}

// FromBits returns the float32 whose IEEE-754 binary representation is b.
func FromBits(b uint32) float32 {
	return math.Float32frombits(b)
}

// SignBit reports whether f carries a negative sign, including -0 and
// negative NaN patterns.
func SignBit(f float32) bool {
	return Bits(f)&signMask != 0
}

// IsNaN reports whether f is a not-a-number value: exponent bits all set
// and a non-zero mantissa.
func IsNaN(f float32) bool {
	b := Bits(f)
	return b&expMask == expMask && b&mantMask != 0
}

// IsInf reports whether f is an infinity of either sign: exponent bits all
// set and a zero mantissa.
func IsInf(f float32) bool {
	return Bits(f)&^signMask == expMask
}
