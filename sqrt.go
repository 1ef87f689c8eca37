package fastmath

// invSqrtMagic is the bit-level seed constant for the inverse square root.
// Halving the exponent field and subtracting from this value lands close
// enough to 1/sqrt(x) for a single Newton step to finish the job.
const invSqrtMagic = 0x5f3759df

// InvSqrt returns an approximation of 1/sqrt(x) with a relative error
// below 0.2%, using the bit-shift seed refined by one Newton-Raphson step.
// The caller must pass x > 0; zero and negative inputs produce meaningless
// bit patterns.
func InvSqrt(x float32) float32 {
	xhalf := 0.5 * x
	x = FromBits(invSqrtMagic - Bits(x)>>1)
	return x * (1.5 - xhalf*x*x)
}

// Sqrt returns an approximation of the square root of x, refining
// x*InvSqrt(x) with one Heron step. Non-positive inputs return 0: no real
// root is reported for negative arguments.
func Sqrt(x float32) float32 {
	if x <= 0 {
		return 0
	}
	guess := x * InvSqrt(x)
	return 0.5 * (guess + x/guess)
}

// Hypot returns sqrt(x*x + y*y) without squaring either operand directly.
// The smaller magnitude is divided by the larger before squaring, so the
// result stays finite for operands whose squares would overflow float32.
// Hypot(0, 0) is 0.
func Hypot(x, y float32) float32 {
	x = Abs(x)
	y = Abs(y)
	lo := Min(x, y)
	hi := Max(x, y)
	if hi == 0 {
		return 0
	}
	r := lo / hi
	return hi * Sqrt(1+r*r)
}
