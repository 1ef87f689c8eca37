package fastmath

// Log series coefficients: 2*atanh(z) truncated after the z^7 term, with
// z = (m-1)/(m+1) for a mantissa m in [1, 2). The true series weights are
// 2/3, 2/5 and 2/7 folded into the leading factor of 2.
const (
	logC3 = 0.66666666
	logC5 = 0.4
	logC7 = 0.28571428
)

// expC3 is the 1/6 weight of the cubic term in the e^r Taylor polynomial.
const expC3 = 0.16666666

// Log returns an approximation of the natural logarithm of x. The exponent
// field contributes exponent*Ln2 directly; the mantissa is mapped through a
// short atanh series. Non-positive inputs return negative infinity.
func Log(x float32) float32 {
	if x <= 0 {
		return -Inf()
	}
	b := Bits(x)
	exponent := int32(b>>expShift&0xFF) - expBias
	m := FromBits(b&mantMask | oneBits)

	z := (m - 1) / (m + 1)
	z2 := z * z
	y := z * (2 + z2*(logC3+z2*(logC5+z2*logC7)))
	return float32(exponent)*Ln2 + y
}

// Log2 returns an approximation of the base-2 logarithm of x, computed as
// Log(x)*Log2E. Non-positive inputs return negative infinity.
func Log2(x float32) float32 {
	return Log(x) * Log2E
}

// Exp returns an approximation of e**x. The argument is split into an
// integer power of two and a residual r in [-Ln2/2, Ln2/2]; e^r comes from
// a cubic Taylor polynomial and the power of two is added straight into
// the exponent field. Arguments far outside [-87, 88] wrap the exponent
// field and produce meaningless values rather than 0 or infinity.
func Exp(x float32) float32 {
	px := x * Log2E
	n := Round(px)
	r := (px - n) * Ln2

	r2 := r * r
	f := 1 + r + r2*0.5 + r*r2*expC3
	return FromBits(Bits(f) + uint32(int32(n))<<expShift)
}

// Pow returns an approximation of x**y via Exp(y*Log(x)). The base must be
// positive: x <= 0 returns 0 regardless of y, and y == 0 returns 1.
func Pow(x, y float32) float32 {
	if x <= 0 {
		return 0
	}
	if y == 0 {
		return 1
	}
	return Exp(y * Log(x))
}
