package fastmath

// Mathematical constants rounded to the nearest float32.
const (
	Pi     float32 = 3.14159265358979323846
	Tau    float32 = 6.28318530717958647692
	HalfPi float32 = 1.57079632679489661923
	E      float32 = 2.71828182845904523536
	Sqrt2  float32 = 1.41421356237309504880

	// Ln2 and Log2E convert between natural and base-2 exponents.
	Ln2   float32 = 0.69314718056
	Log2E float32 = 1.44269504088

	// Epsilon is the difference between 1 and the next larger float32.
	Epsilon float32 = 1.19209290e-7
)

// Inf returns positive infinity. The value is produced by arithmetic
// overflow so the package stays free of platform math constants.
func Inf() float32 {
	huge := float32(1e30)
	return huge * huge
}

// NaN returns a quiet not-a-number.
func NaN() float32 {
	return Inf() * 0
}
