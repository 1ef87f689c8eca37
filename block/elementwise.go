package block

// Add performs element-wise addition: dst[i] = a[i] + b[i].
// Slices must have equal length. Panics if lengths differ.
func Add(dst, a, b []float32) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("block: slice length mismatch")
	}
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

// AddInPlace performs in-place element-wise addition: dst[i] += src[i].
// Slices must have equal length. Panics if lengths differ.
func AddInPlace(dst, src []float32) {
	if len(dst) != len(src) {
		panic("block: slice length mismatch")
	}
	for i := range dst {
		dst[i] += src[i]
	}
}

// Sub performs element-wise subtraction: dst[i] = a[i] - b[i].
// Slices must have equal length. Panics if lengths differ.
func Sub(dst, a, b []float32) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("block: slice length mismatch")
	}
	for i := range dst {
		dst[i] = a[i] - b[i]
	}
}

// Mul performs element-wise multiplication: dst[i] = a[i] * b[i].
// Slices must have equal length. Panics if lengths differ.
func Mul(dst, a, b []float32) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("block: slice length mismatch")
	}
	for i := range dst {
		dst[i] = a[i] * b[i]
	}
}

// MulInPlace performs in-place element-wise multiplication:
// dst[i] *= src[i]. Slices must have equal length. Panics if lengths
// differ.
func MulInPlace(dst, src []float32) {
	if len(dst) != len(src) {
		panic("block: slice length mismatch")
	}
	for i := range dst {
		dst[i] *= src[i]
	}
}

// Scale multiplies each element by a scalar: dst[i] = src[i] * scale.
// Slices must have equal length. Panics if lengths differ.
func Scale(dst, src []float32, scale float32) {
	if len(dst) != len(src) {
		panic("block: slice length mismatch")
	}
	for i := range dst {
		dst[i] = src[i] * scale
	}
}

// ScaleInPlace multiplies each element by a scalar in-place:
// dst[i] *= scale.
func ScaleInPlace(dst []float32, scale float32) {
	for i := range dst {
		dst[i] *= scale
	}
}

// Dot returns the dot product of a and b: sum(a[i] * b[i]).
// Returns 0 if slices are empty or have different lengths.
// Only the minimum length of the two slices is used.
func Dot(a, b []float32) float32 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	if n == 0 {
		return 0
	}

	var sum float32
	for i := 0; i < n; i++ {
		sum += a[i] * b[i]
	}
	return sum
}

// Sum returns the sum of all elements. Returns 0 for an empty slice.
func Sum(src []float32) float32 {
	var sum float32
	for _, v := range src {
		sum += v
	}
	return sum
}

// MaxAbs returns the largest absolute element value. Returns 0 for an
// empty slice.
func MaxAbs(src []float32) float32 {
	var peak float32
	for _, v := range src {
		if v < 0 {
			v = -v
		}
		if v > peak {
			peak = v
		}
	}
	return peak
}
