package block

import fastmath "github.com/cwbudde/algo-fastmath"

// Abs writes the absolute value of each source element:
// dst[i] = |src[i]|. Slices must have equal length. Panics if lengths
// differ.
func Abs(dst, src []float32) {
	if len(dst) != len(src) {
		panic("block: slice length mismatch")
	}
	for i := range dst {
		dst[i] = fastmath.Abs(src[i])
	}
}

// Sqrt maps fastmath.Sqrt over src. Non-positive elements become 0,
// matching the scalar convention. Panics if lengths differ.
func Sqrt(dst, src []float32) {
	if len(dst) != len(src) {
		panic("block: slice length mismatch")
	}
	for i := range dst {
		dst[i] = fastmath.Sqrt(src[i])
	}
}

// InvSqrt maps fastmath.InvSqrt over src. All elements must be positive;
// the scalar contract is per element. Panics if lengths differ.
func InvSqrt(dst, src []float32) {
	if len(dst) != len(src) {
		panic("block: slice length mismatch")
	}
	for i := range dst {
		dst[i] = fastmath.InvSqrt(src[i])
	}
}

// Sin maps fastmath.Sin over src. Panics if lengths differ.
func Sin(dst, src []float32) {
	if len(dst) != len(src) {
		panic("block: slice length mismatch")
	}
	for i := range dst {
		dst[i] = fastmath.Sin(src[i])
	}
}

// Cos maps fastmath.Cos over src. Panics if lengths differ.
func Cos(dst, src []float32) {
	if len(dst) != len(src) {
		panic("block: slice length mismatch")
	}
	for i := range dst {
		dst[i] = fastmath.Cos(src[i])
	}
}

// Exp maps fastmath.Exp over src. Panics if lengths differ.
func Exp(dst, src []float32) {
	if len(dst) != len(src) {
		panic("block: slice length mismatch")
	}
	for i := range dst {
		dst[i] = fastmath.Exp(src[i])
	}
}

// Log maps fastmath.Log over src. Non-positive elements become negative
// infinity, matching the scalar convention. Panics if lengths differ.
func Log(dst, src []float32) {
	if len(dst) != len(src) {
		panic("block: slice length mismatch")
	}
	for i := range dst {
		dst[i] = fastmath.Log(src[i])
	}
}

// Clamp constrains each source element to [lo, hi]:
// dst[i] = Clamp(src[i], lo, hi). Panics if lengths differ.
func Clamp(dst, src []float32, lo, hi float32) {
	if len(dst) != len(src) {
		panic("block: slice length mismatch")
	}
	for i := range dst {
		dst[i] = fastmath.Clamp(src[i], lo, hi)
	}
}

// Lerp interpolates element-wise between a and b by the shared factor t:
// dst[i] = Lerp(a[i], b[i], t). Slices must have equal length. Panics if
// lengths differ.
func Lerp(dst, a, b []float32, t float32) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("block: slice length mismatch")
	}
	for i := range dst {
		dst[i] = fastmath.Lerp(a[i], b[i], t)
	}
}
