package testutil

import (
	"math"
	"math/rand"
)

// UniformGrid returns n evenly spaced samples covering [lo, hi] inclusive.
// The spacing is computed in float64 so long grids do not drift.
func UniformGrid(lo, hi float32, n int) []float32 {
	out := make([]float32, n)
	if n == 1 {
		out[0] = lo
		return out
	}
	step := (float64(hi) - float64(lo)) / float64(n-1)
	for i := range out {
		out[i] = float32(float64(lo) + step*float64(i))
	}
	return out
}

// LogGrid returns n geometrically spaced samples covering [lo, hi]
// inclusive. Both bounds must be positive.
func LogGrid(lo, hi float32, n int) []float32 {
	out := make([]float32, n)
	if n == 1 {
		out[0] = lo
		return out
	}
	ratio := math.Log(float64(hi) / float64(lo))
	for i := range out {
		frac := float64(i) / float64(n-1)
		out[i] = float32(float64(lo) * math.Exp(ratio*frac))
	}
	return out
}

// DeterministicFloats returns n uniform samples in [lo, hi) drawn from a
// fixed-seed generator for reproducibility.
func DeterministicFloats(seed int64, lo, hi float32, n int) []float32 {
	out := make([]float32, n)
	rng := rand.New(rand.NewSource(seed))
	span := float64(hi) - float64(lo)
	for i := range out {
		out[i] = float32(float64(lo) + rng.Float64()*span)
	}
	return out
}
