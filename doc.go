// Package fastmath provides fast float32 approximations for the elementary
// math functions, built on IEEE-754 bit manipulation and short polynomials
// instead of the platform math library.
//
// Every function takes and returns float32 and keeps all intermediate
// arithmetic in single precision. The only standard library dependency is
// the pair of bit casts math.Float32bits and math.Float32frombits, which
// compile to plain register moves. This makes the package suitable for hot
// loops in games, DSP, and embedded targets where float64 round trips or
// libm calls are too expensive.
//
// # Accuracy Characteristics
//
// The approximations trade accuracy for speed. Typical worst-case errors
// over the intended argument ranges:
//
// InvSqrt: <0.2% relative error (single Newton step after the bit-level seed)
//
// Sqrt: <0.001% relative error for x ∈ (0, 1e6] (one Heron step on top of [InvSqrt])
//
// Log, Log2: <1e-4 absolute error for x ∈ [1e-3, 1e3]
//
// Exp: <0.1% relative error for x ∈ [-10, 10]
//
// Sin, Cos: <1e-4 absolute error within a few periods of zero
//
// Atan, Atan2: <1e-3 absolute error over the full range
//
// Results an application would normally compare against a tolerance anyway;
// for bit-exact IEEE semantics use the standard math package instead.
//
// # Error Handling
//
// There is no error channel. Functions follow fixed out-of-domain
// conventions instead: [Sqrt] and [Pow] return 0 for non-positive bases,
// [Log] returns negative infinity for non-positive arguments, [Mod] and
// [FloorMod] return 0 when the divisor magnitude falls below [Epsilon].
// NaN and infinity inputs flow through the polynomial pipelines unchecked;
// use [IsNaN] and [IsInf] to guard call sites that may see them.
package fastmath
