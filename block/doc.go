// Package block applies the fastmath kernel to float32 slices.
//
// Element-wise operations (Add, Mul, Scale, ...) require all slices to
// have equal length and panic on mismatch; the panic is a programmer
// error, not a runtime condition to recover from. Mapped operations
// (Sqrt, Sin, Exp, ...) evaluate the corresponding fastmath function per
// element and inherit its domain conventions unchanged.
//
// All functions accept dst == src for in-place use where an explicit
// InPlace variant is not provided. No function allocates.
package block
