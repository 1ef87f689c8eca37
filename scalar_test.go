package fastmath

import (
	"testing"

	"github.com/cwbudde/algo-fastmath/internal/testutil"
)

func TestAbs(t *testing.T) {
	tests := []struct {
		name string
		x    float32
		want float32
	}{
		{"negative", -10.5, 10.5},
		{"positive", 3.25, 3.25},
		{"zero", 0, 0},
		{"negative infinity", -Inf(), Inf()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Abs(tt.x); got != tt.want {
				t.Fatalf("Abs(%v) = %v, want %v", tt.x, got, tt.want)
			}
		})
	}
}

func TestAbsNegativeZero(t *testing.T) {
	got := Abs(FromBits(0x80000000))
	if Bits(got) != 0 {
		t.Fatalf("Abs(-0) has bits %#08x, want 0x00000000", Bits(got))
	}
}

func TestAbsNaN(t *testing.T) {
	got := Abs(FromBits(0xFFC00001))
	if !IsNaN(got) {
		t.Fatalf("Abs(NaN) = %v, want NaN", got)
	}
	if SignBit(got) {
		t.Fatal("Abs(NaN) kept the sign bit")
	}
}

func TestMinMax(t *testing.T) {
	tests := []struct {
		name    string
		a, b    float32
		wantMin float32
		wantMax float32
	}{
		{"ordered", 1, 2, 1, 2},
		{"reversed", 2, 1, 1, 2},
		{"equal", 3, 3, 3, 3},
		{"negative", -5, -2, -5, -2},
		{"mixed signs", -1, 1, -1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Min(tt.a, tt.b); got != tt.wantMin {
				t.Fatalf("Min(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.wantMin)
			}
			if got := Max(tt.a, tt.b); got != tt.wantMax {
				t.Fatalf("Max(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.wantMax)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name    string
		x       float32
		lo, hi  float32
		want    float32
	}{
		{"inside", 5, 0, 10, 5},
		{"below", -5, 0, 10, 0},
		{"above", 15, 0, 10, 10},
		{"at lower bound", 0, 0, 10, 0},
		{"at upper bound", 10, 0, 10, 10},
		{"negative range", -7, -10, -5, -7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.x, tt.lo, tt.hi); got != tt.want {
				t.Fatalf("Clamp(%v, %v, %v) = %v, want %v", tt.x, tt.lo, tt.hi, got, tt.want)
			}
		})
	}
}

// Both bound comparisons fail for NaN, so it passes through instead of
// collapsing to a bound.
func TestClampNaN(t *testing.T) {
	if got := Clamp(NaN(), -1, 1); !IsNaN(got) {
		t.Fatalf("Clamp(NaN, -1, 1) = %v, want NaN", got)
	}
}

func TestClampIdempotent(t *testing.T) {
	const lo, hi = -2.5, 7.25
	for _, x := range testutil.DeterministicFloats(17, -50, 50, 256) {
		once := Clamp(x, lo, hi)
		if once < lo || once > hi {
			t.Fatalf("Clamp(%v, %v, %v) = %v out of range", x, lo, hi, once)
		}
		if twice := Clamp(once, lo, hi); twice != once {
			t.Fatalf("Clamp not idempotent at %v: %v then %v", x, once, twice)
		}
	}
}

func TestSign(t *testing.T) {
	tests := []struct {
		name string
		x    float32
		want float32
	}{
		{"positive", 7, 1},
		{"small positive", 0.1, 1},
		{"negative", -0.1, -1},
		{"zero", 0, 0},
		{"negative zero", FromBits(0x80000000), 0},
		{"NaN", NaN(), 0},
		{"positive infinity", Inf(), 1},
		{"negative infinity", -Inf(), -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sign(tt.x); got != tt.want {
				t.Fatalf("Sign(%v) = %v, want %v", tt.x, got, tt.want)
			}
		})
	}
}

func TestCopysign(t *testing.T) {
	tests := []struct {
		name string
		x, y float32
		want float32
	}{
		{"positive to negative", 3, -1, -3},
		{"negative to positive", -3, 1, 3},
		{"already negative", -3, -5, -3},
		{"sign of negative zero", 3, FromBits(0x80000000), -3},
		{"sign of positive zero", -3, 0, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Copysign(tt.x, tt.y); got != tt.want {
				t.Fatalf("Copysign(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestCopysignZeroMagnitude(t *testing.T) {
	got := Copysign(0, -1)
	if Bits(got) != 0x80000000 {
		t.Fatalf("Copysign(0, -1) has bits %#08x, want 0x80000000", Bits(got))
	}
}

func TestNear(t *testing.T) {
	tests := []struct {
		name   string
		a, b   float32
		tol    float32
		want   bool
	}{
		{"within", 1.0, 1.0005, 1e-3, true},
		{"outside", 1.0, 1.002, 1e-3, false},
		{"exact", 2.5, 2.5, 0, true},
		{"at tolerance", 1.0, 1.5, 0.5, true},
		{"NaN left", NaN(), 1, 1e30, false},
		{"NaN right", 1, NaN(), 1e30, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Near(tt.a, tt.b, tt.tol); got != tt.want {
				t.Fatalf("Near(%v, %v, %v) = %v, want %v", tt.a, tt.b, tt.tol, got, tt.want)
			}
		})
	}
}
