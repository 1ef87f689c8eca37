package fastmath

import (
	"testing"

	"github.com/cwbudde/algo-fastmath/internal/testutil"
)

func TestVec3Arithmetic(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, -5, 6}

	if got := a.Add(b); got != (Vec3{5, -3, 9}) {
		t.Fatalf("Add = %v, want {5 -3 9}", got)
	}
	if got := a.Sub(b); got != (Vec3{-3, 7, -3}) {
		t.Fatalf("Sub = %v, want {-3 7 -3}", got)
	}
	if got := a.Scale(-1); got != (Vec3{-1, -2, -3}) {
		t.Fatalf("Scale = %v, want {-1 -2 -3}", got)
	}
}

func TestVec3Dot(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, -5, 6}
	if got := a.Dot(b); got != 12 {
		t.Fatalf("Dot = %v, want 12", got)
	}
}

// Right-handed basis: x cross y = z, and cyclic permutations.
func TestVec3CrossBasis(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	z := Vec3{0, 0, 1}

	if got := x.Cross(y); got != z {
		t.Fatalf("x cross y = %v, want %v", got, z)
	}
	if got := y.Cross(z); got != x {
		t.Fatalf("y cross z = %v, want %v", got, x)
	}
	if got := z.Cross(x); got != y {
		t.Fatalf("z cross x = %v, want %v", got, y)
	}
	if got := y.Cross(x); got != (Vec3{0, 0, -1}) {
		t.Fatalf("y cross x = %v, want {0 0 -1}", got)
	}
}

func TestVec3CrossPerpendicular(t *testing.T) {
	xs := testutil.DeterministicFloats(19, -5, 5, 96)
	for i := 0; i+6 <= len(xs); i += 6 {
		a := Vec3{xs[i], xs[i+1], xs[i+2]}
		b := Vec3{xs[i+3], xs[i+4], xs[i+5]}
		c := a.Cross(b)
		testutil.RequireNear(t, c.Dot(a), 0, 1e-3)
		testutil.RequireNear(t, c.Dot(b), 0, 1e-3)
	}
}

func TestVec3Length(t *testing.T) {
	testutil.RequireNear(t, Vec3{2, 3, 6}.Length(), 7, 1e-4)
	if got := (Vec3{}).Length(); got != 0 {
		t.Fatalf("zero vector Length = %v, want 0", got)
	}
}

func TestVec3Normalize(t *testing.T) {
	xs := testutil.DeterministicFloats(23, -100, 100, 96)
	for i := 0; i+3 <= len(xs); i += 3 {
		v := Vec3{xs[i], xs[i+1], xs[i+2]}
		if v.Length() <= Epsilon {
			continue
		}
		testutil.RequireNear(t, v.Normalize().Length(), 1, 1e-3)
	}
}

func TestVec3NormalizeDegenerate(t *testing.T) {
	for _, v := range []Vec3{{}, {Epsilon / 4, 0, 0}, {0, 0, -Epsilon / 4}} {
		if got := v.Normalize(); got != v {
			t.Fatalf("Normalize(%v) = %v, want input unchanged", v, got)
		}
	}
}

func TestVec3DotBilinear(t *testing.T) {
	xs := testutil.DeterministicFloats(29, -10, 10, 90)
	for i := 0; i+9 <= len(xs); i += 9 {
		a := Vec3{xs[i], xs[i+1], xs[i+2]}
		b := Vec3{xs[i+3], xs[i+4], xs[i+5]}
		c := Vec3{xs[i+6], xs[i+7], xs[i+8]}
		testutil.RequireNear(t, a.Add(b).Dot(c), a.Dot(c)+b.Dot(c), 1e-3)
	}
}
