package fastmath

import "fmt"

func ExampleSqrt() {
	fmt.Printf("%.3f\n", Sqrt(2))
	// Output:
	// 1.414
}

func ExampleInvSqrt() {
	fmt.Printf("%.2f\n", InvSqrt(25))
	// Output:
	// 0.20
}

func ExampleHypot() {
	fmt.Printf("%.2f\n", Hypot(3, 4))
	// Output:
	// 5.00
}

func ExampleSin() {
	fmt.Printf("%.2f %.2f\n", Sin(0), Sin(HalfPi))
	// Output:
	// 0.00 1.00
}

func ExampleAtan2() {
	fmt.Printf("%.4f\n", Atan2(1, 1))
	// Output:
	// 0.7854
}

func ExampleClamp() {
	fmt.Printf("%v %v %v\n", Clamp(-2, 0, 1), Clamp(0.5, 0, 1), Clamp(7, 0, 1))
	// Output:
	// 0 0.5 1
}

func ExampleRound() {
	fmt.Printf("%v %v %v\n", Round(2.4), Round(2.5), Round(-2.5))
	// Output:
	// 2 3 -3
}

func ExampleLerp() {
	fmt.Printf("%v\n", Lerp(0, 100, 0.5))
	// Output:
	// 50
}

func ExampleRemap() {
	fmt.Printf("%v\n", Remap(0, 10, 0, 100, 5))
	// Output:
	// 50
}

func ExampleVec3_Cross() {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	fmt.Println(x.Cross(y))
	// Output:
	// {0 0 1}
}

func ExampleVec2_Normalize() {
	v := Vec2{3, 4}.Normalize()
	fmt.Printf("%.2f %.2f\n", v.X, v.Y)
	// Output:
	// 0.60 0.80
}
