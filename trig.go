package fastmath

// Sine polynomial: sin(x)/x = 1 + sinC2*x^2 + ... + sinC8*x^8, minimax
// fitted on [-Pi/2, Pi/2].
const (
	sinC2 = -0.1666666664
	sinC4 = 0.0083333315
	sinC6 = -0.0001984090
	sinC8 = 0.0000027526
)

// Arctangent polynomial: atan(x)/x in even powers up to x^10, valid on
// [-1, 1]; larger arguments go through the 1/x complement identity.
const (
	atanC0  = 0.99997726
	atanC2  = -0.33262347
	atanC4  = 0.19354346
	atanC6  = -0.11643287
	atanC8  = 0.05265332
	atanC10 = -0.01172120
)

// Sin returns an approximation of the sine of x (in radians). The argument
// is reduced to [-Pi, Pi] by subtracting whole turns, reflected into
// [-Pi/2, Pi/2], and fed to a degree-9 odd polynomial. Accuracy degrades
// with the magnitude of x as the reduction step loses low bits; within a
// few periods of zero the absolute error stays below 1e-4.
func Sin(x float32) float32 {
	q := Round(x * (1 / Tau))
	x -= q * Tau

	if x > HalfPi {
		x = Pi - x
	} else if x < -HalfPi {
		x = -Pi - x
	}

	x2 := x * x
	return x * (1 + x2*(sinC2+x2*(sinC4+x2*(sinC6+x2*sinC8))))
}

// Cos returns an approximation of the cosine of x (in radians), computed
// as Sin(x + Pi/2).
func Cos(x float32) float32 {
	return Sin(x + HalfPi)
}

// Tan returns an approximation of the tangent of x (in radians) as
// Sin(x)/Cos(x). Near the poles, where |Cos(x)| drops below 1e-5, Tan
// returns 0 instead of a huge unstable quotient.
func Tan(x float32) float32 {
	c := Cos(x)
	if Abs(c) < 1e-5 {
		return 0
	}
	return Sin(x) / c
}

// Atan returns an approximation of the arctangent of x with an absolute
// error below 1e-3. The argument is folded into [0, 1] using the sign and
// the identity atan(x) = Pi/2 - atan(1/x) before the polynomial runs.
func Atan(x float32) float32 {
	sign := float32(1)
	if x < 0 {
		sign = -1
		x = -x
	}

	invert := x > 1
	if invert {
		x = 1 / x
	}

	x2 := x * x
	y := x * (atanC0 + x2*(atanC2+x2*(atanC4+x2*(atanC6+x2*(atanC8+x2*atanC10)))))
	if invert {
		y = HalfPi - y
	}
	return sign * y
}

// Atan2 returns the angle of the point (x, y) in (-Pi, Pi], measured from
// the positive x axis. The x == 0 column resolves to ±Pi/2 by the sign of
// y, and Atan2(0, 0) is 0.
func Atan2(y, x float32) float32 {
	if x == 0 {
		switch {
		case y > 0:
			return HalfPi
		case y < 0:
			return -HalfPi
		default:
			return 0
		}
	}

	res := Atan(y / x)
	if x < 0 {
		if y >= 0 {
			res += Pi
		} else {
			res -= Pi
		}
	}
	return res
}

// Asin returns an approximation of the arcsine of x. Arguments are clamped
// to [-1, 1]; the endpoints divide by zero into infinity, which Atan folds
// back to ±Pi/2.
func Asin(x float32) float32 {
	x = Clamp(x, -1, 1)
	return Atan(x / Sqrt(1-x*x))
}

// Acos returns an approximation of the arccosine of x as Pi/2 - Asin(x).
// Arguments are clamped to [-1, 1].
func Acos(x float32) float32 {
	return HalfPi - Asin(x)
}

// DegToRad converts an angle from degrees to radians.
func DegToRad(deg float32) float32 {
	return deg * (Pi / 180)
}

// RadToDeg converts an angle from radians to degrees.
func RadToDeg(rad float32) float32 {
	return rad * (180 / Pi)
}
