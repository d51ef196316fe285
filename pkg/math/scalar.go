package math

import "math"

// Clamp limits v to the range [lo, hi].
func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp returns the linear interpolation between a and b at t.
func Lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// EaseOut returns the ease-out curve 1 - (1-t)^power for t in [0,1].
func EaseOut(t, power float32) float32 {
	t = Clamp(t, 0, 1)
	return 1 - float32(math.Pow(float64(1-t), float64(power)))
}

// Sin is a float32 convenience wrapper around math.Sin.
func Sin(x float32) float32 {
	return float32(math.Sin(float64(x)))
}

// Cos is a float32 convenience wrapper around math.Cos.
func Cos(x float32) float32 {
	return float32(math.Cos(float64(x)))
}

// Abs returns the absolute value of x.
func Abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// Exp is a float32 convenience wrapper around math.Exp.
func Exp(x float32) float32 {
	return float32(math.Exp(float64(x)))
}

// Pow is a float32 convenience wrapper around math.Pow.
func Pow(x, y float32) float32 {
	return float32(math.Pow(float64(x), float64(y)))
}

// Sqrt is a float32 convenience wrapper around math.Sqrt.
func Sqrt(x float32) float32 {
	return float32(math.Sqrt(float64(x)))
}

// Inf returns float32 infinity with the given sign.
func Inf(sign int) float32 {
	return float32(math.Inf(sign))
}

// Mod returns the floating-point remainder of x/y with the sign of x.
func Mod(x, y float32) float32 {
	return float32(math.Mod(float64(x), float64(y)))
}
