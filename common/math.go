package common

import "math"

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func Clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// SmoothStep eases from a to b with a cubic Hermite curve; t is clamped.
func SmoothStep(a, b, t float64) float64 {
	t = Clamp01(t)
	t = t * t * (3 - 2*t)
	return a + t*(b-a)
}

// RoundToInt rounds half to even, so 22.5 becomes 22 and 49.5 becomes 50.
func RoundToInt(v float64) int {
	return int(math.RoundToEven(v))
}

func Deg2Rad(deg float64) float64 {
	return deg * math.Pi / 180
}

func Rad2Deg(rad float64) float64 {
	return rad * 180 / math.Pi
}
