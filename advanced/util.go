package advanced

import "math"

// DefaultTolerance is the coordinate epsilon used when the caller does not
// supply one. To compensate for imprecision in floats, equality is tolerance
// based throughout the engine. If we don't account for this, nearly-identical
// intersection points fail to merge and the arrangement grows absurdly thin
// sliver faces.
const DefaultTolerance = 1e-9

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

func fmin(a, b float64) float64 {
	return math.Min(a, b)
}

func fmax(a, b float64) float64 {
	return math.Max(a, b)
}

func inf(sign int) float64 {
	return math.Inf(sign)
}
