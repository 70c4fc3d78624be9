//go:build !fastmath

package spatial

import "math"

// panSqrt computes sqrt(x) using the standard library.
func panSqrt(x float64) float64 {
	return math.Sqrt(x)
}
