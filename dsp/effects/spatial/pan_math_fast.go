//go:build fastmath

package spatial

import (
	"github.com/meko-christian/algo-approx"
)

// panSqrt computes sqrt(x) using fast approximation.
func panSqrt(x float64) float64 {
	return approx.FastSqrt(x)
}
