package spatial

import (
	"math"

	"github.com/cwbudde/algo-chorus/dsp/core"
)

// PanFunc computes per-output-channel gains for a virtual source at the
// given azimuth in radians. Negative azimuths point left, positive right,
// zero straight ahead. Implementations must fill every element of gains.
type PanFunc func(azimuth float64, gains []float64)

// StereoPan fills gains with an equal-power two-channel pan law. The
// azimuth is clamped to [-pi/2, pi/2]; gains beyond the first two
// channels are set to zero. The two gains are power-complementary, so a
// source swept across the field keeps constant perceived level.
func StereoPan(azimuth float64, gains []float64) {
	if len(gains) == 0 {
		return
	}

	azimuth = core.Clamp(azimuth, -math.Pi/2, math.Pi/2)

	// Map azimuth to pan position x in [0, 1], 0 = hard left.
	x := azimuth/math.Pi + 0.5

	gains[0] = panSqrt(1 - x)
	if len(gains) > 1 {
		gains[1] = panSqrt(x)
	}

	for i := 2; i < len(gains); i++ {
		gains[i] = 0
	}
}
