package modulation

import "math"

// modBlockSamples bounds the per-call transient storage: delay
// trajectories and wet taps live in fixed arrays of this size instead of
// being heap-allocated per block.
const modBlockSamples = 128

// triangleDelays fills delays with modulated delay values in samples.
// offset is the LFO sample counter wrapped into [0, lfoRange); scale is
// 4/lfoRange so one cycle sweeps the triangle from -1 through +1 and
// back.
func triangleDelays(delays []int, offset, lfoRange int, scale, depth float64, baseDelay int) {
	for i := range delays {
		delays[i] = int(math.Round((1-math.Abs(2-scale*float64(offset)))*depth)) + baseDelay
		offset = (offset + 1) % lfoRange
	}
}

// sinusoidDelays is the sinusoid counterpart; scale is 2*pi/lfoRange.
func sinusoidDelays(delays []int, offset, lfoRange int, scale, depth float64, baseDelay int) {
	for i := range delays {
		delays[i] = int(math.Round(math.Sin(scale*float64(offset))*depth)) + baseDelay
		offset = (offset + 1) % lfoRange
	}
}
