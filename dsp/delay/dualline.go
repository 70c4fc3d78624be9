// Package delay provides circular delay-line storage for modulated-delay effects.
package delay

import (
	"fmt"

	"github.com/cwbudde/algo-chorus/dsp/core"
)

// DualLine is a pair of equally sized circular sample buffers backed by a
// single allocation. The per-channel length is always a power of two so
// that read positions can be wrapped with a bitmask; negative positions
// wrap correctly because two's-complement AND against the mask is exact
// for power-of-two lengths.
type DualLine struct {
	buf    []float64
	length int
}

// Resize grows or shrinks both channels to hold at least minLen samples
// each, rounding up to the next power of two. Existing content is
// discarded on success; on failure the previous buffers are retained so
// the caller can abort a reconfiguration without corrupting playback.
func (d *DualLine) Resize(minLen int) error {
	if minLen <= 0 {
		return fmt.Errorf("delay line length must be > 0: %d", minLen)
	}

	length := core.NextPow2(minLen)
	if length == 0 {
		return fmt.Errorf("delay line length overflows: %d", minLen)
	}
	if length&(length-1) != 0 {
		return fmt.Errorf("delay line length not a power of two: %d", length)
	}

	if length == d.length {
		return nil
	}

	d.buf = make([]float64, 2*length)
	d.length = length

	return nil
}

// Len returns the per-channel buffer length, zero before the first Resize.
func (d *DualLine) Len() int {
	return d.length
}

// Mask returns the index wrap mask, length-1.
func (d *DualLine) Mask() int {
	return d.length - 1
}

// Channel returns the backing slice of channel i (0 or 1). The second
// channel starts at the first channel's base plus the line length.
func (d *DualLine) Channel(i int) []float64 {
	base := i * d.length
	return d.buf[base : base+d.length : base+d.length]
}

// Clear zeroes both channels.
func (d *DualLine) Clear() {
	core.Zero(d.buf)
}
