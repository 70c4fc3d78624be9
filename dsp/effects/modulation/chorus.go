package modulation

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-chorus/dsp/core"
	"github.com/cwbudde/algo-chorus/dsp/delay"
	"github.com/cwbudde/algo-chorus/dsp/effects/spatial"
	"github.com/cwbudde/algo-vecmath"
)

const (
	// maxChorusDelaySeconds is the largest representable base delay; the
	// delay lines are sized for delay plus full depth at the current rate.
	maxChorusDelaySeconds = 0.016

	// gainSilenceThreshold skips output channels whose spatial gain is
	// inaudible. Skipping must not change the result for an exact zero
	// gain, which contributes nothing either way.
	gainSilenceThreshold = 1e-5
)

// Chorus is a two-line modulated-delay chorus. Both lines receive the
// same mono input; decorrelation comes entirely from the two LFO delay
// trajectories, which share one cycle length but run at a configurable
// phase displacement. Keeping the lines otherwise identical is what
// gives the effect its character; fully independent stereo lines would
// sound different.
//
// The zero value is not usable: construct with NewChorus, then call
// DeviceUpdate before Update or Process.
type Chorus struct {
	line   delay.DualLine
	offset int

	waveform ChorusWaveform
	delay    int
	depth    float64
	feedback float64

	lfoRange int
	lfoScale float64
	lfoDisp  int

	gains [2][]float64

	mods [2][modBlockSamples]int
	wet  [2][modBlockSamples]float64
	mix  [modBlockSamples]float64
}

// NewChorus creates a chorus with no device attached yet.
func NewChorus() *Chorus {
	return &Chorus{lfoRange: 1}
}

// DeviceUpdate resizes the delay lines for the given device sample rate
// and clears them to silence. It always clears, even when the length is
// unchanged, so stale samples from a previous configuration never bleed
// into new output; it doubles as the reset-to-silence entry point. On
// error the previous buffers are kept and the effect must not be
// rendered until a later DeviceUpdate succeeds.
func (c *Chorus) DeviceUpdate(sampleRate float64) error {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return fmt.Errorf("chorus sample rate must be > 0 and finite: %f", sampleRate)
	}

	maxLen := int(maxChorusDelaySeconds*2*sampleRate) + 1
	if err := c.line.Resize(maxLen); err != nil {
		return err
	}

	c.line.Clear()
	c.offset = 0

	return nil
}

// Update translates the public parameters into run-time coefficients.
// pan supplies per-output-channel gains for the two virtual sources,
// which sit hard left and hard right of forward; gain is the effect
// slot's output level applied on top. Update never touches the delay
// line content, so modulation phase and tails carry across parameter
// changes.
func (c *Chorus) Update(sampleRate float64, props ChorusProps, channels int, pan spatial.PanFunc, gain float64) {
	c.waveform = props.Waveform
	c.delay = int(math.Round(props.Delay * sampleRate))
	c.depth = props.Depth * float64(c.delay)
	c.feedback = props.Feedback

	if props.Rate <= 0 {
		// Degenerate but valid: a fixed-delay comb filter. Depth is
		// zeroed so the generators emit exactly the base delay.
		c.lfoRange = 1
		c.lfoScale = 0
		c.lfoDisp = 0
		c.depth = 0
	} else {
		c.lfoRange = int(math.Round(sampleRate / props.Rate))
		if c.lfoRange < 1 {
			c.lfoRange = 1
		}

		switch c.waveform {
		case ChorusWaveformSinusoid:
			c.lfoScale = 2 * math.Pi / float64(c.lfoRange)
		default:
			c.lfoScale = 4 / float64(c.lfoRange)
		}

		phase := props.Phase
		if phase < 0 {
			phase += 360
		}
		c.lfoDisp = int(math.Round(float64(c.lfoRange) * float64(phase) / 360))
	}

	azimuths := [2]float64{-math.Pi / 2, math.Pi / 2}
	for ch, azimuth := range azimuths {
		g := core.EnsureLen(c.gains[ch], channels)
		if pan != nil {
			pan(azimuth, g)
		} else {
			core.Zero(g)
		}
		if len(g) > 0 {
			vecmath.ScaleBlock(g, g, gain)
		}
		c.gains[ch] = g
	}
}

// Process renders samplesToDo samples of the mono input and accumulates
// the wet taps into the output channels. It runs in sub-blocks of at
// most 128 samples, never allocates, and keeps cursor and LFO phase
// across calls; continuity is broken only by DeviceUpdate.
func (c *Chorus) Process(samplesToDo int, in []float64, out [][]float64) {
	if samplesToDo <= 0 || c.line.Len() == 0 {
		return
	}

	var (
		left    = c.line.Channel(0)
		right   = c.line.Channel(1)
		bufmask = c.line.Mask()
		fb      = c.feedback
		offset  = c.offset
	)

	for base := 0; base < samplesToDo; {
		todo := samplesToDo - base
		if todo > modBlockSamples {
			todo = modBlockSamples
		}

		switch c.waveform {
		case ChorusWaveformSinusoid:
			sinusoidDelays(c.mods[0][:todo], offset%c.lfoRange, c.lfoRange, c.lfoScale, c.depth, c.delay)
			sinusoidDelays(c.mods[1][:todo], (offset+c.lfoDisp)%c.lfoRange, c.lfoRange, c.lfoScale, c.depth, c.delay)
		default:
			triangleDelays(c.mods[0][:todo], offset%c.lfoRange, c.lfoRange, c.lfoScale, c.depth, c.delay)
			triangleDelays(c.mods[1][:todo], (offset+c.lfoDisp)%c.lfoRange, c.lfoRange, c.lfoScale, c.depth, c.delay)
		}

		for i := 0; i < todo; i++ {
			smp := in[base+i]

			// Feed both lines the same input, tap each at its own
			// modulated offset, and recirculate the tap into the slot
			// just written. y[n] = x[n-d] + feedback*y[n-d].
			left[offset&bufmask] = smp
			w := left[(offset-c.mods[0][i])&bufmask]
			left[offset&bufmask] = core.FlushDenormals(smp + w*fb)
			c.wet[0][i] = w

			right[offset&bufmask] = smp
			w = right[(offset-c.mods[1][i])&bufmask]
			right[offset&bufmask] = core.FlushDenormals(smp + w*fb)
			c.wet[1][i] = w

			offset++
		}

		for ch := 0; ch < 2; ch++ {
			wet := c.wet[ch][:todo]
			for k, g := range c.gains[ch] {
				if k >= len(out) {
					break
				}
				if math.Abs(g) <= gainSilenceThreshold {
					continue
				}

				vecmath.ScaleBlock(c.mix[:todo], wet, g)
				vecmath.AddBlockInPlace(out[k][base:base+todo], c.mix[:todo])
			}
		}

		base += todo
	}

	c.offset = offset
}
