package modulation

import (
	"fmt"

	"github.com/cwbudde/algo-chorus/dsp/effects"
)

// ChorusWaveform selects the LFO shape driving the delay modulation.
type ChorusWaveform int

const (
	ChorusWaveformTriangle ChorusWaveform = iota
	ChorusWaveformSinusoid
)

// ChorusParam identifies a settable chorus parameter.
type ChorusParam int

const (
	ChorusParamWaveform ChorusParam = iota + 1
	ChorusParamPhase
	ChorusParamRate
	ChorusParamDepth
	ChorusParamFeedback
	ChorusParamDelay
)

// Documented parameter ranges. Delay and depth interact: depth is a
// fraction of the base delay, not an independent time value, so it stays
// meaningful across different base delays.
const (
	ChorusMinPhase = -180
	ChorusMaxPhase = 180

	ChorusMinRate = 0.0
	ChorusMaxRate = 10.0

	ChorusMinDepth = 0.0
	ChorusMaxDepth = 1.0

	ChorusMinFeedback = -1.0
	ChorusMaxFeedback = 1.0

	ChorusMinDelay = 0.0
	ChorusMaxDelay = 0.016
)

const (
	defaultChorusWaveform = ChorusWaveformTriangle
	defaultChorusPhase    = 0
	defaultChorusRate     = 1.1
	defaultChorusDepth    = 0.1
	defaultChorusFeedback = 0.25
	defaultChorusDelay    = 0.016
)

// ChorusProps holds the host-owned chorus parameters. The core reads
// them as immutable inputs to the next Update call; a failed set leaves
// every field untouched.
type ChorusProps struct {
	Waveform ChorusWaveform
	Phase    int
	Rate     float64
	Depth    float64
	Feedback float64
	Delay    float64
}

// DefaultChorusProps returns the chorus parameter defaults.
func DefaultChorusProps() ChorusProps {
	return ChorusProps{
		Waveform: defaultChorusWaveform,
		Phase:    defaultChorusPhase,
		Rate:     defaultChorusRate,
		Depth:    defaultChorusDepth,
		Feedback: defaultChorusFeedback,
		Delay:    defaultChorusDelay,
	}
}

// SetInt sets an integer-valued parameter by identifier.
func (p *ChorusProps) SetInt(param ChorusParam, value int) error {
	switch param {
	case ChorusParamWaveform:
		w := ChorusWaveform(value)
		if w != ChorusWaveformTriangle && w != ChorusWaveformSinusoid {
			return fmt.Errorf("%w: chorus waveform %d", effects.ErrInvalidValue, value)
		}
		p.Waveform = w
	case ChorusParamPhase:
		if value < ChorusMinPhase || value > ChorusMaxPhase {
			return fmt.Errorf("%w: chorus phase %d degrees", effects.ErrInvalidValue, value)
		}
		p.Phase = value
	default:
		return fmt.Errorf("%w: chorus integer parameter %d", effects.ErrInvalidParam, param)
	}

	return nil
}

// inRange reports whether value lies in [lo, hi]. NaN and infinities fail.
func inRange(value, lo, hi float64) bool {
	return value >= lo && value <= hi
}

// SetFloat sets a float-valued parameter by identifier.
func (p *ChorusProps) SetFloat(param ChorusParam, value float64) error {
	switch param {
	case ChorusParamRate:
		if !inRange(value, ChorusMinRate, ChorusMaxRate) {
			return fmt.Errorf("%w: chorus rate %f Hz", effects.ErrInvalidValue, value)
		}
		p.Rate = value
	case ChorusParamDepth:
		if !inRange(value, ChorusMinDepth, ChorusMaxDepth) {
			return fmt.Errorf("%w: chorus depth %f", effects.ErrInvalidValue, value)
		}
		p.Depth = value
	case ChorusParamFeedback:
		if !inRange(value, ChorusMinFeedback, ChorusMaxFeedback) {
			return fmt.Errorf("%w: chorus feedback %f", effects.ErrInvalidValue, value)
		}
		p.Feedback = value
	case ChorusParamDelay:
		if !inRange(value, ChorusMinDelay, ChorusMaxDelay) {
			return fmt.Errorf("%w: chorus delay %f seconds", effects.ErrInvalidValue, value)
		}
		p.Delay = value
	default:
		return fmt.Errorf("%w: chorus float parameter %d", effects.ErrInvalidParam, param)
	}

	return nil
}

// Int reads an integer-valued parameter by identifier.
func (p ChorusProps) Int(param ChorusParam) (int, error) {
	switch param {
	case ChorusParamWaveform:
		return int(p.Waveform), nil
	case ChorusParamPhase:
		return p.Phase, nil
	default:
		return 0, fmt.Errorf("%w: chorus integer parameter %d", effects.ErrInvalidParam, param)
	}
}

// Float reads a float-valued parameter by identifier.
func (p ChorusProps) Float(param ChorusParam) (float64, error) {
	switch param {
	case ChorusParamRate:
		return p.Rate, nil
	case ChorusParamDepth:
		return p.Depth, nil
	case ChorusParamFeedback:
		return p.Feedback, nil
	case ChorusParamDelay:
		return p.Delay, nil
	default:
		return 0, fmt.Errorf("%w: chorus float parameter %d", effects.ErrInvalidParam, param)
	}
}
