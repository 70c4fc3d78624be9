package effectslot

import (
	"github.com/cwbudde/algo-chorus/dsp/effects/modulation"
)

// chorusState adapts modulation.Chorus to the State contract and exposes
// its parameters through the identifier-based accessors.
type chorusState struct {
	fx    *modulation.Chorus
	props modulation.ChorusProps
}

// NewChorusState builds a chorus effect state with default parameters.
func NewChorusState() (State, error) {
	return &chorusState{
		fx:    modulation.NewChorus(),
		props: modulation.DefaultChorusProps(),
	}, nil
}

func (s *chorusState) DeviceUpdate(ctx Context) error {
	return s.fx.DeviceUpdate(ctx.SampleRate)
}

func (s *chorusState) Update(ctx Context) {
	s.fx.Update(ctx.SampleRate, s.props, ctx.Channels, ctx.Pan, ctx.Gain)
}

func (s *chorusState) Process(samplesToDo int, in []float64, out [][]float64) {
	s.fx.Process(samplesToDo, in, out)
}

func (s *chorusState) SetFloat(param int, value float64) error {
	return s.props.SetFloat(modulation.ChorusParam(param), value)
}

func (s *chorusState) Float(param int) (float64, error) {
	return s.props.Float(modulation.ChorusParam(param))
}

func (s *chorusState) SetInt(param int, value int) error {
	return s.props.SetInt(modulation.ChorusParam(param), value)
}

func (s *chorusState) Int(param int) (int, error) {
	return s.props.Int(modulation.ChorusParam(param))
}

// RegisterDefaults registers the built-in effect states.
func RegisterDefaults(r *Registry) {
	r.MustRegister("chorus", NewChorusState)
}
