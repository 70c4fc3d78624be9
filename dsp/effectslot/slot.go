package effectslot

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-chorus/dsp/effects"
)

// ErrUnknownEffect is returned when a slot references an unregistered effect type.
var ErrUnknownEffect = errors.New("unknown effect type")

// ErrNotReady is returned when a slot is driven after a failed device update.
var ErrNotReady = errors.New("effect slot not ready")

// Slot owns one effect state and the host-side routing around it: the
// output gain and the readiness flag guarding the render path. A slot
// whose last device update failed refuses to render until a later
// DeviceUpdate succeeds.
type Slot struct {
	registry *Registry
	ctx      Context

	effectType string
	state      State
	gain       float64
	ready      bool
}

// NewSlot creates an empty slot bound to a registry and an initial
// device context. The output gain defaults to 1.
func NewSlot(registry *Registry, ctx Context) *Slot {
	return &Slot{registry: registry, ctx: ctx, gain: 1}
}

// EffectType returns the name of the loaded effect, empty when none.
func (s *Slot) EffectType() string {
	return s.effectType
}

// Ready reports whether the slot may be rendered.
func (s *Slot) Ready() bool {
	return s.ready && s.state != nil
}

// SetEffect constructs the named effect, runs its device update against
// the current context, and swaps it in. The previous state is kept on
// any failure.
func (s *Slot) SetEffect(effectType string) error {
	factory := s.registry.Lookup(effectType)
	if factory == nil {
		return fmt.Errorf("%w: %s", ErrUnknownEffect, effectType)
	}

	state, err := factory()
	if err != nil {
		return err
	}

	err = state.DeviceUpdate(s.renderContext())
	if err != nil {
		return err
	}

	state.Update(s.renderContext())

	s.effectType = effectType
	s.state = state
	s.ready = true

	return nil
}

// ClearEffect unloads the current effect.
func (s *Slot) ClearEffect() {
	s.effectType = ""
	s.state = nil
	s.ready = false
}

// SetGain sets the slot output gain in [0, 1]. The new gain takes
// effect at the next Update.
func (s *Slot) SetGain(gain float64) error {
	if gain < 0 || gain > 1 || math.IsNaN(gain) {
		return fmt.Errorf("%w: slot gain %f", effects.ErrInvalidValue, gain)
	}

	s.gain = gain

	return nil
}

// Gain returns the slot output gain.
func (s *Slot) Gain() float64 {
	return s.gain
}

// DeviceUpdate adopts a new device context and reconfigures the loaded
// state. On failure the slot becomes unrenderable until a later call
// succeeds; the host decides whether to retry or disable the effect.
func (s *Slot) DeviceUpdate(ctx Context) error {
	s.ctx = ctx

	if s.state == nil {
		return nil
	}

	s.ready = false

	err := s.state.DeviceUpdate(s.renderContext())
	if err != nil {
		return err
	}

	s.ready = true
	s.state.Update(s.renderContext())

	return nil
}

// Update re-translates the loaded state's parameters. Hosts call it
// after any parameter or gain change; changes take effect at the next
// Process call.
func (s *Slot) Update() error {
	if s.state == nil {
		return nil
	}

	if !s.ready {
		return ErrNotReady
	}

	s.state.Update(s.renderContext())

	return nil
}

// Process renders one block through the loaded state, accumulating into
// out. An empty or unready slot contributes nothing.
func (s *Slot) Process(samplesToDo int, in []float64, out [][]float64) {
	if s.state == nil || !s.ready {
		return
	}

	s.state.Process(samplesToDo, in, out)
}

// SetFloat sets a float-valued effect parameter by identifier.
func (s *Slot) SetFloat(param int, value float64) error {
	fp, ok := s.state.(FloatParams)
	if !ok {
		return fmt.Errorf("%w: float parameter %d", effects.ErrInvalidParam, param)
	}

	return fp.SetFloat(param, value)
}

// SetInt sets an integer-valued effect parameter by identifier.
func (s *Slot) SetInt(param int, value int) error {
	ip, ok := s.state.(IntParams)
	if !ok {
		return fmt.Errorf("%w: integer parameter %d", effects.ErrInvalidParam, param)
	}

	return ip.SetInt(param, value)
}

// Float reads a float-valued effect parameter by identifier.
func (s *Slot) Float(param int) (float64, error) {
	fp, ok := s.state.(FloatParams)
	if !ok {
		return 0, fmt.Errorf("%w: float parameter %d", effects.ErrInvalidParam, param)
	}

	return fp.Float(param)
}

// Int reads an integer-valued effect parameter by identifier.
func (s *Slot) Int(param int) (int, error) {
	ip, ok := s.state.(IntParams)
	if !ok {
		return 0, fmt.Errorf("%w: integer parameter %d", effects.ErrInvalidParam, param)
	}

	return ip.Int(param)
}

func (s *Slot) renderContext() Context {
	ctx := s.ctx
	ctx.Gain = s.gain
	return ctx
}
