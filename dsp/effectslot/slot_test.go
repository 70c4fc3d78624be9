package effectslot

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-chorus/dsp/core"
	"github.com/cwbudde/algo-chorus/dsp/effects"
	"github.com/cwbudde/algo-chorus/dsp/effects/modulation"
)

// stubState counts calls and can be made to fail device updates.
type stubState struct {
	deviceErr     error
	deviceUpdates int
	updates       int
	processed     int
}

func (s *stubState) DeviceUpdate(_ Context) error {
	s.deviceUpdates++
	return s.deviceErr
}

func (s *stubState) Update(_ Context) {
	s.updates++
}

func (s *stubState) Process(samplesToDo int, _ []float64, _ [][]float64) {
	s.processed += samplesToDo
}

func testContext() Context {
	return Context{
		SampleRate: 48000,
		Channels:   2,
		Pan: func(azimuth float64, gains []float64) {
			core.Zero(gains)
			if azimuth < 0 {
				gains[0] = 1
			} else if len(gains) > 1 {
				gains[1] = 1
			}
		},
	}
}

func TestSlotSetEffectUnknown(t *testing.T) {
	slot := NewSlot(NewRegistry(), testContext())

	err := slot.SetEffect("chorus")
	if !errors.Is(err, ErrUnknownEffect) {
		t.Fatalf("SetEffect() error = %v, want ErrUnknownEffect", err)
	}
	if slot.Ready() {
		t.Fatal("slot must not be ready after failed SetEffect")
	}
}

func TestSlotLifecycle(t *testing.T) {
	reg := NewRegistry()
	stub := &stubState{}
	reg.MustRegister("stub", func() (State, error) { return stub, nil })

	slot := NewSlot(reg, testContext())
	if err := slot.SetEffect("stub"); err != nil {
		t.Fatalf("SetEffect() error = %v", err)
	}

	if slot.EffectType() != "stub" {
		t.Fatalf("EffectType() = %q, want %q", slot.EffectType(), "stub")
	}
	if !slot.Ready() {
		t.Fatal("slot should be ready")
	}
	if stub.deviceUpdates != 1 || stub.updates != 1 {
		t.Fatalf("deviceUpdates = %d, updates = %d, want 1, 1", stub.deviceUpdates, stub.updates)
	}

	if err := slot.Update(); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if stub.updates != 2 {
		t.Fatalf("updates = %d, want 2", stub.updates)
	}

	slot.Process(128, make([]float64, 128), nil)
	if stub.processed != 128 {
		t.Fatalf("processed = %d, want 128", stub.processed)
	}

	slot.ClearEffect()
	if slot.Ready() || slot.EffectType() != "" {
		t.Fatal("slot should be empty after ClearEffect")
	}

	slot.Process(128, make([]float64, 128), nil)
	if stub.processed != 128 {
		t.Fatal("cleared slot must not process")
	}
}

func TestSlotFailStopAfterDeviceUpdateFailure(t *testing.T) {
	reg := NewRegistry()
	stub := &stubState{}
	reg.MustRegister("stub", func() (State, error) { return stub, nil })

	slot := NewSlot(reg, testContext())
	if err := slot.SetEffect("stub"); err != nil {
		t.Fatalf("SetEffect() error = %v", err)
	}

	stub.deviceErr = errors.New("allocation failed")
	if err := slot.DeviceUpdate(testContext()); err == nil {
		t.Fatal("expected device update failure")
	}

	if slot.Ready() {
		t.Fatal("slot must not be ready after failed device update")
	}
	if err := slot.Update(); !errors.Is(err, ErrNotReady) {
		t.Fatalf("Update() error = %v, want ErrNotReady", err)
	}

	processedBefore := stub.processed
	slot.Process(64, make([]float64, 64), nil)
	if stub.processed != processedBefore {
		t.Fatal("unready slot must not process")
	}

	// A later successful device update restores rendering.
	stub.deviceErr = nil
	if err := slot.DeviceUpdate(testContext()); err != nil {
		t.Fatalf("DeviceUpdate() error = %v", err)
	}
	if !slot.Ready() {
		t.Fatal("slot should be ready again")
	}
}

func TestSlotGainValidation(t *testing.T) {
	slot := NewSlot(NewRegistry(), testContext())

	if slot.Gain() != 1 {
		t.Fatalf("Gain() = %g, want 1", slot.Gain())
	}

	for _, gain := range []float64{-0.1, 1.1, math.NaN()} {
		if err := slot.SetGain(gain); !errors.Is(err, effects.ErrInvalidValue) {
			t.Fatalf("SetGain(%g) error = %v, want ErrInvalidValue", gain, err)
		}
	}
	if slot.Gain() != 1 {
		t.Fatalf("Gain() = %g, want 1 after failed sets", slot.Gain())
	}

	if err := slot.SetGain(0.5); err != nil {
		t.Fatalf("SetGain(0.5) error = %v", err)
	}
	if slot.Gain() != 0.5 {
		t.Fatalf("Gain() = %g, want 0.5", slot.Gain())
	}
}

func TestSlotParamDispatchWithoutCapability(t *testing.T) {
	reg := NewRegistry()
	reg.MustRegister("stub", func() (State, error) { return &stubState{}, nil })

	slot := NewSlot(reg, testContext())
	if err := slot.SetEffect("stub"); err != nil {
		t.Fatalf("SetEffect() error = %v", err)
	}

	if err := slot.SetFloat(1, 0.5); !errors.Is(err, effects.ErrInvalidParam) {
		t.Fatalf("SetFloat() error = %v, want ErrInvalidParam", err)
	}
	if err := slot.SetInt(1, 1); !errors.Is(err, effects.ErrInvalidParam) {
		t.Fatalf("SetInt() error = %v, want ErrInvalidParam", err)
	}
	if _, err := slot.Float(1); !errors.Is(err, effects.ErrInvalidParam) {
		t.Fatalf("Float() error = %v, want ErrInvalidParam", err)
	}
	if _, err := slot.Int(1); !errors.Is(err, effects.ErrInvalidParam) {
		t.Fatalf("Int() error = %v, want ErrInvalidParam", err)
	}
}

func TestSlotChorusEndToEnd(t *testing.T) {
	reg := NewRegistry()
	RegisterDefaults(reg)

	slot := NewSlot(reg, testContext())
	if err := slot.SetEffect("chorus"); err != nil {
		t.Fatalf("SetEffect() error = %v", err)
	}

	// Configure a pure delay through the identifier accessors.
	sets := []struct {
		param int
		value float64
	}{
		{int(modulation.ChorusParamRate), 0},
		{int(modulation.ChorusParamDepth), 0},
		{int(modulation.ChorusParamFeedback), 0},
		{int(modulation.ChorusParamDelay), 0.002},
	}
	for _, set := range sets {
		if err := slot.SetFloat(set.param, set.value); err != nil {
			t.Fatalf("SetFloat(%d, %g) error = %v", set.param, set.value, err)
		}
	}
	if err := slot.Update(); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	got, err := slot.Float(int(modulation.ChorusParamDelay))
	if err != nil {
		t.Fatalf("Float(delay) error = %v", err)
	}
	if got != 0.002 {
		t.Fatalf("Float(delay) = %g, want 0.002", got)
	}

	if err := slot.SetFloat(int(modulation.ChorusParamFeedback), 2.0); !errors.Is(err, effects.ErrInvalidValue) {
		t.Fatalf("SetFloat(feedback, 2.0) error = %v, want ErrInvalidValue", err)
	}
	fb, err := slot.Float(int(modulation.ChorusParamFeedback))
	if err != nil {
		t.Fatalf("Float(feedback) error = %v", err)
	}
	if fb != 0 {
		t.Fatalf("Float(feedback) = %g, want previous value 0", fb)
	}

	const n = 512
	in := make([]float64, n)
	in[0] = 1
	out := [][]float64{make([]float64, n), make([]float64, n)}
	slot.Process(n, in, out)

	delayed := int(math.Round(0.002 * 48000))
	for ch := 0; ch < 2; ch++ {
		if !core.NearlyEqual(out[ch][delayed], 1, 1e-12) {
			t.Fatalf("out[%d][%d] = %g, want 1", ch, delayed, out[ch][delayed])
		}
		if out[ch][0] != 0 {
			t.Fatalf("out[%d][0] = %g, want 0", ch, out[ch][0])
		}
	}
}
