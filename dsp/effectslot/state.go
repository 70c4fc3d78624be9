package effectslot

// State is the per-effect processing and configuration contract.
//
// DeviceUpdate reallocates internal buffers for the context's sample
// rate and resets the state to silence; it is the only method allowed to
// allocate. Update translates the current parameters into run-time
// coefficients. Process renders one block, accumulating into the output
// channels; it must not block, allocate, or fail.
type State interface {
	DeviceUpdate(ctx Context) error
	Update(ctx Context)
	Process(samplesToDo int, in []float64, out [][]float64)
}

// FloatParams is an optional interface for states exposing float-valued
// parameters by identifier.
type FloatParams interface {
	SetFloat(param int, value float64) error
	Float(param int) (float64, error)
}

// IntParams is an optional interface for states exposing integer-valued
// or enumerated parameters by identifier.
type IntParams interface {
	SetInt(param int, value int) error
	Int(param int) (int, error)
}
