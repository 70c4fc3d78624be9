package effectslot

import "github.com/cwbudde/algo-chorus/dsp/effects/spatial"

// Context provides the device and routing information effect states need.
// The host owns the panner and channel layout; states treat both as
// opaque collaborators.
type Context struct {
	SampleRate float64
	Channels   int
	Pan        spatial.PanFunc
	Gain       float64
}
