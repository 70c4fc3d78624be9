// Package modulation provides the modulated-delay chorus core.
//
// Chorus synthesizes two decorrelated virtual sources from one mono
// input by writing it into a pair of delay lines and reading each line
// back at an LFO-modulated offset, with optional comb feedback. The wet
// taps are mixed into an arbitrary multichannel output bed through
// host-supplied spatial gains.
//
// The package is transform-only: no I/O, no allocation on the render
// path, no locking. Buffer allocation happens in DeviceUpdate, which the
// host must serialize against Process.
package modulation
