// Package spatial provides spatial-gain helpers for mixing mono effect
// outputs into multichannel beds.
//
// The central contract is [PanFunc]: given a virtual source azimuth it
// fills a per-output-channel gain vector. Effects consume the contract
// only; hosts supply whichever panner matches their speaker layout.
// [StereoPan] is a reference equal-power implementation for two-channel
// outputs.
package spatial
