// Package effectslot hosts effect states the way an audio framework
// drives them: one DeviceUpdate per device (re)configuration, one Update
// per parameter or routing change, and one Process per render block.
//
// Effects are registered by name and selected at construction time; the
// chorus is one such variant. A Slot owns exactly one state, applies the
// slot output gain, and enforces fail-stop semantics after a failed
// device update.
package effectslot
