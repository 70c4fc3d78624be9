// Package effects holds the error kinds shared by effect parameter
// surfaces. Accessors report exactly two failure modes: a value outside
// its documented range, or an identifier the effect does not recognize.
// Both are local and non-fatal; a failed accessor call mutates nothing.
package effects

import "errors"

var (
	// ErrInvalidParam reports an unrecognized or wrong-typed parameter identifier.
	ErrInvalidParam = errors.New("invalid effect parameter")

	// ErrInvalidValue reports a parameter value outside its documented range.
	ErrInvalidValue = errors.New("effect parameter value out of range")
)
