package ascii

import "errors"

// Sentinel errors returned by the conversion pipeline. Wrapped errors carry
// the parameter name and offending value; classify with errors.Is.
var (
	// ErrInvalidSize indicates a target dimension rounded to zero or a
	// negative scale factor.
	ErrInvalidSize = errors.New("invalid target size")

	// ErrInvalidAdjustment indicates a negative brightness or sharpness
	// factor.
	ErrInvalidAdjustment = errors.New("invalid adjustment factor")
)
