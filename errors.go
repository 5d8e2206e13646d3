package scatter

import "errors"

// Sentinel errors reported by the rendering pipeline. All validation
// failures are detected before any pixel or file work begins; match them
// with errors.Is.
var (
	// ErrEmptyInput indicates that zero samples were supplied.
	ErrEmptyInput = errors.New("scatter: empty input, at least one sample required")

	// ErrLengthMismatch indicates that xs and ys have different lengths.
	ErrLengthMismatch = errors.New("scatter: xs and ys must have the same length")

	// ErrInvalidDimensions indicates a zero or negative image width or height.
	ErrInvalidDimensions = errors.New("scatter: width and height must be greater than zero")

	// ErrInvalidRange indicates an unusable axis range: an explicit range
	// with min >= max, non-finite bounds, or data whose auto range cannot
	// be represented.
	ErrInvalidRange = errors.New("scatter: invalid axis range")

	// ErrEncode indicates an internal PNG encoding failure.
	ErrEncode = errors.New("scatter: PNG encoding failed")
)
