package textplot

import "errors"

// Errors returned by constructors and labelling operations. Drawing
// operations on a successfully constructed Plot never fail: non-finite
// samples and out-of-range pixels are dropped silently as a data-cleaning
// policy, not reported as errors.
var (
	// ErrInvalidArgument indicates a bad scalar option: a negative
	// margin, mismatched series lengths, a malformed limit pair, or an
	// axis scale that cannot be combined with a 3D projection.
	ErrInvalidArgument = errors.New("textplot: invalid argument")

	// ErrInvalidLocation indicates an unknown decoration tag passed to a
	// labelling operation.
	ErrInvalidLocation = errors.New("textplot: invalid label location")

	// ErrInvalidDimension indicates a negative canvas height or width at
	// construction.
	ErrInvalidDimension = errors.New("textplot: invalid canvas dimension")
)
