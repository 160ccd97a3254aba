package collision

import "errors"

// Kernel errors, wrapped with context; test with errors.Is
var (
	// ErrDegenerateShape reports a polygon with fewer than 3 vertices or zero area, or a zero-length segment
	ErrDegenerateShape = errors.New("degenerate shape")
	// ErrInvalidInput reports non-finite coordinates or a normalization of a zero vector
	ErrInvalidInput = errors.New("invalid input")
	// ErrNonConvergent reports that the narrow-phase iteration bound was exceeded
	ErrNonConvergent = errors.New("narrow-phase did not converge")
)
