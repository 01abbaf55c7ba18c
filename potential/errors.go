package potential

import "errors"

// Error kinds surfaced by the core. All are detected at component
// boundaries and wrapped with context; match with errors.Is.
var (
	// ErrConfiguration reports degenerate or empty geometry detected
	// while building the Schur operator
	ErrConfiguration = errors.New("degenerate surface configuration")

	// ErrDimensionMismatch reports boundary data whose shape does not
	// match the cache's geometry
	ErrDimensionMismatch = errors.New("boundary data does not match cached geometry")

	// ErrNumericalFailure reports an internal linear solve that failed
	// or produced non-finite values
	ErrNumericalFailure = errors.New("linear solve failed")
)
