package gridpost

import (
	"errors"
	"fmt"
)

// The package reports two kinds of failure: invalid input (every concrete
// sentinel below wraps ErrInvalidParameter, so errors.Is works at either
// granularity) and a degenerate normalization.
var (
	// ErrInvalidParameter is the umbrella for every bad-input condition.
	ErrInvalidParameter = errors.New("gridpost: invalid parameter")

	// ErrDegenerateDistribution indicates every grid weight is exactly zero,
	// so the posterior cannot be normalized. Returned instead of NaN weights;
	// the caller decides whether to widen the grid or treat it as no-information.
	ErrDegenerateDistribution = errors.New("gridpost: all grid weights are zero, posterior undefined")

	// ErrEmptyGrid indicates the candidate grid has no points.
	ErrEmptyGrid = fmt.Errorf("%w: grid must contain at least one point", ErrInvalidParameter)
	// ErrGridRange indicates a grid point outside [0,1] (or NaN).
	ErrGridRange = fmt.Errorf("%w: grid points must lie in [0,1]", ErrInvalidParameter)
	// ErrGridOrder indicates grid points are not strictly increasing.
	ErrGridOrder = fmt.Errorf("%w: grid points must be strictly increasing", ErrInvalidParameter)
	// ErrNegativeCount indicates a negative observed or prior count.
	ErrNegativeCount = fmt.Errorf("%w: counts must be non-negative", ErrInvalidParameter)
	// ErrSampleCount indicates a negative requested sample count.
	ErrSampleCount = fmt.Errorf("%w: sample count must be non-negative", ErrInvalidParameter)
)
