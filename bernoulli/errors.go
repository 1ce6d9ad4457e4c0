package bernoulli

import "errors"

var (
	// ErrProbabilityRange indicates a success probability outside [0,1] (or NaN).
	ErrProbabilityRange = errors.New("bernoulli: probability must lie in [0,1]")
	// ErrNegativeCount indicates a negative draw count.
	ErrNegativeCount = errors.New("bernoulli: count must be non-negative")
)
