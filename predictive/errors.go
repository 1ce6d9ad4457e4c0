package predictive

import "errors"

var (
	// ErrNoSamples indicates an empty posterior-sample slice.
	ErrNoSamples = errors.New("predictive: posterior samples must be non-empty")
	// ErrSampleRange indicates a posterior sample outside [0,1] (or NaN).
	ErrSampleRange = errors.New("predictive: posterior samples must lie in [0,1]")
	// ErrNegativeCount indicates a negative future-draw or sample count.
	ErrNegativeCount = errors.New("predictive: counts must be non-negative")
)
