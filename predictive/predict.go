package predictive

import (
	"math"

	"github.com/katalvlaran/bayeskit/bernoulli"
	"github.com/katalvlaran/bayeskit/randsrc"
)

// Predict simulates one future experiment of futureCount draws per
// posterior sample and returns the Success count of each, in input order.
//
// Algorithm Outline:
//  1. Validate: samples non-empty, every sample in [0,1], futureCount ≥ 0.
//  2. Resolve src (nil ⇒ default deterministic stream).
//  3. For each sample p, run bernoulli.Generate(p, futureCount, src) and
//     record Sequence.Successes().
//
// Feeding the full posterior sample set (rather than a single point
// estimate such as the mode) is what carries estimation uncertainty into
// the predictive distribution.
//
// Errors:
//   - ErrNoSamples     — len(posteriorSamples) == 0.
//   - ErrSampleRange   — a sample is NaN or outside [0,1].
//   - ErrNegativeCount — futureCount < 0.
//
// Complexity: O(len(samples)·futureCount) time, O(len(samples)+futureCount) memory.
func Predict(posteriorSamples []float64, futureCount int, src randsrc.Source) ([]int, error) {
	if len(posteriorSamples) == 0 {
		return nil, ErrNoSamples
	}
	if futureCount < 0 {
		return nil, ErrNegativeCount
	}
	for _, p := range posteriorSamples {
		if math.IsNaN(p) || p < 0 || p > 1 {
			return nil, ErrSampleRange
		}
	}

	r := randsrc.OrDefault(src)
	counts := make([]int, len(posteriorSamples))
	for i, p := range posteriorSamples {
		seq, err := bernoulli.Generate(p, futureCount, r)
		if err != nil {
			// Inputs were validated above; a generator error here means the
			// contract between the two packages drifted.
			return nil, err
		}
		counts[i] = seq.Successes()
	}
	return counts, nil
}
