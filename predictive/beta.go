package predictive

import (
	exprand "golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// defaultBetaSeed mirrors the randsrc seed-0 policy for the gonum sampler,
// which consumes a golang.org/x/exp/rand source rather than math/rand.
const defaultBetaSeed uint64 = 1

// SampleBeta draws n independent samples from Beta(successes+1, failures+1),
// the conjugate posterior of a binomial probability under a uniform prior.
// The result is the usual input to Predict in the closed-form workflow.
//
// A nil src yields a fixed deterministic stream.
//
// Errors:
//   - ErrNegativeCount — successes, failures, or n below zero.
//
// Complexity: O(n) time and memory.
func SampleBeta(successes, failures, n int, src exprand.Source) ([]float64, error) {
	if successes < 0 || failures < 0 || n < 0 {
		return nil, ErrNegativeCount
	}
	if src == nil {
		src = exprand.NewSource(defaultBetaSeed)
	}

	dist := distuv.Beta{
		Alpha: float64(successes) + 1,
		Beta:  float64(failures) + 1,
		Src:   src,
	}
	samples := make([]float64, n)
	for i := range samples {
		samples[i] = dist.Rand()
	}
	return samples, nil
}
