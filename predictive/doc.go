// Package predictive propagates posterior uncertainty into forecasts:
// instead of plugging a single point estimate into the binomial model, it
// simulates future experiments once per posterior draw.
//
// 🚀 What is predictive?
//
//	The posterior-predictive step of the workflow:
//	  • Predict — per posterior sample p, simulate futureCount draws and
//	    record the Success count; the output histogram is the predictive
//	    distribution over future observation counts
//	  • SampleBeta — n conjugate draws from Beta(s+1, f+1), the closed-form
//	    posterior under a uniform prior, to produce those samples
//
// ✨ Key guarantees:
//   - output order and length always match the input sample order, so
//     predicted counts stay aligned with the draws that produced them
//   - deterministic under seeded sources; nil sources fall back to the
//     default stream
//   - strict validation, no clamping
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/bayeskit/predictive"
//	  "github.com/katalvlaran/bayeskit/randsrc"
//	)
//
//	samples, _ := predictive.SampleBeta(6, 3, 10_000, nil)
//	counts, err := predictive.Predict(samples, 9, randsrc.New(42))
//	if err != nil {
//	  // handle ErrNoSamples / ErrSampleRange / ErrNegativeCount
//	}
//
// Complexity: O(len(samples)·futureCount) time for Predict, O(n) for SampleBeta.
package predictive
