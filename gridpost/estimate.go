package gridpost

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Estimate computes the normalized grid posterior for a binomial process
// with the given observed successes and failures, optionally folding a
// Beta-form prior via WithPrior.
//
// Algorithm Outline (log-space, always):
//  1. Validate grid and counts; gather options.
//  2. Let a = successes+priorSuccesses, b = failures+priorFailures.
//  3. For each grid point p compute
//     log w(p) = a·log(p) + b·log(1-p),
//     where a zero exponent contributes exactly 0 (so 0·log 0 = 0) and an
//     impossible boundary (p=0 with a>0, p=1 with b>0) contributes -Inf.
//  4. Shift by max(log w) and exponentiate — this is what keeps realistic
//     counts (N ≳ 150) from overflowing the raw powers.
//  5. Normalize so the weights sum to 1.
//
// The output weight order matches the input grid order, and the returned
// Posterior holds its own copy of the grid.
//
// Errors:
//   - ErrEmptyGrid / ErrGridRange / ErrGridOrder — malformed grid.
//   - ErrNegativeCount — negative observed or prior counts.
//   - ErrDegenerateDistribution — every weight is exactly zero
//     (e.g., a two-point grid {0,1} with both counts positive).
//
// Complexity: O(len(grid)) time and memory.
func Estimate(grid Grid, successes, failures int, opts ...Option) (Posterior, error) {
	if successes < 0 || failures < 0 {
		return Posterior{}, ErrNegativeCount
	}
	if err := grid.validate(); err != nil {
		return Posterior{}, err
	}
	cfg, err := gatherOptions(opts...)
	if err != nil {
		return Posterior{}, err
	}

	a := float64(successes + cfg.priorSuccesses)
	b := float64(failures + cfg.priorFailures)

	logw := make([]float64, len(grid))
	for i, p := range grid {
		logw[i] = logKernel(p, a, b)
	}

	// Max-shift before exponentiating; if even the best point is impossible
	// the posterior is undefined.
	shift := floats.Max(logw)
	if math.IsInf(shift, -1) {
		return Posterior{}, ErrDegenerateDistribution
	}

	weights := make([]float64, len(logw))
	for i, lw := range logw {
		weights[i] = math.Exp(lw - shift)
	}
	total := floats.Sum(weights)
	if total == 0 {
		return Posterior{}, ErrDegenerateDistribution
	}
	floats.Scale(1/total, weights)

	return Posterior{
		Grid:    append(Grid(nil), grid...),
		Weights: weights,
	}, nil
}

// logKernel evaluates log(p^a · (1-p)^b) under the convention 0·log 0 = 0:
// a zero exponent removes its factor entirely, so boundary grid points stay
// legal and weigh exactly 0 only when an impossible factor remains.
func logKernel(p, a, b float64) float64 {
	var lw float64
	if a > 0 {
		lw += a * math.Log(p) // log(0) = -Inf marks the impossible boundary
	}
	if b > 0 {
		lw += b * math.Log(1 - p)
	}
	return lw
}
