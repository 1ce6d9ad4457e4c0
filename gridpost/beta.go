package gridpost

import "gonum.org/v1/gonum/stat/distuv"

// BetaPDF evaluates the Beta(successes+1, failures+1) probability density
// at x — the analytic limit the grid approximation converges to as the
// grid resolution grows (a uniform prior turns the binomial likelihood
// into exactly this conjugate posterior).
//
// Points outside [0,1] have density 0. Counts must be non-negative.
//
// Complexity: O(1).
func BetaPDF(x float64, successes, failures int) (float64, error) {
	if successes < 0 || failures < 0 {
		return 0, ErrNegativeCount
	}
	dist := distuv.Beta{
		Alpha: float64(successes) + 1,
		Beta:  float64(failures) + 1,
	}
	return dist.Prob(x), nil
}
