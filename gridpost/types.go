// Package gridpost core types: the candidate grid and the discrete posterior.
package gridpost

import (
	"math"
	"sort"

	"github.com/katalvlaran/bayeskit/randsrc"
)

// Grid is an ordered set of candidate success probabilities.
// Invariant: strictly increasing, every point in [0,1].
type Grid []float64

// UniformGrid returns n evenly spaced candidate probabilities spanning
// [0,1] inclusive — the grid shape used throughout the globe-tossing
// narrative. n must be at least 2 so both endpoints exist.
//
// Complexity: O(n).
func UniformGrid(n int) (Grid, error) {
	if n < 2 {
		return nil, ErrEmptyGrid
	}
	g := make(Grid, n)
	step := 1 / float64(n-1)
	for i := range g {
		g[i] = float64(i) * step
	}
	// Pin the upper endpoint: accumulated float steps may land at 1±ulp.
	g[n-1] = 1
	return g, nil
}

// validate enforces the Grid invariant: non-empty, strictly increasing,
// all points in [0,1], no NaN.
func (g Grid) validate() error {
	if len(g) == 0 {
		return ErrEmptyGrid
	}
	prev := math.Inf(-1)
	for _, p := range g {
		if math.IsNaN(p) || p < 0 || p > 1 {
			return ErrGridRange
		}
		if p <= prev {
			return ErrGridOrder
		}
		prev = p
	}
	return nil
}

// Posterior is a normalized discrete distribution over a candidate grid.
// Weights[i] is the posterior probability of Grid[i]; the weights sum to 1
// and both slices share length and order. Both slices are plain ordered
// numeric sequences, deliberately free of any renderer coupling.
type Posterior struct {
	Grid    Grid
	Weights []float64
}

// Mean returns the posterior expectation Σ pᵢ·wᵢ.
//
// Complexity: O(n).
func (p Posterior) Mean() float64 {
	var mean float64
	for i, v := range p.Grid {
		mean += v * p.Weights[i]
	}
	return mean
}

// Mode returns the grid point with the largest weight (the MAP estimate
// on the grid). Ties resolve to the smaller probability, matching grid order.
//
// Complexity: O(n).
func (p Posterior) Mode() float64 {
	best := 0
	for i, w := range p.Weights {
		if w > p.Weights[best] {
			best = i
		}
	}
	return p.Grid[best]
}

// Sample draws n grid values with replacement, each with its posterior
// weight, via cumulative-weight inversion of one uniform variate per draw.
// A nil src falls back to the default deterministic stream.
//
// The result feeds predictive.Predict: it is the discrete counterpart of
// sampling the conjugate Beta posterior.
//
// Complexity: O(n·log m) time for m grid points, O(n+m) memory.
func (p Posterior) Sample(n int, src randsrc.Source) ([]float64, error) {
	if n < 0 {
		return nil, ErrSampleCount
	}
	if len(p.Weights) == 0 || len(p.Weights) != len(p.Grid) {
		return nil, ErrEmptyGrid
	}

	// Cumulative weights; the final entry is pinned to 1 so a uniform draw
	// just below 1 cannot fall off the end through rounding.
	cum := make([]float64, len(p.Weights))
	var run float64
	for i, w := range p.Weights {
		run += w
		cum[i] = run
	}
	cum[len(cum)-1] = 1

	r := randsrc.OrDefault(src)
	out := make([]float64, n)
	for i := range out {
		u := r.Float64()
		j := sort.SearchFloat64s(cum, u)
		if j == len(cum) {
			j = len(cum) - 1
		}
		out[i] = p.Grid[j]
	}
	return out, nil
}
