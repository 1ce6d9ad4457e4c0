// Package gridpost approximates the Bayesian posterior of a binomial
// success probability over a finite grid of candidate values, with the
// conjugate Beta density as its continuous limit.
//
// 🚀 What is gridpost?
//
//	Grid approximation in its classic form: score every candidate
//	probability p by the Beta-Binomial kernel
//
//	    w(p) = p^(s+s₀) · (1-p)^(f+f₀)
//
//	(s,f observed counts; s₀,f₀ optional prior pseudo-counts), then
//	normalize the weights to a discrete posterior over the grid.
//
// ✨ Key features:
//   - log-space kernel + max-shift normalization: no overflow or underflow,
//     even at counts where the raw powers exceed float64 range (N ≳ 150)
//   - exact boundary semantics: p=0 or p=1 on the “wrong” side weighs
//     exactly 0 and never raises
//   - Beta-form priors folded as pseudo-counts via WithPrior
//   - BetaPDF — the Beta(s+1, f+1) density the grid converges to
//   - posterior summaries (Mean, Mode) and weighted grid resampling
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/bayeskit/gridpost"
//
//	grid, _ := gridpost.UniformGrid(101)          // 0.00, 0.01, …, 1.00
//	post, err := gridpost.Estimate(grid, 6, 3)    // 6 successes, 3 failures
//	if err != nil {
//	  // handle ErrInvalidParameter / ErrDegenerateDistribution
//	}
//	fmt.Println(post.Mean(), post.Mode())
//
// Outputs are plain ordered slices (Posterior.Grid, Posterior.Weights) so
// any plotting or reporting layer can consume them without coupling to
// this package.
//
// Performance:
//
//   - Estimate: O(len(grid)) time and memory
//   - BetaPDF:  O(1)
package gridpost
