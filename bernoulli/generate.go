package bernoulli

import (
	"math"

	"github.com/katalvlaran/bayeskit/randsrc"
)

// Generate draws count independent binary outcomes at success probability p.
//
// Algorithm Outline:
//  1. Validate: p ∈ [0,1] (NaN rejected), count ≥ 0.
//  2. Resolve src (nil ⇒ default deterministic stream).
//  3. For each draw, emit Success iff src.Float64() < p.
//
// The returned Sequence preserves draw order and is owned by the caller.
// Passing the same seeded source replays the identical sequence, which is
// the basis of every deterministic test in this library.
//
// Errors:
//   - ErrProbabilityRange — p is NaN or outside [0,1].
//   - ErrNegativeCount    — count < 0.
//
// Complexity: O(count) time, O(count) memory.
func Generate(p float64, count int, src randsrc.Source) (Sequence, error) {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return nil, ErrProbabilityRange
	}
	if count < 0 {
		return nil, ErrNegativeCount
	}

	r := randsrc.OrDefault(src)
	seq := make(Sequence, count)
	for i := range seq {
		if r.Float64() < p {
			seq[i] = Success
		}
	}
	return seq, nil
}
