// Package bernoulli defines the outcome and sequence types shared by the
// generator and the predictive samplers.
package bernoulli

// Outcome is a single binary draw. It is immutable once produced.
//
// The two labels carry no numeric meaning on their own; Success is the
// event whose probability the inference machinery estimates (“Water” in
// the classic globe-tossing narrative, heads for a coin, and so on).
type Outcome uint8

const (
	// Failure is the complement event (probability 1-p).
	Failure Outcome = iota

	// Success is the event of interest (probability p).
	Success
)

// String returns the canonical label for the outcome.
func (o Outcome) String() string {
	if o == Success {
		return "Success"
	}
	return "Failure"
}

// Sequence is one ordered batch of independent draws, produced by a single
// Generate call and owned exclusively by its caller.
type Sequence []Outcome

// Successes counts the Success outcomes in the sequence.
//
// Complexity: O(n).
func (s Sequence) Successes() int {
	var n int
	for _, o := range s {
		if o == Success {
			n++
		}
	}
	return n
}

// Failures counts the Failure outcomes in the sequence.
//
// Complexity: O(n).
func (s Sequence) Failures() int {
	return len(s) - s.Successes()
}
