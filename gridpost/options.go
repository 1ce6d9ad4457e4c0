// Package gridpost: functional configuration for posterior estimation.
// This file defines:
//   - Option / options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each option impacts behavior and is covered by tests.
//   - Reusability: options fields are unexported; public APIs consume ...Option.
package gridpost

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultPriorSuccesses is the Success pseudo-count folded into the
	// kernel when no WithPrior option is given. Zero, together with
	// DefaultPriorFailures, yields a flat (uniform) prior over the grid.
	DefaultPriorSuccesses = 0

	// DefaultPriorFailures is the Failure pseudo-count counterpart.
	DefaultPriorFailures = 0
)

// Option mutates the internal estimation settings.
type Option func(*options)

// options carries the gathered estimation settings.
type options struct {
	priorSuccesses int
	priorFailures  int
}

// WithPrior folds Beta-form prior pseudo-observations into the kernel:
// successes and failures are added to the observed counts before the
// weights are computed, exactly as if they had been observed. Both must
// be non-negative; violations surface as ErrNegativeCount from Estimate,
// never as a silent clamp.
func WithPrior(successes, failures int) Option {
	return func(o *options) {
		o.priorSuccesses = successes
		o.priorFailures = failures
	}
}

// gatherOptions applies opts over the documented defaults and validates
// the result.
func gatherOptions(opts ...Option) (options, error) {
	o := options{
		priorSuccesses: DefaultPriorSuccesses,
		priorFailures:  DefaultPriorFailures,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.priorSuccesses < 0 || o.priorFailures < 0 {
		return options{}, ErrNegativeCount
	}
	return o, nil
}
