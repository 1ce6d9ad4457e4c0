// Package bernoulli simulates ordered sequences of binary outcomes drawn
// from a fixed success probability — the observation model behind every
// grid posterior in this library.
//
// 🚀 What is bernoulli?
//
//	A seeded coin-flip engine for binomial experiments:
//	  • Outcome — an immutable Success/Failure label
//	  • Sequence — one ordered batch of independent draws
//	  • Generate — count draws at probability p from an injectable source
//
// ✨ Key guarantees:
//   - deterministic under a seeded randsrc.Source (nil ⇒ default stream)
//   - strict validation: p outside [0,1] or count<0 error out, never clamp
//   - pure: no state survives a call; the returned Sequence is caller-owned
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/bayeskit/bernoulli"
//	  "github.com/katalvlaran/bayeskit/randsrc"
//	)
//
//	seq, err := bernoulli.Generate(0.7, 20, randsrc.New(42))
//	if err != nil {
//	  // handle ErrProbabilityRange or ErrNegativeCount
//	}
//	fmt.Println(seq.Successes(), "successes out of", len(seq))
//
// Complexity: O(count) time, O(count) memory per call.
package bernoulli
