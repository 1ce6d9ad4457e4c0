// Package bayeskit is a small toolkit for grid-based Bayesian inference
// on binomial processes — simulate binary sequences, approximate the
// posterior over a discretized probability grid, and push that posterior
// forward into predictive distributions.
//
// 🚀 What is bayeskit?
//
//	A deterministic, dependency-light library that brings together:
//		• Sequence simulation: seeded binary draws from a fixed success probability
//		• Grid posteriors: log-space Beta-Binomial kernel over any candidate grid
//		• Conjugate limit: the Beta(s+1, f+1) density as the continuous analogue
//		• Predictive sampling: future success counts that carry posterior uncertainty
//
// ✨ Why choose bayeskit?
//
//   - Reproducible – every random draw flows through an injectable, seedable source
//   - Rock-solid numerics – log-sum-exp normalization, no overflow at large counts
//   - Pure functions – no globals, no hidden state, explicit sentinel errors
//   - Plain outputs – posteriors and predictions are ordered float/int slices,
//     ready for any plotting or reporting layer
//
// Under the hood, everything is organized under four subpackages:
//
//	randsrc/    — seedable uniform randomness source + substream derivation
//	bernoulli/  — Outcome, Sequence and the binary-sequence generator
//	gridpost/   — candidate-grid posteriors, Beta density, posterior summaries
//	predictive/ — posterior-predictive counts & conjugate Beta sampling
//
// Quick sketch of the workflow:
//
//	bernoulli.Generate ──▶ counts ──▶ gridpost.Estimate ──▶ Posterior
//	                                         │
//	                 Posterior.Sample  or  predictive.SampleBeta
//	                                         │
//	                                         ▼
//	                          predictive.Predict ──▶ future counts
//
// Dive into examples/ for end-to-end scenario programs.
//
//	go get github.com/katalvlaran/bayeskit
package bayeskit
