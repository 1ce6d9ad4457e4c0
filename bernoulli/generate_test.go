package bernoulli_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/bayeskit/bernoulli"
	"github.com/katalvlaran/bayeskit/randsrc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGenerate_InvalidProbability verifies that out-of-range or NaN
// probabilities return ErrProbabilityRange and are never clamped.
func TestGenerate_InvalidProbability(t *testing.T) {
	for _, p := range []float64{-0.01, 1.01, math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := bernoulli.Generate(p, 10, randsrc.New(1))
		assert.ErrorIs(t, err, bernoulli.ErrProbabilityRange, "p=%v must error", p)
	}
}

// TestGenerate_NegativeCount verifies count<0 returns ErrNegativeCount.
func TestGenerate_NegativeCount(t *testing.T) {
	_, err := bernoulli.Generate(0.5, -1, randsrc.New(1))
	assert.ErrorIs(t, err, bernoulli.ErrNegativeCount, "negative count must error")
}

// TestGenerate_Length verifies len(seq)==count for every valid count,
// including the empty experiment.
func TestGenerate_Length(t *testing.T) {
	for _, count := range []int{0, 1, 7, 1000} {
		seq, err := bernoulli.Generate(0.5, count, randsrc.New(11))
		require.NoError(t, err)
		assert.Len(t, seq, count, "sequence length must equal count")
	}
}

// TestGenerate_CertainOutcomes verifies the degenerate probabilities:
// p=1 yields only Success, p=0 only Failure.
func TestGenerate_CertainOutcomes(t *testing.T) {
	all, err := bernoulli.Generate(1.0, 50, randsrc.New(2))
	require.NoError(t, err)
	assert.Equal(t, 50, all.Successes(), "p=1 must yield all successes")

	none, err := bernoulli.Generate(0.0, 50, randsrc.New(2))
	require.NoError(t, err)
	assert.Equal(t, 0, none.Successes(), "p=0 must yield no successes")
	assert.Equal(t, 50, none.Failures())
}

// TestGenerate_FrequencyConvergence checks the long-run Success fraction
// against the true probability: 100k draws at p=0.5 within ±0.01
// (≈6 standard errors, deterministic under the fixed seed anyway).
func TestGenerate_FrequencyConvergence(t *testing.T) {
	const count = 100_000
	seq, err := bernoulli.Generate(0.5, count, randsrc.New(42))
	require.NoError(t, err)

	frac := float64(seq.Successes()) / float64(count)
	assert.InDelta(t, 0.5, frac, 0.01, "empirical frequency must converge to p")
}

// TestGenerate_SeededReplay verifies that equal seeds replay the exact
// sequence and distinct seeds do not.
func TestGenerate_SeededReplay(t *testing.T) {
	a, err := bernoulli.Generate(0.3, 500, randsrc.New(7))
	require.NoError(t, err)
	b, err := bernoulli.Generate(0.3, 500, randsrc.New(7))
	require.NoError(t, err)
	assert.Equal(t, a, b, "same seed must replay the identical sequence")

	c, err := bernoulli.Generate(0.3, 500, randsrc.New(8))
	require.NoError(t, err)
	assert.NotEqual(t, a, c, "different seeds should diverge")
}

// TestGenerate_NilSourceDefault verifies the nil-source fallback matches
// the explicit default stream.
func TestGenerate_NilSourceDefault(t *testing.T) {
	a, err := bernoulli.Generate(0.5, 100, nil)
	require.NoError(t, err)
	b, err := bernoulli.Generate(0.5, 100, randsrc.New(0))
	require.NoError(t, err)
	assert.Equal(t, a, b, "nil source must alias the seed-0 stream")
}

// TestOutcome_String covers both labels.
func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "Success", bernoulli.Success.String())
	assert.Equal(t, "Failure", bernoulli.Failure.String())
}

// TestSequence_Counts checks Successes/Failures on a hand-built sequence.
func TestSequence_Counts(t *testing.T) {
	seq := bernoulli.Sequence{
		bernoulli.Success, bernoulli.Failure, bernoulli.Success,
		bernoulli.Failure, bernoulli.Failure,
	}
	assert.Equal(t, 2, seq.Successes())
	assert.Equal(t, 3, seq.Failures())
}
