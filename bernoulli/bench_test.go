package bernoulli_test

import (
	"testing"

	"github.com/katalvlaran/bayeskit/bernoulli"
	"github.com/katalvlaran/bayeskit/randsrc"
)

// benchmarkGenerate runs Generate with the given draw count.
// It resets the timer before entering the loop and fails on unexpected errors.
func benchmarkGenerate(b *testing.B, count int) {
	src := randsrc.New(1)

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err := bernoulli.Generate(0.5, count, src); err != nil {
			b.Fatalf("Generate failed: %v", err)
		}
	}
}

// BenchmarkGenerate_Small benchmarks a 100-draw experiment.
func BenchmarkGenerate_Small(b *testing.B) { benchmarkGenerate(b, 100) }

// BenchmarkGenerate_Medium benchmarks a 10k-draw experiment.
func BenchmarkGenerate_Medium(b *testing.B) { benchmarkGenerate(b, 10_000) }

// BenchmarkGenerate_Large benchmarks a 1M-draw experiment.
func BenchmarkGenerate_Large(b *testing.B) { benchmarkGenerate(b, 1_000_000) }
