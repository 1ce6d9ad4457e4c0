package predictive_test

import (
	"fmt"

	"github.com/katalvlaran/bayeskit/predictive"
	"github.com/katalvlaran/bayeskit/randsrc"
)

// //////////////////////////////////////////////////////////////////////////////
// ExamplePredict
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A degenerate posterior certain that p=1: every future experiment of
//	5 draws must come back with all 5 successes, so the whole predictive
//	distribution collapses onto a single count.
//
// Use case:
//
//	Sanity-checking a predictive pipeline before feeding it real
//	posterior samples.
func ExamplePredict() {
	samples := []float64{1, 1, 1}

	counts, err := predictive.Predict(samples, 5, randsrc.New(1))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(counts)
	// Output:
	// [5 5 5]
}

// ExampleSampleBeta draws conjugate posterior samples for 6 successes and
// 3 failures; all draws live strictly inside the unit interval.
func ExampleSampleBeta() {
	samples, err := predictive.SampleBeta(6, 3, 10_000, nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	inUnit := 0
	for _, s := range samples {
		if s >= 0 && s <= 1 {
			inUnit++
		}
	}
	fmt.Printf("%d of %d samples in [0,1]\n", inUnit, len(samples))
	// Output:
	// 10000 of 10000 samples in [0,1]
}
