// Package builder provides helper functions and types
// for configuring edge-weight draws in the topology generator.
package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/ripnet/core"
)

// WeightFn produces an edge weight from rng.
// It must be deterministic for a given RNG state and return values in
// [core.MinWeight, core.MaxWeight].
type WeightFn func(rng *rand.Rand) int

// NonZeroWeightFn draws uniformly from [0, WeightBound) and redraws while the
// result is 0, so the outcome lies in [1, 99].
//
// Termination: each draw is zero with probability 1/100, so the number of
// draws is geometric with mean 100/99; the loop ends with probability 1.
// Complexity: O(1) expected time, O(1) space.
func NonZeroWeightFn(rng *rand.Rand) int {
	w := rng.Intn(WeightBound)
	for w == 0 {
		w = rng.Intn(WeightBound)
	}

	return w
}

// ConstantWeightFn returns a WeightFn that always yields w and consumes no
// randomness. Panics if w is outside [core.MinWeight, core.MaxWeight].
func ConstantWeightFn(w int) WeightFn {
	if w < core.MinWeight || w > core.MaxWeight {
		panic(fmt.Sprintf("ConstantWeightFn: w must be in [%d,%d], got %d", core.MinWeight, core.MaxWeight, w))
	}

	return func(_ *rand.Rand) int {
		return w
	}
}

// UniformWeightFn returns a WeightFn sampling uniformly in [min, max] inclusive.
// Panics unless core.MinWeight ≤ min ≤ max ≤ core.MaxWeight.
func UniformWeightFn(min, max int) WeightFn {
	if min < core.MinWeight || max > core.MaxWeight || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require %d ≤ min ≤ max ≤ %d, got min=%d, max=%d",
			core.MinWeight, core.MaxWeight, min, max))
	}
	span := max - min + 1

	return func(rng *rand.Rand) int {
		if span == 1 {
			return min
		}

		return min + rng.Intn(span)
	}
}

// WithConstantWeight sets a fixed edge weight via ConstantWeightFn.
// Complexity: O(1).
func WithConstantWeight(w int) BuilderOption {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithUniformWeight sets weights ∼ U[min,max] via UniformWeightFn.
// Complexity: O(1).
func WithUniformWeight(min, max int) BuilderOption {
	return WithWeightFn(UniformWeightFn(min, max))
}
