package dice

import (
	"math/big"

	"github.com/louisbranch/odds/internal/core/probability"
)

// Faces is the outcome of rolling two dice together.
type Faces = probability.Pair[int, int]

// Die returns the sample space of one fair die with the given sides.
func Die(sides int, opts ...probability.Option[int]) (*probability.SampleSpace[int], error) {
	if sides <= 0 {
		return nil, ErrInvalidDiceSpec
	}
	return probability.NewSampleSpace(faces(sides), opts...)
}

// Pair returns the sample space of two fair dice rolled together, one
// outcome per ordered pair of faces.
func Pair(first, second int, opts ...probability.Option[Faces]) (*probability.SampleSpace[Faces], error) {
	if first <= 0 || second <= 0 {
		return nil, ErrInvalidDiceSpec
	}
	return probability.NewSampleSpace(probability.Product(faces(first), faces(second)), opts...)
}

// Sum returns the total of both faces.
func Sum(f Faces) int {
	return f.First + f.Second
}

// Totals returns the sample space of the total of a dice pool. The exact
// distribution is built by convolving one die at a time, so 2d6 gives 7 a
// weight of exactly 6/36.
func Totals(specs []Spec, opts ...probability.Option[int]) (*probability.SampleSpace[int], error) {
	if err := validate(specs); err != nil {
		return nil, err
	}

	// ways[t] counts the face combinations that add up to t.
	ways := map[int]*big.Int{0: big.NewInt(1)}
	low, high := 0, 0
	combinations := big.NewInt(1)
	for _, spec := range specs {
		for i := 0; i < spec.Count; i++ {
			next := make(map[int]*big.Int, high-low+spec.Sides)
			for total := low; total <= high; total++ {
				count, ok := ways[total]
				if !ok {
					continue
				}
				for face := 1; face <= spec.Sides; face++ {
					sum, ok := next[total+face]
					if !ok {
						sum = new(big.Int)
						next[total+face] = sum
					}
					sum.Add(sum, count)
				}
			}
			ways = next
			low++
			high += spec.Sides
			combinations.Mul(combinations, big.NewInt(int64(spec.Sides)))
		}
	}

	outcomes := make([]int, 0, high-low+1)
	weights := make([]probability.Option[int], 0, high-low+1)
	for total := low; total <= high; total++ {
		outcomes = append(outcomes, total)
		weights = append(weights, probability.WithExactWeight(total, new(big.Rat).SetFrac(ways[total], combinations)))
	}
	return probability.NewSampleSpace(outcomes, append(weights, opts...)...)
}

func faces(sides int) []int {
	out := make([]int, sides)
	for i := range out {
		out[i] = i + 1
	}
	return out
}
