package probability

import (
	"fmt"
	"math/big"
	"math/rand"
	"sort"
)

// Option configures a SampleSpace.
type Option[O comparable] func(*spaceOptions[O])

type weight[O comparable] struct {
	outcome O
	value   any
}

type spaceOptions[O comparable] struct {
	weights []weight[O]
	rng     *rand.Rand
	seed    int64
}

// WithWeight assigns a probability to one outcome. The float is read
// through its decimal form, so 0.3 is exactly 3/10. Outcomes that are not
// listed in the space are added to it.
func WithWeight[O comparable](outcome O, p float64) Option[O] {
	return func(o *spaceOptions[O]) {
		o.weights = append(o.weights, weight[O]{outcome: outcome, value: p})
	}
}

// WithExactWeight assigns an exact rational probability to one outcome.
func WithExactWeight[O comparable](outcome O, p *big.Rat) Option[O] {
	return func(o *spaceOptions[O]) {
		o.weights = append(o.weights, weight[O]{outcome: outcome, value: p})
	}
}

// WithWeights assigns probabilities to several outcomes at once. Outcomes
// missing from the space's outcome list are appended ordered by their
// printed form, so construction is deterministic.
func WithWeights[O comparable](p map[O]float64) Option[O] {
	return func(o *spaceOptions[O]) {
		keys := make([]O, 0, len(p))
		for k := range p {
			keys = append(keys, k)
		}
		sort.SliceStable(keys, func(i, j int) bool {
			return fmt.Sprint(keys[i]) < fmt.Sprint(keys[j])
		})
		for _, k := range keys {
			o.weights = append(o.weights, weight[O]{outcome: k, value: p[k]})
		}
	}
}

// WithRand sets the generator used by Experiment.
func WithRand[O comparable](rng *rand.Rand) Option[O] {
	return func(o *spaceOptions[O]) {
		o.rng = rng
	}
}

// WithSeed seeds the generator used by Experiment. A zero seed picks a
// fresh one.
func WithSeed[O comparable](seed int64) Option[O] {
	return func(o *spaceOptions[O]) {
		o.seed = seed
	}
}
