package probability

import (
	"math/big"
	"math/rand"
	"sort"
)

// sampler maps uniform integers onto outcomes in proportion to their exact
// weights. Every weight is scaled to the least common denominator, so a
// draw in [0, denominator) picks outcome i with probability exactly p_i.
type sampler struct {
	denominator *big.Int
	cumulative  []*big.Int
}

func newSampler[O comparable](members []*SimpleEvent[O]) sampler {
	denominator := big.NewInt(1)
	for _, m := range members {
		denominator = lcm(denominator, m.probability.Denom())
	}

	cumulative := make([]*big.Int, len(members))
	running := new(big.Int)
	for i, m := range members {
		scaled := new(big.Int).Quo(denominator, m.probability.Denom())
		scaled.Mul(scaled, m.probability.Num())
		running = new(big.Int).Add(running, scaled)
		cumulative[i] = running
	}
	return sampler{denominator: denominator, cumulative: cumulative}
}

// pick returns the index of the outcome drawn with rng.
func (s sampler) pick(rng *rand.Rand) int {
	r := new(big.Int).Rand(rng, s.denominator)
	// Zero-weight outcomes share their predecessor's bound and are never
	// the first bound above r.
	return sort.Search(len(s.cumulative), func(i int) bool {
		return s.cumulative[i].Cmp(r) > 0
	})
}

func lcm(a, b *big.Int) *big.Int {
	gcd := new(big.Int).GCD(nil, nil, a, b)
	out := new(big.Int).Quo(a, gcd)
	return out.Mul(out, b)
}

// Experiment draws one outcome, each with probability equal to its weight.
// Draws are independent and never change the space.
func (s *SampleSpace[O]) Experiment() O {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.members[s.sampler.pick(s.rng)].outcome
}

// ExperimentWith draws one outcome using rng instead of the space's own
// generator. rng is not locked; callers sharing it must synchronize.
// A nil rng falls back to Experiment.
func (s *SampleSpace[O]) ExperimentWith(rng *rand.Rand) O {
	if rng == nil {
		return s.Experiment()
	}
	return s.members[s.sampler.pick(rng)].outcome
}

// Experiments draws n outcomes with replacement.
func (s *SampleSpace[O]) Experiments(n int) []O {
	if n <= 0 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]O, n)
	for i := range out {
		out[i] = s.members[s.sampler.pick(s.rng)].outcome
	}
	return out
}
