package probability

import (
	"fmt"
	"math/big"

	apperrors "github.com/louisbranch/odds/internal/platform/errors"
)

// SimpleEvent is a single outcome together with its exact probability.
//
// A SimpleEvent keeps a non-owning reference to the space that created it
// and its position in that space's member list. The reference is only used
// to resolve complements; nothing is ever mutated through it.
type SimpleEvent[O comparable] struct {
	outcome     O
	probability *big.Rat
	space       *SampleSpace[O]
	index       int
}

// NewSimpleEvent creates a simple event for outcome.
//
// probability may be any Go integer or float type, a *big.Rat or a big.Rat.
// Any other type is a type-mismatch error; values outside [0, 1] are
// invalid-value errors. space may be nil for a detached event.
func NewSimpleEvent[O comparable](outcome O, probability any, space *SampleSpace[O]) (*SimpleEvent[O], error) {
	p, err := exactProbability(probability)
	if err != nil {
		return nil, err
	}
	return newSimpleEvent(outcome, p, space, -1)
}

func newSimpleEvent[O comparable](outcome O, p *big.Rat, space *SampleSpace[O], index int) (*SimpleEvent[O], error) {
	if !inUnitInterval(p) {
		return nil, apperrors.WithMetadata(
			apperrors.CodeProbabilityOutOfRange,
			fmt.Sprintf("probability %s for outcome %v is invalid", p.RatString(), outcome),
			map[string]string{
				"Outcome":     fmt.Sprint(outcome),
				"Probability": p.RatString(),
			},
		)
	}
	return &SimpleEvent[O]{
		outcome:     outcome,
		probability: p,
		space:       space,
		index:       index,
	}, nil
}

// Outcome returns the result of this event occurring.
func (s *SimpleEvent[O]) Outcome() O {
	return s.outcome
}

// Probability returns the probability of the outcome as a float64.
func (s *SimpleEvent[O]) Probability() float64 {
	return ratFloat(s.probability)
}

// Exact returns a copy of the exact probability of the outcome.
func (s *SimpleEvent[O]) Exact() *big.Rat {
	return new(big.Rat).Set(s.probability)
}

// Space returns the sample space the event belongs to, or nil if detached.
func (s *SimpleEvent[O]) Space() *SampleSpace[O] {
	return s.space
}

// Event returns the degenerate event containing only this simple event.
// It is named after the outcome.
func (s *SimpleEvent[O]) Event() *Event[O] {
	if s == nil {
		return nil
	}
	return &Event[O]{
		memberSet: memberSet[O]{members: []*SimpleEvent[O]{s}},
		name:      fmt.Sprint(s.outcome),
		kind:      KindSimple,
		space:     s.space,
	}
}

func (s *SimpleEvent[O]) String() string {
	return fmt.Sprintf("SimpleEvent(%v: %s)", s.outcome, s.probability.RatString())
}
