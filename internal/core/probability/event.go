package probability

import (
	"fmt"
	"math/big"
	"slices"

	apperrors "github.com/louisbranch/odds/internal/platform/errors"
)

// DefaultEventName is the name given to events that were not named.
const DefaultEventName = "E"

// Kind tags an event as a single outcome or a composite of outcomes.
type Kind int

const (
	KindComposite Kind = iota
	KindSimple
)

func (k Kind) String() string {
	switch k {
	case KindSimple:
		return "simple"
	case KindComposite:
		return "composite"
	default:
		return "unknown"
	}
}

// Event is a named set of simple events from one sample space: the
// occurrence of any one of their outcomes.
//
// Events are immutable values. Algebra returns new events and never
// modifies its operands.
type Event[O comparable] struct {
	memberSet[O]
	name  string
	kind  Kind
	space *SampleSpace[O]
}

func newEvent[O comparable](name string, space *SampleSpace[O], members []*SimpleEvent[O]) *Event[O] {
	if name == "" {
		name = DefaultEventName
	}
	return &Event[O]{
		memberSet: memberSet[O]{members: members},
		name:      name,
		kind:      KindComposite,
		space:     space,
	}
}

// Event returns e itself so events satisfy Occurrence.
func (e *Event[O]) Event() *Event[O] {
	return e
}

// Name returns the display name of the event.
func (e *Event[O]) Name() string {
	return e.name
}

// Kind reports whether the event is a single outcome or a composite.
func (e *Event[O]) Kind() Kind {
	return e.kind
}

// Space returns the sample space the event was drawn from.
func (e *Event[O]) Space() *SampleSpace[O] {
	return e.space
}

// Named returns a copy of the event with a new name.
func (e *Event[O]) Named(name string) *Event[O] {
	out := *e
	if name == "" {
		name = DefaultEventName
	}
	out.name = name
	return &out
}

// Probability returns the probability of the event as a float64.
func (e *Event[O]) Probability() float64 {
	return ratFloat(e.Exact())
}

// Exact returns the exact probability of the event: the sum of its
// members' probabilities.
func (e *Event[O]) Exact() *big.Rat {
	return sumProbabilities(e.members)
}

// Given returns the probability of e conditioned on given occurring.
func (e *Event[O]) Given(given Occurrence[O]) (float64, error) {
	p, err := e.GivenExact(given)
	if err != nil {
		return 0, err
	}
	return ratFloat(p), nil
}

// GivenExact returns P(e ∩ given) / P(given) as an exact rational.
//
// Conditioning on an event of probability zero is an invalid-value error
// rather than a division by zero.
func (e *Event[O]) GivenExact(given Occurrence[O]) (*big.Rat, error) {
	g, err := e.operand("given", given)
	if err != nil {
		return nil, err
	}
	denominator := g.Exact()
	if denominator.Sign() == 0 {
		return nil, apperrors.WithMetadata(
			apperrors.CodeConditionZeroProbability,
			fmt.Sprintf("cannot condition on zero-probability event %s", g.name),
			map[string]string{"Event": g.name},
		)
	}
	joint := sumProbabilities(intersect(e.members, g.members))
	return joint.Quo(joint, denominator), nil
}

// Union returns the event that e or other occurs.
func (e *Event[O]) Union(other Occurrence[O]) (*Event[O], error) {
	o, err := e.operand("union", other)
	if err != nil {
		return nil, err
	}
	return newEvent("", e.space, union(e.members, o.members)), nil
}

// Intersection returns the event that both e and other occur. Disjoint
// events intersect in an empty, zero-probability event.
func (e *Event[O]) Intersection(other Occurrence[O]) (*Event[O], error) {
	o, err := e.operand("intersection", other)
	if err != nil {
		return nil, err
	}
	return newEvent("", e.space, intersect(e.members, o.members)), nil
}

// Complement returns the event that e does not occur.
//
// Events remember their space even when empty, so the complement of an
// empty event is the whole space. Events that were never drawn from a
// space (detached simple events, the zero Event) have no complement.
func (e *Event[O]) Complement() (*Event[O], error) {
	if e.space == nil {
		return nil, apperrors.WithMetadata(
			apperrors.CodeEventWithoutSpace,
			fmt.Sprintf("event %s has no sample space", e.name),
			map[string]string{"Event": e.name},
		)
	}
	own := e.lookup()
	rest := make([]*SimpleEvent[O], 0, len(e.space.members))
	for _, s := range e.space.members {
		if _, ok := own[s]; !ok {
			rest = append(rest, s)
		}
	}
	return newEvent("", e.space, rest), nil
}

// MutuallyExclusiveWith reports whether e and other can never both occur.
func (e *Event[O]) MutuallyExclusiveWith(other Occurrence[O]) (bool, error) {
	o, err := e.operand("mutual exclusivity check", other)
	if err != nil {
		return false, err
	}
	return len(intersect(e.members, o.members)) == 0, nil
}

// IndependentOf reports whether the probability of e is unchanged by
// other occurring. The comparison is exact.
func (e *Event[O]) IndependentOf(other Occurrence[O]) (bool, error) {
	conditional, err := e.GivenExact(other)
	if err != nil {
		return false, err
	}
	return e.Exact().Cmp(conditional) == 0, nil
}

// DependentOn reports whether the probability of e changes when other
// occurs.
func (e *Event[O]) DependentOn(other Occurrence[O]) (bool, error) {
	independent, err := e.IndependentOf(other)
	if err != nil {
		return false, err
	}
	return !independent, nil
}

// Equal reports whether both events hold the same simple events.
func (e *Event[O]) Equal(other Occurrence[O]) bool {
	o := resolve(other)
	if o == nil || len(o.members) != len(e.members) {
		return false
	}
	return e.ContainsEvent(o)
}

func (e *Event[O]) String() string {
	return fmt.Sprintf("Event(%s)", e.name)
}

// operand validates the other side of a binary operation.
func (e *Event[O]) operand(operation string, other Occurrence[O]) (*Event[O], error) {
	o := resolve(other)
	if o == nil {
		return nil, errEventRequired(operation)
	}
	if o.space != e.space {
		return nil, errSpaceMismatch(operation)
	}
	return o, nil
}

func union[O comparable](a, b []*SimpleEvent[O]) []*SimpleEvent[O] {
	seen := make(map[*SimpleEvent[O]]struct{}, len(a)+len(b))
	out := make([]*SimpleEvent[O], 0, len(a)+len(b))
	for _, list := range [][]*SimpleEvent[O]{a, b} {
		for _, s := range list {
			if _, ok := seen[s]; ok {
				continue
			}
			seen[s] = struct{}{}
			out = append(out, s)
		}
	}
	// Keep space order; detached events all have index -1 and stay put.
	slices.SortStableFunc(out, func(x, y *SimpleEvent[O]) int {
		return x.index - y.index
	})
	return out
}

func intersect[O comparable](a, b []*SimpleEvent[O]) []*SimpleEvent[O] {
	inB := make(map[*SimpleEvent[O]]struct{}, len(b))
	for _, s := range b {
		inB[s] = struct{}{}
	}
	out := make([]*SimpleEvent[O], 0)
	for _, s := range a {
		if _, ok := inB[s]; ok {
			out = append(out, s)
		}
	}
	return out
}
