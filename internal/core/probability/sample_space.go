package probability

import (
	"fmt"
	"math/big"
	"math/rand"
	"sync"

	apperrors "github.com/louisbranch/odds/internal/platform/errors"
	"github.com/louisbranch/odds/internal/random"
)

// SampleSpace is the set of every possible outcome of an experiment and
// the probability of each.
//
// A SampleSpace is immutable once built: outcomes can't be added, removed
// or reweighted. It is safe for concurrent use.
type SampleSpace[O comparable] struct {
	memberSet[O]
	byOutcome map[O]*SimpleEvent[O]
	sampler   sampler

	mu  sync.Mutex
	rng *rand.Rand
}

// NewSampleSpace builds a sample space from outcomes.
//
// Without weights every distinct outcome is equally likely. With partial
// weights the remaining mass is split evenly between the outcomes that
// were not weighted. The final weights must add up to exactly 1.
func NewSampleSpace[O comparable](outcomes []O, opts ...Option[O]) (*SampleSpace[O], error) {
	var cfg spaceOptions[O]
	for _, opt := range opts {
		opt(&cfg)
	}

	order := make([]O, 0, len(outcomes)+len(cfg.weights))
	seen := make(map[O]struct{}, len(outcomes)+len(cfg.weights))
	for _, o := range outcomes {
		if _, ok := seen[o]; ok {
			continue
		}
		seen[o] = struct{}{}
		order = append(order, o)
	}

	weights := make(map[O]*big.Rat, len(order))
	for _, w := range cfg.weights {
		p, err := exactProbability(w.value)
		if err != nil {
			return nil, err
		}
		if _, ok := seen[w.outcome]; !ok {
			seen[w.outcome] = struct{}{}
			order = append(order, w.outcome)
		}
		weights[w.outcome] = p
	}

	if len(order) == 0 {
		return nil, apperrors.New(apperrors.CodeSampleSpaceEmpty, "sample spaces need at least one outcome")
	}

	distributeRemaining(order, weights)

	total := new(big.Rat)
	for _, o := range order {
		total.Add(total, weights[o])
	}
	if total.Cmp(ratOne) != 0 {
		distribution := formatDistribution(order, weights)
		return nil, apperrors.WithMetadata(
			apperrors.CodeProbabilitiesNotNormalized,
			fmt.Sprintf("probabilities do not add up to 1: %s", distribution),
			map[string]string{
				"Total":        total.RatString(),
				"Distribution": distribution,
			},
		)
	}

	space := &SampleSpace[O]{
		byOutcome: make(map[O]*SimpleEvent[O], len(order)),
	}
	members := make([]*SimpleEvent[O], 0, len(order))
	for i, o := range order {
		s, err := newSimpleEvent(o, weights[o], space, i)
		if err != nil {
			return nil, err
		}
		members = append(members, s)
		space.byOutcome[o] = s
	}
	space.members = members
	space.sampler = newSampler(members)

	space.rng = cfg.rng
	if space.rng == nil {
		space.rng, _ = random.NewRand(cfg.seed)
	}
	return space, nil
}

// distributeRemaining fills in outcomes without a weight. With no weights
// at all each outcome gets 1/n; otherwise the mass left over by the given
// weights is split evenly across the rest.
func distributeRemaining[O comparable](order []O, weights map[O]*big.Rat) {
	if len(weights) == 0 {
		share := big.NewRat(1, int64(len(order)))
		for _, o := range order {
			weights[o] = share
		}
		return
	}

	remaining := new(big.Rat).Set(ratOne)
	unweighted := make([]O, 0, len(order))
	for _, o := range order {
		if p, ok := weights[o]; ok {
			remaining.Sub(remaining, p)
			continue
		}
		unweighted = append(unweighted, o)
	}
	if len(unweighted) == 0 {
		return
	}
	share := remaining.Quo(remaining, big.NewRat(int64(len(unweighted)), 1))
	for _, o := range unweighted {
		weights[o] = share
	}
}

// Universe returns the event of every outcome in the space.
func (s *SampleSpace[O]) Universe() *Event[O] {
	return newEvent("S", s, s.Members())
}

// EventByValue returns the simple event for outcome, or nil if the space
// has no such outcome.
func (s *SampleSpace[O]) EventByValue(outcome O) *SimpleEvent[O] {
	return s.byOutcome[outcome]
}

// EventByValues returns the event of every listed outcome that is in the
// space. Outcomes that are not in the space are ignored.
func (s *SampleSpace[O]) EventByValues(outcomes ...O) *Event[O] {
	wanted := make(map[O]struct{}, len(outcomes))
	for _, o := range outcomes {
		wanted[o] = struct{}{}
	}
	members := make([]*SimpleEvent[O], 0, len(wanted))
	for _, m := range s.members {
		if _, ok := wanted[m.outcome]; ok {
			members = append(members, m)
		}
	}
	return newEvent("", s, members)
}

// EventByPredicate returns the event of every outcome for which match
// returns true.
func (s *SampleSpace[O]) EventByPredicate(match func(O) bool) (*Event[O], error) {
	if match == nil {
		return nil, errPredicateRequired()
	}
	members := make([]*SimpleEvent[O], 0)
	for _, m := range s.members {
		if match(m.outcome) {
			members = append(members, m)
		}
	}
	return newEvent("", s, members), nil
}

// Select runs a query against the space. A single-value query returns the
// outcome's degenerate simple event, or nil when the outcome is absent.
func (s *SampleSpace[O]) Select(q Query[O]) (*Event[O], error) {
	var (
		e   *Event[O]
		err error
	)
	switch q.kind {
	case queryValue:
		se := s.EventByValue(q.values[0])
		if se == nil {
			return nil, nil
		}
		e = se.Event()
	case queryPredicate:
		e, err = s.EventByPredicate(q.match)
		if err != nil {
			return nil, err
		}
	default:
		e = s.EventByValues(q.values...)
	}
	if q.name != "" {
		e = e.Named(q.name)
	}
	return e, nil
}

// ChancesOf returns the probability that one of outcomes occurs in a
// single experiment, or 0 if none of them is in the space.
func (s *SampleSpace[O]) ChancesOf(outcomes ...O) float64 {
	if len(outcomes) == 1 {
		se := s.EventByValue(outcomes[0])
		if se == nil {
			return 0
		}
		return se.Probability()
	}
	return s.EventByValues(outcomes...).Probability()
}

// Chances returns the probability of the event selected by q, or 0 if it
// selects nothing.
func (s *SampleSpace[O]) Chances(q Query[O]) (float64, error) {
	e, err := s.Select(q)
	if err != nil || e == nil {
		return 0, err
	}
	return e.Probability(), nil
}

func (s *SampleSpace[O]) String() string {
	return fmt.Sprintf("SampleSpace(%d simple events)", len(s.members))
}
