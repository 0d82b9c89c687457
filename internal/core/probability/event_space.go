package probability

import "math/big"

// EventSpace is anything made of simple events. Events and sample spaces
// both implement it.
type EventSpace[O comparable] interface {
	// Members returns the simple events of the space.
	Members() []*SimpleEvent[O]
	// Outcomes returns the distinct outcomes of the space.
	Outcomes() []O
	// OutcomeProbabilities maps each outcome to its probability.
	OutcomeProbabilities() map[O]float64
	// ExactOutcomeProbabilities maps each outcome to its exact probability.
	ExactOutcomeProbabilities() map[O]*big.Rat
	// Contains reports whether some member produces outcome.
	Contains(outcome O) bool
	// ContainsEvent reports whether every member of e is a member of the space.
	ContainsEvent(e Occurrence[O]) bool
}

// Occurrence is anything that can be viewed as an Event. *Event and
// *SimpleEvent both satisfy it, so algebra accepts either.
type Occurrence[O comparable] interface {
	Event() *Event[O]
}

var (
	_ EventSpace[int] = (*Event[int])(nil)
	_ EventSpace[int] = (*SampleSpace[int])(nil)
	_ Occurrence[int] = (*Event[int])(nil)
	_ Occurrence[int] = (*SimpleEvent[int])(nil)
)

// In reports whether e is contained in space.
func In[O comparable](space EventSpace[O], e Occurrence[O]) bool {
	if space == nil {
		return false
	}
	return space.ContainsEvent(e)
}

// memberSet implements EventSpace over a fixed list of simple events.
// The list never changes after construction.
type memberSet[O comparable] struct {
	members []*SimpleEvent[O]
}

// Members returns a copy of the member list.
func (m memberSet[O]) Members() []*SimpleEvent[O] {
	out := make([]*SimpleEvent[O], len(m.members))
	copy(out, m.members)
	return out
}

// Len returns the number of simple events.
func (m memberSet[O]) Len() int {
	return len(m.members)
}

func (m memberSet[O]) Outcomes() []O {
	out := make([]O, 0, len(m.members))
	for _, s := range m.members {
		out = append(out, s.outcome)
	}
	return out
}

func (m memberSet[O]) OutcomeProbabilities() map[O]float64 {
	out := make(map[O]float64, len(m.members))
	for _, s := range m.members {
		out[s.outcome] = s.Probability()
	}
	return out
}

func (m memberSet[O]) ExactOutcomeProbabilities() map[O]*big.Rat {
	out := make(map[O]*big.Rat, len(m.members))
	for _, s := range m.members {
		out[s.outcome] = s.Exact()
	}
	return out
}

func (m memberSet[O]) Contains(outcome O) bool {
	for _, s := range m.members {
		if s.outcome == outcome {
			return true
		}
	}
	return false
}

func (m memberSet[O]) ContainsEvent(e Occurrence[O]) bool {
	ev := resolve(e)
	if ev == nil {
		return false
	}
	own := m.lookup()
	for _, s := range ev.members {
		if _, ok := own[s]; !ok {
			return false
		}
	}
	return true
}

func (m memberSet[O]) lookup() map[*SimpleEvent[O]]struct{} {
	out := make(map[*SimpleEvent[O]]struct{}, len(m.members))
	for _, s := range m.members {
		out[s] = struct{}{}
	}
	return out
}

// resolve returns the event behind an occurrence, or nil for nil inputs
// (including typed nil pointers).
func resolve[O comparable](o Occurrence[O]) *Event[O] {
	if o == nil {
		return nil
	}
	return o.Event()
}
