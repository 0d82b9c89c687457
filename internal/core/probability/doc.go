// Package probability models discrete probability over a finite sample space.
//
// A SampleSpace owns one SimpleEvent per outcome, each carrying an exact
// rational weight. The weights of a space always add up to exactly 1; this
// is checked with math/big rationals, never floating point.
//
// Events are sets of simple events drawn from one space. They support the
// usual algebra (union, intersection, complement), conditional probability,
// and mutual exclusivity and independence checks. Probabilities are
// reported as float64 at the boundary; the Exact variants return the
// underlying rational so comparisons are free of rounding drift.
//
// # Queries
//
// Spaces answer three kinds of query:
//   - a single value: the SimpleEvent for that outcome, if any;
//   - a predicate: the event of every outcome it accepts;
//   - a list of values: the event of every listed outcome present.
//
// Select dispatches a Query built with Value, Where or Values.
//
// # Experiments
//
// Experiment draws one outcome with probability equal to its exact weight.
// The space is never mutated by sampling. Each space owns a generator
// guarded by a mutex; callers that need deterministic draws inject one with
// WithRand or WithSeed, or pass their own to ExperimentWith.
//
// Example:
//
//	die, _ := probability.NewSampleSpace([]int{1, 2, 3, 4, 5, 6})
//	die.ChancesOf(4)                    // 1/6
//	even, _ := die.EventByPredicate(func(o int) bool { return o%2 == 0 })
//	even.Probability()                  // 0.5
package probability
