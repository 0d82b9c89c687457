// Package check answers difficulty checks against a dice total: whether a
// roll succeeds, by how much, and how likely success is before rolling.
package check

import (
	"fmt"

	"github.com/louisbranch/odds/internal/core/probability"
)

// MeetsDifficulty returns true if total >= difficulty.
func MeetsDifficulty(total, difficulty int) bool {
	return total >= difficulty
}

// Margin calculates the margin of success or failure.
// Positive values indicate success, negative indicate failure.
func Margin(total, difficulty int) int {
	return total - difficulty
}

// Result represents the outcome of a difficulty check.
type Result struct {
	Success bool
	Margin  int
}

// Check performs a difficulty check and returns the result.
func Check(total, difficulty int) Result {
	return Result{
		Success: MeetsDifficulty(total, difficulty),
		Margin:  Margin(total, difficulty),
	}
}

// Odds is the chance of passing a check before the dice are rolled.
type Odds struct {
	// Success is the event of every total that meets the difficulty.
	Success *probability.Event[int]
	// Failure is the complement of Success.
	Failure *probability.Event[int]
}

// Probability returns the probability of success.
func (o Odds) Probability() float64 {
	return o.Success.Probability()
}

// Chance computes the odds that a total drawn from totals, plus modifier,
// meets difficulty.
func Chance(totals *probability.SampleSpace[int], difficulty, modifier int) (Odds, error) {
	success, err := totals.EventByPredicate(func(total int) bool {
		return MeetsDifficulty(total+modifier, difficulty)
	})
	if err != nil {
		return Odds{}, err
	}
	success = success.Named(fmt.Sprintf("total%+d >= %d", modifier, difficulty))

	failure, err := success.Complement()
	if err != nil {
		return Odds{}, err
	}
	return Odds{
		Success: success,
		Failure: failure.Named(fmt.Sprintf("total%+d < %d", modifier, difficulty)),
	}, nil
}
