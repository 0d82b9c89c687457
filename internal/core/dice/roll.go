package dice

import (
	"math/rand"

	"github.com/louisbranch/odds/internal/core/probability"
)

// RollDice rolls dice based on the provided request.
//
// # Determinism
//
// RollDice is deterministic with respect to the Seed field on Request.
// Given the same Seed and the same Dice slice (including order and values),
// RollDice will always produce the same Result.
//
// # Ordering
//
// Dice specs in Request.Dice are processed in slice order. The resulting
// Roll entries in Result.Rolls appear in the same order as the
// corresponding Spec entries in Request.Dice.
//
// # Errors
//
//   - At least one Spec must be provided in Request.Dice, otherwise
//     ErrMissingDice is returned.
//   - Each Spec must have Sides > 0 and Count > 0, otherwise
//     ErrInvalidDiceSpec is returned.
//
// Example:
//
//	result, err := RollDice(Request{
//	    Dice: []Spec{
//	        {Sides: 6, Count: 2}, // roll 2d6
//	        {Sides: 8, Count: 1}, // roll 1d8
//	    },
//	    Seed: 1,
//	})
func RollDice(request Request) (Result, error) {
	return RollWithRng(rand.New(rand.NewSource(request.Seed)), request.Dice)
}

// RollWithRng rolls dice using a provided random source.
// Every die is one experiment on the sample space of a fair die.
func RollWithRng(rng *rand.Rand, specs []Spec) (Result, error) {
	if err := validate(specs); err != nil {
		return Result{}, err
	}

	spaces := make(map[int]*probability.SampleSpace[int], len(specs))
	rolls := make([]Roll, 0, len(specs))
	total := 0

	for _, spec := range specs {
		die, ok := spaces[spec.Sides]
		if !ok {
			var err error
			die, err = Die(spec.Sides)
			if err != nil {
				return Result{}, err
			}
			spaces[spec.Sides] = die
		}

		results := make([]int, spec.Count)
		rollTotal := 0
		for i := range results {
			value := die.ExperimentWith(rng)
			results[i] = value
			rollTotal += value
		}

		rolls = append(rolls, Roll{
			Sides:   spec.Sides,
			Results: results,
			Total:   rollTotal,
		})
		total += rollTotal
	}

	return Result{
		Rolls: rolls,
		Total: total,
	}, nil
}
