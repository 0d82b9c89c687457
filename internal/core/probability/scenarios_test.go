package probability_test

import (
	"errors"
	"math/big"
	"testing"

	"github.com/louisbranch/odds/internal/core/probability"
	apperrors "github.com/louisbranch/odds/internal/platform/errors"
)

func TestFairDie(t *testing.T) {
	die, err := probability.NewSampleSpace([]int{1, 2, 3, 4, 5, 6})
	if err != nil {
		t.Fatalf("NewSampleSpace() error = %v", err)
	}
	for _, s := range die.Members() {
		if s.Exact().Cmp(big.NewRat(1, 6)) != 0 {
			t.Fatalf("P(%d) = %s, want 1/6", s.Outcome(), s.Exact().RatString())
		}
	}
	if got := die.ChancesOf(4); got != 1.0/6 {
		t.Fatalf("ChancesOf(4) = %v", got)
	}
	if got := die.ChancesOf(7); got != 0 {
		t.Fatalf("ChancesOf(7) = %v", got)
	}
	if got := die.EventByValues(2, 5).Probability(); got != 1.0/3 {
		t.Fatalf("P(2 or 5) = %v", got)
	}
	even, err := die.EventByPredicate(func(o int) bool { return o%2 == 0 })
	if err != nil {
		t.Fatalf("EventByPredicate() error = %v", err)
	}
	if even.Probability() != 0.5 || even.Len() != 3 {
		t.Fatalf("P(even) = %v over %d members", even.Probability(), even.Len())
	}
}

func TestUnfairDie(t *testing.T) {
	die, err := probability.NewSampleSpace([]int{1, 2, 3, 4, 5, 6},
		probability.WithWeight(4, 0.3),
		probability.WithSeed[int](2024),
	)
	if err != nil {
		t.Fatalf("NewSampleSpace() error = %v", err)
	}
	if got := die.ChancesOf(4); got != 0.3 {
		t.Fatalf("ChancesOf(4) = %v", got)
	}
	for _, o := range []int{1, 2, 3, 5, 6} {
		if got := die.EventByValue(o).Exact(); got.Cmp(big.NewRat(7, 50)) != 0 {
			t.Fatalf("P(%d) = %s, want 7/50", o, got.RatString())
		}
	}

	fours := 0
	for i := 0; i < 1000; i++ {
		if die.Experiment() == 4 {
			fours++
		}
	}
	if fours < 200 {
		t.Fatalf("drew 4 only %d times in 1000", fours)
	}
}

func TestTwoDice(t *testing.T) {
	faces := []int{1, 2, 3, 4, 5, 6}
	dice, err := probability.NewSampleSpace(probability.Product(faces, faces))
	if err != nil {
		t.Fatalf("NewSampleSpace() error = %v", err)
	}
	if dice.Len() != 36 {
		t.Fatalf("Len() = %d, want 36", dice.Len())
	}
	if got := dice.ChancesOf(probability.Pair[int, int]{First: 6, Second: 6}); got != 1.0/36 {
		t.Fatalf("P(6, 6) = %v", got)
	}
	ten, err := dice.EventByPredicate(func(p probability.Pair[int, int]) bool {
		return p.First+p.Second == 10
	})
	if err != nil {
		t.Fatalf("EventByPredicate() error = %v", err)
	}
	if ten.Exact().Cmp(big.NewRat(3, 36)) != 0 {
		t.Fatalf("P(sum 10) = %s, want 1/12", ten.Exact().RatString())
	}
}

func TestConditionalDependence(t *testing.T) {
	die, err := probability.NewSampleSpace([]int{1, 2, 3, 4, 5, 6})
	if err != nil {
		t.Fatalf("NewSampleSpace() error = %v", err)
	}
	even, _ := die.Select(probability.Where(func(o int) bool { return o%2 == 0 }).Named("even"))
	high, _ := die.Select(probability.Where(func(o int) bool { return o > 3 }).Named("high"))

	independent, err := even.IndependentOf(high)
	if err != nil {
		t.Fatalf("IndependentOf() error = %v", err)
	}
	if independent {
		t.Fatal("expected even and high to be dependent")
	}
	given, err := even.GivenExact(high)
	if err != nil {
		t.Fatalf("GivenExact() error = %v", err)
	}
	if given.Cmp(even.Exact()) == 0 {
		t.Fatalf("P(even | high) = P(even) = %s", given.RatString())
	}
}

func TestConstructionFailures(t *testing.T) {
	_, err := probability.NewSampleSpace[string](nil, probability.WithWeight("T", 1.1))
	if !errors.Is(err, apperrors.KindInvalidValue) {
		t.Fatalf("weight 1.1 error = %v, want invalid value", err)
	}
	_, err = probability.NewSampleSpace[string](nil)
	if !errors.Is(err, apperrors.KindInvalidValue) {
		t.Fatalf("empty space error = %v, want invalid value", err)
	}
}

func TestAlgebraTypeErrors(t *testing.T) {
	die, err := probability.NewSampleSpace([]int{1, 2, 3, 4, 5, 6})
	if err != nil {
		t.Fatalf("NewSampleSpace() error = %v", err)
	}
	e := die.EventByValues(1, 2)
	if _, err := e.Union(nil); !errors.Is(err, apperrors.KindTypeMismatch) {
		t.Fatalf("Union(nil) error = %v, want type mismatch", err)
	}
	if _, err := e.MutuallyExclusiveWith(nil); !errors.Is(err, apperrors.KindTypeMismatch) {
		t.Fatalf("MutuallyExclusiveWith(nil) error = %v, want type mismatch", err)
	}
	if _, err := probability.NewSimpleEvent[int](1, "0.5", die); !errors.Is(err, apperrors.KindTypeMismatch) {
		t.Fatalf("NewSimpleEvent(\"0.5\") error = %v, want type mismatch", err)
	}
}

func TestLocalizedErrors(t *testing.T) {
	_, err := probability.NewSampleSpace[string](nil)
	if got := apperrors.Localize(err, "en-US"); got != "A sample space needs at least one outcome." {
		t.Fatalf("Localize(en-US) = %q", got)
	}
	if got := apperrors.Localize(err, "pt-BR"); got != "Um espaço amostral precisa de pelo menos um resultado." {
		t.Fatalf("Localize(pt-BR) = %q", got)
	}
}
