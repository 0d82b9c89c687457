package dice

import (
	"errors"
	"math/big"
	"testing"

	"github.com/louisbranch/odds/internal/core/probability"
	apperrors "github.com/louisbranch/odds/internal/platform/errors"
)

func TestDie(t *testing.T) {
	d8, err := Die(8)
	if err != nil {
		t.Fatalf("Die() error = %v", err)
	}
	if d8.Len() != 8 {
		t.Fatalf("Len() = %d, want 8", d8.Len())
	}
	if got := d8.ChancesOf(8); got != 0.125 {
		t.Fatalf("ChancesOf(8) = %v, want 0.125", got)
	}

	if _, err := Die(0); !errors.Is(err, ErrInvalidDiceSpec) {
		t.Fatalf("Die(0) error = %v, want %v", err, ErrInvalidDiceSpec)
	}
}

func TestPair(t *testing.T) {
	twoD6, err := Pair(6, 6)
	if err != nil {
		t.Fatalf("Pair() error = %v", err)
	}
	if twoD6.Len() != 36 {
		t.Fatalf("Len() = %d, want 36", twoD6.Len())
	}
	ten, err := twoD6.EventByPredicate(func(f Faces) bool { return Sum(f) == 10 })
	if err != nil {
		t.Fatalf("EventByPredicate() error = %v", err)
	}
	if ten.Exact().Cmp(big.NewRat(1, 12)) != 0 {
		t.Fatalf("P(sum 10) = %s, want 1/12", ten.Exact().RatString())
	}
	doubles, err := twoD6.EventByPredicate(func(f Faces) bool { return f.First == f.Second })
	if err != nil {
		t.Fatalf("EventByPredicate() error = %v", err)
	}
	exclusive, err := ten.MutuallyExclusiveWith(doubles)
	if err != nil {
		t.Fatalf("MutuallyExclusiveWith() error = %v", err)
	}
	if exclusive {
		t.Fatal("expected (5, 5) to be both a ten and a double")
	}

	if _, err := Pair(6, -1); !errors.Is(err, ErrInvalidDiceSpec) {
		t.Fatalf("Pair(6, -1) error = %v", err)
	}
}

func TestTotals(t *testing.T) {
	tests := []struct {
		name  string
		specs []Spec
		want  map[int]*big.Rat
		count int
	}{
		{
			name:  "1d6",
			specs: []Spec{{Sides: 6, Count: 1}},
			want:  map[int]*big.Rat{1: big.NewRat(1, 6), 6: big.NewRat(1, 6)},
			count: 6,
		},
		{
			name:  "2d6",
			specs: []Spec{{Sides: 6, Count: 2}},
			want:  map[int]*big.Rat{2: big.NewRat(1, 36), 7: big.NewRat(6, 36), 10: big.NewRat(3, 36), 12: big.NewRat(1, 36)},
			count: 11,
		},
		{
			name:  "1d4 + 1d6",
			specs: []Spec{{Sides: 4, Count: 1}, {Sides: 6, Count: 1}},
			want:  map[int]*big.Rat{2: big.NewRat(1, 24), 5: big.NewRat(4, 24), 10: big.NewRat(1, 24)},
			count: 9,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			space, err := Totals(tt.specs)
			if err != nil {
				t.Fatalf("Totals() error = %v", err)
			}
			if space.Len() != tt.count {
				t.Fatalf("Len() = %d, want %d", space.Len(), tt.count)
			}
			for total, want := range tt.want {
				got := space.EventByValue(total)
				if got == nil {
					t.Fatalf("missing total %d", total)
				}
				if got.Exact().Cmp(want) != 0 {
					t.Errorf("P(%d) = %s, want %s", total, got.Exact().RatString(), want.RatString())
				}
			}
		})
	}
}

func TestTotalsMatchesPairSums(t *testing.T) {
	totals, err := Totals([]Spec{{Sides: 6, Count: 2}})
	if err != nil {
		t.Fatalf("Totals() error = %v", err)
	}
	pairs, err := Pair(6, 6)
	if err != nil {
		t.Fatalf("Pair() error = %v", err)
	}
	for _, total := range totals.Outcomes() {
		e, err := pairs.EventByPredicate(func(f Faces) bool { return Sum(f) == total })
		if err != nil {
			t.Fatalf("EventByPredicate() error = %v", err)
		}
		if e.Exact().Cmp(totals.EventByValue(total).Exact()) != 0 {
			t.Fatalf("P(total %d) differs between spaces", total)
		}
	}
}

func TestTotalsErrors(t *testing.T) {
	if _, err := Totals(nil); !apperrors.IsCode(err, apperrors.CodeDiceMissing) {
		t.Fatalf("Totals(nil) error = %v", err)
	}
	if _, err := Totals([]Spec{{Sides: 6, Count: 0}}); !apperrors.IsCode(err, apperrors.CodeDiceInvalidSpec) {
		t.Fatalf("Totals(0 dice) error = %v", err)
	}
}

func TestTotalsAcceptsSpaceOptions(t *testing.T) {
	a, err := Totals([]Spec{{Sides: 6, Count: 2}}, probability.WithSeed[int](8))
	if err != nil {
		t.Fatalf("Totals() error = %v", err)
	}
	b, err := Totals([]Spec{{Sides: 6, Count: 2}}, probability.WithSeed[int](8))
	if err != nil {
		t.Fatalf("Totals() error = %v", err)
	}
	for i := 0; i < 20; i++ {
		if x, y := a.Experiment(), b.Experiment(); x != y {
			t.Fatalf("draw %d differs: %d vs %d", i, x, y)
		}
	}
}
