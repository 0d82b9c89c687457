package probability

import (
	"math/big"
	"math/rand"
	"sync"
	"testing"
)

func TestExperimentIsDeterministicForSeed(t *testing.T) {
	a := mustSpace(t, []int{1, 2, 3, 4, 5, 6}, WithSeed[int](12345))
	b := mustSpace(t, []int{1, 2, 3, 4, 5, 6}, WithSeed[int](12345))

	for i := 0; i < 50; i++ {
		if x, y := a.Experiment(), b.Experiment(); x != y {
			t.Fatalf("draw %d differs: %d vs %d", i, x, y)
		}
	}
}

func TestExperimentWithUsesCallerGenerator(t *testing.T) {
	space := mustSpace(t, []string{"H", "T"})
	first := space.ExperimentWith(rand.New(rand.NewSource(7)))
	second := space.ExperimentWith(rand.New(rand.NewSource(7)))
	if first != second {
		t.Fatalf("same generator seed drew %q and %q", first, second)
	}
	if got := space.ExperimentWith(nil); got != "H" && got != "T" {
		t.Fatalf("ExperimentWith(nil) = %q", got)
	}
}

func TestExperimentNeverDrawsZeroWeight(t *testing.T) {
	space := mustSpace(t, []string{"edge", "H", "T"}, WithWeight("edge", 0), WithSeed[string](1))
	for _, o := range space.Experiments(2000) {
		if o == "edge" {
			t.Fatal("drew an outcome with probability zero")
		}
	}
}

func TestExperimentCertainOutcome(t *testing.T) {
	space := mustSpace(t, []string{"H", "T"}, WithWeight("H", 1))
	for i := 0; i < 100; i++ {
		if got := space.Experiment(); got != "H" {
			t.Fatalf("Experiment() = %q, want H", got)
		}
	}
}

func TestExperimentFrequencies(t *testing.T) {
	space := mustSpace(t, []string{"a", "b", "c"},
		WithExactWeight("a", big.NewRat(1, 2)),
		WithExactWeight("b", big.NewRat(1, 3)),
		WithSeed[string](99),
	)
	const trials = 60000
	counts := map[string]int{}
	for _, o := range space.Experiments(trials) {
		counts[o]++
	}
	want := map[string]float64{"a": 0.5, "b": 1.0 / 3, "c": 1.0 / 6}
	for o, p := range want {
		got := float64(counts[o]) / trials
		if got < p-0.02 || got > p+0.02 {
			t.Errorf("frequency of %s = %.4f, want about %.4f", o, got, p)
		}
	}
}

func TestExperimentsNonPositive(t *testing.T) {
	space := mustSpace(t, []string{"H", "T"})
	if got := space.Experiments(0); got != nil {
		t.Fatalf("Experiments(0) = %v, want nil", got)
	}
}

func TestExperimentDoesNotMutateSpace(t *testing.T) {
	space := mustSpace(t, []int{1, 2, 3}, WithSeed[int](3))
	before := exactWeights(space)
	space.Experiments(100)
	after := exactWeights(space)
	for o, p := range before {
		if after[o] != p {
			t.Fatalf("P(%d) changed from %s to %s", o, p, after[o])
		}
	}
}

func TestExperimentConcurrentCallers(t *testing.T) {
	space := mustSpace(t, []int{1, 2, 3, 4, 5, 6}, WithSeed[int](5))
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				if o := space.Experiment(); o < 1 || o > 6 {
					t.Errorf("Experiment() = %d, out of range", o)
					return
				}
				_ = space.ChancesOf(3)
			}
		}()
	}
	wg.Wait()
}

func TestSamplerUsesCommonDenominator(t *testing.T) {
	space := mustSpace(t, []string{"a", "b", "c"},
		WithExactWeight("a", big.NewRat(1, 4)),
		WithExactWeight("b", big.NewRat(1, 6)),
	)
	// c gets 7/12; the common denominator of 1/4, 1/6 and 7/12 is 12.
	if space.sampler.denominator.Cmp(big.NewInt(12)) != 0 {
		t.Fatalf("denominator = %s, want 12", space.sampler.denominator)
	}
	want := []int64{3, 5, 12}
	for i, c := range space.sampler.cumulative {
		if c.Cmp(big.NewInt(want[i])) != 0 {
			t.Fatalf("cumulative[%d] = %s, want %d", i, c, want[i])
		}
	}
}
