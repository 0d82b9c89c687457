package probability

import "fmt"

// Pair is an ordered pair of outcomes, as produced by Product.
type Pair[A, B comparable] struct {
	First  A
	Second B
}

func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}

// Product returns every ordered pair of a and b, a-major. It is the
// outcome list of two experiments performed together.
func Product[A, B comparable](a []A, b []B) []Pair[A, B] {
	out := make([]Pair[A, B], 0, len(a)*len(b))
	for _, x := range a {
		for _, y := range b {
			out = append(out, Pair[A, B]{First: x, Second: y})
		}
	}
	return out
}
