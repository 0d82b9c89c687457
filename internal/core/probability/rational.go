package probability

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	apperrors "github.com/louisbranch/odds/internal/platform/errors"
)

var (
	ratZero = new(big.Rat)
	ratOne  = big.NewRat(1, 1)
)

// exactProbability converts a numeric probability to an exact rational.
// Floats go through their shortest decimal form so 0.1 becomes 1/10.
func exactProbability(p any) (*big.Rat, error) {
	switch v := p.(type) {
	case int:
		return big.NewRat(int64(v), 1), nil
	case int8:
		return big.NewRat(int64(v), 1), nil
	case int16:
		return big.NewRat(int64(v), 1), nil
	case int32:
		return big.NewRat(int64(v), 1), nil
	case int64:
		return big.NewRat(v, 1), nil
	case uint:
		return new(big.Rat).SetUint64(uint64(v)), nil
	case uint8:
		return new(big.Rat).SetUint64(uint64(v)), nil
	case uint16:
		return new(big.Rat).SetUint64(uint64(v)), nil
	case uint32:
		return new(big.Rat).SetUint64(uint64(v)), nil
	case uint64:
		return new(big.Rat).SetUint64(v), nil
	case float32:
		return decimalRat(float64(v), 32)
	case float64:
		return decimalRat(v, 64)
	case *big.Rat:
		if v == nil {
			return nil, errNotNumeric(p)
		}
		return new(big.Rat).Set(v), nil
	case big.Rat:
		return new(big.Rat).Set(&v), nil
	default:
		return nil, errNotNumeric(p)
	}
}

func decimalRat(f float64, bitSize int) (*big.Rat, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, apperrors.WithMetadata(
			apperrors.CodeProbabilityOutOfRange,
			fmt.Sprintf("probability %v is not finite", f),
			map[string]string{"Probability": fmt.Sprint(f)},
		)
	}
	r, ok := new(big.Rat).SetString(strconv.FormatFloat(f, 'g', -1, bitSize))
	if !ok {
		return nil, errNotNumeric(f)
	}
	return r, nil
}

func errNotNumeric(p any) error {
	return apperrors.WithMetadata(
		apperrors.CodeProbabilityNotNumeric,
		fmt.Sprintf("probability %v (%T) is not numeric", p, p),
		map[string]string{"Probability": fmt.Sprint(p)},
	)
}

func inUnitInterval(r *big.Rat) bool {
	return r.Cmp(ratZero) >= 0 && r.Cmp(ratOne) <= 0
}

func ratFloat(r *big.Rat) float64 {
	f, _ := r.Float64()
	return f
}

func sumProbabilities[O comparable](members []*SimpleEvent[O]) *big.Rat {
	total := new(big.Rat)
	for _, m := range members {
		total.Add(total, m.probability)
	}
	return total
}

// formatDistribution renders weights as "{a: 1/2, b: 1/2}" in member order.
func formatDistribution[O comparable](order []O, weights map[O]*big.Rat) string {
	parts := make([]string, 0, len(order))
	for _, o := range order {
		parts = append(parts, fmt.Sprintf("%v: %s", o, weights[o].RatString()))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
