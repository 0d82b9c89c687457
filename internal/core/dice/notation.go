package dice

import (
	"fmt"
	"strconv"
	"strings"

	apperrors "github.com/louisbranch/odds/internal/platform/errors"
)

// String renders the spec in dice notation, such as "2d6".
func (s Spec) String() string {
	return fmt.Sprintf("%dd%d", s.Count, s.Sides)
}

// ParseSpecs reads dice notation such as "2d6", "d20" or "2d6+1d8". A
// missing count means one die.
func ParseSpecs(notation string) ([]Spec, error) {
	notation = strings.ToLower(strings.TrimSpace(notation))
	if notation == "" {
		return nil, ErrMissingDice
	}
	parts := strings.Split(notation, "+")
	specs := make([]Spec, 0, len(parts))
	for _, part := range parts {
		spec, err := parseSpec(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}
	return specs, validate(specs)
}

func parseSpec(part string) (Spec, error) {
	count, sides, ok := strings.Cut(part, "d")
	if !ok {
		return Spec{}, badNotation(part)
	}
	spec := Spec{Count: 1}
	if count != "" {
		n, err := strconv.Atoi(count)
		if err != nil {
			return Spec{}, badNotation(part)
		}
		spec.Count = n
	}
	n, err := strconv.Atoi(sides)
	if err != nil {
		return Spec{}, badNotation(part)
	}
	spec.Sides = n
	return spec, nil
}

func badNotation(part string) error {
	return apperrors.New(apperrors.CodeDiceInvalidSpec, fmt.Sprintf("invalid dice notation %q", part))
}
