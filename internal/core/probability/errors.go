package probability

import (
	"fmt"

	apperrors "github.com/louisbranch/odds/internal/platform/errors"
)

func errEventRequired(operation string) error {
	return apperrors.WithMetadata(
		apperrors.CodeEventRequired,
		fmt.Sprintf("%s requires an event", operation),
		map[string]string{"Operation": operation},
	)
}

func errSpaceMismatch(operation string) error {
	return apperrors.WithMetadata(
		apperrors.CodeEventSpaceMismatch,
		fmt.Sprintf("%s on events from different sample spaces", operation),
		map[string]string{"Operation": operation},
	)
}

func errPredicateRequired() error {
	return apperrors.New(apperrors.CodePredicateRequired, "event predicate is nil")
}
