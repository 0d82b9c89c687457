package errors

// Kind classifies domain errors into type mismatches and invalid values.
//
// Kind implements error so it can be used as an errors.Is target:
//
//	if errors.Is(err, apperrors.KindInvalidValue) { ... }
type Kind int

const (
	KindUnknown Kind = iota
	KindTypeMismatch
	KindInvalidValue
)

// Error implements the error interface.
func (k Kind) Error() string {
	return k.String()
}

func (k Kind) String() string {
	switch k {
	case KindTypeMismatch:
		return "type mismatch"
	case KindInvalidValue:
		return "invalid value"
	default:
		return "unknown"
	}
}
