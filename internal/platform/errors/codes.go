// Package errors provides structured error handling with i18n support.
package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Simple event errors
	CodeProbabilityNotNumeric Code = "PROBABILITY_NOT_NUMERIC"
	CodeProbabilityOutOfRange Code = "PROBABILITY_OUT_OF_RANGE"

	// Sample space errors
	CodeSampleSpaceEmpty           Code = "SAMPLE_SPACE_EMPTY"
	CodeProbabilitiesNotNormalized Code = "PROBABILITIES_NOT_NORMALIZED"

	// Event algebra errors
	CodeEventRequired            Code = "EVENT_REQUIRED"
	CodeEventSpaceMismatch       Code = "EVENT_SPACE_MISMATCH"
	CodeEventWithoutSpace        Code = "EVENT_WITHOUT_SPACE"
	CodeConditionZeroProbability Code = "CONDITION_ZERO_PROBABILITY"
	CodePredicateRequired        Code = "PREDICATE_REQUIRED"

	// Dice errors
	CodeDiceMissing     Code = "DICE_MISSING"
	CodeDiceInvalidSpec Code = "DICE_INVALID_SPEC"

	// Simulation and input errors
	CodeTrialsInvalid    Code = "TRIALS_INVALID"
	CodeSpaceFileInvalid Code = "SPACE_FILE_INVALID"
)

// Kind maps domain codes to one of the two error kinds callers branch on.
func (c Code) Kind() Kind {
	switch c {
	// Wrong operand kind
	case CodeProbabilityNotNumeric,
		CodeEventRequired,
		CodeEventSpaceMismatch,
		CodePredicateRequired:
		return KindTypeMismatch

	// Well-typed but unacceptable value
	case CodeProbabilityOutOfRange,
		CodeSampleSpaceEmpty,
		CodeProbabilitiesNotNormalized,
		CodeEventWithoutSpace,
		CodeConditionZeroProbability,
		CodeDiceMissing,
		CodeDiceInvalidSpec,
		CodeTrialsInvalid,
		CodeSpaceFileInvalid:
		return KindInvalidValue

	default:
		return KindUnknown
	}
}
