package packman

// ErrorClassification indicates whether an error should trigger a retry.
// The retry loop around the native packing primitive uses it to decide
// whether to attempt the operation again or give up.
type ErrorClassification string

const (
	// ClassificationRetryable indicates a transient failure that may
	// succeed on retry. In this catalog only a blackhole qualifies: the
	// thunk being packed is under evaluation elsewhere and will settle.
	ClassificationRetryable ErrorClassification = "RETRYABLE"

	// ClassificationPermanent indicates a failure that will not succeed
	// on retry. Examples: unpackable closure types, garbled packets,
	// binary mismatches.
	ClassificationPermanent ErrorClassification = "PERMANENT"
)

// IsRetryable returns true if the classification indicates retry should be attempted.
func (c ErrorClassification) IsRetryable() bool {
	return c == ClassificationRetryable
}

// defaultClassifications maps error codes to their default classification.
// Blackhole is the single transient condition in the catalog; every other
// code describes a property of the data or the build that a retry cannot
// change.
var defaultClassifications = map[ErrorCode]ErrorClassification{
	CodeBlackhole: ClassificationRetryable,

	CodeNoBuffer:       ClassificationPermanent,
	CodeCannotPack:     ClassificationPermanent,
	CodeUnsupported:    ClassificationPermanent,
	CodeImpossible:     ClassificationPermanent,
	CodeGarbled:        ClassificationPermanent,
	CodeParseError:     ClassificationPermanent,
	CodeBinaryMismatch: ClassificationPermanent,
	CodeTypeMismatch:   ClassificationPermanent,
}

// getDefaultClassification returns the default classification for an error code.
// Returns ClassificationPermanent if the code is not in the map (safe default).
func getDefaultClassification(code ErrorCode) ErrorClassification {
	if class, ok := defaultClassifications[code]; ok {
		return class
	}
	return ClassificationPermanent
}
