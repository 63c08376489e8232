package packman

// PackError extends the standard error interface with the structured
// information the serialization layers propagate.
//
// PackError carries the catalog code for matching, a classification for
// retry logic, contextual metadata, and compatibility with standard library
// error handling (errors.Is, errors.As, errors.Unwrap). Callers match on
// Code, never on rendered text.
type PackError interface {
	error

	// Code returns the catalog code identifying the failure condition.
	Code() ErrorCode

	// Classification returns whether the error is retryable or permanent.
	Classification() ErrorClassification

	// Message returns the human-readable error message.
	Message() string

	// Context returns attached metadata as a read-only map.
	// Returns nil if no context has been attached.
	Context() map[string]interface{}

	// Unwrap returns the wrapped error for errors.Is and errors.As compatibility.
	// Returns nil if this error does not wrap another error.
	Unwrap() error
}
