package packman

import "fmt"

// packError is the concrete implementation of PackError.
// It is private to enforce construction through package functions.
type packError struct {
	code           ErrorCode
	classification ErrorClassification
	message        string
	context        map[string]interface{}
	cause          error
}

// Error returns the string representation of the error.
// Format: "[NAME] message" or "[NAME] message: cause" if cause is present,
// where NAME is the code's native identifier (e.g. P_GARBLED).
func (e *packError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.code.Name(), e.message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.code.Name(), e.message)
}

// Code returns the catalog code.
func (e *packError) Code() ErrorCode {
	return e.code
}

// Classification returns the error classification.
func (e *packError) Classification() ErrorClassification {
	return e.classification
}

// Message returns the error message.
func (e *packError) Message() string {
	return e.message
}

// Context returns a defensive copy of the context map.
// Returns nil if no context has been attached (maintains immutability).
func (e *packError) Context() map[string]interface{} {
	if e.context == nil {
		return nil
	}
	ctx := make(map[string]interface{}, len(e.context))
	for k, v := range e.context {
		ctx[k] = v
	}
	return ctx
}

// Unwrap returns the wrapped error for standard library compatibility.
func (e *packError) Unwrap() error {
	return e.cause
}
