package packman

import (
	stderrors "errors"
)

// Is reports whether any error in err's chain matches target.
// This is a convenience wrapper around the standard library errors.Is.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
// This is a convenience wrapper around the standard library errors.As.
//
// Example:
//
//	var packErr packman.PackError
//	if packman.As(err, &packErr) {
//	    code := packErr.Code()
//	}
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// GetCode extracts the catalog code from an error.
// The boolean is false if err is nil or its chain carries no PackError;
// the catalog has no "unknown" code to substitute, so callers must check it.
//
// Example:
//
//	if code, ok := packman.GetCode(err); ok && code == packman.CodeBinaryMismatch {
//	    // Peer runs a different build.
//	}
func GetCode(err error) (ErrorCode, bool) {
	if err == nil {
		return CodeSuccess, false
	}

	var packErr PackError
	if stderrors.As(err, &packErr) {
		return packErr.Code(), true
	}

	return CodeSuccess, false
}

// IsCode reports whether err's chain carries a PackError with the given
// code. Matching is by code identity, never by rendered text.
//
// Example:
//
//	if packman.IsCode(err, packman.CodeTypeMismatch) {
//	    // Caller asked for the wrong type.
//	}
func IsCode(err error, code ErrorCode) bool {
	c, ok := GetCode(err)
	return ok && c == code
}

// GetClassification extracts the ErrorClassification from an error.
// Returns ClassificationPermanent if the error is nil or not a PackError.
// This is a safe default that prevents inappropriate retry attempts.
func GetClassification(err error) ErrorClassification {
	if err == nil {
		return ClassificationPermanent
	}

	var packErr PackError
	if stderrors.As(err, &packErr) {
		return packErr.Classification()
	}

	return ClassificationPermanent
}

// IsRetryable returns true if the error is classified as retryable.
// Returns false if the error is nil or not a PackError (safe default).
//
// This is what the retry loop around the native packing primitive consults:
// a blackhole is worth retrying after a yield, everything else is not.
//
// Example:
//
//	if packman.IsRetryable(err) {
//	    runtime.Gosched()
//	    continue
//	}
func IsRetryable(err error) bool {
	return GetClassification(err).IsRetryable()
}
