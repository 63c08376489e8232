package packman

import (
	"errors"
	"fmt"
)

// Wrap wraps an error with additional context while preserving the original
// error. The wrapped error is accessible via Unwrap() and compatible with
// errors.Is and errors.As.
//
// If the wrapped error is a PackError, its classification is preserved.
// Otherwise, the default classification for the code is used.
//
// Returns nil if err is nil. The code must be a defined catalog code other
// than CodeSuccess, same as New.
//
// Example:
//
//	data, err := readPacket(r)
//	if err != nil {
//	    return packman.Wrap(err, packman.CodeParseError, "reading packet header")
//	}
func Wrap(err error, code ErrorCode, message string) PackError {
	checkRaisableCode(code)
	if err == nil {
		return nil
	}

	// Preserve classification if wrapping a PackError
	classification := getDefaultClassification(code)
	var packErr PackError
	if errors.As(err, &packErr) {
		classification = packErr.Classification()
	}

	return &packError{
		code:           code,
		classification: classification,
		message:        message,
		context:        nil,
		cause:          err,
	}
}

// Wrapf wraps an error with a formatted message while preserving the original error.
//
// Returns nil if err is nil.
//
// Example:
//
//	if err := checkFingerprint(pkt); err != nil {
//	    return packman.Wrapf(err, packman.CodeBinaryMismatch, "packet from host %s", host)
//	}
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) PackError {
	checkRaisableCode(code)
	if err == nil {
		return nil
	}

	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WrapWithContext wraps an error and attaches context metadata in a single
// operation. The context map is copied to prevent external mutation.
//
// Returns nil if err is nil.
//
// Example:
//
//	if err := decodeClosure(pkt); err != nil {
//	    return packman.WrapWithContext(err, packman.CodeGarbled, "decoding closure", map[string]interface{}{
//	        "offset": offset,
//	        "size":   pkt.Size,
//	    })
//	}
func WrapWithContext(err error, code ErrorCode, message string, ctx map[string]interface{}) PackError {
	checkRaisableCode(code)
	if err == nil {
		return nil
	}

	// Preserve classification if wrapping a PackError
	classification := getDefaultClassification(code)
	var packErr PackError
	if errors.As(err, &packErr) {
		classification = packErr.Classification()
	}

	// Create defensive copy of context; an empty map stays nil so that
	// Context() keeps meaning "no context attached".
	var contextCopy map[string]interface{}
	if len(ctx) > 0 {
		contextCopy = make(map[string]interface{}, len(ctx))
		for k, v := range ctx {
			contextCopy[k] = v
		}
	}

	return &packError{
		code:           code,
		classification: classification,
		message:        message,
		context:        contextCopy,
		cause:          err,
	}
}
