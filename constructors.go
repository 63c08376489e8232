package packman

import "fmt"

// checkRaisableCode panics unless code is a defined, non-success catalog
// code. Constructing an error outside the closed table would defeat the
// shared-constant contract, and success is the native "no error" sentinel:
// raising it would break the contract that every propagated PackError
// describes something wrong.
func checkRaisableCode(code ErrorCode) {
	if !code.Defined() {
		panic(fmt.Sprintf("packman: code %d is not in the native error table", int(code)))
	}
	if code == CodeSuccess {
		panic("packman: CodeSuccess cannot be raised as an error")
	}
}

// New creates a new PackError with the given code and message.
// The error classification is determined by the code using default mappings.
//
// The code must be a defined catalog code other than CodeSuccess; anything
// else panics, same as FromCode on an undefined status.
//
// Example:
//
//	err := packman.New(packman.CodeParseError, "truncated packet header")
func New(code ErrorCode, message string) PackError {
	checkRaisableCode(code)
	return &packError{
		code:           code,
		classification: getDefaultClassification(code),
		message:        message,
		context:        nil,
		cause:          nil,
	}
}

// Newf creates a new PackError with a formatted message.
// The error classification is determined by the code using default mappings.
//
// Example:
//
//	err := packman.Newf(packman.CodeTypeMismatch, "expected fingerprint %x, got %x", want, got)
func Newf(code ErrorCode, format string, args ...interface{}) PackError {
	return New(code, fmt.Sprintf(format, args...))
}

// FromStatus converts a raw status code returned by the native packing
// primitive into a PackError carrying the code and its catalog description.
//
// A success status yields nil, so call sites can return FromStatus(status)
// directly. A status outside the shared table panics, same as FromCode.
//
// Example:
//
//	status := packToBuffer(graph, buf)
//	if err := packman.FromStatus(status); err != nil {
//	    return err
//	}
func FromStatus(status int) PackError {
	code := FromCode(status)
	if code == CodeSuccess {
		return nil
	}
	return &packError{
		code:           code,
		classification: getDefaultClassification(code),
		message:        code.String(),
		context:        nil,
		cause:          nil,
	}
}
