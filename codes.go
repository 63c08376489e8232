package packman

import "fmt"

// ErrorCode identifies a failure condition in the packing subsystem.
// Each value is bound to an integer constant defined in the native runtime
// header (cbits/Errors.h); the two tables must stay in lockstep at build
// time. A drift between them is a build defect, not a runtime condition.
type ErrorCode int

const (
	// Codes reported by the native packing primitive.

	// CodeSuccess is the "no error" sentinel of the native return-code
	// convention. It is never surfaced as an error; FromStatus maps it to nil.
	CodeSuccess ErrorCode = 0x00

	// CodeBlackhole indicates the packer hit a closure currently under
	// evaluation by another task. Transient: callers retry after a yield.
	CodeBlackhole ErrorCode = 0x01

	// CodeNoBuffer indicates the pack buffer was too small for the data.
	CodeNoBuffer ErrorCode = 0x02

	// CodeCannotPack indicates a closure type that can never be packed
	// (MVar, TVar).
	CodeCannotPack ErrorCode = 0x03

	// CodeUnsupported indicates a closure type whose packing is not
	// implemented, though it could be.
	CodeUnsupported ErrorCode = 0x04

	// CodeImpossible indicates a closure that should never appear in
	// packable data (stack frame, message). Almost certainly a bug.
	CodeImpossible ErrorCode = 0x05

	// CodeGarbled indicates the serialized data is invalid and cannot be
	// deserialized.
	CodeGarbled ErrorCode = 0x06

	// Codes raised by the decode layer while validating packed data.

	// CodeParseError indicates a malformed packet.
	CodeParseError ErrorCode = 0x07

	// CodeBinaryMismatch indicates the packet was produced by a different
	// build of the executable.
	CodeBinaryMismatch ErrorCode = 0x08

	// CodeTypeMismatch indicates the packet carries data of an unexpected
	// type.
	CodeTypeMismatch ErrorCode = 0x09
)

// maxCode is the highest defined code (P_ERRCODEMAX in the native header).
const maxCode = CodeTypeMismatch

// codeNames holds the native macro identifier of each code, used as its
// stable identity in Error output and logs. The rendered sentences (String)
// are cosmetic and may change; the names may not.
var codeNames = [maxCode + 1]string{
	CodeSuccess:        "P_SUCCESS",
	CodeBlackhole:      "P_BLACKHOLE",
	CodeNoBuffer:       "P_NOBUFFER",
	CodeCannotPack:     "P_CANNOTPACK",
	CodeUnsupported:    "P_UNSUPPORTED",
	CodeImpossible:     "P_IMPOSSIBLE",
	CodeGarbled:        "P_GARBLED",
	CodeParseError:     "P_ParseError",
	CodeBinaryMismatch: "P_BinaryMismatch",
	CodeTypeMismatch:   "P_TypeMismatch",
}

// codeDescriptions holds the fixed human-readable sentence per code.
// Display only; never parsed back.
var codeDescriptions = [maxCode + 1]string{
	CodeSuccess:        "No error.",
	CodeBlackhole:      "Packing hit a blackhole",
	CodeNoBuffer:       "Pack buffer too small",
	CodeCannotPack:     "Data contain a closure that cannot be packed (MVar, TVar)",
	CodeUnsupported:    "Contains an unsupported closure type (whose implementation is missing)",
	CodeImpossible:     "An impossible case happened (stack frame, message). This is probably a bug.",
	CodeGarbled:        "Garbled data for deserialisation",
	CodeParseError:     "Packet parse error",
	CodeBinaryMismatch: "Executable binaries do not match",
	CodeTypeMismatch:   "Packet data has unexpected type",
}

// Defined reports whether c is one of the codes in the shared table.
func (c ErrorCode) Defined() bool {
	return c >= CodeSuccess && c <= maxCode
}

// ReportedByRuntime reports whether c belongs to the family of codes
// returned by the native packing primitive, as opposed to the codes raised
// by the decode layer while validating packed data.
func (c ErrorCode) ReportedByRuntime() bool {
	return c >= CodeSuccess && c <= CodeGarbled
}

// Name returns the native macro identifier of c (e.g. "P_BLACKHOLE").
// For values outside the table it falls back to the stringer convention.
func (c ErrorCode) Name() string {
	if !c.Defined() {
		return fmt.Sprintf("ErrorCode(%d)", int(c))
	}
	return codeNames[c]
}

// String returns the fixed descriptive sentence for c. Unlike FromCode it
// stays total and panic-free so it is always safe in log formatting; values
// outside the table render in the stringer convention.
func (c ErrorCode) String() string {
	if !c.Defined() {
		return fmt.Sprintf("ErrorCode(%d)", int(c))
	}
	return codeDescriptions[c]
}

// FromCode converts a raw status code from the native packing primitive to
// its ErrorCode.
//
// The input domain is the closed set guaranteed by the shared constant
// table. A value outside it means the running binary and the native header
// have drifted, which no caller can recover from, so FromCode panics rather
// than coerce or guess. Callers that merely probe a code use IsBlackhole or
// ErrorCode.Defined instead.
func FromCode(code int) ErrorCode {
	c := ErrorCode(code)
	if !c.Defined() {
		panic(fmt.Sprintf("packman: status code %d is not in the native error table (header drift?)", code))
	}
	return c
}

// IsBlackhole reports whether a raw status code signals the one transient,
// retryable condition. It never panics, even for codes outside the table,
// so retry loops can probe a status without paying for a full decode.
func IsBlackhole(code int) bool {
	return ErrorCode(code) == CodeBlackhole
}

// IsPackError reports whether a word returned by the native packing
// primitive is an error code rather than a genuine buffer pointer. The
// primitive overloads its return value: small words up to the maximum
// defined code are statuses, anything larger is a pointer.
func IsPackError(w uintptr) bool {
	return w <= uintptr(maxCode)
}
