// Package packman defines the error taxonomy of the closure-serialization
// subsystem: the closed set of status codes shared with the native packing
// runtime, and a typed error built on top of them.
//
// The native primitive that packs a closure graph into a buffer reports
// failures as small integer codes; the decode layer that validates packed
// data reuses the same numeric space for its own failures. This package is
// the single Go-side owner of that table. It decodes raw codes, renders
// them for humans, classifies them for retry logic, and wraps them in an
// error type that propagates through ordinary Go error handling. It
// performs no serialization itself: no buffers, no traversal, no retries.
//
// # The catalog
//
// ErrorCode has exactly ten values, bound one-to-one to the constants in
// the native header. Seven are reported by the native primitive (Success
// through Garbled) and three by the decode layer (ParseError,
// BinaryMismatch, TypeMismatch). CodeSuccess is the native "no error"
// sentinel; it exists in the type because the return-code convention
// includes it, but no constructor will raise it as an error.
//
// FromCode is total over the table and panics on anything outside it: an
// undefined code means the Go side and the native header have drifted,
// which is a build defect no caller can recover from. IsBlackhole, by
// contrast, never panics, so retry loops can probe raw statuses cheaply.
//
// # Creating errors
//
//	// From a native status (nil on success):
//	if err := packman.FromStatus(status); err != nil {
//	    return err
//	}
//
//	// From the decode layer:
//	err := packman.Newf(packman.CodeTypeMismatch, "expected %s, got %s", want, got)
//
// Wrapping and context attachment work as in the standard library, with
// the cause chain preserved for errors.Is and errors.As:
//
//	return packman.Wrap(err, packman.CodeParseError, "reading packet header")
//
// # Retry logic
//
// A blackhole is the one transient condition: the closure being packed is
// under evaluation by another task and will settle. Everything else is
// permanent.
//
//	if packman.IsRetryable(err) {
//	    runtime.Gosched()
//	    continue
//	}
//
// # Concurrency
//
// The package holds no mutable state; every function is safe for
// concurrent use without synchronization.
package packman
