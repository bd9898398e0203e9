// Package errs centralizes the codec's public error taxonomy (spec.md §7).
//
// Every codec package in this module returns one of these sentinel errors,
// wrapped where extra context (a required buffer size, a byte offset) is
// useful to the caller. Callers should match with errors.Is; callers that
// need the attached context should use errors.As against *CodecError.
package errs

import (
	"errors"
	"fmt"
)

// Sentinel errors, one per spec.md §7 taxonomy entry.
var (
	// ErrBufferTooSmall is returned when the output capacity supplied in
	// Phase B (spec.md §4.1) is insufficient. The caller's size cell holds
	// the required size.
	ErrBufferTooSmall = errors.New("derx509: buffer too small")

	// ErrInvalidParameter is returned for a null required pointer, an
	// unrecognized flag combination, or a structure kind unsupported by
	// this operation.
	ErrInvalidParameter = errors.New("derx509: invalid parameter")

	// ErrNotFound is returned when a structure id is unrecognized and no
	// registered plugin claims it.
	ErrNotFound = errors.New("derx509: structure id not found")

	// ErrEndOfData is returned when the input is truncated mid-element.
	ErrEndOfData = errors.New("derx509: unexpected end of data")

	// ErrBadTag is returned when a tag octet does not match what the
	// operation expects.
	ErrBadTag = errors.New("derx509: unexpected tag")

	// ErrCorrupt is returned when an element is structurally present but
	// violates a DER rule: non-minimal encoding, a bad digit, continuation
	// overflow, an out-of-range calendar field.
	ErrCorrupt = errors.New("derx509: corrupt DER encoding")

	// ErrTooLarge is returned when length octets exceed four bytes, or a
	// value exceeds the handler's native width.
	ErrTooLarge = errors.New("derx509: value too large")

	// ErrBadEncode is returned when encoder input is out of representable
	// range (e.g. a UTCTime year outside 1950-2050).
	ErrBadEncode = errors.New("derx509: value not representable in this encoding")

	// ErrUnsupported is returned when a tag or string kind is recognized
	// but no handler implements it.
	ErrUnsupported = errors.New("derx509: unsupported structure kind")

	// ErrAccessViolation is returned when a required input pointer is nil
	// where the operation assumed non-nil: a caller contract violation,
	// not a codec bug.
	ErrAccessViolation = errors.New("derx509: required input is nil")
)

// CodecError wraps a sentinel error with the context a caller needs to act
// on it: the bytes required (for ErrBufferTooSmall) or the byte offset at
// which the failure was detected.
type CodecError struct {
	Err      error
	Required int // required size, valid when Err is ErrBufferTooSmall
	Offset   int // byte offset into the input/output, -1 if not applicable
}

func (e *CodecError) Error() string {
	switch {
	case e.Err == ErrBufferTooSmall:
		return fmt.Sprintf("%s: need %d bytes", e.Err, e.Required)
	case e.Offset >= 0:
		return fmt.Sprintf("%s: at offset %d", e.Err, e.Offset)
	default:
		return e.Err.Error()
	}
}

func (e *CodecError) Unwrap() error {
	return e.Err
}

// TooSmall builds a CodecError reporting the bytes required for Phase B.
func TooSmall(required int) *CodecError {
	return &CodecError{Err: ErrBufferTooSmall, Required: required, Offset: -1}
}

// At builds a CodecError pinning a sentinel to the byte offset it was
// detected at.
func At(err error, offset int) *CodecError {
	return &CodecError{Err: err, Offset: offset}
}
