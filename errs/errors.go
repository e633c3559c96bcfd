// Package errs defines the sentinel errors returned by the intern decoder.
//
// Every error is a sentinel created with errors.New so callers can classify
// failures with errors.Is. Call sites wrap sentinels with fmt.Errorf and %w
// to attach context (offsets, tag bytes, identifiers) without breaking the
// classification.
package errs

import "errors"

var (
	// ErrUnsupportedMagic indicates the header marker is not one of the
	// accepted format constants.
	ErrUnsupportedMagic = errors.New("unsupported magic number")

	// ErrTruncatedInput indicates the input buffer ended in the middle of a
	// read. The cursor is unusable afterwards; no partial value is returned.
	ErrTruncatedInput = errors.New("truncated input")

	// ErrUnknownTag indicates a tag byte outside every recognized range and
	// table entry.
	ErrUnknownTag = errors.New("unknown tag byte")

	// ErrInvalidSharedReference indicates a back-offset that resolves outside
	// the currently allocated object table range.
	ErrInvalidSharedReference = errors.New("invalid shared reference")

	// ErrUnsupportedFeature indicates a construct the format defines but this
	// decoder deliberately does not implement: the big-header variant,
	// custom serializers beyond the built-in numeric blocks, code pointers,
	// and the 64-bit length opcodes.
	ErrUnsupportedFeature = errors.New("unsupported feature")

	// ErrIdentifierTooLong indicates a custom-block identifier that exceeds
	// the bounded scratch length.
	ErrIdentifierTooLong = errors.New("custom identifier too long")

	// ErrObjectCountMismatch indicates the object table's final length does
	// not equal the header's advisory object count.
	ErrObjectCountMismatch = errors.New("object count mismatch")

	// ErrSizeMismatch indicates the value stream's length does not match the
	// data length declared in the header.
	ErrSizeMismatch = errors.New("data length mismatch")
)
