// Package scopeerr defines the sentinel error values the engine's fatal
// error categories resolve to, so callers can distinguish them with
// errors.Is instead of string matching.
package scopeerr

import "errors"

var (
	// ErrShortRead is returned when a primitive read runs past the end of
	// the underlying stream outside of an empty-marker peek.
	ErrShortRead = errors.New("distance-bytes: unexpected end of stream")

	// ErrInvalidUTF16 is returned when a length-prefixed string's byte
	// length is odd or its code units do not decode.
	ErrInvalidUTF16 = errors.New("distance-bytes: invalid UTF-16 string encoding")

	// ErrScopeOverflow is returned when a scope's declared length does not
	// fit the arithmetic used to bound it (e.g. negative or absurdly large
	// length prefixes).
	ErrScopeOverflow = errors.New("distance-bytes: scope length overflow")

	// ErrInvariant is returned when a known component's invariants cannot
	// be restored from what was read (e.g. a dictionary missing a
	// required key).
	ErrInvariant = errors.New("distance-bytes: schema invariant violation")
)
