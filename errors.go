package qr

import "errors"

// The core surfaces exactly two kinds of error, matching the two ways
// an encoding request can be rejected: a malformed or infeasible
// request, or a request that does not fit in the declared symbol.
var (
	// ErrInvalidArgument is returned when constructor constraints are
	// violated, a character is invalid for its declared mode, an ECI
	// escape is malformed or not permitted, or a Kanji segment has an
	// odd byte count or an out-of-range code point.
	ErrInvalidArgument = errors.New("qr: invalid argument")

	// ErrLengthError is returned when the accumulated bit stream would
	// exceed the symbol's data capacity.
	ErrLengthError = errors.New("qr: length exceeds symbol capacity")
)
