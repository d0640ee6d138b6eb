package text

import "errors"

var (
	// ErrMalformedSequence indicates an invalid lead or continuation byte
	// pattern, or a truncated multi-byte sequence, during decoding.
	ErrMalformedSequence = errors.New("text: malformed byte sequence")

	// ErrInvalidSurrogate indicates an unpaired or out-of-order surrogate
	// code unit, either in UTF-16 input or in the sequence being re-encoded.
	ErrInvalidSurrogate = errors.New("text: invalid surrogate")

	// ErrInvalidCodepoint indicates a scalar value above 0x10FFFF in UTF-32 input.
	ErrInvalidCodepoint = errors.New("text: invalid code point")

	// ErrOutOfRange indicates an index or position beyond the current length.
	ErrOutOfRange = errors.New("text: position out of range")

	// ErrOutOfMemory indicates the allocator could not satisfy a reservation.
	ErrOutOfMemory = errors.New("text: out of memory")

	// ErrDrained indicates an OutputBuffer was drained more than once.
	ErrDrained = errors.New("text: output buffer already drained")
)
