package text

import (
	"encoding/binary"
	"fmt"
)

// decode transcodes raw bytes in the given encoding into a fresh code-unit
// vector. The BOM for enc, if present, is skipped. Decoding is one pass; on
// any error the partial vector is discarded and never observed by callers.
func decode(data []byte, enc Encoding, alloc Allocator) (*Vector[uint16], error) {
	data = data[bomLength(data, enc):]
	units := NewVectorAlloc[uint16](alloc)

	var err error
	switch enc {
	case ASCII:
		err = decodeASCII(data, units)
	case UTF8:
		err = decodeUTF8(data, units)
	case UTF16LE:
		err = decodeUTF16(data, binary.LittleEndian, units)
	case UTF16BE:
		err = decodeUTF16(data, binary.BigEndian, units)
	case UTF32LE:
		err = decodeUTF32(data, binary.LittleEndian, units)
	case UTF32BE:
		err = decodeUTF32(data, binary.BigEndian, units)
	default:
		err = fmt.Errorf("%w: unknown encoding %d", ErrMalformedSequence, enc)
	}
	if err != nil {
		units.Clear()
		return nil, err
	}
	return units, nil
}

// decodeASCII zero-extends each byte to one code unit.
func decodeASCII(data []byte, units *Vector[uint16]) error {
	if err := units.Reserve(len(data)); err != nil {
		return err
	}
	for _, b := range data {
		if err := units.Push(uint16(b)); err != nil {
			return err
		}
	}
	return nil
}

// utf8SeqLen maps a lead byte to its sequence length, or 0 for an invalid lead.
func utf8SeqLen(lead byte) int {
	switch {
	case lead < 0x80:
		return 1
	case lead&0xE0 == 0xC0:
		return 2
	case lead&0xF0 == 0xE0:
		return 3
	case lead&0xF8 == 0xF0:
		return 4
	}
	return 0
}

func decodeUTF8(data []byte, units *Vector[uint16]) error {
	// A reasonable guess: most UTF-8 text is dominated by 1-3 byte
	// sequences, each one code unit. Length is made exact by the pushes.
	if err := units.Reserve(len(data)); err != nil {
		return err
	}

	for i := 0; i < len(data); {
		n := utf8SeqLen(data[i])
		if n == 0 {
			return fmt.Errorf("%w: invalid UTF-8 lead byte 0x%02X at offset %d", ErrMalformedSequence, data[i], i)
		}
		if i+n > len(data) {
			return fmt.Errorf("%w: truncated %d-byte UTF-8 sequence at offset %d", ErrMalformedSequence, n, i)
		}
		if n == 1 {
			if err := units.Push(uint16(data[i])); err != nil {
				return err
			}
			i++
			continue
		}

		scalar := uint32(data[i] & byte(0xFF>>(n+1)))
		for _, b := range data[i+1 : i+n] {
			if b&0xC0 != 0x80 {
				return fmt.Errorf("%w: invalid UTF-8 continuation byte 0x%02X at offset %d", ErrMalformedSequence, b, i)
			}
			scalar = scalar<<6 | uint32(b&0x3F)
		}

		if err := pushScalar(units, scalar); err != nil {
			return err
		}
		i += n
	}
	return nil
}

func decodeUTF16(data []byte, order binary.ByteOrder, units *Vector[uint16]) error {
	if len(data)%2 != 0 {
		return fmt.Errorf("%w: odd UTF-16 byte count %d", ErrMalformedSequence, len(data))
	}
	if err := units.Reserve(len(data) / 2); err != nil {
		return err
	}

	for i := 0; i < len(data); i += 2 {
		unit := order.Uint16(data[i:])

		switch {
		case unit >= surrHighMin && unit <= surrHighMax:
			if i+4 > len(data) {
				return fmt.Errorf("%w: high surrogate 0x%04X at offset %d has no pair", ErrInvalidSurrogate, unit, i)
			}
			low := order.Uint16(data[i+2:])
			if low < surrLowMin || low > surrLowMax {
				return fmt.Errorf("%w: high surrogate 0x%04X followed by 0x%04X at offset %d", ErrInvalidSurrogate, unit, low, i)
			}
			// Pairs are already in target form; copy both units through.
			if err := units.Push(unit); err != nil {
				return err
			}
			if err := units.Push(low); err != nil {
				return err
			}
			i += 2

		case unit >= surrLowMin && unit <= surrLowMax:
			return fmt.Errorf("%w: lone low surrogate 0x%04X at offset %d", ErrInvalidSurrogate, unit, i)

		default:
			if err := units.Push(unit); err != nil {
				return err
			}
		}
	}
	return nil
}

func decodeUTF32(data []byte, order binary.ByteOrder, units *Vector[uint16]) error {
	if len(data)%4 != 0 {
		return fmt.Errorf("%w: UTF-32 byte count %d is not a multiple of 4", ErrMalformedSequence, len(data))
	}
	if err := units.Reserve(len(data) / 4); err != nil {
		return err
	}

	for i := 0; i < len(data); i += 4 {
		scalar := order.Uint32(data[i:])
		if scalar > maxScalar {
			return fmt.Errorf("%w: scalar 0x%X at offset %d", ErrInvalidCodepoint, scalar, i)
		}
		if err := pushScalar(units, scalar); err != nil {
			return err
		}
	}
	return nil
}

// pushScalar appends a scalar value as one code unit, or as a surrogate pair
// when it lies in the supplementary planes.
func pushScalar(units *Vector[uint16], scalar uint32) error {
	if scalar < surrSelf {
		return units.Push(uint16(scalar))
	}
	scalar -= surrSelf
	if err := units.Push(uint16(surrHighMin | scalar>>10)); err != nil {
		return err
	}
	return units.Push(uint16(surrLowMin | scalar&0x3FF))
}
