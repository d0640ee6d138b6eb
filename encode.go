package text

import "fmt"

// utf8Length computes the exact number of UTF-8 bytes the unit sequence
// encodes to, so the output buffer can be sized in one allocation. With
// lossy set, unpaired surrogates count as zero bytes; otherwise they fail
// with ErrInvalidSurrogate.
func utf8Length(units []uint16, lossy bool) (int, error) {
	size := 0
	for i := 0; i < len(units); i++ {
		unit := units[i]
		switch {
		case unit < 0x80:
			size++
		case unit < 0x800:
			size += 2
		case unit >= surrHighMin && unit <= surrHighMax:
			if i+1 < len(units) && units[i+1] >= surrLowMin && units[i+1] <= surrLowMax {
				size += 4
				i++
				continue
			}
			if !lossy {
				return 0, fmt.Errorf("%w: unpaired high surrogate 0x%04X at unit %d", ErrInvalidSurrogate, unit, i)
			}
		case unit >= surrLowMin && unit <= surrLowMax:
			if !lossy {
				return 0, fmt.Errorf("%w: lone low surrogate 0x%04X at unit %d", ErrInvalidSurrogate, unit, i)
			}
		default:
			size += 3
		}
	}
	return size, nil
}

// encodeUTF8 re-encodes the unit sequence as UTF-8 in a single pass over a
// freshly sized OutputBuffer. Surrogate pairs recombine into one scalar and
// emit a 4-byte sequence. Unit positions that utf8Length rejected cannot be
// reached here, so lossy only decides whether unpaired surrogates are
// skipped.
func encodeUTF8(units []uint16, alloc Allocator, lossy bool) (*OutputBuffer, error) {
	size, err := utf8Length(units, lossy)
	if err != nil {
		return nil, err
	}
	out, err := newOutputBuffer(size, alloc)
	if err != nil {
		return nil, err
	}

	for i := 0; i < len(units); i++ {
		unit := uint32(units[i])
		switch {
		case unit < 0x80:
			err = out.writeByte(byte(unit))

		case unit < 0x800:
			if err = out.writeByte(byte(0xC0 | unit>>6)); err == nil {
				err = out.writeByte(byte(0x80 | unit&0x3F))
			}

		case unit >= surrHighMin && unit <= surrHighMax:
			if i+1 >= len(units) || units[i+1] < surrLowMin || units[i+1] > surrLowMax {
				continue // lossy mode: drop the unpaired high surrogate
			}
			low := uint32(units[i+1])
			i++
			scalar := surrSelf + (unit-surrHighMin)<<10 + (low - surrLowMin)
			if err = out.writeByte(byte(0xF0 | scalar>>18)); err == nil {
				if err = out.writeByte(byte(0x80 | scalar>>12&0x3F)); err == nil {
					if err = out.writeByte(byte(0x80 | scalar>>6&0x3F)); err == nil {
						err = out.writeByte(byte(0x80 | scalar&0x3F))
					}
				}
			}

		case unit >= surrLowMin && unit <= surrLowMax:
			continue // lossy mode: drop the lone low surrogate

		default:
			if err = out.writeByte(byte(0xE0 | unit>>12)); err == nil {
				if err = out.writeByte(byte(0x80 | unit>>6&0x3F)); err == nil {
					err = out.writeByte(byte(0x80 | unit&0x3F))
				}
			}
		}
		if err != nil {
			out.Release()
			return nil, err
		}
	}
	return out, nil
}
