package text

// Encoding identifies the byte encoding of raw input.
type Encoding uint8

const (
	// ASCII is plain 7-bit text, one byte per code unit.
	ASCII Encoding = iota
	// UTF8 is the variable-width 8-bit Unicode encoding.
	UTF8
	// UTF16LE is little-endian UTF-16.
	UTF16LE
	// UTF16BE is big-endian UTF-16.
	UTF16BE
	// UTF32LE is little-endian UTF-32.
	UTF32LE
	// UTF32BE is big-endian UTF-32.
	UTF32BE
)

// String implements fmt.Stringer.
func (e Encoding) String() string {
	switch e {
	case ASCII:
		return "ASCII"
	case UTF8:
		return "UTF-8"
	case UTF16LE:
		return "UTF-16LE"
	case UTF16BE:
		return "UTF-16BE"
	case UTF32LE:
		return "UTF-32LE"
	case UTF32BE:
		return "UTF-32BE"
	}
	return "unknown"
}

// Surrogate range constants.
const (
	surrHighMin = 0xD800
	surrHighMax = 0xDBFF
	surrLowMin  = 0xDC00
	surrLowMax  = 0xDFFF
	surrSelf    = 0x10000 // offset of the first scalar that needs a pair
	maxScalar   = 0x10FFFF
)

// DetectEncoding classifies a raw byte span as one of the supported
// encodings. Detection is a pure function of the span: a byte-order mark is
// matched first (UTF-8, then UTF-16 either endianness, then UTF-32 — so a
// UTF-16LE BOM wins over the UTF-32LE BOM it prefixes); without a BOM, a
// structural scan classifies the span as UTF-8 when it contains at least one
// well-formed multi-byte sequence and nothing that contradicts UTF-8.
// Spans shorter than two bytes cannot carry a BOM and classify as ASCII.
func DetectEncoding(data []byte) Encoding {
	if len(data) < 2 {
		return ASCII
	}

	if len(data) >= 3 && data[0] == 0xEF && data[1] == 0xBB && data[2] == 0xBF {
		return UTF8
	}
	if data[0] == 0xFE && data[1] == 0xFF {
		return UTF16BE
	}
	if data[0] == 0xFF && data[1] == 0xFE {
		return UTF16LE
	}
	if len(data) >= 4 {
		if data[0] == 0x00 && data[1] == 0x00 && data[2] == 0xFE && data[3] == 0xFF {
			return UTF32BE
		}
		if data[0] == 0xFF && data[1] == 0xFE && data[2] == 0x00 && data[3] == 0x00 {
			return UTF32LE
		}
	}

	return detectUTF8(data)
}

// detectUTF8 runs the structural heuristic over the whole span. Any byte
// that violates the UTF-8 lead/continuation grammar aborts the scan; the
// span is UTF-8 only if at least one multi-byte sequence validated.
func detectUTF8(data []byte) Encoding {
	sequences := 0
	pending := 0 // continuation bytes the current sequence still owes

	for _, b := range data {
		if pending == 0 {
			switch {
			case b <= 0x7F:
			case b&0xE0 == 0xC0:
				pending = 1
				sequences++
			case b&0xF0 == 0xE0:
				pending = 2
				sequences++
			case b&0xF8 == 0xF0:
				pending = 3
				sequences++
			default:
				return ASCII
			}
		} else {
			if b&0xC0 != 0x80 {
				return ASCII
			}
			pending--
		}
	}

	if sequences > 0 {
		return UTF8
	}
	return ASCII
}

// bomLength returns the number of leading byte-order-mark bytes the span
// carries for enc, so decoding can skip them. BOM bytes are never content.
func bomLength(data []byte, enc Encoding) int {
	switch enc {
	case UTF8:
		if len(data) >= 3 && data[0] == 0xEF && data[1] == 0xBB && data[2] == 0xBF {
			return 3
		}
	case UTF16BE:
		if len(data) >= 2 && data[0] == 0xFE && data[1] == 0xFF {
			return 2
		}
	case UTF16LE:
		if len(data) >= 2 && data[0] == 0xFF && data[1] == 0xFE {
			return 2
		}
	case UTF32BE:
		if len(data) >= 4 && data[0] == 0x00 && data[1] == 0x00 && data[2] == 0xFE && data[3] == 0xFF {
			return 4
		}
	case UTF32LE:
		if len(data) >= 4 && data[0] == 0xFF && data[1] == 0xFE && data[2] == 0x00 && data[3] == 0x00 {
			return 4
		}
	}
	return 0
}
