package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectEncoding(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want Encoding
	}{
		{"Empty", nil, ASCII},
		{"SingleByte", []byte{0xC3}, ASCII},
		{"PlainASCII", []byte("Hello"), ASCII},
		{"UTF8TwoByte", []byte{0xC3, 0xA9}, UTF8},
		{"UTF8FourByte", []byte{0xF0, 0x9F, 0x98, 0x80}, UTF8},
		{"UTF8MixedWithASCII", []byte("caf\xC3\xA9"), UTF8},
		{"UTF8BOM", []byte{0xEF, 0xBB, 0xBF, 'h', 'i'}, UTF8},
		{"UTF16BEBOM", []byte{0xFE, 0xFF, 0x00, 0x48}, UTF16BE},
		{"UTF16LEBOM", []byte{0xFF, 0xFE, 0x48, 0x00}, UTF16LE},
		{"UTF32BEBOM", []byte{0x00, 0x00, 0xFE, 0xFF, 0x00, 0x00, 0x00, 0x48}, UTF32BE},
		{"BadContinuation", []byte{0xC3, 0x28}, ASCII},
		{"LoneContinuation", []byte{0x41, 0x80}, ASCII},
		{"TruncatedLead", []byte{0x41, 0xC3}, UTF8}, // scan ends mid-sequence without a contradiction
		{"InvalidLead", []byte{0xFF, 0x41}, ASCII},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectEncoding(tt.data))
		})
	}
}

// The UTF-16LE BOM is a strict prefix of the UTF-32LE BOM; the probe matches
// shorter UTF-16 first, so FF FE 00 00 classifies as UTF-16LE.
func TestDetectEncodingBOMPrecedence(t *testing.T) {
	assert.Equal(t, UTF16LE, DetectEncoding([]byte{0xFF, 0xFE, 0x00, 0x00}))

	// A UTF-16BE BOM wins over byte patterns that would otherwise pass the
	// UTF-8 heuristic.
	assert.Equal(t, UTF16BE, DetectEncoding([]byte{0xFE, 0xFF, 0xC3, 0xA9}))
}

func TestEncodingString(t *testing.T) {
	assert.Equal(t, "ASCII", ASCII.String())
	assert.Equal(t, "UTF-8", UTF8.String())
	assert.Equal(t, "UTF-16LE", UTF16LE.String())
	assert.Equal(t, "UTF-16BE", UTF16BE.String())
	assert.Equal(t, "UTF-32LE", UTF32LE.String())
	assert.Equal(t, "UTF-32BE", UTF32BE.String())
	assert.Equal(t, "unknown", Encoding(0xFF).String())
}

func TestBOMLength(t *testing.T) {
	assert.Equal(t, 3, bomLength([]byte{0xEF, 0xBB, 0xBF, 'x'}, UTF8))
	assert.Equal(t, 2, bomLength([]byte{0xFE, 0xFF}, UTF16BE))
	assert.Equal(t, 2, bomLength([]byte{0xFF, 0xFE}, UTF16LE))
	assert.Equal(t, 4, bomLength([]byte{0x00, 0x00, 0xFE, 0xFF}, UTF32BE))
	assert.Equal(t, 4, bomLength([]byte{0xFF, 0xFE, 0x00, 0x00}, UTF32LE))
	assert.Equal(t, 0, bomLength([]byte("hi"), UTF8))
	assert.Equal(t, 0, bomLength([]byte{0xFE, 0xFF}, ASCII))
}
