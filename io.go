package text

import (
	"bytes"
	"io"
	"sync"
)

// bytesBufPool reuses scratch buffers for slurping streams before decoding.
// Decoding itself only ever sees resident byte spans; this pool just keeps
// DecodeFrom from allocating a fresh buffer per call.
var bytesBufPool = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, 4096))
	},
}

// DecodeFrom reads r to EOF and decodes the bytes with auto-detection.
// The whole stream is buffered first: detection and decoding are functions
// of a complete byte span, so this is unsuitable for unbounded inputs.
func DecodeFrom(r io.Reader) (*String, error) {
	return DecodeFromAlloc(r, Heap)
}

// DecodeFromAlloc is DecodeFrom with an explicit provider.
func DecodeFromAlloc(r io.Reader, alloc Allocator) (*String, error) {
	buf := bytesBufPool.Get().(*bytes.Buffer)
	buf.Reset()
	defer bytesBufPool.Put(buf)

	if _, err := buf.ReadFrom(r); err != nil {
		return nil, err
	}
	return FromBytesAlloc(buf.Bytes(), alloc)
}

// WriteTo re-encodes the sequence as UTF-8 and writes it to w, implementing
// io.WriterTo. The encode is strict: an unpaired surrogate fails with
// ErrInvalidSurrogate and nothing is written.
func (s *String) WriteTo(w io.Writer) (int64, error) {
	out, err := s.ToUTF8()
	if err != nil {
		return 0, err
	}
	return out.WriteTo(w)
}

// String renders the sequence as a Go string, implementing fmt.Stringer.
// The render is best-effort: unpaired surrogates are dropped, and an
// allocation failure renders as empty.
func (s *String) String() string {
	out, err := s.ToUTF8Lossy()
	if err != nil {
		return ""
	}
	b, err := out.Take()
	if err != nil {
		return ""
	}
	return string(b)
}

// MarshalText implements encoding.TextMarshaler with a strict UTF-8 encode.
func (s *String) MarshalText() ([]byte, error) {
	out, err := s.ToUTF8()
	if err != nil {
		return nil, err
	}
	return out.Take()
}

// UnmarshalText implements encoding.TextUnmarshaler, replacing the sequence
// with the decoded form of data.
func (s *String) UnmarshalText(data []byte) error {
	if s.units == nil {
		s.units = NewVectorAlloc[uint16](Heap)
	}
	units, err := decode(data, DetectEncoding(data), s.units.alloc)
	if err != nil {
		return err
	}
	s.units.Clear()
	s.units = units
	return nil
}
