package text

import "io"

// OutputBuffer holds the byte sequence produced by re-encoding. It is a
// single-use value: exactly one consumer drains it, once, through Take or
// WriteTo; after that the buffer is empty and further drains fail with
// ErrDrained. Re-encoding is the expensive step, so the result is meant to
// be handed across a boundary and discarded, not kept.
type OutputBuffer struct {
	buf     []byte // full allocation; nil once drained or released
	n       int    // current write position
	alloc   Allocator
	drained bool
}

// newOutputBuffer allocates a buffer of exactly size bytes through alloc.
func newOutputBuffer(size int, alloc Allocator) (*OutputBuffer, error) {
	buf, err := allocSlice[byte](alloc, size)
	if err != nil {
		return nil, err
	}
	return &OutputBuffer{buf: buf, alloc: alloc}, nil
}

// writeByte appends one byte at the write position. The buffer is sized
// exactly by the encoder, so running past the end is a short-write bug.
func (b *OutputBuffer) writeByte(c byte) error {
	if b.n >= len(b.buf) {
		return io.ErrShortWrite
	}
	b.buf[b.n] = c
	b.n++
	return nil
}

// Len returns the number of encoded bytes held, zero once drained.
func (b *OutputBuffer) Len() int {
	if b.drained {
		return 0
	}
	return b.n
}

// Take drains the buffer, transferring ownership of the bytes to the caller
// and returning the reservation to the allocator. A second Take fails with
// ErrDrained.
func (b *OutputBuffer) Take() ([]byte, error) {
	if b.drained {
		return nil, ErrDrained
	}
	out := b.buf[:b.n]
	freeSlice(b.alloc, b.buf)
	b.buf = nil
	b.drained = true
	return out, nil
}

// WriteTo drains the buffer into w, implementing io.WriterTo.
func (b *OutputBuffer) WriteTo(w io.Writer) (int64, error) {
	out, err := b.Take()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(out)
	if err == nil && n < len(out) {
		err = io.ErrShortWrite
	}
	return int64(n), err
}

// Release discards the buffer without draining it, for owners that decide
// not to claim the result. Releasing a drained buffer is a no-op.
func (b *OutputBuffer) Release() {
	if b.drained {
		return
	}
	freeSlice(b.alloc, b.buf)
	b.buf = nil
	b.drained = true
}
