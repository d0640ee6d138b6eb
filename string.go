// Package text provides a growable, Unicode-aware text buffer with a UTF-16
// code-unit internal representation. Raw input in ASCII, UTF-8, UTF-16 or
// UTF-32 (either endianness) is detected and normalized on construction;
// re-encoding back to UTF-8 is a one-shot projection into a single-use
// output buffer.
package text

import "fmt"

// NotFound is the index returned by the search operations when the needle
// does not occur. As a signed index it is all bits set, distinct from every
// valid position.
const NotFound = -1

// String is a growable, exclusively owned sequence of 16-bit code units.
// Raw byte input in any supported encoding is normalized into this one
// internal form on construction; mutation and search operate directly on
// the code units, and ToUTF8 re-externalizes the sequence on demand.
//
// All operations act on 16-bit units, not code points: an Insert, Erase or
// Substr at an arbitrary position can split a surrogate pair and leave an
// unpaired surrogate in the sequence. ToUTF8 rejects such sequences;
// ToUTF8Lossy drops the orphaned units instead.
//
// A String is not safe for concurrent use.
type String struct {
	units *Vector[uint16]
}

// New creates an empty String backed by the default provider.
func New() *String {
	return NewAlloc(Heap)
}

// NewAlloc creates an empty String whose storage is charged to alloc.
func NewAlloc(alloc Allocator) *String {
	return &String{units: NewVectorAlloc[uint16](alloc)}
}

// FromBytes detects the encoding of data and decodes it into a String.
func FromBytes(data []byte) (*String, error) {
	return FromBytesAlloc(data, Heap)
}

// FromBytesAlloc is FromBytes with an explicit provider.
func FromBytesAlloc(data []byte, alloc Allocator) (*String, error) {
	return FromBytesEncodingAlloc(data, DetectEncoding(data), alloc)
}

// FromBytesEncoding decodes data declared to be in enc, skipping a leading
// BOM for that encoding if present.
func FromBytesEncoding(data []byte, enc Encoding) (*String, error) {
	return FromBytesEncodingAlloc(data, enc, Heap)
}

// FromBytesEncodingAlloc is FromBytesEncoding with an explicit provider.
func FromBytesEncodingAlloc(data []byte, enc Encoding, alloc Allocator) (*String, error) {
	units, err := decode(data, enc, alloc)
	if err != nil {
		return nil, err
	}
	return &String{units: units}, nil
}

// FromUnits creates a String from a code-unit literal. The units are copied.
func FromUnits(units []uint16) (*String, error) {
	return FromUnitsAlloc(units, Heap)
}

// FromUnitsAlloc is FromUnits with an explicit provider.
func FromUnitsAlloc(units []uint16, alloc Allocator) (*String, error) {
	s := NewAlloc(alloc)
	if err := s.units.Append(units); err != nil {
		return nil, err
	}
	return s, nil
}

// Len returns the number of code units in use.
func (s *String) Len() int { return s.units.Len() }

// Size is an alias for Len.
func (s *String) Size() int { return s.units.Len() }

// Cap returns the number of code units allocated.
func (s *String) Cap() int { return s.units.Cap() }

// Empty reports whether the String holds no units.
func (s *String) Empty() bool { return s.units.Empty() }

// Units returns a view of the code units in use. The view is invalidated by
// any growing mutation.
func (s *String) Units() []uint16 { return s.units.Slice() }

// At returns the code unit at index i.
func (s *String) At(i int) (uint16, error) { return s.units.At(i) }

// Set replaces the code unit at index i.
func (s *String) Set(i int, unit uint16) error { return s.units.Set(i, unit) }

// Front returns the first code unit of a non-empty String.
func (s *String) Front() (uint16, error) { return s.units.At(0) }

// Back returns the last code unit of a non-empty String.
func (s *String) Back() (uint16, error) { return s.units.At(s.units.Len() - 1) }

// Reserve grows the capacity to at least n units.
func (s *String) Reserve(n int) error { return s.units.Reserve(n) }

// ShrinkToFit reallocates the storage to exactly the current length.
func (s *String) ShrinkToFit() error { return s.units.ShrinkToFit() }

// Resize sets the length to n units, zero-filling any growth.
func (s *String) Resize(n int) error { return s.units.Resize(n) }

// Clear releases the storage and resets the String to empty.
func (s *String) Clear() { s.units.Clear() }

// PushBack appends one code unit.
func (s *String) PushBack(unit uint16) error { return s.units.Push(unit) }

// PopBack removes the last code unit; a no-op when empty.
func (s *String) PopBack() { s.units.PopBack() }

// AppendUnit appends one code unit.
func (s *String) AppendUnit(unit uint16) error { return s.units.Push(unit) }

// AppendUnits appends a slice of code units.
func (s *String) AppendUnits(units []uint16) error { return s.units.Append(units) }

// AppendString appends the units of other.
func (s *String) AppendString(other *String) error { return s.units.Append(other.Units()) }

// AppendBytes detects the encoding of data, decodes it, and appends the
// resulting units.
func (s *String) AppendBytes(data []byte) error {
	decoded, err := decode(data, DetectEncoding(data), s.units.alloc)
	if err != nil {
		return err
	}
	defer decoded.Clear()
	return s.units.Append(decoded.Slice())
}

// InsertUnits places units at position pos, shifting the tail right.
func (s *String) InsertUnits(pos int, units []uint16) error {
	return s.units.Insert(pos, units)
}

// Insert places the units of other at position pos.
func (s *String) Insert(pos int, other *String) error {
	return s.units.Insert(pos, other.Units())
}

// Erase removes up to n units starting at pos; n is clamped to the units
// available past pos.
func (s *String) Erase(pos, n int) error { return s.units.Erase(pos, n) }

// Substr returns a copy of the units in [start, end).
func (s *String) Substr(start, end int) (*String, error) {
	if start < 0 || start > end || end > s.Len() {
		return nil, fmt.Errorf("%w: substr [%d, %d), length %d", ErrOutOfRange, start, end, s.Len())
	}
	return FromUnitsAlloc(s.units.Slice()[start:end], s.units.alloc)
}

// Find returns the lowest index not below from at which needle occurs, or
// NotFound. An empty needle is found at from when from is a valid position.
func (s *String) Find(needle []uint16, from int) int {
	units := s.Units()
	if from < 0 {
		from = 0
	}
	if from >= len(units) {
		return NotFound
	}
	if len(needle) == 0 {
		return from
	}
	for i := from; i+len(needle) <= len(units); i++ {
		if matchAt(units, needle, i) {
			return i
		}
	}
	return NotFound
}

// RFind returns the highest index not above from at which needle occurs, or
// NotFound. An empty needle is found at min(from, Len).
func (s *String) RFind(needle []uint16, from int) int {
	units := s.Units()
	if from < 0 {
		return NotFound
	}
	if len(needle) == 0 {
		return clamp(from, 0, len(units))
	}
	if len(units) < len(needle) {
		return NotFound
	}
	for i := clamp(from, 0, len(units)-len(needle)); i >= 0; i-- {
		if matchAt(units, needle, i) {
			return i
		}
	}
	return NotFound
}

// FindFirstOf returns the lowest index not below from whose unit is a member
// of set, or NotFound.
func (s *String) FindFirstOf(set []uint16, from int) int {
	units := s.Units()
	if from < 0 {
		from = 0
	}
	for i := from; i < len(units); i++ {
		for _, member := range set {
			if units[i] == member {
				return i
			}
		}
	}
	return NotFound
}

// FindLastOf returns the highest index not above from whose unit is a member
// of set, or NotFound.
func (s *String) FindLastOf(set []uint16, from int) int {
	units := s.Units()
	if len(units) == 0 || from < 0 {
		return NotFound
	}
	for i := clamp(from, 0, len(units)-1); i >= 0; i-- {
		for _, member := range set {
			if units[i] == member {
				return i
			}
		}
	}
	return NotFound
}

// Compare orders two Strings unit-wise: the first differing unit decides;
// on a common prefix the shorter sequence is less. It returns -1, 0 or 1.
func (s *String) Compare(other *String) int {
	a, b := s.Units(), other.Units()
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}

// Equal reports whether both Strings hold the same unit sequence.
func (s *String) Equal(other *String) bool {
	return s.Compare(other) == 0
}

// HasPrefix reports whether s begins with the units of other.
func (s *String) HasPrefix(other *String) bool {
	p := other.Units()
	return len(p) <= s.Len() && matchAt(s.Units(), p, 0)
}

// HasSuffix reports whether s ends with the units of other.
func (s *String) HasSuffix(other *String) bool {
	p := other.Units()
	return len(p) <= s.Len() && matchAt(s.Units(), p, s.Len()-len(p))
}

// Clone returns a deep copy with its own storage.
func (s *String) Clone() (*String, error) {
	units, err := s.units.Clone()
	if err != nil {
		return nil, err
	}
	return &String{units: units}, nil
}

// Move transfers the storage to a new String and leaves the source empty
// with no storage held.
func (s *String) Move() *String {
	return &String{units: s.units.Move()}
}

// ToUTF8 re-encodes the sequence as UTF-8 into a fresh, single-use
// OutputBuffer. A sequence holding an unpaired surrogate fails with
// ErrInvalidSurrogate; see ToUTF8Lossy for the permissive form.
func (s *String) ToUTF8() (*OutputBuffer, error) {
	return encodeUTF8(s.Units(), s.units.alloc, false)
}

// ToUTF8Lossy re-encodes like ToUTF8 but silently drops unpaired
// surrogates, producing best-effort output for sequences that unit-level
// mutation has split mid-pair.
func (s *String) ToUTF8Lossy() (*OutputBuffer, error) {
	return encodeUTF8(s.Units(), s.units.alloc, true)
}

// matchAt reports whether needle occurs in units at offset i.
func matchAt(units, needle []uint16, i int) bool {
	for j, u := range needle {
		if units[i+j] != u {
			return false
		}
	}
	return true
}
