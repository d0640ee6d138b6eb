package text

import "github.com/puzpuzpuz/xsync/v4"

// literalCache holds the decoded code-unit form of Go string literals, so a
// hot constructor pays the UTF-8 conversion once per distinct literal.
// Using a concurrent map makes the cache a safe process-wide service even
// though individual Strings are not.
var literalCache = xsync.NewMap[string, []uint16]()

// FromString creates a String from a Go string, decoding it as UTF-8.
// Decoded forms are cached by literal, keyed on the string value.
func FromString(s string) (*String, error) {
	return FromStringAlloc(s, Heap)
}

// FromStringAlloc is FromString with an explicit provider. Only the copy
// owned by the returned String is charged to alloc; the cached master copy
// lives on the process heap.
func FromStringAlloc(s string, alloc Allocator) (*String, error) {
	if units, ok := literalCache.Load(s); ok {
		return FromUnitsAlloc(units, alloc)
	}

	decoded, err := decode([]byte(s), UTF8, Heap)
	if err != nil {
		return nil, err
	}
	units := decoded.Slice()
	literalCache.Store(s, units)
	return FromUnitsAlloc(units, alloc)
}
