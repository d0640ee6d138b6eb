package text

import "fmt"

// Vector is a growable array with exclusive ownership of its storage and an
// injected Allocator. It is the backing store of String, and usable on its
// own for any element type.
//
// Invariant: v.size <= cap == len(v.data); a zero capacity means no storage
// is held. Every mutation re-establishes the invariant before returning.
type Vector[T any] struct {
	data  []T
	size  int
	alloc Allocator
}

// NewVector creates an empty vector backed by the default provider.
func NewVector[T any]() *Vector[T] {
	return NewVectorAlloc[T](Heap)
}

// NewVectorAlloc creates an empty vector backed by alloc.
func NewVectorAlloc[T any](alloc Allocator) *Vector[T] {
	if alloc == nil {
		alloc = Heap
	}
	return &Vector[T]{alloc: alloc}
}

// Len returns the number of elements in use.
func (v *Vector[T]) Len() int { return v.size }

// Cap returns the number of elements allocated.
func (v *Vector[T]) Cap() int { return len(v.data) }

// Empty reports whether the vector holds no elements.
func (v *Vector[T]) Empty() bool { return v.size == 0 }

// Slice returns a view of the elements in use. The view is invalidated by
// any growing mutation.
func (v *Vector[T]) Slice() []T { return v.data[:v.size] }

// At returns the element at index i.
func (v *Vector[T]) At(i int) (T, error) {
	var zero T
	if i < 0 || i >= v.size {
		return zero, fmt.Errorf("%w: index %d, length %d", ErrOutOfRange, i, v.size)
	}
	return v.data[i], nil
}

// Set replaces the element at index i.
func (v *Vector[T]) Set(i int, elem T) error {
	if i < 0 || i >= v.size {
		return fmt.Errorf("%w: index %d, length %d", ErrOutOfRange, i, v.size)
	}
	v.data[i] = elem
	return nil
}

// Reserve grows the capacity to at least n elements. It never shrinks.
func (v *Vector[T]) Reserve(n int) error {
	if n <= len(v.data) {
		return nil
	}
	return v.realloc(nextCapacity(len(v.data), n))
}

// ShrinkToFit reallocates the storage to exactly the current length.
func (v *Vector[T]) ShrinkToFit() error {
	if v.size == len(v.data) {
		return nil
	}
	if v.size == 0 {
		freeSlice(v.alloc, v.data)
		v.data = nil
		return nil
	}
	return v.realloc(v.size)
}

// Push appends one element.
func (v *Vector[T]) Push(elem T) error {
	if err := v.Reserve(v.size + 1); err != nil {
		return err
	}
	v.data[v.size] = elem
	v.size++
	return nil
}

// PopBack removes the last element. Popping an empty vector is a no-op.
func (v *Vector[T]) PopBack() {
	if v.size > 0 {
		v.size--
	}
}

// Append appends all of elems.
func (v *Vector[T]) Append(elems []T) error {
	if len(elems) == 0 {
		return nil
	}
	if err := v.Reserve(v.size + len(elems)); err != nil {
		return err
	}
	copy(v.data[v.size:], elems)
	v.size += len(elems)
	return nil
}

// Insert places elems at position pos, shifting [pos, Len) right. pos may
// equal Len, which appends.
func (v *Vector[T]) Insert(pos int, elems []T) error {
	if pos < 0 || pos > v.size {
		return fmt.Errorf("%w: insert at %d, length %d", ErrOutOfRange, pos, v.size)
	}
	if len(elems) == 0 {
		return nil
	}
	if err := v.Reserve(v.size + len(elems)); err != nil {
		return err
	}
	// copy handles the overlap back-to-front, so the tail is not clobbered.
	copy(v.data[pos+len(elems):], v.data[pos:v.size])
	copy(v.data[pos:], elems)
	v.size += len(elems)
	return nil
}

// Erase removes up to n elements starting at pos, shifting the tail left.
// n is clamped to the elements available past pos.
func (v *Vector[T]) Erase(pos, n int) error {
	if pos < 0 || pos > v.size {
		return fmt.Errorf("%w: erase at %d, length %d", ErrOutOfRange, pos, v.size)
	}
	if n < 0 || n > v.size-pos {
		n = v.size - pos
	}
	if n == 0 {
		return nil
	}
	copy(v.data[pos:], v.data[pos+n:v.size])
	v.size -= n
	return nil
}

// Resize sets the length to n, growing with zero values if needed.
func (v *Vector[T]) Resize(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: resize to %d", ErrOutOfRange, n)
	}
	if err := v.Reserve(n); err != nil {
		return err
	}
	var zero T
	for i := v.size; i < n; i++ {
		v.data[i] = zero
	}
	v.size = n
	return nil
}

// Clone returns a deep copy with its own storage, sized exactly to Len.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	dup := NewVectorAlloc[T](v.alloc)
	if v.size == 0 {
		return dup, nil
	}
	data, err := allocSlice[T](v.alloc, v.size)
	if err != nil {
		return nil, err
	}
	copy(data, v.data[:v.size])
	dup.data = data
	dup.size = v.size
	return dup, nil
}

// Move transfers the storage to a new vector and leaves the source empty
// with no storage held.
func (v *Vector[T]) Move() *Vector[T] {
	moved := &Vector[T]{data: v.data, size: v.size, alloc: v.alloc}
	v.data = nil
	v.size = 0
	return moved
}

// Clear releases the storage and resets the vector to the empty state.
func (v *Vector[T]) Clear() {
	freeSlice(v.alloc, v.data)
	v.data = nil
	v.size = 0
}

// realloc moves the elements in use into a fresh allocation of n elements.
func (v *Vector[T]) realloc(n int) error {
	data, err := allocSlice[T](v.alloc, n)
	if err != nil {
		return err
	}
	copy(data, v.data[:v.size])
	freeSlice(v.alloc, v.data)
	v.data = data
	return nil
}
