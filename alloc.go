package text

import (
	"fmt"
	"sync/atomic"
	"unsafe"
)

// Allocator is the raw buffer provider every owning type routes its storage
// through. The Go runtime hands out the memory itself; the provider accounts
// for it, so a hosting environment can impose a budget and surface
// ErrOutOfMemory instead of growing without bound.
type Allocator interface {
	// Reserve claims size bytes from the provider before a buffer is
	// allocated. It returns ErrOutOfMemory when the provider cannot
	// satisfy the request.
	Reserve(size int) error

	// Release returns size bytes to the provider after a buffer is
	// dropped or shrunk.
	Release(size int)
}

// Heap is the default provider: the process heap, no budget.
var Heap Allocator = heapAllocator{}

type heapAllocator struct{}

func (heapAllocator) Reserve(int) error { return nil }
func (heapAllocator) Release(int)       {}

// LimitAllocator is a provider with a fixed byte budget. It is safe for
// concurrent use, so a single instance can back many buffers.
type LimitAllocator struct {
	budget int64
	used   atomic.Int64
}

// NewLimitAllocator creates a provider that refuses reservations once the
// total outstanding bytes would exceed budget.
func NewLimitAllocator(budget int) *LimitAllocator {
	return &LimitAllocator{budget: int64(budget)}
}

// Reserve implements Allocator.
func (a *LimitAllocator) Reserve(size int) error {
	if used := a.used.Add(int64(size)); used > a.budget {
		a.used.Add(-int64(size))
		return fmt.Errorf("%w: %d of %d bytes in use, requested %d", ErrOutOfMemory, used-int64(size), a.budget, size)
	}
	return nil
}

// Release implements Allocator.
func (a *LimitAllocator) Release(size int) {
	a.used.Add(-int64(size))
}

// Used reports the outstanding reserved bytes.
func (a *LimitAllocator) Used() int {
	return int(a.used.Load())
}

// allocSlice charges n elements of T to the provider and allocates their storage.
func allocSlice[T any](alloc Allocator, n int) ([]T, error) {
	var zero T
	if err := alloc.Reserve(n * int(unsafe.Sizeof(zero))); err != nil {
		return nil, err
	}
	return make([]T, n), nil
}

// freeSlice returns the storage of s to the provider.
func freeSlice[T any](alloc Allocator, s []T) {
	var zero T
	alloc.Release(len(s) * int(unsafe.Sizeof(zero)))
}
