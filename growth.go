package text

import "golang.org/x/exp/constraints"

// minCapacity is the capacity of the first allocation of an empty buffer.
const minCapacity = 8

// nextCapacity computes the capacity a buffer should grow to so it can hold
// required elements: start at minCapacity, then double current until it
// covers the request. Doubling keeps appends amortized O(1); the policy
// never shrinks (ShrinkToFit is the explicit counterpart).
func nextCapacity[T constraints.Integer](current, required T) T {
	next := current * 2
	if current == 0 {
		next = minCapacity
	}
	for next < required {
		next *= 2
	}
	return next
}

// clamp limits v to the inclusive range [lo, hi].
func clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
