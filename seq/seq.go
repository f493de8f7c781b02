// Package seq offers eager and lazy functional helpers for Go slices.
package seq

// Map transforms each element using fn and returns a new slice with the same
// length as input. Chained Map calls each allocate a full intermediate slice;
// the fuse package exists to collapse such chains into one pass.
func Map[A any, B any](in []A, fn func(A) B) []B {
	if len(in) == 0 {
		return []B{}
	}
	out := make([]B, len(in))
	for i, v := range in {
		out[i] = fn(v)
	}
	return out
}

// Filter keeps values satisfying predicate. The returned slice shares no
// backing array with the input to preserve immutability.
func Filter[T any](in []T, predicate func(T) bool) []T {
	if len(in) == 0 {
		return []T{}
	}
	result := make([]T, 0, len(in))
	for _, v := range in {
		if predicate(v) {
			result = append(result, v)
		}
	}
	return result
}

// FoldLeft reduces the slice from left to right using the provided accumulator.
func FoldLeft[A any, B any](in []A, init B, fn func(B, A) B) B {
	acc := init
	for _, v := range in {
		acc = fn(acc, v)
	}
	return acc
}

// Find returns the first element satisfying predicate.
func Find[T any](in []T, predicate func(T) bool) (T, bool) {
	for _, v := range in {
		if predicate(v) {
			return v, true
		}
	}
	var zero T
	return zero, false
}
