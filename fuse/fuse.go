// Package fuse implements deferred map fusion for the container types in this
// module.
//
// A cell pairs an untouched source container with a single accumulated
// transformation function. Lifting wraps a container with the identity
// function; each Map call composes onto that function without visiting any
// element; Run traverses the source exactly once, applying the composed
// function to each element and allocating at most one result container. The
// result is observationally identical to mapping step by step, minus the
// intermediate allocations.
//
// Go cannot abstract over type constructors, so there is one cell type per
// supported container: Slice, Option, Result and Iter. They share the same
// three-operation surface.
//
// Example:
//
//	cell := fuse.LiftSlice([]int{1, 2, 3})
//	cell2 := fuse.MapSlice(cell, func(n int) int { return n + 1 })
//	cell3 := fuse.MapSlice(cell2, strconv.Itoa)
//	fmt.Println(cell3.Run()) // [2 3 4] as strings, one pass
package fuse

import (
	"github.com/charmingruby/mapfuse/fp"
	"github.com/charmingruby/mapfuse/seq"
)

// Slice defers element transformations over a slice. A holds the hidden
// element type of the source; B is the element type Run will produce. Cells
// are immutable values; the source slice is never written to.
type Slice[A any, B any] struct {
	src []A
	fn  func(A) B
}

// LiftSlice wraps src in a cell whose accumulated function is the identity.
// The slice is referenced, not copied; no element is visited.
func LiftSlice[A any](src []A) Slice[A, A] {
	return Slice[A, A]{src: src, fn: fp.Identity[A]}
}

// MapSlice returns a new cell with the same source and the accumulated
// function extended by fn. No element is visited; n MapSlice calls produce
// exactly one composed function of n parts.
func MapSlice[A any, B any, C any](cell Slice[A, B], fn func(B) C) Slice[A, C] {
	return Slice[A, C]{src: cell.src, fn: fp.Compose(cell.fn, fn)}
}

// Run applies the accumulated function to every source element exactly once
// and returns the resulting slice. This is the only operation that traverses
// the source, and the only one that allocates. A nil or empty source runs to
// an empty, non-nil slice, matching seq.Map.
func (cell Slice[A, B]) Run() []B {
	return seq.Map(cell.src, cell.fn)
}

// Len reports the number of elements Run would produce, without visiting any.
func (cell Slice[A, B]) Len() int {
	return len(cell.src)
}
