package fuse

import (
	"github.com/charmingruby/mapfuse/fp"
	"github.com/charmingruby/mapfuse/seq"
)

// Iter defers transformations over a lazy seq.Iterator. The source shape is
// itself lazy, so Run returns an iterator: the composed function still runs
// exactly once per element, when that element is pulled. A chain of n
// seq.MapIter calls costs n closure hops per element; a fused cell costs one.
type Iter[A any, B any] struct {
	src seq.Iterator[A]
	fn  func(A) B
}

// LiftIter wraps src in a cell whose accumulated function is the identity.
func LiftIter[A any](src seq.Iterator[A]) Iter[A, A] {
	return Iter[A, A]{src: src, fn: fp.Identity[A]}
}

// MapIter extends the accumulated function with fn without pulling from the
// source.
func MapIter[A any, B any, C any](cell Iter[A, B], fn func(B) C) Iter[A, C] {
	return Iter[A, C]{src: cell.src, fn: fp.Compose(cell.fn, fn)}
}

// Run returns an iterator applying the composed function to each pulled
// element. Nothing is consumed until the caller pulls.
func (cell Iter[A, B]) Run() seq.Iterator[B] {
	return seq.MapIter(cell.src, cell.fn)
}
