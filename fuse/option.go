package fuse

import (
	"github.com/charmingruby/mapfuse/fp"
	"github.com/charmingruby/mapfuse/option"
)

// Option defers transformations over an option.Option. When the source is
// None the accumulated function is never called, no matter how many maps were
// composed.
type Option[A any, B any] struct {
	src option.Option[A]
	fn  func(A) B
}

// LiftOption wraps src in a cell whose accumulated function is the identity.
func LiftOption[A any](src option.Option[A]) Option[A, A] {
	return Option[A, A]{src: src, fn: fp.Identity[A]}
}

// MapOption extends the accumulated function with fn without touching the
// source.
func MapOption[A any, B any, C any](cell Option[A, B], fn func(B) C) Option[A, C] {
	return Option[A, C]{src: cell.src, fn: fp.Compose(cell.fn, fn)}
}

// Run applies the accumulated function to the contained value, if any,
// exactly once.
func (cell Option[A, B]) Run() option.Option[B] {
	return option.Map(cell.src, cell.fn)
}
