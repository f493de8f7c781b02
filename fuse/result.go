package fuse

import (
	"github.com/charmingruby/mapfuse/fp"
	"github.com/charmingruby/mapfuse/result"
)

// Result defers transformations over a result.Result. An Err source
// short-circuits: Run returns the error untouched and the accumulated
// function never executes.
type Result[A any, B any] struct {
	src result.Result[A]
	fn  func(A) B
}

// LiftResult wraps src in a cell whose accumulated function is the identity.
func LiftResult[A any](src result.Result[A]) Result[A, A] {
	return Result[A, A]{src: src, fn: fp.Identity[A]}
}

// MapResult extends the accumulated function with fn without touching the
// source.
func MapResult[A any, B any, C any](cell Result[A, B], fn func(B) C) Result[A, C] {
	return Result[A, C]{src: cell.src, fn: fp.Compose(cell.fn, fn)}
}

// Run applies the accumulated function to the success value, if any, exactly
// once.
func (cell Result[A, B]) Run() result.Result[B] {
	return result.Map(cell.src, cell.fn)
}
