// Package result provides a success/error abstraction similar to Go's
// (T, error) pair. Like option and seq, it is a container the fuse package
// can defer maps over: mapping an Err result never runs the transformation.
//
// Example:
//
//	res := result.Ok("done")
//	value, err := res.Unwrap()
//	_ = value
package result

import "errors"

// Result represents the outcome of a computation that may succeed with a
// value or fail with an error. It never panics except in Unsafe helpers.
type Result[T any] struct {
	value T
	err   error
}

// Ok constructs a successful Result carrying value.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Err constructs a failed Result. Passing a nil error automatically converts
// it into a descriptive placeholder to avoid silent successes.
func Err[T any](err error) Result[T] {
	if err == nil {
		err = errors.New("result: nil error")
	}
	return Result[T]{err: err}
}

// FromTuple converts a standard Go (value, error) pair to a Result.
//
// Example:
//
//	value, err := repo.Load()
//	res := result.FromTuple(value, err)
func FromTuple[T any](value T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(value)
}

// IsOk reports whether the Result represents success.
func (r Result[T]) IsOk() bool {
	return r.err == nil
}

// IsErr reports whether the Result represents failure.
func (r Result[T]) IsErr() bool {
	return r.err != nil
}

// Err returns the stored error, if any.
func (r Result[T]) Err() error {
	return r.err
}

// Unwrap returns the value and error, mirroring standard Go semantics.
//
// Example:
//
//	value, err := res.Unwrap()
//	if err != nil {
//		return err
//	}
func (r Result[T]) Unwrap() (T, error) {
	return r.value, r.err
}

// UnwrapOr returns the value when ok, otherwise fallback.
func (r Result[T]) UnwrapOr(fallback T) T {
	if r.err == nil {
		return r.value
	}
	return fallback
}

// UnsafeUnwrap returns the underlying value or panics if the Result is an
// error. It should only be used where success is guaranteed.
func (r Result[T]) UnsafeUnwrap() T {
	if r.err != nil {
		panic(r.err)
	}
	return r.value
}

// Map transforms the value on success. This is the element transform a fuse
// cell defers; an Err result short-circuits without calling fn.
//
// Example:
//
//	length := result.Map(res, func(s string) int { return len(s) })
func Map[T any, U any](r Result[T], fn func(T) U) Result[U] {
	if r.err == nil {
		return Ok(fn(r.value))
	}
	return Err[U](r.err)
}

// FlatMap chains computations, propagating the first error.
func FlatMap[T any, U any](r Result[T], fn func(T) Result[U]) Result[U] {
	if r.err == nil {
		return fn(r.value)
	}
	return Err[U](r.err)
}

// MapErr transforms the stored error when present.
func MapErr[T any](r Result[T], fn func(error) error) Result[T] {
	if fn == nil || r.err == nil {
		return r
	}
	return Err[T](fn(r.err))
}

// Fold collapses the Result into a single value.
//
// Example:
//
//	message := result.Fold(res,
//		func(err error) string { return "failed: " + err.Error() },
//		func(val string) string { return "ok: " + val },
//	)
func Fold[T any, U any](r Result[T], onErr func(error) U, onOk func(T) U) U {
	if r.err == nil {
		return onOk(r.value)
	}
	return onErr(r.err)
}
