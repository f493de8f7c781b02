// Package fp provides the composition primitives the rest of the module is
// built on.
//
// Example:
//
//	shout := fp.Compose(strings.ToUpper, func(s string) string { return s + "!" })
//	fmt.Println(shout("go"))
package fp

// Identity returns the supplied value unchanged. It is the unit of Compose
// and the accumulated function of a freshly lifted fuse cell.
//
// Example:
//
//	value := Identity(42)
func Identity[T any](v T) T {
	return v
}

// Constant returns a function that always returns v.
//
// Example:
//
//	getDefault := Constant(time.Minute)
//	fmt.Println(getDefault())
func Constant[T any](v T) func() T {
	return func() T {
		return v
	}
}

// Compose chains f and g left to right: Compose(f, g)(x) == g(f(x)). Unlike a
// same-type pipeline, f and g may change the value's type, which is what lets
// a chain of maps collapse into a single function.
//
// Example:
//
//	length := Compose(strings.TrimSpace, func(s string) int { return len(s) })
//	fmt.Println(length("  go  "))
func Compose[A any, B any, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C {
		return g(f(a))
	}
}

// Pipe applies a sequence of same-type functions to value, left to right.
//
// Example:
//
//	result := Pipe(2,
//		func(n int) int { return n * 2 },
//		func(n int) int { return n + 1 },
//	)
func Pipe[T any](value T, fns ...func(T) T) T {
	result := value
	for _, fn := range fns {
		result = fn(result)
	}
	return result
}

// Curry converts a binary function into its curried form.
//
// Example:
//
//	add := func(a, b int) int { return a + b }
//	addFive := Curry(add)(5)
//	result := addFive(3)
func Curry[A any, B any, C any](fn func(A, B) C) func(A) func(B) C {
	return func(a A) func(B) C {
		return func(b B) C {
			return fn(a, b)
		}
	}
}
