package result_test

import (
	"errors"
	"fmt"
	"testing"
	"testing/quick"

	"github.com/charmingruby/mapfuse/result"
)

var errArbitrary = errors.New("arbitrary failure")

// arbitraryResult builds Ok or Err from quick-generated inputs.
func arbitraryResult(value int, ok bool) result.Result[int] {
	if ok {
		return result.Ok(value)
	}
	return result.Err[int](errArbitrary)
}

func sameResult[T comparable](a, b result.Result[T]) bool {
	if a.IsOk() != b.IsOk() {
		return false
	}
	var zero T
	return a.UnwrapOr(zero) == b.UnwrapOr(zero)
}

func TestResultMapIdentity(t *testing.T) {
	check := func(value int, ok bool) bool {
		res := arbitraryResult(value, ok)
		return sameResult(result.Map(res, func(x int) int { return x }), res)
	}
	if err := quick.Check(check, nil); err != nil {
		t.Fatalf("map identity failed: %v", err)
	}
}

func TestResultMapComposition(t *testing.T) {
	inc := func(x int) int { return x + 1 }
	dbl := func(x int) int { return x * 2 }

	check := func(value int, ok bool) bool {
		res := arbitraryResult(value, ok)
		chained := result.Map(result.Map(res, inc), dbl)
		collapsed := result.Map(res, func(x int) int { return dbl(inc(x)) })
		return sameResult(chained, collapsed)
	}
	if err := quick.Check(check, nil); err != nil {
		t.Fatalf("map composition failed: %v", err)
	}
}

func TestResultFlatMapLaws(t *testing.T) {
	halve := func(x int) result.Result[int] {
		if x%2 != 0 {
			return result.Err[int](errors.New("odd"))
		}
		return result.Ok(x / 2)
	}
	add3 := func(x int) result.Result[int] {
		return result.Ok(x + 3)
	}

	leftIdentity := func(x int) bool {
		return sameResult(result.FlatMap(result.Ok(x), halve), halve(x))
	}
	if err := quick.Check(leftIdentity, nil); err != nil {
		t.Fatalf("flat map left identity failed: %v", err)
	}

	rightIdentity := func(value int, ok bool) bool {
		res := arbitraryResult(value, ok)
		return sameResult(result.FlatMap(res, result.Ok[int]), res)
	}
	if err := quick.Check(rightIdentity, nil); err != nil {
		t.Fatalf("flat map right identity failed: %v", err)
	}

	associativity := func(value int, ok bool) bool {
		res := arbitraryResult(value, ok)
		left := result.FlatMap(result.FlatMap(res, halve), add3)
		right := result.FlatMap(res, func(v int) result.Result[int] {
			return result.FlatMap(halve(v), add3)
		})
		return sameResult(left, right)
	}
	if err := quick.Check(associativity, nil); err != nil {
		t.Fatalf("flat map associativity failed: %v", err)
	}
}

func TestResultMapErrLaws(t *testing.T) {
	wrap := func(err error) error { return fmt.Errorf("outer: %w", err) }
	tag := func(err error) error { return fmt.Errorf("tagged: %w", err) }

	identity := func(value int, ok bool) bool {
		res := arbitraryResult(value, ok)
		mapped := result.MapErr(res, func(err error) error { return err })
		return sameResult(mapped, res) && errors.Is(mapped.Err(), res.Err())
	}
	if err := quick.Check(identity, nil); err != nil {
		t.Fatalf("map err identity failed: %v", err)
	}

	composition := func(value int, ok bool) bool {
		res := arbitraryResult(value, ok)
		chained := result.MapErr(result.MapErr(res, wrap), tag)
		collapsed := result.MapErr(res, func(err error) error { return tag(wrap(err)) })
		if res.IsOk() {
			return chained.IsOk() && collapsed.IsOk()
		}
		return chained.Err().Error() == collapsed.Err().Error() &&
			errors.Is(chained.Err(), errArbitrary)
	}
	if err := quick.Check(composition, nil); err != nil {
		t.Fatalf("map err composition failed: %v", err)
	}
}

func TestResultFoldSelectsBranch(t *testing.T) {
	check := func(value int, ok bool) bool {
		res := arbitraryResult(value, ok)
		picked := result.Fold(res,
			func(error) string { return "err" },
			func(int) string { return "ok" },
		)
		if res.IsOk() {
			return picked == "ok"
		}
		return picked == "err"
	}
	if err := quick.Check(check, nil); err != nil {
		t.Fatalf("fold branch selection failed: %v", err)
	}
}
