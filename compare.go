package option

import "golang.org/x/exp/constraints"

// Equal reports whether two Options are equal: two Nones are always equal
// (an attached cause is diagnostic context, not part of the value),
// and two Somes are equal exactly when their values are.
func Equal[T comparable](x, y Option[T]) bool {
	if x.some != y.some {
		return false
	}

	return !x.some || x.value == y.value
}

// EqualFunc is like Equal, but compares present values using eq.
// The element types of the two Options may differ.
func EqualFunc[T any, U any](x Option[T], y Option[U], eq func(T, U) bool) bool {
	if x.some != y.some {
		return false
	}

	return !x.some || eq(x.value, y.value)
}

// Compare returns a total order over Options:
// None sorts before any Some, a floating-point NaN before any other value,
// and Somes order by their values.
// The result is -1 when x sorts before y, 0 when they are equal, +1 otherwise.
func Compare[T constraints.Ordered](x, y Option[T]) int {
	switch {
	case !x.some && !y.some:
		return 0
	case !x.some:
		return -1
	case !y.some:
		return +1
	}

	xNaN := isNaN(x.value)
	yNaN := isNaN(y.value)

	switch {
	case xNaN && yNaN:
		return 0
	case xNaN:
		return -1
	case yNaN:
		return +1
	case x.value < y.value:
		return -1
	case x.value > y.value:
		return +1
	}

	return 0
}

// isNaN reports whether x is a floating-point NaN.
// It is false for every value of a non-float type.
func isNaN[T constraints.Ordered](x T) bool {
	return x != x
}
