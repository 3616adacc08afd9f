package option

import "iter"

// Compact returns the values of the present elements of opts,
// preserving their relative order and skipping every None.
// The input is not modified. An empty input yields an empty result.
func Compact[T any](opts []Option[T]) []T {
	// Let's be optimistic about the number of present elements
	values := make([]T, 0, len(opts))

	for _, o := range opts {
		if o.some {
			values = append(values, o.value)
		}
	}

	return values
}

// Map applies f to the value of every present element of opts,
// preserving their relative order and skipping every None.
// f is called exactly once per present element and never for a None,
// left to right; a panic raised by f propagates to the caller unchanged.
func Map[T any, U any](opts []Option[T], f func(T) U) []U {
	results := make([]U, 0, len(opts))

	for _, o := range opts {
		if o.some {
			results = append(results, f(o.value))
		}
	}

	return results
}

// CompactSeq is the iterator form of Compact: it returns a sequence of the
// values of the present elements of seq, in order, skipping every None.
func CompactSeq[T any](seq iter.Seq[Option[T]]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for o := range seq {
			if o.some && !yield(o.value) {
				return
			}
		}
	}
}

// MapSeq is the iterator form of Map: it returns a sequence of f applied to
// the values of the present elements of seq, in order, skipping every None.
// f is called as the sequence is consumed, exactly once per present element.
func MapSeq[T any, U any](seq iter.Seq[Option[T]], f func(T) U) iter.Seq[U] {
	return func(yield func(U) bool) {
		for o := range seq {
			if o.some && !yield(f(o.value)) {
				return
			}
		}
	}
}
