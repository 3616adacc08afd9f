package option

import "iter"

// All returns an iterator over the contents of the Option:
// a single value for Some, nothing for None.
//
// The Option is immutable, so every range over the sequence replays
// from the start. A session obtained with iter.Pull is single-pass:
// once exhausted, its next function keeps reporting ok == false.
func (o Option[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if o.some {
			yield(o.value)
		}
	}
}

// Slice returns the contents of the Option as a slice:
// a single-element slice for Some, nil for None.
func (o Option[T]) Slice() []T {
	if !o.some {
		return nil
	}

	return []T{o.value}
}
