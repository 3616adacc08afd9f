// Package option provides a generic container for optional values.
// An Option either contains a value (Some) or it does not (None),
// making the absence of a value explicit without resorting to pointers
// or sentinel values.
package option

import "fmt"

// Option represents an optional value.
// It either contains a value or it does not.
//
// The zero value of Option is None.
type Option[T any] struct {
	value T
	some  bool

	// cause is diagnostic context attached to a None.
	// It surfaces when MustGet fails, but never participates in equality.
	cause error
}

// Some returns an Option containing value.
//
// Go has no universal null, so Some always produces a present Option.
// Use FromNullable to construct an Option from a value that may be absent.
func Some[T any](value T) Option[T] {
	return Option[T]{
		value: value,
		some:  true,
	}
}

// None returns an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// NoneWithCause returns an empty Option carrying cause as diagnostic context.
// The cause surfaces when MustGet is called on the Option and can be inspected
// with Cause. It does not affect equality: a None with a cause is still equal
// to a plain None.
//
// A nil cause is equivalent to None.
func NoneWithCause[T any](cause error) Option[T] {
	return Option[T]{
		cause: cause,
	}
}

// FromNullable returns Some of the pointed-to value, or None if value is nil.
// It encodes the convention that a nil pointer means absence of data,
// so callers never need a nil check before wrapping.
func FromNullable[T any](value *T) Option[T] {
	if value == nil {
		return None[T]()
	}

	return Some(*value)
}

// IsSome returns true if the Option contains a value.
func (o Option[T]) IsSome() bool {
	return o.some
}

// IsNone returns true if the Option is empty.
func (o Option[T]) IsNone() bool {
	return !o.IsSome()
}

// Get returns the value stored in the Option and whether it is present.
// If the Option is None, it returns the zero value of T and false.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.some
}

// MustGet returns the value stored in the Option.
//
// Calling MustGet on a None is a programming error: it panics with a
// *NoneError. If the None carries a cause, the panic value wraps it,
// so errors.Is and errors.As keep working on the recovered error.
func (o Option[T]) MustGet() T {
	if !o.some {
		panic(&NoneError{cause: o.cause})
	}

	return o.value
}

// GetOrDefault returns the value stored in the Option,
// or fallback if the Option is None.
func (o Option[T]) GetOrDefault(fallback T) T {
	if !o.some {
		return fallback
	}

	return o.value
}

// Cause returns the diagnostic cause attached to a None, if any.
// It returns nil for a present Option and for a None without a cause.
func (o Option[T]) Cause() error {
	return o.cause
}

// StripCause returns a copy of the Option without its diagnostic cause.
//
// Stripped options of a comparable T are safe to compare with == and to use
// as map keys: every None strips to the identical zero value, and two Somes
// compare equal exactly when their values do.
func (o Option[T]) StripCause() Option[T] {
	o.cause = nil

	return o
}

// String implements fmt.Stringer.
func (o Option[T]) String() string {
	if !o.some {
		return "None"
	}

	return fmt.Sprintf("Some(%v)", o.value)
}

// NoneError is the panic value of MustGet called on a None.
type NoneError struct {
	cause error
}

// Error implements the error interface.
func (e *NoneError) Error() string {
	if e.cause != nil {
		return "option: cannot resolve value on None: " + e.cause.Error()
	}

	return "option: cannot resolve value on None"
}

// Unwrap returns the cause attached to the None (if any),
// making the chain visible to errors.Is and errors.As.
func (e *NoneError) Unwrap() error {
	return e.cause
}
