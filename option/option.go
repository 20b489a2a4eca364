// Package option provides the universal Option type that every generated
// two-variant type converts to and from.
package option

import (
	"cmp"
	"fmt"
)

// Option represents an optional value: either Some(value) or None.
// The zero value is None.
type Option[T any] struct {
	value   T
	present bool
}

// Some constructs an Option that has a value.
func Some[T any](value T) Option[T] {
	return Option[T]{value: value, present: true}
}

// None constructs an Option that does not have a value.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsSome returns true if the Option contains a value.
func (o Option[T]) IsSome() bool {
	return o.present
}

// IsNone returns true if the Option is empty.
func (o Option[T]) IsNone() bool {
	return !o.present
}

// Unwrap returns the contained value, or panics if there is no value.
func (o Option[T]) Unwrap() T {
	if !o.present {
		panic("option: Unwrap of None value")
	}
	return o.value
}

// Expect returns the contained value, or panics with msg if there is no
// value.
func (o Option[T]) Expect(msg string) T {
	if !o.present {
		panic(msg)
	}
	return o.value
}

// UnwrapOr returns the contained value, or fallback if there is no value.
func (o Option[T]) UnwrapOr(fallback T) T {
	if !o.present {
		return fallback
	}
	return o.value
}

// UnwrapOrDefault returns the contained value, or the zero value of T if
// there is no value.
func (o Option[T]) UnwrapOrDefault() T {
	if !o.present {
		var zero T
		return zero
	}
	return o.value
}

// UnwrapOrElse returns the contained value, or the result of calling f if
// there is no value. f is called only when the Option is None.
func (o Option[T]) UnwrapOrElse(f func() T) T {
	if !o.present {
		return f()
	}
	return o.value
}

// String implements fmt.Stringer.
func (o Option[T]) String() string {
	if o.present {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}

// Map transforms the contained value if present. It is a free function
// because Go methods cannot introduce new type parameters.
func Map[T, U any](o Option[T], f func(T) U) Option[U] {
	if !o.present {
		return None[U]()
	}
	return Some(f(o.value))
}

// Equal reports whether two Options are the same variant with equal
// contained values.
func Equal[T comparable](a, b Option[T]) bool {
	if a.present != b.present {
		return false
	}
	return !a.present || a.value == b.value
}

// Compare orders two Options: None sorts before any Some, and two Some
// values order by their contained values.
func Compare[T cmp.Ordered](a, b Option[T]) int {
	if a.present != b.present {
		if a.present {
			return 1
		}
		return -1
	}
	if !a.present {
		return 0
	}
	return cmp.Compare(a.value, b.value)
}
