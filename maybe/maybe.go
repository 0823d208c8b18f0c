// Package maybe provides an optional-value type, used by package chunk for
// accessors which may come up empty (an empty chunk has no first element).
//
// License
//
// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
//
// Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
package maybe

// Maybe is an optional value of type T: either Just a value, or Nothing.
// The zero value is Nothing.
type Maybe[T any] struct {
	value T
	ok    bool
}

// Just wraps a present value.
func Just[T any](x T) Maybe[T] {
	return Maybe[T]{value: x, ok: true}
}

// Nothing returns the absent value for type T.
func Nothing[T any]() Maybe[T] {
	return Maybe[T]{}
}

// Value unwraps m in the usual Go comma-ok manner. For Nothing it returns
// the zero value of T and false.
func (m Maybe[T]) Value() (T, bool) {
	return m.value, m.ok
}

// IsJust returns true if m carries a value.
func (m Maybe[T]) IsJust() bool {
	return m.ok
}

// WithDefault unwraps m, substituting def for Nothing.
func (m Maybe[T]) WithDefault(def T) T {
	if m.ok {
		return m.value
	}
	return def
}

// Map applies f to a present value; Nothing stays Nothing.
func (m Maybe[T]) Map(f func(T) T) Maybe[T] {
	if m.ok {
		return Just(f(m.value))
	}
	return m
}

// Map applies f to a present value, possibly changing the value type.
func Map[T, S any](f func(T) S, x Maybe[T]) Maybe[S] {
	if v, ok := x.Value(); ok {
		return Just(f(v))
	}
	return Nothing[S]()
}

// AndThen chains computations which may come up empty: a present value is
// fed to f, Nothing short-circuits.
func AndThen[T, S any](f func(T) Maybe[S], x Maybe[T]) Maybe[S] {
	if v, ok := x.Value(); ok {
		return f(v)
	}
	return Nothing[S]()
}
