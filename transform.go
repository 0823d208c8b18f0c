package chunk

// Transform returns a chunk in which every element of c is replaced by
// f(element). Construction is O(1): f is not invoked here, but during
// materialization, once per source element per materialization — results
// are never memoized.
func (c Chunk[T]) Transform(f func(T) T) Chunk[T] {
	return c.TransformFlatten(func(v T) Chunk[T] {
		return Single(f(v))
	})
}

// TransformFlatten returns a chunk representing a deferred flat-map:
// materializing it materializes c, applies f to every element in order and
// concatenates the resulting sub-chunks in source order. Construction is
// O(1); f runs only at materialization.
//
// Chained calls nest rather than fuse, but chains of any length, even ones
// built in a loop, are traversed without recursion and cannot exhaust the
// call stack. A panic raised by f propagates unmodified to whoever drives
// the materialization.
func (c Chunk[T]) TransformFlatten(f func(T) Chunk[T]) Chunk[T] {
	if c.node == nil {
		return c
	}
	return Chunk[T]{node: &node[T]{
		kind:   flatten,
		size:   sizeUnknown,
		src:    c.node,
		mapper: f,
	}}
}

// Filter returns a chunk containing only the elements for which predicate
// returns true, in order. Construction is O(1); the predicate runs at
// materialization.
func (c Chunk[T]) Filter(predicate func(T) bool) Chunk[T] {
	return c.TransformFlatten(func(v T) Chunk[T] {
		if predicate(v) {
			return Single(v)
		}
		return Chunk[T]{}
	})
}

// Map returns a chunk in which every element of c is replaced by f(element),
// possibly changing the element type. Go methods cannot introduce type
// parameters, hence the package-level function. Construction is O(1); f runs
// at materialization.
func Map[A, B any](c Chunk[A], f func(A) B) Chunk[B] {
	return FlatMap(c, func(a A) Chunk[B] {
		return Single(f(a))
	})
}

// FlatMap returns a chunk representing a deferred flat-map across element
// types: the elements of f(e) for every element e of c, in order.
// Construction is O(1); f runs at materialization.
//
// Every cross-type stage steps its source through a nested iterator, so
// native call depth during traversal grows with the number of FlatMap
// stages, not with the element count. Same-type chains should prefer
// TransformFlatten, which stays flat at any chain length.
func FlatMap[A, B any](c Chunk[A], f func(A) Chunk[B]) Chunk[B] {
	if c.node == nil {
		return Chunk[B]{}
	}
	src := c.node
	return Chunk[B]{node: &node[B]{
		kind: stream,
		size: sizeUnknown,
		expand: func() subsource[B] {
			return &mapped[A, B]{src: Chunk[A]{node: src}.Iterator(), f: f}
		},
	}}
}
