package chunk

import (
	"github.com/npillmayer/chunk/maybe"
)

// Chunk is a persistent sequence of elements of type T. An empty instance is
// usable as an empty sequence, i.e. this is legal:
//
//	c := chunk.Chunk[int]{}.Append(1).Append(2)
//
// returning a chunk containing elements ⟨1 2⟩. Chunks are values; assigning
// a chunk to another variable is an O(1) clone which shares all structure
// with the original. Operations on either never affect the other.
type Chunk[T any] struct {
	node *node[T]
}

// Empty returns the canonical empty chunk. It is equivalent to the zero
// value Chunk[T]{}.
func Empty[T any]() Chunk[T] {
	return Chunk[T]{}
}

// Single returns a chunk holding exactly one element.
func Single[T any](value T) Chunk[T] {
	return Chunk[T]{node: &node[T]{kind: single, size: 1, value: value}}
}

// New returns a chunk holding the given elements, in order. It is a
// convenience for successive calls to Append.
func New[T any](values ...T) Chunk[T] {
	c := Chunk[T]{}
	for _, v := range values {
		c = c.Append(v)
	}
	return c
}

// --- API -------------------------------------------------------------------

// Append returns a chunk with value attached after all elements of c.
// It is O(1) in time and space and never copies existing elements: the new
// chunk references c unchanged.
func (c Chunk[T]) Append(value T) Chunk[T] {
	s := Single(value)
	if c.node == nil {
		return s
	}
	return Chunk[T]{node: &node[T]{
		kind:  concat,
		size:  addSizes(c.node.size, 1),
		left:  c.node,
		right: s.node,
	}}
}

// Concat returns a chunk with all elements of c followed by all elements of
// other. It is O(1): the result references both operands unchanged. An empty
// operand is an identity, i.e. the other operand is returned as is.
func (c Chunk[T]) Concat(other Chunk[T]) Chunk[T] {
	if c.node == nil {
		return other
	}
	if other.node == nil {
		return c
	}
	return Chunk[T]{node: &node[T]{
		kind:  concat,
		size:  addSizes(c.node.size, other.node.size),
		left:  c.node,
		right: other.node,
	}}
}

// Len returns the number of elements of c. It is O(1), except when c
// contains a deferred transform (see TransformFlatten): then the true count
// depends on the transforms' output and Len has to traverse, invoking the
// deferred functions. The count is not cached; repeated calls repeat the
// traversal.
func (c Chunk[T]) Len() int {
	if c.node == nil {
		return 0
	}
	if c.node.size != sizeUnknown {
		return c.node.size
	}
	tracer().Debugf("chunk size not cached, counting by traversal")
	n := 0
	it := c.Iterator()
	for it.Next() {
		n++
	}
	return n
}

// IsEmpty returns Len() == 0. Like Len it is O(1) unless c contains a
// deferred transform; then it probes the traversal for a single element
// instead of counting all of them.
func (c Chunk[T]) IsEmpty() bool {
	if c.node == nil {
		return true
	}
	if c.node.size != sizeUnknown {
		return c.node.size == 0
	}
	return !c.Iterator().Next()
}

// First returns the first element of c, if any.
func (c Chunk[T]) First() maybe.Maybe[T] {
	n := c.node
	if n == nil {
		return maybe.Nothing[T]()
	}
	if n.size != sizeUnknown { // no deferred transform below ⇒ walk the left spine
		for n.kind == concat {
			n = n.left
		}
		assertThat(n.kind == single, "left spine of a sized chunk must end in an element")
		return maybe.Just(n.value)
	}
	it := c.Iterator()
	if it.Next() {
		return maybe.Just(it.Value())
	}
	return maybe.Nothing[T]()
}

// Last returns the last element of c, if any. O(1) for chunks without
// deferred transforms, O(n) otherwise.
func (c Chunk[T]) Last() maybe.Maybe[T] {
	n := c.node
	if n == nil {
		return maybe.Nothing[T]()
	}
	if n.size != sizeUnknown { // no deferred transform below ⇒ walk the right spine
		for n.kind == concat {
			n = n.right
		}
		assertThat(n.kind == single, "right spine of a sized chunk must end in an element")
		return maybe.Just(n.value)
	}
	var last T
	found := false
	it := c.Iterator()
	for it.Next() {
		last, found = it.Value(), true
	}
	if found {
		return maybe.Just(last)
	}
	return maybe.Nothing[T]()
}
