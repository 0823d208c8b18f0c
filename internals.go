package chunk

import "fmt"

// Variant tags for node. An empty chunk is represented by a nil *node, so
// there is no tag for it.
type variant int8

const (
	single  variant = iota // exactly one element
	concat                 // all elements of left, followed by all elements of right
	flatten                // deferred same-type flat-map over src
	stream                 // deferred cross-type flat-map behind a type-erased source
)

// sizeUnknown marks nodes whose element count cannot be cached at
// construction time without running a deferred mapper.
const sizeUnknown = -1

// node is one cell of the lazy expression tree a chunk is made of. Nodes are
// immutable after construction and may be shared by any number of parents,
// which makes the tree a DAG. Sub-structure sharing is safe because no
// operation ever writes to an existing node.
type node[T any] struct {
	kind  variant
	size  int // cached element count, or sizeUnknown
	value T   // single: the element
	// concat: ordered children
	left  *node[T]
	right *node[T]
	// flatten: source and per-element expansion of the deferred flat-map
	src    *node[T]
	mapper func(T) Chunk[T]
	// stream: factory for a fresh per-traversal type-erased source
	expand func() subsource[T]
}

// subsource yields successive, already-mapped sub-chunks of a type-erased
// source during traversal. Every traversal gets a fresh instance, so shared
// nodes never carry traversal state.
type subsource[T any] interface {
	next() (Chunk[T], bool)
}

// mapped adapts an iterator over elements of type A into a subsource of
// mapped sub-chunks with elements of type B.
type mapped[A, B any] struct {
	src *Iterator[A]
	f   func(A) Chunk[B]
}

func (m *mapped[A, B]) next() (Chunk[B], bool) {
	if !m.src.Next() {
		return Chunk[B]{}, false
	}
	return m.f(m.src.Value()), true
}

// addSizes propagates sizeUnknown: a concat over a child of unknown size
// has unknown size itself.
func addSizes(a, b int) int {
	if a == sizeUnknown || b == sizeUnknown {
		return sizeUnknown
	}
	return a + b
}

func (n *node[T]) String() string {
	if n == nil {
		return "∅"
	}
	switch n.kind {
	case single:
		return fmt.Sprintf("⟨%v⟩", n.value)
	case concat:
		if n.size == sizeUnknown {
			return "⧺(?)"
		}
		return fmt.Sprintf("⧺(%d)", n.size)
	case flatten:
		return "⤈"
	case stream:
		return "⤈*"
	}
	return "?"
}

// --- Helpers ---------------------------------------------------------------

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("chunk: "+msg, msgargs...)
		panic(msg)
	}
}
