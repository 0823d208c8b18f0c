package chunk

// mapChain is a persistent list of deferred mappers still pending for a
// subtree. Frames share chain tails, so pushing a subtree under one more
// mapper is O(1).
type mapChain[T any] struct {
	f    func(T) Chunk[T]
	next *mapChain[T]
}

// frame is one entry of an iterator's work stack: either a pending subtree
// or an active type-erased source, together with the mappers that apply to
// whatever it emits.
type frame[T any] struct {
	n    *node[T]
	sub  subsource[T]
	maps *mapChain[T]
}

// Iterator walks a chunk in element order, one element per call to Next.
// It holds its traversal state (an explicit work stack) locally, so any
// number of independent iterators may walk the same chunk concurrently.
// The chunk itself is never modified by iteration.
type Iterator[T any] struct {
	stack []frame[T]
	value T
}

// Iterator returns a fresh forward-only iterator positioned before the
// first element of c.
func (c Chunk[T]) Iterator() *Iterator[T] {
	it := &Iterator[T]{}
	if c.node != nil {
		it.stack = append(it.stack, frame[T]{n: c.node})
	}
	return it
}

// Next advances the iterator to the next element and returns true, or
// returns false when the sequence is exhausted. Deferred transform
// functions are invoked as their source elements are reached; a panic from
// one of them propagates unmodified to the caller of Next.
//
// The traversal is iterative: tree depth, however skewed by long append or
// transform chains, translates into entries of the heap-allocated work
// stack, never into call-stack depth.
func (it *Iterator[T]) Next() bool {
	for len(it.stack) > 0 {
		top := it.stack[len(it.stack)-1]
		if top.sub != nil { // an active erased source: pull its next sub-chunk
			out, ok := top.sub.next()
			if !ok {
				it.stack = it.stack[:len(it.stack)-1]
				continue
			}
			if out.node != nil {
				it.stack = append(it.stack, frame[T]{n: out.node, maps: top.maps})
			}
			continue
		}
		it.stack = it.stack[:len(it.stack)-1]
		n := top.n
		switch n.kind {
		case single:
			if top.maps == nil {
				it.value = n.value
				return true
			}
			// expand the element through the innermost pending mapper;
			// the remaining chain applies to the expansion's elements
			if out := top.maps.f(n.value); out.node != nil {
				it.stack = append(it.stack, frame[T]{n: out.node, maps: top.maps.next})
			}
		case concat:
			it.stack = append(it.stack, frame[T]{n: n.right, maps: top.maps})
			it.stack = append(it.stack, frame[T]{n: n.left, maps: top.maps})
		case flatten:
			it.stack = append(it.stack, frame[T]{
				n:    n.src,
				maps: &mapChain[T]{f: n.mapper, next: top.maps},
			})
		case stream:
			it.stack = append(it.stack, frame[T]{sub: n.expand(), maps: top.maps})
		default:
			assertThat(false, "unknown chunk node variant %d", n.kind)
		}
	}
	return false
}

// Value returns the element the iterator currently points at. It is valid
// after Next has returned true and stays stable until the next call to Next.
func (it *Iterator[T]) Value() T {
	return it.value
}

// Each calls f for every element of c in order, stopping early if f returns
// false.
func (c Chunk[T]) Each(f func(T) bool) {
	it := c.Iterator()
	for it.Next() {
		if !f(it.Value()) {
			return
		}
	}
}

// Slice materializes c into a new slice, in element order. It runs in time
// proportional to the output size and leaves c untouched; calling it twice
// yields equal slices but repeats the full traversal, including invocation
// of deferred transform functions.
//
// When the total length is cached (no deferred transform present), the
// buffer is allocated up front; otherwise it grows dynamically.
func (c Chunk[T]) Slice() []T {
	var buf []T
	if c.node != nil && c.node.size != sizeUnknown {
		tracer().Debugf("materialize: pre-sizing buffer for %d elements", c.node.size)
		buf = make([]T, 0, c.node.size)
	} else {
		buf = make([]T, 0)
	}
	it := c.Iterator()
	for it.Next() {
		buf = append(buf, it.value)
	}
	return buf
}

// Fold reduces c to a single value by feeding every element, in order, to f
// together with the accumulator, starting from zero.
func Fold[A, B any](c Chunk[A], zero B, f func(B, A) B) B {
	acc := zero
	it := c.Iterator()
	for it.Next() {
		acc = f(acc, it.Value())
	}
	return acc
}
