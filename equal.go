package chunk

// Equal reports whether a and b materialize to the same ordered sequence.
// Equality is over element values, never over tree shape: two chunks built
// by different operation histories are equal whenever they produce the same
// elements in the same order. The comparison is incremental and stops at
// the first difference; chunks with differing cached lengths are unequal
// without any traversal.
func Equal[T comparable](a, b Chunk[T]) bool {
	return EqualFunc(a, b, func(x T, y T) bool { return x == y })
}

// EqualFunc is like Equal, but delegates element comparison to eq, which
// also permits comparing chunks over two different element types.
func EqualFunc[A, B any](a Chunk[A], b Chunk[B], eq func(A, B) bool) bool {
	if a.node != nil && b.node != nil &&
		a.node.size != sizeUnknown && b.node.size != sizeUnknown &&
		a.node.size != b.node.size {
		return false
	}
	ia, ib := a.Iterator(), b.Iterator()
	for {
		na, nb := ia.Next(), ib.Next()
		if na != nb {
			return false
		}
		if !na {
			return true
		}
		if !eq(ia.Value(), ib.Value()) {
			return false
		}
	}
}
