/*
Package chunk implements a persistent (immutable) sequence container with
O(1) append, O(1) concatenation and O(1) lazy transformation.

A chunk is never modified in place: every operation returns a new chunk,
leaving the original valid and unchanged. Under the hood a chunk is a lazy
expression tree with structural sharing, i.e. new incarnations retain most
of the memory held by older ones. Copying a chunk copies a single pointer.

No work is done on the elements until a chunk is materialized, either all at
once with Slice or element by element through an Iterator. Materialization
runs in time proportional to the output and is driven by an explicit work
stack, so deeply skewed trees (the natural result of long append chains)
cannot exhaust the call stack.

Materialization is not memoized: repeated calls repeat the full traversal,
including invocation of any deferred transform functions. Callers who
materialize inside a loop that also keeps appending turn an intended O(n)
total cost into O(n²).

Immutable chunks are inherently concurrency-safe for readers.

Status

Awaiting Go 1.18 with generics.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package chunk

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'chunk'.
func tracer() tracing.Trace {
	return tracing.Select("chunk")
}
