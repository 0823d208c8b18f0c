package chunk_test

import (
	"testing"

	"github.com/npillmayer/chunk"
	"github.com/stretchr/testify/require"
)

// The sequence laws every chunk has to obey, checked over the public API
// only: equality of materialized order, never of tree shape.

func TestLawConcatIdentity(t *testing.T) {
	c := chunk.New(1, 2, 3)
	require.True(t, chunk.Equal(chunk.Empty[int]().Concat(c), c))
	require.True(t, chunk.Equal(c.Concat(chunk.Empty[int]()), c))
}

func TestLawAppend(t *testing.T) {
	c := chunk.New(1, 2, 3)
	want := append(c.Slice(), 4)
	require.Equal(t, want, c.Append(4).Slice())
}

func TestLawConcat(t *testing.T) {
	a := chunk.New(1, 2)
	b := chunk.New(3, 4)
	want := append(a.Slice(), b.Slice()...)
	require.Equal(t, want, a.Concat(b).Slice())
}

func TestLawMap(t *testing.T) {
	c := chunk.New(1, 2, 3)
	f := func(n int) int { return n * 10 }
	want := make([]int, 0, c.Len())
	for _, v := range c.Slice() {
		want = append(want, f(v))
	}
	require.Equal(t, want, c.Transform(f).Slice())
	require.Equal(t, want, chunk.Map(c, f).Slice())
}

func TestLawFlatMap(t *testing.T) {
	c := chunk.New(1, 2, 3)
	f := func(n int) chunk.Chunk[int] { return chunk.New(n, n*100) }
	want := make([]int, 0)
	for _, v := range c.Slice() {
		want = append(want, f(v).Slice()...)
	}
	require.Equal(t, want, c.TransformFlatten(f).Slice())
	require.Equal(t, want, chunk.FlatMap(c, f).Slice())
}

func TestLawCloneNonInterference(t *testing.T) {
	c := chunk.New(1, 2)
	clone := c // cloning is plain assignment: O(1), shares all structure
	require.True(t, chunk.Equal(c, clone))
	_ = clone.Append(3).Transform(func(n int) int { return -n })
	require.Equal(t, []int{1, 2}, c.Slice())
}

func TestLawSizeConsistency(t *testing.T) {
	c := chunk.Empty[int]()
	for i := 0; i < 100; i++ {
		c = c.Append(i)
		if i%7 == 0 {
			c = c.Concat(chunk.New(-1, -2))
		}
		require.Equal(t, len(c.Slice()), c.Len())
	}
}

// Concrete acceptance scenarios.

func TestScenarioAppendPair(t *testing.T) {
	c := chunk.Empty[int]().Append(1).Append(2)
	require.Equal(t, []int{1, 2}, c.Slice())
}

func TestScenarioConcatPairs(t *testing.T) {
	a := chunk.Empty[int]().Append(1).Append(2)
	b := chunk.Empty[int]().Append(3).Append(4)
	require.Equal(t, []int{1, 2, 3, 4}, a.Concat(b).Slice())
}

func TestScenarioTransform(t *testing.T) {
	c := chunk.Empty[int]().Append(1).Append(2).Transform(func(n int) int { return n * 10 })
	require.Equal(t, []int{10, 20}, c.Slice())
}

func TestScenarioTransformFlatten(t *testing.T) {
	c := chunk.Empty[int]().Append(1).Append(2).TransformFlatten(func(n int) chunk.Chunk[int] {
		return chunk.Empty[int]().Append(n).Append(n)
	})
	require.Equal(t, []int{1, 1, 2, 2}, c.Slice())
}

func TestScenarioEmpty(t *testing.T) {
	e := chunk.Empty[int]()
	require.Equal(t, []int{}, e.Slice())
	require.Equal(t, 0, e.Len())
	require.True(t, e.IsEmpty())
}
