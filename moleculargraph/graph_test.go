package moleculargraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonOrdersPair(t *testing.T) {
	assert.Equal(t, Pair{1, 2}, Canon(1, 2))
	assert.Equal(t, Pair{1, 2}, Canon(2, 1))
}

func TestAddEdgeIsUndirected(t *testing.T) {
	g := New()
	g.AddEdge(1, 2)
	assert.True(t, g.HasEdge(1, 2))
	assert.True(t, g.HasEdge(2, 1))
	assert.Equal(t, 1, g.Degree(1))
}

func TestToggleEdge(t *testing.T) {
	g := New()
	g.AddEdge(1, 2)
	g.ToggleEdge(1, 2)
	assert.False(t, g.HasEdge(1, 2))
	g.ToggleEdge(1, 2)
	assert.True(t, g.HasEdge(1, 2))
}

func TestSelfLoopRejected(t *testing.T) {
	g := New()
	g.AddEdge(1, 1)
	assert.False(t, g.HasEdge(1, 1))
	assert.False(t, g.HasVertex(1))
}

func TestConnectedComponentContaining(t *testing.T) {
	g := New()
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)
	g.AddVertex(4)

	comp := g.ConnectedComponentContaining(1)
	assert.Equal(t, []int{1, 2, 3}, comp)

	comp = g.ConnectedComponentContaining(4)
	assert.Equal(t, []int{4}, comp)

	assert.Nil(t, g.ConnectedComponentContaining(99))
}

func TestDiffFormingBreaking(t *testing.T) {
	a := New()
	a.AddEdge(1, 2)
	a.AddEdge(2, 3)

	b := New()
	b.AddEdge(1, 2)
	b.AddEdge(3, 4)

	forming, breaking := Diff(a, b)
	require.Len(t, forming, 1)
	require.Len(t, breaking, 1)
	assert.Equal(t, Pair{3, 4}, forming[0])
	assert.Equal(t, Pair{2, 3}, breaking[0])
}

func TestSubgraphInducesOnlyInternalEdges(t *testing.T) {
	g := New()
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)
	g.AddEdge(3, 4)

	sub := g.Subgraph([]int{1, 2, 3})
	assert.True(t, sub.HasEdge(1, 2))
	assert.True(t, sub.HasEdge(2, 3))
	assert.False(t, sub.HasEdge(3, 4))
}

func TestCloneIsIndependent(t *testing.T) {
	g := New()
	g.AddEdge(1, 2)
	clone := g.Clone()
	clone.RemoveEdge(1, 2)
	assert.True(t, g.HasEdge(1, 2))
	assert.False(t, clone.HasEdge(1, 2))
}

func TestSameVertexSet(t *testing.T) {
	a := New()
	a.AddVertex(1)
	a.AddVertex(2)
	b := New()
	b.AddVertex(2)
	b.AddVertex(1)
	assert.True(t, SameVertexSet(a, b))

	b.AddVertex(3)
	assert.False(t, SameVertexSet(a, b))
}
