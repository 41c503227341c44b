package rings

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/reaxtrace/reaxtrace/moleculargraph"
)

func TestFindRingsTriangle(t *testing.T) {
	g := moleculargraph.New()
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)
	g.AddEdge(3, 1)

	got := FindRings(g, 6)
	requireLen(t, got, 1)
	assert.Equal(t, []int{1, 2, 3}, got[0])
}

func TestFindRingsSquare(t *testing.T) {
	g := moleculargraph.New()
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)
	g.AddEdge(3, 4)
	g.AddEdge(4, 1)

	got := FindRings(g, 6)
	requireLen(t, got, 1)
	assert.Equal(t, []int{1, 2, 3, 4}, got[0])
}

func TestFindRingsChordedSquareHasNoFourRing(t *testing.T) {
	// A 4-cycle with one diagonal decomposes into two triangles; the
	// 4-membered path is a shortcut ring and must not be reported.
	g := moleculargraph.New()
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)
	g.AddEdge(3, 4)
	g.AddEdge(4, 1)
	g.AddEdge(1, 3)

	got := FindRings(g, 6)
	var sizes []int
	for _, r := range got {
		sizes = append(sizes, len(r))
	}
	sort.Ints(sizes)
	assert.Equal(t, []int{3, 3}, sizes)
}

func TestFindRingsAcyclicGraphFindsNone(t *testing.T) {
	g := moleculargraph.New()
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)

	assert.Empty(t, FindRings(g, 6))
}

func requireLen(t *testing.T, got [][]int, n int) {
	t.Helper()
	if len(got) != n {
		t.Fatalf("expected %d rings, got %d: %v", n, len(got), got)
	}
}
