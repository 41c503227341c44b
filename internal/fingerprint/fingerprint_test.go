package fingerprint

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/reaxtrace/reaxtrace/moleculargraph"
)

func TestOfIsStableUnderRelabeling(t *testing.T) {
	g1 := moleculargraph.New()
	g1.AddEdge(1, 2)
	g1.AddEdge(2, 3)
	sym1 := map[int]string{1: "H", 2: "C", 3: "H"}

	g2 := moleculargraph.New()
	g2.AddEdge(10, 20)
	g2.AddEdge(20, 30)
	sym2 := map[int]string{10: "H", 20: "C", 30: "H"}

	assert.Equal(t, Of(g1, sym1), Of(g2, sym2))
}

func TestOfDiffersForDifferentSymbols(t *testing.T) {
	g := moleculargraph.New()
	g.AddEdge(1, 2)

	assert.NotEqual(t, Of(g, map[int]string{1: "C", 2: "H"}), Of(g, map[int]string{1: "N", 2: "H"}))
}

func TestOfDiffersForDifferentTopology(t *testing.T) {
	chain := moleculargraph.New()
	chain.AddEdge(1, 2)
	chain.AddEdge(2, 3)

	star := moleculargraph.New()
	star.AddEdge(1, 2)
	star.AddEdge(1, 3)

	sym := map[int]string{1: "C", 2: "H", 3: "H"}
	assert.NotEqual(t, Of(chain, sym), Of(star, sym))
}
