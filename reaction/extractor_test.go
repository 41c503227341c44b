package reaction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reaxtrace/reaxtrace/moleculargraph"
)

func TestExtractBondBreaking(t *testing.T) {
	g1 := moleculargraph.New()
	g1.AddEdge(1, 2) // H2

	g2 := moleculargraph.New()
	g2.AddVertex(1)
	g2.AddVertex(2)

	symbols := map[int]string{1: "H", 2: "H"}

	r, err := Extract(g1, g2, symbols)
	require.NoError(t, err)
	require.NotNil(t, r)
	assert.Equal(t, "H2", r.ReactantsComposition)
	assert.Equal(t, "H", r.ProductsComposition)
	assert.Len(t, r.Products, 2)
}

func TestExtractNoChangeReturnsNil(t *testing.T) {
	g1 := moleculargraph.New()
	g1.AddEdge(1, 2)
	g2 := moleculargraph.New()
	g2.AddEdge(1, 2)

	r, err := Extract(g1, g2, map[int]string{1: "H", 2: "H"})
	require.NoError(t, err)
	assert.Nil(t, r)
}

func TestExtractIncompatibleGraphs(t *testing.T) {
	g1 := moleculargraph.New()
	g1.AddVertex(1)
	g2 := moleculargraph.New()
	g2.AddVertex(2)

	_, err := Extract(g1, g2, nil)
	assert.ErrorIs(t, err, moleculargraph.ErrIncompatibleGraphs)
}
