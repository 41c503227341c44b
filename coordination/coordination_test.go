package coordination

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/reaxtrace/reaxtrace/moleculargraph"
)

func TestHistogramAndMean(t *testing.T) {
	g := moleculargraph.New()
	// 1 bonded to 2 and 3; 2 and 3 only bonded to 1.
	g.AddEdge(1, 2)
	g.AddEdge(1, 3)

	hist := Histogram(g)
	assert.Equal(t, 1, hist[2]) // atom 1 has degree 2
	assert.Equal(t, 2, hist[1]) // atoms 2 and 3 have degree 1

	assert.InDelta(t, 4.0/3.0, Mean(g), 1e-9)
	assert.Equal(t, 2, Of(g, 1))
}

func TestMeanOfEmptyGraphIsZero(t *testing.T) {
	assert.Equal(t, 0.0, Mean(moleculargraph.New()))
}
