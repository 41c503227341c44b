package bond

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/reaxtrace/reaxtrace/frame"
)

func TestInferBondsWithinCutoff(t *testing.T) {
	fr := frame.Frame{Atoms: []frame.Atom{
		{ID: 1, Symbol: "C", X: 0, Y: 0, Z: 0},
		{ID: 2, Symbol: "H", X: 1.0, Y: 0, Z: 0},
		{ID: 3, Symbol: "H", X: 10.0, Y: 0, Z: 0},
	}}

	g := Infer(fr)
	assert.True(t, g.HasEdge(1, 2))
	assert.False(t, g.HasEdge(1, 3))
	assert.False(t, g.HasEdge(2, 3))
}

func TestInferCustomRatio(t *testing.T) {
	fr := frame.Frame{Atoms: []frame.Atom{
		{ID: 1, Symbol: "C", X: 0, Y: 0, Z: 0},
		{ID: 2, Symbol: "C", X: 2.0, Y: 0, Z: 0},
	}}

	assert.False(t, Infer(fr).HasEdge(1, 2))
	assert.True(t, Infer(fr, WithRatio(2.0)).HasEdge(1, 2))
}

func TestInferMinimumImageDistance(t *testing.T) {
	lat := &frame.Lattice{Vectors: [3][3]float64{{10, 0, 0}, {0, 10, 0}, {0, 0, 10}}}
	fr := frame.Frame{
		Atoms: []frame.Atom{
			{ID: 1, Symbol: "C", X: 0.5, Y: 0, Z: 0},
			{ID: 2, Symbol: "C", X: 9.5, Y: 0, Z: 0},
		},
		Lattice: lat,
	}
	// direct distance is 9.0 (no bond); minimum-image distance across the
	// boundary is 1.0 (bond present).
	g := Infer(fr)
	assert.True(t, g.HasEdge(1, 2))
}
