package lindemann

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reaxtrace/reaxtrace/frame"
)

func TestAccumulatorZeroForRigidTrajectory(t *testing.T) {
	var acc Accumulator
	for i := 0; i < 5; i++ {
		fr := frame.Frame{Atoms: []frame.Atom{
			{ID: 1, X: 0, Y: 0, Z: 0},
			{ID: 2, X: 1, Y: 0, Z: 0},
			{ID: 3, X: 0, Y: 1, Z: 0},
		}}
		require.NoError(t, acc.Observe(fr))
	}

	assert.InDelta(t, 0.0, acc.Index(), 1e-9)
	for _, v := range acc.PerAtom() {
		assert.InDelta(t, 0.0, v, 1e-9)
	}
}

func TestAccumulatorPositiveForFluctuatingTrajectory(t *testing.T) {
	var acc Accumulator
	xs := []float64{1.0, 1.1, 0.9, 1.05, 0.95}
	for _, x := range xs {
		fr := frame.Frame{Atoms: []frame.Atom{
			{ID: 1, X: 0, Y: 0, Z: 0},
			{ID: 2, X: x, Y: 0, Z: 0},
		}}
		require.NoError(t, acc.Observe(fr))
	}

	assert.Greater(t, acc.Index(), 0.0)
}

func TestAccumulatorRejectsChangedAtomSet(t *testing.T) {
	var acc Accumulator
	require.NoError(t, acc.Observe(frame.Frame{Atoms: []frame.Atom{{ID: 1}, {ID: 2}}}))

	err := acc.Observe(frame.Frame{Atoms: []frame.Atom{{ID: 1}, {ID: 2}, {ID: 3}}})
	assert.ErrorIs(t, err, ErrAtomCountChanged)
}
