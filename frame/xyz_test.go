package frame

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestXYZReaderReadsFrames(t *testing.T) {
	data := `2
frame 0
C 0.0 0.0 0.0
H 1.0 0.0 0.0
2
frame 1
C 0.0 0.0 0.0
H 1.1 0.0 0.0
`
	r, err := NewXYZReader(strings.NewReader(data), io.NopCloser(nil), 1)
	require.NoError(t, err)

	fr0, ok, err := r.Next()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 0, fr0.Index)
	require.Len(t, fr0.Atoms, 2)
	assert.Equal(t, "C", fr0.Atoms[0].Symbol)
	assert.Equal(t, 1.0, fr0.Atoms[1].X)

	fr1, ok, err := r.Next()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 1, fr1.Index)

	_, ok, err = r.Next()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestXYZReaderStepBy(t *testing.T) {
	data := `1
f0
C 0 0 0
1
f1
C 0 0 0
1
f2
C 0 0 0
1
f3
C 0 0 0
`
	r, err := NewXYZReader(strings.NewReader(data), io.NopCloser(nil), 2)
	require.NoError(t, err)

	var indices []int
	for {
		fr, ok, err := r.Next()
		require.NoError(t, err)
		if !ok {
			break
		}
		indices = append(indices, fr.Index)
	}
	assert.Equal(t, []int{0, 2}, indices)
}

func TestXYZReaderRejectsInconsistentAtomCount(t *testing.T) {
	data := `1
f0
C 0 0 0
2
f1
C 0 0 0
H 1 0 0
`
	r, err := NewXYZReader(strings.NewReader(data), io.NopCloser(nil), 1)
	require.NoError(t, err)

	_, ok, err := r.Next()
	require.NoError(t, err)
	require.True(t, ok)

	_, _, err = r.Next()
	assert.ErrorIs(t, err, ErrInconsistentTrajectory)
}

func TestXYZReaderDropsTruncatedTrailingFrame(t *testing.T) {
	data := `2
f0
C 0 0 0
H 1 0 0
2
f1
C 0 0 0
`
	r, err := NewXYZReader(strings.NewReader(data), io.NopCloser(nil), 1)
	require.NoError(t, err)

	_, ok, err := r.Next()
	require.NoError(t, err)
	require.True(t, ok)

	_, ok, err = r.Next()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestParseExtxyzLattice(t *testing.T) {
	title := `Lattice="1.0 0.0 0.0 0.0 2.0 0.0 0.0 0.0 3.0" Properties=species:S:1:pos:R:3`
	lat, ok := parseExtxyzLattice(title)
	require.True(t, ok)
	assert.Equal(t, 1.0, lat.Vectors[0][0])
	assert.Equal(t, 2.0, lat.Vectors[1][1])
	assert.Equal(t, 3.0, lat.Vectors[2][2])
}
