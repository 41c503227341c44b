package scheduler

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reaxtrace/reaxtrace/frame"
	"github.com/reaxtrace/reaxtrace/reaction"
)

type fakeSource struct {
	frames []frame.Frame
	i      int
}

func (f *fakeSource) Next() (frame.Frame, bool, error) {
	if f.i >= len(f.frames) {
		return frame.Frame{}, false, nil
	}
	fr := f.frames[f.i]
	f.i++
	return fr, true, nil
}

func (f *fakeSource) Close() error { return nil }

type fakeSink struct {
	reactions []*reaction.Reaction
}

func (f *fakeSink) Write(r *reaction.Reaction) error {
	f.reactions = append(f.reactions, r)
	return nil
}

func (f *fakeSink) Close() error { return nil }

// buildTrajectory makes an n-frame two-atom trajectory where the bond
// breaks at frame breakAt and stays broken.
func buildTrajectory(n int, breakAt int) []frame.Frame {
	frames := make([]frame.Frame, n)
	for i := 0; i < n; i++ {
		dist := 1.0
		if i >= breakAt {
			dist = 5.0
		}
		frames[i] = frame.Frame{
			Index: i,
			Atoms: []frame.Atom{
				{ID: 1, Symbol: "C", X: 0, Y: 0, Z: 0},
				{ID: 2, Symbol: "C", X: dist, Y: 0, Z: 0},
			},
		}
	}
	return frames
}

func TestNewRejectsInvalidParameters(t *testing.T) {
	_, err := New(Config{ChunkSize: 3, NoiseEventLife: 2})
	assert.ErrorIs(t, err, ErrInvalidParameters)
}

func TestRunDetectsBondBreaking(t *testing.T) {
	frames := buildTrajectory(20, 10)
	s, err := New(Config{ChunkSize: 20, NoiseEventLife: 2})
	require.NoError(t, err)

	src := &fakeSource{frames: frames}
	sink := &fakeSink{}

	err = s.Run(context.Background(), src, sink)
	require.NoError(t, err)
	require.Len(t, sink.reactions, 1)
	assert.Equal(t, 10, sink.reactions[0].LocalFrame)
}
