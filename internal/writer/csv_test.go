package writer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reaxtrace/reaxtrace/reaction"
)

func TestCSVWriterWritesRows(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "reaction.csv")

	w, err := NewCSVWriter(path)
	require.NoError(t, err)

	err = w.Write(&reaction.Reaction{
		LocalFrame:            3,
		GlobalFrame:           "103",
		Reactants:             [][]int{{1, 2}},
		Products:              [][]int{{1}, {2}},
		ReactantsComposition:  "H2",
		ProductsComposition:   "H",
		ReactantsFingerprints: []string{"abc"},
		ProductsFingerprints:  []string{"def", "ghi"},
	})
	require.NoError(t, err)
	require.NoError(t, w.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "H2")
	assert.Contains(t, string(data), "103")

	_, err = os.Stat(path + ".lock")
	assert.True(t, os.IsNotExist(err))
}

func TestCSVWriterRejectsConcurrentOpen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "reaction.csv")

	w1, err := NewCSVWriter(path)
	require.NoError(t, err)
	defer w1.Close()

	_, err = NewCSVWriter(path)
	assert.Error(t, err)
}
