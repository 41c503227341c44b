package writer

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"github.com/reaxtrace/reaxtrace/reaction"
)

var csvHeader = []string{
	"run_id", "local_frame", "global_frame",
	"reactants", "products",
	"reactants_composition", "products_composition",
	"reactants_fingerprints", "products_fingerprints",
}

// CSVWriter writes reaction.Reaction rows to a CSV file, one row per
// detected reaction, in the order Write is called. It implements
// scheduler.ReactionSink.
type CSVWriter struct {
	runID uuid.UUID
	lock  *flock.Flock
	file  *os.File
	w     *csv.Writer
}

// NewCSVWriter opens path for writing (truncating any existing file),
// acquires an advisory lock on a sibling ".lock" file so a second run
// against the same output path fails fast instead of interleaving rows, and
// writes the header row.
func NewCSVWriter(path string) (*CSVWriter, error) {
	lock := flock.New(path + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("writer: acquiring lock for %q: %w", path, err)
	}
	if !locked {
		return nil, fmt.Errorf("writer: output path %q is locked by another run", path)
	}

	f, err := os.Create(path)
	if err != nil {
		_ = lock.Unlock()
		return nil, fmt.Errorf("writer: creating %q: %w", path, err)
	}

	cw := &CSVWriter{runID: uuid.New(), lock: lock, file: f, w: csv.NewWriter(f)}
	if err := cw.w.Write(csvHeader); err != nil {
		_ = cw.Close()
		return nil, fmt.Errorf("writer: writing header: %w", err)
	}
	return cw, nil
}

// RunID identifies this writer's run, stamped into every row.
func (w *CSVWriter) RunID() uuid.UUID { return w.runID }

// Write appends one reaction row.
func (w *CSVWriter) Write(r *reaction.Reaction) error {
	row := []string{
		w.runID.String(),
		strconv.Itoa(r.LocalFrame),
		r.GlobalFrame,
		renderFragments(r.Reactants),
		renderFragments(r.Products),
		r.ReactantsComposition,
		r.ProductsComposition,
		strings.Join(r.ReactantsFingerprints, ";"),
		strings.Join(r.ProductsFingerprints, ";"),
	}
	if err := w.w.Write(row); err != nil {
		return fmt.Errorf("writer: writing row: %w", err)
	}
	return nil
}

// Close flushes pending rows, closes the file, and releases the lock.
func (w *CSVWriter) Close() error {
	w.w.Flush()
	flushErr := w.w.Error()
	closeErr := w.file.Close()
	unlockErr := w.lock.Unlock()
	_ = os.Remove(w.lock.Path())

	for _, err := range []error{flushErr, closeErr, unlockErr} {
		if err != nil {
			return err
		}
	}
	return nil
}

func renderFragments(frags [][]int) string {
	parts := make([]string, len(frags))
	for i, f := range frags {
		ids := make([]string, len(f))
		for j, id := range f {
			ids[j] = strconv.Itoa(id)
		}
		parts[i] = "[" + strings.Join(ids, ",") + "]"
	}
	return "[" + strings.Join(parts, ",") + "]"
}
