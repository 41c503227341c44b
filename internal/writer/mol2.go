package writer

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/reaxtrace/reaxtrace/frame"
	"github.com/reaxtrace/reaxtrace/moleculargraph"
)

// WriteFragmentMol2 writes the fragment spanning atoms (with positions taken
// from fr) and its bonds (from g) to a TRIPOS MOL2 file at path, creating
// leading directories if needed.
func WriteFragmentMol2(path string, atoms []int, fr frame.Frame, g *moleculargraph.Graph) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("writer: creating %q: %w", filepath.Dir(path), err)
	}

	byID := make(map[int]frame.Atom, len(fr.Atoms))
	for _, a := range fr.Atoms {
		byID[a.ID] = a
	}

	sub := g.Subgraph(atoms)
	bonds := sub.Edges()

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("writer: creating %q: %w", path, err)
	}
	defer f.Close()

	fmt.Fprintf(f, "@<TRIPOS>MOLECULE\n%s\n%d %d\nSMALL\nNO_CHARGES\n\n", filepath.Base(path), len(atoms), len(bonds))

	fmt.Fprintf(f, "@<TRIPOS>ATOM\n")
	index := make(map[int]int, len(atoms))
	for i, id := range atoms {
		index[id] = i + 1
		a := byID[id]
		fmt.Fprintf(f, "%6d %-4s %10.4f %10.4f %10.4f %-4s\n", i+1, a.Symbol, a.X, a.Y, a.Z, a.Symbol)
	}

	fmt.Fprintf(f, "@<TRIPOS>BOND\n")
	for i, p := range bonds {
		fmt.Fprintf(f, "%6d %6d %6d 1\n", i+1, index[p[0]], index[p[1]])
	}

	return nil
}

// WriteReactiveFrames writes the two frames surrounding a reaction
// (pre-transition and post-transition) to a single MOL2 file at path, one
// molecule per @<TRIPOS>MOLECULE block.
func WriteReactiveFrames(path string, fr1, fr2 frame.Frame, g1, g2 *moleculargraph.Graph) error {
	if err := WriteFragmentMol2(path, fr1.AtomIDs(), fr1, g1); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("writer: appending to %q: %w", path, err)
	}
	defer f.Close()

	byID := make(map[int]frame.Atom, len(fr2.Atoms))
	for _, a := range fr2.Atoms {
		byID[a.ID] = a
	}
	atoms := fr2.AtomIDs()
	bonds := g2.Edges()

	fmt.Fprintf(f, "@<TRIPOS>MOLECULE\n%s-next\n%d %d\nSMALL\nNO_CHARGES\n\n", filepath.Base(path), len(atoms), len(bonds))
	fmt.Fprintf(f, "@<TRIPOS>ATOM\n")
	index := make(map[int]int, len(atoms))
	for i, id := range atoms {
		index[id] = i + 1
		a := byID[id]
		fmt.Fprintf(f, "%6d %-4s %10.4f %10.4f %10.4f %-4s\n", i+1, a.Symbol, a.X, a.Y, a.Z, a.Symbol)
	}
	fmt.Fprintf(f, "@<TRIPOS>BOND\n")
	for i, p := range bonds {
		fmt.Fprintf(f, "%6d %6d %6d 1\n", i+1, index[p[0]], index[p[1]])
	}
	return nil
}
