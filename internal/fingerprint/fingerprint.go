package fingerprint

import (
	"encoding/binary"
	"fmt"
	"sort"

	"github.com/cespare/xxhash/v2"

	"github.com/reaxtrace/reaxtrace/moleculargraph"
)

// Of returns a deterministic, isomorphism-invariant fingerprint for the
// fragment g, whose atoms carry the given element symbols. Two fragments
// that are isomorphic (same connectivity up to atom relabeling, same symbol
// at each position) always produce the same fingerprint.
//
// The label refinement is a bounded Weisfeiler-Lehman pass: each atom starts
// labelled by its own symbol, then for a few rounds folds in the sorted
// labels of its neighbors. The final multiset of labels is sorted and hashed
// with xxhash, so the result does not depend on atom ID numbering.
func Of(g *moleculargraph.Graph, symbols map[int]string) string {
	atoms := g.Vertices()
	if len(atoms) == 0 {
		return hashString("")
	}

	labels := make(map[int]uint64, len(atoms))
	for _, id := range atoms {
		labels[id] = xxhash.Sum64String(symbols[id])
	}

	rounds := len(atoms)
	if rounds > 4 {
		rounds = 4
	}
	for r := 0; r < rounds; r++ {
		next := make(map[int]uint64, len(atoms))
		for _, id := range atoms {
			nbrLabels := make([]uint64, 0, g.Degree(id))
			for _, n := range g.Neighbors(id) {
				nbrLabels = append(nbrLabels, labels[n])
			}
			sort.Slice(nbrLabels, func(i, j int) bool { return nbrLabels[i] < nbrLabels[j] })

			buf := make([]byte, 8*(1+len(nbrLabels)))
			binary.LittleEndian.PutUint64(buf, labels[id])
			for i, nl := range nbrLabels {
				binary.LittleEndian.PutUint64(buf[8*(i+1):], nl)
			}
			next[id] = xxhash.Sum64(buf)
		}
		labels = next
	}

	finalLabels := make([]uint64, 0, len(atoms))
	for _, id := range atoms {
		finalLabels = append(finalLabels, labels[id])
	}
	sort.Slice(finalLabels, func(i, j int) bool { return finalLabels[i] < finalLabels[j] })

	buf := make([]byte, 8*len(finalLabels))
	for i, l := range finalLabels {
		binary.LittleEndian.PutUint64(buf[8*i:], l)
	}
	return hashString(string(buf))
}

func hashString(s string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(s))
}
