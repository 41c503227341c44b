package timeline

import (
	"sort"
	"strings"

	"github.com/reaxtrace/reaxtrace/moleculargraph"
	"github.com/reaxtrace/reaxtrace/noise"
)

// BondingStates records, for every atom pair observed at least once, its
// bonded/unbonded state at each local frame index of the current chunk.
type BondingStates struct {
	nframes int
	inner   map[moleculargraph.Pair]map[int]bool
}

// New returns an empty BondingStates.
func New() *BondingStates {
	return &BondingStates{inner: make(map[moleculargraph.Pair]map[int]bool)}
}

// FromGraphs builds a BondingStates from a chunk's sequence of per-frame
// graphs, recording every edge of every graph as bonded=true at its frame index.
func FromGraphs(graphs []*moleculargraph.Graph) *BondingStates {
	s := New()
	for i, g := range graphs {
		for _, p := range g.Edges() {
			s.SetFrame(i, p, true)
		}
	}
	return s
}

// SetFrame records the bonding state of pair at local frame i.
func (s *BondingStates) SetFrame(i int, pair moleculargraph.Pair, state bool) {
	entry, ok := s.inner[pair]
	if !ok {
		entry = make(map[int]bool)
		s.inner[pair] = entry
	}
	entry[i] = state
	if i+1 > s.nframes {
		s.nframes = i + 1
	}
}

// GetFrame returns the bonding state of pair at local frame i, or false if
// the pair or frame is unknown.
func (s *BondingStates) GetFrame(i int, pair moleculargraph.Pair) bool {
	entry, ok := s.inner[pair]
	if !ok {
		return false
	}
	return entry[i]
}

// NumFrames returns the number of local frames recorded.
func (s *BondingStates) NumFrames() int {
	return s.nframes
}

// Len returns the number of distinct bonding pairs tracked.
func (s *BondingStates) Len() int {
	return len(s.inner)
}

// BondingPairs returns every pair ever set, in a stable ascending order.
func (s *BondingStates) BondingPairs() []moleculargraph.Pair {
	out := make([]moleculargraph.Pair, 0, len(s.inner))
	for p := range s.inner {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i][0] != out[j][0] {
			return out[i][0] < out[j][0]
		}
		return out[i][1] < out[j][1]
	})
	return out
}

// statesCode returns the per-frame bonded/unbonded sequence for pair.
func (s *BondingStates) statesCode(pair moleculargraph.Pair) []bool {
	out := make([]bool, s.nframes)
	for i := range out {
		out[i] = s.GetFrame(i, pair)
	}
	return out
}

// EventsCode renders the length-(nframes-1) event string for pair: 'F' where
// the bond forms between consecutive frames, 'B' where it breaks, '-' otherwise.
func (s *BondingStates) EventsCode(pair moleculargraph.Pair) string {
	return noise.EventsCode(s.statesCode(pair))
}

// RemoveInactivePairs drops every pair whose timeline is entirely bonded or
// entirely unbonded, since those carry no reaction signal. Returns the count removed.
func (s *BondingStates) RemoveInactivePairs() int {
	removed := 0
	for _, pair := range s.BondingPairs() {
		states := s.statesCode(pair)
		allSame := true
		for _, st := range states[1:] {
			if st != states[0] {
				allSame = false
				break
			}
		}
		if allSame {
			delete(s.inner, pair)
			removed++
		}
	}
	return removed
}

// RemoveNoiseEvents runs noise.Remove over pair's timeline with life L,
// flips the states noise.Remove selects, and returns the flipped frame indices.
func (s *BondingStates) RemoveNoiseEvents(pair moleculargraph.Pair, life int) []int {
	states := s.statesCode(pair)
	flipped := noise.Remove(states, life)
	for _, i := range flipped {
		s.SetFrame(i, pair, !s.GetFrame(i, pair))
	}
	return flipped
}

// FindReactiveBonds returns every pair whose events code, restricted to the
// interior transitions [life, nframes-life-1), contains at least one F or B
// event. The transition at i is between frames i and i+1, so the last
// transition kept inside the interior is (nframes-life-2, nframes-life-1).
func (s *BondingStates) FindReactiveBonds(life int) []moleculargraph.Pair {
	istart, iend := life, s.nframes-life-1
	if istart >= iend {
		return nil
	}

	var out []moleculargraph.Pair
	for _, pair := range s.BondingPairs() {
		code := s.EventsCode(pair)
		interior := code[istart:iend]
		if strings.ContainsAny(interior, "FB") {
			out = append(out, pair)
		}
	}
	return out
}

// ReactivePositions returns, for pair, the local frame indices i such that
// the transition i -> i+1 is a reactive (F or B) event and both i and i+1
// lie inside [life, nframes-life).
func (s *BondingStates) ReactivePositions(pair moleculargraph.Pair, life int) []int {
	code := s.EventsCode(pair)
	istart, iend := life, s.nframes-life-1
	if istart >= iend {
		return nil
	}
	var out []int
	for i := istart; i < iend; i++ {
		if code[i] == 'F' || code[i] == 'B' {
			out = append(out, i)
		}
	}
	return out
}
