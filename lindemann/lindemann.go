package lindemann

import (
	"errors"
	"math"
	"sort"

	"github.com/reaxtrace/reaxtrace/frame"
)

// ErrAtomCountChanged indicates a later frame does not carry the same atom
// set the Accumulator was first observed with.
var ErrAtomCountChanged = errors.New("lindemann: atom count changed across frames")

// onlineStats accumulates mean and variance of a stream of float64 values
// via Welford's algorithm, so the full sample history never needs storing.
type onlineStats struct {
	count int
	mean  float64
	m2    float64
}

func (s *onlineStats) add(x float64) {
	s.count++
	delta := x - s.mean
	s.mean += delta / float64(s.count)
	delta2 := x - s.mean
	s.m2 += delta * delta2
}

func (s *onlineStats) stddev() float64 {
	if s.count < 2 {
		return 0
	}
	return math.Sqrt(s.m2 / float64(s.count-1))
}

// Accumulator tracks per-pair distance statistics across an MD trajectory
// and reports the resulting Lindemann indices without ever holding more
// than one frame's coordinates in memory.
type Accumulator struct {
	atomIDs   []int
	pairStats []onlineStats // indexed in combinations(2) order over atomIDs
}

// Observe folds one frame's pairwise distances into the running statistics.
// The first call fixes the atom set every later call must match exactly.
func (a *Accumulator) Observe(fr frame.Frame) error {
	ids := fr.AtomIDs()
	sort.Ints(ids)

	if a.atomIDs == nil {
		a.atomIDs = ids
		npairs := len(ids) * (len(ids) - 1) / 2
		a.pairStats = make([]onlineStats, npairs)
	} else if !sameIDs(a.atomIDs, ids) {
		return ErrAtomCountChanged
	}

	coords := make(map[int][3]float64, len(fr.Atoms))
	for _, at := range fr.Atoms {
		coords[at.ID] = [3]float64{at.X, at.Y, at.Z}
	}

	k := 0
	for i := 0; i < len(a.atomIDs); i++ {
		ci := coords[a.atomIDs[i]]
		for j := i + 1; j < len(a.atomIDs); j++ {
			cj := coords[a.atomIDs[j]]
			dx, dy, dz := ci[0]-cj[0], ci[1]-cj[1], ci[2]-cj[2]
			d := math.Sqrt(dx*dx + dy*dy + dz*dz)
			a.pairStats[k].add(d)
			k++
		}
	}
	return nil
}

// PerAtom returns the Lindemann index of every observed atom, keyed by atom
// ID: the mean coefficient of variation of its distance to every other atom.
func (a *Accumulator) PerAtom() map[int]float64 {
	n := len(a.atomIDs)
	if n == 0 {
		return nil
	}

	cv := make([]float64, len(a.pairStats))
	for i, s := range a.pairStats {
		cv[i] = s.stddev() / s.mean
	}

	out := make(map[int]float64, n)
	for i, id := range a.atomIDs {
		var sum float64
		var count int
		k := 0
		for x := 0; x < n; x++ {
			for y := x + 1; y < n; y++ {
				if x == i || y == i {
					sum += cv[k]
					count++
				}
				k++
			}
		}
		if count > 0 {
			out[id] = sum / float64(count)
		}
	}
	return out
}

// Index returns the whole-system Lindemann index: the mean of every atom's
// per-atom index.
func (a *Accumulator) Index() float64 {
	perAtom := a.PerAtom()
	if len(perAtom) == 0 {
		return 0
	}
	var sum float64
	for _, v := range perAtom {
		sum += v
	}
	return sum / float64(len(perAtom))
}

func sameIDs(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
