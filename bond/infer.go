package bond

import (
	"math"

	"github.com/reaxtrace/reaxtrace/frame"
	"github.com/reaxtrace/reaxtrace/moleculargraph"
)

// DefaultRatio is the multiplier applied to the sum of two covalent radii to
// obtain the bonding distance cutoff.
const DefaultRatio = 1.15

// Option configures Infer.
type Option func(*options)

type options struct {
	ratio float64
	radii map[string]float64
}

// WithRatio overrides the covalent-radius-sum multiplier used as the bonding
// distance cutoff. The zero value is rejected in favour of DefaultRatio.
func WithRatio(ratio float64) Option {
	return func(o *options) {
		if ratio > 0 {
			o.ratio = ratio
		}
	}
}

// WithRadii overrides or extends the covalent radius table, keyed by element
// symbol (or LAMMPS pseudo-symbol "X<type>").
func WithRadii(radii map[string]float64) Option {
	return func(o *options) {
		o.radii = radii
	}
}

// Infer is a pure function mapping a Frame to a moleculargraph.Graph: an
// edge {u,v} exists iff distance(u,v) <= ratio*(radius(u)+radius(v)). When fr
// carries a Lattice, distance is the minimum-image distance; otherwise plain
// Euclidean. Infer holds no shared mutable state and is safe to call
// concurrently for distinct frames.
func Infer(fr frame.Frame, opts ...Option) *moleculargraph.Graph {
	o := options{ratio: DefaultRatio}
	for _, apply := range opts {
		apply(&o)
	}

	g := moleculargraph.New()
	for _, a := range fr.Atoms {
		g.AddVertex(a.ID)
	}

	radiusOf := func(symbol string) float64 {
		if o.radii != nil {
			if r, ok := o.radii[symbol]; ok {
				return r
			}
		}
		return CovalentRadius(symbol)
	}

	n := len(fr.Atoms)
	for i := 0; i < n; i++ {
		ai := fr.Atoms[i]
		ri := radiusOf(ai.Symbol)
		for j := i + 1; j < n; j++ {
			aj := fr.Atoms[j]
			rj := radiusOf(aj.Symbol)
			cutoff := o.ratio * (ri + rj)
			d := distance(ai, aj, fr.Lattice)
			if d <= cutoff {
				g.AddEdge(ai.ID, aj.ID)
			}
		}
	}
	return g
}

func distance(a, b frame.Atom, lat *frame.Lattice) float64 {
	if lat == nil {
		return euclidean(a, b)
	}
	return minimumImageDistance(a, b, lat)
}

func euclidean(a, b frame.Atom) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	dz := a.Z - b.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// minimumImageDistance searches the 27 neighbouring periodic images of b
// (including the central one) and returns the shortest distance to a.
func minimumImageDistance(a, b frame.Atom, lat *frame.Lattice) float64 {
	best := math.MaxFloat64
	for ix := -1; ix <= 1; ix++ {
		for iy := -1; iy <= 1; iy++ {
			for iz := -1; iz <= 1; iz++ {
				bx := b.X + float64(ix)*lat.Vectors[0][0] + float64(iy)*lat.Vectors[1][0] + float64(iz)*lat.Vectors[2][0]
				by := b.Y + float64(ix)*lat.Vectors[0][1] + float64(iy)*lat.Vectors[1][1] + float64(iz)*lat.Vectors[2][1]
				bz := b.Z + float64(ix)*lat.Vectors[0][2] + float64(iy)*lat.Vectors[1][2] + float64(iz)*lat.Vectors[2][2]
				dx := a.X - bx
				dy := a.Y - by
				dz := a.Z - bz
				d := math.Sqrt(dx*dx + dy*dy + dz*dz)
				if d < best {
					best = d
				}
			}
		}
	}
	return best
}
