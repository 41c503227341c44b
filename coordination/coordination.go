package coordination

import "github.com/reaxtrace/reaxtrace/moleculargraph"

// Histogram returns, for each coordination number observed in g, how many
// atoms carry it.
func Histogram(g *moleculargraph.Graph) map[int]int {
	hist := make(map[int]int)
	for _, id := range g.Vertices() {
		hist[g.Degree(id)]++
	}
	return hist
}

// Mean returns the average coordination number across every atom in g, or
// 0 for an empty graph.
func Mean(g *moleculargraph.Graph) float64 {
	verts := g.Vertices()
	if len(verts) == 0 {
		return 0
	}
	var sum int
	for _, id := range verts {
		sum += g.Degree(id)
	}
	return float64(sum) / float64(len(verts))
}

// Of returns the coordination number of a single atom, identical to
// g.Degree(atomID); provided so callers working in this package's terms
// never need to reach back into moleculargraph directly.
func Of(g *moleculargraph.Graph, atomID int) int {
	return g.Degree(atomID)
}
