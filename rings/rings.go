package rings

import (
	"sort"
	"strconv"
	"strings"

	"github.com/reaxtrace/reaxtrace/moleculargraph"
)

// FindRings returns every smallest ring up to maxSize atoms in g, each as a
// sorted slice of atom IDs. A ring is found once per atom it passes through
// but deduplicated in the result, so each distinct ring appears exactly once.
func FindRings(g *moleculargraph.Graph, maxSize int) [][]int {
	seen := make(map[string]struct{})
	var out [][]int

	for _, x := range g.Vertices() {
		neighbors := g.Neighbors(x)
		for _, pair := range combinations2(neighbors) {
			triplet := []int{pair[0], x, pair[1]}
			_, results := findRing(g, triplet, maxSize)
			for _, ring := range results {
				key := ringKey(ring)
				if _, ok := seen[key]; ok {
					continue
				}
				seen[key] = struct{}{}
				out = append(out, ring)
			}
		}
	}
	return out
}

// findRing grows members by one bond at a time from its last atom, closing
// the path into a ring the moment it reaches back to members[0]. It returns
// the smallest ring size found along this search and every ring of that
// size, mirroring the Rust predecessor's max/results accumulation exactly.
func findRing(g *moleculargraph.Graph, members []int, max int) (int, [][]int) {
	n := len(members)
	if n > max {
		return max, nil
	}

	var results [][]int
	last := members[n-1]
	for _, adj := range g.Neighbors(last) {
		if contains(members, adj) {
			if adj == members[0] {
				if !shortcuts(g, members) {
					ring := append([]int(nil), members...)
					sort.Ints(ring)
					return len(members), [][]int{ring}
				}
				// else: shortcut ring, discard.
				continue
			}
			// adj closes back onto an interior atom: not a simple ring.
			continue
		}

		ms := append(append([]int(nil), members...), adj)
		newmax, newres := findRing(g, ms, max)
		if newmax < max {
			max = newmax
			results = newres
		} else if newmax == max {
			results = append(results, newres...)
		}
	}
	return max, results
}

// shortcuts reports whether members contains a chord shorter than the
// ring's own path between the two endpoints, meaning this closed path is
// not the smallest ring through it.
func shortcuts(g *moleculargraph.Graph, members []int) bool {
	n := len(members)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := min(j-i, n-(j-i))
			if d > shortestPathLen(g, members[i], members[j]) {
				return true
			}
		}
	}
	return false
}

// shortestPathLen returns the number of bonds on the shortest path between
// i and j in g, or 0 if they are disconnected.
func shortestPathLen(g *moleculargraph.Graph, i, j int) int {
	if i == j {
		return 0
	}
	visited := map[int]int{i: 0}
	queue := []int{i}
	for k := 0; k < len(queue); k++ {
		cur := queue[k]
		dist := visited[cur]
		for _, n := range g.Neighbors(cur) {
			if _, ok := visited[n]; ok {
				continue
			}
			if n == j {
				return dist + 1
			}
			visited[n] = dist + 1
			queue = append(queue, n)
		}
	}
	return 0
}

func contains(s []int, v int) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func combinations2(xs []int) [][2]int {
	var out [][2]int
	for i := 0; i < len(xs); i++ {
		for j := i + 1; j < len(xs); j++ {
			out = append(out, [2]int{xs[i], xs[j]})
		}
	}
	return out
}

func ringKey(ring []int) string {
	parts := make([]string, len(ring))
	for i, id := range ring {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ",")
}
