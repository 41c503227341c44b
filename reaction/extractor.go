package reaction

import (
	"sort"
	"strconv"
	"strings"

	"github.com/reaxtrace/reaxtrace/internal/fingerprint"
	"github.com/reaxtrace/reaxtrace/moleculargraph"
)

// Extract derives a Reaction from two molecular graphs g1, g2 over the same
// atom set, using symbols to render fragment compositions and fingerprints.
// It returns (nil, nil) when g1 and g2 carry no net reaction (either
// fragment side would be empty). It returns moleculargraph.ErrIncompatibleGraphs
// if g1 and g2 do not share a vertex set.
func Extract(g1, g2 *moleculargraph.Graph, symbols map[int]string) (*Reaction, error) {
	if !moleculargraph.SameVertexSet(g1, g2) {
		return nil, moleculargraph.ErrIncompatibleGraphs
	}

	forming, breaking := moleculargraph.Diff(g1, g2)
	if len(forming) == 0 && len(breaking) == 0 {
		return nil, nil
	}

	reactantAtoms := make(map[string][]int)
	productAtoms := make(map[string][]int)

	addFragment := func(set map[string][]int, g *moleculargraph.Graph, atom int) {
		comp := g.ConnectedComponentContaining(atom)
		if comp == nil {
			return
		}
		set[fragmentKey(comp)] = comp
	}

	for _, p := range forming {
		addFragment(reactantAtoms, g1, p[0])
		addFragment(reactantAtoms, g1, p[1])
		addFragment(productAtoms, g2, p[0])
	}
	for _, p := range breaking {
		addFragment(productAtoms, g2, p[0])
		addFragment(productAtoms, g2, p[1])
		addFragment(reactantAtoms, g1, p[0])
	}

	if len(reactantAtoms) == 0 || len(productAtoms) == 0 {
		return nil, nil
	}

	reactants, reactantFormulas, reactantFps := buildFragments(g1, reactantAtoms, symbols)
	products, productFormulas, productFps := buildFragments(g2, productAtoms, symbols)

	return &Reaction{
		Reactants:             reactants,
		Products:              products,
		ReactantsComposition:  joinUnique(reactantFormulas),
		ProductsComposition:   joinUnique(productFormulas),
		ReactantsFingerprints: reactantFps,
		ProductsFingerprints:  productFps,
	}, nil
}

func buildFragments(g *moleculargraph.Graph, atoms map[string][]int, symbols map[int]string) ([][]int, []string, []string) {
	keys := make([]string, 0, len(atoms))
	for k := range atoms {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fragments := make([][]int, 0, len(keys))
	formulas := make([]string, 0, len(keys))
	fps := make([]string, 0, len(keys))
	for _, k := range keys {
		ids := atoms[k]
		sub := g.Subgraph(ids)

		syms := make([]string, len(ids))
		for i, id := range ids {
			syms[i] = symbols[id]
		}

		fragments = append(fragments, ids)
		formulas = append(formulas, hillFormula(syms))
		fps = append(fps, fingerprint.Of(sub, symbols))
	}
	return fragments, formulas, fps
}

func fragmentKey(atoms []int) string {
	parts := make([]string, len(atoms))
	for i, a := range atoms {
		parts[i] = strconv.Itoa(a)
	}
	return strings.Join(parts, ",")
}

func joinUnique(formulas []string) string {
	seen := make(map[string]struct{}, len(formulas))
	var uniq []string
	for _, f := range formulas {
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		uniq = append(uniq, f)
	}
	sort.Strings(uniq)
	return strings.Join(uniq, " + ")
}
