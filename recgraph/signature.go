package recgraph

import (
	"sort"

	"github.com/go-quantum/recur/factor"
	"github.com/go-quantum/recur/recterm"
)

// GroupGraph is the recursion-graph shape spec.md §3/§4.4 actually builds:
// vertices are RecursionGroups over one integral family.
type GroupGraph[I recterm.Integral[I]] = Graph[*recterm.Group[I]]

// Base is the recgraph.Sort projection for a group graph: each vertex's
// representative base integral, per spec.md §4.4's base<U>() hook.
func Base[I recterm.Integral[I]](g *recterm.Group[I]) (I, bool) {
	return g.Base()
}

// Signatures returns every vertex's Signature, in graph order.
func Signatures[I recterm.Integral[I]](g *GroupGraph[I]) []recterm.Signature[I] {
	out := make([]recterm.Signature[I], len(g.Vertices))
	for i, v := range g.Vertices {
		out[i] = recterm.NewSignature(v)
	}
	return out
}

// GlobalSignature flattens every vertex's signature into one combined
// Signature over the whole graph: the union of every vertex's outputs,
// inputs and factors.
func GlobalSignature[I recterm.Integral[I]](g *GroupGraph[I]) recterm.Signature[I] {
	combined := recterm.NewGroup[I]()
	for _, v := range g.Vertices {
		for _, e := range v.Expansions {
			combined.Insert(e)
		}
	}
	return recterm.NewSignature(combined)
}

// Factors returns every distinct factor appearing anywhere in the graph, in
// ascending order.
func Factors[I recterm.Integral[I]](g *GroupGraph[I]) []factor.Factor {
	seen := make(map[factor.Factor]bool)
	for _, v := range g.Vertices {
		for _, f := range v.UniqueFactors() {
			seen[f] = true
		}
	}
	out := make([]factor.Factor, 0, len(seen))
	for f := range seen {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// MapOfFactors groups the graph's distinct factors by Name, the form an
// emitter uses to declare one symbol per named factor family regardless of
// how many shaped variants (one per axis) occur.
func MapOfFactors[I recterm.Integral[I]](g *GroupGraph[I]) map[factor.Name][]factor.Factor {
	out := make(map[factor.Name][]factor.Factor)
	for _, f := range Factors(g) {
		out[f.Name] = append(out[f.Name], f)
	}
	return out
}
