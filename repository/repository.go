// Package repository implements Repository[I], whose vertices are
// *recterm.Group[I] (spec.md §3, §4.4): the
// owning collection of recursion graphs produced across an integral family,
// plus the global signature cache an emitter consults to find every
// distinct recursion pattern exactly once.
package repository

import (
	"sort"

	"github.com/go-quantum/recur/recgraph"
	"github.com/go-quantum/recur/recterm"
)

// Repository owns a family's recursion graphs and the global
// Signature → vertex map built by folding every owned graph's own
// signature map in, first-wins (spec.md §9's intentional, non-bug
// base_map semantics: once a signature is mapped, later graphs contributing
// an equal signature do not overwrite it).
type Repository[I recterm.Integral[I]] struct {
	Graphs     []*recgraph.GroupGraph[I]
	signatures map[string]*recterm.Group[I]
}

// New builds an empty repository.
func New[I recterm.Integral[I]]() *Repository[I] {
	return &Repository[I]{signatures: make(map[string]*recterm.Group[I])}
}

// Add inserts each graph and folds its per-vertex signatures into the
// global map, first-wins: a signature already present keeps its original
// vertex even if a later graph produces an equal signature for a different
// vertex value.
func (r *Repository[I]) Add(graphs ...*recgraph.GroupGraph[I]) {
	for _, g := range graphs {
		r.Graphs = append(r.Graphs, g)
		for _, v := range g.Vertices {
			key := recterm.NewSignature(v).Key()
			if _, exists := r.signatures[key]; !exists {
				r.signatures[key] = v
			}
		}
	}
}

// Base returns the distinct Group.Base projections of every vertex across
// the owned graphs, in ascending order. Each vertex contributes only its
// first expansion's prefix-stripped root; its other roots are not included.
func (r *Repository[I]) Base() []I {
	var out []I
	for _, g := range r.Graphs {
		for _, v := range g.Vertices {
			if b, ok := v.Base(); ok {
				out = appendUniqueBase(out, b)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// BaseMap groups every registered signature by its base integral, returning
// the set of unique recursion patterns seen for that base (spec.md §4.4,
// "grouping unique signatures per base integral").
func (r *Repository[I]) BaseMap() map[string][]recterm.Signature[I] {
	out := make(map[string][]recterm.Signature[I])
	for _, v := range r.signatures {
		b, ok := v.Base()
		if !ok {
			continue
		}
		out[b.Key()] = append(out[b.Key()], recterm.NewSignature(v))
	}
	return out
}

// RecGroups returns the total number of vertices across every owned graph
// (spec.md §8 S6's `repo.rec_groups() == sum of graph.vertices()`).
func (r *Repository[I]) RecGroups() int {
	n := 0
	for _, g := range r.Graphs {
		n += len(g.Vertices)
	}
	return n
}

// Summary reports the repository's coarse shape: distinct base integrals,
// distinct signatures registered, and total recursion groups owned.
type Summary struct {
	Bases      int
	Signatures int
	RecGroups  int
}

// Summary computes the repository's Summary.
func (r *Repository[I]) Summary() Summary {
	return Summary{
		Bases:      len(r.Base()),
		Signatures: len(r.signatures),
		RecGroups:  r.RecGroups(),
	}
}

func appendUniqueBase[I recterm.Integral[I]](list []I, v I) []I {
	for _, x := range list {
		if x.Equal(v) {
			return list
		}
	}
	return append(list, v)
}
