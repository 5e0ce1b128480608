// Package recgraph implements Graph[V] (spec.md §3, §4.4): a vector of
// vertices plus per-vertex forward/backward adjacency, deduplicating
// structurally equal vertices by value and supporting the merge/sort/reduce
// operations a recursion closure needs to assemble a dependency DAG.
//
// This is the one layer generalized away from the teacher's own graph
// package idiom: gonum/graph/simple's UndirectedGraph is ID-based and
// un-parameterized (pre-generics Gonum), built for algorithms over
// externally identified nodes. Graph[V] is instead a value-owning,
// index-addressed vertex store with structural (not ID-based)
// deduplication, since spec.md §4.4's merge/reduce/sort operations are
// defined directly in terms of vertex values and their renumbered indices.
// We keep the teacher's naming and documentation register (doc comments,
// "pkg: message" panic strings) and its small-file-per-concern layout.
package recgraph

import "fmt"

// Vertex is the trait set a Graph's vertex type must satisfy (spec.md §9's
// CanMerge/IsSimilar trait pair): structural equality for deduplication,
// a coarser "similar" relation for Reduce, and an in-place Merge that folds
// another vertex's data into the receiver.
type Vertex[V any] interface {
	Equal(V) bool
	Similar(V) bool
	Merge(V)
}

// Graph is a vector of vertices plus a per-vertex adjacency list of forward
// or backward indices (spec.md §3). The zero value is an empty graph ready
// to use.
type Graph[V Vertex[V]] struct {
	Vertices []V
	Edges    [][]int
}

// New builds an empty graph.
func New[V Vertex[V]]() *Graph[V] {
	return &Graph[V]{}
}

// indexOf returns the index of the first vertex equal to v, or -1.
func (g *Graph[V]) indexOf(v V) int {
	for i, w := range g.Vertices {
		if w.Equal(v) {
			return i
		}
	}
	return -1
}

// Add inserts v if no structurally equal vertex already exists, otherwise
// resolves to the existing one. When hasRoot is true, an edge root→idx is
// added to the root's adjacency only (no reverse entry is recorded, and no
// self-edge is added when idx == root). Returns the vertex's index and
// whether it was newly inserted.
func (g *Graph[V]) Add(v V, root int, hasRoot bool) (idx int, isNew bool) {
	if i := g.indexOf(v); i >= 0 {
		idx = i
	} else {
		g.Vertices = append(g.Vertices, v)
		g.Edges = append(g.Edges, nil)
		idx = len(g.Vertices) - 1
		isNew = true
	}
	if hasRoot {
		if root < 0 || root >= len(g.Vertices) {
			panic(fmt.Sprintf("recgraph: root index %d out of range", root))
		}
		if !containsInt(g.Edges[root], idx) && root != idx {
			g.Edges[root] = append(g.Edges[root], idx)
		}
	}
	return idx, isNew
}

// Replace substitutes the vertex at index i with v, leaving its adjacency
// unchanged. Panics if i is out of range.
func (g *Graph[V]) Replace(v V, i int) {
	if i < 0 || i >= len(g.Vertices) {
		panic(fmt.Sprintf("recgraph: replace index %d out of range", i))
	}
	g.Vertices[i] = v
}

// Merge coalesces vertex j into vertex i (spec.md §4.4): folds j's data into
// i via Merge, removes j, unions j's outgoing edges into i's (minus any
// resulting self-edge), and renumbers every edge reference to j as i and
// every reference greater than j down by one. Requires i < j; panics
// otherwise or if either index is out of range.
func (g *Graph[V]) Merge(i, j int) {
	n := len(g.Vertices)
	if i < 0 || j < 0 || i >= n || j >= n {
		panic(fmt.Sprintf("recgraph: merge indices (%d,%d) out of range", i, j))
	}
	if i >= j {
		panic(fmt.Sprintf("recgraph: merge requires i < j, got (%d,%d)", i, j))
	}
	g.Vertices[i].Merge(g.Vertices[j])

	merged := make([]int, 0, len(g.Edges[i])+len(g.Edges[j]))
	merged = append(merged, g.Edges[i]...)
	merged = append(merged, g.Edges[j]...)
	merged = dedupNoSelf(renumberEdges(merged, i, j), i)

	newEdges := make([][]int, 0, n-1)
	for k := 0; k < n; k++ {
		switch k {
		case j:
			continue
		case i:
			newEdges = append(newEdges, merged)
		default:
			newEdges = append(newEdges, renumberEdges(g.Edges[k], i, j))
		}
	}
	g.Vertices = append(g.Vertices[:j], g.Vertices[j+1:]...)
	g.Edges = newEdges
}

// renumberEdges rewrites every reference to j as i and every reference
// greater than j down by one, per spec.md §4.4 step 3.
func renumberEdges(edges []int, i, j int) []int {
	out := make([]int, len(edges))
	for k, e := range edges {
		switch {
		case e == j:
			out[k] = i
		case e > j:
			out[k] = e - 1
		default:
			out[k] = e
		}
	}
	return out
}

func dedupNoSelf(edges []int, self int) []int {
	seen := make(map[int]bool, len(edges))
	out := edges[:0]
	for _, e := range edges {
		if e == self || seen[e] {
			continue
		}
		seen[e] = true
		out = append(out, e)
	}
	return out
}

func containsInt(s []int, v int) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}

// Invert returns the reverse-direction graph: same vertices, edges pointing
// the other way.
func (g *Graph[V]) Invert() *Graph[V] {
	out := &Graph[V]{
		Vertices: append([]V(nil), g.Vertices...),
		Edges:    make([][]int, len(g.Vertices)),
	}
	for from, tos := range g.Edges {
		for _, to := range tos {
			out.Edges[to] = append(out.Edges[to], from)
		}
	}
	return out
}

// Reduce iteratively merges any similar pair (i, j) with i < j until no
// similar pair remains (spec.md §4.4, a fixed point since Merge strictly
// shrinks the vertex count).
func (g *Graph[V]) Reduce() {
	for {
		i, j, found := g.findSimilarPair()
		if !found {
			return
		}
		g.Merge(i, j)
	}
}

func (g *Graph[V]) findSimilarPair() (int, int, bool) {
	for i := 0; i < len(g.Vertices); i++ {
		for j := i + 1; j < len(g.Vertices); j++ {
			if g.Vertices[i].Similar(g.Vertices[j]) {
				return i, j, true
			}
		}
	}
	return 0, 0, false
}

// Orphans returns the indices of vertices with no outgoing edges (terminal
// vertices, typically base integrals).
func (g *Graph[V]) Orphans() []int {
	var out []int
	for i, e := range g.Edges {
		if len(e) == 0 {
			out = append(out, i)
		}
	}
	return out
}

// Sort re-indexes vertices by ascending (or, if reverse, descending) order
// of a caller-supplied projection base, remapping edges consistently.
// Precondition: base must yield distinct values for every vertex; if it
// does not, Sort is a no-op (spec.md §4.4's documented fallback).
func Sort[V Vertex[V], U any](g *Graph[V], base func(V) (U, bool), less func(U, U) bool, reverse bool) {
	n := len(g.Vertices)
	keys := make([]U, n)
	for i, v := range g.Vertices {
		k, ok := base(v)
		if !ok {
			return
		}
		keys[i] = k
	}
	if hasDuplicateKey(keys, less) {
		return
	}

	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	sortPerm(perm, func(a, b int) bool {
		if reverse {
			return less(keys[b], keys[a])
		}
		return less(keys[a], keys[b])
	})

	inv := make([]int, n)
	for newIdx, oldIdx := range perm {
		inv[oldIdx] = newIdx
	}

	newVertices := make([]V, n)
	newEdges := make([][]int, n)
	for oldIdx, newIdx := range inv {
		newVertices[newIdx] = g.Vertices[oldIdx]
		remapped := make([]int, len(g.Edges[oldIdx]))
		for k, e := range g.Edges[oldIdx] {
			remapped[k] = inv[e]
		}
		newEdges[newIdx] = remapped
	}
	g.Vertices = newVertices
	g.Edges = newEdges
}

func equalByLess[U any](a, b U, less func(U, U) bool) bool {
	return !less(a, b) && !less(b, a)
}

func hasDuplicateKey[U any](keys []U, less func(U, U) bool) bool {
	for i := 0; i < len(keys); i++ {
		for j := i + 1; j < len(keys); j++ {
			if equalByLess(keys[i], keys[j], less) {
				return true
			}
		}
	}
	return false
}

// sortPerm is an insertion sort over indices, adequate for the vertex
// counts spec.md §4.4 documents (at most a few thousand per family).
func sortPerm(perm []int, less func(a, b int) bool) {
	for i := 1; i < len(perm); i++ {
		for j := i; j > 0 && less(perm[j], perm[j-1]); j-- {
			perm[j], perm[j-1] = perm[j-1], perm[j]
		}
	}
}
