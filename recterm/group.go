package recterm

import (
	"sort"

	"github.com/go-quantum/recur/factor"
)

// Group (the source's RecursionGroup) is a sorted set of expansions sharing
// a scope, typically all components of one target integral-with-prefixes
// (spec.md §3). Graph vertices hold one Group each.
type Group[I Integral[I]] struct {
	Expansions []*Expansion[I]
}

// NewGroup builds an empty group.
func NewGroup[I Integral[I]]() *Group[I] {
	return &Group[I]{}
}

// Insert adds an expansion, keeping Expansions sorted by root term order.
func (g *Group[I]) Insert(e *Expansion[I]) {
	idx := sort.Search(len(g.Expansions), func(i int) bool {
		return !g.Expansions[i].Root.Less(e.Root)
	})
	g.Expansions = append(g.Expansions, nil)
	copy(g.Expansions[idx+1:], g.Expansions[idx:])
	g.Expansions[idx] = e
}

// Equal is full structural equality: same number of expansions, each
// positionally equal (root term and every summand). Groups are kept sorted
// by Insert, so two structurally identical groups compare equal regardless
// of insertion order. Used by Graph's vertex deduplication (recgraph.Vertex)
// to recognize a group already present in the graph.
func (g *Group[I]) Equal(o *Group[I]) bool {
	if len(g.Expansions) != len(o.Expansions) {
		return false
	}
	for i, e := range g.Expansions {
		f := o.Expansions[i]
		if !e.Root.Equal(f.Root) || len(e.Summands) != len(f.Summands) {
			return false
		}
		for k, s := range e.Summands {
			if !s.Equal(f.Summands[k]) {
				return false
			}
		}
	}
	return true
}

// Merge unions other's expansions into g, skipping any expansion whose root
// already has a match by root equality (spec.md §4.2.3), in place.
func (g *Group[I]) Merge(other *Group[I]) {
	for _, e := range other.Expansions {
		found := false
		for _, existing := range g.Expansions {
			if existing.RootEqual(e) {
				found = true
				break
			}
		}
		if !found {
			g.Insert(e)
		}
	}
}

// MinOrder returns the minimum auxiliary order occurring anywhere in the
// group, or 0 for an empty group.
func (g *Group[I]) MinOrder() int {
	if len(g.Expansions) == 0 {
		return 0
	}
	m := g.Expansions[0].MinOrder()
	for _, e := range g.Expansions[1:] {
		if o := e.MinOrder(); o < m {
			m = o
		}
	}
	return m
}

// Reduce normalizes every expansion's auxiliary order by subtracting the
// group's minimum order, in place, so min_order() == 0 afterward (or the
// group is empty). Calling Reduce twice in a row is a no-op the second
// time (spec.md §8, testable property 8).
func (g *Group[I]) Reduce() {
	m := g.MinOrder()
	if m == 0 {
		return
	}
	for _, e := range g.Expansions {
		e.ShiftOrder(-m)
	}
}

// Similar reports whether every cross-pair of expansions between g and o is
// Similar, used by Graph.Reduce to collapse structurally equivalent
// vertices (spec.md §4.2.3).
func (g *Group[I]) Similar(o *Group[I]) bool {
	if len(g.Expansions) == 0 || len(o.Expansions) == 0 {
		return false
	}
	for _, e := range g.Expansions {
		for _, f := range o.Expansions {
			if !e.Similar(f) {
				return false
			}
		}
	}
	return true
}

// Roots returns the root integral of every expansion, in group order.
func (g *Group[I]) Roots() []I {
	out := make([]I, len(g.Expansions))
	for i, e := range g.Expansions {
		out[i] = e.Root.Integral
	}
	return out
}

// Base is the group's sort/merge projection: the root integral of its first
// expansion (the least in the group's sorted order) with all prefixes
// removed, used by Graph.Sort's base[U] extraction. The other roots are not
// consulted. A group with no expansions has no base.
func (g *Group[I]) Base() (I, bool) {
	var zero I
	if len(g.Expansions) == 0 {
		return zero, false
	}
	return g.Expansions[0].Root.Integral.Base(), true
}

// UniqueIntegrals returns every distinct integral appearing anywhere in the
// group (across roots and summands), in ascending order.
func (g *Group[I]) UniqueIntegrals() []I {
	var out []I
	for _, e := range g.Expansions {
		for _, in := range e.Integrals() {
			out = appendUniqueIntegral(out, in)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// UniqueFactors returns every distinct factor appearing in any term's
// multiset anywhere in the group, in ascending order.
func (g *Group[I]) UniqueFactors() []factor.Factor {
	seen := make(map[factor.Factor]bool)
	for _, e := range g.Expansions {
		for f := range e.Root.FactorOrders {
			seen[f] = true
		}
		for _, s := range e.Summands {
			for f := range s.FactorOrders {
				seen[f] = true
			}
		}
	}
	out := make([]factor.Factor, 0, len(seen))
	for f := range seen {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

func appendUniqueIntegral[I Integral[I]](list []I, v I) []I {
	for _, x := range list {
		if x.Equal(v) {
			return list
		}
	}
	return append(list, v)
}
