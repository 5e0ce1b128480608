package recgraph

import "github.com/go-quantum/recur/recterm"

// Close performs the graph-level recursion closure spec.md §4.3 describes
// as `apply_*_hrr(group, integrals_set)` / `apply_*_vrr(group, ...)`: starting
// from seed (typically every Cartesian component of one target integral,
// already collected into one RecursionGroup), it repeatedly applies step to
// every expansion's root, partitions the resulting predecessor terms by
// patternKey (ignoring which specific Cartesian component each one holds,
// per spec.md §4.3's predecessor-partitioning rule) into child groups, and
// recurses into any child group not already present in the graph by value
// (Graph.Add's structural-equality dedup is exactly the "integrals_set"
// membership check the source's set accumulator performs).
//
// step should return an expansion with no summands for a term that is
// already a base integral for this recursion (the driver's "not applicable"
// case) — Close then naturally stops recursing through that expansion
// without spawning any children, since applyOneStep-style driver wrappers
// already fold "not applicable" into a childless expansion.
func Close[I recterm.Integral[I]](
	seed *recterm.Group[I],
	step func(*recterm.Term[I]) *recterm.Expansion[I],
	patternKey func(I) string,
) *GroupGraph[I] {
	g := New[*recterm.Group[I]]()
	rootIdx, _ := g.Add(seed, 0, false)

	queue := []int{rootIdx}
	visited := make(map[int]bool)
	for len(queue) > 0 {
		idx := queue[0]
		queue = queue[1:]
		if visited[idx] {
			continue
		}
		visited[idx] = true

		byPattern := make(map[string]*recterm.Group[I])
		var order []string
		for _, e := range g.Vertices[idx].Expansions {
			dist := step(e.Root)
			e.Summands = dist.Summands
			for _, s := range dist.Summands {
				key := patternKey(s.Integral)
				grp, exists := byPattern[key]
				if !exists {
					grp = recterm.NewGroup[I]()
					byPattern[key] = grp
					order = append(order, key)
				}
				grp.Insert(recterm.NewExpansion(s.Clone()))
			}
		}

		for _, key := range order {
			childIdx, isNew := g.Add(byPattern[key], idx, true)
			if isNew {
				queue = append(queue, childIdx)
			}
		}
	}
	return g
}
