package recgraph_test

import (
	"testing"

	"github.com/go-quantum/recur/center"
	"github.com/go-quantum/recur/driver"
	"github.com/go-quantum/recur/frac"
	"github.com/go-quantum/recur/integral"
	"github.com/go-quantum/recur/operator"
	"github.com/go-quantum/recur/recgraph"
	"github.com/go-quantum/recur/recterm"
	"github.com/go-quantum/recur/tensor"
)

// intVertex is a minimal Vertex[*intVertex] implementation used to test
// Graph's generic mechanics (Add/Merge/Invert/Reduce/Sort) independently of
// the recterm.Group-specific GroupGraph alias.
type intVertex struct {
	val     int
	similar bool
}

func (v *intVertex) Equal(o *intVertex) bool   { return v.val == o.val }
func (v *intVertex) Similar(o *intVertex) bool { return v.similar && o.similar && v.val != o.val }
func (v *intVertex) Merge(o *intVertex)        { v.val += o.val }

func TestGraphAddDedupsByValue(t *testing.T) {
	g := recgraph.New[*intVertex]()
	i1, isNew1 := g.Add(&intVertex{val: 1}, 0, false)
	i2, isNew2 := g.Add(&intVertex{val: 1}, 0, false)
	if !isNew1 || isNew2 {
		t.Fatalf("second Add of an equal vertex should not be new")
	}
	if i1 != i2 {
		t.Errorf("equal vertices should resolve to the same index")
	}
}

func TestGraphAddEdgeFromRoot(t *testing.T) {
	g := recgraph.New[*intVertex]()
	root, _ := g.Add(&intVertex{val: 1}, 0, false)
	child, _ := g.Add(&intVertex{val: 2}, root, true)
	if len(g.Edges[root]) != 1 || g.Edges[root][0] != child {
		t.Errorf("root should have one edge to child, got %v", g.Edges[root])
	}
}

func TestGraphMergeRenumbersEdges(t *testing.T) {
	g := recgraph.New[*intVertex]()
	a, _ := g.Add(&intVertex{val: 1}, 0, false)
	b, _ := g.Add(&intVertex{val: 2}, a, true)
	c, _ := g.Add(&intVertex{val: 3}, b, true)
	// a -> b -> c. Merge a,b: b's data folds into a, c's index shifts down by one.
	g.Merge(a, b)
	if len(g.Vertices) != 2 {
		t.Fatalf("after merging 2 of 3 vertices, want 2 left, got %d", len(g.Vertices))
	}
	if g.Vertices[a].val != 3 { // 1 + 2
		t.Errorf("merged vertex value = %d, want 3", g.Vertices[a].val)
	}
	newC := c - 1
	found := false
	for _, e := range g.Edges[a] {
		if e == newC {
			found = true
		}
	}
	if !found {
		t.Errorf("merged vertex should retain an edge to the renumbered c, edges=%v", g.Edges[a])
	}
}

func TestGraphMergePanicsOnBadOrder(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("Merge(j, i) with j > i should panic")
		}
	}()
	g := recgraph.New[*intVertex]()
	g.Add(&intVertex{val: 1}, 0, false)
	g.Add(&intVertex{val: 2}, 0, false)
	g.Merge(1, 0)
}

func TestGraphInvertReversesEdges(t *testing.T) {
	g := recgraph.New[*intVertex]()
	a, _ := g.Add(&intVertex{val: 1}, 0, false)
	g.Add(&intVertex{val: 2}, a, true)
	inv := g.Invert()
	if len(inv.Edges[0]) != 0 || len(inv.Edges[1]) != 1 || inv.Edges[1][0] != 0 {
		t.Errorf("Invert did not reverse the single edge correctly: %v", inv.Edges)
	}
}

func TestGraphReduceMergesSimilarPairs(t *testing.T) {
	g := recgraph.New[*intVertex]()
	g.Add(&intVertex{val: 1, similar: true}, 0, false)
	g.Add(&intVertex{val: 2, similar: true}, 0, false)
	g.Add(&intVertex{val: 3, similar: false}, 0, false)
	g.Reduce()
	if len(g.Vertices) != 2 {
		t.Errorf("Reduce should merge the one similar pair, leaving 2 vertices, got %d", len(g.Vertices))
	}
}

func TestGraphOrphans(t *testing.T) {
	g := recgraph.New[*intVertex]()
	a, _ := g.Add(&intVertex{val: 1}, 0, false)
	b, _ := g.Add(&intVertex{val: 2}, a, true)
	orphans := g.Orphans()
	if len(orphans) != 1 || orphans[0] != b {
		t.Errorf("Orphans() = %v, want [%d]", orphans, b)
	}
}

func TestSortNoOpOnDuplicateKeys(t *testing.T) {
	g := recgraph.New[*intVertex]()
	g.Add(&intVertex{val: 5}, 0, false)
	g.Add(&intVertex{val: 6}, 0, false)
	before := append([]*intVertex(nil), g.Vertices...)
	// Every vertex projects to the same key 0, so Sort must be a no-op.
	recgraph.Sort[*intVertex, int](g, func(v *intVertex) (int, bool) { return 0, true }, func(a, b int) bool { return a < b }, false)
	for i, v := range g.Vertices {
		if v != before[i] {
			t.Errorf("Sort with duplicate keys should be a no-op, order changed at %d", i)
		}
	}
}

func TestSortOrdersByKey(t *testing.T) {
	g := recgraph.New[*intVertex]()
	g.Add(&intVertex{val: 3}, 0, false)
	g.Add(&intVertex{val: 1}, 0, false)
	g.Add(&intVertex{val: 2}, 0, false)
	recgraph.Sort[*intVertex, int](g, func(v *intVertex) (int, bool) { return v.val, true }, func(a, b int) bool { return a < b }, false)
	for i := 1; i < len(g.Vertices); i++ {
		if g.Vertices[i].val < g.Vertices[i-1].val {
			t.Errorf("Sort did not order vertices ascending: %v", g.Vertices)
		}
	}
}

// --- GroupGraph / Close integration, grounding the closure against the
// real four-center ERI driver ---

func mustTensor(t *testing.T, order int) tensor.Tensor {
	t.Helper()
	tn, ok := tensor.NewTensor(order)
	if !ok {
		t.Fatalf("NewTensor(%d) failed", order)
	}
	return tn
}

func ppssGroup(t *testing.T) *recterm.Group[driver.T4C] {
	t.Helper()
	bra := center.NewTwoCenterPair("A", mustTensor(t, 1), "B", mustTensor(t, 0))
	ket := center.NewTwoCenterPair("C", mustTensor(t, 0), "D", mustTensor(t, 0))
	op := operator.New(operator.Coulomb, mustTensor(t, 0), operator.TargetNone, 0)
	in, ok := integral.New[center.TwoCenterPair, center.TwoCenterPairComponent, center.TwoCenterPair, center.TwoCenterPairComponent](bra, ket, op, 0, nil)
	if !ok {
		t.Fatalf("integral.New failed")
	}
	g := recterm.NewGroup[driver.T4C]()
	for _, c := range in.Components() {
		term, ok := recterm.New[driver.T4C](c, frac.One)
		if !ok {
			t.Fatalf("recterm.New failed")
		}
		g.Insert(recterm.NewExpansion[driver.T4C](term))
	}
	return g
}

func TestCloseTerminatesAndDedups(t *testing.T) {
	seed := ppssGroup(t)
	d := driver.EriDriver{}
	graph := recgraph.Close[driver.T4C](seed,
		func(term *driver.T4CTerm) *driver.T4CDist { return d.ApplyBraHRR(term, nil) },
		func(c driver.T4C) string { return c.Pattern().Key() },
	)
	if len(graph.Vertices) == 0 {
		t.Fatalf("Close should produce at least the seed vertex")
	}
	if !graph.Vertices[0].Equal(seed) {
		t.Errorf("the first vertex should be the seed group")
	}
	// Closure must terminate (this call returning is the proof) and every
	// vertex must be structurally distinct (Add's dedup invariant).
	for i := 0; i < len(graph.Vertices); i++ {
		for j := i + 1; j < len(graph.Vertices); j++ {
			if graph.Vertices[i].Equal(graph.Vertices[j]) {
				t.Errorf("Close produced two structurally equal vertices at %d,%d", i, j)
			}
		}
	}
}

func TestGroupGraphBaseAndFactors(t *testing.T) {
	seed := ppssGroup(t)
	d := driver.EriDriver{}
	graph := recgraph.Close[driver.T4C](seed,
		func(term *driver.T4CTerm) *driver.T4CDist { return d.ApplyBraHRR(term, nil) },
		func(c driver.T4C) string { return c.Pattern().Key() },
	)
	if _, ok := recgraph.Base[driver.T4C](graph.Vertices[0]); !ok {
		t.Errorf("seed vertex should have a base integral")
	}
	sigs := recgraph.Signatures[driver.T4C](graph)
	if len(sigs) != len(graph.Vertices) {
		t.Errorf("Signatures should return one entry per vertex")
	}
	_ = recgraph.GlobalSignature[driver.T4C](graph)
	factors := recgraph.Factors[driver.T4C](graph)
	byName := recgraph.MapOfFactors[driver.T4C](graph)
	total := 0
	for _, fs := range byName {
		total += len(fs)
	}
	if total != len(factors) {
		t.Errorf("MapOfFactors should partition Factors without loss: %d vs %d", total, len(factors))
	}
}
