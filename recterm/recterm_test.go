package recterm

import (
	"testing"

	"github.com/go-quantum/recur/center"
	"github.com/go-quantum/recur/factor"
	"github.com/go-quantum/recur/frac"
	"github.com/go-quantum/recur/integral"
	"github.com/go-quantum/recur/operator"
	"github.com/go-quantum/recur/tensor"
)

type testIntegral = integral.TwoCenterComp

func mustTensor(t *testing.T, order int) tensor.Tensor {
	t.Helper()
	tn, ok := tensor.NewTensor(order)
	if !ok {
		t.Fatalf("NewTensor(%d) failed", order)
	}
	return tn
}

func sample(t *testing.T, order, m int) testIntegral {
	t.Helper()
	bra := center.NewOneCenter("A", mustTensor(t, order))
	ket := center.NewOneCenter("C", mustTensor(t, 0))
	op := operator.New(operator.ProjectedECP, mustTensor(t, 0), operator.TargetNone, 0)
	in, ok := integral.New[center.OneCenter, center.OneCenterComponent, center.OneCenter, center.OneCenterComponent](bra, ket, op, m, nil)
	if !ok {
		t.Fatalf("integral.New failed")
	}
	comps := in.Components()
	if len(comps) == 0 {
		t.Fatalf("no components")
	}
	return comps[0]
}

func TestTermScaleAndAdd(t *testing.T) {
	in := sample(t, 1, 0)
	term, ok := New[testIntegral](in, frac.One)
	if !ok {
		t.Fatalf("New(Term) failed")
	}
	term.Scale(frac.Fraction{Num: 1, Den: 2})
	if term.Prefactor.Num != 1 || term.Prefactor.Den != 2 {
		t.Errorf("Scale: prefactor = %+v", term.Prefactor)
	}
	f := factor.Scalar(factor.InvZeta, "fz")
	term.Add(f, frac.Fraction{Num: 2, Den: 1})
	if term.FactorOrder(f) != 1 {
		t.Errorf("FactorOrder after one Add = %d, want 1", term.FactorOrder(f))
	}
	term.Add(f, frac.One)
	if term.FactorOrder(f) != 2 {
		t.Errorf("FactorOrder after two Add = %d, want 2", term.FactorOrder(f))
	}
	if term.Prefactor.Num != 1 || term.Prefactor.Den != 1 {
		t.Errorf("Prefactor after scaling by 1/2 * 2 * 1 = %+v, want 1/1", term.Prefactor)
	}
}

func TestNewZeroPrefactorFails(t *testing.T) {
	in := sample(t, 1, 0)
	if _, ok := New[testIntegral](in, frac.Fraction{Num: 0, Den: 1}); ok {
		t.Errorf("New with zero prefactor should fail")
	}
}

func TestTermCloneIndependence(t *testing.T) {
	in := sample(t, 1, 0)
	term, _ := New[testIntegral](in, frac.One)
	f := factor.Scalar(factor.InvZeta, "fz")
	term.Add(f, frac.One)
	clone := term.Clone()
	clone.Add(f, frac.One)
	if term.FactorOrder(f) == clone.FactorOrder(f) {
		t.Errorf("mutating a clone should not affect the original")
	}
}

func TestTermEqualAndSameBase(t *testing.T) {
	in := sample(t, 1, 0)
	t1, _ := New[testIntegral](in, frac.One)
	t2, _ := New[testIntegral](in, frac.One)
	if !t1.Equal(t2) {
		t.Errorf("identically built terms should be Equal")
	}
	t2.Scale(frac.Fraction{Num: 2, Den: 1})
	if t1.Equal(t2) {
		t.Errorf("differing prefactor should break Equal")
	}
	if !t1.SameBase(t2) {
		t.Errorf("SameBase should ignore prefactor")
	}
}

func TestTermShiftOrder(t *testing.T) {
	in := sample(t, 1, 0)
	term, _ := New[testIntegral](in, frac.One)
	if !term.ShiftOrder(2) {
		t.Fatalf("ShiftOrder(2) failed")
	}
	if term.Integral.GetM() != 2 {
		t.Errorf("GetM() = %d, want 2", term.Integral.GetM())
	}
	if term.ShiftOrder(-5) {
		t.Errorf("ShiftOrder(-5) should fail and leave the term unchanged")
	}
	if term.Integral.GetM() != 2 {
		t.Errorf("failed ShiftOrder must not mutate the term")
	}
}

func TestExpansionMinOrderAndShift(t *testing.T) {
	root := sample(t, 1, 2)
	rootTerm, _ := New[testIntegral](root, frac.One)
	e := NewExpansion[testIntegral](rootTerm)

	summandIn := sample(t, 0, 0)
	summandTerm, _ := New[testIntegral](summandIn, frac.One)
	e.AddSummand(summandTerm)

	if got := e.MinOrder(); got != 0 {
		t.Errorf("MinOrder() = %d, want 0", got)
	}
	if !e.ShiftOrder(1) {
		t.Fatalf("ShiftOrder(1) failed")
	}
	if e.Root.Integral.GetM() != 3 || e.Summands[0].Integral.GetM() != 1 {
		t.Errorf("ShiftOrder should shift root and every summand")
	}
}

func TestGroupInsertKeepsSortedOrder(t *testing.T) {
	g := NewGroup[testIntegral]()
	for _, m := range []int{3, 1, 2} {
		in := sample(t, 1, m)
		term, _ := New[testIntegral](in, frac.One)
		g.Insert(NewExpansion[testIntegral](term))
	}
	for i := 1; i < len(g.Expansions); i++ {
		if g.Expansions[i].Root.Less(g.Expansions[i-1].Root) {
			t.Errorf("Group.Insert did not keep expansions sorted at index %d", i)
		}
	}
}

func TestGroupEqualIgnoresInsertionOrder(t *testing.T) {
	g1, g2 := NewGroup[testIntegral](), NewGroup[testIntegral]()
	ms := []int{3, 1, 2}
	for _, m := range ms {
		in := sample(t, 1, m)
		term, _ := New[testIntegral](in, frac.One)
		g1.Insert(NewExpansion[testIntegral](term))
	}
	for i := len(ms) - 1; i >= 0; i-- {
		in := sample(t, 1, ms[i])
		term, _ := New[testIntegral](in, frac.One)
		g2.Insert(NewExpansion[testIntegral](term))
	}
	if !g1.Equal(g2) {
		t.Errorf("groups built from the same expansions in different insertion order should be Equal")
	}
}

func TestGroupMergeSkipsDuplicateRoots(t *testing.T) {
	in := sample(t, 1, 0)
	term, _ := New[testIntegral](in, frac.One)
	g1 := NewGroup[testIntegral]()
	g1.Insert(NewExpansion[testIntegral](term))

	term2, _ := New[testIntegral](in, frac.One)
	g2 := NewGroup[testIntegral]()
	g2.Insert(NewExpansion[testIntegral](term2))

	g1.Merge(g2)
	if len(g1.Expansions) != 1 {
		t.Errorf("Merge should skip an expansion whose root already exists, got %d expansions", len(g1.Expansions))
	}
}

func TestGroupReduceIsIdempotent(t *testing.T) {
	g := NewGroup[testIntegral]()
	in := sample(t, 1, 5)
	term, _ := New[testIntegral](in, frac.One)
	g.Insert(NewExpansion[testIntegral](term))

	g.Reduce()
	if got := g.MinOrder(); got != 0 {
		t.Fatalf("after Reduce, MinOrder() = %d, want 0", got)
	}
	before := g.Expansions[0].Root.Integral.GetM()
	g.Reduce()
	after := g.Expansions[0].Root.Integral.GetM()
	if before != after {
		t.Errorf("calling Reduce twice should be a no-op the second time: %d vs %d", before, after)
	}
}

func TestGroupUniqueIntegralsAndFactors(t *testing.T) {
	g := NewGroup[testIntegral]()
	in := sample(t, 1, 0)
	root, _ := New[testIntegral](in, frac.One)
	e := NewExpansion[testIntegral](root)
	summandIn := sample(t, 0, 0)
	summand, _ := New[testIntegral](summandIn, frac.One)
	f := factor.Scalar(factor.InvZeta, "fz")
	summand.Add(f, frac.One)
	e.AddSummand(summand)
	g.Insert(e)

	uniq := g.UniqueIntegrals()
	if len(uniq) != 2 {
		t.Errorf("UniqueIntegrals() has %d entries, want 2", len(uniq))
	}
	factors := g.UniqueFactors()
	if len(factors) != 1 || factors[0].Name != factor.InvZeta {
		t.Errorf("UniqueFactors() = %+v, want [InvZeta]", factors)
	}
}

func TestSignatureCollapsesAuxiliaryOffset(t *testing.T) {
	build := func(m int) *Group[testIntegral] {
		g := NewGroup[testIntegral]()
		rootIn := sample(t, 1, m)
		root, _ := New[testIntegral](rootIn, frac.One)
		e := NewExpansion[testIntegral](root)
		sIn := sample(t, 0, m)
		s, _ := New[testIntegral](sIn, frac.One)
		e.AddSummand(s)
		g.Insert(e)
		return g
	}
	g1 := build(0)
	g2 := build(3)
	sig1 := NewSignature[testIntegral](g1)
	sig2 := NewSignature[testIntegral](g2)
	if sig1.Key() != sig2.Key() {
		t.Errorf("signatures differing only by a uniform M offset should collapse to the same Key")
	}
}
