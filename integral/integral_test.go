package integral

import (
	"testing"

	"github.com/go-quantum/recur/center"
	"github.com/go-quantum/recur/operator"
	"github.com/go-quantum/recur/tensor"
)

func mustTensor(t *testing.T, order int) tensor.Tensor {
	t.Helper()
	tn, ok := tensor.NewTensor(order)
	if !ok {
		t.Fatalf("NewTensor(%d) failed", order)
	}
	return tn
}

func sampleFourCenter(t *testing.T) FourCenter {
	t.Helper()
	bra := center.NewTwoCenterPair("A", mustTensor(t, 1), "B", mustTensor(t, 0))
	ket := center.NewTwoCenterPair("C", mustTensor(t, 0), "D", mustTensor(t, 0))
	op := operator.New(operator.Coulomb, mustTensor(t, 0), operator.TargetNone, 0)
	in, ok := New[center.TwoCenterPair, center.TwoCenterPairComponent, center.TwoCenterPair, center.TwoCenterPairComponent](bra, ket, op, 0, nil)
	if !ok {
		t.Fatalf("New(FourCenter) failed")
	}
	return in
}

func TestIntegralCenters(t *testing.T) {
	in := sampleFourCenter(t)
	if got := in.Centers(); got != 4 {
		t.Errorf("Centers() = %d, want 4", got)
	}
}

func TestIntegralShiftBraAndKet(t *testing.T) {
	in := sampleFourCenter(t)
	shifted, ok := in.Shift(1, 0)
	if !ok {
		t.Fatalf("Shift(1, 0) failed")
	}
	if shifted.Bra.Shape1.Order() != in.Bra.Shape1.Order()+1 {
		t.Errorf("shifting center 0 should grow Bra.Shape1")
	}
	shiftedKet, ok := in.Shift(1, 2)
	if !ok {
		t.Fatalf("Shift(1, 2) failed")
	}
	if shiftedKet.Ket.Shape1.Order() != in.Ket.Shape1.Order()+1 {
		t.Errorf("shifting center 2 should grow Ket.Shape1")
	}
	if _, ok := in.Shift(1, 99); ok {
		t.Errorf("Shift at out-of-range center index should fail")
	}
}

func TestIntegralShiftOrderAndBase(t *testing.T) {
	in := sampleFourCenter(t)
	shifted, ok := in.ShiftOrder(3)
	if !ok || shifted.M != 3 {
		t.Fatalf("ShiftOrder(3) = (%+v, %v)", shifted, ok)
	}
	if _, ok := in.ShiftOrder(-1); ok {
		t.Errorf("ShiftOrder(-1) from M=0 should fail")
	}
	prefixOp := operator.New(operator.DerivR, mustTensor(t, 1), operator.TargetBra, 0)
	withPrefix := in
	withPrefix.Prefixes = []operator.Operator{prefixOp}
	base := withPrefix.Base()
	if len(base.Prefixes) != 0 {
		t.Errorf("Base() should strip prefixes")
	}
}

func TestIntegralEqualAndLess(t *testing.T) {
	a := sampleFourCenter(t)
	b := sampleFourCenter(t)
	if !a.Equal(b) {
		t.Errorf("identically built integrals should be Equal")
	}
	c, _ := a.ShiftOrder(1)
	if a.Equal(c) {
		t.Errorf("differing M should not be Equal")
	}
	if !a.Less(c) {
		t.Errorf("lower M should sort before higher M")
	}
}

func TestComponentsCartesianProduct(t *testing.T) {
	in := sampleFourCenter(t)
	comps := in.Components()
	braN := len(in.Bra.Components())
	ketN := len(in.Ket.Components())
	if len(comps) != braN*ketN {
		t.Errorf("got %d components, want %d", len(comps), braN*ketN)
	}
}

func TestDiagComponentsTruncatesToShorter(t *testing.T) {
	in := sampleFourCenter(t)
	diag := in.DiagComponents()
	braN := len(in.Bra.Components())
	ketN := len(in.Ket.Components())
	want := braN
	if ketN < want {
		want = ketN
	}
	if len(diag) != want {
		t.Errorf("got %d diag components, want %d", len(diag), want)
	}
}

func TestPatternEqualIgnoresCartesianComponent(t *testing.T) {
	in := sampleFourCenter(t)
	comps := in.Components()
	if len(comps) < 2 {
		t.Fatalf("need at least 2 components to compare patterns")
	}
	// Every component of the same integral shares bra/ket orders and M, so
	// their Patterns must all compare Equal even though the components
	// themselves differ by which specific Cartesian slot is held.
	p0 := comps[0].Pattern()
	for _, c := range comps[1:] {
		if !p0.Equal(c.Pattern()) {
			t.Errorf("components of one integral should share a Pattern")
		}
		if !comps[0].SamePattern(c) {
			t.Errorf("SamePattern should agree with Pattern().Equal")
		}
	}
}

func TestPatternKeyMatchesEquality(t *testing.T) {
	in := sampleFourCenter(t)
	comps := in.Components()
	p1 := comps[0].Pattern()
	p2 := comps[0].Pattern()
	if p1.Key() != p2.Key() {
		t.Errorf("equal patterns must share a Key")
	}

	other, ok := comps[0].ShiftOrder(1)
	if !ok {
		t.Fatalf("ShiftOrder(1) failed")
	}
	if other.Pattern().Key() == p1.Key() {
		t.Errorf("patterns differing in M must not share a Key")
	}
}

func TestComponentKeyNoCollisionAcrossComponents(t *testing.T) {
	in := sampleFourCenter(t)
	comps := in.Components()
	seen := make(map[string]bool)
	for _, c := range comps {
		k := c.Key()
		if seen[k] {
			t.Fatalf("Key collision for component %+v", c)
		}
		seen[k] = true
	}
}

func TestRemovePrefixDropsOnlyMatchingKind(t *testing.T) {
	in := sampleFourCenter(t).Components()[0]
	p1 := operator.Component{Kind: operator.DerivR, Shape: func() tensor.Component { c, _ := tensor.NewComponent(1, 0, 0); return c }(), Target: operator.TargetBra, CenterIndex: 0}
	p2 := operator.Component{Kind: operator.DerivC, Shape: func() tensor.Component { c, _ := tensor.NewComponent(1, 0, 0); return c }(), Target: operator.TargetKet, CenterIndex: 2}
	in.Prefixes = []operator.Component{p1, p2}
	out := in.RemovePrefix(operator.DerivR)
	if len(out.Prefixes) != 1 || out.Prefixes[0].Kind != operator.DerivC {
		t.Errorf("RemovePrefix(DerivR) left %+v, want only DerivC", out.Prefixes)
	}
}
