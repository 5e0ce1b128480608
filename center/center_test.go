package center

import (
	"testing"

	"github.com/google/go-cmp/cmp"
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

func TestOneCenterShift(t *testing.T) {
	c := NewOneCenter("A", mustTensor(t, 1))
	got, ok := c.Shift(0, 1)
	if !ok {
		t.Fatalf("Shift failed")
	}
	if got.Shape.Order() != 2 {
		t.Errorf("Shape.Order() = %d, want 2", got.Shape.Order())
	}
	if _, ok := c.Shift(1, 1); ok {
		t.Errorf("Shift at out-of-range index should fail")
	}
	if _, ok := c.Shift(0, -5); ok {
		t.Errorf("Shift to negative order should fail")
	}
}

func TestOneCenterComponentsRoundTrip(t *testing.T) {
	c := NewOneCenter("A", mustTensor(t, 2))
	comps := c.Components()
	for _, cc := range comps {
		if cc.Name != "A" {
			t.Errorf("component name = %q, want A", cc.Name)
		}
		if cc.Shape.Order() != 2 {
			t.Errorf("component order = %d, want 2", cc.Shape.Order())
		}
	}
}

func TestOneCenterComponentKeyNoCollision(t *testing.T) {
	s1, _ := tensor.NewComponent(1, 0, 0)
	s2, _ := tensor.NewComponent(0, 1, 0)
	c1 := OneCenterComponent{Name: "A", Shape: s1}
	c2 := OneCenterComponent{Name: "A", Shape: s2}
	if c1.Key() == c2.Key() {
		t.Errorf("distinct components should not share a Key: %q", c1.Key())
	}
}

func TestTwoCenterPairShift(t *testing.T) {
	pair := NewTwoCenterPair("A", mustTensor(t, 1), "B", mustTensor(t, 0))
	got, ok := pair.Shift(1, 2)
	if !ok {
		t.Fatalf("Shift(1, 2) failed")
	}
	if got.Shape2.Order() != 2 {
		t.Errorf("Shape2.Order() = %d, want 2", got.Shape2.Order())
	}
	if got.Shape1.Order() != pair.Shape1.Order() {
		t.Errorf("Shift(1, ...) should leave Shape1 untouched")
	}
	if _, ok := pair.Shift(2, 1); ok {
		t.Errorf("Shift at out-of-range sub-center index should fail")
	}
}

func TestTwoCenterPairComponentsCartesianProduct(t *testing.T) {
	pair := NewTwoCenterPair("A", mustTensor(t, 1), "B", mustTensor(t, 1))
	comps := pair.Components()
	if len(comps) != 3*3 {
		t.Errorf("got %d components, want 9", len(comps))
	}
}

func TestTwoCenterPairEqualAndLess(t *testing.T) {
	p1 := NewTwoCenterPair("A", mustTensor(t, 1), "B", mustTensor(t, 0))
	p2 := NewTwoCenterPair("A", mustTensor(t, 1), "B", mustTensor(t, 0))
	if !p1.Equal(p2) {
		t.Errorf("identical pairs should be Equal")
	}
	p3 := NewTwoCenterPair("A", mustTensor(t, 2), "B", mustTensor(t, 0))
	if p1.Equal(p3) {
		t.Errorf("differing pairs should not be Equal")
	}
	if !p1.Less(p3) {
		t.Errorf("lower-order Shape1 pair should sort before higher-order")
	}
}

func TestTwoCenterPairComponentKeyNoCollision(t *testing.T) {
	s0, _ := tensor.NewComponent(0, 0, 0)
	s1, _ := tensor.NewComponent(1, 0, 0)
	c1 := TwoCenterPairComponent{Name1: "A", Name2: "B", Shape1: s1, Shape2: s0}
	c2 := TwoCenterPairComponent{Name1: "A", Name2: "B", Shape1: s0, Shape2: s1}
	if c1.Key() == c2.Key() {
		t.Errorf("swapped-shape components should not share a Key")
	}
	if cmp.Equal(c1, c2) {
		t.Errorf("swapped-shape components should differ structurally")
	}
}

func TestTwoCenterPairComponentOrders(t *testing.T) {
	s1, _ := tensor.NewComponent(2, 0, 0)
	s2, _ := tensor.NewComponent(0, 1, 0)
	c := TwoCenterPairComponent{Name1: "A", Name2: "B", Shape1: s1, Shape2: s2}
	got := c.Orders()
	if len(got) != 2 || got[0] != 2 || got[1] != 1 {
		t.Errorf("Orders() = %v, want [2 1]", got)
	}
}
