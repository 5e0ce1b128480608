package center

import (
	"fmt"

	"github.com/go-quantum/recur/tensor"
)

// TwoCenterPair is an ordered pair of named expansion centers, each carrying
// its own Tensor — the bra (or ket) collector of a four-center (or
// three-center ket) integral.
type TwoCenterPair struct {
	Name1, Name2   string
	Shape1, Shape2 tensor.Tensor
}

// NewTwoCenterPair builds a TwoCenterPair.
func NewTwoCenterPair(name1 string, shape1 tensor.Tensor, name2 string, shape2 tensor.Tensor) TwoCenterPair {
	return TwoCenterPair{Name1: name1, Shape1: shape1, Name2: name2, Shape2: shape2}
}

// NumCenters is always 2 for TwoCenterPair.
func (c TwoCenterPair) NumCenters() int { return 2 }

// Label concatenates the two centers' cosmetic angular-momentum letters.
func (c TwoCenterPair) Label() string { return c.Shape1.Label() + c.Shape2.Label() }

// Equal is structural equality, positionwise on (name, shape) for each
// sub-center.
func (c TwoCenterPair) Equal(o TwoCenterPair) bool {
	return c.Name1 == o.Name1 && c.Shape1.Equal(o.Shape1) &&
		c.Name2 == o.Name2 && c.Shape2.Equal(o.Shape2)
}

// Less gives TwoCenterPair a total order, lexicographic on
// (name1, shape1, name2, shape2).
func (c TwoCenterPair) Less(o TwoCenterPair) bool {
	if c.Name1 != o.Name1 {
		return c.Name1 < o.Name1
	}
	if !c.Shape1.Equal(o.Shape1) {
		return c.Shape1.Less(o.Shape1)
	}
	if c.Name2 != o.Name2 {
		return c.Name2 < o.Name2
	}
	return c.Shape2.Less(o.Shape2)
}

// Shift adjusts the tensor order at atomic sub-center idx (0 or 1) by delta.
func (c TwoCenterPair) Shift(idx, delta int) (TwoCenterPair, bool) {
	switch idx {
	case 0:
		shape, ok := tensor.NewTensor(c.Shape1.Order() + delta)
		if !ok {
			return TwoCenterPair{}, false
		}
		return TwoCenterPair{c.Name1, c.Name2, shape, c.Shape2}, true
	case 1:
		shape, ok := tensor.NewTensor(c.Shape2.Order() + delta)
		if !ok {
			return TwoCenterPair{}, false
		}
		return TwoCenterPair{c.Name1, c.Name2, c.Shape1, shape}, true
	default:
		return TwoCenterPair{}, false
	}
}

// Components expands the Cartesian product of the two sub-centers' tensor
// components.
func (c TwoCenterPair) Components() []TwoCenterPairComponent {
	cs1 := c.Shape1.Components()
	cs2 := c.Shape2.Components()
	out := make([]TwoCenterPairComponent, 0, len(cs1)*len(cs2))
	for _, s1 := range cs1 {
		for _, s2 := range cs2 {
			out = append(out, TwoCenterPairComponent{c.Name1, c.Name2, s1, s2})
		}
	}
	return out
}

// TwoCenterPairComponent is the component-indexed variant of TwoCenterPair.
type TwoCenterPairComponent struct {
	Name1, Name2   string
	Shape1, Shape2 tensor.Component
}

// NumCenters is always 2.
func (c TwoCenterPairComponent) NumCenters() int { return 2 }

// Label concatenates the two sub-components' cosmetic exponent spellings.
func (c TwoCenterPairComponent) Label() string { return c.Shape1.Label() + c.Shape2.Label() }

// Equal is structural equality, positionwise.
func (c TwoCenterPairComponent) Equal(o TwoCenterPairComponent) bool {
	return c.Name1 == o.Name1 && c.Shape1.Equal(o.Shape1) &&
		c.Name2 == o.Name2 && c.Shape2.Equal(o.Shape2)
}

// Less gives TwoCenterPairComponent a total order, lexicographic on
// (name1, shape1, name2, shape2).
func (c TwoCenterPairComponent) Less(o TwoCenterPairComponent) bool {
	if c.Name1 != o.Name1 {
		return c.Name1 < o.Name1
	}
	if !c.Shape1.Equal(o.Shape1) {
		return c.Shape1.Less(o.Shape1)
	}
	if c.Name2 != o.Name2 {
		return c.Name2 < o.Name2
	}
	return c.Shape2.Less(o.Shape2)
}

// Orders returns each sub-center's total angular-momentum order, in
// (first, second) order.
func (c TwoCenterPairComponent) Orders() []int { return []int{c.Shape1.Order(), c.Shape2.Order()} }

// Key is an unambiguous (non-cosmetic) string encoding of this component,
// suitable as a signature hash ingredient.
func (c TwoCenterPairComponent) Key() string {
	return fmt.Sprintf("2[%s:%d,%d,%d|%s:%d,%d,%d]",
		c.Name1, c.Shape1.Exp(tensor.X), c.Shape1.Exp(tensor.Y), c.Shape1.Exp(tensor.Z),
		c.Name2, c.Shape2.Exp(tensor.X), c.Shape2.Exp(tensor.Y), c.Shape2.Exp(tensor.Z))
}

// Shift adjusts the exponent on the given axis at atomic sub-center idx
// (0 or 1) by delta.
func (c TwoCenterPairComponent) Shift(idx int, axis tensor.Axis, delta int) (TwoCenterPairComponent, bool) {
	switch idx {
	case 0:
		shape, ok := c.Shape1.Shift(axis, delta)
		if !ok {
			return TwoCenterPairComponent{}, false
		}
		return TwoCenterPairComponent{c.Name1, c.Name2, shape, c.Shape2}, true
	case 1:
		shape, ok := c.Shape2.Shift(axis, delta)
		if !ok {
			return TwoCenterPairComponent{}, false
		}
		return TwoCenterPairComponent{c.Name1, c.Name2, c.Shape1, shape}, true
	default:
		return TwoCenterPairComponent{}, false
	}
}
