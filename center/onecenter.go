// Package center implements the Gaussian-center collectors OneCenter and
// TwoCenterPair (and their component-indexed variants), the Bra/Ket building
// blocks an Integral is parameterized over.
package center

import (
	"fmt"

	"github.com/go-quantum/recur/tensor"
)

// OneCenter is a single named expansion center carrying one Tensor. Two
// OneCenters are equal iff their names and tensor shapes agree; the name is
// purely a label used for ordering and for the emitted center letter (e.g.
// "GC" for a nuclear-attraction operator center), never for numerics.
type OneCenter struct {
	Name  string
	Shape tensor.Tensor
}

// NewOneCenter builds a OneCenter.
func NewOneCenter(name string, shape tensor.Tensor) OneCenter {
	return OneCenter{Name: name, Shape: shape}
}

// NumCenters is always 1 for OneCenter.
func (c OneCenter) NumCenters() int { return 1 }

// Label returns the cosmetic angular-momentum letter of the held tensor.
func (c OneCenter) Label() string { return c.Shape.Label() }

// Equal is structural equality on (name, shape).
func (c OneCenter) Equal(o OneCenter) bool {
	return c.Name == o.Name && c.Shape.Equal(o.Shape)
}

// Less gives OneCenter a total order, lexicographic on (name, shape).
func (c OneCenter) Less(o OneCenter) bool {
	if c.Name != o.Name {
		return c.Name < o.Name
	}
	return c.Shape.Less(o.Shape)
}

// Shift adjusts the tensor order at atomic sub-center idx (always 0 for
// OneCenter) by delta, reporting false if idx is out of range or the result
// would have negative order.
func (c OneCenter) Shift(idx, delta int) (OneCenter, bool) {
	if idx != 0 {
		return OneCenter{}, false
	}
	shape, ok := tensor.NewTensor(c.Shape.Order() + delta)
	if !ok {
		return OneCenter{}, false
	}
	return OneCenter{Name: c.Name, Shape: shape}, true
}

// Components expands the held tensor's Cartesian-component shapes, pairing
// each with this center's name.
func (c OneCenter) Components() []OneCenterComponent {
	comps := c.Shape.Components()
	out := make([]OneCenterComponent, len(comps))
	for i, sh := range comps {
		out[i] = OneCenterComponent{Name: c.Name, Shape: sh}
	}
	return out
}

// OneCenterComponent is the component-indexed variant of OneCenter: the
// tensor order is replaced with a concrete tensor.Component.
type OneCenterComponent struct {
	Name  string
	Shape tensor.Component
}

// NumCenters is always 1.
func (c OneCenterComponent) NumCenters() int { return 1 }

// Label returns the cosmetic exponent spelling of the held component.
func (c OneCenterComponent) Label() string { return c.Shape.Label() }

// Equal is structural equality on (name, shape).
func (c OneCenterComponent) Equal(o OneCenterComponent) bool {
	return c.Name == o.Name && c.Shape.Equal(o.Shape)
}

// Less gives OneCenterComponent a total order, lexicographic on (name, shape).
func (c OneCenterComponent) Less(o OneCenterComponent) bool {
	if c.Name != o.Name {
		return c.Name < o.Name
	}
	return c.Shape.Less(o.Shape)
}

// Orders returns the single sub-center's total angular-momentum order.
func (c OneCenterComponent) Orders() []int { return []int{c.Shape.Order()} }

// Key is an unambiguous (non-cosmetic) string encoding of this component,
// suitable as a signature hash ingredient. Unlike Label, which is lossy
// under concatenation for TwoCenterPairComponent, Key never collides.
func (c OneCenterComponent) Key() string {
	return fmt.Sprintf("1[%s:%d,%d,%d]", c.Name, c.Shape.Exp(tensor.X), c.Shape.Exp(tensor.Y), c.Shape.Exp(tensor.Z))
}

// Shift adjusts the exponent on the given axis at atomic sub-center idx
// (always 0) by delta.
func (c OneCenterComponent) Shift(idx int, axis tensor.Axis, delta int) (OneCenterComponent, bool) {
	if idx != 0 {
		return OneCenterComponent{}, false
	}
	shape, ok := c.Shape.Shift(axis, delta)
	if !ok {
		return OneCenterComponent{}, false
	}
	return OneCenterComponent{Name: c.Name, Shape: shape}, true
}
