// Package operator implements the integrand and prefix Operator types: a
// name drawn from a fixed enumeration, a Tensor shape, and a target center.
package operator

import (
	"fmt"

	"github.com/go-quantum/recur/tensor"
)

// Kind enumerates the integrand/prefix operator names a driver can match on
// (spec §6). Name is a closed set; drivers pattern-match on it directly
// rather than on free-form strings, which keeps bad kinds a compile-time
// impossibility instead of a "return empty result set" runtime path.
type Kind int

const (
	// None is the "no operator" sentinel (empty string in the original
	// C++ enumeration).
	None Kind = iota
	// Coulomb is the two-electron Coulomb operator "1/|r-r'|".
	Coulomb
	// NuclearAttraction is "1/r".
	NuclearAttraction
	// Multipole is "r^n", a multipole moment whose order is carried by the
	// operator's own Tensor shape.
	Multipole
	// ProjectedECP is "U_l", a projected effective-core-potential operator
	// whose angular order l is the integral's auxiliary order.
	ProjectedECP
	// DerivR is the geometric-derivative prefix "d/dr".
	DerivR
	// DerivBraKet is the geometric-derivative prefix "d/dR".
	DerivBraKet
	// DerivC is the geometric-derivative prefix "d/dC".
	DerivC
)

// String returns the operator name exactly as spec §6 spells it.
func (k Kind) String() string {
	switch k {
	case None:
		return ""
	case Coulomb:
		return "1/|r-r'|"
	case NuclearAttraction:
		return "1/r"
	case Multipole:
		return "r^n"
	case ProjectedECP:
		return "U_l"
	case DerivR:
		return "d/dr"
	case DerivBraKet:
		return "d/dR"
	case DerivC:
		return "d/dC"
	default:
		panic("operator: invalid kind")
	}
}

// Target names which collector an operator decorates.
type Target int

const (
	TargetNone Target = iota
	TargetBra
	TargetKet
	TargetSelf
)

func (t Target) String() string {
	switch t {
	case TargetNone:
		return "none"
	case TargetBra:
		return "bra"
	case TargetKet:
		return "ket"
	case TargetSelf:
		return "self"
	default:
		panic("operator: invalid target")
	}
}

// Operator is an integrand or prefix operator: a Kind, a Tensor shape, a
// Target, and (when Target != TargetNone) the index of the targeted center.
type Operator struct {
	Kind        Kind
	Shape       tensor.Tensor
	Target      Target
	CenterIndex int
}

// New builds an Operator. CenterIndex is only meaningful when target != none
// and is not itself validated here (the owning Integral knows how many
// centers it has).
func New(kind Kind, shape tensor.Tensor, target Target, centerIndex int) Operator {
	return Operator{Kind: kind, Shape: shape, Target: target, CenterIndex: centerIndex}
}

// Equal is structural equality.
func (o Operator) Equal(other Operator) bool {
	return o.Kind == other.Kind && o.Shape.Equal(other.Shape) &&
		o.Target == other.Target && o.CenterIndex == other.CenterIndex
}

// Less gives Operator a total order, lexicographic on (kind, shape, target,
// center index).
func (o Operator) Less(other Operator) bool {
	if o.Kind != other.Kind {
		return o.Kind < other.Kind
	}
	if !o.Shape.Equal(other.Shape) {
		return o.Shape.Less(other.Shape)
	}
	if o.Target != other.Target {
		return o.Target < other.Target
	}
	return o.CenterIndex < other.CenterIndex
}

// Component substitutes a concrete tensor.Component in place of the
// operator's tensor order, matching a specific Cartesian exponent pattern on
// the operator's own shape (used when the operator itself carries angular
// momentum, e.g. a multipole moment operator).
type Component struct {
	Kind        Kind
	Shape       tensor.Component
	Target      Target
	CenterIndex int
}

// Equal is structural equality.
func (c Component) Equal(other Component) bool {
	return c.Kind == other.Kind && c.Shape.Equal(other.Shape) &&
		c.Target == other.Target && c.CenterIndex == other.CenterIndex
}

// Key is an unambiguous string encoding of this operator component, suitable
// as a signature hash ingredient.
func (c Component) Key() string {
	return fmt.Sprintf("op(%d,%d,%d,%d,%d,%d)", c.Kind,
		c.Shape.Exp(tensor.X), c.Shape.Exp(tensor.Y), c.Shape.Exp(tensor.Z),
		c.Target, c.CenterIndex)
}

// Less gives Component a total order, lexicographic on (kind, shape, target,
// center index).
func (c Component) Less(other Component) bool {
	if c.Kind != other.Kind {
		return c.Kind < other.Kind
	}
	if !c.Shape.Equal(other.Shape) {
		return c.Shape.Less(other.Shape)
	}
	if c.Target != other.Target {
		return c.Target < other.Target
	}
	return c.CenterIndex < other.CenterIndex
}
