package driver

import (
	"github.com/go-quantum/recur/factor"
	"github.com/go-quantum/recur/frac"
	"github.com/go-quantum/recur/operator"
	"github.com/go-quantum/recur/recterm"
	"github.com/go-quantum/recur/tensor"
)

// GeomDriver implements geometric-derivative lifting (spec.md §4.3): it
// accepts only integrals carrying a prefix of the given Kind, Order and
// CenterIndex, and rewrites the derivative as the undecorated integral
// shifted up one unit on that center (scaled by the exponent-derivative
// factor TwoAlpha), minus the undecorated integral shifted down one unit
// scaled by the center's pre-shift exponent on that axis — the standard
// Gaussian-derivative identity the source's geom100/geom010/geom20
// generators apply term by term.
//
// Geom100, Geom010 and Geom20 are its three named instances (first
// derivative on the first targeted center, first derivative on the second
// targeted center, second derivative on the first targeted center); the
// per-integral-shape Apply* functions below are the same driver
// instantiated once per concrete integral layout.
type GeomDriver struct {
	Kind        operator.Kind
	CenterIndex int
	Order       int
}

// Geom100 is first-order geometric-derivative lifting on global center
// index 0 (the bra's first sub-center, or the whole bra when it has only
// one).
func Geom100(kind operator.Kind) GeomDriver { return GeomDriver{Kind: kind, CenterIndex: 0, Order: 1} }

// Geom010 is first-order geometric-derivative lifting on global center
// index 1 (the bra's second sub-center when present, or the ket's first
// sub-center for a one-center bra).
func Geom010(kind operator.Kind) GeomDriver { return GeomDriver{Kind: kind, CenterIndex: 1, Order: 1} }

// Geom20 is second-order geometric-derivative lifting on global center
// index 0.
func Geom20(kind operator.Kind) GeomDriver { return GeomDriver{Kind: kind, CenterIndex: 0, Order: 2} }

// twoAlphaFactor is the exponent-derivative scalar 2*alpha attached to the
// raised-center summand of a geometric-derivative expansion. Centers carry
// no numeric exponent in this symbolic layer, so the factor is named after
// the targeted center index rather than a concrete alpha value.
func twoAlphaFactor(centerIdx int) factor.Factor {
	name := factor.Name("2alpha" + string(rune('A'+centerIdx)))
	return factor.Scalar(name, "r2a")
}

// findPrefix locates the single prefix matching kind, order and centerIdx
// among prefixes, reporting its primary axis.
func findPrefix(prefixes []operator.Component, kind operator.Kind, order, centerIdx int) (tensor.Axis, bool) {
	for _, p := range prefixes {
		if p.Kind == kind && p.Shape.Order() == order && p.CenterIndex == centerIdx {
			return p.Shape.Primary()
		}
	}
	return 0, false
}

// geomExpansion builds the shared two-summand geometric-derivative
// expansion once the caller has located the axis, the pre-shift exponent n,
// and the raised/lowered predecessor integrals.
func geomExpansion[I recterm.Integral[I]](
	term *recterm.Term[I], centerIdx, n int,
	raised I, raisedOK bool,
	lowered I, loweredOK bool,
) *recterm.Expansion[I] {
	dist := recterm.NewExpansion(term.Clone())
	if raisedOK {
		t1 := term.Clone()
		t1.Replace(raised)
		t1.Add(twoAlphaFactor(centerIdx), frac.One)
		dist.AddSummand(t1)
	}
	if loweredOK && n > 0 {
		t2 := term.Clone()
		t2.Replace(lowered)
		t2.Scale(fracN(-n))
		dist.AddSummand(t2)
	}
	return dist
}

// ApplyFourCenter applies d to a four-center ERI term.
func ApplyFourCenter(d GeomDriver, term *T4CTerm) (*T4CDist, bool) {
	axis, ok := findPrefix(term.Integral.Prefixes, d.Kind, d.Order, d.CenterIndex)
	if !ok {
		return nil, false
	}
	base := term.Integral.Base()
	n := centerExpFourCenter(base, d.CenterIndex, axis)
	raised, rok := base.Shift(d.CenterIndex, axis, 1)
	lowered, lok := base.Shift(d.CenterIndex, axis, -1)
	return geomExpansion(term, d.CenterIndex, n, raised, rok, lowered, lok), true
}

func centerExpFourCenter(c T4C, centerIdx int, axis tensor.Axis) int {
	switch centerIdx {
	case 0:
		return c.Bra.Shape1.Exp(axis)
	case 1:
		return c.Bra.Shape2.Exp(axis)
	case 2:
		return c.Ket.Shape1.Exp(axis)
	default:
		return c.Ket.Shape2.Exp(axis)
	}
}

// ApplyThreeCenter applies d to a three-center ERI term.
func ApplyThreeCenter(d GeomDriver, term *T3CTerm) (*T3CDist, bool) {
	axis, ok := findPrefix(term.Integral.Prefixes, d.Kind, d.Order, d.CenterIndex)
	if !ok {
		return nil, false
	}
	base := term.Integral.Base()
	n := centerExpThreeCenter(base, d.CenterIndex, axis)
	raised, rok := base.Shift(d.CenterIndex, axis, 1)
	lowered, lok := base.Shift(d.CenterIndex, axis, -1)
	return geomExpansion(term, d.CenterIndex, n, raised, rok, lowered, lok), true
}

func centerExpThreeCenter(c T3C, centerIdx int, axis tensor.Axis) int {
	switch centerIdx {
	case 0:
		return c.Bra.Shape.Exp(axis)
	case 1:
		return c.Ket.Shape1.Exp(axis)
	default:
		return c.Ket.Shape2.Exp(axis)
	}
}

// ApplyTwoCenter applies d to a two-center (projected-ECP) term.
func ApplyTwoCenter(d GeomDriver, term *T2CTerm) (*T2CDist, bool) {
	axis, ok := findPrefix(term.Integral.Prefixes, d.Kind, d.Order, d.CenterIndex)
	if !ok {
		return nil, false
	}
	base := term.Integral.Base()
	var n int
	if d.CenterIndex == 0 {
		n = base.Bra.Shape.Exp(axis)
	} else {
		n = base.Ket.Shape.Exp(axis)
	}
	raised, rok := base.Shift(d.CenterIndex, axis, 1)
	lowered, lok := base.Shift(d.CenterIndex, axis, -1)
	return geomExpansion(term, d.CenterIndex, n, raised, rok, lowered, lok), true
}

// ApplyPairNuclear applies d to a nuclear-attraction/multipole term.
func ApplyPairNuclear(d GeomDriver, term *TPNTerm) (*TPNDist, bool) {
	axis, ok := findPrefix(term.Integral.Prefixes, d.Kind, d.Order, d.CenterIndex)
	if !ok {
		return nil, false
	}
	base := term.Integral.Base()
	var n int
	switch d.CenterIndex {
	case 0:
		n = base.Bra.Shape1.Exp(axis)
	case 1:
		n = base.Bra.Shape2.Exp(axis)
	default:
		n = base.Ket.Shape.Exp(axis)
	}
	raised, rok := base.Shift(d.CenterIndex, axis, 1)
	lowered, lok := base.Shift(d.CenterIndex, axis, -1)
	return geomExpansion(term, d.CenterIndex, n, raised, rok, lowered, lok), true
}
