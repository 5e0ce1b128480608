package integral

import "github.com/go-quantum/recur/operator"

// Integral bundles a bra collector, a ket collector, an integrand operator,
// an Obara-Saika auxiliary order M >= 0, and an ordered list of prefix
// operators (geometric/derivative decorations applied to the bare integral).
// It is the abstract, order-level sibling of Component: its Bra/Ket hold
// Tensor orders rather than concrete TensorComponents, and closure-level
// drivers use it to reason about "simpler" integrals without committing to a
// specific Cartesian component.
type Integral[B Side[B, BC], BC SideComponent[BC], K Side[K, KC], KC SideComponent[KC]] struct {
	Bra       B
	Ket       K
	Integrand operator.Operator
	M         int
	Prefixes  []operator.Operator
}

// New builds an Integral, reporting false if M is negative.
func New[B Side[B, BC], BC SideComponent[BC], K Side[K, KC], KC SideComponent[KC]](
	bra B, ket K, integrand operator.Operator, m int, prefixes []operator.Operator,
) (Integral[B, BC, K, KC], bool) {
	if m < 0 {
		return Integral[B, BC, K, KC]{}, false
	}
	return Integral[B, BC, K, KC]{
		Bra: bra, Ket: ket, Integrand: integrand, M: m,
		Prefixes: append([]operator.Operator(nil), prefixes...),
	}, true
}

// Centers is the number of bra+ket atomic centers (2 for a two-center
// integral, 3 for three-center, 4 for four-center).
func (in Integral[B, BC, K, KC]) Centers() int {
	return in.Bra.NumCenters() + in.Ket.NumCenters()
}

// Label concatenates the bra and ket's cosmetic angular-momentum labels.
func (in Integral[B, BC, K, KC]) Label() string {
	return in.Bra.Label() + in.Ket.Label()
}

// Shift adjusts the angular order on the given global center index (0-based,
// bra centers first, then ket centers) by delta, reporting false if the
// index is out of range or the result would be negative.
func (in Integral[B, BC, K, KC]) Shift(delta, centerIdx int) (Integral[B, BC, K, KC], bool) {
	nb := in.Bra.NumCenters()
	out := in
	out.Prefixes = append([]operator.Operator(nil), in.Prefixes...)
	if centerIdx < nb {
		b, ok := in.Bra.Shift(centerIdx, delta)
		if !ok {
			return Integral[B, BC, K, KC]{}, false
		}
		out.Bra = b
		return out, true
	}
	k, ok := in.Ket.Shift(centerIdx-nb, delta)
	if !ok {
		return Integral[B, BC, K, KC]{}, false
	}
	out.Ket = k
	return out, true
}

// ShiftOrder adjusts the auxiliary order M by delta, reporting false if the
// result would be negative.
func (in Integral[B, BC, K, KC]) ShiftOrder(delta int) (Integral[B, BC, K, KC], bool) {
	if in.M+delta < 0 {
		return Integral[B, BC, K, KC]{}, false
	}
	out := in
	out.Prefixes = append([]operator.Operator(nil), in.Prefixes...)
	out.M = in.M + delta
	return out, true
}

// ShiftPrefix adjusts the order of the i-th prefix operator by delta. If
// noscalar is true and the resulting order would be zero, the prefix is
// dropped from the list entirely instead of being kept as a scalar
// (order-0) decoration. Reports false if i is out of range or the result
// would be negative.
func (in Integral[B, BC, K, KC]) ShiftPrefix(delta, i int, noscalar bool) (Integral[B, BC, K, KC], bool) {
	if i < 0 || i >= len(in.Prefixes) {
		return Integral[B, BC, K, KC]{}, false
	}
	p := in.Prefixes[i]
	newOrder := p.Shape.Order() + delta
	if newOrder < 0 {
		return Integral[B, BC, K, KC]{}, false
	}
	out := in
	out.Prefixes = append([]operator.Operator(nil), in.Prefixes...)
	if noscalar && newOrder == 0 {
		out.Prefixes = append(out.Prefixes[:i:i], out.Prefixes[i+1:]...)
		return out, true
	}
	shape, _ := shapeOfOrder(newOrder)
	p.Shape = shape
	out.Prefixes[i] = p
	return out, true
}

// Base returns the same integral with all prefixes removed.
func (in Integral[B, BC, K, KC]) Base() Integral[B, BC, K, KC] {
	out := in
	out.Prefixes = nil
	return out
}

// Equal is structural equality on (bra, ket, integrand, m, prefixes).
func (in Integral[B, BC, K, KC]) Equal(o Integral[B, BC, K, KC]) bool {
	if !in.Bra.Equal(o.Bra) || !in.Ket.Equal(o.Ket) || !in.Integrand.Equal(o.Integrand) || in.M != o.M {
		return false
	}
	if len(in.Prefixes) != len(o.Prefixes) {
		return false
	}
	for i := range in.Prefixes {
		if !in.Prefixes[i].Equal(o.Prefixes[i]) {
			return false
		}
	}
	return true
}

// Less gives Integral a total order: lexicographic on
// (bra, ket, integrand, m, prefixes), matching spec.md §3.
func (in Integral[B, BC, K, KC]) Less(o Integral[B, BC, K, KC]) bool {
	if !in.Bra.Equal(o.Bra) {
		return in.Bra.Less(o.Bra)
	}
	if !in.Ket.Equal(o.Ket) {
		return in.Ket.Less(o.Ket)
	}
	if !in.Integrand.Equal(o.Integrand) {
		return in.Integrand.Less(o.Integrand)
	}
	if in.M != o.M {
		return in.M < o.M
	}
	for i := 0; i < len(in.Prefixes) && i < len(o.Prefixes); i++ {
		if !in.Prefixes[i].Equal(o.Prefixes[i]) {
			return in.Prefixes[i].Less(o.Prefixes[i])
		}
	}
	return len(in.Prefixes) < len(o.Prefixes)
}
