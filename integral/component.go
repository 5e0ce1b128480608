package integral

import (
	"strconv"
	"strings"

	"github.com/go-quantum/recur/operator"
	"github.com/go-quantum/recur/tensor"
)

// Component is the component-indexed variant of Integral: concrete
// tensor.Components and operator.Components in place of their orders. This
// is the type recursion drivers actually operate on: bra_hrr, bra_vrr and
// friends take and return recterm.Term[Component[...]] values.
type Component[BC SideComponent[BC], KC SideComponent[KC]] struct {
	Bra       BC
	Ket       KC
	Integrand operator.Component
	M         int
	Prefixes  []operator.Component
}

// NewComponent builds a Component, reporting false if M is negative.
func NewComponent[BC SideComponent[BC], KC SideComponent[KC]](
	bra BC, ket KC, integrand operator.Component, m int, prefixes []operator.Component,
) (Component[BC, KC], bool) {
	if m < 0 {
		return Component[BC, KC]{}, false
	}
	return Component[BC, KC]{
		Bra: bra, Ket: ket, Integrand: integrand, M: m,
		Prefixes: append([]operator.Component(nil), prefixes...),
	}, true
}

// Centers is the number of bra+ket atomic centers.
func (c Component[BC, KC]) Centers() int {
	return c.Bra.NumCenters() + c.Ket.NumCenters()
}

// Label concatenates the bra and ket's cosmetic exponent labels. This is the
// canonical four-center label format spec.md §9 resolves the source's
// undeclared-name typo ("_bra_pair"/"_ket_pair") towards: _bra.Label() and
// _ket.Label().
func (c Component[BC, KC]) Label() string {
	return c.Bra.Label() + c.Ket.Label()
}

// Shift adjusts the exponent on the given axis at the given global center
// index (0-based, bra centers first) by delta.
func (c Component[BC, KC]) Shift(centerIdx int, axis tensor.Axis, delta int) (Component[BC, KC], bool) {
	nb := c.Bra.NumCenters()
	out := c
	out.Prefixes = append([]operator.Component(nil), c.Prefixes...)
	if centerIdx < nb {
		b, ok := c.Bra.Shift(centerIdx, axis, delta)
		if !ok {
			return Component[BC, KC]{}, false
		}
		out.Bra = b
		return out, true
	}
	k, ok := c.Ket.Shift(centerIdx-nb, axis, delta)
	if !ok {
		return Component[BC, KC]{}, false
	}
	out.Ket = k
	return out, true
}

// ShiftOrder adjusts the auxiliary order M by delta.
func (c Component[BC, KC]) ShiftOrder(delta int) (Component[BC, KC], bool) {
	if c.M+delta < 0 {
		return Component[BC, KC]{}, false
	}
	out := c
	out.Prefixes = append([]operator.Component(nil), c.Prefixes...)
	out.M = c.M + delta
	return out, true
}

// ShiftPrefix adjusts the order of the i-th prefix's tensor component by
// delta along that component's primary axis (the axis the derivative is
// carried on), dropping the prefix when noscalar is true and the result
// would be scalar. Reports false if i is out of range, the prefix is
// already scalar (no primary axis to adjust), or the result would be
// negative.
func (c Component[BC, KC]) ShiftPrefix(delta, i int, noscalar bool) (Component[BC, KC], bool) {
	if i < 0 || i >= len(c.Prefixes) {
		return Component[BC, KC]{}, false
	}
	p := c.Prefixes[i]
	axis, ok := p.Shape.Primary()
	if !ok {
		return Component[BC, KC]{}, false
	}
	shape, ok := p.Shape.Shift(axis, delta)
	if !ok {
		return Component[BC, KC]{}, false
	}
	out := c
	out.Prefixes = append([]operator.Component(nil), c.Prefixes...)
	if noscalar && shape.Order() == 0 {
		out.Prefixes = append(out.Prefixes[:i:i], out.Prefixes[i+1:]...)
		return out, true
	}
	p.Shape = shape
	out.Prefixes[i] = p
	return out, true
}

// Base returns the same component with all prefixes removed.
func (c Component[BC, KC]) Base() Component[BC, KC] {
	out := c
	out.Prefixes = nil
	return out
}

// RemovePrefix drops every prefix operator with the given kind, used by
// geometric-derivative drivers to strip a decoration once it has been
// converted into a shift on the base integral.
func (c Component[BC, KC]) RemovePrefix(kind operator.Kind) Component[BC, KC] {
	out := c
	out.Prefixes = make([]operator.Component, 0, len(c.Prefixes))
	for _, p := range c.Prefixes {
		if p.Kind != kind {
			out.Prefixes = append(out.Prefixes, p)
		}
	}
	return out
}

// Equal is structural equality on (bra, ket, integrand, m, prefixes).
func (c Component[BC, KC]) Equal(o Component[BC, KC]) bool {
	if !c.Bra.Equal(o.Bra) || !c.Ket.Equal(o.Ket) || !c.Integrand.Equal(o.Integrand) || c.M != o.M {
		return false
	}
	if len(c.Prefixes) != len(o.Prefixes) {
		return false
	}
	for i := range c.Prefixes {
		if !c.Prefixes[i].Equal(o.Prefixes[i]) {
			return false
		}
	}
	return true
}

// Less gives Component a total order, lexicographic on
// (bra, ket, integrand, m, prefixes).
func (c Component[BC, KC]) Less(o Component[BC, KC]) bool {
	if !c.Bra.Equal(o.Bra) {
		return c.Bra.Less(o.Bra)
	}
	if !c.Ket.Equal(o.Ket) {
		return c.Ket.Less(o.Ket)
	}
	if !c.Integrand.Equal(o.Integrand) {
		return c.Integrand.Less(o.Integrand)
	}
	if c.M != o.M {
		return c.M < o.M
	}
	for i := 0; i < len(c.Prefixes) && i < len(o.Prefixes); i++ {
		if !c.Prefixes[i].Equal(o.Prefixes[i]) {
			return c.Prefixes[i].Less(o.Prefixes[i])
		}
	}
	return len(c.Prefixes) < len(o.Prefixes)
}

// Key is an unambiguous string encoding of this component, combining the
// bra, ket, integrand and prefix Keys with the auxiliary order. Used as the
// signature hash ingredient in place of the cosmetic, collision-prone Label.
func (c Component[BC, KC]) Key() string {
	var b strings.Builder
	b.WriteString(c.Bra.Key())
	b.WriteByte('|')
	b.WriteString(c.Ket.Key())
	b.WriteString("|m")
	b.WriteString(strconv.Itoa(c.M))
	b.WriteByte('|')
	b.WriteString(c.Integrand.Key())
	for _, p := range c.Prefixes {
		b.WriteByte('|')
		b.WriteString(p.Key())
	}
	return b.String()
}

// GetM returns the auxiliary order, satisfying the recterm.Integral
// constraint.
func (c Component[BC, KC]) GetM() int { return c.M }

// SamePattern reports whether c and o share the same angular-identity
// Pattern, i.e. whether they would land in the same predecessor partition
// regardless of which specific Cartesian component each holds.
func (c Component[BC, KC]) SamePattern(o Component[BC, KC]) bool {
	return c.Pattern().Equal(o.Pattern())
}

// Pattern extracts this component's angular-identity key: the per-center
// orders, auxiliary order, and prefix kinds, ignoring which specific
// Cartesian component of each center's tensor is held. Drivers partition
// predecessor terms by Pattern so a RecursionGroup ends up with exactly one
// entry per distinct (integral-angular-pattern, m) (spec.md §4.3).
func (c Component[BC, KC]) Pattern() Pattern {
	kinds := make([]operator.Kind, len(c.Prefixes))
	for i, p := range c.Prefixes {
		kinds[i] = p.Kind
	}
	return Pattern{
		BraOrders: c.Bra.Orders(),
		KetOrders: c.Ket.Orders(),
		M:         c.M,
		Prefixes:  kinds,
	}
}

// Pattern returns this component's integral identity ignoring Cartesian
// component index: the angular-momentum-pattern key used to partition
// predecessor terms into one RecursionGroup entry per
// (integral-angular-pattern, m) (spec.md §4.3's predecessor-partitioning
// rule). Two components with the same Pattern differ only in which specific
// Cartesian component of each center's tensor they hold.
type Pattern struct {
	BraOrders []int
	KetOrders []int
	M         int
	Prefixes  []operator.Kind
}

// Equal is structural equality on Pattern.
func (p Pattern) Equal(o Pattern) bool {
	if p.M != o.M || len(p.BraOrders) != len(o.BraOrders) || len(p.KetOrders) != len(o.KetOrders) || len(p.Prefixes) != len(o.Prefixes) {
		return false
	}
	for i := range p.BraOrders {
		if p.BraOrders[i] != o.BraOrders[i] {
			return false
		}
	}
	for i := range p.KetOrders {
		if p.KetOrders[i] != o.KetOrders[i] {
			return false
		}
	}
	for i := range p.Prefixes {
		if p.Prefixes[i] != o.Prefixes[i] {
			return false
		}
	}
	return true
}

// Key is an unambiguous string encoding of the pattern, suitable as a map
// key for driver predecessor partitioning (spec.md §4.3).
func (p Pattern) Key() string {
	var b strings.Builder
	b.WriteString("B[")
	for _, o := range p.BraOrders {
		b.WriteString(strconv.Itoa(o))
		b.WriteByte(',')
	}
	b.WriteString("]K[")
	for _, o := range p.KetOrders {
		b.WriteString(strconv.Itoa(o))
		b.WriteByte(',')
	}
	b.WriteString("]m")
	b.WriteString(strconv.Itoa(p.M))
	b.WriteString("P[")
	for _, k := range p.Prefixes {
		b.WriteString(strconv.Itoa(int(k)))
		b.WriteByte(',')
	}
	b.WriteByte(']')
	return b.String()
}
