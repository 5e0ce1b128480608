package recterm

import (
	"sort"

	"github.com/go-quantum/recur/factor"
	"github.com/go-quantum/recur/frac"
)

// Term is one summand or root of a recursion expansion: an integral times a
// rational prefactor and a multiset of named factors, each raised to a
// positive integer order. The zero value is not meaningful; build with New.
type Term[I Integral[I]] struct {
	Integral     I
	FactorOrders map[factor.Factor]int
	Prefactor    frac.Fraction
}

// New builds a Term with an empty factor multiset. Reports false if
// prefactor is zero (a term with zero prefactor is not a term at all).
func New[I Integral[I]](in I, prefactor frac.Fraction) (*Term[I], bool) {
	if prefactor.IsZero() {
		return nil, false
	}
	return &Term[I]{Integral: in, FactorOrders: make(map[factor.Factor]int), Prefactor: prefactor}, true
}

// Clone returns an independently owned deep copy.
func (t *Term[I]) Clone() *Term[I] {
	out := &Term[I]{Integral: t.Integral, Prefactor: t.Prefactor, FactorOrders: make(map[factor.Factor]int, len(t.FactorOrders))}
	for f, k := range t.FactorOrders {
		out.FactorOrders[f] = k
	}
	return out
}

// Scale multiplies the prefactor by f in place.
func (t *Term[I]) Scale(f frac.Fraction) {
	t.Prefactor = t.Prefactor.Mul(f)
}

// Add is the canonical way to accumulate a factor: increments its stored
// order (creating it at order 1 if absent) and multiplies the prefactor by
// multiplier, in place.
func (t *Term[I]) Add(f factor.Factor, multiplier frac.Fraction) {
	t.FactorOrders[f]++
	t.Prefactor = t.Prefactor.Mul(multiplier)
}

// FactorOrder returns the stored order for f, or 0 if f is not present.
func (t *Term[I]) FactorOrder(f factor.Factor) int {
	return t.FactorOrders[f]
}

// Replace substitutes a new integral in place, leaving factors and prefactor
// untouched.
func (t *Term[I]) Replace(in I) {
	t.Integral = in
}

// Remove drops every factor with the given name from the multiset, in place.
func (t *Term[I]) Remove(name factor.Name) {
	for f := range t.FactorOrders {
		if f.Name == name {
			delete(t.FactorOrders, f)
		}
	}
}

// ClearPrefixes strips every prefix operator from the held integral, in
// place.
func (t *Term[I]) ClearPrefixes() {
	t.Integral = t.Integral.Base()
}

// ShiftOrder adjusts the held integral's auxiliary order by delta, in place.
// Reports false (leaving the term unchanged) if the shift is not defined.
func (t *Term[I]) ShiftOrder(delta int) bool {
	shifted, ok := t.Integral.ShiftOrder(delta)
	if !ok {
		return false
	}
	t.Integral = shifted
	return true
}

// Similar reports whether t and o share the same angular-identity pattern:
// same tensor-component pattern, ignoring which specific Cartesian
// component each integral holds (spec.md §4.2.1).
func (t *Term[I]) Similar(o *Term[I]) bool {
	return t.Integral.SamePattern(o.Integral)
}

// SameBase reports whether t and o hold equal integrals and equal factor
// multisets; prefactors may differ.
func (t *Term[I]) SameBase(o *Term[I]) bool {
	if !t.Integral.Equal(o.Integral) {
		return false
	}
	if len(t.FactorOrders) != len(o.FactorOrders) {
		return false
	}
	for f, k := range t.FactorOrders {
		if o.FactorOrders[f] != k {
			return false
		}
	}
	return true
}

// Equal is full structural equality: same integral, same factor multiset,
// same prefactor.
func (t *Term[I]) Equal(o *Term[I]) bool {
	return t.SameBase(o) && t.Prefactor.Equal(o.Prefactor)
}

type factorOrder struct {
	Factor factor.Factor
	Order  int
}

// sortedFactors returns the term's factor multiset as a slice in Factor's
// total order, giving Less a deterministic tiebreak over the underlying map.
func (t *Term[I]) sortedFactors() []factorOrder {
	out := make([]factorOrder, 0, len(t.FactorOrders))
	for f, k := range t.FactorOrders {
		out = append(out, factorOrder{f, k})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Factor.Less(out[j].Factor) })
	return out
}

// Less gives Term a total order, lexicographic on (integral, factor_orders,
// prefactor), matching spec.md §4.2.1.
func (t *Term[I]) Less(o *Term[I]) bool {
	if !t.Integral.Equal(o.Integral) {
		return t.Integral.Less(o.Integral)
	}
	af, bf := t.sortedFactors(), o.sortedFactors()
	for i := 0; i < len(af) && i < len(bf); i++ {
		if !af[i].Factor.Equal(bf[i].Factor) {
			return af[i].Factor.Less(bf[i].Factor)
		}
		if af[i].Order != bf[i].Order {
			return af[i].Order < bf[i].Order
		}
	}
	if len(af) != len(bf) {
		return len(af) < len(bf)
	}
	return t.Prefactor.Less(o.Prefactor)
}
