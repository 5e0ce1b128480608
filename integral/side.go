// Package integral implements Integral[Bra, Ket] and its component-indexed
// variant Component[BraComponent, KetComponent]: the bra/integrand/ket/
// auxiliary-order/prefix bundle every recursion driver operates on.
package integral

import "github.com/go-quantum/recur/tensor"

// Side is the constraint satisfied by a bra or ket collector at the abstract
// (Tensor-order) level: center.OneCenter and center.TwoCenterPair both
// implement Side[Self, SelfComponent]. This is the Go-generics analogue of
// the "gen::merge / gen::similar / gen::base" dispatch shim spec.md §9 asks
// implementers to replace with parametric generics plus a small trait set.
type Side[S any, C any] interface {
	Equal(S) bool
	Less(S) bool
	Label() string
	NumCenters() int
	Shift(idx, delta int) (S, bool)
	Components() []C
}

// SideComponent is the constraint satisfied by a bra or ket collector at the
// component-indexed level: center.OneCenterComponent and
// center.TwoCenterPairComponent both implement SideComponent[Self].
type SideComponent[C any] interface {
	Equal(C) bool
	Less(C) bool
	Label() string
	NumCenters() int
	Shift(idx int, axis tensor.Axis, delta int) (C, bool)
	// Orders returns the total angular-momentum order carried at each
	// atomic sub-center, used to build the angular-identity Pattern a
	// driver partitions predecessor terms by (spec.md §4.3).
	Orders() []int
	// Key returns an unambiguous string encoding of this component, safe
	// to concatenate with other Key values without collision (unlike
	// Label, which is a cosmetic, lossy-under-concatenation spelling).
	Key() string
}
