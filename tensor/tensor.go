package tensor

import "fmt"

// angularLetters is the 17-letter angular-momentum alphabet used for
// cosmetic Tensor labels: S, P, D, F, G, H, I, K, L, M, N, O, Q, R, T, U, V.
// Letter "J" is traditionally skipped to avoid confusion with total angular
// momentum quantum numbers in the chemistry literature; the generator
// preserves that convention.
const angularLetters = "SPDFGHIKLMNOQRTUV"

// Tensor is an angular-momentum order, abstract until expanded into its
// Cartesian Components.
type Tensor struct {
	order int
}

// NewTensor builds a Tensor of the given order, reporting false if order is
// negative.
func NewTensor(order int) (Tensor, bool) {
	if order < 0 {
		return Tensor{}, false
	}
	return Tensor{order}, true
}

// Order returns the tensor's angular-momentum order.
func (t Tensor) Order() int { return t.order }

// Equal is value equality on order.
func (t Tensor) Equal(o Tensor) bool { return t.order == o.order }

// Less orders tensors by increasing order.
func (t Tensor) Less(o Tensor) bool { return t.order < o.order }

// Label returns the cosmetic angular-momentum letter for this tensor's
// order: one of the 17-letter alphabet, or the fallback "l<n>" for order
// >= len(angularLetters).
func (t Tensor) Label() string {
	if t.order < len(angularLetters) {
		return string(angularLetters[t.order])
	}
	return fmt.Sprintf("l%d", t.order)
}

// Components expands the tensor into all Components of its order, in
// canonical order: the x exponent runs from n down to 0 and, for each x
// exponent, the y exponent runs from its maximum down to 0, with z taking
// the remainder. This yields x^n, x^(n-1)y, x^(n-1)z,
// x^(n-2)y^2, x^(n-2)yz, x^(n-2)z^2, ... without duplicates, deterministically
// and reproducibly across invocations (property 1 in the testable-properties
// list).
func (t Tensor) Components() []Component {
	out := make([]Component, 0, (t.order+1)*(t.order+2)/2)
	for ax := t.order; ax >= 0; ax-- {
		for ay := t.order - ax; ay >= 0; ay-- {
			az := t.order - ax - ay
			c, _ := NewComponent(ax, ay, az)
			out = append(out, c)
		}
	}
	return out
}
