package integral

import (
	"github.com/go-quantum/recur/operator"
	"github.com/go-quantum/recur/tensor"
)

func shapeOfOrder(order int) (tensor.Tensor, bool) {
	return tensor.NewTensor(order)
}

// operatorComponents expands an operator's tensor shape into one
// operator.Component per Cartesian component (a single scalar component for
// a rank-0 operator such as plain Coulomb).
func operatorComponents(op operator.Operator) []operator.Component {
	comps := op.Shape.Components()
	out := make([]operator.Component, len(comps))
	for i, c := range comps {
		out[i] = operator.Component{Kind: op.Kind, Shape: c, Target: op.Target, CenterIndex: op.CenterIndex}
	}
	return out
}

// prefixComponentCombos is the Cartesian product, across every prefix
// operator in order, of each prefix's own component expansion.
func prefixComponentCombos(prefixes []operator.Operator) [][]operator.Component {
	combos := [][]operator.Component{{}}
	for _, p := range prefixes {
		pcs := operatorComponents(p)
		next := make([][]operator.Component, 0, len(combos)*len(pcs))
		for _, combo := range combos {
			for _, pc := range pcs {
				nc := make([]operator.Component, len(combo), len(combo)+1)
				copy(nc, combo)
				nc = append(nc, pc)
				next = append(next, nc)
			}
		}
		combos = next
	}
	return combos
}

// Components is the Cartesian product of the bra's component expansion, the
// ket's component expansion, the integrand's component expansion, and each
// prefix's component expansion (spec.md §3, property 4).
func (in Integral[B, BC, K, KC]) Components() []Component[BC, KC] {
	braCs := in.Bra.Components()
	ketCs := in.Ket.Components()
	opCs := operatorComponents(in.Integrand)
	prefixCombos := prefixComponentCombos(in.Prefixes)

	out := make([]Component[BC, KC], 0, len(braCs)*len(ketCs)*len(opCs)*len(prefixCombos))
	for _, bc := range braCs {
		for _, kc := range ketCs {
			for _, oc := range opCs {
				for _, pc := range prefixCombos {
					out = append(out, Component[BC, KC]{Bra: bc, Ket: kc, Integrand: oc, M: in.M, Prefixes: pc})
				}
			}
		}
	}
	return out
}

// DiagComponents pairs bra component i with ket component i only (callers
// use this when the integral is known to be bra=ket shaped; it truncates to
// the shorter of the two component lists).
func (in Integral[B, BC, K, KC]) DiagComponents() []Component[BC, KC] {
	braCs := in.Bra.Components()
	ketCs := in.Ket.Components()
	n := len(braCs)
	if len(ketCs) < n {
		n = len(ketCs)
	}
	opCs := operatorComponents(in.Integrand)
	prefixCombos := prefixComponentCombos(in.Prefixes)

	out := make([]Component[BC, KC], 0, n*len(opCs)*len(prefixCombos))
	for i := 0; i < n; i++ {
		for _, oc := range opCs {
			for _, pc := range prefixCombos {
				out = append(out, Component[BC, KC]{Bra: braCs[i], Ket: ketCs[i], Integrand: oc, M: in.M, Prefixes: pc})
			}
		}
	}
	return out
}
