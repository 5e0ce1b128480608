// Package driver implements the recursion drivers (spec.md §4.3): for a
// given target integral component, each driver returns the symbolic
// expansion into its immediate predecessors according to the integral
// family's recurrence law (horizontal/vertical Obara-Saika-Head-Gordon-
// Pople recursion, projected-ECP recursion, geometric-derivative lifting).
//
// Every driver is stateless: no instance fields change across calls
// (spec.md §5), grounded on the teacher's convention of small, side-effect-
// free algorithm types (e.g. gonum/graph/topo's Tarjan/Kahn implementations)
// that take their inputs explicitly and carry no mutable session state.
package driver

import (
	"github.com/go-quantum/recur/factor"
	"github.com/go-quantum/recur/frac"
	"github.com/go-quantum/recur/operator"
	"github.com/go-quantum/recur/recterm"
	"github.com/go-quantum/recur/tensor"
)

// half is the rational 1/2, used throughout the vertical recursion
// coefficients.
var half = frac.Fraction{Num: 1, Den: 2}

// minusHalf is -1/2.
var minusHalf = frac.Fraction{Num: -1, Den: 2}

func scaled(n int, f frac.Fraction) frac.Fraction {
	return f.Mul(frac.Fraction{Num: n, Den: 1})
}

func pbFactor(axis tensor.Axis) factor.Factor  { return factor.Vector(factor.PB, "rpb", axis) }
func qdFactor(axis tensor.Axis) factor.Factor  { return factor.Vector(factor.QD, "rqd", axis) }
func wpFactor(axis tensor.Axis) factor.Factor  { return factor.Vector(factor.WP, "rwp", axis) }
func wqFactor(axis tensor.Axis) factor.Factor  { return factor.Vector(factor.WQ, "rwq", axis) }
func abFactor(axis tensor.Axis) factor.Factor  { return factor.Vector(factor.AB, "rab", axis) }
func cdFactor(axis tensor.Axis) factor.Factor  { return factor.Vector(factor.CD, "rcd", axis) }
func paFactor(axis tensor.Axis) factor.Factor  { return factor.Vector(factor.PA, "rpa", axis) }
func zetaFactor() factor.Factor                { return factor.Scalar(factor.InvZeta, "fz") }
func etaFactor() factor.Factor                 { return factor.Scalar(factor.InvEta, "fe") }
func zetaEtaFactor() factor.Factor             { return factor.Scalar(factor.InvZetaEta, "fze") }
func rhoZeta2Factor() factor.Factor            { return factor.Scalar(factor.RhoOverZeta2, "frz2") }
func rhoEta2Factor() factor.Factor             { return factor.Scalar(factor.RhoOverEta2, "fre2") }

// isApplicable reports whether op matches the bare integrand kind with no
// prefix decorations — every driver's shared precondition (spec.md §4.3.2):
// a driver never fires on a prefixed (derivative-decorated) integral.
func isApplicable(integrand operator.Component, prefixes []operator.Component, kind operator.Kind) bool {
	return integrand.Kind == kind && len(prefixes) == 0
}

// applyOneStep runs a single-step driver function once along the given axis
// (the Apply* callers pass the relevant center's primary axis), and records
// every newly produced integral's Key into
// known. This is the term-level "apply_*" shape spec.md §4.3 describes:
// one recursion step plus set bookkeeping, not a full multi-level closure
// (the source's own apply_bra_hrr(term, integrals_set) test fixture only
// ever performs one level; full closure is a graph-level operation, built
// from repeated one-step application — see recgraph.Close).
func applyOneStep[I recterm.Integral[I]](
	root *recterm.Term[I],
	axis tensor.Axis,
	step func(*recterm.Term[I], tensor.Axis) (*recterm.Expansion[I], bool),
	known map[string]bool,
) *recterm.Expansion[I] {
	dist, ok := step(root, axis)
	if !ok {
		return recterm.NewExpansion(root.Clone())
	}
	if known != nil {
		for _, s := range dist.Summands {
			known[s.Integral.Key()] = true
		}
	}
	return dist
}
