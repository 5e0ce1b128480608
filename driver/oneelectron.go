package driver

import (
	"github.com/go-quantum/recur/frac"
	"github.com/go-quantum/recur/integral"
	"github.com/go-quantum/recur/operator"
	"github.com/go-quantum/recur/recterm"
	"github.com/go-quantum/recur/tensor"
)

// TPN is the nuclear-attraction/multipole integral component
// OneElectronDriver operates on: a two-center Gaussian pair bra against a
// single external operator center (nuclear charge, or multipole origin).
type TPN = integral.PairNuclearComp

type (
	TPNTerm  = recterm.Term[TPN]
	TPNDist  = recterm.Expansion[TPN]
	TPNGroup = recterm.Group[TPN]
)

// OneElectronDriver implements the one-electron recursion law shared by the
// nuclear-attraction ("1/r") and multipole-moment ("r^n") operators: bra
// horizontal recursion identical in shape to EriDriver.braHRR, and bra
// vertical recursion identical in shape to EriDriver.braVRR, but with no
// ket side to recurse (the operator center carries no angular momentum of
// its own to reduce). Because the source library treats these operators as
// simplified specializations of the same Obara-Saika ladder rather than as
// fully independent families, this driver is built by reusing EriDriver's
// bra-side shape rather than deriving an independent set of coefficients.
type OneElectronDriver struct {
	// Kind selects which one-electron operator this driver instance
	// matches: NuclearAttraction or Multipole.
	Kind operator.Kind
}

func (d OneElectronDriver) applicable(t *TPNTerm) bool {
	return isApplicable(t.Integral.Integrand, t.Integral.Prefixes, d.Kind)
}

// braHRR shrinks the bra's first sub-center (A), growing the second (B), the
// AB-distance correction term exactly mirroring EriDriver.braHRR.
func (d OneElectronDriver) braHRR(term *TPNTerm, axis tensor.Axis) (*TPNDist, bool) {
	if !d.applicable(term) {
		return nil, false
	}
	a := term.Integral.Bra.Shape1
	if a.Exp(axis) == 0 {
		return nil, false
	}
	in1, ok := term.Integral.Shift(0, axis, -1)
	if !ok {
		return nil, false
	}
	in1, ok = in1.Shift(1, axis, 1)
	if !ok {
		return nil, false
	}
	t1 := term.Clone()
	t1.Replace(in1)

	in2, ok := term.Integral.Shift(0, axis, -1)
	if !ok {
		return nil, false
	}
	t2 := term.Clone()
	t2.Replace(in2)
	t2.Add(abFactor(axis), frac.MinusOne)

	dist := recterm.NewExpansion(term.Clone())
	dist.AddSummand(t1)
	dist.AddSummand(t2)
	return dist, true
}

// braVRR vertically reduces the bra's second sub-center B, seeded by the PB
// distance vector, with the self-reduction pair weighted by the remaining
// exponent exactly as EriDriver.braVRR's bra-side terms. There is no ket
// cross term: the operator center carries no angular momentum to couple to.
func (d OneElectronDriver) braVRR(term *TPNTerm, axis tensor.Axis) (*TPNDist, bool) {
	if !d.applicable(term) {
		return nil, false
	}
	if term.Integral.Bra.Shape1.Order() != 0 {
		return nil, false
	}
	b := term.Integral.Bra.Shape2
	if b.Exp(axis) == 0 {
		return nil, false
	}
	bShift, ok := term.Integral.Shift(1, axis, -1)
	if !ok {
		return nil, false
	}

	dist := recterm.NewExpansion(term.Clone())

	t1 := term.Clone()
	t1.Replace(bShift)
	t1.Add(pbFactor(axis), frac.One)
	dist.AddSummand(t1)

	bShiftM, ok := bShift.ShiftOrder(1)
	if ok {
		t2 := term.Clone()
		t2.Replace(bShiftM)
		t2.Add(wpFactor(axis), frac.One)
		dist.AddSummand(t2)
	}

	selfOrder := bShift.Bra.Shape2.Exp(axis)
	if selfOrder > 0 {
		bShift2, ok := bShift.Shift(1, axis, -1)
		if ok {
			t3 := term.Clone()
			t3.Replace(bShift2)
			t3.Add(zetaFactor(), scaled(selfOrder, half))
			dist.AddSummand(t3)

			bShift2M, ok := bShift2.ShiftOrder(1)
			if ok {
				t4 := term.Clone()
				t4.Replace(bShift2M)
				t4.Add(rhoZeta2Factor(), scaled(selfOrder, minusHalf))
				dist.AddSummand(t4)
			}
		}
	}

	return dist, true
}

// ApplyBraHRR applies one bra_hrr step along the bra-A primary axis.
func (d OneElectronDriver) ApplyBraHRR(term *TPNTerm, known map[string]bool) *TPNDist {
	axis, ok := term.Integral.Bra.Shape1.Primary()
	if !ok {
		return recterm.NewExpansion(term.Clone())
	}
	return applyOneStep(term, axis, d.braHRR, known)
}

// ApplyBraVRR applies one bra_vrr step along the bra-B primary axis.
func (d OneElectronDriver) ApplyBraVRR(term *TPNTerm, known map[string]bool) *TPNDist {
	axis, ok := term.Integral.Bra.Shape2.Primary()
	if !ok {
		return recterm.NewExpansion(term.Clone())
	}
	return applyOneStep(term, axis, d.braVRR, known)
}
