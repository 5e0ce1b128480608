package driver

import (
	"github.com/go-quantum/recur/frac"
	"github.com/go-quantum/recur/integral"
	"github.com/go-quantum/recur/operator"
	"github.com/go-quantum/recur/recterm"
	"github.com/go-quantum/recur/tensor"
)

// T4C is the four-center electron-repulsion integral component EriDriver
// operates on: bra and ket each a TwoCenterPairComponent.
type T4C = integral.FourCenterComp

// T4CTerm, T4CDist and T4CGroup are the recursion-term algebra instantiated
// at four-center ERI.
type (
	T4CTerm  = recterm.Term[T4C]
	T4CDist  = recterm.Expansion[T4C]
	T4CGroup = recterm.Group[T4C]
)

// EriDriver implements the four-center electron-repulsion recursion law:
// horizontal recursion (HRR, Head-Gordon-Pople) on bra and ket, and
// vertical recursion (VRR, Obara-Saika) on bra and ket. Stateless.
type EriDriver struct{}

func (EriDriver) applicable(t *T4CTerm) bool {
	return isApplicable(t.Integral.Integrand, t.Integral.Prefixes, operator.Coulomb)
}

// braHRR implements bra_hrr(term, axis): shrinks the bra's first sub-center
// (A) by one unit of angular momentum along axis, growing the second (B)
// to compensate, plus a correction term scaled by the AB distance vector.
// Returns false ("not applicable") when A already has zero exponent on
// axis, or the term's integrand is not the bare Coulomb operator.
func (d EriDriver) braHRR(term *T4CTerm, axis tensor.Axis) (*T4CDist, bool) {
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

// ketHRR is braHRR's ket-side mirror: shrinks the ket's first sub-center
// (C), growing the second (D), with a CD-vector correction term.
func (d EriDriver) ketHRR(term *T4CTerm, axis tensor.Axis) (*T4CDist, bool) {
	if !d.applicable(term) {
		return nil, false
	}
	c := term.Integral.Ket.Shape1
	if c.Exp(axis) == 0 {
		return nil, false
	}
	in1, ok := term.Integral.Shift(2, axis, -1)
	if !ok {
		return nil, false
	}
	in1, ok = in1.Shift(3, axis, 1)
	if !ok {
		return nil, false
	}
	t1 := term.Clone()
	t1.Replace(in1)

	in2, ok := term.Integral.Shift(2, axis, -1)
	if !ok {
		return nil, false
	}
	t2 := term.Clone()
	t2.Replace(in2)
	t2.Add(cdFactor(axis), frac.MinusOne)

	dist := recterm.NewExpansion(term.Clone())
	dist.AddSummand(t1)
	dist.AddSummand(t2)
	return dist, true
}

// braVRR implements bra_vrr(term, axis): vertical Obara-Saika recursion on
// the bra's second sub-center B (the effective "bra" center once bra_hrr
// has emptied A). Emits the (PB),(WP) terms always, a further bra
// self-reduction pair weighted by the remaining exponent when defined, and
// a ket cross term weighted by the ket's D exponent on the same axis when
// defined. Not applicable unless A already holds zero angular momentum
// (the precondition bra_hrr's closure is expected to have established).
func (d EriDriver) braVRR(term *T4CTerm, axis tensor.Axis) (*T4CDist, bool) {
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

	ketOrder := term.Integral.Ket.Shape2.Exp(axis)
	if ketOrder > 0 {
		kShift, ok := bShift.Shift(3, axis, -1)
		if ok {
			kShiftM, ok := kShift.ShiftOrder(1)
			if ok {
				t5 := term.Clone()
				t5.Replace(kShiftM)
				t5.Add(zetaEtaFactor(), scaled(ketOrder, half))
				dist.AddSummand(t5)
			}
		}
	}

	return dist, true
}

// ketVRR is braVRR's ket-side mirror: vertical recursion on the ket's D
// sub-center. The self-reduction coefficients use the literal (not halved)
// remaining exponent, matching the source's eta-side convention.
func (d EriDriver) ketVRR(term *T4CTerm, axis tensor.Axis) (*T4CDist, bool) {
	if !d.applicable(term) {
		return nil, false
	}
	if term.Integral.Ket.Shape1.Order() != 0 {
		return nil, false
	}
	dd := term.Integral.Ket.Shape2
	if dd.Exp(axis) == 0 {
		return nil, false
	}
	dShift, ok := term.Integral.Shift(3, axis, -1)
	if !ok {
		return nil, false
	}

	dist := recterm.NewExpansion(term.Clone())

	t1 := term.Clone()
	t1.Replace(dShift)
	t1.Add(qdFactor(axis), frac.One)
	dist.AddSummand(t1)

	dShiftM, ok := dShift.ShiftOrder(1)
	if ok {
		t2 := term.Clone()
		t2.Replace(dShiftM)
		t2.Add(wqFactor(axis), frac.One)
		dist.AddSummand(t2)
	}

	selfOrder := dShift.Ket.Shape2.Exp(axis)
	if selfOrder > 0 {
		dShift2, ok := dShift.Shift(3, axis, -1)
		if ok {
			t3 := term.Clone()
			t3.Replace(dShift2)
			t3.Add(etaFactor(), frac.Fraction{Num: selfOrder, Den: 1})
			dist.AddSummand(t3)

			dShift2M, ok := dShift2.ShiftOrder(1)
			if ok {
				t4 := term.Clone()
				t4.Replace(dShift2M)
				t4.Add(rhoEta2Factor(), frac.Fraction{Num: -selfOrder, Den: 1})
				dist.AddSummand(t4)
			}
		}
	}

	braOrder := term.Integral.Bra.Shape2.Exp(axis)
	if braOrder > 0 {
		bShift, ok := dShift.Shift(1, axis, -1)
		if ok {
			bShiftM, ok := bShift.ShiftOrder(1)
			if ok {
				t5 := term.Clone()
				t5.Replace(bShiftM)
				t5.Add(zetaEtaFactor(), scaled(braOrder, half))
				dist.AddSummand(t5)
			}
		}
	}

	return dist, true
}

// ApplyBraHRR is the term-level driver entry point: applies one bra_hrr
// step along the bra-A primary axis, recording every newly produced
// integral's Key into known.
func (d EriDriver) ApplyBraHRR(term *T4CTerm, known map[string]bool) *T4CDist {
	axis, ok := term.Integral.Bra.Shape1.Primary()
	if !ok {
		return recterm.NewExpansion(term.Clone())
	}
	return applyOneStep(term, axis, d.braHRR, known)
}

// ApplyKetHRR is ApplyBraHRR's ket-side mirror.
func (d EriDriver) ApplyKetHRR(term *T4CTerm, known map[string]bool) *T4CDist {
	axis, ok := term.Integral.Ket.Shape1.Primary()
	if !ok {
		return recterm.NewExpansion(term.Clone())
	}
	return applyOneStep(term, axis, d.ketHRR, known)
}

// ApplyBraVRR applies one bra_vrr step along the bra-B primary axis.
func (d EriDriver) ApplyBraVRR(term *T4CTerm, known map[string]bool) *T4CDist {
	axis, ok := term.Integral.Bra.Shape2.Primary()
	if !ok {
		return recterm.NewExpansion(term.Clone())
	}
	return applyOneStep(term, axis, d.braVRR, known)
}

// ApplyKetVRR applies one ket_vrr step along the ket-D primary axis.
func (d EriDriver) ApplyKetVRR(term *T4CTerm, known map[string]bool) *T4CDist {
	axis, ok := term.Integral.Ket.Shape2.Primary()
	if !ok {
		return recterm.NewExpansion(term.Clone())
	}
	return applyOneStep(term, axis, d.ketVRR, known)
}
