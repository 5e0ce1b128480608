package driver

import (
	"github.com/go-quantum/recur/frac"
	"github.com/go-quantum/recur/integral"
	"github.com/go-quantum/recur/operator"
	"github.com/go-quantum/recur/recterm"
	"github.com/go-quantum/recur/tensor"
)

// fracN is the integer fraction n/1, used by the ket-side self-reduction
// terms shared with EriDriver's unhalved convention.
func fracN(n int) frac.Fraction { return frac.Fraction{Num: n, Den: 1} }

// T3C is the three-center electron-repulsion integral component
// V3IElectronRepulsionDriver operates on: a single-center bra (bra|ket1 ket2).
type T3C = integral.ThreeCenterComp

type (
	T3CTerm  = recterm.Term[T3C]
	T3CDist  = recterm.Expansion[T3C]
	T3CGroup = recterm.Group[T3C]
)

// V3IElectronRepulsionDriver implements the three-center electron-repulsion
// recursion law. The bra holds one center, so there is no bra_hrr: bra
// angular momentum is only ever reduced by vertical recursion, seeded from
// the bra-to-P distance (PA) rather than the four-center driver's PB, since
// there is no second bra sub-center to shift onto. The ket side is an
// ordinary TwoCenterPair and reuses EriDriver's ket_hrr/ket_vrr shape.
type V3IElectronRepulsionDriver struct{}

func (V3IElectronRepulsionDriver) applicable(t *T3CTerm) bool {
	return isApplicable(t.Integral.Integrand, t.Integral.Prefixes, operator.Coulomb)
}

// ketHRR shrinks the ket's first sub-center (C), growing the second (D),
// exactly as EriDriver.ketHRR but over the three-center index layout (ket
// sub-centers sit at global indices 1 and 2, since the bra has only one).
func (d V3IElectronRepulsionDriver) ketHRR(term *T3CTerm, axis tensor.Axis) (*T3CDist, bool) {
	if !d.applicable(term) {
		return nil, false
	}
	c := term.Integral.Ket.Shape1
	if c.Exp(axis) == 0 {
		return nil, false
	}
	in1, ok := term.Integral.Shift(1, axis, -1)
	if !ok {
		return nil, false
	}
	in1, ok = in1.Shift(2, axis, 1)
	if !ok {
		return nil, false
	}
	t1 := term.Clone()
	t1.Replace(in1)

	in2, ok := term.Integral.Shift(1, axis, -1)
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

// braVRR vertically reduces the bra's single center A, seeded by the PA
// distance vector rather than the four-center driver's PB (there is no
// second bra sub-center here to carry that role).
func (d V3IElectronRepulsionDriver) braVRR(term *T3CTerm, axis tensor.Axis) (*T3CDist, bool) {
	if !d.applicable(term) {
		return nil, false
	}
	a := term.Integral.Bra.Shape
	if a.Exp(axis) == 0 {
		return nil, false
	}
	aShift, ok := term.Integral.Shift(0, axis, -1)
	if !ok {
		return nil, false
	}

	dist := recterm.NewExpansion(term.Clone())

	t1 := term.Clone()
	t1.Replace(aShift)
	t1.Add(paFactor(axis), frac.One)
	dist.AddSummand(t1)

	aShiftM, ok := aShift.ShiftOrder(1)
	if ok {
		t2 := term.Clone()
		t2.Replace(aShiftM)
		t2.Add(wpFactor(axis), frac.One)
		dist.AddSummand(t2)
	}

	selfOrder := aShift.Bra.Shape.Exp(axis)
	if selfOrder > 0 {
		aShift2, ok := aShift.Shift(0, axis, -1)
		if ok {
			t3 := term.Clone()
			t3.Replace(aShift2)
			t3.Add(zetaFactor(), scaled(selfOrder, half))
			dist.AddSummand(t3)

			aShift2M, ok := aShift2.ShiftOrder(1)
			if ok {
				t4 := term.Clone()
				t4.Replace(aShift2M)
				t4.Add(rhoZeta2Factor(), scaled(selfOrder, minusHalf))
				dist.AddSummand(t4)
			}
		}
	}

	ketOrder := term.Integral.Ket.Shape2.Exp(axis)
	if ketOrder > 0 {
		kShift, ok := aShift.Shift(2, axis, -1)
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

// ketVRR vertically reduces the ket's second sub-center D, the mirror of
// EriDriver.ketVRR over the three-center index layout.
func (d V3IElectronRepulsionDriver) ketVRR(term *T3CTerm, axis tensor.Axis) (*T3CDist, bool) {
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
	dShift, ok := term.Integral.Shift(2, axis, -1)
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
		dShift2, ok := dShift.Shift(2, axis, -1)
		if ok {
			t3 := term.Clone()
			t3.Replace(dShift2)
			t3.Add(etaFactor(), fracN(selfOrder))
			dist.AddSummand(t3)

			dShift2M, ok := dShift2.ShiftOrder(1)
			if ok {
				t4 := term.Clone()
				t4.Replace(dShift2M)
				t4.Add(rhoEta2Factor(), fracN(-selfOrder))
				dist.AddSummand(t4)
			}
		}
	}

	braOrder := term.Integral.Bra.Shape.Exp(axis)
	if braOrder > 0 {
		bShift, ok := dShift.Shift(0, axis, -1)
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

// ApplyKetHRR applies one ket_hrr step along the ket-C primary axis.
func (d V3IElectronRepulsionDriver) ApplyKetHRR(term *T3CTerm, known map[string]bool) *T3CDist {
	axis, ok := term.Integral.Ket.Shape1.Primary()
	if !ok {
		return recterm.NewExpansion(term.Clone())
	}
	return applyOneStep(term, axis, d.ketHRR, known)
}

// ApplyBraVRR applies one bra_vrr step along the bra's primary axis.
func (d V3IElectronRepulsionDriver) ApplyBraVRR(term *T3CTerm, known map[string]bool) *T3CDist {
	axis, ok := term.Integral.Bra.Shape.Primary()
	if !ok {
		return recterm.NewExpansion(term.Clone())
	}
	return applyOneStep(term, axis, d.braVRR, known)
}

// ApplyKetVRR applies one ket_vrr step along the ket-D primary axis.
func (d V3IElectronRepulsionDriver) ApplyKetVRR(term *T3CTerm, known map[string]bool) *T3CDist {
	axis, ok := term.Integral.Ket.Shape2.Primary()
	if !ok {
		return recterm.NewExpansion(term.Clone())
	}
	return applyOneStep(term, axis, d.ketVRR, known)
}
