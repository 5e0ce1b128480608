package integral

import "github.com/go-quantum/recur/center"

// TwoCenter is a bra=OneCenter, ket=OneCenter integral: the shape a
// projected-ECP matrix element (bra | U_l | ket) uses.
type TwoCenter = Integral[center.OneCenter, center.OneCenterComponent, center.OneCenter, center.OneCenterComponent]

// TwoCenterComp is the component-indexed variant of TwoCenter.
type TwoCenterComp = Component[center.OneCenterComponent, center.OneCenterComponent]

// ThreeCenter is a bra=OneCenter, ket=TwoCenterPair integral: the shape a
// three-center electron-repulsion integral (bra | ket1 ket2) uses.
type ThreeCenter = Integral[center.OneCenter, center.OneCenterComponent, center.TwoCenterPair, center.TwoCenterPairComponent]

// ThreeCenterComp is the component-indexed variant of ThreeCenter.
type ThreeCenterComp = Component[center.OneCenterComponent, center.TwoCenterPairComponent]

// FourCenter is a bra=TwoCenterPair, ket=TwoCenterPair integral: the shape a
// four-center electron-repulsion integral (bra1 bra2 | ket1 ket2) uses.
type FourCenter = Integral[center.TwoCenterPair, center.TwoCenterPairComponent, center.TwoCenterPair, center.TwoCenterPairComponent]

// FourCenterComp is the component-indexed variant of FourCenter.
type FourCenterComp = Component[center.TwoCenterPairComponent, center.TwoCenterPairComponent]

// PairNuclear is a bra=TwoCenterPair, ket=OneCenter integral: the shape a
// nuclear-attraction or multipole-moment integral (bra1 bra2 | O | C) uses,
// where the ket's single center carries either no angular momentum (a plain
// nuclear-attraction center) or the multipole operator's own order.
type PairNuclear = Integral[center.TwoCenterPair, center.TwoCenterPairComponent, center.OneCenter, center.OneCenterComponent]

// PairNuclearComp is the component-indexed variant of PairNuclear.
type PairNuclearComp = Component[center.TwoCenterPairComponent, center.OneCenterComponent]
