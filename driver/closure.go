package driver

import "github.com/go-quantum/recur/recgraph"

// CloseBraHRR runs the graph-level bra_hrr closure over seed (spec.md
// §4.3's `apply_bra_hrr(group, integrals_set)`).
func CloseBraHRR(d EriDriver, seed *T4CGroup) *recgraph.GroupGraph[T4C] {
	return recgraph.Close(seed,
		func(t *T4CTerm) *T4CDist { return d.ApplyBraHRR(t, nil) },
		func(c T4C) string { return c.Pattern().Key() })
}

// CloseKetHRR runs the graph-level ket_hrr closure over seed.
func CloseKetHRR(d EriDriver, seed *T4CGroup) *recgraph.GroupGraph[T4C] {
	return recgraph.Close(seed,
		func(t *T4CTerm) *T4CDist { return d.ApplyKetHRR(t, nil) },
		func(c T4C) string { return c.Pattern().Key() })
}

// CloseBraVRR runs the graph-level bra_vrr closure over seed.
func CloseBraVRR(d EriDriver, seed *T4CGroup) *recgraph.GroupGraph[T4C] {
	return recgraph.Close(seed,
		func(t *T4CTerm) *T4CDist { return d.ApplyBraVRR(t, nil) },
		func(c T4C) string { return c.Pattern().Key() })
}

// CloseKetVRR runs the graph-level ket_vrr closure over seed.
func CloseKetVRR(d EriDriver, seed *T4CGroup) *recgraph.GroupGraph[T4C] {
	return recgraph.Close(seed,
		func(t *T4CTerm) *T4CDist { return d.ApplyKetVRR(t, nil) },
		func(c T4C) string { return c.Pattern().Key() })
}

// CloseThreeCenterKetHRR runs the graph-level ket_hrr closure for the
// three-center driver.
func CloseThreeCenterKetHRR(d V3IElectronRepulsionDriver, seed *T3CGroup) *recgraph.GroupGraph[T3C] {
	return recgraph.Close(seed,
		func(t *T3CTerm) *T3CDist { return d.ApplyKetHRR(t, nil) },
		func(c T3C) string { return c.Pattern().Key() })
}

// CloseThreeCenterBraVRR runs the graph-level bra_vrr closure for the
// three-center driver.
func CloseThreeCenterBraVRR(d V3IElectronRepulsionDriver, seed *T3CGroup) *recgraph.GroupGraph[T3C] {
	return recgraph.Close(seed,
		func(t *T3CTerm) *T3CDist { return d.ApplyBraVRR(t, nil) },
		func(c T3C) string { return c.Pattern().Key() })
}

// CloseThreeCenterKetVRR runs the graph-level ket_vrr closure for the
// three-center driver.
func CloseThreeCenterKetVRR(d V3IElectronRepulsionDriver, seed *T3CGroup) *recgraph.GroupGraph[T3C] {
	return recgraph.Close(seed,
		func(t *T3CTerm) *T3CDist { return d.ApplyKetVRR(t, nil) },
		func(c T3C) string { return c.Pattern().Key() })
}

// CloseECPBraVRR runs the graph-level bra-side closure for the projected-ECP
// driver.
func CloseECPBraVRR(d V2IProjectedECPDriver, seed *T2CGroup) *recgraph.GroupGraph[T2C] {
	return recgraph.Close(seed,
		func(t *T2CTerm) *T2CDist { return d.ApplyBraVRR(t, nil) },
		func(c T2C) string { return c.Pattern().Key() })
}

// CloseECPKetVRR runs the graph-level ket-side closure for the projected-ECP
// driver.
func CloseECPKetVRR(d V2IProjectedECPDriver, seed *T2CGroup) *recgraph.GroupGraph[T2C] {
	return recgraph.Close(seed,
		func(t *T2CTerm) *T2CDist { return d.ApplyKetVRR(t, nil) },
		func(c T2C) string { return c.Pattern().Key() })
}

// CloseOneElectronBraHRR runs the graph-level bra_hrr closure for the
// nuclear-attraction/multipole driver.
func CloseOneElectronBraHRR(d OneElectronDriver, seed *TPNGroup) *recgraph.GroupGraph[TPN] {
	return recgraph.Close(seed,
		func(t *TPNTerm) *TPNDist { return d.ApplyBraHRR(t, nil) },
		func(c TPN) string { return c.Pattern().Key() })
}

// CloseOneElectronBraVRR runs the graph-level bra_vrr closure for the
// nuclear-attraction/multipole driver.
func CloseOneElectronBraVRR(d OneElectronDriver, seed *TPNGroup) *recgraph.GroupGraph[TPN] {
	return recgraph.Close(seed,
		func(t *TPNTerm) *TPNDist { return d.ApplyBraVRR(t, nil) },
		func(c TPN) string { return c.Pattern().Key() })
}
