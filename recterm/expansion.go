package recterm

// Expansion (the source's "distribution") is a root term plus an ordered
// sequence of summand terms, semantically root = Σ summands. Summands are
// kept in the order a driver produced them; no canonical sort is required
// for correctness (spec.md §3).
type Expansion[I Integral[I]] struct {
	Root     *Term[I]
	Summands []*Term[I]
}

// NewExpansion builds an Expansion with no summands yet.
func NewExpansion[I Integral[I]](root *Term[I]) *Expansion[I] {
	return &Expansion[I]{Root: root}
}

// AddSummand appends a predecessor term, in place.
func (e *Expansion[I]) AddSummand(t *Term[I]) {
	e.Summands = append(e.Summands, t)
}

// Clone returns an independently owned deep copy.
func (e *Expansion[I]) Clone() *Expansion[I] {
	out := &Expansion[I]{Root: e.Root.Clone(), Summands: make([]*Term[I], len(e.Summands))}
	for i, s := range e.Summands {
		out.Summands[i] = s.Clone()
	}
	return out
}

// RootEqual reports whether e and o target the same integral identity,
// the "root equality" spec.md §4.2.3's Merge skips duplicates by.
func (e *Expansion[I]) RootEqual(o *Expansion[I]) bool {
	return e.Root.Integral.Equal(o.Root.Integral)
}

// Similar reports whether e and o share the same root angular-identity
// pattern.
func (e *Expansion[I]) Similar(o *Expansion[I]) bool {
	return e.Root.Similar(o.Root)
}

// MinOrder returns the minimum auxiliary order occurring anywhere in this
// expansion (root and every summand).
func (e *Expansion[I]) MinOrder() int {
	m := e.Root.Integral.GetM()
	for _, s := range e.Summands {
		if o := s.Integral.GetM(); o < m {
			m = o
		}
	}
	return m
}

// ShiftOrder adjusts the auxiliary order of the root and every summand by
// delta, in place. Reports false (leaving the expansion unchanged) if any
// shift is not defined.
func (e *Expansion[I]) ShiftOrder(delta int) bool {
	clone := e.Clone()
	if !clone.Root.ShiftOrder(delta) {
		return false
	}
	for _, s := range clone.Summands {
		if !s.ShiftOrder(delta) {
			return false
		}
	}
	*e = *clone
	return true
}

// Integrals returns the root's and every summand's integral, in order
// (root first).
func (e *Expansion[I]) Integrals() []I {
	out := make([]I, 0, len(e.Summands)+1)
	out = append(out, e.Root.Integral)
	for _, s := range e.Summands {
		out = append(out, s.Integral)
	}
	return out
}
