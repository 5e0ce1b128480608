package recterm

import (
	"sort"
	"strings"

	"github.com/go-quantum/recur/factor"
)

// Signature is the canonical fingerprint of a Group (spec.md §3): the set
// of output integrals (roots, m-normalized), input integrals (summand
// integrals, m-normalized), and factors touched. Two groups with equal
// signatures are recursion patterns equivalent up to renaming of the
// auxiliary index, and produce identical emitted code.
type Signature[I Integral[I]] struct {
	Outputs []I
	Inputs  []I
	Factors []factor.Factor
}

// NewSignature builds a Signature from g without mutating g: it computes
// g's minimum auxiliary order locally and shifts copies of the roots and
// summand integrals down by it, so two groups differing only by an overall
// auxiliary offset collapse to the same signature regardless of whether
// either has actually been Reduce()d.
func NewSignature[I Integral[I]](g *Group[I]) Signature[I] {
	m := g.MinOrder()
	var outputs, inputs []I
	factorsSeen := make(map[factor.Factor]bool)
	for _, e := range g.Expansions {
		if out, ok := e.Root.Integral.ShiftOrder(-m); ok {
			outputs = appendUniqueIntegral(outputs, out)
		}
		for f := range e.Root.FactorOrders {
			factorsSeen[f] = true
		}
		for _, s := range e.Summands {
			if in, ok := s.Integral.ShiftOrder(-m); ok {
				inputs = appendUniqueIntegral(inputs, in)
			}
			for f := range s.FactorOrders {
				factorsSeen[f] = true
			}
		}
	}
	sort.Slice(outputs, func(i, j int) bool { return outputs[i].Less(outputs[j]) })
	sort.Slice(inputs, func(i, j int) bool { return inputs[i].Less(inputs[j]) })
	factors := make([]factor.Factor, 0, len(factorsSeen))
	for f := range factorsSeen {
		factors = append(factors, f)
	}
	sort.Slice(factors, func(i, j int) bool { return factors[i].Less(factors[j]) })
	return Signature[I]{Outputs: outputs, Inputs: inputs, Factors: factors}
}

// Key returns an unambiguous string encoding of the signature, used as the
// Repository's cache key.
func (s Signature[I]) Key() string {
	var b strings.Builder
	b.WriteString("O[")
	for _, o := range s.Outputs {
		b.WriteString(o.Key())
		b.WriteByte(';')
	}
	b.WriteString("]I[")
	for _, in := range s.Inputs {
		b.WriteString(in.Key())
		b.WriteByte(';')
	}
	b.WriteString("]F[")
	for _, f := range s.Factors {
		b.WriteString(f.Key())
		b.WriteByte(';')
	}
	b.WriteString("]")
	return b.String()
}

// Equal reports whether two signatures are the identical fingerprint.
func (s Signature[I]) Equal(o Signature[I]) bool {
	return s.Key() == o.Key()
}

// Less gives Signature a total order over its canonical Key, suitable for
// deterministic iteration over a Repository's signature map.
func (s Signature[I]) Less(o Signature[I]) bool {
	return s.Key() < o.Key()
}
