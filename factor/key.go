package factor

import (
	"fmt"

	"github.com/go-quantum/recur/tensor"
)

// Key is an unambiguous string encoding of this factor, suitable as a
// signature hash ingredient. Unlike a cosmetic label, it never collides
// across factors with differing shapes.
func (f Factor) Key() string {
	if !f.HasShape {
		return fmt.Sprintf("f(%s,%s)", f.Name, f.Label)
	}
	return fmt.Sprintf("f(%s,%s,%d,%d,%d)", f.Name, f.Label,
		f.Shape.Exp(tensor.X), f.Shape.Exp(tensor.Y), f.Shape.Exp(tensor.Z))
}
