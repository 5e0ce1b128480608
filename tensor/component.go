package tensor

import "strings"

// Component is a single Cartesian-exponent assignment (ax, ay, az) within a
// tensor of order ax+ay+az. Components are immutable; every would-be mutator
// returns a new value and an ok flag instead of mutating the receiver or
// panicking, matching the "optional return, not sentinel" convention used
// throughout this module (see the design notes in recur's top-level docs).
type Component struct {
	ax, ay, az int
}

// NewComponent builds a Component, reporting false if any exponent is
// negative.
func NewComponent(ax, ay, az int) (Component, bool) {
	if ax < 0 || ay < 0 || az < 0 {
		return Component{}, false
	}
	return Component{ax, ay, az}, true
}

// Exp returns the exponent carried on the given axis.
func (c Component) Exp(a Axis) int {
	switch a {
	case X:
		return c.ax
	case Y:
		return c.ay
	case Z:
		return c.az
	default:
		panic("tensor: invalid axis")
	}
}

// Order is the total angular momentum ax+ay+az.
func (c Component) Order() int {
	return c.ax + c.ay + c.az
}

// Similar reports whether two components share the same order; it does not
// require the same exponent pattern.
func (c Component) Similar(o Component) bool {
	return c.Order() == o.Order()
}

// Equal is structural equality on the three exponents.
func (c Component) Equal(o Component) bool {
	return c.ax == o.ax && c.ay == o.ay && c.az == o.az
}

// Less gives Component a total order, lexicographic on (ax, ay, az).
func (c Component) Less(o Component) bool {
	if c.ax != o.ax {
		return c.ax < o.ax
	}
	if c.ay != o.ay {
		return c.ay < o.ay
	}
	return c.az < o.az
}

// Shift adjusts the exponent on axis a by delta, reporting false if the
// result would be negative.
func (c Component) Shift(a Axis, delta int) (Component, bool) {
	switch a {
	case X:
		return NewComponent(c.ax+delta, c.ay, c.az)
	case Y:
		return NewComponent(c.ax, c.ay+delta, c.az)
	case Z:
		return NewComponent(c.ax, c.ay, c.az+delta)
	default:
		panic("tensor: invalid axis")
	}
}

// Primary is the first axis (in x, y, z order) carrying a non-zero exponent.
// The scalar component (order 0) has no primary axis; Primary returns X and
// ok=false in that case.
func (c Component) Primary() (axis Axis, ok bool) {
	switch {
	case c.ax != 0:
		return X, true
	case c.ay != 0:
		return Y, true
	case c.az != 0:
		return Z, true
	default:
		return X, false
	}
}

// Label is the canonical lower-case exponent spelling, e.g. (2,1,1) -> "xxyz".
func (c Component) Label() string {
	var b strings.Builder
	b.WriteString(strings.Repeat("x", c.ax))
	b.WriteString(strings.Repeat("y", c.ay))
	b.WriteString(strings.Repeat("z", c.az))
	return b.String()
}
