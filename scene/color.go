package scene

import "fmt"

// Color is one of the named colors a placed tile can carry.
type Color uint8

const (
	// Inherit leaves the color to an enclosing Colored node.
	Inherit Color = iota
	Green
	Blue
	Red
)

// String returns the color name as understood by OpenSCAD.
func (c Color) String() string {
	switch c {
	case Inherit:
		return "inherit"
	case Green:
		return "green"
	case Blue:
		return "blue"
	case Red:
		return "red"
	}
	return fmt.Sprintf("Color(%d)", uint8(c))
}

// Hex returns the display color as a #RRGGBB string.
// Inherit is shown as the neutral preview color.
func (c Color) Hex() string {
	switch c {
	case Green:
		return "#62AE19"
	case Blue:
		return "#80AFE1"
	case Red:
		return "#B64926"
	}
	return "#468966"
}
