package colortypes

// CIE and perceptual color space layouts. As everywhere in this
// package, the space name documents the producer's intent; nothing is
// converted or validated.

// CIEXYZ represents a color in the CIE XYZ color space with D65 white
// point.
type CIEXYZ[T Component] struct {
	X, Y, Z T
}

// NewCIEXYZ creates a CIEXYZ value from its components in declared
// order.
func NewCIEXYZ[T Component](x, y, z T) CIEXYZ[T] {
	return CIEXYZ[T]{X: x, Y: y, Z: z}
}

// CIEXYZFromArray creates a CIEXYZ value from [x, y, z].
func CIEXYZFromArray[T Component](a [3]T) CIEXYZ[T] {
	return CIEXYZ[T]{X: a[0], Y: a[1], Z: a[2]}
}

// Array returns the components as [x, y, z].
func (c CIEXYZ[T]) Array() [3]T {
	return [3]T{c.X, c.Y, c.Z}
}

// Values returns the components in declared order.
func (c CIEXYZ[T]) Values() (x, y, z T) {
	return c.X, c.Y, c.Z
}

// CIELab represents a color in the CIE L*a*b* color space: L is
// lightness (0 to 100), A is the green-red chroma difference, B is
// the blue-yellow chroma difference.
type CIELab[T Component] struct {
	L, A, B T
}

// NewCIELab creates a CIELab value from its components in declared
// order.
func NewCIELab[T Component](l, a, b T) CIELab[T] {
	return CIELab[T]{L: l, A: a, B: b}
}

// CIELabFromArray creates a CIELab value from [l, a, b].
func CIELabFromArray[T Component](a [3]T) CIELab[T] {
	return CIELab[T]{L: a[0], A: a[1], B: a[2]}
}

// Array returns the components as [l, a, b].
func (c CIELab[T]) Array() [3]T {
	return [3]T{c.L, c.A, c.B}
}

// Values returns the components in declared order.
func (c CIELab[T]) Values() (l, a, b T) {
	return c.L, c.A, c.B
}

// CIELCh represents a color in the CIE L*C*h color space, the polar
// form of CIE L*a*b*: L is lightness (0 to 100), C is chroma, H is
// hue.
type CIELCh[T Component] struct {
	L, C, H T
}

// NewCIELCh creates a CIELCh value from its components in declared
// order.
func NewCIELCh[T Component](l, c, h T) CIELCh[T] {
	return CIELCh[T]{L: l, C: c, H: h}
}

// CIELChFromArray creates a CIELCh value from [l, c, h].
func CIELChFromArray[T Component](a [3]T) CIELCh[T] {
	return CIELCh[T]{L: a[0], C: a[1], H: a[2]}
}

// Array returns the components as [l, c, h].
func (c CIELCh[T]) Array() [3]T {
	return [3]T{c.L, c.C, c.H}
}

// Values returns the components in declared order.
func (c CIELCh[T]) Values() (l, ch, h T) {
	return c.L, c.C, c.H
}

// Oklab represents a color in the Oklab color space: L is lightness
// (0 to 1), A and B are the chroma difference axes.
type Oklab[T Component] struct {
	L, A, B T
}

// NewOklab creates an Oklab value from its components in declared
// order.
func NewOklab[T Component](l, a, b T) Oklab[T] {
	return Oklab[T]{L: l, A: a, B: b}
}

// OklabFromArray creates an Oklab value from [l, a, b].
func OklabFromArray[T Component](a [3]T) Oklab[T] {
	return Oklab[T]{L: a[0], A: a[1], B: a[2]}
}

// Array returns the components as [l, a, b].
func (c Oklab[T]) Array() [3]T {
	return [3]T{c.L, c.A, c.B}
}

// Values returns the components in declared order.
func (c Oklab[T]) Values() (l, a, b T) {
	return c.L, c.A, c.B
}

// Oklch represents a color in the Oklch color space, the polar form
// of Oklab: L is lightness, C is chroma, H is hue.
type Oklch[T Component] struct {
	L, C, H T
}

// NewOklch creates an Oklch value from its components in declared
// order.
func NewOklch[T Component](l, c, h T) Oklch[T] {
	return Oklch[T]{L: l, C: c, H: h}
}

// OklchFromArray creates an Oklch value from [l, c, h].
func OklchFromArray[T Component](a [3]T) Oklch[T] {
	return Oklch[T]{L: a[0], C: a[1], H: a[2]}
}

// Array returns the components as [l, c, h].
func (c Oklch[T]) Array() [3]T {
	return [3]T{c.L, c.C, c.H}
}

// Values returns the components in declared order.
func (c Oklch[T]) Values() (l, ch, h T) {
	return c.L, c.C, c.H
}
