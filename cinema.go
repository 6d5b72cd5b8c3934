package colortypes

// Cinema and wide-gamut color space layouts: the ACES family and the
// P3 variants. The P3 naming is a known trap, so each type spells out
// which white point it carries.

// ACEScg represents a color in the ACEScg color space (ACES AP1
// primaries, D60 white point), the common working space for CG
// rendering and compositing.
type ACEScg[T Component] struct {
	R, G, B T
}

// NewACEScg creates an ACEScg value from its components in declared
// order.
func NewACEScg[T Component](r, g, b T) ACEScg[T] {
	return ACEScg[T]{R: r, G: g, B: b}
}

// ACEScgFromArray creates an ACEScg value from [r, g, b].
func ACEScgFromArray[T Component](a [3]T) ACEScg[T] {
	return ACEScg[T]{R: a[0], G: a[1], B: a[2]}
}

// Array returns the components as [r, g, b].
func (c ACEScg[T]) Array() [3]T {
	return [3]T{c.R, c.G, c.B}
}

// Values returns the components in declared order.
func (c ACEScg[T]) Values() (r, g, b T) {
	return c.R, c.G, c.B
}

// ACES2065 represents a color in the ACES 2065-1 color space (ACES
// AP0 primaries, D60 white point), the archival interchange space.
type ACES2065[T Component] struct {
	R, G, B T
}

// NewACES2065 creates an ACES2065 value from its components in
// declared order.
func NewACES2065[T Component](r, g, b T) ACES2065[T] {
	return ACES2065[T]{R: r, G: g, B: b}
}

// ACES2065FromArray creates an ACES2065 value from [r, g, b].
func ACES2065FromArray[T Component](a [3]T) ACES2065[T] {
	return ACES2065[T]{R: a[0], G: a[1], B: a[2]}
}

// Array returns the components as [r, g, b].
func (c ACES2065[T]) Array() [3]T {
	return [3]T{c.R, c.G, c.B}
}

// Values returns the components in declared order.
func (c ACES2065[T]) Values() (r, g, b T) {
	return c.R, c.G, c.B
}

// ACEScc represents a color in the ACEScc color space (AP1 primaries,
// D60 white point) with its pure logarithmic transfer function
// applied, used for color grading.
type ACEScc[T Component] struct {
	R, G, B T
}

// NewACEScc creates an ACEScc value from its components in declared
// order.
func NewACEScc[T Component](r, g, b T) ACEScc[T] {
	return ACEScc[T]{R: r, G: g, B: b}
}

// ACESccFromArray creates an ACEScc value from [r, g, b].
func ACESccFromArray[T Component](a [3]T) ACEScc[T] {
	return ACEScc[T]{R: a[0], G: a[1], B: a[2]}
}

// Array returns the components as [r, g, b].
func (c ACEScc[T]) Array() [3]T {
	return [3]T{c.R, c.G, c.B}
}

// Values returns the components in declared order.
func (c ACEScc[T]) Values() (r, g, b T) {
	return c.R, c.G, c.B
}

// ACEScct represents a color in the ACEScct color space, like ACEScc
// but with a toe in the log transfer function so values can go
// negative.
type ACEScct[T Component] struct {
	R, G, B T
}

// NewACEScct creates an ACEScct value from its components in declared
// order.
func NewACEScct[T Component](r, g, b T) ACEScct[T] {
	return ACEScct[T]{R: r, G: g, B: b}
}

// ACEScctFromArray creates an ACEScct value from [r, g, b].
func ACEScctFromArray[T Component](a [3]T) ACEScct[T] {
	return ACEScct[T]{R: a[0], G: a[1], B: a[2]}
}

// Array returns the components as [r, g, b].
func (c ACEScct[T]) Array() [3]T {
	return [3]T{c.R, c.G, c.B}
}

// Values returns the components in declared order.
func (c ACEScct[T]) Values() (r, g, b T) {
	return c.R, c.G, c.B
}

// DisplayP3 represents a linear color in the Display P3 color space
// (P3 primaries, D65 white point), the P3 used by modern consumer
// displays.
type DisplayP3[T Component] struct {
	R, G, B T
}

// NewDisplayP3 creates a DisplayP3 value from its components in
// declared order.
func NewDisplayP3[T Component](r, g, b T) DisplayP3[T] {
	return DisplayP3[T]{R: r, G: g, B: b}
}

// DisplayP3FromArray creates a DisplayP3 value from [r, g, b].
func DisplayP3FromArray[T Component](a [3]T) DisplayP3[T] {
	return DisplayP3[T]{R: a[0], G: a[1], B: a[2]}
}

// Array returns the components as [r, g, b].
func (c DisplayP3[T]) Array() [3]T {
	return [3]T{c.R, c.G, c.B}
}

// Values returns the components in declared order.
func (c DisplayP3[T]) Values() (r, g, b T) {
	return c.R, c.G, c.B
}

// EncodedDisplayP3 represents a color in the Display P3 color space
// with the sRGB OETF applied (nonlinear).
type EncodedDisplayP3[T Component] struct {
	R, G, B T
}

// NewEncodedDisplayP3 creates an EncodedDisplayP3 value from its
// components in declared order.
func NewEncodedDisplayP3[T Component](r, g, b T) EncodedDisplayP3[T] {
	return EncodedDisplayP3[T]{R: r, G: g, B: b}
}

// EncodedDisplayP3FromArray creates an EncodedDisplayP3 value from
// [r, g, b].
func EncodedDisplayP3FromArray[T Component](a [3]T) EncodedDisplayP3[T] {
	return EncodedDisplayP3[T]{R: a[0], G: a[1], B: a[2]}
}

// Array returns the components as [r, g, b].
func (c EncodedDisplayP3[T]) Array() [3]T {
	return [3]T{c.R, c.G, c.B}
}

// Values returns the components in declared order.
func (c EncodedDisplayP3[T]) Values() (r, g, b T) {
	return c.R, c.G, c.B
}

// DCIP3 represents a color in the DCI-P3 color space (P3 primaries,
// D60 white point), the cinema projection P3. For the P3 on consumer
// displays, use DisplayP3.
type DCIP3[T Component] struct {
	R, G, B T
}

// NewDCIP3 creates a DCIP3 value from its components in declared
// order.
func NewDCIP3[T Component](r, g, b T) DCIP3[T] {
	return DCIP3[T]{R: r, G: g, B: b}
}

// DCIP3FromArray creates a DCIP3 value from [r, g, b].
func DCIP3FromArray[T Component](a [3]T) DCIP3[T] {
	return DCIP3[T]{R: a[0], G: a[1], B: a[2]}
}

// Array returns the components as [r, g, b].
func (c DCIP3[T]) Array() [3]T {
	return [3]T{c.R, c.G, c.B}
}

// Values returns the components in declared order.
func (c DCIP3[T]) Values() (r, g, b T) {
	return c.R, c.G, c.B
}

// DCIXYZPrime represents a color in the X'Y'Z' color space used for
// digital cinema mastering: CIE XYZ primaries with the DCI white
// point and a pure 2.6 gamma encoding applied.
type DCIXYZPrime[T Component] struct {
	X, Y, Z T
}

// NewDCIXYZPrime creates a DCIXYZPrime value from its components in
// declared order.
func NewDCIXYZPrime[T Component](x, y, z T) DCIXYZPrime[T] {
	return DCIXYZPrime[T]{X: x, Y: y, Z: z}
}

// DCIXYZPrimeFromArray creates a DCIXYZPrime value from [x, y, z].
func DCIXYZPrimeFromArray[T Component](a [3]T) DCIXYZPrime[T] {
	return DCIXYZPrime[T]{X: a[0], Y: a[1], Z: a[2]}
}

// Array returns the components as [x, y, z].
func (c DCIXYZPrime[T]) Array() [3]T {
	return [3]T{c.X, c.Y, c.Z}
}

// Values returns the components in declared order.
func (c DCIXYZPrime[T]) Values() (x, y, z T) {
	return c.X, c.Y, c.Z
}
