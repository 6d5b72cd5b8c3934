package colortypes

// RGB represents a three-channel color in red, green, blue order,
// with no claim about the underlying color space. Use SRGB or
// LinearSRGB when the encoding state matters to the consumer.
type RGB[T Component] struct {
	R, G, B T
}

// NewRGB creates an RGB value from its components in declared order.
func NewRGB[T Component](r, g, b T) RGB[T] {
	return RGB[T]{R: r, G: g, B: b}
}

// RGBFromArray creates an RGB value from [r, g, b].
func RGBFromArray[T Component](a [3]T) RGB[T] {
	return RGB[T]{R: a[0], G: a[1], B: a[2]}
}

// Array returns the components as [r, g, b].
func (c RGB[T]) Array() [3]T {
	return [3]T{c.R, c.G, c.B}
}

// Values returns the components in declared order.
func (c RGB[T]) Values() (r, g, b T) {
	return c.R, c.G, c.B
}

// BGR represents a three-channel color in blue, green, red order.
// It is a distinct type from RGB: reordering between the two is the
// consumer's job and is always explicit.
type BGR[T Component] struct {
	B, G, R T
}

// NewBGR creates a BGR value from its components in declared order.
func NewBGR[T Component](b, g, r T) BGR[T] {
	return BGR[T]{B: b, G: g, R: r}
}

// BGRFromArray creates a BGR value from [b, g, r].
func BGRFromArray[T Component](a [3]T) BGR[T] {
	return BGR[T]{B: a[0], G: a[1], R: a[2]}
}

// Array returns the components as [b, g, r].
func (c BGR[T]) Array() [3]T {
	return [3]T{c.B, c.G, c.R}
}

// Values returns the components in declared order.
func (c BGR[T]) Values() (b, g, r T) {
	return c.B, c.G, c.R
}

// SRGB represents a color in the encoded sRGB color space, i.e. with
// the sRGB OETF ("gamma compensation") applied. Colors loaded from
// 8-bit formats like PNG or JPEG, or picked in an image editor, are
// almost always SRGB[uint8].
type SRGB[T Component] struct {
	R, G, B T
}

// NewSRGB creates an SRGB value from its components in declared order.
func NewSRGB[T Component](r, g, b T) SRGB[T] {
	return SRGB[T]{R: r, G: g, B: b}
}

// SRGBFromArray creates an SRGB value from [r, g, b].
func SRGBFromArray[T Component](a [3]T) SRGB[T] {
	return SRGB[T]{R: a[0], G: a[1], B: a[2]}
}

// Array returns the components as [r, g, b].
func (c SRGB[T]) Array() [3]T {
	return [3]T{c.R, c.G, c.B}
}

// Values returns the components in declared order.
func (c SRGB[T]) Values() (r, g, b T) {
	return c.R, c.G, c.B
}

// LinearSRGB represents a color in the linear (decoded) sRGB color
// space, i.e. with the sRGB EOTF applied to decode it from SRGB.
// The encoding state is part of the type: this package never converts
// between SRGB and LinearSRGB, it only lets producers say which one
// they are handing over.
type LinearSRGB[T Component] struct {
	R, G, B T
}

// NewLinearSRGB creates a LinearSRGB value from its components in
// declared order.
func NewLinearSRGB[T Component](r, g, b T) LinearSRGB[T] {
	return LinearSRGB[T]{R: r, G: g, B: b}
}

// LinearSRGBFromArray creates a LinearSRGB value from [r, g, b].
func LinearSRGBFromArray[T Component](a [3]T) LinearSRGB[T] {
	return LinearSRGB[T]{R: a[0], G: a[1], B: a[2]}
}

// Array returns the components as [r, g, b].
func (c LinearSRGB[T]) Array() [3]T {
	return [3]T{c.R, c.G, c.B}
}

// Values returns the components in declared order.
func (c LinearSRGB[T]) Values() (r, g, b T) {
	return c.R, c.G, c.B
}
