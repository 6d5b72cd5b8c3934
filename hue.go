package colortypes

// Hue-based layouts. Hue gets no circular-comparison or wrapping
// semantics here: like every other layout these are plain channel
// holders, and whether hue is degrees, radians or a normalized
// fraction is between producer and consumer.

// HSV represents a color as hue, saturation, value.
type HSV[T Component] struct {
	H, S, V T
}

// NewHSV creates an HSV value from its components in declared order.
func NewHSV[T Component](h, s, v T) HSV[T] {
	return HSV[T]{H: h, S: s, V: v}
}

// HSVFromArray creates an HSV value from [h, s, v].
func HSVFromArray[T Component](a [3]T) HSV[T] {
	return HSV[T]{H: a[0], S: a[1], V: a[2]}
}

// Array returns the components as [h, s, v].
func (c HSV[T]) Array() [3]T {
	return [3]T{c.H, c.S, c.V}
}

// Values returns the components in declared order.
func (c HSV[T]) Values() (h, s, v T) {
	return c.H, c.S, c.V
}

// HSL represents a color as hue, saturation, lightness.
type HSL[T Component] struct {
	H, S, L T
}

// NewHSL creates an HSL value from its components in declared order.
func NewHSL[T Component](h, s, l T) HSL[T] {
	return HSL[T]{H: h, S: s, L: l}
}

// HSLFromArray creates an HSL value from [h, s, l].
func HSLFromArray[T Component](a [3]T) HSL[T] {
	return HSL[T]{H: a[0], S: a[1], L: a[2]}
}

// Array returns the components as [h, s, l].
func (c HSL[T]) Array() [3]T {
	return [3]T{c.H, c.S, c.L}
}

// Values returns the components in declared order.
func (c HSL[T]) Values() (h, s, l T) {
	return c.H, c.S, c.L
}
