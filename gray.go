package colortypes

// Gray represents a single-channel grayscale color.
type Gray[T Component] struct {
	Y T
}

// NewGray creates a Gray value from its component.
func NewGray[T Component](y T) Gray[T] {
	return Gray[T]{Y: y}
}

// GrayFromArray creates a Gray value from [y].
func GrayFromArray[T Component](a [1]T) Gray[T] {
	return Gray[T]{Y: a[0]}
}

// Array returns the component as [y].
func (c Gray[T]) Array() [1]T {
	return [1]T{c.Y}
}

// Values returns the component.
func (c Gray[T]) Values() (y T) {
	return c.Y
}

// GrayAlpha represents a grayscale color with a straight alpha
// channel, in gray, alpha order.
type GrayAlpha[T Component] struct {
	Y, A T
}

// NewGrayAlpha creates a GrayAlpha value from its components in
// declared order.
func NewGrayAlpha[T Component](y, a T) GrayAlpha[T] {
	return GrayAlpha[T]{Y: y, A: a}
}

// GrayAlphaFromArray creates a GrayAlpha value from [y, a].
func GrayAlphaFromArray[T Component](a [2]T) GrayAlpha[T] {
	return GrayAlpha[T]{Y: a[0], A: a[1]}
}

// Array returns the components as [y, a].
func (c GrayAlpha[T]) Array() [2]T {
	return [2]T{c.Y, c.A}
}

// Values returns the components in declared order.
func (c GrayAlpha[T]) Values() (y, a T) {
	return c.Y, c.A
}
