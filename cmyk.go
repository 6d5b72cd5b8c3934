package colortypes

// CMYK represents a four-channel ink color in cyan, magenta, yellow,
// key (black) order. There is no alpha variant; print pipelines
// composite before separation.
type CMYK[T Component] struct {
	C, M, Y, K T
}

// NewCMYK creates a CMYK value from its components in declared order.
func NewCMYK[T Component](c, m, y, k T) CMYK[T] {
	return CMYK[T]{C: c, M: m, Y: y, K: k}
}

// CMYKFromArray creates a CMYK value from [c, m, y, k].
func CMYKFromArray[T Component](a [4]T) CMYK[T] {
	return CMYK[T]{C: a[0], M: a[1], Y: a[2], K: a[3]}
}

// Array returns the components as [c, m, y, k].
func (c CMYK[T]) Array() [4]T {
	return [4]T{c.C, c.M, c.Y, c.K}
}

// Values returns the components in declared order.
func (c CMYK[T]) Values() (cy, m, y, k T) {
	return c.C, c.M, c.Y, c.K
}
