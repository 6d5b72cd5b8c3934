package colortypes

// GenericColor represents a three-channel color in a color space the
// catalog does not name. The producer and consumer agree on the space
// out of band; the catalog only carries the channels. Use this as the
// escape hatch when no named layout fits, rather than misusing a
// named one.
type GenericColor[T Component] struct {
	C1, C2, C3 T
}

// NewGenericColor creates a GenericColor value from its components in
// declared order.
func NewGenericColor[T Component](c1, c2, c3 T) GenericColor[T] {
	return GenericColor[T]{C1: c1, C2: c2, C3: c3}
}

// GenericColorFromArray creates a GenericColor value from
// [c1, c2, c3].
func GenericColorFromArray[T Component](a [3]T) GenericColor[T] {
	return GenericColor[T]{C1: a[0], C2: a[1], C3: a[2]}
}

// Array returns the components as [c1, c2, c3].
func (c GenericColor[T]) Array() [3]T {
	return [3]T{c.C1, c.C2, c.C3}
}

// Values returns the components in declared order.
func (c GenericColor[T]) Values() (c1, c2, c3 T) {
	return c.C1, c.C2, c.C3
}
