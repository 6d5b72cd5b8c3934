package colortypes

// Interop is the opt-in marker for foreign color types. A library
// whose internal color type is interchangeable with catalog layout L
// implements Interop[L] on it, and generic code written against
// "anything interoperable with L" can then accept it without either
// side depending on the other.
//
// Canonical must be a mechanical, lossless field transfer into L,
// typically through the layout's array or tuple form. It must not
// perform color math.
type Interop[L any] interface {
	// Canonical returns the value converted to its declared catalog
	// layout.
	Canonical() L
}

// Assignable is the inverse direction of Interop: a foreign color
// type implements Assignable[L] (on its pointer receiver) to accept a
// value of its declared catalog layout.
type Assignable[L any] interface {
	// SetCanonical overwrites the value from its declared catalog
	// layout.
	SetCanonical(L)
}

// Into converts any value declaring interop with layout L into an L.
func Into[L any](c Interop[L]) L {
	return c.Canonical()
}

// Assign fills a foreign color value from a catalog layout value.
func Assign[L any](dst Assignable[L], src L) {
	dst.SetCanonical(src)
}
