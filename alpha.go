package colortypes

// The four-channel layouts come in every combination a consumer is
// likely to meet in the wild: alpha last (RGBA, BGRA) or alpha first
// (ARGB, ABGR), with straight or premultiplied color channels. The
// premultiplied variants differ only in type identity; whether the
// channels were actually scaled by alpha is the producer's contract
// and is never checked here.

// RGBA represents a four-channel color with straight (independent)
// alpha, in red, green, blue, alpha order.
type RGBA[T Component] struct {
	R, G, B, A T
}

// NewRGBA creates an RGBA value from its components in declared order.
func NewRGBA[T Component](r, g, b, a T) RGBA[T] {
	return RGBA[T]{R: r, G: g, B: b, A: a}
}

// RGBAFromArray creates an RGBA value from [r, g, b, a].
func RGBAFromArray[T Component](a [4]T) RGBA[T] {
	return RGBA[T]{R: a[0], G: a[1], B: a[2], A: a[3]}
}

// Array returns the components as [r, g, b, a].
func (c RGBA[T]) Array() [4]T {
	return [4]T{c.R, c.G, c.B, c.A}
}

// Values returns the components in declared order.
func (c RGBA[T]) Values() (r, g, b, a T) {
	return c.R, c.G, c.B, c.A
}

// BGRA represents a four-channel color with straight alpha, in blue,
// green, red, alpha order.
type BGRA[T Component] struct {
	B, G, R, A T
}

// NewBGRA creates a BGRA value from its components in declared order.
func NewBGRA[T Component](b, g, r, a T) BGRA[T] {
	return BGRA[T]{B: b, G: g, R: r, A: a}
}

// BGRAFromArray creates a BGRA value from [b, g, r, a].
func BGRAFromArray[T Component](a [4]T) BGRA[T] {
	return BGRA[T]{B: a[0], G: a[1], R: a[2], A: a[3]}
}

// Array returns the components as [b, g, r, a].
func (c BGRA[T]) Array() [4]T {
	return [4]T{c.B, c.G, c.R, c.A}
}

// Values returns the components in declared order.
func (c BGRA[T]) Values() (b, g, r, a T) {
	return c.B, c.G, c.R, c.A
}

// ARGB represents a four-channel color with straight alpha, in alpha,
// red, green, blue order.
type ARGB[T Component] struct {
	A, R, G, B T
}

// NewARGB creates an ARGB value from its components in declared order.
func NewARGB[T Component](a, r, g, b T) ARGB[T] {
	return ARGB[T]{A: a, R: r, G: g, B: b}
}

// ARGBFromArray creates an ARGB value from [a, r, g, b].
func ARGBFromArray[T Component](a [4]T) ARGB[T] {
	return ARGB[T]{A: a[0], R: a[1], G: a[2], B: a[3]}
}

// Array returns the components as [a, r, g, b].
func (c ARGB[T]) Array() [4]T {
	return [4]T{c.A, c.R, c.G, c.B}
}

// Values returns the components in declared order.
func (c ARGB[T]) Values() (a, r, g, b T) {
	return c.A, c.R, c.G, c.B
}

// ABGR represents a four-channel color with straight alpha, in alpha,
// blue, green, red order.
type ABGR[T Component] struct {
	A, B, G, R T
}

// NewABGR creates an ABGR value from its components in declared order.
func NewABGR[T Component](a, b, g, r T) ABGR[T] {
	return ABGR[T]{A: a, B: b, G: g, R: r}
}

// ABGRFromArray creates an ABGR value from [a, b, g, r].
func ABGRFromArray[T Component](a [4]T) ABGR[T] {
	return ABGR[T]{A: a[0], B: a[1], G: a[2], R: a[3]}
}

// Array returns the components as [a, b, g, r].
func (c ABGR[T]) Array() [4]T {
	return [4]T{c.A, c.B, c.G, c.R}
}

// Values returns the components in declared order.
func (c ABGR[T]) Values() (a, b, g, r T) {
	return c.A, c.B, c.G, c.R
}

// PremulRGBA represents a four-channel color in red, green, blue,
// alpha order whose color channels have already been scaled by alpha.
type PremulRGBA[T Component] struct {
	R, G, B, A T
}

// NewPremulRGBA creates a PremulRGBA value from its components in
// declared order. The components are stored as given; no
// premultiplication is performed.
func NewPremulRGBA[T Component](r, g, b, a T) PremulRGBA[T] {
	return PremulRGBA[T]{R: r, G: g, B: b, A: a}
}

// PremulRGBAFromArray creates a PremulRGBA value from [r, g, b, a].
func PremulRGBAFromArray[T Component](a [4]T) PremulRGBA[T] {
	return PremulRGBA[T]{R: a[0], G: a[1], B: a[2], A: a[3]}
}

// Array returns the components as [r, g, b, a].
func (c PremulRGBA[T]) Array() [4]T {
	return [4]T{c.R, c.G, c.B, c.A}
}

// Values returns the components in declared order.
func (c PremulRGBA[T]) Values() (r, g, b, a T) {
	return c.R, c.G, c.B, c.A
}

// PremulBGRA represents a four-channel premultiplied color in blue,
// green, red, alpha order.
type PremulBGRA[T Component] struct {
	B, G, R, A T
}

// NewPremulBGRA creates a PremulBGRA value from its components in
// declared order.
func NewPremulBGRA[T Component](b, g, r, a T) PremulBGRA[T] {
	return PremulBGRA[T]{B: b, G: g, R: r, A: a}
}

// PremulBGRAFromArray creates a PremulBGRA value from [b, g, r, a].
func PremulBGRAFromArray[T Component](a [4]T) PremulBGRA[T] {
	return PremulBGRA[T]{B: a[0], G: a[1], R: a[2], A: a[3]}
}

// Array returns the components as [b, g, r, a].
func (c PremulBGRA[T]) Array() [4]T {
	return [4]T{c.B, c.G, c.R, c.A}
}

// Values returns the components in declared order.
func (c PremulBGRA[T]) Values() (b, g, r, a T) {
	return c.B, c.G, c.R, c.A
}

// PremulARGB represents a four-channel premultiplied color in alpha,
// red, green, blue order.
type PremulARGB[T Component] struct {
	A, R, G, B T
}

// NewPremulARGB creates a PremulARGB value from its components in
// declared order.
func NewPremulARGB[T Component](a, r, g, b T) PremulARGB[T] {
	return PremulARGB[T]{A: a, R: r, G: g, B: b}
}

// PremulARGBFromArray creates a PremulARGB value from [a, r, g, b].
func PremulARGBFromArray[T Component](a [4]T) PremulARGB[T] {
	return PremulARGB[T]{A: a[0], R: a[1], G: a[2], B: a[3]}
}

// Array returns the components as [a, r, g, b].
func (c PremulARGB[T]) Array() [4]T {
	return [4]T{c.A, c.R, c.G, c.B}
}

// Values returns the components in declared order.
func (c PremulARGB[T]) Values() (a, r, g, b T) {
	return c.A, c.R, c.G, c.B
}

// PremulABGR represents a four-channel premultiplied color in alpha,
// blue, green, red order.
type PremulABGR[T Component] struct {
	A, B, G, R T
}

// NewPremulABGR creates a PremulABGR value from its components in
// declared order.
func NewPremulABGR[T Component](a, b, g, r T) PremulABGR[T] {
	return PremulABGR[T]{A: a, B: b, G: g, R: r}
}

// PremulABGRFromArray creates a PremulABGR value from [a, b, g, r].
func PremulABGRFromArray[T Component](a [4]T) PremulABGR[T] {
	return PremulABGR[T]{A: a[0], B: a[1], G: a[2], R: a[3]}
}

// Array returns the components as [a, b, g, r].
func (c PremulABGR[T]) Array() [4]T {
	return [4]T{c.A, c.B, c.G, c.R}
}

// Values returns the components in declared order.
func (c PremulABGR[T]) Values() (a, b, g, r T) {
	return c.A, c.B, c.G, c.R
}
