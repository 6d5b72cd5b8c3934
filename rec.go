package colortypes

// Broadcast and HDR color space layouts. As with SRGB and LinearSRGB,
// the encoding state (which transfer function, if any, has been
// applied) is part of the type identity, and this package never
// applies or removes one.

// Rec709 represents a color in the Rec.709/BT.709 color space, D65
// white point, without the BT.601 OETF applied (linear).
type Rec709[T Component] struct {
	R, G, B T
}

// NewRec709 creates a Rec709 value from its components in declared
// order.
func NewRec709[T Component](r, g, b T) Rec709[T] {
	return Rec709[T]{R: r, G: g, B: b}
}

// Rec709FromArray creates a Rec709 value from [r, g, b].
func Rec709FromArray[T Component](a [3]T) Rec709[T] {
	return Rec709[T]{R: a[0], G: a[1], B: a[2]}
}

// Array returns the components as [r, g, b].
func (c Rec709[T]) Array() [3]T {
	return [3]T{c.R, c.G, c.B}
}

// Values returns the components in declared order.
func (c Rec709[T]) Values() (r, g, b T) {
	return c.R, c.G, c.B
}

// EncodedRec709 represents a color in the Rec.709/BT.709 color space
// with the BT.601 OETF applied (nonlinear).
type EncodedRec709[T Component] struct {
	R, G, B T
}

// NewEncodedRec709 creates an EncodedRec709 value from its components
// in declared order.
func NewEncodedRec709[T Component](r, g, b T) EncodedRec709[T] {
	return EncodedRec709[T]{R: r, G: g, B: b}
}

// EncodedRec709FromArray creates an EncodedRec709 value from
// [r, g, b].
func EncodedRec709FromArray[T Component](a [3]T) EncodedRec709[T] {
	return EncodedRec709[T]{R: a[0], G: a[1], B: a[2]}
}

// Array returns the components as [r, g, b].
func (c EncodedRec709[T]) Array() [3]T {
	return [3]T{c.R, c.G, c.B}
}

// Values returns the components in declared order.
func (c EncodedRec709[T]) Values() (r, g, b T) {
	return c.R, c.G, c.B
}

// BT2020 represents a linear color in the BT.2020 color space, D65
// white point.
type BT2020[T Component] struct {
	R, G, B T
}

// NewBT2020 creates a BT2020 value from its components in declared
// order.
func NewBT2020[T Component](r, g, b T) BT2020[T] {
	return BT2020[T]{R: r, G: g, B: b}
}

// BT2020FromArray creates a BT2020 value from [r, g, b].
func BT2020FromArray[T Component](a [3]T) BT2020[T] {
	return BT2020[T]{R: a[0], G: a[1], B: a[2]}
}

// Array returns the components as [r, g, b].
func (c BT2020[T]) Array() [3]T {
	return [3]T{c.R, c.G, c.B}
}

// Values returns the components in declared order.
func (c BT2020[T]) Values() (r, g, b T) {
	return c.R, c.G, c.B
}

// EncodedBT2020 represents a color in the BT.2020 color space with
// the BT.2020 OETF applied (nonlinear).
type EncodedBT2020[T Component] struct {
	R, G, B T
}

// NewEncodedBT2020 creates an EncodedBT2020 value from its components
// in declared order.
func NewEncodedBT2020[T Component](r, g, b T) EncodedBT2020[T] {
	return EncodedBT2020[T]{R: r, G: g, B: b}
}

// EncodedBT2020FromArray creates an EncodedBT2020 value from
// [r, g, b].
func EncodedBT2020FromArray[T Component](a [3]T) EncodedBT2020[T] {
	return EncodedBT2020[T]{R: a[0], G: a[1], B: a[2]}
}

// Array returns the components as [r, g, b].
func (c EncodedBT2020[T]) Array() [3]T {
	return [3]T{c.R, c.G, c.B}
}

// Values returns the components in declared order.
func (c EncodedBT2020[T]) Values() (r, g, b T) {
	return c.R, c.G, c.B
}

// BT2100 represents a linear color in the BT.2100 color space (BT.2020
// primaries, D65 white point).
type BT2100[T Component] struct {
	R, G, B T
}

// NewBT2100 creates a BT2100 value from its components in declared
// order.
func NewBT2100[T Component](r, g, b T) BT2100[T] {
	return BT2100[T]{R: r, G: g, B: b}
}

// BT2100FromArray creates a BT2100 value from [r, g, b].
func BT2100FromArray[T Component](a [3]T) BT2100[T] {
	return BT2100[T]{R: a[0], G: a[1], B: a[2]}
}

// Array returns the components as [r, g, b].
func (c BT2100[T]) Array() [3]T {
	return [3]T{c.R, c.G, c.B}
}

// Values returns the components in declared order.
func (c BT2100[T]) Values() (r, g, b T) {
	return c.R, c.G, c.B
}

// EncodedBT2100PQ represents a color in the BT.2100 color space with
// the ST 2084 "PQ" (Perceptual Quantizer) transfer function applied.
type EncodedBT2100PQ[T Component] struct {
	R, G, B T
}

// NewEncodedBT2100PQ creates an EncodedBT2100PQ value from its
// components in declared order.
func NewEncodedBT2100PQ[T Component](r, g, b T) EncodedBT2100PQ[T] {
	return EncodedBT2100PQ[T]{R: r, G: g, B: b}
}

// EncodedBT2100PQFromArray creates an EncodedBT2100PQ value from
// [r, g, b].
func EncodedBT2100PQFromArray[T Component](a [3]T) EncodedBT2100PQ[T] {
	return EncodedBT2100PQ[T]{R: a[0], G: a[1], B: a[2]}
}

// Array returns the components as [r, g, b].
func (c EncodedBT2100PQ[T]) Array() [3]T {
	return [3]T{c.R, c.G, c.B}
}

// Values returns the components in declared order.
func (c EncodedBT2100PQ[T]) Values() (r, g, b T) {
	return c.R, c.G, c.B
}

// EncodedBT2100HLG represents a color in the BT.2100 color space with
// the HLG (Hybrid Log-Gamma) transfer function applied.
type EncodedBT2100HLG[T Component] struct {
	R, G, B T
}

// NewEncodedBT2100HLG creates an EncodedBT2100HLG value from its
// components in declared order.
func NewEncodedBT2100HLG[T Component](r, g, b T) EncodedBT2100HLG[T] {
	return EncodedBT2100HLG[T]{R: r, G: g, B: b}
}

// EncodedBT2100HLGFromArray creates an EncodedBT2100HLG value from
// [r, g, b].
func EncodedBT2100HLGFromArray[T Component](a [3]T) EncodedBT2100HLG[T] {
	return EncodedBT2100HLG[T]{R: a[0], G: a[1], B: a[2]}
}

// Array returns the components as [r, g, b].
func (c EncodedBT2100HLG[T]) Array() [3]T {
	return [3]T{c.R, c.G, c.B}
}

// Values returns the components in declared order.
func (c EncodedBT2100HLG[T]) Values() (r, g, b T) {
	return c.R, c.G, c.B
}

// ICtCpPQ represents a color in the ICtCp color space with PQ
// nonlinearity: a roughly perceptual space built on the BT.2020
// primaries for efficient HDR encoding, not an RGB space. I is
// intensity, Ct is the chroma-tritan axis, Cp the chroma-protan axis.
type ICtCpPQ[T Component] struct {
	I, Ct, Cp T
}

// NewICtCpPQ creates an ICtCpPQ value from its components in declared
// order.
func NewICtCpPQ[T Component](i, ct, cp T) ICtCpPQ[T] {
	return ICtCpPQ[T]{I: i, Ct: ct, Cp: cp}
}

// ICtCpPQFromArray creates an ICtCpPQ value from [i, ct, cp].
func ICtCpPQFromArray[T Component](a [3]T) ICtCpPQ[T] {
	return ICtCpPQ[T]{I: a[0], Ct: a[1], Cp: a[2]}
}

// Array returns the components as [i, ct, cp].
func (c ICtCpPQ[T]) Array() [3]T {
	return [3]T{c.I, c.Ct, c.Cp}
}

// Values returns the components in declared order.
func (c ICtCpPQ[T]) Values() (i, ct, cp T) {
	return c.I, c.Ct, c.Cp
}

// ICtCpHLG represents a color in the ICtCp color space with HLG
// nonlinearity.
type ICtCpHLG[T Component] struct {
	I, Ct, Cp T
}

// NewICtCpHLG creates an ICtCpHLG value from its components in
// declared order.
func NewICtCpHLG[T Component](i, ct, cp T) ICtCpHLG[T] {
	return ICtCpHLG[T]{I: i, Ct: ct, Cp: cp}
}

// ICtCpHLGFromArray creates an ICtCpHLG value from [i, ct, cp].
func ICtCpHLGFromArray[T Component](a [3]T) ICtCpHLG[T] {
	return ICtCpHLG[T]{I: a[0], Ct: a[1], Cp: a[2]}
}

// Array returns the components as [i, ct, cp].
func (c ICtCpHLG[T]) Array() [3]T {
	return [3]T{c.I, c.Ct, c.Cp}
}

// Values returns the components in declared order.
func (c ICtCpHLG[T]) Values() (i, ct, cp T) {
	return c.I, c.Ct, c.Cp
}
