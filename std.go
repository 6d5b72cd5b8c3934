package colortypes

import "image/color"

// Bridges to the standard library's image/color types, for the
// instantiations whose field layout matches a stdlib color exactly.
// Every function here is a pure field transfer: no scaling, no
// gamma, no alpha math. Note that color.RGBA and color.RGBA64 are
// alpha-premultiplied in the standard library, so they pair with the
// Premul layouts, while color.NRGBA and color.NRGBA64 pair with the
// straight-alpha ones.

// StdNRGBA converts to the standard library's straight-alpha 8-bit
// color.
func StdNRGBA(c RGBA[uint8]) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// FromStdNRGBA converts from the standard library's straight-alpha
// 8-bit color.
func FromStdNRGBA(c color.NRGBA) RGBA[uint8] {
	return RGBA[uint8]{R: c.R, G: c.G, B: c.B, A: c.A}
}

// StdNRGBA64 converts to the standard library's straight-alpha 16-bit
// color.
func StdNRGBA64(c RGBA[uint16]) color.NRGBA64 {
	return color.NRGBA64{R: c.R, G: c.G, B: c.B, A: c.A}
}

// FromStdNRGBA64 converts from the standard library's straight-alpha
// 16-bit color.
func FromStdNRGBA64(c color.NRGBA64) RGBA[uint16] {
	return RGBA[uint16]{R: c.R, G: c.G, B: c.B, A: c.A}
}

// StdRGBA converts to the standard library's premultiplied 8-bit
// color.
func StdRGBA(c PremulRGBA[uint8]) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// FromStdRGBA converts from the standard library's premultiplied
// 8-bit color.
func FromStdRGBA(c color.RGBA) PremulRGBA[uint8] {
	return PremulRGBA[uint8]{R: c.R, G: c.G, B: c.B, A: c.A}
}

// StdRGBA64 converts to the standard library's premultiplied 16-bit
// color.
func StdRGBA64(c PremulRGBA[uint16]) color.RGBA64 {
	return color.RGBA64{R: c.R, G: c.G, B: c.B, A: c.A}
}

// FromStdRGBA64 converts from the standard library's premultiplied
// 16-bit color.
func FromStdRGBA64(c color.RGBA64) PremulRGBA[uint16] {
	return PremulRGBA[uint16]{R: c.R, G: c.G, B: c.B, A: c.A}
}

// StdGray converts to the standard library's 8-bit grayscale color.
func StdGray(c Gray[uint8]) color.Gray {
	return color.Gray{Y: c.Y}
}

// FromStdGray converts from the standard library's 8-bit grayscale
// color.
func FromStdGray(c color.Gray) Gray[uint8] {
	return Gray[uint8]{Y: c.Y}
}

// StdGray16 converts to the standard library's 16-bit grayscale
// color.
func StdGray16(c Gray[uint16]) color.Gray16 {
	return color.Gray16{Y: c.Y}
}

// FromStdGray16 converts from the standard library's 16-bit grayscale
// color.
func FromStdGray16(c color.Gray16) Gray[uint16] {
	return Gray[uint16]{Y: c.Y}
}

// StdCMYK converts to the standard library's CMYK color.
func StdCMYK(c CMYK[uint8]) color.CMYK {
	return color.CMYK{C: c.C, M: c.M, Y: c.Y, K: c.K}
}

// FromStdCMYK converts from the standard library's CMYK color.
func FromStdCMYK(c color.CMYK) CMYK[uint8] {
	return CMYK[uint8]{C: c.C, M: c.M, Y: c.Y, K: c.K}
}
