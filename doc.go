// Package colortypes provides a lean, stable set of plain color value
// types for interoperation between Go libraries.
//
// # Overview
//
// colortypes plays for color what gogpu/gputypes plays for GPU
// descriptors: a shared vocabulary of plain data types that otherwise
// unrelated libraries convert through, instead of every pair of
// libraries writing bespoke conversion glue. Each library converts
// once to and from this catalog and keeps using its own internal
// representation for actual work.
//
// The package deliberately contains no color science. There is no
// gamma conversion, no blending, no colorspace math; those belong to
// the consuming libraries. What it does contain:
//
//   - A catalog of layout types, one per channel arrangement
//     (RGB, BGRA, premultiplied variants, grayscale, HSV, ...),
//     each generic over a numeric component type.
//   - A lossless, order-preserving bridge between every layout and
//     its equivalent fixed-size array and multi-value tuple form.
//   - Opt-in interop interfaces so a foreign library's own color type
//     can declare which catalog layout it corresponds to.
//   - Field-exact bridges to the image/color types from the standard
//     library, for the instantiations that match them bit for bit.
//
// # Quick Start
//
//	import "github.com/gogpu/colortypes"
//
//	// Construct directly, or from an array or component tuple.
//	c := colortypes.RGB[uint8]{R: 255, G: 0, B: 128}
//	a := c.Array()                   // [3]uint8{255, 0, 128}
//	c2 := colortypes.RGBFromArray(a) // back again, losslessly
//	r, g, b := c.Values()
//
// # Layout Identity
//
// A layout's channel order is part of its type identity. RGB[uint8]
// and BGR[uint8] hold the same channels but are distinct types and
// never convert implicitly; a consumer that wants to reorder must do
// so explicitly. The same holds for the premultiplied-alpha variants
// and the encoded/linear sRGB variants: the distinction lives in the
// type, not in a runtime flag, and the package does not (and cannot)
// verify that a PremulRGBA value was actually premultiplied. That is
// the producer's contract.
//
// # Validity
//
// No constructor validates anything. Out-of-range or nonsensical
// component values are accepted silently; range semantics belong to
// the colorspace, which this package does not model. Every operation
// in the package is total and cannot fail at runtime.
package colortypes

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0

	// VersionPrerelease is the prerelease identifier
	VersionPrerelease = ""
)
