package colortypes

// Component is the constraint satisfied by any type that can fill a
// color channel: a plain, copyable numeric value of any standard
// integer or floating-point width.
//
// The constraint is purely compile-time. A type outside this set
// simply cannot instantiate a catalog layout; there is no runtime
// check anywhere in the package.
type Component interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int |
		~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint |
		~float32 | ~float64
}
