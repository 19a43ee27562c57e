package vector

// Numeric is the capability set every component type must satisfy. Addition,
// subtraction, multiplication, division, equality against zero and display
// formatting are all provided by the language for these types.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~float32 | ~float64
}

// Float narrows Numeric to floating-point components. Geometric operations
// (magnitude, rotation, normalization, ...) are only available for these.
type Float interface {
	~float32 | ~float64
}
