package vector

import "errors"

var (
	// ErrDivisionByZero is returned by Div and DivScalar when the divisor
	// (the scalar, or either component of the divisor vector) is zero.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrZeroLengthVector is returned by operations that need a non-zero
	// magnitude or projection factor.
	ErrZeroLengthVector = errors.New("zero-length vector")
)
