package vector

import (
	"fmt"
	"math"
)

// Magnitude returns the Euclidean norm sqrt(x² + y²), computed without
// intermediate overflow.
func Magnitude[T Float](v Vector2d[T]) T {
	return T(math.Hypot(float64(v.X), float64(v.Y)))
}

// Distance returns the Euclidean distance between a and b.
func Distance[T Float](a, b Vector2d[T]) T {
	return T(math.Hypot(float64(b.X)-float64(a.X), float64(b.Y)-float64(a.Y)))
}

// Normalize returns v scaled to unit length. It fails with
// ErrZeroLengthVector when the magnitude of v is zero.
func Normalize[T Float](v Vector2d[T]) (Vector2d[T], error) {
	m := Magnitude(v)
	if m == 0 {
		return Vector2d[T]{}, fmt.Errorf("cannot normalize a %w", ErrZeroLengthVector)
	}
	return Vector2d[T]{X: v.X / m, Y: v.Y / m}, nil
}

// Rotate rotates v counter-clockwise by theta radians.
func Rotate[T Float](v Vector2d[T], theta T) Vector2d[T] {
	sin, cos := math.Sincos(float64(theta))
	s, c := T(sin), T(cos)
	return Vector2d[T]{
		X: v.X*c - v.Y*s,
		Y: v.X*s + v.Y*c,
	}
}

// Dot returns the dot product of a and b.
func Dot[T Float](a, b Vector2d[T]) T {
	return a.X*b.X + a.Y*b.Y
}

// ProjectionOnto projects v onto other: (v·other / |other|²) · other.
//
// The zero check applies to the projection factor, so a v orthogonal to other
// also yields ErrZeroLengthVector. For a zero other the factor is 0/0 = NaN,
// which the factor check alone lets through as a NaN vector; other is therefore
// also checked directly and rejected with ErrZeroLengthVector.
func ProjectionOnto[T Float](v, other Vector2d[T]) (Vector2d[T], error) {
	m := Magnitude(other)
	factor := Dot(v, other) / (m * m)
	if factor == 0 || m == 0 {
		return Vector2d[T]{}, fmt.Errorf("cannot project on a %w", ErrZeroLengthVector)
	}
	return Vector2d[T]{X: other.X * factor, Y: other.Y * factor}, nil
}

// OrthogonalOn returns the component of v orthogonal to other, that is
// v - ProjectionOnto(v, other). Projection failures are propagated.
func OrthogonalOn[T Float](v, other Vector2d[T]) (Vector2d[T], error) {
	p, err := ProjectionOnto(v, other)
	if err != nil {
		return Vector2d[T]{}, fmt.Errorf("cannot get orthogonal vector: %w", err)
	}
	return v.Sub(p), nil
}

// Lerp interpolates from v.
//
// With other set it returns v + (other - v)·factor. Without other it returns
// v·factor. When reciprocal is true, 1/factor is used in place of factor in
// both forms; this divides by the factor rather than extrapolating.
func Lerp[T Float](v Vector2d[T], other *Vector2d[T], factor T, reciprocal bool) Vector2d[T] {
	if reciprocal {
		factor = 1 / factor
	}
	if other == nil {
		return v.MulScalar(factor)
	}
	return v.Add(other.Sub(v).MulScalar(factor))
}

// Round rounds both components to the nearest integer, halves away from zero.
func Round[T Float](v Vector2d[T]) Vector2d[T] {
	return Vector2d[T]{
		X: T(math.Round(float64(v.X))),
		Y: T(math.Round(float64(v.Y))),
	}
}

// ApproxEqual reports whether every component of a and b differs by at most
// tolerance.
func ApproxEqual[T Float](a, b Vector2d[T], tolerance T) bool {
	return math.Abs(float64(a.X-b.X)) <= float64(tolerance) &&
		math.Abs(float64(a.Y-b.Y)) <= float64(tolerance)
}
