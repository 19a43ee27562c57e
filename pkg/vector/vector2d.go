package vector

import (
	"fmt"
	"reflect"
	"strconv"

	"go.uber.org/zap/zapcore"
)

var _ zapcore.ObjectMarshaler = Vector2d[float64]{}

// Vector2d is a Cartesian vector with two components of type T. It is a plain
// value: every operation returns a new vector, except the pointer-receiver
// methods (AddAssign, AddAssignScalar, SetAt) which mutate the receiver.
type Vector2d[T Numeric] struct {
	X T `json:"x" yaml:"x"`
	Y T `json:"y" yaml:"y"`
}

// New returns a vector holding x and y verbatim.
func New[T Numeric](x, y T) Vector2d[T] {
	return Vector2d[T]{X: x, Y: y}
}

// Zero returns a vector with both components set to zero.
func Zero[T Numeric]() Vector2d[T] {
	return Vector2d[T]{}
}

// Ones returns a vector with both components set to one.
func Ones[T Numeric]() Vector2d[T] {
	return Vector2d[T]{X: 1, Y: 1}
}

// Add returns the component-wise sum of v and other.
func (v Vector2d[T]) Add(other Vector2d[T]) Vector2d[T] {
	return Vector2d[T]{X: v.X + other.X, Y: v.Y + other.Y}
}

// AddScalar adds s to both components.
func (v Vector2d[T]) AddScalar(s T) Vector2d[T] {
	return Vector2d[T]{X: v.X + s, Y: v.Y + s}
}

// Sub returns the component-wise difference of v and other.
func (v Vector2d[T]) Sub(other Vector2d[T]) Vector2d[T] {
	return Vector2d[T]{X: v.X - other.X, Y: v.Y - other.Y}
}

// SubScalar subtracts s from both components.
func (v Vector2d[T]) SubScalar(s T) Vector2d[T] {
	return Vector2d[T]{X: v.X - s, Y: v.Y - s}
}

// Mul returns the component-wise product of v and other.
func (v Vector2d[T]) Mul(other Vector2d[T]) Vector2d[T] {
	return Vector2d[T]{X: v.X * other.X, Y: v.Y * other.Y}
}

// MulScalar multiplies both components by s.
func (v Vector2d[T]) MulScalar(s T) Vector2d[T] {
	return Vector2d[T]{X: v.X * s, Y: v.Y * s}
}

// Scale multiplies both components by factor.
func (v Vector2d[T]) Scale(factor T) Vector2d[T] {
	return v.MulScalar(factor)
}

// Div returns the component-wise quotient of v and other. It fails with
// ErrDivisionByZero if either component of other is zero.
func (v Vector2d[T]) Div(other Vector2d[T]) (Vector2d[T], error) {
	if other.X == 0 || other.Y == 0 {
		return Vector2d[T]{}, fmt.Errorf("cannot divide by zero vector %s: %w", other, ErrDivisionByZero)
	}
	return Vector2d[T]{X: v.X / other.X, Y: v.Y / other.Y}, nil
}

// DivScalar divides both components by s. It fails with ErrDivisionByZero if
// s is zero.
func (v Vector2d[T]) DivScalar(s T) (Vector2d[T], error) {
	if s == 0 {
		return Vector2d[T]{}, fmt.Errorf("cannot divide by zero scalar %s: %w", formatComponent(s), ErrDivisionByZero)
	}
	return Vector2d[T]{X: v.X / s, Y: v.Y / s}, nil
}

// AddAssign adds other to v in place.
func (v *Vector2d[T]) AddAssign(other Vector2d[T]) {
	v.X += other.X
	v.Y += other.Y
}

// AddAssignScalar adds s to both components of v in place.
func (v *Vector2d[T]) AddAssignScalar(s T) {
	v.X += s
	v.Y += s
}

// Equal reports exact component-wise equality.
func (v Vector2d[T]) Equal(other Vector2d[T]) bool {
	return v.X == other.X && v.Y == other.Y
}

// At returns the component at index i: 0 is X, 1 is Y.
// Any other index panics.
func (v Vector2d[T]) At(i int) T {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		panic(indexOutOfRange(i))
	}
}

// SetAt sets the component at index i. Any index other than 0 or 1 panics.
func (v *Vector2d[T]) SetAt(i int, value T) {
	switch i {
	case 0:
		v.X = value
	case 1:
		v.Y = value
	default:
		panic(indexOutOfRange(i))
	}
}

func indexOutOfRange(i int) string {
	return fmt.Sprintf("vector: index %d out of [0, 1] range", i)
}

// String renders the vector as "< x, y >". Floating-point components are
// printed with 3 decimal places, integer components as-is.
func (v Vector2d[T]) String() string {
	return "< " + formatComponent(v.X) + ", " + formatComponent(v.Y) + " >"
}

// MarshalLogObject implements zapcore.ObjectMarshaler.
func (v Vector2d[T]) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	addComponent(enc, "x", v.X)
	addComponent(enc, "y", v.Y)
	return nil
}

func formatComponent[T Numeric](c T) string {
	switch reflect.ValueOf(c).Kind() {
	case reflect.Float32:
		return strconv.FormatFloat(float64(c), 'f', 3, 32)
	case reflect.Float64:
		return strconv.FormatFloat(float64(c), 'f', 3, 64)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(uint64(c), 10)
	default:
		return strconv.FormatInt(int64(c), 10)
	}
}

func addComponent[T Numeric](enc zapcore.ObjectEncoder, key string, c T) {
	switch reflect.ValueOf(c).Kind() {
	case reflect.Float32, reflect.Float64:
		enc.AddFloat64(key, float64(c))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		enc.AddUint64(key, uint64(c))
	default:
		enc.AddInt64(key, int64(c))
	}
}
