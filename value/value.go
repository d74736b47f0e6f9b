package value

import (
	"errors"
	"fmt"
)

var (
	// ErrKindMismatch is returned when two payload kinds cannot be
	// combined (e.g. a complex scalar with an array).
	ErrKindMismatch = errors.New("value: mismatched payload kinds")

	// ErrLengthMismatch is returned when two array payloads differ in length.
	ErrLengthMismatch = errors.New("value: mismatched array lengths")

	// ErrUnordered is returned when a payload kind has no total order
	// (complex scalars, arrays).
	ErrUnordered = errors.New("value: payload kind is not ordered")
)

// Value is the capability contract for a numeric payload.
//
// Implementations must be treated as immutable by the engine: arithmetic
// returns fresh values. The single exception is Array.Set, used for
// unit-checked indexed assignment.
type Value interface {
	// Add returns the elementwise sum with o.
	Add(o Value) (Value, error)
	// Sub returns the elementwise difference with o.
	Sub(o Value) (Value, error)
	// Mul returns the elementwise product with o.
	Mul(o Value) (Value, error)
	// Div returns the elementwise quotient with o.
	Div(o Value) (Value, error)
	// Pow raises the payload to a real exponent. Fractional powers of
	// negative values follow the payload type's own semantics.
	Pow(exp float64) (Value, error)
	// Scale multiplies by a plain conversion factor.
	Scale(f float64) Value
	// Neg returns the negated payload.
	Neg() Value
	// Abs returns a magnitude for display/autoscale purposes. For
	// arrays this is the largest elementwise magnitude.
	Abs() float64
	// IsZero reports whether the payload is exactly zero everywhere.
	IsZero() bool
	// Equal reports exact equality with o (same kind, same contents).
	Equal(o Value) bool
	// Compare orders the payload against o. Returns ErrUnordered for
	// kinds without a total order.
	Compare(o Value) (int, error)

	fmt.Stringer
}
