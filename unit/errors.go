package unit

import (
	"errors"
	"fmt"
)

var (
	// ErrIncompatible is returned when an operation requires two units
	// of the same dimension and they differ.
	ErrIncompatible = errors.New("incompatible units")

	// ErrOffsetUnit is returned when a unit with a nonzero additive
	// offset (degC, degF) is multiplied, divided or exponentiated.
	ErrOffsetUnit = errors.New("unit with offset cannot be combined")

	// ErrEmptyExpression is returned for an empty unit expression.
	ErrEmptyExpression = errors.New("empty unit expression")
)

// UnknownUnitError indicates a name token that does not resolve via any
// name/prefix combination.
type UnknownUnitError struct {
	Name string
}

func (e *UnknownUnitError) Error() string {
	return fmt.Sprintf("unknown unit %q", e.Name)
}

// DuplicateUnitError indicates a registration conflict: the name is
// taken by a different unit.
type DuplicateUnitError struct {
	Name string
}

func (e *DuplicateUnitError) Error() string {
	return fmt.Sprintf("unit %q already defined", e.Name)
}

// DimensionError indicates an exponent or combination the dimension
// algebra cannot represent (e.g. m**0.3 where no exact rational fits).
type DimensionError struct {
	Op     string
	Detail string
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("dimension error in %s: %s", e.Op, e.Detail)
}

// ParseError indicates a malformed unit expression.
type ParseError struct {
	Expr string
	Pos  int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid unit expression %q at %d: %s", e.Expr, e.Pos, e.Msg)
}
