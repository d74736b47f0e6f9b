package unitgo

import (
	"errors"

	"github.com/hupe1980/unitgo/unit"
	"github.com/hupe1980/unitgo/value"
)

// Sentinels callers match with errors.Is. The unit and value packages
// own the underlying definitions.
var (
	// ErrIncompatible is returned for add/sub/compare/conversion across
	// different dimensions.
	ErrIncompatible = unit.ErrIncompatible

	// ErrUnordered is returned when comparing payload kinds without a
	// total order.
	ErrUnordered = value.ErrUnordered

	// ErrNotIndexable is returned for element access on a non-array
	// payload.
	ErrNotIndexable = errors.New("unitgo: payload is not indexable")

	// ErrDimensionedExponent is returned when the exponent of a power
	// operation itself carries a dimension.
	ErrDimensionedExponent = errors.New("unitgo: exponent must be dimensionless")
)
