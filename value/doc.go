// Package value abstracts the numeric payload carried by a quantity.
//
// The unit engine never inspects a payload beyond the Value interface:
// it needs the arithmetic operators, scaling by a conversion factor and,
// for array payloads, elementwise indexing. Scalar, Complex and Array
// cover the payload kinds the engine ships with; anything satisfying
// Value can ride along.
package value
