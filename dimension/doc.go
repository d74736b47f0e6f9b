// Package dimension provides the exact-arithmetic backbone of the unit
// algebra: a fixed-length vector of rational exponents over the SI base
// dimensions.
//
// Two units are dimensionally compatible exactly when their vectors are
// equal. Exponents are rationals rather than integers so that roots of
// units (e.g. m**0.5 from a square-root operation) stay exact; there is
// no epsilon comparison anywhere in this package.
package dimension
