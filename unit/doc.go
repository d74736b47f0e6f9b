// Package unit implements the unit registry and the immutable Unit
// descriptor.
//
// A Unit pairs a dimension vector with a scale factor relative to the
// coherent SI representation of that dimension (factor 1.0 for base and
// coherent derived units) and an optional additive offset used by
// temperature units. Units compose under multiplication, division and
// exponentiation; composition only ever touches the dimension vector,
// the factor and the display composition, never the payload.
//
// The Registry resolves unit names, SI-prefixed forms and compound
// expressions such as "m/s**2" or "kg*m/s^2". Prefixed forms are derived
// on demand from the prefix exponent and the base unit factor; the
// registry never enumerates the prefix cross-product. Resolution results
// are memoized, with concurrent resolves of the same expression
// deduplicated through singleflight.
package unit
