// Package unitgo is a physical unit algebra engine for Go.
//
// A Quantity pairs a numeric payload (scalar, complex or array) with a
// Unit. Arithmetic tracks dimensional correctness: addition and
// subtraction require compatible dimensions and convert the right
// operand into the left operand's unit, multiplication and division
// combine dimensions, and conversion rescales between any two units of
// the same dimension.
//
// # Quick start
//
//	q, err := unitgo.Q(1.1, "m")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	mm, _ := q.To("mm")       // 1100 mm
//	v, _ := unitgo.Q(2, "m*kg/s**2")
//	n, _ := v.To("N")         // 2 N
//
// Compound unit expressions ("m/s**2", "kg*m/s^2") and SI-prefixed
// forms ("km", "mV", "ns") resolve through the unit.Registry; prefixed
// forms are derived on demand rather than enumerated.
//
// The decibel package provides the parallel logarithmic model (dB, dBm,
// dBW, ...) with its own arithmetic rules, including true power
// summation for absolute levels.
//
// Custom units can be registered on a registry and shared as catalog
// snapshots (see the catalog package) stored locally or in object
// storage.
package unitgo
