// Package decibel implements the logarithmic quantity model that runs
// parallel to the linear unit algebra.
//
// A log unit is either relative (a pure ratio: dB, dBi, dBc) or
// absolute (referencing a fixed physical level: dBm is decibels over
// one milliwatt, dBW over one watt). The arithmetic rules differ from
// linear quantities on purpose:
//
//   - relative + relative stacks gains: 20 dB + 3 dB = 23 dB
//   - absolute + relative applies a gain to a level: 0 dBm + 3 dB = 3 dBm
//   - absolute + absolute of one family combines physical power:
//     0 dBW + 0 dBW = 3.0103 dBW, not 0 dBW
//
// The conversion factor is 10 for power-like units and 20 for
// amplitude-like units (voltage, current), chosen from the underlying
// linear unit's dimension.
package decibel
