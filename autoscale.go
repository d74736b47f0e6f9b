package unitgo

import (
	"github.com/hupe1980/unitgo/unit"
	"github.com/hupe1980/unitgo/value"
)

// Autoscale picks the SI prefix that keeps the scaled mantissa in
// [1, 1000), scanning prefixes from yotta down so that an exact
// power-of-1000 magnitude rolls over to the larger prefix (1000 m
// becomes 1 km). A zero payload lands on the unprefixed form, and
// magnitudes beyond the prefix table clamp to yotta/yocto instead of
// failing. Compound units are returned unchanged.
func (q *Quantity) Autoscale() (*Quantity, error) {
	if !q.u.Simple() || q.u.Offset() != 0 {
		return q, nil
	}
	baseName := q.u.BaseName()
	baseUnit, err := q.reg.Resolve(baseName)
	if err != nil {
		return nil, err
	}

	if q.val.IsZero() {
		return q.To(baseName)
	}

	mag := q.val.Abs() * q.u.Factor()
	for _, p := range unit.EngineeringPrefixes {
		if mag/(p.Factor*baseUnit.Factor()) >= 1 {
			return q.To(p.Symbol + baseName)
		}
	}
	// Below even yocto: clamp to the smallest prefix.
	last := unit.EngineeringPrefixes[len(unit.EngineeringPrefixes)-1]
	return q.To(last.Symbol + baseName)
}

// ToTuple decomposes a scalar quantity across several units of one
// dimension, largest first, with every component but the last rounded
// toward zero to an integer: ToTuple("h", "min", "s") splits 1000 s
// into 0 h, 16 min, 40 s.
func (q *Quantity) ToTuple(specs ...string) ([]*Quantity, error) {
	units := make([]*unit.Unit, len(specs))
	for i, s := range specs {
		u, err := q.reg.Resolve(s)
		if err != nil {
			return nil, err
		}
		units[i] = u
	}
	// Largest factor first.
	for i := 0; i < len(units); i++ {
		for j := i + 1; j < len(units); j++ {
			if units[j].Factor() > units[i].Factor() {
				units[i], units[j] = units[j], units[i]
			}
		}
	}
	out := make([]*Quantity, 0, len(units))
	rest := q
	for i, u := range units {
		conv, err := rest.ToUnit(u)
		if err != nil {
			return nil, err
		}
		if i == len(units)-1 {
			out = append(out, conv)
			break
		}
		s, ok := conv.val.(value.Scalar)
		if !ok {
			return nil, ErrNotIndexable
		}
		whole := float64(int64(float64(s)))
		out = append(out, conv.derive(value.Of(whole), u))
		rest = conv.derive(value.Of(float64(s)-whole), u)
	}
	return out, nil
}
