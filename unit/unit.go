package unit

import (
	"math"
	"strings"

	"github.com/hupe1980/unitgo/dimension"
)

// component is one factor of a unit's display composition, e.g. "m" with
// exponent -2 inside "kg/m**2".
type component struct {
	name string
	exp  dimension.Rational
}

// Unit is an immutable unit descriptor: a display composition, a
// dimension vector, a scale factor to the coherent SI representation and
// an optional additive offset (temperatures only).
type Unit struct {
	comps    []component
	dim      dimension.Vector
	factor   float64
	offset   float64
	prefixed bool
	isBase   bool
	baseName string // unprefixed name when prefixed
}

// newNamed builds a unit whose composition is a single name with
// exponent one.
func newNamed(name string, dim dimension.Vector, factor, offset float64) *Unit {
	return &Unit{
		comps:  []component{{name: name, exp: dimension.Int(1)}},
		dim:    dim,
		factor: factor,
		offset: offset,
	}
}

// Name returns the display name, synthesized from the composition as a
// slash/asterisk expression ("m*kg/s**2", "1/s"). Fractional exponents
// render parenthesized ("s**(1/2)") so the name resolves back to the
// same unit.
func (u *Unit) Name() string {
	var num, denom strings.Builder
	for _, c := range u.comps {
		switch {
		case c.exp.Sign() > 0:
			num.WriteByte('*')
			num.WriteString(c.name)
			if c.exp != dimension.Int(1) {
				num.WriteString("**")
				num.WriteString(c.exp.Exp())
			}
		case c.exp.Sign() < 0:
			denom.WriteByte('/')
			denom.WriteString(c.name)
			if c.exp != dimension.Int(-1) {
				denom.WriteString("**")
				denom.WriteString(c.exp.Neg().Exp())
			}
		}
	}
	n := num.String()
	if n == "" {
		n = "1"
	} else {
		n = n[1:]
	}
	return n + denom.String()
}

// Dimension returns the unit's dimension vector.
func (u *Unit) Dimension() dimension.Vector { return u.dim }

// Factor returns the scale factor to the coherent SI representation.
func (u *Unit) Factor() float64 { return u.factor }

// Offset returns the additive offset to the coherent representation.
// Nonzero only for temperature units.
func (u *Unit) Offset() float64 { return u.offset }

// Prefixed reports whether the unit is an SI-prefixed form of a named
// unit ("km", "mV").
func (u *Unit) Prefixed() bool { return u.prefixed }

// IsBase reports whether the unit is one of the coherent SI base units.
func (u *Unit) IsBase() bool { return u.isBase }

// BaseName returns the unprefixed name for a prefixed unit, or the
// unit's own name otherwise.
func (u *Unit) BaseName() string {
	if u.prefixed {
		return u.baseName
	}
	return u.Name()
}

// IsDimensionless reports whether the dimension vector is zero.
func (u *Unit) IsDimensionless() bool { return u.dim.IsZero() }

// Simple reports whether the unit is a single named factor with
// exponent one (the only shape prefix rescaling applies to).
func (u *Unit) Simple() bool {
	return len(u.comps) == 1 && u.comps[0].exp == dimension.Int(1)
}

// SameDimension reports dimensional compatibility with o.
func (u *Unit) SameDimension(o *Unit) bool {
	return u.dim.Equal(o.dim)
}

// Equal reports whether u and o describe the identical unit: equal
// dimension, factor and offset. Display composition does not matter.
func (u *Unit) Equal(o *Unit) bool {
	return u.dim.Equal(o.dim) && u.factor == o.factor && u.offset == o.offset
}

// mergeComps folds o's components into a copy of u's with each exponent
// scaled by sign, dropping factors that cancel.
func mergeComps(a, b []component, sign int64) []component {
	out := make([]component, 0, len(a)+len(b))
	out = append(out, a...)
	for _, c := range b {
		exp := c.exp
		if sign < 0 {
			exp = exp.Neg()
		}
		idx := -1
		for i := range out {
			if out[i].name == c.name {
				idx = i
				break
			}
		}
		if idx < 0 {
			out = append(out, component{name: c.name, exp: exp})
			continue
		}
		merged := out[idx].exp.Add(exp)
		if merged.IsZero() {
			out = append(out[:idx], out[idx+1:]...)
		} else {
			out[idx].exp = merged
		}
	}
	return out
}

// Mul returns the product unit. Units with a nonzero offset do not
// compose.
func (u *Unit) Mul(o *Unit) (*Unit, error) {
	if u.offset != 0 || o.offset != 0 {
		return nil, ErrOffsetUnit
	}
	return &Unit{
		comps:  mergeComps(u.comps, o.comps, 1),
		dim:    u.dim.Mul(o.dim),
		factor: u.factor * o.factor,
	}, nil
}

// Div returns the quotient unit.
func (u *Unit) Div(o *Unit) (*Unit, error) {
	if u.offset != 0 || o.offset != 0 {
		return nil, ErrOffsetUnit
	}
	return &Unit{
		comps:  mergeComps(u.comps, o.comps, -1),
		dim:    u.dim.Div(o.dim),
		factor: u.factor / o.factor,
	}, nil
}

// Pow returns the unit raised to a rational exponent. Dimension and
// factor are both raised; the display composition scales its exponents.
func (u *Unit) Pow(exp dimension.Rational) (*Unit, error) {
	if u.offset != 0 {
		return nil, ErrOffsetUnit
	}
	comps := make([]component, 0, len(u.comps))
	for _, c := range u.comps {
		e := c.exp.Mul(exp)
		if !e.IsZero() {
			comps = append(comps, component{name: c.name, exp: e})
		}
	}
	return &Unit{
		comps:  comps,
		dim:    u.dim.Pow(exp),
		factor: powFloat(u.factor, exp.Float()),
	}, nil
}

// Inv returns the reciprocal unit.
func (u *Unit) Inv() (*Unit, error) {
	return one.Div(u)
}

// ConversionFactorTo returns the multiplicative factor converting a
// magnitude in u to o. Fails with ErrIncompatible across dimensions and
// for offset units whose conversion is not purely multiplicative.
func (u *Unit) ConversionFactorTo(o *Unit) (float64, error) {
	if !u.dim.Equal(o.dim) {
		return 0, ErrIncompatible
	}
	if u.offset != o.offset && u.factor != o.factor {
		return 0, ErrOffsetUnit
	}
	return u.factor / o.factor, nil
}

// ConversionTupleTo returns (factor, offset) such that
// (x + offset) * factor converts a magnitude from u to o. This is the
// general form that also covers temperature units.
func (u *Unit) ConversionTupleTo(o *Unit) (factor, offset float64, err error) {
	if !u.dim.Equal(o.dim) {
		return 0, 0, ErrIncompatible
	}
	// (x*f1)+d1 converts from u to base; the inverse applied for o
	// yields factor f1/f2 and offset (d1-d2)/f1.
	factor = u.factor / o.factor
	offset = (u.offset - o.offset) / u.factor
	return factor, offset, nil
}

// one is the dimensionless identity unit.
var one = &Unit{factor: 1}

// Dimensionless returns the factor-1 dimensionless unit.
func Dimensionless() *Unit { return one }

// scaled returns a dimensionless unit carrying a bare numeric factor,
// used when an expression contains a literal like "1/s".
func scaled(f float64) *Unit {
	if f == 1 {
		return one
	}
	return &Unit{factor: f}
}

func powFloat(f, e float64) float64 {
	if e == 1 {
		return f
	}
	return math.Pow(f, e)
}

func (u *Unit) String() string {
	return strings.ReplaceAll(u.Name(), "**", "^")
}
