package unitgo

import (
	"fmt"

	"github.com/hupe1980/unitgo/dimension"
	"github.com/hupe1980/unitgo/unit"
	"github.com/hupe1980/unitgo/value"
)

// Quantity pairs a numeric payload with a unit. Quantities are value
// objects: arithmetic and conversion return new instances. The engine
// never inspects the payload beyond the value.Value contract, so
// scalars, complex numbers and arrays all ride the same code paths.
type Quantity struct {
	val value.Value
	u   *unit.Unit
	reg *unit.Registry
}

// New wraps a payload with an already-resolved unit. The quantity
// resolves later conversions against the default registry.
func New(v value.Value, u *unit.Unit) *Quantity {
	return &Quantity{val: v, u: u, reg: unit.Default()}
}

// Make builds a quantity from a payload and a unit name or compound
// expression, resolved against the default registry.
func Make(v value.Value, spec string) (*Quantity, error) {
	return MakeIn(unit.Default(), v, spec)
}

// MakeIn is Make against an explicit registry.
func MakeIn(reg *unit.Registry, v value.Value, spec string) (*Quantity, error) {
	u, err := reg.Resolve(spec)
	if err != nil {
		return nil, err
	}
	return &Quantity{val: v, u: u, reg: reg}, nil
}

// Q builds a scalar quantity: Q(1.1, "m").
func Q(x float64, spec string) (*Quantity, error) {
	return Make(value.Of(x), spec)
}

// MustQ is Q for expressions known to be valid; it panics on error.
func MustQ(x float64, spec string) *Quantity {
	q, err := Q(x, spec)
	if err != nil {
		panic(err)
	}
	return q
}

// QC builds a complex-valued quantity.
func QC(x complex128, spec string) (*Quantity, error) {
	return Make(value.OfComplex(x), spec)
}

// QArr builds an array-valued quantity from a copy of xs.
func QArr(xs []float64, spec string) (*Quantity, error) {
	return Make(value.OfSlice(xs), spec)
}

// Value returns the raw payload in the quantity's own unit.
func (q *Quantity) Value() value.Value { return q.val }

// Strip returns the bare payload with the unit removed. This is the
// escape hatch for interop with numeric libraries.
func (q *Quantity) Strip() value.Value { return q.val }

// Unit returns the quantity's unit descriptor.
func (q *Quantity) Unit() *unit.Unit { return q.u }

func (q *Quantity) derive(v value.Value, u *unit.Unit) *Quantity {
	return &Quantity{val: v, u: u, reg: q.reg}
}

// Add returns q + o. The operands must share a dimension; the result
// keeps the left operand's unit.
func (q *Quantity) Add(o *Quantity) (*Quantity, error) {
	return q.sum(o, false)
}

// Sub returns q - o under the same rules as Add.
func (q *Quantity) Sub(o *Quantity) (*Quantity, error) {
	return q.sum(o, true)
}

func (q *Quantity) sum(o *Quantity, negate bool) (*Quantity, error) {
	f, err := o.u.ConversionFactorTo(q.u)
	if err != nil {
		return nil, err
	}
	rhs := o.val.Scale(f)
	if negate {
		rhs = rhs.Neg()
	}
	v, err := q.val.Add(rhs)
	if err != nil {
		return nil, err
	}
	return q.derive(v, q.u), nil
}

// Mul returns q * o. Dimensions always combine; when the result is
// dimensionless the residual scale factor is folded into the payload so
// Strip returns the plain ratio.
func (q *Quantity) Mul(o *Quantity) (*Quantity, error) {
	u, err := q.u.Mul(o.u)
	if err != nil {
		return nil, err
	}
	v, err := q.val.Mul(o.val)
	if err != nil {
		return nil, err
	}
	return q.fold(v, u), nil
}

// Div returns q / o.
func (q *Quantity) Div(o *Quantity) (*Quantity, error) {
	u, err := q.u.Div(o.u)
	if err != nil {
		return nil, err
	}
	v, err := q.val.Div(o.val)
	if err != nil {
		return nil, err
	}
	return q.fold(v, u), nil
}

func (q *Quantity) fold(v value.Value, u *unit.Unit) *Quantity {
	if u.IsDimensionless() && u.Factor() != 1 {
		return q.derive(v.Scale(u.Factor()), unit.Dimensionless())
	}
	return q.derive(v, u)
}

// Scale multiplies by a plain number; the unit is unchanged.
func (q *Quantity) Scale(f float64) *Quantity {
	return q.derive(q.val.Scale(f), q.u)
}

// Neg returns the negated quantity.
func (q *Quantity) Neg() *Quantity {
	return q.derive(q.val.Neg(), q.u)
}

// Pow raises the quantity to a real exponent. The unit's dimension and
// factor are raised alongside the payload; exponents must have an exact
// rational form (0.5 is fine, 0.333... is not).
func (q *Quantity) Pow(exp float64) (*Quantity, error) {
	r, ok := dimension.FromFloat(exp)
	if !ok {
		return nil, &unit.DimensionError{Op: "pow", Detail: fmt.Sprintf("exponent %v has no exact rational form", exp)}
	}
	u, err := q.u.Pow(r)
	if err != nil {
		return nil, err
	}
	v, err := q.val.Pow(exp)
	if err != nil {
		return nil, err
	}
	return q.derive(v, u), nil
}

// Sqrt returns the positive square root.
func (q *Quantity) Sqrt() (*Quantity, error) {
	return q.Pow(0.5)
}

// To expresses the quantity in a different unit of the same dimension.
func (q *Quantity) To(spec string) (*Quantity, error) {
	target, err := q.reg.Resolve(spec)
	if err != nil {
		return nil, err
	}
	return q.ToUnit(target)
}

// ToUnit is To with an already-resolved target unit.
func (q *Quantity) ToUnit(target *unit.Unit) (*Quantity, error) {
	factor, offset, err := q.u.ConversionTupleTo(target)
	if err != nil {
		return nil, err
	}
	v := q.val
	if offset != 0 {
		v, err = v.Add(value.Of(offset))
		if err != nil {
			return nil, err
		}
	}
	return q.derive(v.Scale(factor), target), nil
}

// AsUnit is the explicit form of attribute-style unit access: it
// rescales into the named unit of the same dimension.
func (q *Quantity) AsUnit(spec string) (*Quantity, error) {
	return q.To(spec)
}

// ValueIn returns the bare payload expressed in the named unit.
func (q *Quantity) ValueIn(spec string) (value.Value, error) {
	conv, err := q.To(spec)
	if err != nil {
		return nil, err
	}
	return conv.val, nil
}

// RescaleByPrefix rescales a simple (single-name) unit by an SI prefix:
// a quantity in "m" rescaled by "m" lands in "mm". Compound units do
// not take prefixes.
func (q *Quantity) RescaleByPrefix(prefix string) (*Quantity, error) {
	if !q.u.Simple() {
		return nil, fmt.Errorf("%w: cannot prefix compound unit %s", unit.ErrIncompatible, q.u)
	}
	return q.To(prefix + q.u.BaseName())
}

// Base returns the quantity converted to coherent SI base units
// (factor exactly 1).
func (q *Quantity) Base() (*Quantity, error) {
	v := q.val.Scale(q.u.Factor())
	if off := q.u.Offset(); off != 0 {
		var err error
		v, err = v.Add(value.Of(off))
		if err != nil {
			return nil, err
		}
	}
	dim := q.u.Dimension()
	if dim.IsZero() {
		return q.derive(v, unit.Dimensionless()), nil
	}
	base, err := q.reg.Resolve(dim.String())
	if err != nil {
		return nil, err
	}
	return q.derive(v, base), nil
}

// Len returns the number of elements of an array payload.
func (q *Quantity) Len() (int, error) {
	arr, ok := q.val.(value.Array)
	if !ok {
		return 0, ErrNotIndexable
	}
	return arr.Len(), nil
}

// At returns element i of an array payload as a scalar quantity in the
// container's unit.
func (q *Quantity) At(i int) (*Quantity, error) {
	arr, ok := q.val.(value.Array)
	if !ok {
		return nil, ErrNotIndexable
	}
	return q.derive(value.Of(arr.At(i)), q.u), nil
}

// SetAt assigns element i of an array payload. The element is
// unit-checked, converted into the container's unit, and its raw
// magnitude stored in the backing array.
func (q *Quantity) SetAt(i int, elem *Quantity) error {
	arr, ok := q.val.(value.Array)
	if !ok {
		return ErrNotIndexable
	}
	conv, err := elem.ToUnit(q.u)
	if err != nil {
		return err
	}
	s, ok := conv.val.(value.Scalar)
	if !ok {
		return fmt.Errorf("%w: array elements take scalar values", ErrNotIndexable)
	}
	arr.Set(i, float64(s))
	return nil
}

// Equal reports whether q and o denote the same physical magnitude.
// Comparing across dimensions is an error, not false.
func (q *Quantity) Equal(o *Quantity) (bool, error) {
	conv, err := o.ToUnit(q.u)
	if err != nil {
		return false, err
	}
	return q.val.Equal(conv.val), nil
}

// Compare orders q against o after converting o into q's unit.
func (q *Quantity) Compare(o *Quantity) (int, error) {
	conv, err := o.ToUnit(q.u)
	if err != nil {
		return 0, err
	}
	return q.val.Compare(conv.val)
}

// Real returns the real part of a complex payload.
func (q *Quantity) Real() *Quantity {
	if c, ok := q.val.(value.Complex); ok {
		return q.derive(c.Real(), q.u)
	}
	return q
}

// Imag returns the imaginary part of a complex payload.
func (q *Quantity) Imag() *Quantity {
	if c, ok := q.val.(value.Complex); ok {
		return q.derive(c.Imag(), q.u)
	}
	return q.derive(value.Of(0), q.u)
}

// String renders "value unit", e.g. "1.1 m".
func (q *Quantity) String() string {
	if q.u.IsDimensionless() {
		return q.val.String()
	}
	return q.val.String() + " " + q.u.String()
}
