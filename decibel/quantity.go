package decibel

import (
	"fmt"
	"math"

	unitgo "github.com/hupe1980/unitgo"
	"github.com/hupe1980/unitgo/unit"
	"github.com/hupe1980/unitgo/value"
)

// Quantity is a value expressed in a logarithmic unit, e.g. -20 dBm.
type Quantity struct {
	val float64
	u   *Unit
}

// New builds a log quantity. If isLog is false the value is taken as a
// linear magnitude of the unit's physical reference and converted, so
// New(0.1, "dBm", false) is -10 dBm.
func New(v float64, name string, isLog bool) (*Quantity, error) {
	u, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	if !isLog {
		if v <= 0 {
			return nil, ErrNonPositive
		}
		v = u.factor*math.Log10(v) - u.offset
	}
	return &Quantity{val: v, u: u}, nil
}

// MustNew is New panicking on error, for static tables and tests.
func MustNew(v float64, name string, isLog bool) *Quantity {
	q, err := New(v, name, isLog)
	if err != nil {
		panic(err)
	}
	return q
}

// DB10 returns 10*log10(x) as a relative dB quantity.
func DB10(x float64) (*Quantity, error) {
	if x <= 0 {
		return nil, ErrNonPositive
	}
	return &Quantity{val: 10 * math.Log10(x), u: mustLookup("dB")}, nil
}

// DB20 returns 20*log10(x) as a relative dB quantity.
func DB20(x float64) (*Quantity, error) {
	if x <= 0 {
		return nil, ErrNonPositive
	}
	return &Quantity{val: 20 * math.Log10(x), u: mustLookup("dB")}, nil
}

// FromLinear converts a linear quantity into the named log unit. The
// quantity's dimension must match the target's physical reference.
func FromLinear(q *unitgo.Quantity, name string) (*Quantity, error) {
	u, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	if u.phys == nil {
		return nil, ErrRelative
	}
	conv, err := q.ToUnit(u.phys)
	if err != nil {
		return nil, err
	}
	s, ok := conv.Value().(value.Scalar)
	if !ok {
		return nil, fmt.Errorf("decibel: %w", unitgo.ErrNotIndexable)
	}
	return New(float64(s), name, false)
}

func mustLookup(name string) *Unit {
	u, err := Lookup(name)
	if err != nil {
		panic(err)
	}
	return u
}

// Value returns the raw dB value.
func (q *Quantity) Value() float64 { return q.val }

// Unit returns the log unit.
func (q *Quantity) Unit() *Unit { return q.u }

// Lin returns the linear physical quantity 10^(v/factor) in the unit's
// reference unit. Relative units have no linear counterpart.
func (q *Quantity) Lin() (*unitgo.Quantity, error) {
	if q.u.phys == nil {
		return nil, ErrRelative
	}
	mag := math.Pow(10, (q.val+q.u.offset)/q.u.factor)
	return unitgo.New(value.Of(mag), q.u.phys), nil
}

// Lin10 returns 10^(v/10), the linear ratio for power-like values.
func (q *Quantity) Lin10() float64 { return math.Pow(10, q.val/10) }

// Lin20 returns 10^(v/20), the linear ratio for amplitude-like values.
func (q *Quantity) Lin20() float64 { return math.Pow(10, q.val/20) }

// Add combines two log quantities.
//
// Two relative gains stack by plain addition. A relative gain applied
// to an absolute level shifts the level. Two absolute levels of the
// same dimension sum as linear powers: 0 dBW + 0 dBW is about 3 dBW.
func (q *Quantity) Add(o *Quantity) (*Quantity, error) {
	switch {
	case q.u.phys == nil && o.u.phys == nil:
		u := q.u
		if q.u.name == "dB" && o.u.name != "dB" {
			u = o.u
		}
		return &Quantity{val: q.val + o.val, u: u}, nil
	case q.u.phys == nil:
		return &Quantity{val: q.val + o.val, u: o.u}, nil
	case o.u.phys == nil:
		return &Quantity{val: q.val + o.val, u: q.u}, nil
	}
	oc, err := o.To(q.u.name)
	if err != nil {
		return nil, err
	}
	lin := math.Pow(10, q.val/q.u.factor) + math.Pow(10, oc.val/q.u.factor)
	return &Quantity{val: q.u.factor * math.Log10(lin), u: q.u}, nil
}

// Sub removes o from q: gain de-stacking for relative values, linear
// power subtraction for two absolute levels. Subtracting a level of
// equal or greater linear power returns ErrNegativePower.
func (q *Quantity) Sub(o *Quantity) (*Quantity, error) {
	switch {
	case q.u.phys == nil && o.u.phys == nil:
		return &Quantity{val: q.val - o.val, u: q.u}, nil
	case q.u.phys == nil:
		return nil, ErrRelative
	case o.u.phys == nil:
		return &Quantity{val: q.val - o.val, u: q.u}, nil
	}
	oc, err := o.To(q.u.name)
	if err != nil {
		return nil, err
	}
	lin := math.Pow(10, q.val/q.u.factor) - math.Pow(10, oc.val/q.u.factor)
	if lin <= 0 {
		return nil, ErrNegativePower
	}
	return &Quantity{val: q.u.factor * math.Log10(lin), u: q.u}, nil
}

// To converts to another log unit of the same kind: dBm to dBW, dBd to
// dBi. Converting between absolute and relative units is an error, as
// is converting across physical dimensions.
func (q *Quantity) To(name string) (*Quantity, error) {
	target, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	if target == q.u {
		return q, nil
	}
	switch {
	case q.u.phys == nil && target.phys == nil:
		// dBd carries its antenna offset against dBi.
		return &Quantity{val: q.val + q.u.offset - target.offset, u: target}, nil
	case q.u.phys == nil || target.phys == nil:
		return nil, unit.ErrIncompatible
	}
	if !q.u.phys.SameDimension(target.phys) {
		return nil, unit.ErrIncompatible
	}
	shift := q.u.factor * math.Log10(q.u.phys.Factor()/target.phys.Factor())
	return &Quantity{val: q.val + shift, u: target}, nil
}

// Neg flips the sign of the dB value.
func (q *Quantity) Neg() *Quantity {
	return &Quantity{val: -q.val, u: q.u}
}

// Scale multiplies the dB value, e.g. doubling a gain in dB.
func (q *Quantity) Scale(f float64) *Quantity {
	return &Quantity{val: q.val * f, u: q.u}
}

// Equal reports whether both quantities are the same level once
// expressed in q's unit.
func (q *Quantity) Equal(o *Quantity) (bool, error) {
	c, err := q.Compare(o)
	if err != nil {
		return false, err
	}
	return c == 0, nil
}

// Compare orders two log quantities of the same kind.
func (q *Quantity) Compare(o *Quantity) (int, error) {
	oc, err := o.To(q.u.name)
	if err != nil {
		return 0, err
	}
	switch {
	case q.val < oc.val:
		return -1, nil
	case q.val > oc.val:
		return 1, nil
	}
	return 0, nil
}

func (q *Quantity) String() string {
	return fmt.Sprintf("%v %s", q.val, q.u.name)
}
