package decibel

import (
	"errors"
	"sort"
	"sync"

	"github.com/hupe1980/unitgo/dimension"
	"github.com/hupe1980/unitgo/unit"
)

var (
	// ErrNonPositive is returned when a logarithm of a non-positive
	// linear value is requested.
	ErrNonPositive = errors.New("decibel: non-positive linear value")

	// ErrNegativePower is returned when subtracting absolute levels
	// would leave a non-positive linear power.
	ErrNegativePower = errors.New("decibel: power difference is not positive")

	// ErrRelative is returned when an operation needs an absolute unit
	// but got a relative one.
	ErrRelative = errors.New("decibel: relative unit has no physical reference")
)

// Unit describes a logarithmic unit. Relative units (dB, dBi, dBc)
// have no physical reference; absolute units (dBm, dBW, dBV, ...) point
// at a linear unit whose magnitude 1 is the 0 dB reference level.
type Unit struct {
	name   string
	factor float64 // 10 for power-like, 20 for amplitude-like
	offset float64 // dBd carries +2.15 relative to dBi
	phys   *unit.Unit
	z0     *unit.Unit // reference impedance unit (50 Ohm families)
	z0Mag  float64
}

// Name returns the unit name ("dBm").
func (u *Unit) Name() string { return u.name }

// Factor returns the dB conversion factor (10 or 20).
func (u *Unit) Factor() float64 { return u.factor }

// Offset returns the additive offset in dB (nonzero only for dBd).
func (u *Unit) Offset() float64 { return u.offset }

// Physical returns the underlying linear unit, or nil for relative
// units.
func (u *Unit) Physical() *unit.Unit { return u.phys }

// IsRelative reports whether the unit is a pure ratio.
func (u *Unit) IsRelative() bool { return u.phys == nil }

// ReferenceImpedance returns the reference impedance for power/voltage
// conversions (default 50 Ohm) and whether one is set.
func (u *Unit) ReferenceImpedance() (*unit.Unit, float64, bool) {
	if u.z0 == nil {
		return nil, 0, false
	}
	return u.z0, u.z0Mag, true
}

// isPowerDimension reports whether a dimension behaves like power for
// dB purposes: W-family dimensions (and area, for radar cross
// sections) take factor 10, amplitude-like dimensions take 20.
func isPowerDimension(d dimension.Vector) bool {
	area := dimension.Of(2)
	if d.Equal(area) {
		return true
	}
	two := dimension.Int(2)
	one := dimension.Int(1)
	// length² · mass with current exponent > -1 covers W, J and kin.
	return d[dimension.Length] == two && d[dimension.Mass] == one &&
		d[dimension.Current].Sign() > -1
}

var (
	tableOnce sync.Once
	table     map[string]*Unit
)

func logUnits() map[string]*Unit {
	tableOnce.Do(func() {
		reg := unit.Default()
		ohm := reg.MustResolve("Ohm")

		table = make(map[string]*Unit)
		relative := func(name string, factor, offset float64) {
			table[name] = &Unit{name: name, factor: factor, offset: offset}
		}
		absolute := func(name, physical string) {
			phys := reg.MustResolve(physical)
			factor := 20.0
			if isPowerDimension(phys.Dimension()) {
				factor = 10.0
			}
			table[name] = &Unit{
				name:   name,
				factor: factor,
				phys:   phys,
				z0:     ohm,
				z0Mag:  50,
			}
		}

		relative("dB", 10, 0)
		relative("dBi", 10, 0)
		relative("dBd", 10, 2.15)
		relative("dBc", 10, 0)

		absolute("dBm", "mW")
		absolute("dBW", "W")
		absolute("dBnV", "nV")
		absolute("dBuV", "uV")
		absolute("dBmV", "mV")
		absolute("dBV", "V")
		absolute("dBnA", "nA")
		absolute("dBuA", "uA")
		absolute("dBmA", "mA")
		absolute("dBA", "A")
		absolute("dBsm", "m**2")
	})
	return table
}

// Lookup returns the named log unit.
func Lookup(name string) (*Unit, error) {
	u, ok := logUnits()[name]
	if !ok {
		return nil, &unit.UnknownUnitError{Name: name}
	}
	return u, nil
}

// Units lists the known log unit names.
func Units() []string {
	m := logUnits()
	out := make([]string, 0, len(m))
	for name := range m {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
