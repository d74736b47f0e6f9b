package unit

import (
	"fmt"
	"math"

	"github.com/hupe1980/unitgo/dimension"
)

// loadStandardUnits populates a registry with the SI base units, the
// coherent named derived units and the small non-SI table. Prefixed
// forms are not enumerated here; lookupAtom derives them on demand.
func loadStandardUnits(r *Registry) {
	base := func(name string, slot int) {
		var dim dimension.Vector
		dim[slot] = dimension.Int(1)
		u := newNamed(name, dim, 1, 0)
		u.isBase = true
		r.units[name] = u
	}
	base("m", dimension.Length)
	base("kg", dimension.Mass)
	base("s", dimension.Time)
	base("A", dimension.Current)
	base("K", dimension.Temperature)
	base("mol", dimension.Amount)
	base("cd", dimension.Luminous)
	base("rad", dimension.Angle)
	base("sr", dimension.SolidAngle)

	composite := func(name string, factor float64, expr string) {
		if _, err := r.RegisterComposite(name, factor, expr); err != nil {
			panic(fmt.Sprintf("unit: standard table: %s: %v", name, err))
		}
	}
	offsetUnit := func(name string, factor, offset float64, expr string) {
		b := r.MustResolve(expr)
		u := newNamed(name, b.Dimension(), factor*b.Factor(), offset)
		r.units[name] = u
	}

	// Gram bridges the mass dimension so prefixed forms (mg, ug) resolve.
	composite("g", 1e-3, "kg")

	// Coherent named derived units, factor exactly 1.
	composite("Hz", 1, "1/s")
	composite("N", 1, "m*kg/s**2")
	composite("Pa", 1, "N/m**2")
	composite("J", 1, "N*m")
	composite("W", 1, "J/s")
	composite("C", 1, "s*A")
	composite("V", 1, "W/A")
	composite("F", 1, "C/V")
	composite("Ohm", 1, "V/A")
	composite("S", 1, "A/V")
	composite("Wb", 1, "V*s")
	composite("T", 1, "Wb/m**2")
	composite("H", 1, "Wb/A")
	composite("lm", 1, "cd*sr")
	composite("lx", 1, "lm/m**2")

	// Time.
	composite("min", 60, "s")
	composite("h", 3600, "s")
	composite("d", 86400, "s")

	// Angle.
	composite("deg", math.Pi/180, "rad")
	composite("arcmin", math.Pi/180/60, "rad")
	composite("arcsec", math.Pi/180/3600, "rad")

	// Temperatures carry an additive offset and refuse composition.
	offsetUnit("degC", 1, 273.15, "K")
	offsetUnit("degF", 5.0/9.0, 459.67*5.0/9.0, "K")

	// Imperial and other accepted non-SI units.
	composite("inch", 0.0254, "m")
	composite("mil", 2.54e-5, "m")
	composite("ft", 0.3048, "m")
	composite("yd", 0.9144, "m")
	composite("mile", 1609.344, "m")
	composite("nmi", 1852, "m")
	composite("lb", 0.45359237, "kg")
	composite("oz", 0.028349523125, "kg")
	composite("l", 1e-3, "m**3")
	composite("gal", 3.785411784e-3, "m**3")
	composite("bar", 1e5, "Pa")
	composite("atm", 101325, "Pa")
	composite("psi", 6894.757293168361, "Pa")
	composite("cal", 4.184, "J")
	composite("eV", 1.602176634e-19, "J")
	composite("Wh", 3600, "J")
	composite("Ah", 3600, "C")
}
