package unitgo

import "math"

// Common physical constants as quantities against the default registry.
var (
	// C0 is the speed of light in vacuum.
	C0 = MustQ(299792458, "m/s")
	// Mu0 is the vacuum permeability.
	Mu0 = MustQ(4*math.Pi*1e-7, "N/A**2")
	// Eps0 is the vacuum permittivity.
	Eps0 = MustQ(8.854188e-12, "F/m")
	// Grav is the Newtonian constant of gravitation.
	Grav = MustQ(6.67384e-11, "m**3/kg/s**2")
	// Hpl is the Planck constant.
	Hpl = MustQ(6.62606957e-34, "J*s")
	// Hbar is the reduced Planck constant.
	Hbar = MustQ(6.62606957e-34/(2*math.Pi), "J*s")
	// E0 is the elementary charge.
	E0 = MustQ(1.602176565e-19, "C")
	// Me is the electron mass.
	Me = MustQ(9.10938291e-31, "kg")
	// Mp is the proton mass.
	Mp = MustQ(1.672621777e-27, "kg")
	// Mn is the neutron mass.
	Mn = MustQ(1.674927351e-27, "kg")
	// NA is the Avogadro constant.
	NA = MustQ(6.02214129e23, "1/mol")
	// Kb is the Boltzmann constant.
	Kb = MustQ(1.3806488e-23, "J/K")
	// G0 is standard gravity.
	G0 = MustQ(9.80665, "m/s**2")
	// Rgas is the molar gas constant.
	Rgas = MustQ(8.3144621, "J/mol/K")
)
