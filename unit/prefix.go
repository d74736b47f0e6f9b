package unit

// Prefix is an SI power-of-ten multiplier.
type Prefix struct {
	Symbol string
	Factor float64
}

// Prefixes lists the recognized SI prefixes from largest to smallest
// magnitude. "da" sorts before "d" so longest-prefix-first stripping
// stays unambiguous.
var Prefixes = []Prefix{
	{"Y", 1e24},
	{"Z", 1e21},
	{"E", 1e18},
	{"P", 1e15},
	{"T", 1e12},
	{"G", 1e9},
	{"M", 1e6},
	{"k", 1e3},
	{"h", 1e2},
	{"da", 1e1},
	{"d", 1e-1},
	{"c", 1e-2},
	{"m", 1e-3},
	{"u", 1e-6},
	{"n", 1e-9},
	{"p", 1e-12},
	{"f", 1e-15},
	{"a", 1e-18},
	{"z", 1e-21},
	{"y", 1e-24},
}

// EngineeringPrefixes lists the prefixes whose exponents are multiples
// of three, largest first, with the empty (factor 1) prefix in sequence.
// Autoscale scans this list so mantissas land in [1, 1000).
var EngineeringPrefixes = []Prefix{
	{"Y", 1e24},
	{"Z", 1e21},
	{"E", 1e18},
	{"P", 1e15},
	{"T", 1e12},
	{"G", 1e9},
	{"M", 1e6},
	{"k", 1e3},
	{"", 1},
	{"m", 1e-3},
	{"u", 1e-6},
	{"n", 1e-9},
	{"p", 1e-12},
	{"f", 1e-15},
	{"a", 1e-18},
	{"z", 1e-21},
	{"y", 1e-24},
}

// prefixesByLength holds Prefixes sorted for longest-prefix-first
// stripping during atom lookup ("mmol" must split as m+mol).
var prefixesByLength = func() []Prefix {
	out := make([]Prefix, 0, len(Prefixes))
	// Two-character prefixes first ("da"), then single characters.
	for _, p := range Prefixes {
		if len(p.Symbol) == 2 {
			out = append(out, p)
		}
	}
	for _, p := range Prefixes {
		if len(p.Symbol) == 1 {
			out = append(out, p)
		}
	}
	return out
}()

// LookupPrefix returns the prefix for a symbol. The micro sign is
// accepted as an alias for "u".
func LookupPrefix(symbol string) (Prefix, bool) {
	if symbol == "µ" || symbol == "μ" {
		symbol = "u"
	}
	for _, p := range Prefixes {
		if p.Symbol == symbol {
			return p, true
		}
	}
	return Prefix{}, false
}
