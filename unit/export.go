package unit

import (
	"sort"
	"sync"

	"github.com/hupe1980/unitgo/dimension"
)

// Def is a self-contained, serializable unit definition. The dimension
// is stored as numerator/denominator pairs per base dimension so
// rational exponents round-trip exactly.
type Def struct {
	Name      string                      `json:"name"`
	Factor    float64                     `json:"factor"`
	Offset    float64                     `json:"offset"`
	Dimension [dimension.NumBase][2]int64 `json:"dimension"`
}

func defOf(name string, u *Unit) Def {
	var d Def
	d.Name = name
	d.Factor = u.factor
	d.Offset = u.offset
	for i, r := range u.dim {
		d.Dimension[i] = [2]int64{r.Num(), r.Den()}
	}
	return d
}

func (d Def) unit() *Unit {
	var dim dimension.Vector
	for i, nd := range d.Dimension {
		// Hand-written defs may leave zero slots fully zeroed.
		den := nd[1]
		if den == 0 {
			den = 1
		}
		dim[i] = dimension.R(nd[0], den)
	}
	return newNamed(d.Name, dim, d.Factor, d.Offset)
}

var (
	stdNamesOnce sync.Once
	stdNames     map[string]struct{}
)

func standardNames() map[string]struct{} {
	stdNamesOnce.Do(func() {
		std := NewRegistry()
		stdNames = make(map[string]struct{}, len(std.units))
		for name := range std.units {
			stdNames[name] = struct{}{}
		}
	})
	return stdNames
}

// Export returns definitions for every registered unit, sorted by name.
func (r *Registry) Export() []Def {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Def, 0, len(r.units))
	for name, u := range r.units {
		out = append(out, defOf(name, u))
	}
	sortDefs(out)
	return out
}

// ExportCustom returns definitions for units that are not part of the
// standard tables, sorted by name. This is what a catalog snapshot
// persists.
func (r *Registry) ExportCustom() []Def {
	std := standardNames()

	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Def, 0)
	for name, u := range r.units {
		if _, ok := std[name]; ok {
			continue
		}
		out = append(out, defOf(name, u))
	}
	sortDefs(out)
	return out
}

// Apply registers every definition. Re-applying an identical definition
// is a no-op; a conflicting one fails with DuplicateUnitError.
func (r *Registry) Apply(defs []Def) error {
	for _, d := range defs {
		if err := r.Register(d.Name, d.unit()); err != nil {
			return err
		}
	}
	return nil
}

func sortDefs(defs []Def) {
	sort.Slice(defs, func(i, j int) bool { return defs[i].Name < defs[j].Name })
}
