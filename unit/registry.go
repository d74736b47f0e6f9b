package unit

import (
	"io"
	"log/slog"
	"sort"
	"sync"

	"github.com/hupe1980/unitgo/dimension"
	"golang.org/x/sync/singleflight"
)

// Registry maps unit names to descriptors and resolves compound unit
// expressions. A Registry is safe for concurrent Resolve calls;
// Register serializes against them. Prefixed forms ("km", "mV") are
// derived on demand, never enumerated.
type Registry struct {
	mu    sync.RWMutex
	units map[string]*Unit

	cache sync.Map // canonical expression -> *Unit
	group singleflight.Group

	logger *slog.Logger
}

type registryOptions struct {
	logger *slog.Logger
	bare   bool
}

// Option configures Registry construction.
type Option func(*registryOptions)

// WithLogger attaches a structured logger. Registration and cache
// invalidation are logged at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(o *registryOptions) {
		o.logger = l
	}
}

// WithoutStandardUnits starts the registry empty instead of preloading
// the SI tables. Mainly useful in tests.
func WithoutStandardUnits() Option {
	return func(o *registryOptions) {
		o.bare = true
	}
}

// NewRegistry returns a registry preloaded with the SI base units, the
// named derived units and the non-SI table, unless configured otherwise.
func NewRegistry(opts ...Option) *Registry {
	var o registryOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	r := &Registry{
		units:  make(map[string]*Unit),
		logger: o.logger,
	}
	if !o.bare {
		loadStandardUnits(r)
	}
	return r
}

var (
	defaultOnce sync.Once
	defaultReg  *Registry
)

// Default returns the process-wide registry, built once on first use.
// Extend it with Register before concurrent use begins.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultReg = NewRegistry()
	})
	return defaultReg
}

// Resolve resolves a unit name or compound expression to a Unit.
// Results are memoized by expression string; concurrent resolves of the
// same expression share one parse.
func (r *Registry) Resolve(expr string) (*Unit, error) {
	if u, ok := r.cache.Load(expr); ok {
		return u.(*Unit), nil
	}
	v, err, _ := r.group.Do(expr, func() (any, error) {
		u, err := r.parseExpression(expr)
		if err != nil {
			return nil, err
		}
		r.cache.Store(expr, u)
		return u, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Unit), nil
}

// MustResolve is Resolve for expressions known to be valid; it panics
// on error.
func (r *Registry) MustResolve(expr string) *Unit {
	u, err := r.Resolve(expr)
	if err != nil {
		panic(err)
	}
	return u
}

// lookupAtom resolves a single name token: exact table match first, then
// longest-prefix-first stripping of a recognized SI prefix. Explicit
// named units always win over prefixed-base forms.
func (r *Registry) lookupAtom(token string) (*Unit, error) {
	name := normalizeMicro(token)

	r.mu.RLock()
	u, ok := r.units[name]
	r.mu.RUnlock()
	if ok {
		return u, nil
	}

	for _, p := range prefixesByLength {
		rest, ok := cutPrefix(name, p.Symbol)
		if !ok {
			continue
		}
		r.mu.RLock()
		base, ok := r.units[rest]
		r.mu.RUnlock()
		if !ok {
			continue
		}
		if base.offset != 0 || base.prefixed {
			continue
		}
		return prefixUnit(p, name, base), nil
	}
	return nil, &UnknownUnitError{Name: token}
}

// prefixUnit derives the prefixed form of a named unit on demand.
func prefixUnit(p Prefix, name string, base *Unit) *Unit {
	u := newNamed(name, base.dim, p.Factor*base.factor, 0)
	u.prefixed = true
	u.baseName = base.Name()
	return u
}

// Register adds a unit under a canonical name. Re-registering an
// identical unit is a no-op; a conflicting registration fails with
// DuplicateUnitError. Registration invalidates the resolve cache.
func (r *Registry) Register(name string, u *Unit) error {
	name = normalizeMicro(name)

	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.units[name]; ok {
		if existing.Equal(u) {
			return nil
		}
		return &DuplicateUnitError{Name: name}
	}
	named := *u
	named.comps = []component{{name: name, exp: dimension.Int(1)}}
	r.units[name] = &named
	r.invalidateLocked()
	r.logger.Debug("unit registered", "name", name, "dimension", named.dim.String(), "factor", named.factor)
	return nil
}

// RegisterComposite defines a named unit as factor times an existing
// expression, e.g. RegisterComposite("mph", 0.44704, "m/s").
func (r *Registry) RegisterComposite(name string, factor float64, expr string) (*Unit, error) {
	base, err := r.Resolve(expr)
	if err != nil {
		return nil, err
	}
	u := newNamed(name, base.dim, factor*base.factor, base.offset)
	if err := r.Register(name, u); err != nil {
		return nil, err
	}
	return r.lookupAtom(name)
}

// invalidateLocked drops the memoized resolve results. Called with the
// write lock held so in-flight scans never observe a partial table.
func (r *Registry) invalidateLocked() {
	r.cache.Range(func(k, _ any) bool {
		r.cache.Delete(k)
		return true
	})
}

// Info describes a registered unit for listing/help tooling.
type Info struct {
	Name      string
	Dimension string
	Factor    float64
	Offset    float64
	IsBase    bool
}

// List returns the registered units sorted by name. Derived prefixed
// forms are not enumerated.
func (r *Registry) List() []Info {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Info, 0, len(r.units))
	for name, u := range r.units {
		out = append(out, Info{
			Name:      name,
			Dimension: u.dim.String(),
			Factor:    u.factor,
			Offset:    u.offset,
			IsBase:    u.isBase,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func normalizeMicro(name string) string {
	out := make([]rune, 0, len(name))
	for _, r := range name {
		if r == 'µ' || r == 'μ' {
			r = 'u'
		}
		out = append(out, r)
	}
	return string(out)
}

func cutPrefix(s, prefix string) (string, bool) {
	if len(s) <= len(prefix) || s[:len(prefix)] != prefix {
		return "", false
	}
	return s[len(prefix):], true
}
