package testutil

import (
	"math"
	"math/rand"
	"sync"
	"testing"

	unitgo "github.com/hupe1980/unitgo"
	"github.com/stretchr/testify/require"
)

// RNG encapsulates a seeded random number generator. It is thread-safe
// and resettable, so generated fixtures are reproducible.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// Magnitudes returns n random magnitudes spread across the given
// decade range, e.g. Magnitudes(10, -9, 9) covers nano to giga scale.
// Locks once per call.
func (r *RNG) Magnitudes(n int, minExp, maxExp int) []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]float64, n)
	span := float64(maxExp - minExp)
	for i := range out {
		exp := float64(minExp) + r.rand.Float64()*span
		mantissa := 1 + r.rand.Float64()*9
		out[i] = mantissa * math.Pow(10, exp)
	}
	return out
}

// Signs flips the sign of roughly half the values in place and returns
// the slice.
func (r *RNG) Signs(vals []float64) []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range vals {
		if r.rand.Intn(2) == 1 {
			vals[i] = -vals[i]
		}
	}
	return vals
}

// RequireQuantityNear asserts that got equals want within a relative
// tolerance, after converting got into want's unit. Incompatible
// dimensions fail immediately.
func RequireQuantityNear(t *testing.T, want, got *unitgo.Quantity, relTol float64) {
	t.Helper()

	conv, err := got.ToUnit(want.Unit())
	require.NoError(t, err)

	w := want.Value().Abs()
	g := conv.Value().Abs()

	diff, err := want.Sub(conv)
	require.NoError(t, err)

	scale := math.Max(w, g)
	if scale == 0 {
		require.True(t, diff.Value().IsZero(), "want zero, got %s", conv)
		return
	}
	require.LessOrEqual(t, diff.Value().Abs()/scale, relTol,
		"want %s, got %s", want, conv)
}

// RequireValueNear asserts two floats are equal within a relative
// tolerance, with an absolute floor near zero.
func RequireValueNear(t *testing.T, want, got, relTol float64) {
	t.Helper()

	scale := math.Max(math.Abs(want), math.Abs(got))
	if scale < 1 {
		scale = 1
	}
	require.LessOrEqual(t, math.Abs(want-got)/scale, relTol,
		"want %v, got %v", want, got)
}
