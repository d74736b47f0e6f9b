package testutil

import (
	"testing"

	unitgo "github.com/hupe1980/unitgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRNGDeterminism(t *testing.T) {
	a := NewRNG(42)
	b := NewRNG(42)

	assert.Equal(t, a.Magnitudes(16, -9, 9), b.Magnitudes(16, -9, 9))

	a.Reset()
	first := a.Float64()
	a.Reset()
	assert.Equal(t, first, a.Float64())
	assert.Equal(t, int64(42), a.Seed())
}

func TestMagnitudesRange(t *testing.T) {
	rng := NewRNG(1)
	for _, m := range rng.Magnitudes(100, -3, 3) {
		assert.Greater(t, m, 0.0)
		assert.GreaterOrEqual(t, m, 1e-3)
		assert.Less(t, m, 1e4)
	}
}

func TestSigns(t *testing.T) {
	rng := NewRNG(7)
	vals := rng.Signs(rng.Magnitudes(100, 0, 1))

	neg := 0
	for _, v := range vals {
		if v < 0 {
			neg++
		}
	}
	assert.Greater(t, neg, 0)
	assert.Less(t, neg, len(vals))
}

func TestRequireQuantityNear(t *testing.T) {
	want := unitgo.MustQ(1, "m")
	got, err := unitgo.MustQ(1000, "mm").To("m")
	require.NoError(t, err)
	RequireQuantityNear(t, want, got, 1e-12)

	RequireQuantityNear(t, unitgo.MustQ(0, "m"), unitgo.MustQ(0, "mm"), 1e-12)
	RequireValueNear(t, 1.0, 1.0+1e-13, 1e-12)
}
