package unit

import (
	"testing"

	"github.com/hupe1980/unitgo/dimension"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitAlgebra(t *testing.T) {
	reg := Default()
	m := reg.MustResolve("m")
	s := reg.MustResolve("s")
	kg := reg.MustResolve("kg")

	v, err := m.Div(s)
	require.NoError(t, err)
	assert.Equal(t, "m/s", v.Name())
	assert.Equal(t, dimension.Of(1, 0, -1), v.Dimension())

	a, err := v.Div(s)
	require.NoError(t, err)
	f, err := a.Mul(kg)
	require.NoError(t, err)
	assert.Equal(t, dimension.Of(1, 1, -2), f.Dimension())
	assert.Equal(t, 1.0, f.Factor())

	sq, err := m.Pow(dimension.Int(2))
	require.NoError(t, err)
	assert.Equal(t, "m**2", sq.Name())

	inv, err := s.Inv()
	require.NoError(t, err)
	assert.Equal(t, "1/s", inv.Name())
}

func TestUnitNameCancellation(t *testing.T) {
	reg := Default()
	m := reg.MustResolve("m")
	s := reg.MustResolve("s")

	v, err := m.Div(s)
	require.NoError(t, err)
	back, err := v.Mul(s)
	require.NoError(t, err)

	// The s factors cancel out of the display composition.
	assert.Equal(t, "m", back.Name())
	assert.True(t, back.Equal(m))
}

func TestConversionFactor(t *testing.T) {
	reg := Default()

	tests := []struct {
		name string
		from string
		to   string
		want float64
	}{
		{name: "km to m", from: "km", to: "m", want: 1000},
		{name: "m to mm", from: "m", to: "mm", want: 1000},
		{name: "h to s", from: "h", to: "s", want: 3600},
		{name: "inch to mm", from: "inch", to: "mm", want: 25.4},
		{name: "mile to km", from: "mile", to: "km", want: 1.609344},
		{name: "N to m*kg/s**2", from: "N", to: "m*kg/s**2", want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from := reg.MustResolve(tt.from)
			to := reg.MustResolve(tt.to)
			got, err := from.ConversionFactorTo(to)
			require.NoError(t, err)
			assert.InEpsilon(t, tt.want, got, 1e-12)
		})
	}
}

func TestConversionFactorIncompatible(t *testing.T) {
	reg := Default()
	m := reg.MustResolve("m")
	s := reg.MustResolve("s")

	_, err := m.ConversionFactorTo(s)
	assert.ErrorIs(t, err, ErrIncompatible)
}

func TestConversionTupleTemperature(t *testing.T) {
	reg := Default()
	degC := reg.MustResolve("degC")
	degF := reg.MustResolve("degF")
	k := reg.MustResolve("K")

	convert := func(x float64, from, to *Unit) float64 {
		factor, offset, err := from.ConversionTupleTo(to)
		require.NoError(t, err)
		return (x + offset) * factor
	}

	assert.InDelta(t, 273.15, convert(0, degC, k), 1e-9)
	assert.InDelta(t, 100, convert(373.15, k, degC), 1e-9)
	assert.InDelta(t, 212, convert(100, degC, degF), 1e-9)
	assert.InDelta(t, 0, convert(32, degF, degC), 1e-9)
	assert.InDelta(t, 233.15, convert(-40, degC, k), 1e-9)

	// degF and degC agree at -40.
	assert.InDelta(t, -40, convert(-40, degF, degC), 1e-9)
}

func TestOffsetUnitsRefuseComposition(t *testing.T) {
	reg := Default()
	degC := reg.MustResolve("degC")
	m := reg.MustResolve("m")

	_, err := degC.Mul(m)
	assert.ErrorIs(t, err, ErrOffsetUnit)
	_, err = m.Div(degC)
	assert.ErrorIs(t, err, ErrOffsetUnit)
	_, err = degC.Pow(dimension.Int(2))
	assert.ErrorIs(t, err, ErrOffsetUnit)
}

func TestSimpleAndBase(t *testing.T) {
	reg := Default()

	m := reg.MustResolve("m")
	assert.True(t, m.Simple())
	assert.True(t, m.IsBase())
	assert.Equal(t, "m", m.BaseName())

	km := reg.MustResolve("km")
	assert.True(t, km.Simple())
	assert.True(t, km.Prefixed())
	assert.False(t, km.IsBase())
	assert.Equal(t, "m", km.BaseName())

	v := reg.MustResolve("m/s")
	assert.False(t, v.Simple())
}

func TestDimensionless(t *testing.T) {
	one := Dimensionless()
	assert.True(t, one.IsDimensionless())
	assert.Equal(t, 1.0, one.Factor())
	assert.Equal(t, "1", one.Name())
}
