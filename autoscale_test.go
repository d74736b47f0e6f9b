package unitgo

import (
	"testing"

	"github.com/hupe1980/unitgo/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAutoscale(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		in       string
		wantVal  float64
		wantUnit string
	}{
		{name: "down to mm", value: 0.003, in: "m", wantVal: 3, wantUnit: "mm"},
		{name: "up to km", value: 4500, in: "m", wantVal: 4.5, wantUnit: "km"},
		{name: "exact thousand rolls over", value: 1000, in: "m", wantVal: 1, wantUnit: "km"},
		{name: "stays put", value: 12, in: "m", wantVal: 12, wantUnit: "m"},
		{name: "prefixed input renormalizes", value: 12000, in: "mV", wantVal: 12, wantUnit: "V"},
		{name: "tiny current", value: 2e-8, in: "A", wantVal: 20, wantUnit: "nA"},
		{name: "negative values scale by magnitude", value: -0.003, in: "m", wantVal: -3, wantUnit: "mm"},
		{name: "above yotta clamps", value: 5e27, in: "m", wantVal: 5000, wantUnit: "Ym"},
		{name: "below yocto clamps", value: 1e-27, in: "m", wantVal: 0.001, wantUnit: "ym"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := MustQ(tt.value, tt.in)
			got, err := q.Autoscale()
			require.NoError(t, err)
			assert.Equal(t, tt.wantUnit, got.Unit().Name())
			assert.InEpsilon(t, tt.wantVal, float64(got.Value().(value.Scalar)), 1e-9)
		})
	}
}

func TestAutoscaleZero(t *testing.T) {
	got, err := MustQ(0, "km").Autoscale()
	require.NoError(t, err)
	assert.Equal(t, "0 m", got.String())
}

func TestAutoscaleCompoundAndOffsetUnchanged(t *testing.T) {
	v := MustQ(12345, "m/s")
	got, err := v.Autoscale()
	require.NoError(t, err)
	assert.Same(t, v, got)

	temp := MustQ(12345, "degC")
	got, err = temp.Autoscale()
	require.NoError(t, err)
	assert.Same(t, temp, got)
}

func TestAutoscaleNonMetricBase(t *testing.T) {
	// Autoscale works against the unit's own base name, so an hour
	// quantity scales across prefixed hours rather than seconds.
	q := MustQ(2, "h")
	got, err := q.Autoscale()
	require.NoError(t, err)
	assert.Equal(t, "2 h", got.String())
}

func TestToTuple(t *testing.T) {
	parts, err := MustQ(1000, "s").ToTuple("h", "min", "s")
	require.NoError(t, err)
	require.Len(t, parts, 3)
	assert.Equal(t, "h", parts[0].Unit().Name())
	assert.Equal(t, value.Of(0), parts[0].Value())
	assert.Equal(t, "min", parts[1].Unit().Name())
	assert.Equal(t, value.Of(16), parts[1].Value())
	assert.Equal(t, "s", parts[2].Unit().Name())
	assert.InDelta(t, 40, float64(parts[2].Value().(value.Scalar)), 1e-9)

	// Specs are sorted by factor, so order does not matter.
	parts, err = MustQ(5000, "m").ToTuple("m", "km")
	require.NoError(t, err)
	assert.Equal(t, "km", parts[0].Unit().Name())
	assert.Equal(t, value.Of(5), parts[0].Value())
	assert.Equal(t, "m", parts[1].Unit().Name())
	assert.InDelta(t, 0, float64(parts[1].Value().(value.Scalar)), 1e-9)
}

func TestToTupleErrors(t *testing.T) {
	_, err := MustQ(1000, "s").ToTuple("h", "m")
	require.Error(t, err)

	arr, err := QArr([]float64{1, 2}, "s")
	require.NoError(t, err)
	_, err = arr.ToTuple("min", "s")
	assert.ErrorIs(t, err, ErrNotIndexable)
}

func TestToTupleSingle(t *testing.T) {
	parts, err := MustQ(90, "min").ToTuple("h")
	require.NoError(t, err)
	require.Len(t, parts, 1)
	assert.Equal(t, value.Of(1.5), parts[0].Value())
}
