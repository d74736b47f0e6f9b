package dimension

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRationalArithmetic(t *testing.T) {
	half := R(1, 2)
	third := R(1, 3)

	assert.Equal(t, R(5, 6), half.Add(third))
	assert.Equal(t, R(1, 6), half.Sub(third))
	assert.Equal(t, R(1, 6), half.Mul(third))
	assert.Equal(t, R(-1, 2), half.Neg())
}

func TestRationalNormalization(t *testing.T) {
	tests := []struct {
		name string
		in   Rational
		want Rational
	}{
		{name: "reduce", in: R(2, 4), want: R(1, 2)},
		{name: "negative denominator", in: R(1, -2), want: R(-1, 2)},
		{name: "zero", in: R(0, 5), want: Int(0)},
		{name: "integer", in: R(6, 3), want: Int(2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in)
		})
	}
}

func TestRationalZeroValue(t *testing.T) {
	// An unset Vector slot is the zero Rational and must behave as 0/1.
	var zero Rational

	assert.Equal(t, Int(0), zero)
	assert.Equal(t, int64(0), zero.Num())
	assert.Equal(t, int64(1), zero.Den())
	assert.Equal(t, "0", zero.String())

	assert.Equal(t, Int(1), zero.Add(Int(1)))
	assert.Equal(t, Int(-2), zero.Sub(Int(2)))
	assert.Equal(t, Int(0), zero.Mul(R(1, 2)))
}

func TestRationalPredicates(t *testing.T) {
	assert.True(t, Int(0).IsZero())
	assert.False(t, R(1, 2).IsZero())

	assert.True(t, Int(3).IsInt())
	assert.False(t, R(3, 2).IsInt())

	assert.Equal(t, 1, R(1, 2).Sign())
	assert.Equal(t, -1, R(-1, 2).Sign())
	assert.Equal(t, 0, Int(0).Sign())
}

func TestFromFloat(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want Rational
		ok   bool
	}{
		{name: "integer", in: 2, want: Int(2), ok: true},
		{name: "negative integer", in: -3, want: Int(-3), ok: true},
		{name: "half", in: 0.5, want: R(1, 2), ok: true},
		{name: "third", in: 1.0 / 3.0, want: R(1, 3), ok: true},
		{name: "negative half", in: -0.5, want: R(-1, 2), ok: true},
		{name: "irrational", in: 0.14159265358979, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FromFloat(tt.in)
			if !tt.ok {
				assert.False(t, ok)
				return
			}
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRationalString(t *testing.T) {
	assert.Equal(t, "2", Int(2).String())
	assert.Equal(t, "1/2", R(1, 2).String())
	assert.Equal(t, "-3/4", R(-3, 4).String())
}
