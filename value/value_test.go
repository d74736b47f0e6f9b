package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScalarArithmetic(t *testing.T) {
	a := Of(6)
	b := Of(2)

	got, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, Of(8), got)

	got, err = a.Sub(b)
	require.NoError(t, err)
	assert.Equal(t, Of(4), got)

	got, err = a.Mul(b)
	require.NoError(t, err)
	assert.Equal(t, Of(12), got)

	got, err = a.Div(b)
	require.NoError(t, err)
	assert.Equal(t, Of(3), got)

	got, err = a.Pow(2)
	require.NoError(t, err)
	assert.Equal(t, Of(36), got)

	assert.Equal(t, Of(-6), a.Neg())
	assert.Equal(t, Of(18), a.Scale(3))
	assert.Equal(t, 6.0, a.Abs())
}

func TestScalarCompare(t *testing.T) {
	c, err := Of(1).Compare(Of(2))
	require.NoError(t, err)
	assert.Equal(t, -1, c)

	c, err = Of(2).Compare(Of(2))
	require.NoError(t, err)
	assert.Equal(t, 0, c)

	_, err = Of(1).Compare(OfComplex(1 + 2i))
	assert.ErrorIs(t, err, ErrUnordered)
}

func TestComplexPromotion(t *testing.T) {
	s := Of(2)
	c := OfComplex(1 + 1i)

	got, err := s.Add(c)
	require.NoError(t, err)
	assert.Equal(t, OfComplex(3+1i), got)

	got, err = c.Mul(s)
	require.NoError(t, err)
	assert.Equal(t, OfComplex(2+2i), got)

	got, err = c.Div(Of(2))
	require.NoError(t, err)
	assert.Equal(t, OfComplex(0.5+0.5i), got)

	assert.Equal(t, Of(1), OfComplex(1+2i).Real())
	assert.Equal(t, Of(2), OfComplex(1+2i).Imag())
	assert.True(t, Of(3).Equal(OfComplex(3)))
}

func TestArrayBroadcast(t *testing.T) {
	a := OfSlice([]float64{1, 2, 3})

	got, err := a.Add(Of(1))
	require.NoError(t, err)
	assert.Equal(t, OfSlice([]float64{2, 3, 4}), got)

	got, err = a.Mul(Of(2))
	require.NoError(t, err)
	assert.Equal(t, OfSlice([]float64{2, 4, 6}), got)

	// Scalar on the left broadcasts too.
	got, err = Of(10).Add(a)
	require.NoError(t, err)
	assert.Equal(t, OfSlice([]float64{11, 12, 13}), got)

	got, err = Of(6).Div(a)
	require.NoError(t, err)
	assert.Equal(t, OfSlice([]float64{6, 3, 2}), got)
}

func TestArrayElementwise(t *testing.T) {
	a := OfSlice([]float64{1, 2, 3})
	b := OfSlice([]float64{4, 5, 6})

	got, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, OfSlice([]float64{5, 7, 9}), got)

	got, err = b.Sub(a)
	require.NoError(t, err)
	assert.Equal(t, OfSlice([]float64{3, 3, 3}), got)

	_, err = a.Add(OfSlice([]float64{1, 2}))
	assert.ErrorIs(t, err, ErrLengthMismatch)
}

func TestArrayAccessors(t *testing.T) {
	src := []float64{1, 2, 3}
	a := OfSlice(src)

	// OfSlice copies.
	src[0] = 99
	assert.Equal(t, 1.0, a.At(0))

	a.Set(1, 42)
	assert.Equal(t, 42.0, a.At(1))
	assert.Equal(t, 3, a.Len())
	assert.Equal(t, 42.0, a.Abs())
}

func TestLinspace(t *testing.T) {
	got := Linspace(0, 1, 5)
	assert.Equal(t, Array{0, 0.25, 0.5, 0.75, 1}, got)

	assert.Equal(t, Array{3}, Linspace(3, 7, 1))
}

func TestIsZero(t *testing.T) {
	assert.True(t, Of(0).IsZero())
	assert.False(t, Of(0.1).IsZero())
	assert.True(t, OfComplex(0).IsZero())
	assert.True(t, OfSlice([]float64{0, 0}).IsZero())
	assert.False(t, OfSlice([]float64{0, 1}).IsZero())
}

func TestKindMismatch(t *testing.T) {
	_, err := OfComplex(1).Add(OfSlice([]float64{1}))
	assert.ErrorIs(t, err, ErrKindMismatch)

	_, err = OfSlice([]float64{1}).Mul(OfComplex(1))
	assert.ErrorIs(t, err, ErrKindMismatch)
}
