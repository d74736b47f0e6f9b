package value

import (
	"math"
	"slices"
	"strconv"
	"strings"
)

// Array is a homogeneous float64 array payload. Arithmetic broadcasts
// against scalars and applies elementwise against arrays of equal length.
type Array []float64

// OfSlice wraps a copy of xs as an array payload.
func OfSlice(xs []float64) Array { return Array(slices.Clone(xs)) }

// Linspace returns n evenly spaced samples over [start, stop].
func Linspace(start, stop float64, n int) Array {
	if n <= 1 {
		return Array{start}
	}
	out := make(Array, n)
	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	return out
}

func (a Array) mapWith(f func(float64) float64) Array {
	out := make(Array, len(a))
	for i, x := range a {
		out[i] = f(x)
	}
	return out
}

func (a Array) zipWith(b Array, f func(x, y float64) float64) (Array, error) {
	if len(a) != len(b) {
		return nil, ErrLengthMismatch
	}
	out := make(Array, len(a))
	for i := range a {
		out[i] = f(a[i], b[i])
	}
	return out, nil
}

func (a Array) Add(o Value) (Value, error) {
	switch v := o.(type) {
	case Scalar:
		return a.mapWith(func(x float64) float64 { return x + float64(v) }), nil
	case Array:
		return a.zipWith(v, func(x, y float64) float64 { return x + y })
	}
	return nil, ErrKindMismatch
}

func (a Array) Sub(o Value) (Value, error) {
	switch v := o.(type) {
	case Scalar:
		return a.mapWith(func(x float64) float64 { return x - float64(v) }), nil
	case Array:
		return a.zipWith(v, func(x, y float64) float64 { return x - y })
	}
	return nil, ErrKindMismatch
}

func (a Array) Mul(o Value) (Value, error) {
	switch v := o.(type) {
	case Scalar:
		return a.Scale(float64(v)), nil
	case Array:
		return a.zipWith(v, func(x, y float64) float64 { return x * y })
	}
	return nil, ErrKindMismatch
}

func (a Array) Div(o Value) (Value, error) {
	switch v := o.(type) {
	case Scalar:
		return a.Scale(1 / float64(v)), nil
	case Array:
		return a.zipWith(v, func(x, y float64) float64 { return x / y })
	}
	return nil, ErrKindMismatch
}

func (a Array) Pow(exp float64) (Value, error) {
	return a.mapWith(func(x float64) float64 { return math.Pow(x, exp) }), nil
}

func (a Array) Scale(f float64) Value {
	return Value(a.mapWith(func(x float64) float64 { return x * f }))
}

func (a Array) Neg() Value {
	return Value(a.mapWith(func(x float64) float64 { return -x }))
}

func (a Array) Abs() float64 {
	m := 0.0
	for _, x := range a {
		if ax := math.Abs(x); ax > m {
			m = ax
		}
	}
	return m
}

func (a Array) IsZero() bool {
	for _, x := range a {
		if x != 0 {
			return false
		}
	}
	return true
}

func (a Array) Equal(o Value) bool {
	v, ok := o.(Array)
	return ok && slices.Equal(a, v)
}

func (a Array) Compare(o Value) (int, error) {
	return 0, ErrUnordered
}

// Len returns the number of elements.
func (a Array) Len() int { return len(a) }

// At returns the element at index i.
func (a Array) At(i int) float64 { return a[i] }

// Set writes a raw magnitude into the backing array at index i. The
// caller is responsible for converting the magnitude to the container's
// unit first.
func (a Array) Set(i int, x float64) { a[i] = x }

func (a Array) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, x := range a {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.FormatFloat(x, 'g', -1, 64))
	}
	b.WriteByte(']')
	return b.String()
}
