package value

import (
	"math"
	"math/cmplx"
	"strconv"
)

// Scalar is a real-valued payload.
type Scalar float64

// Of wraps a float64 as a payload.
func Of(x float64) Scalar { return Scalar(x) }

func (s Scalar) Add(o Value) (Value, error) {
	switch v := o.(type) {
	case Scalar:
		return s + v, nil
	case Complex:
		return Complex(complex(float64(s), 0)) + v, nil
	case Array:
		return v.mapWith(func(x float64) float64 { return float64(s) + x }), nil
	}
	return nil, ErrKindMismatch
}

func (s Scalar) Sub(o Value) (Value, error) {
	neg := o.Neg()
	return s.Add(neg)
}

func (s Scalar) Mul(o Value) (Value, error) {
	switch v := o.(type) {
	case Scalar:
		return s * v, nil
	case Complex:
		return Complex(complex(float64(s), 0)) * v, nil
	case Array:
		return v.Scale(float64(s)), nil
	}
	return nil, ErrKindMismatch
}

func (s Scalar) Div(o Value) (Value, error) {
	switch v := o.(type) {
	case Scalar:
		return s / v, nil
	case Complex:
		return Complex(complex(float64(s), 0) / complex128(v)), nil
	case Array:
		return v.mapWith(func(x float64) float64 { return float64(s) / x }), nil
	}
	return nil, ErrKindMismatch
}

func (s Scalar) Pow(exp float64) (Value, error) {
	return Scalar(math.Pow(float64(s), exp)), nil
}

func (s Scalar) Scale(f float64) Value { return s * Scalar(f) }

func (s Scalar) Neg() Value { return -s }

func (s Scalar) Abs() float64 { return math.Abs(float64(s)) }

func (s Scalar) IsZero() bool { return s == 0 }

func (s Scalar) Equal(o Value) bool {
	switch v := o.(type) {
	case Scalar:
		return s == v
	case Complex:
		return complex(float64(s), 0) == complex128(v)
	}
	return false
}

func (s Scalar) Compare(o Value) (int, error) {
	v, ok := o.(Scalar)
	if !ok {
		return 0, ErrUnordered
	}
	switch {
	case s < v:
		return -1, nil
	case s > v:
		return 1, nil
	default:
		return 0, nil
	}
}

func (s Scalar) String() string {
	return strconv.FormatFloat(float64(s), 'g', -1, 64)
}

// Complex is a complex-valued payload.
type Complex complex128

// OfComplex wraps a complex128 as a payload.
func OfComplex(x complex128) Complex { return Complex(x) }

func (c Complex) Add(o Value) (Value, error) {
	switch v := o.(type) {
	case Scalar:
		return c + Complex(complex(float64(v), 0)), nil
	case Complex:
		return c + v, nil
	}
	return nil, ErrKindMismatch
}

func (c Complex) Sub(o Value) (Value, error) {
	return c.Add(o.Neg())
}

func (c Complex) Mul(o Value) (Value, error) {
	switch v := o.(type) {
	case Scalar:
		return c * Complex(complex(float64(v), 0)), nil
	case Complex:
		return c * v, nil
	}
	return nil, ErrKindMismatch
}

func (c Complex) Div(o Value) (Value, error) {
	switch v := o.(type) {
	case Scalar:
		return c / Complex(complex(float64(v), 0)), nil
	case Complex:
		return c / v, nil
	}
	return nil, ErrKindMismatch
}

func (c Complex) Pow(exp float64) (Value, error) {
	return Complex(cmplx.Pow(complex128(c), complex(exp, 0))), nil
}

func (c Complex) Scale(f float64) Value { return c * Complex(complex(f, 0)) }

func (c Complex) Neg() Value { return -c }

func (c Complex) Abs() float64 { return cmplx.Abs(complex128(c)) }

func (c Complex) IsZero() bool { return c == 0 }

func (c Complex) Equal(o Value) bool {
	switch v := o.(type) {
	case Scalar:
		return complex128(c) == complex(float64(v), 0)
	case Complex:
		return c == v
	}
	return false
}

func (c Complex) Compare(o Value) (int, error) {
	return 0, ErrUnordered
}

// Real returns the real part as a payload.
func (c Complex) Real() Scalar { return Scalar(real(complex128(c))) }

// Imag returns the imaginary part as a payload.
func (c Complex) Imag() Scalar { return Scalar(imag(complex128(c))) }

func (c Complex) String() string {
	return strconv.FormatComplex(complex128(c), 'g', -1, 128)
}
