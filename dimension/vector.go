package dimension

import "strings"

// Base dimension slots, in canonical order.
const (
	Length = iota
	Mass
	Time
	Current
	Temperature
	Amount
	Luminous
	Angle
	SolidAngle

	// NumBase is the number of base dimensions.
	NumBase
)

// BaseNames holds the coherent SI unit symbol for each base dimension.
var BaseNames = [NumBase]string{"m", "kg", "s", "A", "K", "mol", "cd", "rad", "sr"}

// Vector is a fixed-length vector of rational exponents, one per base
// dimension. The zero value is dimensionless. Vectors are immutable
// value types: all operations return a new Vector.
type Vector [NumBase]Rational

// Scalar is the dimensionless vector.
var Scalar Vector

// Of builds a vector from integer exponents in canonical slot order.
// Missing trailing exponents are zero.
func Of(exponents ...int64) Vector {
	var v Vector
	for i, e := range exponents {
		v[i] = Int(e)
	}
	return v
}

// Mul returns the dimension of a product: elementwise sum.
func (v Vector) Mul(o Vector) Vector {
	var out Vector
	for i := range v {
		out[i] = v[i].Add(o[i])
	}
	return out
}

// Div returns the dimension of a quotient: elementwise difference.
func (v Vector) Div(o Vector) Vector {
	var out Vector
	for i := range v {
		out[i] = v[i].Sub(o[i])
	}
	return out
}

// Pow returns the dimension raised to a rational exponent.
func (v Vector) Pow(exp Rational) Vector {
	var out Vector
	for i := range v {
		out[i] = v[i].Mul(exp)
	}
	return out
}

// Inv returns the reciprocal dimension.
func (v Vector) Inv() Vector {
	var out Vector
	for i := range v {
		out[i] = v[i].Neg()
	}
	return out
}

// IsZero reports whether the vector is dimensionless.
func (v Vector) IsZero() bool {
	for i := range v {
		if !v[i].IsZero() {
			return false
		}
	}
	return true
}

// Equal reports exact component-wise equality. Rationals are kept
// reduced, so struct equality is exact equality.
func (v Vector) Equal(o Vector) bool {
	return v == o
}

// String renders the dimension in coherent base symbols, e.g.
// "m*kg/s**2" for force or "1" for a dimensionless vector.
func (v Vector) String() string {
	var num, denom strings.Builder
	for i := range v {
		e := v[i]
		switch {
		case e.Sign() > 0:
			num.WriteByte('*')
			num.WriteString(BaseNames[i])
			if e != Int(1) {
				num.WriteString("**")
				num.WriteString(e.Exp())
			}
		case e.Sign() < 0:
			denom.WriteByte('/')
			denom.WriteString(BaseNames[i])
			if e != Int(-1) {
				denom.WriteString("**")
				denom.WriteString(e.Neg().Exp())
			}
		}
	}
	n := num.String()
	if n == "" {
		n = "1"
	} else {
		n = n[1:]
	}
	return n + denom.String()
}
