package dimension

import (
	"fmt"
	"math"
	"strconv"
)

// Rational is an exact fraction with a reduced numerator/denominator
// pair. The zero value is 0/1: the denominator is stored offset by one,
// so an unset exponent slot is a valid zero exponent. The denominator is
// always positive and the fraction always reduced, which keeps struct
// equality exact equality.
type Rational struct {
	num  int64
	den1 int64 // denominator - 1
}

// R returns the reduced rational num/den. It panics if den is zero;
// exponents never have a zero denominator by construction.
func R(num, den int64) Rational {
	if den == 0 {
		panic("dimension: zero denominator")
	}
	if den < 0 {
		num, den = -num, -den
	}
	g := gcd(abs64(num), den)
	if g > 1 {
		num /= g
		den /= g
	}
	return Rational{num: num, den1: den - 1}
}

// Int returns the rational n/1.
func Int(n int64) Rational {
	return Rational{num: n}
}

// FromFloat converts a float exponent to an exact rational, accepting
// denominators up to 1e6. Reports false for NaN, infinities and floats
// that are not close to any such fraction.
func FromFloat(f float64) (Rational, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Rational{}, false
	}
	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return Int(int64(f)), true
	}
	// Continued-fraction expansion, bounded denominator.
	const maxDen = 1_000_000
	h0, h1 := int64(0), int64(1)
	k0, k1 := int64(1), int64(0)
	x := f
	for i := 0; i < 64; i++ {
		a := int64(math.Floor(x))
		h0, h1 = h1, a*h1+h0
		k0, k1 = k1, a*k1+k0
		if k1 > maxDen {
			break
		}
		if approx := float64(h1) / float64(k1); math.Abs(approx-f) < 1e-12 {
			return R(h1, k1), true
		}
		frac := x - math.Floor(x)
		if frac == 0 {
			break
		}
		x = 1 / frac
	}
	return Rational{}, false
}

// Num returns the reduced numerator.
func (r Rational) Num() int64 { return r.num }

// Den returns the positive denominator.
func (r Rational) Den() int64 { return r.den1 + 1 }

// Add returns r + o.
func (r Rational) Add(o Rational) Rational {
	return R(r.num*o.Den()+o.num*r.Den(), r.Den()*o.Den())
}

// Sub returns r - o.
func (r Rational) Sub(o Rational) Rational {
	return R(r.num*o.Den()-o.num*r.Den(), r.Den()*o.Den())
}

// Mul returns r * o.
func (r Rational) Mul(o Rational) Rational {
	return R(r.num*o.num, r.Den()*o.Den())
}

// Neg returns -r.
func (r Rational) Neg() Rational {
	return Rational{num: -r.num, den1: r.den1}
}

// IsZero reports whether r is exactly zero.
func (r Rational) IsZero() bool {
	return r.num == 0
}

// IsInt reports whether r is a whole number.
func (r Rational) IsInt() bool {
	return r.den1 == 0
}

// Sign returns -1, 0 or 1.
func (r Rational) Sign() int {
	switch {
	case r.num < 0:
		return -1
	case r.num > 0:
		return 1
	default:
		return 0
	}
}

// Float returns the rational as a float64.
func (r Rational) Float() float64 {
	return float64(r.num) / float64(r.Den())
}

func (r Rational) String() string {
	if r.den1 == 0 {
		return strconv.FormatInt(r.num, 10)
	}
	return fmt.Sprintf("%d/%d", r.num, r.Den())
}

// Exp renders the rational as an exponent that re-parses to the same
// value: integers bare, fractions parenthesized ("(1/2)").
func (r Rational) Exp() string {
	if r.den1 == 0 {
		return strconv.FormatInt(r.num, 10)
	}
	return fmt.Sprintf("(%d/%d)", r.num, r.Den())
}

func abs64(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	if a == 0 {
		return 1
	}
	return a
}
