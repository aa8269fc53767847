// Package symbolic is a small exact-arithmetic engine for the solver
// strategies: rational numbers, univariate polynomials, and quadratic root
// finding. It is deliberately not a computer-algebra system — it covers the
// bounded set of shapes the solving strategies recognize.
package symbolic

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Rat is an exact rational number. Den is always positive and the fraction
// is always reduced.
type Rat struct {
	Num int64
	Den int64
}

// NewRat builds a reduced rational n/d. Panics on zero denominator, which
// indicates a programming error rather than bad input.
func NewRat(n, d int64) Rat {
	if d == 0 {
		panic("symbolic: zero denominator")
	}
	if d < 0 {
		n, d = -n, -d
	}
	g := gcd(abs(n), d)
	return Rat{Num: n / g, Den: d / g}
}

// RatFromInt builds the rational n/1.
func RatFromInt(n int64) Rat {
	return Rat{Num: n, Den: 1}
}

// ParseRat parses "3", "-5", "2.75" or "3/4" into an exact rational.
func ParseRat(s string) (Rat, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Rat{}, fmt.Errorf("empty number")
	}

	if num, den, ok := strings.Cut(s, "/"); ok {
		n, err := strconv.ParseInt(strings.TrimSpace(num), 10, 64)
		if err != nil {
			return Rat{}, fmt.Errorf("parse numerator %q: %w", num, err)
		}
		d, err := strconv.ParseInt(strings.TrimSpace(den), 10, 64)
		if err != nil {
			return Rat{}, fmt.Errorf("parse denominator %q: %w", den, err)
		}
		if d == 0 {
			return Rat{}, fmt.Errorf("zero denominator in %q", s)
		}
		return NewRat(n, d), nil
	}

	if intPart, fracPart, ok := strings.Cut(s, "."); ok {
		neg := strings.HasPrefix(intPart, "-")
		i, err := strconv.ParseInt(intPart, 10, 64)
		if err != nil {
			return Rat{}, fmt.Errorf("parse %q: %w", s, err)
		}
		f, err := strconv.ParseInt(fracPart, 10, 64)
		if err != nil {
			return Rat{}, fmt.Errorf("parse %q: %w", s, err)
		}
		scale := int64(1)
		for range len(fracPart) {
			scale *= 10
		}
		n := abs(i)*scale + f
		if neg {
			n = -n
		}
		return NewRat(n, scale), nil
	}

	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return Rat{}, fmt.Errorf("parse %q: %w", s, err)
	}
	return RatFromInt(n), nil
}

// norm makes the zero value Rat{} usable as 0/1.
func (r Rat) norm() Rat {
	if r.Den == 0 {
		r.Den = 1
	}
	return r
}

func (r Rat) Add(o Rat) Rat {
	r, o = r.norm(), o.norm()
	return NewRat(r.Num*o.Den+o.Num*r.Den, r.Den*o.Den)
}

func (r Rat) Sub(o Rat) Rat {
	r, o = r.norm(), o.norm()
	return NewRat(r.Num*o.Den-o.Num*r.Den, r.Den*o.Den)
}

func (r Rat) Mul(o Rat) Rat {
	r, o = r.norm(), o.norm()
	return NewRat(r.Num*o.Num, r.Den*o.Den)
}

// Div divides by o. Panics on division by zero.
func (r Rat) Div(o Rat) Rat {
	r, o = r.norm(), o.norm()
	if o.Num == 0 {
		panic("symbolic: division by zero")
	}
	return NewRat(r.Num*o.Den, r.Den*o.Num)
}

func (r Rat) Neg() Rat       { r = r.norm(); return Rat{Num: -r.Num, Den: r.Den} }
func (r Rat) IsZero() bool   { return r.Num == 0 }
func (r Rat) IsOne() bool    { r = r.norm(); return r.Num == 1 && r.Den == 1 }
func (r Rat) IsInt() bool    { return r.norm().Den == 1 }
func (r Rat) Float() float64 { r = r.norm(); return float64(r.Num) / float64(r.Den) }

// Sign returns -1, 0 or 1.
func (r Rat) Sign() int {
	switch {
	case r.Num < 0:
		return -1
	case r.Num > 0:
		return 1
	default:
		return 0
	}
}

// String renders "3", "-5" or "3/4".
func (r Rat) String() string {
	r = r.norm()
	if r.Den == 1 {
		return strconv.FormatInt(r.Num, 10)
	}
	return fmt.Sprintf("%d/%d", r.Num, r.Den)
}

// Sqrt returns the exact rational square root and true when both numerator
// and denominator are perfect squares, otherwise the zero Rat and false.
func (r Rat) Sqrt() (Rat, bool) {
	r = r.norm()
	if r.Sign() < 0 {
		return Rat{}, false
	}
	sn, okN := intSqrt(r.Num)
	sd, okD := intSqrt(r.Den)
	if !okN || !okD {
		return Rat{}, false
	}
	return NewRat(sn, sd), true
}

// intSqrt returns the integer square root of n and whether n is a perfect
// square.
func intSqrt(n int64) (int64, bool) {
	if n < 0 {
		return 0, false
	}
	s := int64(math.Round(math.Sqrt(float64(n))))
	for s > 0 && s*s > n {
		s--
	}
	for (s+1)*(s+1) <= n {
		s++
	}
	return s, s*s == n
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

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}
