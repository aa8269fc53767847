package symbolic

import (
	"fmt"
	"regexp"
	"strings"
)

// Poly is a univariate polynomial with rational coefficients.
// coeffs[i] is the coefficient of x^i. The zero polynomial has one zero
// coefficient.
type Poly struct {
	coeffs []Rat
}

// NewPoly builds a polynomial from coefficients in ascending degree order.
func NewPoly(coeffs ...Rat) Poly {
	p := Poly{coeffs: coeffs}
	p.trim()
	return p
}

// Normalize rewrites common notation variants into the canonical form the
// parser accepts: unicode superscripts and ** become ^, unicode operators
// become ASCII. Normalization must run before any parsing.
func Normalize(s string) string {
	r := strings.NewReplacer(
		"**", "^",
		"²", "^2",
		"³", "^3",
		"×", "*",
		"÷", "/",
		"−", "-",
		"–", "-",
	)
	return r.Replace(s)
}

// termRe matches one polynomial term: optional sign, optional coefficient,
// optional variable with optional power. Applied left to right over a
// normalized expression.
var termRe = regexp.MustCompile(`^\s*([+-]?)\s*(\d+(?:\.\d+)?)?\s*\*?\s*([a-z])?(?:\s*\^\s*(\d+))?`)

// ParsePoly parses a normalized polynomial expression in the given variable,
// e.g. "3x^3 + 2x^2 - 5x + 1" or "x^2+5x+6". Terms in any other variable,
// non-polynomial functions, or trailing garbage are parse errors.
func ParsePoly(expr string, variable byte) (Poly, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return Poly{}, fmt.Errorf("empty expression")
	}

	coeffs := map[int]Rat{}
	rest := expr
	first := true

	for strings.TrimSpace(rest) != "" {
		m := termRe.FindStringSubmatch(rest)
		if m == nil || m[0] == "" || strings.TrimSpace(m[0]) == "" {
			return Poly{}, fmt.Errorf("unparseable term at %q", rest)
		}
		sign, coefStr, varStr, powStr := m[1], m[2], m[3], m[4]

		if coefStr == "" && varStr == "" {
			return Poly{}, fmt.Errorf("unparseable term at %q", rest)
		}
		if !first && sign == "" {
			return Poly{}, fmt.Errorf("missing operator at %q", rest)
		}
		if varStr != "" && varStr[0] != variable {
			return Poly{}, fmt.Errorf("unexpected variable %q (want %c)", varStr, variable)
		}

		coef := RatFromInt(1)
		if coefStr != "" {
			var err error
			coef, err = ParseRat(coefStr)
			if err != nil {
				return Poly{}, err
			}
		}
		if sign == "-" {
			coef = coef.Neg()
		}

		deg := 0
		if varStr != "" {
			deg = 1
			if powStr != "" {
				fmt.Sscanf(powStr, "%d", &deg)
			}
		} else if powStr != "" {
			return Poly{}, fmt.Errorf("power without variable at %q", rest)
		}

		coeffs[deg] = coeffs[deg].Add(coef)
		rest = rest[len(m[0]):]
		first = false
	}

	maxDeg := 0
	for d := range coeffs {
		if d > maxDeg {
			maxDeg = d
		}
	}
	out := make([]Rat, maxDeg+1)
	for d, c := range coeffs {
		out[d] = c
	}
	return NewPoly(out...), nil
}

// Degree returns the polynomial degree (0 for constants and the zero
// polynomial).
func (p Poly) Degree() int {
	return len(p.coeffs) - 1
}

// Coeff returns the coefficient of x^deg.
func (p Poly) Coeff(deg int) Rat {
	if deg < 0 || deg >= len(p.coeffs) {
		return Rat{}
	}
	return p.coeffs[deg]
}

// IsZero reports whether p is the zero polynomial.
func (p Poly) IsZero() bool {
	return p.Degree() == 0 && p.Coeff(0).IsZero()
}

// Sub returns p - o.
func (p Poly) Sub(o Poly) Poly {
	n := len(p.coeffs)
	if len(o.coeffs) > n {
		n = len(o.coeffs)
	}
	out := make([]Rat, n)
	for i := range out {
		out[i] = p.Coeff(i).Sub(o.Coeff(i))
	}
	return NewPoly(out...)
}

// Derivative returns d/dx of p.
func (p Poly) Derivative() Poly {
	if p.Degree() == 0 {
		return NewPoly(Rat{})
	}
	out := make([]Rat, p.Degree())
	for d := 1; d <= p.Degree(); d++ {
		out[d-1] = p.Coeff(d).Mul(RatFromInt(int64(d)))
	}
	return NewPoly(out...)
}

// Antiderivative returns the antiderivative of p with zero constant term.
func (p Poly) Antiderivative() Poly {
	out := make([]Rat, p.Degree()+2)
	for d := 0; d <= p.Degree(); d++ {
		out[d+1] = p.Coeff(d).Div(RatFromInt(int64(d + 1)))
	}
	return NewPoly(out...)
}

// String renders the polynomial in descending degree order with ^ powers,
// e.g. "3x^3 + 2x^2 - 5x + 1".
func (p Poly) String() string {
	return p.Format('x')
}

// Format renders the polynomial using the given variable letter.
func (p Poly) Format(variable byte) string {
	if p.IsZero() {
		return "0"
	}

	var b strings.Builder
	for d := p.Degree(); d >= 0; d-- {
		c := p.Coeff(d)
		if c.IsZero() {
			continue
		}

		if b.Len() == 0 {
			if c.Sign() < 0 {
				b.WriteString("-")
			}
		} else {
			if c.Sign() < 0 {
				b.WriteString(" - ")
			} else {
				b.WriteString(" + ")
			}
		}

		mag := c
		if mag.Sign() < 0 {
			mag = mag.Neg()
		}
		switch {
		case d == 0:
			b.WriteString(mag.String())
		case mag.IsOne():
			// coefficient 1 is implicit
		default:
			b.WriteString(mag.String())
		}

		if d >= 1 {
			b.WriteByte(variable)
			if d > 1 {
				fmt.Fprintf(&b, "^%d", d)
			}
		}
	}
	return b.String()
}

// trim drops leading zero coefficients so Degree is meaningful.
func (p *Poly) trim() {
	for len(p.coeffs) > 1 && p.coeffs[len(p.coeffs)-1].IsZero() {
		p.coeffs = p.coeffs[:len(p.coeffs)-1]
	}
	if len(p.coeffs) == 0 {
		p.coeffs = []Rat{{}}
	}
}
