package symbolic

import (
	"fmt"
	"strings"
)

// Quadratic is ax^2 + bx + c with a != 0.
type Quadratic struct {
	A, B, C Rat
}

// QuadraticFromPoly extracts a quadratic from a degree-2 polynomial.
func QuadraticFromPoly(p Poly) (Quadratic, bool) {
	if p.Degree() != 2 {
		return Quadratic{}, false
	}
	return Quadratic{A: p.Coeff(2), B: p.Coeff(1), C: p.Coeff(0)}, true
}

// Discriminant returns b^2 - 4ac.
func (q Quadratic) Discriminant() Rat {
	four := RatFromInt(4)
	return q.B.Mul(q.B).Sub(four.Mul(q.A).Mul(q.C))
}

// Roots returns the real roots as rendered strings, exact when the
// discriminant is a perfect square and in radical form otherwise. The
// slice is empty when no real roots exist. A repeated root appears once.
func (q Quadratic) Roots() []string {
	disc := q.Discriminant()
	if disc.Sign() < 0 {
		return nil
	}
	twoA := RatFromInt(2).Mul(q.A)
	if disc.IsZero() {
		return []string{q.B.Neg().Div(twoA).String()}
	}
	if s, ok := disc.Sqrt(); ok {
		r1 := q.B.Neg().Add(s).Div(twoA)
		r2 := q.B.Neg().Sub(s).Div(twoA)
		// Larger root first matches the factoring narrative order.
		if r1.Float() < r2.Float() {
			r1, r2 = r2, r1
		}
		return []string{r1.String(), r2.String()}
	}
	negB := q.B.Neg()
	return []string{
		fmt.Sprintf("(%s + √%s)/%s", negB, disc, twoA),
		fmt.Sprintf("(%s - √%s)/%s", negB, disc, twoA),
	}
}

// Factored renders the factored form "(x + 2)(x + 3)" when the quadratic
// is monic with integer roots. The variable is taken from v.
func (q Quadratic) Factored(v byte) (string, bool) {
	if !q.A.IsOne() {
		return "", false
	}
	disc := q.Discriminant()
	s, ok := disc.Sqrt()
	if !ok {
		return "", false
	}
	twoA := RatFromInt(2).Mul(q.A)
	r1 := q.B.Neg().Add(s).Div(twoA)
	r2 := q.B.Neg().Sub(s).Div(twoA)
	if !r1.IsInt() || !r2.IsInt() {
		return "", false
	}
	return factor(v, r1) + factor(v, r2), true
}

func factor(v byte, root Rat) string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteByte(v)
	if root.Sign() <= 0 {
		fmt.Fprintf(&b, " + %s", root.Neg())
	} else {
		fmt.Fprintf(&b, " - %s", root)
	}
	b.WriteByte(')')
	return b.String()
}
