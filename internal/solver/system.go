package solver

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/abhisek/mathroute/internal/solution"
	"github.com/abhisek/mathroute/internal/symbolic"
)

// linearEq is one equation a·x + b·y = c.
type linearEq struct {
	a, b, c symbolic.Rat
	display string
}

// linearEqRe matches equations of the form "2x + 3y = 7" and "x - y = 1".
var linearEqRe = regexp.MustCompile(`(-?\d*)\s*x\s*([+-])\s*(\d*)\s*y\s*=\s*(-?\d+)`)

// extractSystem finds two linear equations in x and y within the text.
func extractSystem(text string) ([2]linearEq, bool) {
	var out [2]linearEq
	ms := linearEqRe.FindAllStringSubmatch(text, 3)
	if len(ms) != 2 {
		return out, false
	}
	for i, m := range ms {
		a := coefOrOne(m[1])
		b := coefOrOne(m[3])
		if m[2] == "-" {
			b = b.Neg()
		}
		c, err := symbolic.ParseRat(m[4])
		if err != nil {
			return out, false
		}
		out[i] = linearEq{a: a, b: b, c: c, display: strings.Join(strings.Fields(m[0]), " ")}
	}
	return out, true
}

func coefOrOne(s string) symbolic.Rat {
	switch s {
	case "", "+":
		return symbolic.RatFromInt(1)
	case "-":
		return symbolic.RatFromInt(-1)
	}
	r, err := symbolic.ParseRat(s)
	if err != nil {
		return symbolic.RatFromInt(1)
	}
	return r
}

// solveSystem solves the 2x2 system by substitution, narrating from the
// second equation: x = (c2 - b2·y)/a2 substituted into the first.
func solveSystem(sys [2]linearEq) (*solution.Solution, error) {
	e1, e2 := sys[0], sys[1]

	det := e1.a.Mul(e2.b).Sub(e2.a.Mul(e1.b))
	if det.IsZero() {
		return nil, ErrNeedsFallback
	}
	x := e1.c.Mul(e2.b).Sub(e2.c.Mul(e1.b)).Div(det)
	y := e1.a.Mul(e2.c).Sub(e2.a.Mul(e1.c)).Div(det)

	if e2.a.IsZero() {
		return nil, ErrNeedsFallback
	}
	// x expressed from equation (2): x = k·y + m.
	k := e2.b.Neg().Div(e2.a)
	m := e2.c.Div(e2.a)
	xExpr := linearInY(k, m)

	// Collapsed single-variable equation after substitution.
	yCoef := e1.a.Mul(k).Add(e1.b)
	yRHS := e1.c.Sub(e1.a.Mul(m))

	steps := []solution.Step{
		solution.NewStep(1, "Set up the system",
			fmt.Sprintf("%s  ... (1)\n%s  ... (2)", e1.display, e2.display),
			"We have a system of two linear equations with two unknowns"),
		solution.NewStep(2, "Solve using substitution method",
			fmt.Sprintf("From equation (2): x = %s", xExpr),
			"Solve one equation for one variable"),
		solution.NewStep(3, "Substitute into equation (1)",
			fmt.Sprintf("%s(%s) %s = %s\n%sy = %s\ny = %s",
				coefString(e1.a), xExpr, termString(e1.b, "y"), e1.c,
				coefString(yCoef), yRHS, y),
			"Substitute x = "+xExpr+" into the first equation"),
		solution.NewStep(4, "Find x",
			fmt.Sprintf("x = %s = %s", xExpr, x),
			fmt.Sprintf("Substitute y = %s back to find x", y)),
	}

	return &solution.Solution{
		Steps:       steps,
		FinalAnswer: fmt.Sprintf("x = %s, y = %s", x, y),
	}, nil
}

// linearInY renders k·y + m, e.g. "y + 1", "-3y + 7", "2y - 5".
func linearInY(k, m symbolic.Rat) string {
	var b strings.Builder
	if !k.IsZero() {
		b.WriteString(coefString(k))
		b.WriteString("y")
	}
	switch {
	case m.IsZero() && b.Len() == 0:
		return "0"
	case m.IsZero():
		return b.String()
	case b.Len() == 0:
		return m.String()
	case m.Sign() < 0:
		fmt.Fprintf(&b, " - %s", m.Neg())
	default:
		fmt.Fprintf(&b, " + %s", m)
	}
	return b.String()
}

// coefString renders a coefficient with the implicit 1 dropped.
func coefString(r symbolic.Rat) string {
	if r.IsOne() {
		return ""
	}
	if r.Neg().IsOne() {
		return "-"
	}
	return r.String()
}

// termString renders "+ 3y" or "- y" for use mid-expression.
func termString(coef symbolic.Rat, sym string) string {
	sign := "+"
	if coef.Sign() < 0 {
		sign = "-"
		coef = coef.Neg()
	}
	return fmt.Sprintf("%s %s%s", sign, coefString(coef), sym)
}
