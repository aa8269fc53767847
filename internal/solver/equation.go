package solver

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/abhisek/mathroute/internal/solution"
	"github.com/abhisek/mathroute/internal/symbolic"
)

// equationStrategy solves single-variable polynomial equations and 2x2
// linear systems.
type equationStrategy struct{}

func (*equationStrategy) Name() string { return "equation" }

func (*equationStrategy) Matches(lower string) bool {
	return containsAny(lower, "solve", "equation", "=", "find x", "find y")
}

var (
	equationRe = regexp.MustCompile(`([^=,;]+)=([^=,;?]+)`)

	// leadingWordsRe strips the prose prefix before the algebra, e.g.
	// "solve the equation x^2 + 5x + 6" -> "x^2 + 5x + 6".
	leadingWordsRe = regexp.MustCompile(`^(?:[a-zA-Z]{2,}[:\s]+)*`)
)

func (e *equationStrategy) Solve(text string) (*solution.Solution, error) {
	norm := symbolic.Normalize(text)

	if sys, ok := extractSystem(norm); ok {
		return solveSystem(sys)
	}

	m := equationRe.FindStringSubmatch(norm)
	if m == nil {
		return nil, ErrNeedsFallback
	}
	lhsStr := strings.TrimSpace(leadingWordsRe.ReplaceAllString(strings.TrimSpace(m[1]), ""))
	rhsStr := strings.TrimSpace(strings.TrimRight(strings.TrimSpace(m[2]), ".?! "))

	lhs, err := symbolic.ParsePoly(lhsStr, 'x')
	if err != nil {
		return nil, ErrNeedsFallback
	}
	rhs, err := symbolic.ParsePoly(rhsStr, 'x')
	if err != nil {
		return nil, ErrNeedsFallback
	}

	// Move everything to one side: p(x) = 0.
	p := lhs.Sub(rhs)
	display := lhsStr + " = " + rhsStr

	switch p.Degree() {
	case 2:
		q, _ := symbolic.QuadraticFromPoly(p)
		return solveQuadratic(display, p, q)
	case 1:
		return solveLinear(display, p)
	default:
		return nil, ErrNeedsFallback
	}
}

func solveQuadratic(display string, p symbolic.Poly, q symbolic.Quadratic) (*solution.Solution, error) {
	steps := []solution.Step{
		solution.NewStep(1, "Identify the quadratic equation", display,
			"This is a quadratic equation in standard form ax² + bx + c = 0"),
	}

	roots := q.Roots()

	if factored, ok := q.Factored('x'); ok {
		steps = append(steps,
			solution.NewStep(2, "Factor the quadratic expression",
				fmt.Sprintf("%s = %s", p, factored),
				"Factor the quadratic expression to find the roots"),
			solution.NewStep(3, "Apply zero product property",
				fmt.Sprintf("Set each factor equal to zero: %s = 0", factored),
				"If ab = 0, then a = 0 or b = 0"),
		)
	} else {
		steps = append(steps,
			solution.NewStep(2, "Apply the quadratic formula",
				"x = (-b ± √(b² - 4ac)) / 2a",
				"The expression does not factor over the integers"),
			solution.NewStep(3, "Evaluate the discriminant",
				fmt.Sprintf("b² - 4ac = %s", q.Discriminant()),
				"The discriminant decides how many real roots exist"),
		)
	}

	sol := &solution.Solution{}
	if len(roots) == 0 {
		steps = append(steps, solution.NewStep(len(steps)+1, "Solution",
			"The discriminant is negative, so the parabola never crosses the x-axis",
			"A negative discriminant means no real roots"))
		sol.FinalAnswer = "No real solutions exist"
	} else {
		parts := make([]string, len(roots))
		for i, r := range roots {
			parts[i] = "x = " + r
		}
		answer := strings.Join(parts, " or ")
		steps = append(steps, solution.NewStep(len(steps)+1, "Solution", answer,
			"These are the values of x that satisfy the equation"))
		sol.FinalAnswer = answer
	}
	sol.Steps = steps
	return sol, nil
}

func solveLinear(display string, p symbolic.Poly) (*solution.Solution, error) {
	b, c := p.Coeff(1), p.Coeff(0)
	if b.IsZero() {
		return nil, ErrNeedsFallback
	}
	root := c.Neg().Div(b)
	answer := "x = " + root.String()

	steps := []solution.Step{
		solution.NewStep(1, "Set up the equation", display,
			"Identify the equation to solve"),
		solution.NewStep(2, "Solve for x",
			"Applying algebraic operations to isolate x",
			"Use inverse operations to solve for the variable"),
		solution.NewStep(3, "Solution", answer,
			"These are the values of x that satisfy the equation"),
	}
	return &solution.Solution{Steps: steps, FinalAnswer: answer}, nil
}
