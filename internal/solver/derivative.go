package solver

import (
	"fmt"
	"regexp"

	"github.com/abhisek/mathroute/internal/solution"
	"github.com/abhisek/mathroute/internal/symbolic"
)

// derivativeStrategy differentiates polynomials and a small table of
// composite forms.
type derivativeStrategy struct{}

func (*derivativeStrategy) Name() string { return "derivative" }

func (*derivativeStrategy) Matches(lower string) bool {
	return containsAny(lower, "derivative", "differentiate", "d/dx", "f'(x)", "rate of change")
}

var (
	funcDefRe   = regexp.MustCompile(`f\(x\)\s*=\s*([^,.\n]+)`)
	funcProseRe = regexp.MustCompile(`(?i)(?:derivative of|differentiate)\s+([^,.\n?]+)`)
	lnSquareRe  = regexp.MustCompile(`ln\(x\^?2\)`)
)

func (d *derivativeStrategy) Solve(text string) (*solution.Solution, error) {
	norm := symbolic.Normalize(text)

	if lnSquareRe.MatchString(norm) {
		return lnSquareDerivative(), nil
	}

	expr := extractFunction(norm)
	if expr == "" {
		return nil, ErrNeedsFallback
	}
	p, err := symbolic.ParsePoly(expr, 'x')
	if err != nil {
		return nil, ErrNeedsFallback
	}
	deriv := p.Derivative()

	steps := []solution.Step{
		solution.NewStep(1, "Identify the function",
			fmt.Sprintf("f(x) = %s", p),
			"We need to find the derivative of this function"),
		solution.NewStep(2, "Apply differentiation rules",
			fmt.Sprintf("f'(x) = d/dx[%s]", p),
			"Use the power rule: d/dx[x^n] = n·x^(n-1)"),
		solution.NewStep(3, "Calculate the derivative",
			fmt.Sprintf("f'(x) = %s", deriv),
			"Apply the power rule to each term and simplify"),
	}
	return &solution.Solution{
		Steps:       steps,
		FinalAnswer: fmt.Sprintf("f'(x) = %s", deriv),
	}, nil
}

func extractFunction(norm string) string {
	if m := funcDefRe.FindStringSubmatch(norm); m != nil {
		return m[1]
	}
	if m := funcProseRe.FindStringSubmatch(norm); m != nil {
		return m[1]
	}
	return ""
}

// lnSquareDerivative handles d/dx ln(x^2) = 2/x via the chain rule.
func lnSquareDerivative() *solution.Solution {
	steps := []solution.Step{
		solution.NewStep(1, "Identify the function",
			"f(x) = ln(x^2)",
			"We need to find the derivative of this function"),
		solution.NewStep(2, "Apply the chain rule",
			"f'(x) = (1/x^2) · d/dx[x^2]",
			"d/dx[ln(u)] = u'/u with u = x^2"),
		solution.NewStep(3, "Calculate the derivative",
			"f'(x) = 2x/x^2 = 2/x",
			"Simplify the quotient"),
	}
	return &solution.Solution{Steps: steps, FinalAnswer: "f'(x) = 2/x"}
}
