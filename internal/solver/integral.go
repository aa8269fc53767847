package solver

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/abhisek/mathroute/internal/solution"
	"github.com/abhisek/mathroute/internal/symbolic"
)

// integralStrategy computes polynomial antiderivatives.
type integralStrategy struct{}

func (*integralStrategy) Name() string { return "integral" }

func (*integralStrategy) Matches(lower string) bool {
	return containsAny(lower, "integrate", "integral", "∫", "antiderivative")
}

var (
	integrandDxRe    = regexp.MustCompile(`∫?\s*([0-9a-z\s+\-*/^]+?)\s*dx`)
	integrandProseRe = regexp.MustCompile(`(?i)(?:integral of|integrate|antiderivative of)\s+([^,.\n?]+)`)
)

func (i *integralStrategy) Solve(text string) (*solution.Solution, error) {
	norm := symbolic.Normalize(text)

	expr := ""
	if m := integrandDxRe.FindStringSubmatch(norm); m != nil {
		expr = strings.TrimSpace(m[1])
	} else if m := integrandProseRe.FindStringSubmatch(norm); m != nil {
		expr = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(m[1]), "dx"))
	}
	expr = strings.TrimSpace(leadingWordsRe.ReplaceAllString(expr, ""))
	if expr == "" {
		return nil, ErrNeedsFallback
	}

	p, err := symbolic.ParsePoly(expr, 'x')
	if err != nil {
		return nil, ErrNeedsFallback
	}
	anti := p.Antiderivative()

	steps := []solution.Step{
		solution.NewStep(1, "Identify the integral",
			fmt.Sprintf("∫ %s dx", p),
			fmt.Sprintf("We need to find the antiderivative of %s", p)),
		solution.NewStep(2, "Apply the power rule for integration",
			"∫ x^n dx = x^(n+1)/(n+1) + C",
			"The power rule for integration"),
		solution.NewStep(3, "Calculate",
			fmt.Sprintf("∫ %s dx = %s + C", p, anti),
			"Apply the power rule and add the constant of integration"),
	}
	return &solution.Solution{
		Steps:       steps,
		FinalAnswer: fmt.Sprintf("∫ %s dx = %s + C", p, anti),
	}, nil
}
