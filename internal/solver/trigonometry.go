package solver

import (
	"strings"

	"github.com/abhisek/mathroute/internal/solution"
)

// trigonometryStrategy evaluates the special angle π/4 exactly.
type trigonometryStrategy struct{}

func (*trigonometryStrategy) Name() string { return "trigonometry" }

func (*trigonometryStrategy) Matches(lower string) bool {
	return containsAny(lower, "sin", "cos", "tan", "trigonometric", "angle")
}

func (t *trigonometryStrategy) Solve(text string) (*solution.Solution, error) {
	lower := strings.ToLower(text)
	quarterPi := strings.Contains(lower, "π/4") || strings.Contains(lower, "pi/4")
	if !quarterPi || !containsAny(lower, "sin", "cos") {
		return nil, ErrNeedsFallback
	}

	steps := []solution.Step{
		solution.NewStep(1, "Convert to degrees",
			"π/4 radians = 45°",
			"π radians = 180°, so π/4 = 45°"),
		solution.NewStep(2, "Use unit circle values",
			"At 45°, both sin and cos equal √2/2",
			"This is a special angle with known exact values"),
	}
	return &solution.Solution{
		Steps:       steps,
		FinalAnswer: "sin(π/4) = √2/2, cos(π/4) = √2/2",
	}, nil
}
