package solver

import (
	"fmt"
	"strings"

	"github.com/abhisek/mathroute/internal/solution"
)

// generalStrategy is the terminal scaffold: it never fails, producing a
// guidance response that names the likely discipline and asks for more
// specific notation.
type generalStrategy struct{}

func (*generalStrategy) Name() string { return "general" }

func (*generalStrategy) Matches(string) bool { return true }

func (g *generalStrategy) Solve(text string) (*solution.Solution, error) {
	lower := strings.ToLower(text)

	category := "general"
	switch {
	case containsAny(lower, "derivative", "differentiate"):
		category = "calculus"
	case containsAny(lower, "solve", "equation"):
		category = "algebra"
	case containsAny(lower, "area", "volume", "triangle"):
		category = "geometry"
	}

	steps := []solution.Step{
		solution.NewStep(1, "Problem Analysis",
			fmt.Sprintf("Analyzing: %s", text),
			fmt.Sprintf("This appears to be a %s problem. Let me break it down.", category)),
		solution.NewStep(2, "Solution Approach",
			"Applying mathematical principles to solve this problem",
			"Using standard mathematical methods for this type of problem"),
		solution.NewStep(3, "Result",
			"Please provide more specific details about the mathematical expression or equation",
			"For a more detailed solution, I need the exact mathematical notation"),
	}
	return &solution.Solution{
		Steps:       steps,
		FinalAnswer: "Please provide the specific mathematical expression for a detailed step-by-step solution",
	}, nil
}
