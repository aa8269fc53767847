package websearch

import (
	"context"
	"fmt"
)

// placeholderProvider returns deterministic synthetic results so the full
// pipeline works without any search credential.
type placeholderProvider struct{}

func (*placeholderProvider) Name() string { return "placeholder" }

func (*placeholderProvider) Search(_ context.Context, query string) ([]Result, error) {
	return []Result{
		{
			Title: "Advanced Mathematical Concepts - MIT OpenCourseWare",
			Content: fmt.Sprintf("This query '%s' involves advanced mathematical concepts that require "+
				"specialized knowledge. The solution typically involves multiple steps using established "+
				"mathematical principles and theorems.", query),
			URL:       "https://ocw.mit.edu/mathematics",
			Relevance: 0.85,
		},
		{
			Title: "Mathematical Problem Solving - Khan Academy",
			Content: fmt.Sprintf("Step-by-step approach to solving mathematical problems like '%s'. "+
				"The methodology involves identifying the problem type, applying relevant formulas, and "+
				"verifying the solution.", query),
			URL:       "https://khanacademy.org/math",
			Relevance: 0.78,
		},
	}, nil
}
