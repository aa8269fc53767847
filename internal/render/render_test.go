package render

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathroute/internal/agent"
	"github.com/abhisek/mathroute/internal/feedback"
	"github.com/abhisek/mathroute/internal/guardrail"
	"github.com/abhisek/mathroute/internal/solution"
	"github.com/abhisek/mathroute/internal/store"
)

func sampleResult() *agent.Result {
	return &agent.Result{
		Problem: "Solve x^2 + 5x + 6 = 0",
		Solution: solution.Solution{
			Steps: []solution.Step{
				solution.NewStep(1, "Identify the equation", "x^2 + 5x + 6 = 0", "A quadratic in standard form"),
				solution.NewStep(2, "Factor", "(x + 2)(x + 3) = 0", ""),
			},
			FinalAnswer: "x = -2 or x = -3",
			Sources: []solution.SourceRef{
				{Title: "MIT OpenCourseWare", URL: "https://ocw.mit.edu"},
			},
			Confidence: 0.95,
		},
		Source:          solution.SourceMathSolver,
		ResponseTime:    12,
		Category:        solution.CategoryAlgebra,
		ProblemID:       "abc-123",
		ConfidenceScore: 0.95,
		Difficulty:      solution.DifficultyIntermediate,
	}
}

func TestSolutionRendersStepsAndAnswer(t *testing.T) {
	out := Solution(sampleResult())

	require.NotEmpty(t, out)
	assert.Contains(t, out, "Step 1: Identify the equation")
	assert.Contains(t, out, "Step 2: Factor")
	assert.Contains(t, out, "x = -2 or x = -3")
	assert.Contains(t, out, "source: math_solver")
	assert.Contains(t, out, "id: abc-123")
	assert.Contains(t, out, "MIT OpenCourseWare")
}

func TestImprovementRendersSuggestions(t *testing.T) {
	out := Improvement(feedback.Improvement{
		ProblemID:            "abc-123",
		Suggestions:          []string{"Add more detailed explanations"},
		ConfidenceAdjustment: "Increase confidence by 10%",
	})

	assert.Contains(t, out, "Feedback recorded")
	assert.Contains(t, out, "Add more detailed explanations")
	assert.Contains(t, out, "Increase confidence by 10%")
}

func TestActivitiesEmptyAndPopulated(t *testing.T) {
	assert.Contains(t, Activities(nil), "No activity recorded yet.")

	out := Activities([]store.Activity{
		{Action: "Problem submitted", Source: "user_input", Details: "Category: algebra", CreatedAt: time.Now()},
	})
	assert.Contains(t, out, "Problem submitted")
	assert.Contains(t, out, "user_input")
	assert.Contains(t, out, "Category: algebra")
}

func TestStatusRendersEverySection(t *testing.T) {
	out := Status(&agent.Status{
		KnowledgeBase:  map[string]int{"total": 5, "algebra": 2},
		Problems:       map[string]int64{"total": 3, "algebra": 2, "geometry": 1},
		Feedback:       store.FeedbackStats{Total: 2, AverageRating: 4.5, HelpfulPercentage: 100},
		SearchProvider: "placeholder",
		SearchDegraded: true,
		Guardrails:     guardrail.Status{PrivacyPatterns: 4, ProhibitedCategories: 3, MathematicalKeywords: 30},
	})

	assert.Contains(t, out, "Knowledge base")
	assert.Contains(t, out, "5 entries")
	assert.Contains(t, out, "3 total")
	assert.Contains(t, out, "average rating 4.5")
	assert.Contains(t, out, "placeholder (no API key configured)")
	assert.Contains(t, out, "30 keywords")
}
