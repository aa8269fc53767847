// Package solution defines the structured derivation types shared by every
// solving path: the step-annotated Solution, the category taxonomy, and the
// provenance labels attached to each answered problem.
package solution

import "fmt"

// Category is the problem taxonomy used for routing and storage.
type Category string

const (
	CategoryAlgebra      Category = "algebra"
	CategoryCalculus     Category = "calculus"
	CategoryGeometry     Category = "geometry"
	CategoryStatistics   Category = "statistics"
	CategoryTrigonometry Category = "trigonometry"
	CategoryGeneral      Category = "general"
)

// Difficulty is the coarse difficulty tier assigned to a problem.
type Difficulty string

const (
	DifficultyBasic        Difficulty = "basic"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyHard         Difficulty = "hard"
)

// Source labels where a solution came from.
type Source string

const (
	SourceKnowledgeBase Source = "knowledge_base"
	SourceMathSolver    Source = "math_solver"
	SourceWebSearch     Source = "web_search"
	SourceFallback      Source = "fallback"
)

// Step is one titled, explained unit of a derivation.
// Index is 1-based and contiguous within a Solution.
type Step struct {
	Index       int    `json:"step"`
	Title       string `json:"title"`
	Content     string `json:"content"`
	Explanation string `json:"explanation"`
}

// SourceRef points at an external resource a solution was derived from.
type SourceRef struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Solution is a structured step-by-step derivation with a final answer.
// Every solving strategy produces a well-formed Solution: Steps is never
// empty and FinalAnswer is never blank, even on the degraded paths.
type Solution struct {
	Steps       []Step      `json:"steps"`
	FinalAnswer string      `json:"final_answer"`
	Sources     []SourceRef `json:"sources,omitempty"`

	// Confidence is a [0,1] heuristic for how much to trust this
	// solution's source. Zero means "not set".
	Confidence float64 `json:"confidence_score,omitempty"`
}

// Validate checks the Solution well-formedness invariants.
func (s *Solution) Validate() error {
	if len(s.Steps) == 0 {
		return fmt.Errorf("solution has no steps")
	}
	for i, step := range s.Steps {
		if step.Index != i+1 {
			return fmt.Errorf("step %d has index %d, want %d", i, step.Index, i+1)
		}
	}
	if s.FinalAnswer == "" {
		return fmt.Errorf("solution has empty final answer")
	}
	if s.Confidence < 0 || s.Confidence > 1 {
		return fmt.Errorf("confidence %f out of range [0,1]", s.Confidence)
	}
	return nil
}

// NewStep builds a Step with the given 1-based index.
func NewStep(index int, title, content, explanation string) Step {
	return Step{Index: index, Title: title, Content: content, Explanation: explanation}
}
