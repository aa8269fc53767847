package websearch

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/mathroute/internal/llm"
	"github.com/abhisek/mathroute/internal/solution"
)

// fallbackConfidence is used when no result carries a relevance score.
const fallbackConfidence = 0.3

// Synthesizer turns search results into a sourced Solution. When Provider
// is set the snippets are summarized by the LLM; otherwise, or when the
// LLM fails, a fixed heuristic template carries the snippets verbatim.
type Synthesizer struct {
	Provider llm.Provider
}

// Synthesize always returns a well-formed Solution.
func (s *Synthesizer) Synthesize(ctx context.Context, problem string, results []Result) *solution.Solution {
	if len(results) == 0 {
		return noResultsSolution()
	}
	if s.Provider != nil {
		if sol, err := s.refine(ctx, problem, results); err == nil {
			return sol
		}
	}
	return heuristicSolution(results)
}

func noResultsSolution() *solution.Solution {
	return &solution.Solution{
		Steps: []solution.Step{
			solution.NewStep(1, "Advanced Topic Identified",
				"This appears to be an advanced mathematical topic",
				"The problem requires specialized knowledge not available in our knowledge base"),
		},
		FinalAnswer: "Please consult specialized mathematical literature or provide more specific details",
		Confidence:  fallbackConfidence,
	}
}

func heuristicSolution(results []Result) *solution.Solution {
	combined := combineContent(results, 2)

	steps := []solution.Step{
		solution.NewStep(1, "Problem Analysis",
			fmt.Sprintf("Based on current mathematical research: %s", truncate(combined, 200)),
			"Analysis from leading mathematical resources and academic sources"),
		solution.NewStep(2, "Solution Approach",
			"This problem requires advanced mathematical techniques",
			"The solution involves principles found in specialized mathematical literature"),
	}
	if containsMathProcedure(combined) {
		steps = append(steps, solution.NewStep(3, "Mathematical Method",
			"Apply the relevant mathematical method as described in the sources",
			"Follow the step-by-step procedure outlined in the mathematical literature"))
	}

	return &solution.Solution{
		Steps: steps,
		FinalAnswer: "This is an advanced mathematical topic. For detailed solutions, " +
			"please consult the provided sources or seek specialized assistance.",
		Sources:    sourceRefs(results, 3),
		Confidence: maxRelevance(results),
	}
}

// refine asks the LLM to distill the snippets into explicit steps. The
// output shape is schema-enforced; sources and confidence still come from
// the search results, not the model.
func (s *Synthesizer) refine(ctx context.Context, problem string, results []Result) (*solution.Solution, error) {
	var sb strings.Builder
	for i, r := range results {
		if i >= 3 {
			break
		}
		fmt.Fprintf(&sb, "Source %d (%s): %s\n", i+1, r.Title, r.Content)
	}

	resp, err := s.Provider.Generate(ctx, llm.Request{
		System: "You are a mathematics tutor. Synthesize a step-by-step solution " +
			"to the given problem using only the provided source snippets. " +
			"If the snippets do not contain enough detail, give a solution outline instead.",
		Messages: []llm.Message{{
			Role:    llm.RoleUser,
			Content: fmt.Sprintf("Problem: %s\n\nSources:\n%s", problem, sb.String()),
		}},
		Schema:    synthesisSchema(),
		MaxTokens: 1024,
	})
	if err != nil {
		return nil, err
	}

	var parsed struct {
		Steps []struct {
			Title       string `json:"title"`
			Content     string `json:"content"`
			Explanation string `json:"explanation"`
		} `json:"steps"`
		FinalAnswer string `json:"final_answer"`
	}
	if err := json.Unmarshal(resp.Content, &parsed); err != nil {
		return nil, fmt.Errorf("parse synthesis response: %w", err)
	}
	if len(parsed.Steps) == 0 || parsed.FinalAnswer == "" {
		return nil, fmt.Errorf("synthesis response missing steps or final answer")
	}

	sol := &solution.Solution{
		FinalAnswer: parsed.FinalAnswer,
		Sources:     sourceRefs(results, 3),
		Confidence:  maxRelevance(results),
	}
	for i, st := range parsed.Steps {
		sol.Steps = append(sol.Steps, solution.NewStep(i+1, st.Title, st.Content, st.Explanation))
	}
	return sol, nil
}

func synthesisSchema() *llm.Schema {
	return &llm.Schema{
		Name:        "web-synthesis",
		Description: "Step-by-step math solution synthesized from web sources",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"steps": map[string]any{
					"type":     "array",
					"minItems": 1,
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"title":       map[string]any{"type": "string"},
							"content":     map[string]any{"type": "string"},
							"explanation": map[string]any{"type": "string"},
						},
						"required":             []any{"title", "content", "explanation"},
						"additionalProperties": false,
					},
				},
				"final_answer": map[string]any{"type": "string"},
			},
			"required":             []any{"steps", "final_answer"},
			"additionalProperties": false,
		},
	}
}

func combineContent(results []Result, n int) string {
	var parts []string
	for i, r := range results {
		if i >= n {
			break
		}
		parts = append(parts, r.Content)
	}
	return strings.Join(parts, " ")
}

func containsMathProcedure(content string) bool {
	lower := strings.ToLower(content)
	for _, kw := range []string{"solve", "equation", "derivative", "integral", "formula"} {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func sourceRefs(results []Result, n int) []solution.SourceRef {
	var refs []solution.SourceRef
	for i, r := range results {
		if i >= n {
			break
		}
		refs = append(refs, solution.SourceRef{Title: r.Title, URL: r.URL})
	}
	return refs
}

func maxRelevance(results []Result) float64 {
	best := fallbackConfidence
	for _, r := range results {
		if r.Relevance > best {
			best = r.Relevance
		}
	}
	return best
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
