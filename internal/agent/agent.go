// Package agent wires the routing pipeline: guardrails, classification,
// the symbolic solver, knowledge-base retrieval, web search and persistence.
//
// Routing is solver-first. The symbolic solver is exact, so when a strategy
// claims a problem its derivation wins outright. Retrieval is consulted
// only when every strategy declined, and web search only when retrieval
// finds nothing close enough.
package agent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/abhisek/mathroute/internal/classify"
	"github.com/abhisek/mathroute/internal/feedback"
	"github.com/abhisek/mathroute/internal/guardrail"
	"github.com/abhisek/mathroute/internal/knowledge"
	"github.com/abhisek/mathroute/internal/logger"
	"github.com/abhisek/mathroute/internal/solution"
	"github.com/abhisek/mathroute/internal/solver"
	"github.com/abhisek/mathroute/internal/store"
	"github.com/abhisek/mathroute/internal/websearch"
)

const (
	// SolverConfidence is attached to every solution the symbolic solver
	// derives itself.
	SolverConfidence = 0.95

	// SimilarityThreshold is the minimum retrieval similarity for a
	// knowledge-base answer to be served.
	SimilarityThreshold = 0.7

	// retrievalLimit caps how many candidates retrieval considers.
	retrievalLimit = 3
)

// ErrInvalidInput is returned when the guardrails reject a submission. The
// wrapped message carries the rejection reason.
var ErrInvalidInput = errors.New("invalid mathematical input")

// Deps are the collaborators an Agent routes between.
type Deps struct {
	Validator   *guardrail.Validator
	Solver      *solver.Solver
	Retriever   *knowledge.Retriever
	Search      *websearch.Client
	Synthesizer *websearch.Synthesizer
	Learner     *feedback.Learner
	Store       *store.Store
	Log         *logger.Logger
}

// Agent is the routing pipeline.
type Agent struct {
	deps Deps
	log  *logger.Logger
}

// New builds an Agent. All Deps fields except Log are required.
func New(deps Deps) *Agent {
	if deps.Log == nil {
		deps.Log = logger.Nop()
	}
	return &Agent{deps: deps, log: deps.Log}
}

// Result is the response envelope for one answered problem.
type Result struct {
	Problem         string              `json:"problem"`
	Solution        solution.Solution   `json:"solution"`
	Source          solution.Source     `json:"source"`
	ResponseTime    int64               `json:"response_time"` // milliseconds
	Category        solution.Category   `json:"category"`
	ProblemID       string              `json:"problem_id"`
	ConfidenceScore float64             `json:"confidence_score"`
	Difficulty      solution.Difficulty `json:"difficulty"`
}

// Solve runs the full pipeline for one problem. Guardrail rejections return
// ErrInvalidInput; persistence failures propagate; every other fault
// degrades to a weaker solving path.
func (a *Agent) Solve(ctx context.Context, problem string) (*Result, error) {
	start := time.Now()

	sanitized := guardrail.Sanitize(problem)
	verdict := a.deps.Validator.Validate(sanitized)
	if !verdict.Valid {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, verdict.Reason)
	}

	category := classify.Classify(sanitized)
	difficulty := classify.Difficulty(sanitized, category)

	if err := a.recordActivity(ctx, "Problem submitted", "user_input",
		fmt.Sprintf("Category: %s, Problem: %s", category, truncate(sanitized, 100))); err != nil {
		return nil, err
	}

	outcome := a.deps.Solver.Solve(sanitized)
	if !outcome.Degraded {
		sol := *outcome.Solution
		sol.Confidence = SolverConfidence
		return a.respond(ctx, start, sanitized, sol, solution.SourceMathSolver, category, difficulty,
			"Solution found", fmt.Sprintf("Strategy: %s", outcome.Strategy))
	}

	// Every strategy declined. Look for a close enough stored problem
	// before going to the web.
	matches := a.deps.Retriever.Search(sanitized, retrievalLimit, 0)
	if len(matches) > 0 && matches[0].Similarity > SimilarityThreshold {
		best := matches[0]
		finalCategory := category
		if finalCategory == solution.CategoryGeneral {
			finalCategory = best.Category
		}
		sol := best.Solution
		sol.Confidence = best.Similarity
		return a.respond(ctx, start, sanitized, sol, solution.SourceKnowledgeBase, finalCategory, difficulty,
			"Solution found", fmt.Sprintf("Similarity: %.2f", best.Similarity))
	}

	results, synthetic := a.deps.Search.Search(ctx, sanitized)
	sol := *a.deps.Synthesizer.Synthesize(ctx, sanitized, results)
	// Synthetic placeholder snippets are labeled fallback so consumers can
	// tell them from real web results.
	source := solution.SourceWebSearch
	if synthetic {
		source = solution.SourceFallback
	}
	return a.respond(ctx, start, sanitized, sol, source, category, solution.DifficultyHard,
		"Solution found", fmt.Sprintf("Sources: %d found", len(results)))
}

// respond persists the answered problem, records the stage activity and
// assembles the envelope.
func (a *Agent) respond(ctx context.Context, start time.Time, problem string, sol solution.Solution,
	source solution.Source, category solution.Category, difficulty solution.Difficulty,
	action, details string) (*Result, error) {

	record, err := a.deps.Store.Problems().Create(ctx, problem, sol, category, difficulty, source)
	if err != nil {
		a.log.Error("persist problem failed", "source", string(source), "error", err.Error())
		// Best effort; the persistence error is what the caller sees.
		_, _ = a.deps.Store.Activities().Create(ctx, "Solution failed", "error", err.Error())
		return nil, fmt.Errorf("persist problem: %w", err)
	}
	if err := a.recordActivity(ctx, action, string(source), details); err != nil {
		return nil, err
	}

	a.log.Info("problem answered",
		"source", string(source),
		"category", string(category),
		"problem_id", record.ID,
		"response_ms", time.Since(start).Milliseconds(),
	)

	return &Result{
		Problem:         problem,
		Solution:        sol,
		Source:          source,
		ResponseTime:    time.Since(start).Milliseconds(),
		Category:        category,
		ProblemID:       record.ID,
		ConfidenceScore: sol.Confidence,
		Difficulty:      difficulty,
	}, nil
}

// SubmitFeedback stores the rating, runs the learner and logs the event.
func (a *Agent) SubmitFeedback(ctx context.Context, problemID string, accuracy int,
	clarity feedback.Clarity, comments string, isHelpful bool) (feedback.Improvement, error) {

	if _, err := a.deps.Store.Problems().Get(ctx, problemID); err != nil {
		return feedback.Improvement{}, fmt.Errorf("unknown problem %s: %w", problemID, err)
	}

	if _, err := a.deps.Store.Feedback().Create(ctx, problemID, accuracy, string(clarity), comments, isHelpful); err != nil {
		return feedback.Improvement{}, err
	}

	imp, err := a.deps.Learner.Process(ctx, problemID, accuracy, clarity, comments)
	if err != nil {
		return feedback.Improvement{}, err
	}

	if err := a.recordActivity(ctx, "Feedback received", "user_feedback",
		fmt.Sprintf("Rating: %d/5, Clarity: %s", accuracy, clarity)); err != nil {
		return feedback.Improvement{}, err
	}
	return imp, nil
}

func (a *Agent) recordActivity(ctx context.Context, action, source, details string) error {
	if _, err := a.deps.Store.Activities().Create(ctx, action, source, details); err != nil {
		a.log.Error("record activity failed", "action", action, "error", err.Error())
		return fmt.Errorf("record activity: %w", err)
	}
	return nil
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
