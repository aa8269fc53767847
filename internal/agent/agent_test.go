package agent

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/mathroute/internal/feedback"
	"github.com/abhisek/mathroute/internal/guardrail"
	"github.com/abhisek/mathroute/internal/knowledge"
	"github.com/abhisek/mathroute/internal/logger"
	"github.com/abhisek/mathroute/internal/solution"
	"github.com/abhisek/mathroute/internal/solver"
	"github.com/abhisek/mathroute/internal/store"
	"github.com/abhisek/mathroute/internal/websearch"
)

func newTestAgent(t *testing.T) *Agent {
	t.Helper()
	st, err := store.Open(":memory:")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })

	retriever := knowledge.NewRetriever()
	retriever.Seed()

	return New(Deps{
		Validator:   guardrail.New(),
		Solver:      solver.New(),
		Retriever:   retriever,
		Search:      websearch.NewClient(websearch.Config{}, nil),
		Synthesizer: &websearch.Synthesizer{},
		Learner:     feedback.NewLearner(nil, nil),
		Store:       st,
		Log:         logger.Nop(),
	})
}

func TestSolveRejectsNonMathematicalInput(t *testing.T) {
	a := newTestAgent(t)
	ctx := context.Background()

	_, err := a.Solve(ctx, "What is the capital of France?")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	// A rejected submission must leave no trace in storage.
	stats, err := a.deps.Store.Problems().StatsByCategory(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats["total"] != 0 {
		t.Fatalf("expected no stored problems after rejection, got %d", stats["total"])
	}
	acts, err := a.deps.Store.Activities().Recent(ctx, 10)
	if err != nil {
		t.Fatalf("activities: %v", err)
	}
	if len(acts) != 0 {
		t.Fatalf("expected no activity after rejection, got %d", len(acts))
	}
}

func TestSolveViaSymbolicSolver(t *testing.T) {
	a := newTestAgent(t)
	ctx := context.Background()

	res, err := a.Solve(ctx, "Calculate the area of a circle with radius 5")
	if err != nil {
		t.Fatalf("solve: %v", err)
	}
	if res.Source != solution.SourceMathSolver {
		t.Fatalf("expected math_solver source, got %s", res.Source)
	}
	if res.Category != solution.CategoryGeometry {
		t.Fatalf("expected geometry, got %s", res.Category)
	}
	if res.ConfidenceScore != SolverConfidence {
		t.Fatalf("expected confidence %v, got %v", SolverConfidence, res.ConfidenceScore)
	}
	if res.Solution.FinalAnswer != "Area = 25π ≈ 78.54 square units" {
		t.Fatalf("unexpected final answer %q", res.Solution.FinalAnswer)
	}
	if res.ProblemID == "" {
		t.Fatal("expected a persisted problem id")
	}

	stored, err := a.deps.Store.Problems().Get(ctx, res.ProblemID)
	if err != nil {
		t.Fatalf("get stored problem: %v", err)
	}
	if stored.Source != string(solution.SourceMathSolver) {
		t.Fatalf("stored source %q", stored.Source)
	}

	acts, err := a.deps.Store.Activities().Recent(ctx, 10)
	if err != nil {
		t.Fatalf("activities: %v", err)
	}
	if len(acts) != 2 {
		t.Fatalf("expected 2 activities, got %d", len(acts))
	}
	// Recent is newest first.
	if acts[0].Action != "Solution found" || acts[1].Action != "Problem submitted" {
		t.Fatalf("unexpected activity trail: %q, %q", acts[0].Action, acts[1].Action)
	}
	if !strings.HasPrefix(acts[1].Details, "Category: geometry") {
		t.Fatalf("unexpected submission details %q", acts[1].Details)
	}
}

func TestSolveFallsBackToKnowledgeBase(t *testing.T) {
	a := newTestAgent(t)
	ctx := context.Background()

	// No "=" sign, so every symbolic strategy declines, but the text is a
	// near duplicate of a seeded problem.
	res, err := a.Solve(ctx, "solve quadratic equation x^2 + 5x + 6")
	if err != nil {
		t.Fatalf("solve: %v", err)
	}
	if res.Source != solution.SourceKnowledgeBase {
		t.Fatalf("expected knowledge_base source, got %s", res.Source)
	}
	if res.Category != solution.CategoryAlgebra {
		t.Fatalf("expected algebra, got %s", res.Category)
	}
	if res.ConfidenceScore < SimilarityThreshold {
		t.Fatalf("confidence %v below threshold", res.ConfidenceScore)
	}
	if res.Solution.FinalAnswer == "" {
		t.Fatal("expected a worked solution from the knowledge base")
	}

	acts, err := a.deps.Store.Activities().BySource(ctx, "knowledge_base")
	if err != nil {
		t.Fatalf("activities: %v", err)
	}
	if len(acts) != 1 || !strings.HasPrefix(acts[0].Details, "Similarity:") {
		t.Fatalf("expected one similarity activity, got %+v", acts)
	}
}

func TestSolveFallsBackToWebSearch(t *testing.T) {
	a := newTestAgent(t)
	ctx := context.Background()

	res, err := a.Solve(ctx, "matrix eigenvalue decomposition of a 4x4 matrix")
	if err != nil {
		t.Fatalf("solve: %v", err)
	}
	// The test client has no credentials, so the synthetic placeholder
	// results are labeled fallback rather than web_search.
	if res.Source != solution.SourceFallback {
		t.Fatalf("expected fallback source, got %s", res.Source)
	}
	if res.Difficulty != solution.DifficultyHard {
		t.Fatalf("expected hard difficulty, got %s", res.Difficulty)
	}
	if res.ConfidenceScore != 0.85 {
		t.Fatalf("expected top placeholder relevance as confidence, got %v", res.ConfidenceScore)
	}
	if len(res.Solution.Sources) == 0 {
		t.Fatal("expected cited sources")
	}

	acts, err := a.deps.Store.Activities().BySource(ctx, "fallback")
	if err != nil {
		t.Fatalf("activities: %v", err)
	}
	if len(acts) != 1 || acts[0].Details != "Sources: 2 found" {
		t.Fatalf("unexpected web search activity: %+v", acts)
	}
}

func TestSolvePersistenceFailurePropagates(t *testing.T) {
	a := newTestAgent(t)
	ctx := context.Background()

	// Break problem storage only; the activity log keeps working.
	if err := a.deps.Store.DB().Exec("DROP TABLE problems").Error; err != nil {
		t.Fatalf("drop table: %v", err)
	}

	res, err := a.Solve(ctx, "Calculate the area of a circle with radius 5")
	if err == nil {
		t.Fatal("expected a persistence error")
	}
	if res != nil {
		t.Fatalf("expected no envelope on persistence failure, got %+v", res)
	}
	if !strings.Contains(err.Error(), "persist problem") {
		t.Fatalf("unexpected error %v", err)
	}

	// The failure itself is recorded best effort.
	acts, aerr := a.deps.Store.Activities().BySource(ctx, "error")
	if aerr != nil {
		t.Fatalf("activities: %v", aerr)
	}
	if len(acts) != 1 || acts[0].Action != "Solution failed" {
		t.Fatalf("unexpected failure activity: %+v", acts)
	}
}

func TestSolveActivityLogFailurePropagates(t *testing.T) {
	a := newTestAgent(t)
	ctx := context.Background()

	if err := a.deps.Store.DB().Exec("DROP TABLE activities").Error; err != nil {
		t.Fatalf("drop table: %v", err)
	}

	res, err := a.Solve(ctx, "Calculate the area of a circle with radius 5")
	if err == nil {
		t.Fatal("expected an activity log error")
	}
	if res != nil {
		t.Fatalf("expected no envelope, got %+v", res)
	}
	if !strings.Contains(err.Error(), "record activity") {
		t.Fatalf("unexpected error %v", err)
	}

	// The submission activity fails before solving, so nothing is stored.
	stats, serr := a.deps.Store.Problems().StatsByCategory(ctx)
	if serr != nil {
		t.Fatalf("stats: %v", serr)
	}
	if stats["total"] != 0 {
		t.Fatalf("expected no stored problems, got %d", stats["total"])
	}
}

func TestSubmitFeedback(t *testing.T) {
	a := newTestAgent(t)
	ctx := context.Background()

	res, err := a.Solve(ctx, "Calculate the area of a circle with radius 5")
	if err != nil {
		t.Fatalf("solve: %v", err)
	}

	imp, err := a.SubmitFeedback(ctx, res.ProblemID, 5, feedback.ClarityVeryClear, "great explanation", true)
	if err != nil {
		t.Fatalf("submit feedback: %v", err)
	}
	if imp.ConfidenceAdjustment != "Increase confidence by 10%" {
		t.Fatalf("unexpected adjustment %q", imp.ConfidenceAdjustment)
	}

	stats, err := a.deps.Store.Feedback().Stats(ctx)
	if err != nil {
		t.Fatalf("feedback stats: %v", err)
	}
	if stats.Total != 1 || stats.AverageRating != 5 {
		t.Fatalf("unexpected stats %+v", stats)
	}

	acts, err := a.deps.Store.Activities().BySource(ctx, "user_feedback")
	if err != nil {
		t.Fatalf("activities: %v", err)
	}
	if len(acts) != 1 || acts[0].Details != "Rating: 5/5, Clarity: Very Clear" {
		t.Fatalf("unexpected feedback activity: %+v", acts)
	}
}

func TestSubmitFeedbackUnknownProblem(t *testing.T) {
	a := newTestAgent(t)

	_, err := a.SubmitFeedback(context.Background(), "no-such-id", 4, feedback.ClarityVeryClear, "", true)
	if err == nil {
		t.Fatal("expected error for unknown problem id")
	}
}

func TestStatus(t *testing.T) {
	a := newTestAgent(t)
	ctx := context.Background()

	if _, err := a.Solve(ctx, "Calculate the area of a circle with radius 5"); err != nil {
		t.Fatalf("solve: %v", err)
	}

	st, err := a.Status(ctx)
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if st.KnowledgeBase["total"] != 5 {
		t.Fatalf("expected 5 seeded entries, got %d", st.KnowledgeBase["total"])
	}
	if st.Problems["total"] != 1 {
		t.Fatalf("expected 1 stored problem, got %d", st.Problems["total"])
	}
	if !st.SearchDegraded || st.SearchProvider != "placeholder" {
		t.Fatalf("expected placeholder search, got %q degraded=%v", st.SearchProvider, st.SearchDegraded)
	}
	if st.Guardrails.MathematicalKeywords == 0 {
		t.Fatal("expected guardrail keyword inventory")
	}
}
