// Package feedback is the human-in-the-loop learning layer. It turns user
// ratings into concrete improvement suggestions, preferring an LLM analysis
// when one is configured and falling back to a fixed rule set otherwise.
package feedback

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/abhisek/mathroute/internal/llm"
	"github.com/abhisek/mathroute/internal/logger"
)

// Clarity is the user's clarity rating on a solution.
type Clarity string

const (
	ClarityVeryClear     Clarity = "Very Clear"
	ClaritySomewhatClear Clarity = "Somewhat Clear"
	ClarityUnclear       Clarity = "Unclear"
)

// Entry is one recorded piece of feedback.
type Entry struct {
	ProblemID string
	Accuracy  int // 1-5
	Clarity   Clarity
	Comments  string
	CreatedAt time.Time
	Processed bool
}

// Improvement is the analysis derived from one feedback entry.
type Improvement struct {
	ProblemID            string
	Suggestions          []string
	ConfidenceAdjustment string
	ProcessedAt          time.Time
}

// Insights aggregates all feedback seen so far.
type Insights struct {
	TotalFeedback       int
	ProcessedFeedback   int
	AverageAccuracy     float64
	ClarityDistribution map[Clarity]int
	Observations        []string
	ImprovementCount    int
}

// Learner records feedback and derives improvements. Safe for concurrent
// use. Provider is optional; without it every entry goes through the rule
// based path.
type Learner struct {
	provider llm.Provider
	log      *logger.Logger

	mu           sync.Mutex
	history      []Entry
	improvements map[string]Improvement
}

// NewLearner builds a Learner. Both arguments may be nil.
func NewLearner(provider llm.Provider, log *logger.Logger) *Learner {
	if log == nil {
		log = logger.Nop()
	}
	return &Learner{
		provider:     provider,
		log:          log,
		improvements: map[string]Improvement{},
	}
}

// Process records the feedback and stores the derived improvement. The
// improvement for a problem is replaced on repeat feedback.
func (l *Learner) Process(ctx context.Context, problemID string, accuracy int, clarity Clarity, comments string) (Improvement, error) {
	if accuracy < 1 || accuracy > 5 {
		return Improvement{}, fmt.Errorf("accuracy rating %d out of range 1-5", accuracy)
	}

	entry := Entry{
		ProblemID: problemID,
		Accuracy:  accuracy,
		Clarity:   clarity,
		Comments:  comments,
		CreatedAt: time.Now(),
		Processed: true,
	}

	imp := Improvement{ProblemID: problemID, ProcessedAt: time.Now()}
	if l.provider != nil {
		if suggestions, adjustment, err := l.analyze(ctx, entry); err == nil {
			imp.Suggestions = suggestions
			imp.ConfidenceAdjustment = adjustment
		} else {
			l.log.Warn("llm feedback analysis failed, using rules", "error", err.Error())
			imp.Suggestions = ruleSuggestions(entry)
			imp.ConfidenceAdjustment = confidenceAdjustment(entry)
		}
	} else {
		imp.Suggestions = ruleSuggestions(entry)
		imp.ConfidenceAdjustment = confidenceAdjustment(entry)
	}

	l.mu.Lock()
	l.history = append(l.history, entry)
	l.improvements[problemID] = imp
	l.mu.Unlock()

	return imp, nil
}

// ImprovementFor returns the stored improvement for a problem.
func (l *Learner) ImprovementFor(problemID string) (Improvement, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	imp, ok := l.improvements[problemID]
	return imp, ok
}

// Insights summarizes everything the learner has seen.
func (l *Learner) Insights() Insights {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := Insights{
		TotalFeedback:       len(l.history),
		ClarityDistribution: map[Clarity]int{},
		ImprovementCount:    len(l.improvements),
	}
	if len(l.history) == 0 {
		return out
	}

	var accuracySum int
	var comments strings.Builder
	for _, e := range l.history {
		if e.Processed {
			out.ProcessedFeedback++
		}
		accuracySum += e.Accuracy
		out.ClarityDistribution[e.Clarity]++
		comments.WriteString(strings.ToLower(e.Comments))
		comments.WriteString(" ")
	}
	out.AverageAccuracy = float64(accuracySum) / float64(len(l.history))

	if out.AverageAccuracy < 3 {
		out.Observations = append(out.Observations, "Overall solution accuracy needs improvement")
	}
	if out.ClarityDistribution[ClarityUnclear] > out.ClarityDistribution[ClarityVeryClear] {
		out.Observations = append(out.Observations, "Focus on improving explanation clarity")
	}
	all := comments.String()
	if strings.Contains(all, "confusing") {
		out.Observations = append(out.Observations, "Users find explanations confusing - simplify language")
	}
	if strings.Contains(all, "incomplete") {
		out.Observations = append(out.Observations, "Users want more comprehensive solutions")
	}
	return out
}

// Recommendations derives category-level guidance from accumulated feedback.
func (l *Learner) Recommendations() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.history) == 0 {
		return []string{"No feedback available yet"}
	}

	var lowAccuracy, unclear int
	for _, e := range l.history {
		if e.Accuracy <= 2 {
			lowAccuracy++
		}
		if e.Clarity == ClarityUnclear {
			unclear++
		}
	}

	threshold := float64(len(l.history)) * 0.3
	var out []string
	if float64(lowAccuracy) > threshold {
		out = append(out, "Focus on mathematical accuracy")
	}
	if float64(unclear) > threshold {
		out = append(out, "Provide clearer explanations")
	}
	if len(out) == 0 {
		return []string{"Continue with current approach - feedback is positive"}
	}
	return out
}

// ruleSuggestions is the rule-based improvement path.
func ruleSuggestions(e Entry) []string {
	var out []string

	if e.Accuracy <= 2 {
		out = append(out,
			"Review mathematical accuracy of the solution",
			"Verify calculation steps")
	}
	if e.Clarity == ClarityUnclear {
		out = append(out,
			"Provide more detailed explanations",
			"Break down complex steps into smaller parts",
			"Add more context for mathematical concepts")
	}

	lower := strings.ToLower(e.Comments)
	if strings.Contains(lower, "confusing") {
		out = append(out, "Simplify language and explanations")
	}
	if strings.Contains(lower, "wrong") {
		out = append(out, "Double-check mathematical calculations")
	}
	if strings.Contains(lower, "incomplete") {
		out = append(out, "Provide more comprehensive solution steps")
	}
	return out
}

// confidenceAdjustment maps ratings onto a coarse adjustment label.
func confidenceAdjustment(e Entry) string {
	switch {
	case e.Accuracy >= 4 && e.Clarity == ClarityVeryClear:
		return "Increase confidence by 10%"
	case e.Accuracy >= 3 && (e.Clarity == ClarityVeryClear || e.Clarity == ClaritySomewhatClear):
		return "Maintain current confidence level"
	case e.Accuracy <= 2 || e.Clarity == ClarityUnclear:
		return "Decrease confidence by 20%"
	default:
		return "Decrease confidence by 10%"
	}
}

// analyze runs the LLM feedback analysis with a schema-enforced response.
func (l *Learner) analyze(ctx context.Context, e Entry) ([]string, string, error) {
	comments := e.Comments
	if comments == "" {
		comments = "No comments provided"
	}

	resp, err := l.provider.Generate(llm.WithPurpose(ctx, "feedback-analysis"), llm.Request{
		System: "You analyze feedback on mathematical solutions to improve future " +
			"responses. Produce specific, actionable improvement suggestions and a " +
			"confidence adjustment recommendation.",
		Messages: []llm.Message{{
			Role: llm.RoleUser,
			Content: fmt.Sprintf("Accuracy rating (1-5): %d\nClarity rating: %s\nComments: %s",
				e.Accuracy, e.Clarity, comments),
		}},
		Schema:    analysisSchema(),
		MaxTokens: 512,
	})
	if err != nil {
		return nil, "", err
	}

	var parsed struct {
		Suggestions          []string `json:"improvement_suggestions"`
		ConfidenceAdjustment string   `json:"confidence_adjustment"`
	}
	if err := json.Unmarshal(resp.Content, &parsed); err != nil {
		return nil, "", fmt.Errorf("parse analysis response: %w", err)
	}
	if len(parsed.Suggestions) == 0 {
		return nil, "", fmt.Errorf("analysis response has no suggestions")
	}
	return parsed.Suggestions, parsed.ConfidenceAdjustment, nil
}

func analysisSchema() *llm.Schema {
	return &llm.Schema{
		Name:        "feedback-analysis",
		Description: "Improvement suggestions derived from solution feedback",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"improvement_suggestions": map[string]any{
					"type":     "array",
					"minItems": 1,
					"items":    map[string]any{"type": "string"},
				},
				"confidence_adjustment": map[string]any{"type": "string"},
			},
			"required":             []any{"improvement_suggestions", "confidence_adjustment"},
			"additionalProperties": false,
		},
	}
}
