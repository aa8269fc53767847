package agent

import (
	"context"

	"github.com/abhisek/mathroute/internal/guardrail"
	"github.com/abhisek/mathroute/internal/store"
)

// Status is a point-in-time snapshot of every routing component.
type Status struct {
	KnowledgeBase  map[string]int
	Problems       map[string]int64
	Feedback       store.FeedbackStats
	SearchProvider string
	SearchDegraded bool
	Guardrails     guardrail.Status
}

// Status aggregates component state for the status command.
func (a *Agent) Status(ctx context.Context) (*Status, error) {
	problems, err := a.deps.Store.Problems().StatsByCategory(ctx)
	if err != nil {
		return nil, err
	}
	fb, err := a.deps.Store.Feedback().Stats(ctx)
	if err != nil {
		return nil, err
	}
	return &Status{
		KnowledgeBase:  a.deps.Retriever.Stats(),
		Problems:       problems,
		Feedback:       fb,
		SearchProvider: a.deps.Search.ProviderName(),
		SearchDegraded: a.deps.Search.Placeholder,
		Guardrails:     a.deps.Validator.Status(),
	}, nil
}
