package solver

import "github.com/abhisek/mathroute/internal/solution"

// limitStrategy recognizes limit problems but has no symbolic limit engine,
// so it always declines. The slot is reserved for a limit engine; until one
// exists, limit text falls through to the later strategies and the general
// scaffold.
type limitStrategy struct{}

func (*limitStrategy) Name() string { return "limit" }

func (*limitStrategy) Matches(lower string) bool {
	return containsAny(lower, "limit", "approaches", "tends to")
}

func (*limitStrategy) Solve(string) (*solution.Solution, error) {
	return nil, ErrNeedsFallback
}
