// Package solver turns free-text math problems into structured step-by-step
// derivations. A fixed table of strategies is consulted in priority order;
// strategies that recognize a problem but cannot derive it signal
// ErrNeedsFallback so the dispatch degrades instead of guessing.
package solver

import (
	"errors"
	"strings"

	"github.com/abhisek/mathroute/internal/solution"
)

// ErrNeedsFallback is returned by a Strategy that matched the problem text
// but could not produce a derivation for it.
var ErrNeedsFallback = errors.New("solver: strategy cannot derive this problem")

// Strategy is one solving discipline. Matches is called with lowercased
// problem text; Solve receives the original text.
type Strategy interface {
	Name() string
	Matches(lower string) bool
	Solve(text string) (*solution.Solution, error)
}

// Outcome is the result of one dispatch. Degraded is set when every matching
// strategy declined and the general scaffold produced the answer.
type Outcome struct {
	Solution *solution.Solution
	Strategy string
	Degraded bool
}

// Solver dispatches problems over an ordered strategy table.
type Solver struct {
	strategies []Strategy
	general    *generalStrategy
}

// New builds a Solver with the full strategy table. Order matters: equations
// are claimed before calculus, calculus before geometry and trigonometry, so
// that "solve x^2 + 5x + 6 = 0" never reaches a weaker discipline.
func New() *Solver {
	return &Solver{
		strategies: []Strategy{
			&equationStrategy{},
			&derivativeStrategy{},
			&integralStrategy{},
			&limitStrategy{},
			&geometryStrategy{},
			&trigonometryStrategy{},
			&statisticsStrategy{},
		},
		general: &generalStrategy{},
	}
}

// Solve runs the first matching strategy and degrades to the general
// scaffold when none succeeds. The returned Outcome always carries a
// well-formed Solution.
func (s *Solver) Solve(text string) *Outcome {
	lower := strings.ToLower(strings.TrimSpace(text))

	for _, st := range s.strategies {
		if !st.Matches(lower) {
			continue
		}
		sol, err := st.Solve(text)
		if err != nil {
			// A declining strategy does not block later ones: the
			// keyword overlap between disciplines is real ("area
			// under the curve" matches both).
			continue
		}
		return &Outcome{Solution: sol, Strategy: st.Name()}
	}

	sol, _ := s.general.Solve(text)
	return &Outcome{Solution: sol, Strategy: s.general.Name(), Degraded: true}
}

func containsAny(s string, keywords ...string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
