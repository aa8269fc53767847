// Package classify assigns a category and difficulty tier to problem text
// using ordered keyword rules. Rules are evaluated in fixed priority order
// and the first match wins, so a problem mentioning both "derivative" and
// "triangle" is calculus, not geometry.
package classify

import (
	"strings"

	"github.com/abhisek/mathroute/internal/solution"
)

// rule pairs a category with the keywords that indicate it.
type rule struct {
	category solution.Category
	keywords []string
}

// categoryRules in priority order. Calculus outranks algebra outranks
// geometry; the ordering is a deliberate tie-break, not incidental.
var categoryRules = []rule{
	{solution.CategoryCalculus, []string{
		"derivative", "differentiate", "integrate", "integration", "limit", "d/dx", "∫",
	}},
	{solution.CategoryAlgebra, []string{
		"equation", "solve", "factor", "quadratic", "linear", "polynomial", "system",
	}},
	{solution.CategoryGeometry, []string{
		"triangle", "circle", "area", "volume", "perimeter", "angle", "coordinate",
	}},
	{solution.CategoryStatistics, []string{
		"mean", "median", "mode", "standard deviation", "variance", "probability",
	}},
	{solution.CategoryTrigonometry, []string{
		"sin", "cos", "tan", "trigonometric", "radian", "degree",
	}},
}

// Classify maps problem text to a category. Pure function, case-insensitive.
func Classify(text string) solution.Category {
	lower := strings.ToLower(text)
	for _, r := range categoryRules {
		for _, kw := range r.keywords {
			if strings.Contains(lower, kw) {
				return r.category
			}
		}
	}
	return solution.CategoryGeneral
}
