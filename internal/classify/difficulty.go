package classify

import (
	"strings"

	"github.com/abhisek/mathroute/internal/solution"
)

// hardKeywords mark language that implies an involved technique regardless
// of category.
var hardKeywords = []string{
	"integration by parts", "complex", "limit", "infinite",
	"second derivative", "nested derivative", "system of",
}

// basicKeywords mark explicitly easy phrasing.
var basicKeywords = []string{
	"simple", "easy", "basic", "find x",
}

// categoryDefaults is the fallback tier when no keyword fires.
var categoryDefaults = map[solution.Category]solution.Difficulty{
	solution.CategoryCalculus:     solution.DifficultyHard,
	solution.CategoryAlgebra:      solution.DifficultyIntermediate,
	solution.CategoryGeometry:     solution.DifficultyBasic,
	solution.CategoryStatistics:   solution.DifficultyIntermediate,
	solution.CategoryTrigonometry: solution.DifficultyIntermediate,
}

// Difficulty estimates a difficulty tier from problem text and its category.
// Keyword tables are checked first (hard before basic), then the category
// default, then intermediate.
func Difficulty(text string, category solution.Category) solution.Difficulty {
	lower := strings.ToLower(text)

	for _, kw := range hardKeywords {
		if strings.Contains(lower, kw) {
			return solution.DifficultyHard
		}
	}
	for _, kw := range basicKeywords {
		if strings.Contains(lower, kw) {
			return solution.DifficultyBasic
		}
	}
	if d, ok := categoryDefaults[category]; ok {
		return d
	}
	return solution.DifficultyIntermediate
}
