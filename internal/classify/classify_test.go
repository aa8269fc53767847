package classify

import (
	"testing"

	"github.com/abhisek/mathroute/internal/solution"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		text string
		want solution.Category
	}{
		{"find the derivative of x^2", solution.CategoryCalculus},
		{"integrate 2x dx", solution.CategoryCalculus},
		{"solve x^2 + 5x + 6 = 0", solution.CategoryAlgebra},
		{"factor the polynomial", solution.CategoryAlgebra},
		{"area of a triangle with sides 3, 4, 5", solution.CategoryGeometry},
		{"perimeter of a rectangle", solution.CategoryGeometry},
		{"find the mean and variance of the data", solution.CategoryStatistics},
		{"what is the probability of heads", solution.CategoryStatistics},
		{"what is sin(π/4)", solution.CategoryTrigonometry},
		{"convert 2 radians to turns", solution.CategoryTrigonometry},
		{"what is the answer to life", solution.CategoryGeneral},
	}
	for _, tt := range tests {
		if got := Classify(tt.text); got != tt.want {
			t.Errorf("Classify(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestClassify_TieBreakCalculusFirst(t *testing.T) {
	// Calculus keywords outrank geometry keywords.
	got := Classify("find the derivative of x^2 and the area of a triangle")
	if got != solution.CategoryCalculus {
		t.Fatalf("tie-break: got %q, want calculus", got)
	}
}

func TestClassify_CaseInsensitive(t *testing.T) {
	if got := Classify("SOLVE THE EQUATION"); got != solution.CategoryAlgebra {
		t.Fatalf("got %q, want algebra", got)
	}
}

func TestDifficulty(t *testing.T) {
	tests := []struct {
		text     string
		category solution.Category
		want     solution.Difficulty
	}{
		{"integration by parts of x e^x", solution.CategoryCalculus, solution.DifficultyHard},
		{"solve the system of equations", solution.CategoryAlgebra, solution.DifficultyHard},
		{"a simple sum", solution.CategoryAlgebra, solution.DifficultyBasic},
		{"find x when x + 1 = 2", solution.CategoryAlgebra, solution.DifficultyBasic},
		{"differentiate f(x)", solution.CategoryCalculus, solution.DifficultyHard},
		{"area of a circle", solution.CategoryGeometry, solution.DifficultyBasic},
		{"solve the equation", solution.CategoryAlgebra, solution.DifficultyIntermediate},
		{"anything", solution.CategoryGeneral, solution.DifficultyIntermediate},
	}
	for _, tt := range tests {
		if got := Difficulty(tt.text, tt.category); got != tt.want {
			t.Errorf("Difficulty(%q, %q) = %q, want %q", tt.text, tt.category, got, tt.want)
		}
	}
}
