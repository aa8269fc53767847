package solver

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/abhisek/mathroute/internal/solution"
)

// geometryStrategy handles right triangles given by three sides and circle
// areas given by a radius.
type geometryStrategy struct{}

func (*geometryStrategy) Name() string { return "geometry" }

func (*geometryStrategy) Matches(lower string) bool {
	return containsAny(lower, "area", "volume", "perimeter", "triangle", "circle", "rectangle", "square")
}

var (
	radiusRe  = regexp.MustCompile(`(?i)radius\s+(?:of\s+)?(\d+)`)
	integerRe = regexp.MustCompile(`\d+`)
)

func (g *geometryStrategy) Solve(text string) (*solution.Solution, error) {
	lower := strings.ToLower(text)

	if containsAny(lower, "triangle") {
		if sol := solveTriangle(text); sol != nil {
			return sol, nil
		}
	}
	if containsAny(lower, "circle") && containsAny(lower, "radius") {
		if sol := solveCircle(text); sol != nil {
			return sol, nil
		}
	}
	return nil, ErrNeedsFallback
}

// solveTriangle checks the Pythagorean relation on the first three integers
// in the text and computes the right-triangle area.
func solveTriangle(text string) *solution.Solution {
	tokens := integerRe.FindAllString(text, 4)
	if len(tokens) < 3 {
		return nil
	}
	sides := make([]int, 3)
	for i := 0; i < 3; i++ {
		sides[i], _ = strconv.Atoi(tokens[i])
	}
	sort.Ints(sides)
	a, b, c := sides[0], sides[1], sides[2]
	if a <= 0 || a*a+b*b != c*c {
		return nil
	}
	area := a * b / 2

	steps := []solution.Step{
		solution.NewStep(1, "Check if it's a right triangle",
			fmt.Sprintf("%d² + %d² = %d + %d = %d = %d²", a, b, a*a, b*b, c*c, c),
			"Verify using Pythagorean theorem: a² + b² = c²"),
		solution.NewStep(2, "Calculate area",
			fmt.Sprintf("Area = ½ × base × height = ½ × %d × %d = %d", a, b, area),
			"For a right triangle, use the two perpendicular sides as base and height"),
	}
	return &solution.Solution{
		Steps:       steps,
		FinalAnswer: fmt.Sprintf("Area = %d square units", area),
	}
}

// solveCircle computes πr² for an integer radius, reporting the exact
// multiple of π alongside the two-decimal approximation.
func solveCircle(text string) *solution.Solution {
	m := radiusRe.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	r, err := strconv.Atoi(m[1])
	if err != nil || r <= 0 {
		return nil
	}
	area := math.Pi * float64(r) * float64(r)

	steps := []solution.Step{
		solution.NewStep(1, "Identify the formula",
			fmt.Sprintf("Area of circle = πr² where r = %d", r),
			"Use the standard formula for area of a circle"),
		solution.NewStep(2, "Calculate",
			fmt.Sprintf("Area = π × %d² = %dπ = %.2f", r, r*r, area),
			"Substitute the radius value and calculate"),
	}
	return &solution.Solution{
		Steps:       steps,
		FinalAnswer: fmt.Sprintf("Area = %dπ ≈ %.2f square units", r*r, area),
	}
}
