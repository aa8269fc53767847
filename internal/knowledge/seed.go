package knowledge

import "github.com/abhisek/mathroute/internal/solution"

// Seed loads the starter corpus: one worked problem per major category so a
// fresh instance answers the classic textbook queries from retrieval alone.
func (r *Retriever) Seed() {
	for _, s := range seedEntries {
		r.Add(s.problem, s.solution, s.category)
	}
}

type seedEntry struct {
	problem  string
	solution solution.Solution
	category solution.Category
}

var seedEntries = []seedEntry{
	{
		problem:  "solve quadratic equation x² + 5x + 6 = 0",
		category: solution.CategoryAlgebra,
		solution: solution.Solution{
			Steps: []solution.Step{
				solution.NewStep(1, "Identify the quadratic equation",
					"x² + 5x + 6 = 0",
					"This is a quadratic equation in standard form ax² + bx + c = 0"),
				solution.NewStep(2, "Factor the quadratic expression",
					"x² + 5x + 6 = (x + 2)(x + 3)",
					"Find two numbers that multiply to 6 and add to 5: 2 and 3"),
				solution.NewStep(3, "Set each factor equal to zero",
					"x + 2 = 0  or  x + 3 = 0",
					"Use the zero product property: if ab = 0, then a = 0 or b = 0"),
				solution.NewStep(4, "Solve for x",
					"x = -2  or  x = -3",
					"These are the roots of the quadratic equation"),
			},
			FinalAnswer: "x = -2 or x = -3",
		},
	},
	{
		problem:  "find derivative of f(x) = 3x³ + 2x² - 5x + 1",
		category: solution.CategoryCalculus,
		solution: solution.Solution{
			Steps: []solution.Step{
				solution.NewStep(1, "Apply the power rule to each term",
					"f(x) = 3x³ + 2x² - 5x + 1",
					"Use the power rule: d/dx[xⁿ] = n·xⁿ⁻¹"),
				solution.NewStep(2, "Differentiate each term",
					"d/dx[3x³] = 9x²\nd/dx[2x²] = 4x\nd/dx[-5x] = -5\nd/dx[1] = 0",
					"Apply the power rule and constant rule to each term"),
				solution.NewStep(3, "Combine the results",
					"f'(x) = 9x² + 4x - 5",
					"Sum all the derivatives to get the final answer"),
			},
			FinalAnswer: "f'(x) = 9x² + 4x - 5",
		},
	},
	{
		problem:  "calculate area of triangle with sides 3, 4, 5",
		category: solution.CategoryGeometry,
		solution: solution.Solution{
			Steps: []solution.Step{
				solution.NewStep(1, "Check if it's a right triangle",
					"3² + 4² = 9 + 16 = 25 = 5²",
					"Verify using Pythagorean theorem: a² + b² = c²"),
				solution.NewStep(2, "Apply the area formula",
					"Area = ½ × base × height = ½ × 3 × 4 = 6",
					"For a right triangle, use the two perpendicular sides"),
			},
			FinalAnswer: "Area = 6 square units",
		},
	},
	{
		problem:  "solve system of equations 2x + y = 7, x - y = 2",
		category: solution.CategoryAlgebra,
		solution: solution.Solution{
			Steps: []solution.Step{
				solution.NewStep(1, "Set up the system",
					"2x + y = 7  ... (1)\nx - y = 2   ... (2)",
					"We have a system of two linear equations with two unknowns"),
				solution.NewStep(2, "Add the equations",
					"(2x + y) + (x - y) = 7 + 2\n3x = 9",
					"Adding eliminates y, leaving us with one equation in x"),
				solution.NewStep(3, "Solve for x",
					"x = 3",
					"Divide both sides by 3"),
				solution.NewStep(4, "Substitute to find y",
					"3 - y = 2\ny = 1",
					"Substitute x = 3 into equation (2)"),
			},
			FinalAnswer: "x = 3, y = 1",
		},
	},
	{
		problem:  "find sin(π/4) and cos(π/4)",
		category: solution.CategoryTrigonometry,
		solution: solution.Solution{
			Steps: []solution.Step{
				solution.NewStep(1, "Convert to degrees",
					"π/4 radians = 45°",
					"π radians = 180°, so π/4 = 45°"),
				solution.NewStep(2, "Use special triangle",
					"45-45-90 triangle has sides in ratio 1:1:√2",
					"This is a well-known special right triangle"),
				solution.NewStep(3, "Calculate trigonometric ratios",
					"sin(45°) = opposite/hypotenuse = 1/√2 = √2/2\ncos(45°) = adjacent/hypotenuse = 1/√2 = √2/2",
					"Both sine and cosine are equal for 45°"),
			},
			FinalAnswer: "sin(π/4) = √2/2, cos(π/4) = √2/2",
		},
	},
}
