package solver

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/abhisek/mathroute/internal/solution"
)

// statisticsStrategy computes mean and population standard deviation over
// the first five integers in the text.
type statisticsStrategy struct{}

func (*statisticsStrategy) Name() string { return "statistics" }

func (*statisticsStrategy) Matches(lower string) bool {
	return containsAny(lower, "mean", "average", "median", "mode", "standard deviation", "variance")
}

func (s *statisticsStrategy) Solve(text string) (*solution.Solution, error) {
	tokens := integerRe.FindAllString(text, 5)
	if len(tokens) < 3 {
		return nil, ErrNeedsFallback
	}

	data := make([]float64, len(tokens))
	labels := make([]string, len(tokens))
	sum := 0.0
	for i, tok := range tokens {
		n, err := strconv.Atoi(tok)
		if err != nil {
			return nil, ErrNeedsFallback
		}
		data[i] = float64(n)
		labels[i] = tok
		sum += data[i]
	}

	n := float64(len(data))
	mean := sum / n

	devs := make([]string, len(data))
	variance := 0.0
	for i, x := range data {
		d := (x - mean) * (x - mean)
		devs[i] = formatFloat(d)
		variance += d
	}
	variance /= n
	stdDev := math.Sqrt(variance)

	steps := []solution.Step{
		solution.NewStep(1, "Calculate the mean",
			fmt.Sprintf("Mean = (%s) / %d = %s / %d = %s",
				strings.Join(labels, " + "), len(data), formatFloat(sum), len(data), formatFloat(mean)),
			"Sum all values and divide by the number of values"),
		solution.NewStep(2, "Calculate squared deviations",
			fmt.Sprintf("Deviations from mean: [%s]", strings.Join(devs, ", ")),
			"Find (xi - μ)² for each data point"),
		solution.NewStep(3, "Calculate variance and standard deviation",
			fmt.Sprintf("Variance = %.2f\nStandard deviation = √%.2f = %.2f", variance, variance, stdDev),
			"Variance is average of squared deviations, std dev is square root of variance"),
	}
	return &solution.Solution{
		Steps:       steps,
		FinalAnswer: fmt.Sprintf("Mean = %s, Standard deviation = %.2f", formatFloat(mean), stdDev),
	}, nil
}

// formatFloat renders without trailing zeros: 6 not 6.00, 2.5 not 2.50.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
