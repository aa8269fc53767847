// Package guardrail validates that submitted text is safe, educational, and
// mathematical before any solving work happens. Checks run in a fixed order
// and short-circuit: privacy scan, prohibited-topic scan, then a scored
// assessment of mathematical nature.
package guardrail

import (
	"regexp"
	"strings"
)

// ViolationType labels why validation failed.
type ViolationType string

const (
	ViolationPrivacy         ViolationType = "privacy"
	ViolationContent         ViolationType = "content"
	ViolationNonMathematical ViolationType = "non_mathematical"
)

// Result is the outcome of validating one input.
type Result struct {
	Valid         bool
	Reason        string
	ViolationType ViolationType

	// Confidence and Categories are populated only for valid input:
	// the accumulated mathematical-nature score and which signal
	// categories contributed to it.
	Confidence float64
	Categories []string
}

// mathConfidenceThreshold is the minimum accumulated signal score for an
// input to count as mathematical.
const mathConfidenceThreshold = 0.3

var mathKeywords = []string{
	"equation", "derivative", "integral", "function", "solve", "calculate", "find",
	"algebra", "calculus", "geometry", "trigonometry", "statistics", "probability",
	"matrix", "vector", "polynomial", "logarithm", "exponential", "limit",
	"theorem", "proof", "formula", "graph", "plot", "coordinate", "angle",
	"triangle", "circle", "square", "rectangle", "area", "volume", "perimeter",
	"differential", "integration", "optimization", "linear", "quadratic",
	"sine", "cosine", "tangent", "pi", "infinity", "complex", "rational",
}

var prohibitedKeywords = []string{
	"politics", "religion", "personal information", "medical diagnosis",
	"legal advice", "financial advice", "inappropriate", "offensive",
	"violent", "sexual", "drugs", "weapons", "illegal", "harmful",
	"social security", "credit card", "password", "private key",
}

// Privacy-sensitive patterns. Any match rejects the input outright,
// regardless of mathematical content.
var privacyPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b\d{3}-\d{2}-\d{4}\b`),                               // SSN
	regexp.MustCompile(`\b\d{4}[\s-]?\d{4}[\s-]?\d{4}[\s-]?\d{4}\b`),          // credit card
	regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`), // email
	regexp.MustCompile(`\b\d{3}[\s-]?\d{3}[\s-]?\d{4}\b`),                     // phone
}

var (
	mathSymbolRe  = regexp.MustCompile(`[+\-*/=<>∫∑∏√∞π∂∇±×÷≤≥≠≈∈∅∪∩]`)
	numberRe      = regexp.MustCompile(`\d+`)
	variableRe    = regexp.MustCompile(`\b[a-z]\b`)
	expressionRe  = regexp.MustCompile(`[a-z]\s*[\+\-\*/\^]\s*[a-z0-9]`)
	problemLangRe = regexp.MustCompile(`(solve|find|calculate|compute|determine)`)
)

// Validator screens raw input. Stateless and safe for concurrent use.
type Validator struct{}

// New creates a Validator.
func New() *Validator {
	return &Validator{}
}

// Validate runs the full check pipeline on input text.
func (v *Validator) Validate(text string) Result {
	lower := strings.ToLower(text)

	for _, p := range privacyPatterns {
		if p.MatchString(text) {
			return Result{
				Valid:         false,
				Reason:        "Input contains sensitive personal information. Please remove any personal data and try again.",
				ViolationType: ViolationPrivacy,
			}
		}
	}

	for _, kw := range prohibitedKeywords {
		if strings.Contains(lower, kw) {
			return Result{
				Valid:         false,
				Reason:        "Content appears to be non-educational or inappropriate. Please enter a mathematical problem.",
				ViolationType: ViolationContent,
			}
		}
	}

	confidence, categories := scoreMathematicalNature(text, lower)
	if confidence < mathConfidenceThreshold {
		return Result{
			Valid:         false,
			Reason:        "This doesn't appear to be a mathematical problem. Please enter a question related to mathematics, such as equations, calculus, geometry, or algebra.",
			ViolationType: ViolationNonMathematical,
			Confidence:    confidence,
		}
	}

	return Result{
		Valid:      true,
		Confidence: confidence,
		Categories: categories,
	}
}

// scoreMathematicalNature accumulates a confidence score from independent
// signals, capped at 1.0. The weights are fixed: a recognized math keyword
// dominates, symbols and number/variable co-occurrence add less.
func scoreMathematicalNature(text, lower string) (float64, []string) {
	var confidence float64
	var categories []string

	for _, kw := range mathKeywords {
		if strings.Contains(lower, kw) {
			confidence += 0.4
			categories = append(categories, "keywords")
			break
		}
	}

	if mathSymbolRe.MatchString(text) {
		confidence += 0.3
		categories = append(categories, "symbols")
	}

	if numberRe.MatchString(text) && variableRe.MatchString(lower) {
		confidence += 0.2
		categories = append(categories, "variables_numbers")
	}

	if expressionRe.MatchString(lower) {
		confidence += 0.1
		categories = append(categories, "expressions")
	}

	if problemLangRe.MatchString(lower) {
		confidence += 0.1
		categories = append(categories, "problem_language")
	}

	if confidence > 1.0 {
		confidence = 1.0
	}
	return confidence, categories
}
