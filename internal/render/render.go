// Package render formats agent output for the terminal.
package render

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathroute/internal/agent"
	"github.com/abhisek/mathroute/internal/feedback"
	"github.com/abhisek/mathroute/internal/store"
)

// Color palette — muted, readable on dark and light terminals
var (
	primary = lipgloss.Color("#8B5CF6") // Purple
	success = lipgloss.Color("#22C55E") // Green
	warning = lipgloss.Color("#F97316") // Orange
	text    = lipgloss.Color("#F8FAFC") // White
	textDim = lipgloss.Color("#94A3B8") // Slate
	border  = lipgloss.Color("#334155") // Slate
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primary)

	stepTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(text)

	dimStyle = lipgloss.NewStyle().
			Foreground(textDim)

	answerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(success)

	degradedStyle = lipgloss.NewStyle().
			Foreground(warning)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(1, 2)
)

// Solution renders the full envelope: steps, final answer and routing
// metadata.
func Solution(res *agent.Result) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(res.Problem))
	b.WriteString("\n\n")

	for _, step := range res.Solution.Steps {
		b.WriteString(stepTitleStyle.Render(fmt.Sprintf("Step %d: %s", step.Index, step.Title)))
		b.WriteString("\n")
		b.WriteString("  " + step.Content + "\n")
		if step.Explanation != "" {
			b.WriteString(dimStyle.Render("  "+step.Explanation) + "\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(answerStyle.Render(res.Solution.FinalAnswer))
	b.WriteString("\n\n")

	meta := fmt.Sprintf("source: %s  category: %s  difficulty: %s  confidence: %.2f  %dms  id: %s",
		res.Source, res.Category, res.Difficulty, res.ConfidenceScore, res.ResponseTime, res.ProblemID)
	b.WriteString(dimStyle.Render(meta))

	if len(res.Solution.Sources) > 0 {
		b.WriteString("\n\n" + dimStyle.Render("Sources:"))
		for _, src := range res.Solution.Sources {
			b.WriteString("\n" + dimStyle.Render(fmt.Sprintf("  %s (%s)", src.Title, src.URL)))
		}
	}

	return cardStyle.Render(b.String())
}

// Improvement renders the learner's response to one feedback submission.
func Improvement(imp feedback.Improvement) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Feedback recorded"))
	b.WriteString("\n\n")
	for _, s := range imp.Suggestions {
		b.WriteString("  • " + s + "\n")
	}
	b.WriteString("\n" + dimStyle.Render(imp.ConfidenceAdjustment))
	return cardStyle.Render(b.String())
}

// Activities renders the activity trail, newest first.
func Activities(acts []store.Activity) string {
	if len(acts) == 0 {
		return dimStyle.Render("No activity recorded yet.")
	}
	var b strings.Builder
	for i, a := range acts {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(stepTitleStyle.Render(a.Action))
		b.WriteString(dimStyle.Render(fmt.Sprintf("  [%s]  %s", a.Source, a.CreatedAt.Format("2006-01-02 15:04"))))
		if a.Details != "" {
			b.WriteString("\n  " + a.Details)
		}
	}
	return b.String()
}

// Status renders the component snapshot.
func Status(st *agent.Status) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("mathroute status"))
	b.WriteString("\n\n")

	b.WriteString(stepTitleStyle.Render("Knowledge base") + "\n")
	b.WriteString(fmt.Sprintf("  %d entries\n", st.KnowledgeBase["total"]))

	b.WriteString(stepTitleStyle.Render("Stored problems") + "\n")
	total := st.Problems["total"]
	b.WriteString(fmt.Sprintf("  %d total\n", total))
	for category, n := range st.Problems {
		if category == "total" {
			continue
		}
		b.WriteString(dimStyle.Render(fmt.Sprintf("    %s: %d", category, n)) + "\n")
	}

	b.WriteString(stepTitleStyle.Render("Feedback") + "\n")
	b.WriteString(fmt.Sprintf("  %d entries, average rating %.1f, %.0f%% helpful\n",
		st.Feedback.Total, st.Feedback.AverageRating, st.Feedback.HelpfulPercentage))

	b.WriteString(stepTitleStyle.Render("Web search") + "\n")
	if st.SearchDegraded {
		b.WriteString(degradedStyle.Render("  "+st.SearchProvider+" (no API key configured)") + "\n")
	} else {
		b.WriteString("  " + st.SearchProvider + "\n")
	}

	b.WriteString(stepTitleStyle.Render("Guardrails") + "\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("    %d privacy patterns, %d prohibited categories, %d keywords",
		st.Guardrails.PrivacyPatterns, st.Guardrails.ProhibitedCategories, st.Guardrails.MathematicalKeywords)))

	return b.String()
}
