package guardrail

import (
	"regexp"
	"strings"
)

var (
	scriptTagRe = regexp.MustCompile(`(?is)<script.*?</script>`)

	sqlInjectionRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(union|select|insert|update|delete|drop|create|alter)\s+`),
		regexp.MustCompile(`(?i)(or|and)\s+1\s*=\s*1`),
		regexp.MustCompile(`(?i)(or|and)\s+1\s*=\s*0`),
	}

	whitespaceRe = regexp.MustCompile(`\s+`)
)

// Sanitize strips script-injection and basic SQL-injection substrings and
// collapses runs of whitespace. Mathematical notation (operators, Greek
// letters, superscripts) passes through untouched — this is deliberately
// not an alphanumeric filter.
func Sanitize(text string) string {
	out := scriptTagRe.ReplaceAllString(text, "")
	for _, re := range sqlInjectionRes {
		out = re.ReplaceAllString(out, "")
	}
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(out, " "))
}
