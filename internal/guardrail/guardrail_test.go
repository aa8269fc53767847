package guardrail

import (
	"strings"
	"testing"
)

func TestValidate_PrivacyPatterns(t *testing.T) {
	v := New()

	tests := []struct {
		name string
		text string
	}{
		{"ssn", "solve x + 2 = 5 for 123-45-6789"},
		{"ssn without math", "my number is 123-45-6789"},
		{"credit card", "charge 4111 1111 1111 1111 please"},
		{"email", "send the answer to alice@example.com"},
		{"phone", "call me at 555-867-5309"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := v.Validate(tt.text)
			if res.Valid {
				t.Fatalf("input with privacy pattern should be rejected: %q", tt.text)
			}
			if res.ViolationType != ViolationPrivacy {
				t.Fatalf("violation type = %q, want privacy", res.ViolationType)
			}
		})
	}
}

func TestValidate_ProhibitedContent(t *testing.T) {
	v := New()

	res := v.Validate("what is your opinion on politics and equations")
	if res.Valid {
		t.Fatal("prohibited topic should be rejected even with math keywords present")
	}
	if res.ViolationType != ViolationContent {
		t.Fatalf("violation type = %q, want content", res.ViolationType)
	}
}

func TestValidate_NonMathematical(t *testing.T) {
	v := New()

	tests := []string{
		"hello there",
		"what a nice day",
		"tell me about your weekend",
	}
	for _, text := range tests {
		res := v.Validate(text)
		if res.Valid {
			t.Fatalf("non-math input should be rejected: %q", text)
		}
		if res.ViolationType != ViolationNonMathematical {
			t.Fatalf("violation type = %q, want non_mathematical", res.ViolationType)
		}
		if res.Confidence >= mathConfidenceThreshold {
			t.Fatalf("confidence %f should be below threshold", res.Confidence)
		}
	}
}

func TestValidate_MathematicalSignals(t *testing.T) {
	v := New()

	// Two independent signals (keyword + problem language) is enough.
	res := v.Validate("solve the quadratic equation")
	if !res.Valid {
		t.Fatalf("math input rejected: %s", res.Reason)
	}
	if res.Confidence < mathConfidenceThreshold {
		t.Fatalf("confidence %f below threshold", res.Confidence)
	}

	// Rich input fires several signal categories.
	res = v.Validate("solve x^2 + 5x + 6 = 0")
	if !res.Valid {
		t.Fatalf("equation rejected: %s", res.Reason)
	}
	if len(res.Categories) < 2 {
		t.Fatalf("expected >=2 signal categories, got %v", res.Categories)
	}
}

func TestValidate_ConfidenceCapped(t *testing.T) {
	v := New()

	res := v.Validate("solve the derivative equation x + 2 = 5 and calculate the integral area of a triangle")
	if !res.Valid {
		t.Fatalf("rejected: %s", res.Reason)
	}
	if res.Confidence > 1.0 {
		t.Fatalf("confidence %f exceeds cap", res.Confidence)
	}
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"script tag", "solve <script>alert(1)</script> x + 2 = 5", "solve x + 2 = 5"},
		{"sql keyword", "DROP table; solve x = 1", "table; solve x = 1"},
		{"whitespace collapse", "solve   x  +  2 = 5", "solve x + 2 = 5"},
		{"math notation preserved", "∫ 2x dx and x² + π", "∫ 2x dx and x² + π"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sanitize(tt.in)
			if got != tt.want {
				t.Fatalf("Sanitize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSanitize_Tautology(t *testing.T) {
	got := Sanitize("x OR 1=1")
	if strings.Contains(strings.ToLower(got), "or 1=1") {
		t.Fatalf("tautology survived sanitization: %q", got)
	}
}

func TestStatus(t *testing.T) {
	s := New().Status()
	if s.PrivacyPatterns == 0 || s.ProhibitedCategories == 0 || s.MathematicalKeywords == 0 {
		t.Fatalf("status should report non-zero rule counts: %+v", s)
	}
}
