package guardrail

// Status reports the active rule counts, for the status command.
type Status struct {
	PrivacyPatterns      int
	ProhibitedCategories int
	MathematicalKeywords int
}

// Status returns the current rule inventory.
func (v *Validator) Status() Status {
	return Status{
		PrivacyPatterns:      len(privacyPatterns),
		ProhibitedCategories: len(prohibitedKeywords),
		MathematicalKeywords: len(mathKeywords),
	}
}
