package markup

// Span is a contiguous slice of the source text tagged with the rules that
// produced it. Text is the raw source; rewriting happens in Display.
type Span struct {
	Text  string
	Rules []Rule
}

// ApplicableRules returns the span rules without the baseline no-op rule.
func (s Span) ApplicableRules() []Rule {
	out := make([]Rule, 0, len(s.Rules))
	for _, r := range s.Rules {
		if r.IsNoop() {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Display resolves the span into styled text. The first applicable rule
// rewrites the raw text and every applicable rule, in order, contributes its
// style. Replacement templates of later rules are not applied.
func (s Span) Display() Text {
	rules := s.ApplicableRules()
	if len(rules) == 0 {
		return Plain(s.Text)
	}
	first := rules[0]
	out := Plain(first.Rewrite(s.Text)).WithStyle(first.Style)
	for _, r := range rules[1:] {
		out = out.WithStyle(r.Style)
	}
	return out
}

// Interactive reports whether any applicable rule produces links.
func (s Span) Interactive() bool {
	for _, r := range s.Rules {
		if r.Link && !r.IsNoop() {
			return true
		}
	}
	return false
}

// URL returns the first URL-looking substring of the raw span text.
func (s Span) URL() string {
	return ExtractURL(s.Text)
}
