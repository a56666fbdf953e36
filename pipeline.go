package markup

import "regexp"

// Apply segments text into spans by running rules in order. Each rule
// re-scans every span produced so far, splitting out its matches and
// tagging them with the rule. The raw texts of the returned spans always
// concatenate back to text.
func Apply(text string, rules []Rule) []Span {
	spans := []Span{{Text: text, Rules: []Rule{NoopRule}}}
	for _, rule := range rules {
		re := rule.matcher()
		if re == nil {
			continue
		}
		next := make([]Span, 0, len(spans))
		for _, span := range spans {
			next = splitSpan(next, span, rule, re)
		}
		spans = next
	}
	return spans
}

// splitSpan appends span to dst, partitioned around the matches of re.
// Matched segments carry rule in addition to the inherited rules; empty
// segments are never emitted.
func splitSpan(dst []Span, span Span, rule Rule, re *regexp.Regexp) []Span {
	if span.Text == "" {
		return append(dst, span)
	}
	matches := re.FindAllStringIndex(span.Text, -1)
	matched := false
	pos := 0
	var tagged []Rule
	for _, m := range matches {
		start, end := m[0], m[1]
		if start == end {
			continue
		}
		if !matched {
			tagged = make([]Rule, len(span.Rules), len(span.Rules)+1)
			copy(tagged, span.Rules)
			tagged = append(tagged, rule)
			matched = true
		}
		if start > pos {
			dst = append(dst, Span{Text: span.Text[pos:start], Rules: span.Rules})
		}
		dst = append(dst, Span{Text: span.Text[start:end], Rules: tagged})
		pos = end
	}
	if !matched {
		return append(dst, span)
	}
	if pos < len(span.Text) {
		dst = append(dst, Span{Text: span.Text[pos:], Rules: span.Rules})
	}
	return dst
}

// Parse segments text with rules and coalesces the spans into render groups.
func Parse(text string, rules []Rule) []RenderGroup {
	return Coalesce(Apply(text, rules))
}
