package markup

import "testing"

func TestSpanDisplayWithoutRulesIsRaw(t *testing.T) {
	s := Span{Text: "**raw**", Rules: []Rule{NoopRule}}
	runs := s.Display().Runs()
	if len(runs) != 1 || runs[0].Text != "**raw**" || runs[0].Effects != 0 {
		t.Fatalf("unexpected display %+v", runs)
	}
	if s.Interactive() {
		t.Fatalf("plain span reported interactive")
	}
	if len(s.ApplicableRules()) != 0 {
		t.Fatalf("no-op rule reported as applicable")
	}
}

func TestSpanDisplayFirstRuleRewritesAllRulesStyle(t *testing.T) {
	swap := Rule{ID: "swap", Pattern: `x`, Replace: "y", Style: StyleItalic}
	s := Span{Text: "**x**", Rules: []Rule{NoopRule, RuleBold, swap}}
	runs := s.Display().Runs()
	if len(runs) != 1 {
		t.Fatalf("expected one run, got %+v", runs)
	}
	if runs[0].Text != "x" {
		t.Fatalf("later templates must not apply, got %q", runs[0].Text)
	}
	if runs[0].Effects != EffectBold|EffectItalic {
		t.Fatalf("effects = %b", runs[0].Effects)
	}
}

func TestSpanDisplayEmptyReplaceKeepsText(t *testing.T) {
	mark := Rule{ID: "mark", Pattern: `!+`, Style: StyleStrike}
	s := Span{Text: "!!!", Rules: []Rule{NoopRule, mark}}
	runs := s.Display().Runs()
	if len(runs) != 1 || runs[0].Text != "!!!" || runs[0].Effects != EffectStrike {
		t.Fatalf("unexpected display %+v", runs)
	}
}

func TestSpanInteractiveAndURL(t *testing.T) {
	s := Span{Text: "[docs](https://golang.org/doc)", Rules: []Rule{NoopRule, RuleLink}}
	if !s.Interactive() {
		t.Fatalf("link span not interactive")
	}
	if got := s.URL(); got != "https://golang.org/doc" {
		t.Fatalf("url = %q", got)
	}
	if got := s.Display().String(); got != "docs" {
		t.Fatalf("label = %q", got)
	}
}
