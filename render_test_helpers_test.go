package markup

import (
	"bytes"
	"regexp"
	"strings"
	"testing"
)

var ansiRegexp = regexp.MustCompile("\x1b\\[[0-9;]*[A-Za-z]")
var osc8Regexp = regexp.MustCompile("\x1b\\]8;;.*?\x1b\\\\")

func stripANSI(s string) string {
	s = ansiRegexp.ReplaceAllString(s, "")
	s = osc8Regexp.ReplaceAllString(s, "")
	return s
}

func renderString(t *testing.T, src string, width int) string {
	t.Helper()
	return renderStringWithOptions(t, src, width, WithOSC8(false))
}

func renderStringWithOptions(t *testing.T, src string, width int, opts ...RenderOption) string {
	t.Helper()
	var out bytes.Buffer
	err := Render(RenderRequest{
		Reader:  strings.NewReader(src),
		Writer:  &out,
		Width:   width,
		Theme:   DefaultTheme(),
		Options: opts,
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return out.String()
}

func spanTexts(spans []Span) []string {
	out := make([]string, len(spans))
	for i, s := range spans {
		out[i] = s.Text
	}
	return out
}

func ruleIDs(rules []Rule) []string {
	out := make([]string, len(rules))
	for i, r := range rules {
		out[i] = r.ID
	}
	return out
}

func joinSpans(spans []Span) string {
	var b strings.Builder
	for _, s := range spans {
		b.WriteString(s.Text)
	}
	return b.String()
}

func assertNoConsecutivePlain(t *testing.T, groups []RenderGroup) {
	t.Helper()
	for i := 1; i < len(groups); i++ {
		if !groups[i-1].Interactive() && !groups[i].Interactive() {
			t.Fatalf("groups %d and %d are both plain: %q %q", i-1, i, groups[i-1].Display().String(), groups[i].Display().String())
		}
	}
}
