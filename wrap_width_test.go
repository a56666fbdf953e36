package markup

import (
	"strings"
	"testing"

	"github.com/muesli/reflow/ansi"
)

func TestWrapWidthBounds(t *testing.T) {
	src := strings.Join([]string{
		"# Heading One",
		"",
		"Paragraph with a [link](https://example.com) and some emphasized _text_ plus **bold** words.",
		"",
		"Another paragraph with a bare <https://go.dev/doc> link and more words to wrap",
		"",
		"- item one with a long line that should wrap cleanly at small widths",
	}, "\n")

	assertWidths := func(name string, render func(width int) string, minWidth int) {
		for width := minWidth; width <= 100; width += 5 {
			out := render(width)
			lines := strings.Split(out, "\n")
			for i, line := range lines {
				plain := stripANSI(line)
				if ansi.PrintableRuneWidth(plain) > width {
					t.Fatalf("%s: line %d exceeds width %d: %q", name, i+1, width, plain)
				}
			}
		}
	}

	linkMinWidth := len("(https://example.com)")
	assertWidths("wrap", func(width int) string {
		return renderString(t, src, width)
	}, linkMinWidth)

	assertWidths("wrap-osc8", func(width int) string {
		return renderStringWithOptions(t, src, width, WithOSC8(true))
	}, 20)
}

func TestWrapBreaksBetweenWords(t *testing.T) {
	out := stripANSI(renderString(t, "alpha beta gamma", 6))
	if out != "alpha\nbeta\ngamma\n" {
		t.Fatalf("unexpected wrap %q", out)
	}
}

func TestWrapKeepsLongWordsUnlessSoftWrap(t *testing.T) {
	word := strings.Repeat("a", 25)
	out := stripANSI(renderString(t, "x "+word, 10))
	if out != "x\n"+word+"\n" {
		t.Fatalf("unexpected hard wrap %q", out)
	}

	out = stripANSI(renderStringWithOptions(t, "x "+word, 10, WithSoftWrap(true)))
	for i, line := range strings.Split(out, "\n") {
		if ansi.PrintableRuneWidth(line) > 10 {
			t.Fatalf("line %d exceeds width: %q", i+1, line)
		}
	}
	if strings.ReplaceAll(out, "\n", "") != "x"+word {
		t.Fatalf("soft wrap lost text: %q", out)
	}
}

func TestWrapDisabledForZeroWidth(t *testing.T) {
	long := strings.Repeat("word ", 40)
	out := stripANSI(renderString(t, long, 0))
	if strings.Count(out, "\n") != 1 {
		t.Fatalf("expected a single line, got %q", out)
	}
}
