package markup

import (
	"strings"
	"testing"

	"pkt.systems/markup/internal/palette"
)

func TestThemeByNameBuiltins(t *testing.T) {
	expected := []string{
		"default",
		"gruvbox",
		"dracula",
		"nord",
		"tokyo-night",
		"solarized-dark",
		"github-light",
	}
	for _, name := range expected {
		theme, ok := ThemeByName(name)
		if !ok {
			t.Fatalf("expected theme %q to be available", name)
		}
		if theme.Name() != name {
			t.Fatalf("theme %q reports name %q", name, theme.Name())
		}
	}

	available := AvailableThemes()
	if len(available) != len(expected) {
		t.Fatalf("expected %d themes, got %v", len(expected), available)
	}
	for i := 1; i < len(available); i++ {
		if available[i-1] >= available[i] {
			t.Fatalf("themes not sorted: %v", available)
		}
	}
}

func TestThemeByNameNormalizes(t *testing.T) {
	if theme, ok := ThemeByName("  Gruvbox "); !ok || theme.Name() != "gruvbox" {
		t.Fatalf("expected gruvbox, got %v %v", theme, ok)
	}
	if theme, ok := ThemeByName(""); !ok || theme.Name() != "default" {
		t.Fatalf("expected default for empty name")
	}
	if _, ok := ThemeByName("no-such-theme"); ok {
		t.Fatalf("unexpected theme for unknown name")
	}
}

func TestStylesPrefixCombinesEffects(t *testing.T) {
	styles := DefaultTheme().Styles()
	if got := styles.prefix(0); got != styles.Text.Prefix {
		t.Fatalf("plain prefix = %q", got)
	}
	both := styles.prefix(EffectBold | EffectItalic)
	if !strings.Contains(both, palette.Bold) || !strings.Contains(both, palette.Italic) {
		t.Fatalf("bold italic prefix = %q", both)
	}
	if both != styles.EmphasisStrong.Prefix {
		t.Fatalf("bold italic should use the strong emphasis style, got %q", both)
	}
	link := styles.prefix(EffectLink | EffectHeader)
	if !strings.HasPrefix(link, styles.Heading.Prefix) || !strings.HasSuffix(link, styles.LinkText.Prefix) {
		t.Fatalf("heading link prefix = %q", link)
	}
	if got := (Styles{}).prefix(EffectBold | EffectCode | EffectStrike); got != "" {
		t.Fatalf("empty styles produced prefix %q", got)
	}
}
