package markup

import (
	"sort"
	"strings"

	"pkt.systems/markup/internal/palette"
)

// ThemeStyle describes a terminal style as an ANSI prefix sequence.
type ThemeStyle struct {
	Prefix string
}

// Styles groups the semantic styles used by the renderer.
type Styles struct {
	Text           ThemeStyle
	Heading        ThemeStyle
	Emphasis       ThemeStyle
	Strong         ThemeStyle
	EmphasisStrong ThemeStyle
	CodeInline     ThemeStyle
	Strike         ThemeStyle
	LinkText       ThemeStyle
	LinkURL        ThemeStyle
}

// Theme provides named styles for rendering.
type Theme interface {
	Name() string
	Styles() Styles
}

type theme struct {
	name   string
	styles Styles
}

func (t theme) Name() string   { return t.name }
func (t theme) Styles() Styles { return t.styles }

// NewTheme returns a Theme from a Styles definition.
func NewTheme(name string, styles Styles) Theme {
	return theme{name: name, styles: styles}
}

func style(prefixes ...string) ThemeStyle {
	var b strings.Builder
	for _, p := range prefixes {
		if p != "" {
			b.WriteString(p)
		}
	}
	return ThemeStyle{Prefix: b.String()}
}

func stylesFromPalette(p palette.Palette) Styles {
	return Styles{
		Text:           style(p.Text),
		Heading:        style(p.Heading),
		Emphasis:       style(palette.Italic, p.Emphasis),
		Strong:         style(palette.Bold, p.Strong),
		EmphasisStrong: style(palette.Bold, palette.Italic, p.EmphasisStrong),
		CodeInline:     style(p.CodeInline),
		Strike:         style(palette.Strikethrough, p.Strike),
		LinkText:       style(palette.Underline, p.LinkText),
		LinkURL:        style(p.LinkURL),
	}
}

var builtinThemes = map[string]Theme{
	"default":        theme{name: "default", styles: stylesFromPalette(palette.PaletteDefault)},
	"gruvbox":        theme{name: "gruvbox", styles: stylesFromPalette(palette.PaletteGruvbox)},
	"dracula":        theme{name: "dracula", styles: stylesFromPalette(palette.PaletteDracula)},
	"nord":           theme{name: "nord", styles: stylesFromPalette(palette.PaletteNord)},
	"tokyo-night":    theme{name: "tokyo-night", styles: stylesFromPalette(palette.PaletteTokyoNight)},
	"solarized-dark": theme{name: "solarized-dark", styles: stylesFromPalette(palette.PaletteSolarizedDark)},
	"github-light":   theme{name: "github-light", styles: stylesFromPalette(palette.PaletteGithubLight)},
}

// AvailableThemes returns the names of built-in themes.
func AvailableThemes() []string {
	names := make([]string, 0, len(builtinThemes))
	for name := range builtinThemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ThemeByName returns a built-in theme by name.
func ThemeByName(name string) (Theme, bool) {
	if name == "" {
		return builtinThemes["default"], true
	}
	normalized := strings.ToLower(strings.TrimSpace(name))
	theme, ok := builtinThemes[normalized]
	return theme, ok
}

// DefaultTheme returns the default built-in theme.
func DefaultTheme() Theme {
	return builtinThemes["default"]
}

// prefix returns the combined ANSI prefix for a set of run effects.
func (s Styles) prefix(e Effects) string {
	out := s.Text
	if e.Has(EffectHeader) {
		out = combineStyles(out, s.Heading)
	}
	switch {
	case e.Has(EffectBold | EffectItalic):
		out = combineStyles(out, s.EmphasisStrong)
	case e.Has(EffectBold):
		out = combineStyles(out, s.Strong)
	case e.Has(EffectItalic):
		out = combineStyles(out, s.Emphasis)
	}
	if e.Has(EffectCode) {
		out = combineStyles(out, s.CodeInline)
	}
	if e.Has(EffectStrike) {
		out = combineStyles(out, s.Strike)
	}
	if e.Has(EffectLink) {
		out = combineStyles(out, s.LinkText)
	}
	return out.Prefix
}

func combineStyles(base ThemeStyle, extra ThemeStyle) ThemeStyle {
	if base.Prefix == "" {
		return extra
	}
	if extra.Prefix == "" {
		return base
	}
	return ThemeStyle{Prefix: base.Prefix + extra.Prefix}
}
