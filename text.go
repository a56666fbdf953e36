package markup

import (
	"fmt"
	"strings"
)

// Style is a visual effect a rule contributes to the text it matched.
type Style uint8

const (
	// StyleNone leaves text unchanged.
	StyleNone Style = iota
	// StyleBold marks strong text.
	StyleBold
	// StyleItalic marks emphasized text.
	StyleItalic
	// StyleHeader marks heading text.
	StyleHeader
	// StyleLink colors link labels.
	StyleLink
	// StyleCode marks inline code.
	StyleCode
	// StyleStrike marks struck-through text.
	StyleStrike
)

var styleNames = [...]string{
	StyleNone:   "none",
	StyleBold:   "bold",
	StyleItalic: "italic",
	StyleHeader: "header",
	StyleLink:   "link",
	StyleCode:   "code",
	StyleStrike: "strike",
}

func (s Style) String() string {
	if int(s) < len(styleNames) {
		return styleNames[s]
	}
	return fmt.Sprintf("style(%d)", uint8(s))
}

// ParseStyle returns the Style with the given name.
func ParseStyle(name string) (Style, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if normalized == "" {
		return StyleNone, nil
	}
	for i, n := range styleNames {
		if n == normalized {
			return Style(i), nil
		}
	}
	return StyleNone, fmt.Errorf("%w: %q", ErrUnknownStyle, name)
}

func (s Style) effect() Effects {
	switch s {
	case StyleBold:
		return EffectBold
	case StyleItalic:
		return EffectItalic
	case StyleHeader:
		return EffectHeader
	case StyleLink:
		return EffectLink
	case StyleCode:
		return EffectCode
	case StyleStrike:
		return EffectStrike
	default:
		return 0
	}
}

// Effects is the set of styles applied to a run.
type Effects uint8

const (
	EffectBold Effects = 1 << iota
	EffectItalic
	EffectHeader
	EffectLink
	EffectCode
	EffectStrike
)

// Has reports whether all effects in e are set.
func (f Effects) Has(e Effects) bool {
	return f&e == e
}

// Run is a slice of text sharing one set of effects.
type Run struct {
	Text    string
	Effects Effects
}

// Text is a styled display unit: an ordered list of runs.
// Text values are immutable; every method returns a new value.
type Text struct {
	runs []Run
}

// Plain returns unstyled text.
func Plain(s string) Text {
	if s == "" {
		return Text{}
	}
	return Text{runs: []Run{{Text: s}}}
}

// WithStyle returns t with style applied to every run.
func (t Text) WithStyle(style Style) Text {
	e := style.effect()
	if e == 0 || len(t.runs) == 0 {
		return t
	}
	runs := make([]Run, len(t.runs))
	for i, r := range t.runs {
		runs[i] = Run{Text: r.Text, Effects: r.Effects | e}
	}
	return Text{runs: runs}
}

// Concat returns t followed by other, joining the boundary runs when their
// effects match.
func (t Text) Concat(other Text) Text {
	if len(other.runs) == 0 {
		return t
	}
	if len(t.runs) == 0 {
		return other
	}
	runs := make([]Run, 0, len(t.runs)+len(other.runs))
	runs = append(runs, t.runs...)
	first := other.runs[0]
	if last := &runs[len(runs)-1]; last.Effects == first.Effects {
		last.Text += first.Text
	} else {
		runs = append(runs, first)
	}
	runs = append(runs, other.runs[1:]...)
	return Text{runs: runs}
}

// Runs returns a copy of the runs making up t.
func (t Text) Runs() []Run {
	out := make([]Run, len(t.runs))
	copy(out, t.runs)
	return out
}

// Len returns the length of the unstyled text in bytes.
func (t Text) Len() int {
	n := 0
	for _, r := range t.runs {
		n += len(r.Text)
	}
	return n
}

// String returns the unstyled text.
func (t Text) String() string {
	switch len(t.runs) {
	case 0:
		return ""
	case 1:
		return t.runs[0].Text
	}
	var b strings.Builder
	b.Grow(t.Len())
	for _, r := range t.runs {
		b.WriteString(r.Text)
	}
	return b.String()
}
