package markup

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/muesli/reflow/ansi"
	"pkt.systems/markup/internal/palette"
)

const (
	osc8Start = "\x1b]8;;"
	osc8Close = "\x1b\\"
	osc8End   = "\x1b]8;;\x1b\\"
	tabWidth  = 4
)

// DetectOSC8Support returns true if the current environment likely supports OSC 8 hyperlinks.
func DetectOSC8Support() bool {
	switch os.Getenv("OSC8") {
	case "0":
		return false
	case "1":
		return true
	}
	if os.Getenv("DOMTERM") != "" || os.Getenv("WT_SESSION") != "" {
		return true
	}
	switch os.Getenv("TERM_PROGRAM") {
	case "iTerm.app", "WezTerm", "vscode", "ghostty":
		return true
	}
	if strings.Contains(strings.ToLower(os.Getenv("TERM")), "kitty") {
		return true
	}
	if vte := os.Getenv("VTE_VERSION"); vte != "" {
		if n, err := strconv.Atoi(vte); err == nil && n >= 5000 {
			return true
		}
	}
	return false
}

type piece struct {
	text   string
	prefix string
	// raw pieces are zero-width control sequences written verbatim.
	raw bool
}

// ANSIRenderer writes render groups to a terminal as styled, word-wrapped
// text. Link groups become OSC 8 hyperlinks when enabled, otherwise the
// target is printed after the label.
type ANSIRenderer struct {
	w        *bufio.Writer
	width    int
	styles   Styles
	osc8     bool
	softWrap bool

	col       int
	active    string
	word      []piece
	wordWidth int
	spaces    int
	err       error
}

// NewANSIRenderer creates a renderer writing to w. A width of zero or less
// disables wrapping.
func NewANSIRenderer(w io.Writer, width int, theme Theme, opts ...RenderOption) *ANSIRenderer {
	cfg := newRenderConfig(opts)
	if theme == nil {
		theme = DefaultTheme()
	}
	return &ANSIRenderer{
		w:        bufio.NewWriter(w),
		width:    width,
		styles:   theme.Styles(),
		osc8:     cfg.osc8,
		softWrap: cfg.softWrap,
	}
}

// Width returns the configured wrap width.
func (r *ANSIRenderer) Width() int {
	return r.width
}

// WriteGroups renders groups in order. Output is buffered until Flush.
func (r *ANSIRenderer) WriteGroups(groups []RenderGroup) error {
	for _, g := range groups {
		if err := r.WriteGroup(g); err != nil {
			return err
		}
	}
	return nil
}

// WriteGroup renders a single group.
func (r *ANSIRenderer) WriteGroup(g RenderGroup) error {
	switch p := g.Payload.(type) {
	case PlainPayload:
		r.writeText(p.Text)
	case LinkPayload:
		r.writeLink(p)
	}
	return r.err
}

// Flush terminates the last line and flushes buffered output.
func (r *ANSIRenderer) Flush() error {
	r.flushWord()
	r.spaces = 0
	if r.col > 0 {
		r.newline()
	}
	if r.err != nil {
		return r.err
	}
	return r.w.Flush()
}

func (r *ANSIRenderer) writeText(t Text) {
	for _, run := range t.runs {
		r.writeStyled(run.Text, r.styles.prefix(run.Effects))
	}
}

func (r *ANSIRenderer) writeLink(p LinkPayload) {
	if r.osc8 && p.URL != "" {
		r.appendRaw(osc8Start + p.URL + osc8Close)
		r.writeText(p.Label)
		r.appendRaw(osc8End)
		return
	}
	r.writeText(p.Label)
	if p.URL == "" || p.URL == p.Label.String() {
		return
	}
	r.writeStyled(" (", r.styles.Text.Prefix)
	r.writeStyled(p.URL, r.styles.LinkURL.Prefix)
	r.writeStyled(")", r.styles.Text.Prefix)
}

func (r *ANSIRenderer) writeStyled(text string, prefix string) {
	start := 0
	for i := 0; i < len(text); {
		c, size := utf8.DecodeRuneInString(text[i:])
		switch c {
		case '\n', ' ', '\t':
			if i > start {
				r.appendWord(text[start:i], prefix)
			}
			r.flushWord()
			switch c {
			case '\n':
				r.spaces = 0
				r.newline()
			case ' ':
				r.spaces++
			case '\t':
				r.spaces += tabWidth
			}
			start = i + size
		}
		i += size
	}
	if start < len(text) {
		r.appendWord(text[start:], prefix)
	}
}

func (r *ANSIRenderer) appendWord(text string, prefix string) {
	if n := len(r.word); n > 0 && !r.word[n-1].raw && r.word[n-1].prefix == prefix {
		r.word[n-1].text += text
	} else {
		r.word = append(r.word, piece{text: text, prefix: prefix})
	}
	r.wordWidth += ansi.PrintableRuneWidth(text)
}

func (r *ANSIRenderer) appendRaw(seq string) {
	r.word = append(r.word, piece{text: seq, raw: true})
}

func (r *ANSIRenderer) flushWord() {
	if len(r.word) == 0 {
		return
	}
	if r.width > 0 && r.col > 0 && r.wordWidth > 0 && r.col+r.spaces+r.wordWidth > r.width {
		r.newline()
	} else if r.spaces > 0 {
		r.emit(strings.Repeat(" ", r.spaces), r.styles.Text.Prefix)
	}
	r.spaces = 0
	for _, p := range r.word {
		switch {
		case p.raw:
			r.write(p.text)
		case r.softWrap && r.width > 0:
			r.emitBroken(p.text, p.prefix)
		default:
			r.emit(p.text, p.prefix)
		}
	}
	r.word = r.word[:0]
	r.wordWidth = 0
}

// emitBroken writes text, breaking the line whenever the next rune would
// overflow the width.
func (r *ANSIRenderer) emitBroken(text string, prefix string) {
	start := 0
	col := r.col
	for i, c := range text {
		w := ansi.PrintableRuneWidth(string(c))
		if col > 0 && col+w > r.width {
			if i > start {
				r.emit(text[start:i], prefix)
			}
			r.newline()
			start = i
			col = 0
		}
		col += w
	}
	if start < len(text) {
		r.emit(text[start:], prefix)
	}
}

func (r *ANSIRenderer) emit(text string, prefix string) {
	if prefix != r.active {
		r.resetStyle()
		if prefix != "" {
			r.write(prefix)
		}
		r.active = prefix
	}
	r.write(text)
	r.col += ansi.PrintableRuneWidth(text)
}

func (r *ANSIRenderer) newline() {
	r.resetStyle()
	r.write("\n")
	r.col = 0
}

func (r *ANSIRenderer) resetStyle() {
	if r.active != "" {
		r.write(palette.Reset)
		r.active = ""
	}
}

func (r *ANSIRenderer) write(s string) {
	if r.err != nil {
		return
	}
	_, r.err = r.w.WriteString(s)
}
