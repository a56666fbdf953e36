package markup

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

var (
	// ErrInvalidUTF8 reports invalid UTF-8 input.
	ErrInvalidUTF8 = errors.New("invalid utf-8 input")
	// ErrBinaryInput reports input that appears to be binary.
	ErrBinaryInput = errors.New("binary input detected")
)

const (
	minBinarySample = 64
	maxControlPct   = 2
)

// ReadDocument reads Markdown source from r and prepares it for Apply:
// the input must be UTF-8 text, control characters are dropped and, unless
// WithFrontMatter(true) is given, a leading front matter block is removed.
func ReadDocument(r io.Reader, opts ...RenderOption) (string, error) {
	if r == nil {
		return "", fmt.Errorf("read document: reader is nil")
	}
	cfg := newRenderConfig(opts)
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read document: %w", err)
	}
	if err := ValidateInput(data); err != nil {
		return "", fmt.Errorf("read document: %w", err)
	}
	if !cfg.keepFrontMatter {
		data = stripFrontMatter(data)
	}
	return sanitizeText(data), nil
}

// ValidateInput returns an error if the input is not valid UTF-8 or appears binary.
func ValidateInput(src []byte) error {
	control := 0
	for i := 0; i < len(src); {
		r, size := utf8.DecodeRune(src[i:])
		if r == utf8.RuneError && size == 1 {
			return ErrInvalidUTF8
		}
		if r == 0 {
			return ErrBinaryInput
		}
		if isControlRune(r) {
			control++
		}
		i += size
	}
	if len(src) >= minBinarySample && control*100 >= len(src)*maxControlPct {
		return ErrBinaryInput
	}
	return nil
}

func isControlRune(r rune) bool {
	switch r {
	case '\n', '\r', '\t':
		return false
	}
	return r < 0x20 || r == 0x7F
}

// sanitizeText drops control characters and carriage returns so that only
// printable text, tabs and newlines reach the terminal.
func sanitizeText(src []byte) string {
	var b strings.Builder
	b.Grow(len(src))
	for len(src) > 0 {
		r, size := utf8.DecodeRune(src)
		src = src[size:]
		if r == utf8.RuneError && size == 1 {
			continue
		}
		if r == '\r' || isControlRune(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// stripFrontMatter removes a front matter block delimited by ---, +++ or ;;;
// from the start of src. The block is only recognized when its first line
// looks like metadata and a closing delimiter exists.
func stripFrontMatter(src []byte) []byte {
	body := bytes.TrimPrefix(src, []byte("\xEF\xBB\xBF"))
	open, rest, ok := cutLine(body)
	if !ok {
		return src
	}
	delim := bytes.TrimSpace(open)
	switch string(delim) {
	case "---", "+++", ";;;":
	default:
		return src
	}
	first, _, ok := cutLine(rest)
	if !ok || !metadataLikely(first) {
		return src
	}
	for len(rest) > 0 {
		var line []byte
		line, rest, _ = cutLine(rest)
		if bytes.Equal(bytes.TrimSpace(line), delim) {
			return bytes.TrimLeft(rest, "\r\n")
		}
	}
	return src
}

// cutLine splits src at the first newline, trimming a trailing carriage
// return from the line. ok is false when src is empty.
func cutLine(src []byte) (line, rest []byte, ok bool) {
	if len(src) == 0 {
		return nil, nil, false
	}
	line, rest, _ = bytes.Cut(src, []byte("\n"))
	return bytes.TrimSuffix(line, []byte("\r")), rest, true
}

func metadataLikely(line []byte) bool {
	trimmed := bytes.TrimSpace(line)
	if len(trimmed) == 0 {
		return false
	}
	switch trimmed[0] {
	case '{', '[':
		return true
	}
	return bytes.ContainsAny(trimmed, ":=")
}
