package markup

import (
	"errors"
	"fmt"
	"regexp"
	"sync"
)

var (
	// ErrInvalidPattern reports a rule pattern that does not compile.
	ErrInvalidPattern = errors.New("invalid rule pattern")
	// ErrUnknownStyle reports a style name with no matching Style.
	ErrUnknownStyle = errors.New("unknown style")
	// ErrDuplicateRule reports two catalog rules sharing an id.
	ErrDuplicateRule = errors.New("duplicate rule id")
)

// Rule is a data-described markup rule. Pattern finds the text the rule
// applies to, Replace rewrites it using capture-group substitution ($1,
// ${name}) and Style decorates the result. An empty Replace keeps the matched
// text verbatim. Link marks rules whose matches become interactive groups.
type Rule struct {
	ID      string
	Pattern string
	Replace string
	Style   Style
	Link    bool
}

// NoopRule is the baseline rule carried by every span. It never matches and
// never styles.
var NoopRule = Rule{ID: "none"}

// IsNoop reports whether r can never match.
func (r Rule) IsNoop() bool {
	return r.Pattern == ""
}

// Validate reports whether the rule pattern compiles.
func (r Rule) Validate() error {
	if r.IsNoop() {
		return nil
	}
	if _, err := compilePattern(r.Pattern); err != nil {
		return fmt.Errorf("rule %q: %w: %v", r.ID, ErrInvalidPattern, err)
	}
	return nil
}

// Rewrite applies the replacement template to every match of the rule in
// text. Rules without a template, or with a pattern that does not compile,
// return text unchanged.
func (r Rule) Rewrite(text string) string {
	if r.Replace == "" {
		return text
	}
	re := r.matcher()
	if re == nil {
		return text
	}
	return re.ReplaceAllString(text, r.Replace)
}

func (r Rule) matcher() *regexp.Regexp {
	if r.IsNoop() {
		return nil
	}
	re, err := compilePattern(r.Pattern)
	if err != nil {
		return nil
	}
	return re
}

type compiledPattern struct {
	re  *regexp.Regexp
	err error
}

// patterns memoizes compiled rule patterns, including failures.
var patterns sync.Map

func compilePattern(pattern string) (*regexp.Regexp, error) {
	if v, ok := patterns.Load(pattern); ok {
		c := v.(compiledPattern)
		return c.re, c.err
	}
	re, err := regexp.Compile(pattern)
	v, _ := patterns.LoadOrStore(pattern, compiledPattern{re: re, err: err})
	c := v.(compiledPattern)
	return c.re, c.err
}
