package markup

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Built-in rules. Go regular expressions have no backreferences, so the
// paired delimiters of bold and italic are spelled out as alternations.
var (
	RuleHeader = Rule{
		ID:      "header",
		Pattern: `(?m)^(#{1,6})[ \t]*(.*)`,
		Replace: "$2",
		Style:   StyleHeader,
	}
	RuleLink = Rule{
		ID:      "link",
		Pattern: `\[([^\[]+)\]\(([^\)]+)\)`,
		Replace: "$1",
		Style:   StyleLink,
		Link:    true,
	}
	RuleBold = Rule{
		ID:      "bold",
		Pattern: `\*\*(.*?)\*\*|__(.*?)__`,
		Replace: "$1$2",
		Style:   StyleBold,
	}
	RuleHyperlink = Rule{
		ID:      "hyperlink",
		Pattern: `<((?i)https?://(?:www\.)?\S+(?:/|\b))>`,
		Replace: "$1",
		Style:   StyleLink,
		Link:    true,
	}
	RuleItalic = Rule{
		ID:      "italic",
		Pattern: `(\s)\*([^*]+?)\*|(\s)_([^_]+?)_`,
		Replace: "$1$2$3$4",
		Style:   StyleItalic,
	}
	RuleCode = Rule{
		ID:      "code",
		Pattern: "`([^`]+)`",
		Replace: "$1",
		Style:   StyleCode,
	}
	RuleStrike = Rule{
		ID:      "strike",
		Pattern: `~~(.+?)~~`,
		Replace: "$1",
		Style:   StyleStrike,
	}
)

// DefaultRules returns the built-in catalog: header, link, bold, hyperlink
// and italic, in that order.
func DefaultRules() []Rule {
	return []Rule{RuleHeader, RuleLink, RuleBold, RuleHyperlink, RuleItalic}
}

// ExtendedRules returns DefaultRules followed by inline code and
// strikethrough.
func ExtendedRules() []Rule {
	return append(DefaultRules(), RuleCode, RuleStrike)
}

type catalogFile struct {
	Rules []catalogRule `yaml:"rules"`
}

type catalogRule struct {
	ID      string `yaml:"id"`
	Pattern string `yaml:"pattern"`
	Replace string `yaml:"replace,omitempty"`
	Style   string `yaml:"style,omitempty"`
	Link    bool   `yaml:"link,omitempty"`
}

// LoadCatalog reads an ordered rule list from YAML:
//
//	rules:
//	  - id: bold
//	    pattern: '\*\*(.*?)\*\*'
//	    replace: '$1'
//	    style: bold
//
// Patterns that do not compile are accepted; such rules never match. Use
// Rule.Validate to report them.
func LoadCatalog(r io.Reader) ([]Rule, error) {
	if r == nil {
		return nil, fmt.Errorf("catalog: reader is nil")
	}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var file catalogFile
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("catalog: decode: %w", err)
	}
	rules := make([]Rule, 0, len(file.Rules))
	seen := make(map[string]struct{}, len(file.Rules))
	for i, entry := range file.Rules {
		id := strings.TrimSpace(entry.ID)
		if id == "" {
			return nil, fmt.Errorf("catalog: rule %d: id is required", i+1)
		}
		if _, ok := seen[id]; ok {
			return nil, fmt.Errorf("catalog: %w: %q", ErrDuplicateRule, id)
		}
		seen[id] = struct{}{}
		if entry.Pattern == "" {
			return nil, fmt.Errorf("catalog: rule %q: pattern is required", id)
		}
		style, err := ParseStyle(entry.Style)
		if err != nil {
			return nil, fmt.Errorf("catalog: rule %q: %w", id, err)
		}
		rules = append(rules, Rule{
			ID:      id,
			Pattern: entry.Pattern,
			Replace: entry.Replace,
			Style:   style,
			Link:    entry.Link,
		})
	}
	return rules, nil
}

// LoadCatalogFile reads a YAML rule catalog from path.
func LoadCatalogFile(path string) ([]Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	return LoadCatalog(bytes.NewReader(data))
}

// MarshalCatalog encodes rules in the format read by LoadCatalog. The no-op
// rule is skipped.
func MarshalCatalog(rules []Rule) ([]byte, error) {
	file := catalogFile{Rules: make([]catalogRule, 0, len(rules))}
	for _, r := range rules {
		if r.IsNoop() {
			continue
		}
		entry := catalogRule{
			ID:      r.ID,
			Pattern: r.Pattern,
			Replace: r.Replace,
			Link:    r.Link,
		}
		if r.Style != StyleNone {
			entry.Style = r.Style.String()
		}
		file.Rules = append(file.Rules, entry)
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(file); err != nil {
		return nil, fmt.Errorf("catalog: encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("catalog: encode: %w", err)
	}
	return buf.Bytes(), nil
}
