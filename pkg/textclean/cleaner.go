package textclean

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"
)

// Rule is a single ordered vocabulary correction.
type Rule struct {
	Pattern     string `yaml:"pattern"`
	Replacement string `yaml:"replacement"`
}

type compiledRule struct {
	re          *regexp.Regexp
	replacement string
}

// Cleaner normalizes raw spoken or typed text before task extraction.
// Clean is a pure function of its input; a Cleaner is safe for
// concurrent use once built.
type Cleaner struct {
	fillers []*regexp.Regexp
	rules   []compiledRule
}

// New builds a Cleaner with the built-in correction tables.
func New() *Cleaner {
	c, err := NewWithRules(nil)
	if err != nil {
		// Built-in tables are compile-time constants; a failure here is a bug.
		panic(err)
	}
	return c
}

// NewWithRules builds a Cleaner with the built-in tables plus extra
// corrections appended after them, preserving order.
func NewWithRules(extra []Rule) (*Cleaner, error) {
	fillers := make([]*regexp.Regexp, 0, len(fillerPatterns))
	for _, p := range fillerPatterns {
		fillers = append(fillers, regexp.MustCompile(p))
	}

	all := append(DefaultRules(), extra...)
	rules := make([]compiledRule, 0, len(all))
	for _, r := range all {
		re, err := regexp.Compile(r.Pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid correction pattern %q: %w", r.Pattern, err)
		}
		rules = append(rules, compiledRule{re: re, replacement: r.Replacement})
	}

	return &Cleaner{fillers: fillers, rules: rules}, nil
}

// LoadRulesFile reads extra correction rules from a YAML file of the form:
//
//	corrections:
//	  - pattern: '(?i)\bcan walk\b'
//	    replacement: "Canva"
func LoadRulesFile(path string) ([]Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules file: %w", err)
	}
	var doc struct {
		Corrections []Rule `yaml:"corrections"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse rules file %s: %w", path, err)
	}
	return doc.Corrections, nil
}

var (
	whitespaceRE      = regexp.MustCompile(`\s+`)
	repeatedPeriodRE  = regexp.MustCompile(`\.{2,}`)
	repeatedQueryRE   = regexp.MustCompile(`\?{2,}`)
	repeatedBangRE    = regexp.MustCompile(`!{2,}`)
	spaceBeforePuncRE = regexp.MustCompile(`\s+([.,!?;:])`)
	danglingCommaRE   = regexp.MustCompile(`[,;:]+\s*([.!?])`)
	leadingPuncRE     = regexp.MustCompile(`^[\s.,;:!?]+`)
	sentenceStartRE   = regexp.MustCompile(`(^|[.!?]\s+)([a-z])`)
)

// Clean normalizes raw text: trims, strips fillers, applies the ordered
// vocabulary corrections, normalizes whitespace and punctuation,
// capitalizes sentence starts and terminates the final sentence. It
// never fails; empty or whitespace-only input yields "".
func (c *Cleaner) Clean(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}

	for _, re := range c.fillers {
		s = re.ReplaceAllString(s, " ")
	}

	for _, r := range c.rules {
		s = r.re.ReplaceAllString(s, r.replacement)
	}

	s = whitespaceRE.ReplaceAllString(s, " ")
	s = repeatedPeriodRE.ReplaceAllString(s, ".")
	s = repeatedQueryRE.ReplaceAllString(s, "?")
	s = repeatedBangRE.ReplaceAllString(s, "!")
	s = spaceBeforePuncRE.ReplaceAllString(s, "$1")
	s = danglingCommaRE.ReplaceAllString(s, "$1")
	s = leadingPuncRE.ReplaceAllString(s, "")

	s = sentenceStartRE.ReplaceAllStringFunc(s, func(m string) string {
		runes := []rune(m)
		runes[len(runes)-1] = unicode.ToUpper(runes[len(runes)-1])
		return string(runes)
	})

	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if !strings.ContainsAny(s[len(s)-1:], ".!?") {
		s += "."
	}
	return s
}
