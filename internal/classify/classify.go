// Package classify decides whether a text looks like an official government
// circular. The detector is a deliberately recall-leaning heuristic over a
// multilingual keyword table and a set of header patterns; downstream
// callers treat a negative verdict as a soft warning, not a hard block.
package classify

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode"
)

// Keyword is one entry of the signal table: a term and the script it is
// written in. Keeping the script alongside the term lets new languages be
// added as data without touching the decision logic.
type Keyword struct {
	Script string
	Term   string
}

// Result is the verdict for one text.
type Result struct {
	IsCircular bool
	Confidence float64 // in [0,1]
	Reason     string
}

// Options configures a Classifier. Zero values select the defaults.
type Options struct {
	// Keywords replaces the built-in signal table.
	Keywords []Keyword
	// HeaderPatterns replaces the built-in header regular expressions,
	// evaluated against the lowercased text when no keyword matched.
	HeaderPatterns []string
	// Threshold is the minimum confidence for a circular verdict.
	Threshold float64
	// SignalBasis caps the confidence denominator: matching this many
	// distinct signals counts as full confidence even when the keyword
	// table is much larger.
	SignalBasis int
}

const (
	defaultThreshold   = 0.20
	defaultSignalBasis = 5
	minReadableRunes   = 10
)

// Classifier holds the compiled signal table. Safe for concurrent use.
type Classifier struct {
	keywords  []Keyword
	headers   []*regexp.Regexp
	threshold float64
	basis     int
}

// New validates opts and builds a Classifier. A malformed header pattern is
// a configuration error, reported before any text is classified.
func New(opts Options) (*Classifier, error) {
	c := &Classifier{
		keywords:  opts.Keywords,
		threshold: opts.Threshold,
		basis:     opts.SignalBasis,
	}
	if c.keywords == nil {
		c.keywords = defaultKeywords
	}
	if c.threshold <= 0 {
		c.threshold = defaultThreshold
	}
	if c.basis <= 0 {
		c.basis = defaultSignalBasis
	}
	patterns := opts.HeaderPatterns
	if patterns == nil {
		patterns = defaultHeaderPatterns
	}
	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("classify: bad header pattern %q: %w", p, err)
		}
		c.headers = append(c.headers, re)
	}
	return c, nil
}

// Default returns a Classifier with the built-in table and threshold.
func Default() *Classifier {
	c, err := New(Options{})
	if err != nil {
		panic(err) // built-in patterns always compile
	}
	return c
}

// Classify scores text against the signal table. Confidence grows with the
// number of distinct matched signals and never decreases when more signals
// are added to the text.
func (c *Classifier) Classify(text string) Result {
	if readableRunes(text) < minReadableRunes {
		return Result{Reason: "no readable text"}
	}
	lower := strings.ToLower(text)

	matched := c.matchKeywords(lower)
	signals := len(matched)
	reason := ""
	if signals > 0 {
		reason = "matched keywords: " + strings.Join(matched, ", ")
	} else {
		// Header formats only count when no keyword hit; a header match is
		// equivalent to one keyword signal.
		headers := c.matchHeaders(lower)
		signals = len(headers)
		if signals > 0 {
			reason = "matched header patterns: " + strings.Join(headers, ", ")
		}
	}
	if signals == 0 {
		return Result{Reason: "no official signals found"}
	}

	basis := c.basis
	if len(c.keywords) < basis {
		basis = len(c.keywords)
	}
	confidence := float64(signals) / float64(basis)
	if confidence > 1 {
		confidence = 1
	}
	return Result{
		IsCircular: confidence >= c.threshold,
		Confidence: confidence,
		Reason:     reason,
	}
}

// Matches is the strict boolean variant: true as soon as any keyword or
// header pattern occurs. Equivalent to Classify with an "at least one
// match" threshold.
func (c *Classifier) Matches(text string) bool {
	if readableRunes(text) < minReadableRunes {
		return false
	}
	lower := strings.ToLower(text)
	if len(c.matchKeywords(lower)) > 0 {
		return true
	}
	return len(c.matchHeaders(lower)) > 0
}

func (c *Classifier) matchKeywords(lower string) []string {
	seen := map[string]bool{}
	for _, kw := range c.keywords {
		term := strings.ToLower(kw.Term)
		if term == "" || seen[term] {
			continue
		}
		if strings.Contains(lower, term) {
			seen[term] = true
		}
	}
	out := make([]string, 0, len(seen))
	for term := range seen {
		out = append(out, term)
	}
	sort.Strings(out)
	return out
}

func (c *Classifier) matchHeaders(lower string) []string {
	var out []string
	for _, re := range c.headers {
		if re.MatchString(lower) {
			out = append(out, re.String())
		}
	}
	return out
}

func readableRunes(text string) int {
	n := 0
	for _, r := range text {
		if !unicode.IsSpace(r) {
			n++
		}
	}
	return n
}
