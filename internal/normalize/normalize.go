// Package normalize cleans raw text recovered from scanned or extracted
// documents into a canonical plain-text form: boilerplate headers and
// footers are dropped, whitespace is collapsed, characters outside a
// configurable script whitelist are removed, and common extraction
// artifacts (split words, zero-width runes, runaway dot leaders) are
// repaired. Every transform is pure; a Normalizer is safe for concurrent
// use once constructed.
package normalize

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/unicode/rangetable"
)

// Block is a contiguous Unicode code point range kept by the character
// whitelist, one per supported writing system.
type Block struct {
	Name string
	Lo   rune
	Hi   rune
}

// scriptBlocks is the registry of supported script blocks. New scripts are
// added here (or passed as ExtraBlocks) rather than in filtering logic.
var scriptBlocks = []Block{
	{Name: "devanagari", Lo: 0x0900, Hi: 0x097F},
	{Name: "bengali", Lo: 0x0980, Hi: 0x09FF},
	{Name: "gurmukhi", Lo: 0x0A00, Hi: 0x0A7F},
	{Name: "gujarati", Lo: 0x0A80, Hi: 0x0AFF},
	{Name: "odia", Lo: 0x0B00, Hi: 0x0B7F},
	{Name: "tamil", Lo: 0x0B80, Hi: 0x0BFF},
	{Name: "telugu", Lo: 0x0C00, Hi: 0x0C7F},
	{Name: "kannada", Lo: 0x0C80, Hi: 0x0CFF},
	{Name: "malayalam", Lo: 0x0D00, Hi: 0x0D7F},
}

// DefaultScripts returns the names of every registered script block.
func DefaultScripts() []string {
	out := make([]string, 0, len(scriptBlocks))
	for _, b := range scriptBlocks {
		out = append(out, b.Name)
	}
	return out
}

// DefaultNoisePhrases are boilerplate stamps removed by StripNoise when no
// custom phrase list is configured.
var DefaultNoisePhrases = []string{
	"Confidential",
	"Internal Use Only",
	"Not for Publication",
	"Draft Copy",
	"For Official Use",
}

// Options configures a Normalizer.
type Options struct {
	// KeepPageNumbers disables the standalone page-number removal pass.
	KeepPageNumbers bool
	// Scripts names the script blocks to keep. Empty keeps all registered
	// blocks. Unknown names are rejected by New.
	Scripts []string
	// ExtraBlocks adds code point ranges beyond the registered scripts.
	ExtraBlocks []Block
	// NoisePhrases overrides DefaultNoisePhrases for StripNoise. Blank
	// entries are rejected by New.
	NoisePhrases []string
}

// Normalizer applies the cleaning pipeline with a fixed configuration.
type Normalizer struct {
	keepPageNumbers bool
	blocks          []Block
	noise           []*regexp.Regexp
}

// New validates opts and returns a ready Normalizer. Configuration problems
// are reported here, before any text is processed.
func New(opts Options) (*Normalizer, error) {
	n := &Normalizer{keepPageNumbers: opts.KeepPageNumbers}

	if len(opts.Scripts) == 0 {
		n.blocks = append(n.blocks, scriptBlocks...)
	} else {
		for _, name := range opts.Scripts {
			b, ok := lookupBlock(name)
			if !ok {
				return nil, fmt.Errorf("normalize: unknown script %q", name)
			}
			n.blocks = append(n.blocks, b)
		}
	}
	for _, b := range opts.ExtraBlocks {
		if b.Name == "" || b.Lo > b.Hi {
			return nil, fmt.Errorf("normalize: invalid extra block %+v", b)
		}
		n.blocks = append(n.blocks, b)
	}

	phrases := opts.NoisePhrases
	if phrases == nil {
		phrases = DefaultNoisePhrases
	}
	for _, p := range phrases {
		if strings.TrimSpace(p) == "" {
			return nil, fmt.Errorf("normalize: blank noise phrase in list %q", phrases)
		}
		n.noise = append(n.noise, regexp.MustCompile(`(?i)`+regexp.QuoteMeta(p)))
	}
	return n, nil
}

// Default returns a Normalizer with the full script whitelist and page-number
// removal enabled.
func Default() *Normalizer {
	n, err := New(Options{})
	if err != nil {
		panic(err) // zero Options never fail validation
	}
	return n
}

func lookupBlock(name string) (Block, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, b := range scriptBlocks {
		if b.Name == key {
			return b, true
		}
	}
	return Block{}, false
}

var (
	headerFooterPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)^page\s+\d+`), // "Page 3", "Page 3 of 12"
		regexp.MustCompile(`(?i)^\[?page\s*\d+\]?$`),
		regexp.MustCompile(`^\d+$`),
		regexp.MustCompile(`(?i)^government of\b`),
		regexp.MustCompile(`(?i)^ministry of\b`),
		regexp.MustCompile(`(?i)^department of\b`),
		regexp.MustCompile(`(?i)^annexure\b`),
		regexp.MustCompile(`(?i)^appendix\b`),
		regexp.MustCompile(`^[-_=]{3,}$`),
		regexp.MustCompile(`^[•·*]{3,}$`),
	}

	pageNumberLine = regexp.MustCompile(`(?m)^[ \t]*\d+[ \t]*$`)
	pageNumberLead = regexp.MustCompile(`(?m)^\d+[ \t]*\|`)
	pageNumberTail = regexp.MustCompile(`(?m)\|[ \t]*\d+[ \t]*$`)

	spaceRun       = regexp.MustCompile(` {2,}`)
	blankLineRun   = regexp.MustCompile(`\n{3,}`)
	hyphenBreak    = regexp.MustCompile(`([\p{L}\p{N}]+)-[ \t]*\n[ \t]*([\p{L}\p{N}]+)`)
	dotLeader      = regexp.MustCompile(`\.{4,}`)
	preCloseSpace  = regexp.MustCompile(`\s+([.,!?;:।॥])`)
	postPunctTight = regexp.MustCompile(`([.,!?;:।॥])(\p{L})`)

	// Zero-width and BOM runes left behind by PDF text extraction.
	invisible = runes.Remove(runes.In(rangetable.New('\u200B', '\u200C', '\u200D', '\uFEFF')))
)

// Normalize runs the full cleaning pipeline over text. The result is stable
// under repeated application.
func (n *Normalizer) Normalize(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}

	text, _, _ = transform.String(transform.Chain(norm.NFC, invisible), text)

	text = stripHeadersFooters(text)
	if !n.keepPageNumbers {
		text = stripPageNumbers(text)
	}
	text = normalizeWhitespace(text)
	text = n.filterRunes(text)
	text = repairArtifacts(text)
	// The whitelist filter can leave fresh spaces at line edges; tidy once
	// more so the result is stable under repeated application.
	text = normalizeWhitespace(text)
	return strings.TrimSpace(text)
}

// StripNoise removes the configured boilerplate phrases anywhere in text,
// case-insensitively. It is independent of Normalize and composes after it.
func (n *Normalizer) StripNoise(text string) string {
	for _, re := range n.noise {
		text = re.ReplaceAllString(text, "")
	}
	return text
}

// stripHeadersFooters drops lines matching boilerplate patterns. Blank lines
// pass through so paragraph boundaries survive for later passes.
func stripHeadersFooters(text string) string {
	lines := strings.Split(text, "\n")
	kept := lines[:0]
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			kept = append(kept, line)
			continue
		}
		if matchesAny(trimmed, headerFooterPatterns) {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

func matchesAny(s string, patterns []*regexp.Regexp) bool {
	for _, re := range patterns {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}

// stripPageNumbers removes standalone numeric lines and numbers glued to
// pipe characters, which extractors emit at page breaks.
func stripPageNumbers(text string) string {
	text = pageNumberLine.ReplaceAllString(text, "")
	text = pageNumberLead.ReplaceAllString(text, "")
	text = pageNumberTail.ReplaceAllString(text, "")
	return text
}

func normalizeWhitespace(text string) string {
	text = strings.ReplaceAll(text, "\t", " ")
	text = spaceRun.ReplaceAllString(text, " ")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	text = strings.Join(lines, "\n")
	return blankLineRun.ReplaceAllString(text, "\n\n")
}

// filterRunes replaces every rune outside the whitelist with a space, then
// collapses the resulting space runs. Whitelisted: ASCII letters and digits,
// whitespace, a fixed punctuation set, and the configured script blocks.
func (n *Normalizer) filterRunes(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if n.allowed(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}
	return spaceRun.ReplaceAllString(b.String(), " ")
}

const keptPunct = `.,!?;:'"()-–—/`

func (n *Normalizer) allowed(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == ' ', r == '\n', r == '\r':
		return true
	case strings.ContainsRune(keptPunct, r):
		return true
	}
	for _, blk := range n.blocks {
		if r >= blk.Lo && r <= blk.Hi {
			return true
		}
	}
	return false
}

// repairArtifacts fixes the residue of PDF extraction: words split by a
// hyphen at a line break, runaway dot leaders, whitespace pushed before
// punctuation, and punctuation glued to the next word.
func repairArtifacts(text string) string {
	text = hyphenBreak.ReplaceAllString(text, "$1$2")
	text = dotLeader.ReplaceAllString(text, "...")
	text = preCloseSpace.ReplaceAllString(text, "$1")
	text = postPunctTight.ReplaceAllString(text, "$1 $2")
	return text
}
