// Package summarize produces two extractive summaries of a document: a
// formal "official" summary built from a few full sentences, and a short
// "simplified" summary rendered as citizen-friendly bullets. Sentences are
// scored by normalized term frequency with a square-root length penalty,
// boosted when they carry directive language, and selected per summary kind;
// the final output always preserves original sentence order. Everything is
// rebuilt per call, so a Summarizer is safe for concurrent use.
package summarize

import (
	"math"
	"sort"
	"strings"
	"unicode"
)

// Config tunes sentence scoring. Zero values select the defaults.
type Config struct {
	// Stopwords are excluded from term-frequency scoring.
	Stopwords []string
	// DirectiveTerms mark operative clauses; any case-insensitive
	// substring hit applies the directive boost.
	DirectiveTerms []string
	// OfficialDirectiveBoost multiplies directive sentences in the
	// official summary (default 1.6).
	OfficialDirectiveBoost float64
	// SimplifiedDirectiveBoost is the same for the simplified summary
	// (default 1.4).
	SimplifiedDirectiveBoost float64
	// LeadBias is the weight of the front-of-document preference in the
	// official summary (default 0.15).
	LeadBias float64
	// LengthPreferenceScale is the token-count scale of the simplified
	// summary's short-sentence preference (default 25).
	LengthPreferenceScale float64
}

const (
	defaultSentenceCount = 3
	defaultBulletCount   = 5
	defaultBulletWords   = 18
)

// Summarizer scores and selects sentences with a fixed configuration.
type Summarizer struct {
	stopwords     map[string]struct{}
	directives    []string
	officialBoost float64
	simpleBoost   float64
	leadBias      float64
	lengthScale   float64
}

// New builds a Summarizer from cfg.
func New(cfg Config) *Summarizer {
	s := &Summarizer{
		stopwords:     make(map[string]struct{}),
		officialBoost: cfg.OfficialDirectiveBoost,
		simpleBoost:   cfg.SimplifiedDirectiveBoost,
		leadBias:      cfg.LeadBias,
		lengthScale:   cfg.LengthPreferenceScale,
	}
	stop := cfg.Stopwords
	if stop == nil {
		stop = defaultStopwords
	}
	for _, w := range stop {
		s.stopwords[strings.ToLower(w)] = struct{}{}
	}
	directives := cfg.DirectiveTerms
	if directives == nil {
		directives = defaultDirectiveTerms
	}
	s.directives = make([]string, len(directives))
	for i, d := range directives {
		s.directives[i] = strings.ToLower(d)
	}
	if s.officialBoost <= 0 {
		s.officialBoost = 1.6
	}
	if s.simpleBoost <= 0 {
		s.simpleBoost = 1.4
	}
	if s.leadBias <= 0 {
		s.leadBias = 0.15
	}
	if s.lengthScale <= 0 {
		s.lengthScale = 25
	}
	return s
}

// Default returns a Summarizer with the built-in scoring configuration.
func Default() *Summarizer { return New(Config{}) }

// sentence is one scored unit. index is the position within the source text
// and is the only ordering key used when assembling output.
type sentence struct {
	text   string
	index  int
	words  int
	tokens []string // lowercased, stopwords excluded
}

// Official returns a formal summary of at most sentenceCount full sentences,
// joined by single spaces, in source order. Empty input yields "".
func (s *Summarizer) Official(text string, sentenceCount int) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}
	if sentenceCount <= 0 {
		sentenceCount = defaultSentenceCount
	}

	sents := s.buildSentences(text)
	if len(sents) == 0 {
		return ""
	}
	freq := termFrequencies(sents)

	total := float64(len(sents))
	scores := make([]float64, len(sents))
	for i, sent := range sents {
		score := baseScore(sent, freq)
		if s.hasDirective(sent.text) {
			score *= s.officialBoost
		}
		// Circulars front-load their operative clause.
		score *= 1 + s.leadBias*(1-float64(sent.index)/total)
		scores[i] = score
	}

	picked := topIndices(scores, sentenceCount)
	sort.Ints(picked)
	parts := make([]string, 0, len(picked))
	for _, i := range picked {
		parts = append(parts, ensureTerminal(sents[i].text))
	}
	return strings.Join(parts, " ")
}

// Simplified returns at most bulletCount "- "-prefixed bullets joined by
// newlines, each shortened toward maxWordsPerBullet words, near-duplicates
// suppressed, in source order. Empty input yields "".
func (s *Summarizer) Simplified(text string, bulletCount, maxWordsPerBullet int) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}
	if bulletCount <= 0 {
		bulletCount = defaultBulletCount
	}
	if maxWordsPerBullet <= 0 {
		maxWordsPerBullet = defaultBulletWords
	}

	sents := s.buildSentences(text)
	if len(sents) == 0 {
		return ""
	}
	freq := termFrequencies(sents)

	scores := make([]float64, len(sents))
	for i, sent := range sents {
		score := baseScore(sent, freq)
		// Favor short sentences without requiring them.
		score *= 1 / (1 + float64(sent.words)/s.lengthScale)
		if s.hasDirective(sent.text) {
			score *= s.simpleBoost
		}
		scores[i] = score
	}

	ranked := rankIndices(scores)
	accepted := make([]int, 0, bulletCount)
	for _, i := range ranked {
		if len(accepted) == bulletCount {
			break
		}
		if isNearDuplicate(sents[i].text, accepted, sents) {
			continue
		}
		accepted = append(accepted, i)
	}
	// Backfill when deduplication left the quota unmet.
	if len(accepted) < bulletCount {
		taken := make(map[int]bool, len(accepted))
		for _, i := range accepted {
			taken[i] = true
		}
		for _, i := range ranked {
			if len(accepted) == bulletCount {
				break
			}
			if !taken[i] {
				accepted = append(accepted, i)
			}
		}
	}

	sort.Ints(accepted)
	bullets := make([]string, 0, len(accepted))
	for _, i := range accepted {
		short := shorten(sents[i].text, maxWordsPerBullet)
		bullets = append(bullets, "- "+ensureTerminal(short))
	}
	return strings.Join(bullets, "\n")
}

func (s *Summarizer) buildSentences(text string) []sentence {
	raw := splitSentences(text)
	out := make([]sentence, 0, len(raw))
	for i, t := range raw {
		all := tokenize(t)
		scored := make([]string, 0, len(all))
		for _, tok := range all {
			if _, stop := s.stopwords[tok]; !stop {
				scored = append(scored, tok)
			}
		}
		out = append(out, sentence{text: t, index: i, words: len(strings.Fields(t)), tokens: scored})
	}
	return out
}

func (s *Summarizer) hasDirective(text string) bool {
	lower := strings.ToLower(text)
	for _, d := range s.directives {
		if strings.Contains(lower, d) {
			return true
		}
	}
	return false
}

// splitSentences cuts on whitespace that immediately follows a terminal
// punctuation mark, keeping the mark with its sentence and recording source
// order implicitly by slice position.
func splitSentences(text string) []string {
	var out []string
	var cur strings.Builder
	runes := []rune(text)
	for i, r := range runes {
		cur.WriteRune(r)
		if isTerminal(r) && (i+1 == len(runes) || unicode.IsSpace(runes[i+1])) {
			if s := strings.TrimSpace(cur.String()); s != "" {
				out = append(out, s)
			}
			cur.Reset()
		}
	}
	if s := strings.TrimSpace(cur.String()); s != "" {
		out = append(out, s)
	}
	return out
}

func isTerminal(r rune) bool {
	return r == '.' || r == '!' || r == '?' || r == '।' || r == '॥'
}

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}

// termFrequencies counts scored tokens across all sentences and normalizes
// by the maximum count, so the top term has weight 1.0.
func termFrequencies(sents []sentence) map[string]float64 {
	freq := make(map[string]float64)
	for _, s := range sents {
		for _, tok := range s.tokens {
			freq[tok]++
		}
	}
	max := 0.0
	for _, v := range freq {
		if v > max {
			max = v
		}
	}
	if max > 0 {
		for k := range freq {
			freq[k] /= max
		}
	}
	return freq
}

// baseScore rewards topical density: summed normalized frequencies over the
// square root of the scored token count, so long information-rich sentences
// are not penalized linearly.
func baseScore(s sentence, freq map[string]float64) float64 {
	if len(s.tokens) == 0 {
		return 0
	}
	sum := 0.0
	for _, tok := range s.tokens {
		sum += freq[tok]
	}
	return sum / math.Sqrt(float64(len(s.tokens)))
}

// rankIndices returns sentence indices ordered by score descending; ties
// keep source order.
func rankIndices(scores []float64) []int {
	idx := make([]int, len(scores))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return scores[idx[a]] > scores[idx[b]]
	})
	return idx
}

func topIndices(scores []float64, n int) []int {
	ranked := rankIndices(scores)
	if n > len(ranked) {
		n = len(ranked)
	}
	return append([]int(nil), ranked[:n]...)
}

// isNearDuplicate reports whether candidate is contained in, or contains,
// any already-accepted sentence. Comparison is case-insensitive and ignores
// the terminal mark, so a sentence and its extended copy still collide.
func isNearDuplicate(candidate string, accepted []int, sents []sentence) bool {
	c := dedupeKey(candidate)
	for _, i := range accepted {
		a := dedupeKey(sents[i].text)
		if strings.Contains(a, c) || strings.Contains(c, a) {
			return true
		}
	}
	return false
}

func dedupeKey(text string) string {
	return strings.TrimRightFunc(strings.ToLower(text), func(r rune) bool {
		return isTerminal(r) || unicode.IsSpace(r)
	})
}

// shorten trims a sentence toward maxWords: kept whole when already short,
// cut at the first comma inside a maxWords+5 window when one exists, and
// hard-truncated with an ellipsis otherwise.
func shorten(text string, maxWords int) string {
	words := strings.Fields(text)
	if len(words) <= maxWords {
		return text
	}
	window := maxWords + 5
	if window > len(words) {
		window = len(words)
	}
	for i := 0; i < window; i++ {
		if strings.HasSuffix(words[i], ",") || strings.HasSuffix(words[i], ";") {
			cut := strings.Join(words[:i+1], " ")
			cut = strings.TrimRight(cut, ",;")
			return cut + "."
		}
	}
	return strings.Join(words[:maxWords], " ") + "..."
}

func ensureTerminal(text string) string {
	if text == "" {
		return text
	}
	r := []rune(text)
	if isTerminal(r[len(r)-1]) {
		return text
	}
	return text + "."
}
