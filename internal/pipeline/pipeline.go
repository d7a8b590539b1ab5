// Package pipeline wires the processing stages together: raw text is
// normalized, classified, summarized twice, and optionally handed to the
// translation collaborator. The stages themselves are pure; this package
// owns the data flow and the logging around it.
package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/civicvoice/circsum/internal/classify"
	"github.com/civicvoice/circsum/internal/normalize"
	"github.com/civicvoice/circsum/internal/summarize"
	"github.com/civicvoice/circsum/internal/translate"
)

// Options controls per-run behavior.
type Options struct {
	// SentenceCount for the official summary (0 uses the summarizer default).
	SentenceCount int
	// BulletCount and MaxWordsPerBullet for the simplified summary.
	BulletCount       int
	MaxWordsPerBullet int
	// StripNoise removes configured boilerplate phrases after normalization.
	StripNoise bool
	// TargetLanguage, when set, asks the Translator for translated copies
	// of both summaries.
	TargetLanguage string
}

// Pipeline holds the constructed stages. Safe for concurrent Process calls;
// nothing here is mutated after construction.
type Pipeline struct {
	Normalizer *normalize.Normalizer
	Classifier *classify.Classifier
	Summarizer *summarize.Summarizer
	// Translator is optional; nil disables translation even when a target
	// language is set.
	Translator translate.Translator
	Opts       Options
}

// Result carries everything a caller or UI needs from one run.
type Result struct {
	Normalized     string
	Stats          normalize.Stats
	Classification classify.Result
	Official       string
	Simplified     string
	// Translations of the two summaries, set only when requested.
	OfficialTranslated   string
	SimplifiedTranslated string
}

// New assembles a Pipeline from ready stages.
func New(n *normalize.Normalizer, c *classify.Classifier, s *summarize.Summarizer, opts Options) *Pipeline {
	return &Pipeline{Normalizer: n, Classifier: c, Summarizer: s, Opts: opts}
}

// Default assembles a Pipeline with default stage configurations and no
// translator.
func Default() *Pipeline {
	return New(normalize.Default(), classify.Default(), summarize.Default(), Options{})
}

// Process runs raw text through every stage. Whitespace-only input returns
// the zero Result without touching collaborators. A non-circular verdict is
// a soft warning, never a stop: summaries are produced regardless.
func (p *Pipeline) Process(ctx context.Context, raw string) (Result, error) {
	var res Result

	text := p.Normalizer.Normalize(raw)
	if p.Opts.StripNoise {
		text = p.Normalizer.StripNoise(text)
	}
	if strings.TrimSpace(text) == "" {
		log.Warn().Msg("no readable text after normalization")
		return res, nil
	}
	res.Normalized = text
	res.Stats = normalize.Statistics(text)
	log.Info().
		Int("words", res.Stats.Words).
		Int("paragraphs", res.Stats.Paragraphs).
		Strs("scripts", res.Stats.Scripts).
		Msg("normalized input")

	res.Classification = p.Classifier.Classify(text)
	if res.Classification.IsCircular {
		log.Info().Float64("confidence", res.Classification.Confidence).Str("reason", res.Classification.Reason).Msg("classified as circular")
	} else {
		log.Warn().Str("reason", res.Classification.Reason).Msg("does not look like an official circular; continuing")
	}

	res.Official = p.Summarizer.Official(text, p.Opts.SentenceCount)
	res.Simplified = p.Summarizer.Simplified(text, p.Opts.BulletCount, p.Opts.MaxWordsPerBullet)

	if p.Opts.TargetLanguage != "" && p.Translator != nil {
		var err error
		res.OfficialTranslated, err = p.Translator.Translate(ctx, res.Official, p.Opts.TargetLanguage)
		if err != nil {
			return res, fmt.Errorf("translate official summary: %w", err)
		}
		res.SimplifiedTranslated, err = p.Translator.Translate(ctx, res.Simplified, p.Opts.TargetLanguage)
		if err != nil {
			return res, fmt.Errorf("translate simplified summary: %w", err)
		}
		log.Info().Str("lang", p.Opts.TargetLanguage).Msg("translated summaries")
	}
	return res, nil
}
