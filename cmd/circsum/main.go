package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	openai "github.com/sashabaranov/go-openai"

	"github.com/civicvoice/circsum/internal/classify"
	"github.com/civicvoice/circsum/internal/extract"
	"github.com/civicvoice/circsum/internal/normalize"
	"github.com/civicvoice/circsum/internal/pipeline"
	"github.com/civicvoice/circsum/internal/report"
	"github.com/civicvoice/circsum/internal/summarize"
	"github.com/civicvoice/circsum/internal/translate"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var (
		inputPath   string
		asHTML      bool
		configPath  string
		pdfPath     string
		pdfFont     string
		language    string
		llmBaseURL  string
		llmModel    string
		llmKey      string
		sentences   int
		bullets     int
		bulletWords int
		keepPageNum bool
		stripNoise  bool
		verbose     bool
	)

	flag.StringVar(&inputPath, "input", "", "Path to the extracted circular text (or HTML); empty reads stdin")
	flag.BoolVar(&asHTML, "html", false, "Treat input as an HTML page regardless of extension")
	flag.StringVar(&configPath, "config", "", "Optional YAML config file; flags take precedence")
	flag.StringVar(&pdfPath, "out.pdf", "", "Write the summaries to this PDF file")
	flag.StringVar(&pdfFont, "pdf.font", os.Getenv("PDF_FONT"), "UTF-8 TTF font file for PDF output of non-Latin text")
	flag.StringVar(&language, "lang", "", "Target language for translated summaries, e.g. 'ta' or 'hi'")
	flag.StringVar(&llmBaseURL, "llm.base", os.Getenv("LLM_BASE_URL"), "OpenAI-compatible base URL for the translator")
	flag.StringVar(&llmModel, "llm.model", os.Getenv("LLM_MODEL"), "Model name for the translator")
	flag.StringVar(&llmKey, "llm.key", os.Getenv("LLM_API_KEY"), "API key for the translator endpoint")
	flag.IntVar(&sentences, "sentences", 0, "Sentences in the official summary (0 uses the default)")
	flag.IntVar(&bullets, "bullets", 0, "Bullets in the simplified summary (0 uses the default)")
	flag.IntVar(&bulletWords, "bullet.words", 0, "Max words per simplified bullet (0 uses the default)")
	flag.BoolVar(&keepPageNum, "keep.pageNumbers", false, "Skip the extra page-number removal pass during normalization")
	flag.BoolVar(&stripNoise, "strip.noise", false, "Also remove boilerplate stamps like 'Draft Copy'")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	p, err := buildPipeline(configPath, keepPageNum)
	if err != nil {
		log.Fatal().Err(err).Msg("configuration rejected")
	}
	applyFlagOverrides(p, sentences, bullets, bulletWords, stripNoise, language)

	// Flags override the config file's llm section; the file-built
	// translator stays wired when no flags are set.
	if llmBaseURL != "" && llmModel != "" {
		cfg := openai.DefaultConfig(llmKey)
		cfg.BaseURL = llmBaseURL
		p.Translator = &translate.LLMTranslator{
			Client: &translate.OpenAIProvider{Inner: openai.NewClientWithConfig(cfg)},
			Model:  llmModel,
		}
	}
	if p.Opts.TargetLanguage != "" && p.Translator == nil {
		log.Warn().Msg("no llm.base/llm.model configured; translation skipped")
		p.Opts.TargetLanguage = ""
	}

	raw, title, err := readInput(inputPath, asHTML)
	if err != nil {
		log.Fatal().Err(err).Msg("read input")
	}

	res, err := p.Process(context.Background(), raw)
	if err != nil {
		log.Fatal().Err(err).Msg("pipeline failed")
	}
	if res.Normalized == "" {
		log.Fatal().Msg("input contains no readable text")
	}

	fmt.Println("Official Summary")
	fmt.Println(res.Official)
	fmt.Println()
	fmt.Println("Simplified Summary")
	fmt.Println(res.Simplified)
	if res.OfficialTranslated != "" || res.SimplifiedTranslated != "" {
		fmt.Println()
		fmt.Printf("Translation (%s)\n", p.Opts.TargetLanguage)
		if res.OfficialTranslated != "" {
			fmt.Println(res.OfficialTranslated)
		}
		if res.SimplifiedTranslated != "" {
			fmt.Println(res.SimplifiedTranslated)
		}
	}

	if pdfPath != "" {
		doc := report.Document{
			Title:                title,
			Official:             res.Official,
			Simplified:           res.Simplified,
			Language:             p.Opts.TargetLanguage,
			OfficialTranslated:   res.OfficialTranslated,
			SimplifiedTranslated: res.SimplifiedTranslated,
		}
		if err := report.WritePDF(doc, pdfPath, pdfFont); err != nil {
			log.Fatal().Err(err).Str("out", pdfPath).Msg("write pdf")
		}
		log.Info().Str("out", pdfPath).Msg("wrote pdf")
	}
}

func buildPipeline(configPath string, keepPageNum bool) (*pipeline.Pipeline, error) {
	if configPath == "" {
		n, err := normalize.New(normalize.Options{KeepPageNumbers: keepPageNum})
		if err != nil {
			return nil, err
		}
		return pipeline.New(n, classify.Default(), summarize.Default(), pipeline.Options{}), nil
	}
	fc, err := pipeline.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	if keepPageNum {
		fc.Normalize.KeepPageNumbers = true
	}
	return fc.Build()
}

func applyFlagOverrides(p *pipeline.Pipeline, sentences, bullets, bulletWords int, stripNoise bool, language string) {
	if sentences > 0 {
		p.Opts.SentenceCount = sentences
	}
	if bullets > 0 {
		p.Opts.BulletCount = bullets
	}
	if bulletWords > 0 {
		p.Opts.MaxWordsPerBullet = bulletWords
	}
	if stripNoise {
		p.Opts.StripNoise = true
	}
	if language != "" {
		p.Opts.TargetLanguage = language
	}
}

// readInput loads the raw text, running the HTML adapter when asked or when
// the file extension suggests a portal page. The returned title is set only
// for HTML input.
func readInput(path string, asHTML bool) (text, title string, err error) {
	var data []byte
	if path == "" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", "", err
	}

	ext := strings.ToLower(filepath.Ext(path))
	if asHTML || ext == ".html" || ext == ".htm" {
		page := extract.FromHTML(data)
		return page.Text, page.Title, nil
	}
	return string(data), "", nil
}
