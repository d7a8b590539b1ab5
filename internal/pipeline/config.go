package pipeline

import (
	"fmt"
	"os"

	openai "github.com/sashabaranov/go-openai"
	yaml "gopkg.in/yaml.v3"

	"github.com/civicvoice/circsum/internal/classify"
	"github.com/civicvoice/circsum/internal/normalize"
	"github.com/civicvoice/circsum/internal/summarize"
	"github.com/civicvoice/circsum/internal/translate"
)

// FileConfig is the single-file YAML configuration schema. Every section is
// optional; omitted values fall back to stage defaults. Flags set on the
// command line take precedence over this file.
type FileConfig struct {
	Normalize struct {
		KeepPageNumbers bool              `yaml:"keepPageNumbers"`
		Scripts         []string          `yaml:"scripts"`
		ExtraBlocks     []normalize.Block `yaml:"extraBlocks"`
		NoisePhrases    []string          `yaml:"noisePhrases"`
	} `yaml:"normalize"`

	Classify struct {
		Threshold      float64            `yaml:"threshold"`
		SignalBasis    int                `yaml:"signalBasis"`
		Keywords       []classify.Keyword `yaml:"keywords"`
		HeaderPatterns []string           `yaml:"headerPatterns"`
	} `yaml:"classify"`

	Summarize struct {
		Sentences         int      `yaml:"sentences"`
		Bullets           int      `yaml:"bullets"`
		MaxWordsPerBullet int      `yaml:"maxWordsPerBullet"`
		Stopwords         []string `yaml:"stopwords"`
		DirectiveTerms    []string `yaml:"directiveTerms"`
	} `yaml:"summarize"`

	StripNoise bool   `yaml:"stripNoise"`
	Language   string `yaml:"language"`

	LLM struct {
		BaseURL string `yaml:"base"`
		Model   string `yaml:"model"`
		APIKey  string `yaml:"key"`
	} `yaml:"llm"`
}

// LoadConfig reads and parses a YAML config file.
func LoadConfig(path string) (FileConfig, error) {
	var fc FileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return fc, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fc, fmt.Errorf("parse config %s: %w", path, err)
	}
	return fc, nil
}

// Build constructs a Pipeline from the file configuration. Stage
// constructors validate their sections, so a bad script name, blank noise
// phrase or malformed header pattern fails here, before any processing.
func (fc FileConfig) Build() (*Pipeline, error) {
	n, err := normalize.New(normalize.Options{
		KeepPageNumbers: fc.Normalize.KeepPageNumbers,
		Scripts:         fc.Normalize.Scripts,
		ExtraBlocks:     fc.Normalize.ExtraBlocks,
		NoisePhrases:    fc.Normalize.NoisePhrases,
	})
	if err != nil {
		return nil, err
	}
	c, err := classify.New(classify.Options{
		Threshold:      fc.Classify.Threshold,
		SignalBasis:    fc.Classify.SignalBasis,
		Keywords:       fc.Classify.Keywords,
		HeaderPatterns: fc.Classify.HeaderPatterns,
	})
	if err != nil {
		return nil, err
	}
	s := summarize.New(summarize.Config{
		Stopwords:      fc.Summarize.Stopwords,
		DirectiveTerms: fc.Summarize.DirectiveTerms,
	})
	p := New(n, c, s, Options{
		SentenceCount:     fc.Summarize.Sentences,
		BulletCount:       fc.Summarize.Bullets,
		MaxWordsPerBullet: fc.Summarize.MaxWordsPerBullet,
		StripNoise:        fc.StripNoise,
		TargetLanguage:    fc.Language,
	})
	if fc.LLM.BaseURL != "" && fc.LLM.Model != "" {
		cfg := openai.DefaultConfig(fc.LLM.APIKey)
		cfg.BaseURL = fc.LLM.BaseURL
		p.Translator = &translate.LLMTranslator{
			Client: &translate.OpenAIProvider{Inner: openai.NewClientWithConfig(cfg)},
			Model:  fc.LLM.Model,
		}
	}
	return p, nil
}
