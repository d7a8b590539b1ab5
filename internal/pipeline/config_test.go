package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/civicvoice/circsum/internal/translate"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "circsum.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfig_BuildsWorkingPipeline(t *testing.T) {
	path := writeConfig(t, `
normalize:
  scripts: [devanagari, tamil]
  noisePhrases: ["Draft Copy"]
classify:
  threshold: 0.2
summarize:
  sentences: 2
  bullets: 3
stripNoise: true
language: ""
`)
	fc, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	p, err := fc.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if p.Opts.SentenceCount != 2 || p.Opts.BulletCount != 3 || !p.Opts.StripNoise {
		t.Fatalf("options not carried over: %+v", p.Opts)
	}

	res, err := p.Process(context.Background(), "The government circular announces new office timings. All staff must comply with the revised schedule immediately.")
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if !res.Classification.IsCircular {
		t.Fatalf("expected circular verdict: %+v", res.Classification)
	}
}

func TestBuild_WiresTranslatorFromLLMSection(t *testing.T) {
	fc, err := LoadConfig(writeConfig(t, `
language: ta
llm:
  base: http://localhost:11434/v1
  model: llama3.1
  key: unused
`))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	p, err := fc.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if p.Opts.TargetLanguage != "ta" {
		t.Fatalf("target language not carried over: %+v", p.Opts)
	}
	lt, ok := p.Translator.(*translate.LLMTranslator)
	if !ok {
		t.Fatalf("expected a configured LLM translator, got %T", p.Translator)
	}
	if lt.Model != "llama3.1" || lt.Client == nil {
		t.Fatalf("translator not built from file values: %+v", lt)
	}
}

func TestBuild_NoLLMSectionLeavesTranslatorNil(t *testing.T) {
	fc, err := LoadConfig(writeConfig(t, "language: ta\n"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	p, err := fc.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if p.Translator != nil {
		t.Fatalf("expected nil translator without an llm section, got %T", p.Translator)
	}
}

func TestBuild_RejectsUnknownScript(t *testing.T) {
	fc, err := LoadConfig(writeConfig(t, "normalize:\n  scripts: [klingon]\n"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if _, err := fc.Build(); err == nil {
		t.Fatal("expected error for unknown script")
	}
}

func TestBuild_RejectsMalformedHeaderPattern(t *testing.T) {
	fc, err := LoadConfig(writeConfig(t, "classify:\n  headerPatterns: [\"([\"]\n"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if _, err := fc.Build(); err == nil {
		t.Fatal("expected error for malformed header pattern")
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadConfig_MalformedYAML(t *testing.T) {
	if _, err := LoadConfig(writeConfig(t, ":\n  - [unbalanced")); err == nil {
		t.Fatal("expected parse error")
	}
}
