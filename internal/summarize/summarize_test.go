package summarize

import (
	"fmt"
	"strings"
	"testing"
)

func TestOfficial_DirectiveBoostSelectsOperativeSentence(t *testing.T) {
	text := "Government of Tamil Nadu. Subject: Attendance. All Headmasters are instructed to ensure installation of devices before 30th August 2024."
	got := Default().Official(text, 2)
	if !strings.Contains(got, "instructed") {
		t.Fatalf("directive sentence missing from summary: %q", got)
	}
}

func TestOfficial_PreservesSourceOrder(t *testing.T) {
	// The directive sentence scores highest but appears last; selection
	// order must not leak into the output.
	text := "The attendance policy covers all schools. Miscellaneous remarks follow below accordingly. Schools must ensure attendance devices."
	got := Default().Official(text, 2)
	first := strings.Index(got, "attendance policy")
	second := strings.Index(got, "must ensure")
	if first < 0 || second < 0 {
		t.Fatalf("expected both topical sentences selected: %q", got)
	}
	if first > second {
		t.Fatalf("summary not in source order: %q", got)
	}
}

func TestOfficial_AtMostKSentences(t *testing.T) {
	text := "Alpha topic one here. Beta topic two here. Gamma topic three here. Delta topic four here. Epsilon topic five here. Zeta topic six here."
	got := Default().Official(text, 3)
	if n := strings.Count(got, "."); n != 3 {
		t.Fatalf("expected exactly 3 sentences, got %d in %q", n, got)
	}
}

func TestOfficial_AppendsTerminalPunctuation(t *testing.T) {
	got := Default().Official("First point stands entirely alone. second fragment without any stop", 2)
	if !strings.HasSuffix(got, ".") {
		t.Fatalf("summary should end with terminal punctuation: %q", got)
	}
}

func TestOfficial_EmptyInput(t *testing.T) {
	s := Default()
	for _, in := range []string{"", "   ", "\n\t"} {
		if got := s.Official(in, 3); got != "" {
			t.Fatalf("Official(%q) = %q, want empty", in, got)
		}
	}
}

func TestOfficial_FewerSentencesThanRequested(t *testing.T) {
	got := Default().Official("Only one sentence exists here.", 5)
	if got != "Only one sentence exists here." {
		t.Fatalf("got %q", got)
	}
}

func TestSimplified_SuppressesNearDuplicates(t *testing.T) {
	sentences := []string{
		"The school calendar was circulated earlier this month.",
		"Parents received the updated timetable for classes.",
		"Teachers must submit the monthly report to the office.",
		"Morning assembly timing remains unchanged for now.",
		"Library hours follow the existing schedule currently.",
		"Sports day arrangements continue as planned before.",
		"Teachers must submit the monthly report to the office without delay.",
		"The canteen menu rotates on a weekly basis.",
		"Bus routes were revised for the northern wards.",
		"A parent meeting is scheduled for next friday.",
	}
	text := strings.Join(sentences, " ")
	got := Default().Simplified(text, 5, 18)

	count := 0
	for _, line := range strings.Split(got, "\n") {
		if strings.Contains(line, "monthly report") {
			count++
		}
	}
	if count > 1 {
		t.Fatalf("near-duplicate pair selected twice:\n%s", got)
	}
}

func TestSimplified_BackfillsWhenEverythingCollides(t *testing.T) {
	text := strings.Repeat("Schools must remain open on working days. ", 4)
	got := Default().Simplified(text, 3, 18)
	lines := strings.Split(got, "\n")
	if len(lines) != 3 {
		t.Fatalf("backfill should meet the quota of 3, got %d:\n%s", len(lines), got)
	}
}

func TestSimplified_CommaWindowShortening(t *testing.T) {
	words := make([]string, 40)
	for i := range words {
		words[i] = fmt.Sprintf("word%02d", i+1)
	}
	words[21] += "," // comma at word 22, inside the 18+5 window
	text := strings.Join(words, " ") + "."

	got := Default().Simplified(text, 1, 18)
	if !strings.HasSuffix(got, "word22.") {
		t.Fatalf("expected cut at the comma ending in '.': %q", got)
	}
	if strings.Contains(got, "...") {
		t.Fatalf("comma cut must not produce an ellipsis: %q", got)
	}
	if n := len(strings.Fields(strings.TrimPrefix(got, "- "))); n != 22 {
		t.Fatalf("expected 22 words after the comma cut, got %d: %q", n, got)
	}
}

func TestSimplified_HardTruncationBound(t *testing.T) {
	words := make([]string, 30)
	for i := range words {
		words[i] = fmt.Sprintf("term%02d", i+1)
	}
	text := strings.Join(words, " ") + "."

	got := Default().Simplified(text, 1, 10)
	if !strings.HasSuffix(got, "...") {
		t.Fatalf("expected hard truncation with ellipsis: %q", got)
	}
	n := len(strings.Fields(strings.TrimPrefix(got, "- ")))
	if n > 11 {
		t.Fatalf("bullet exceeds the word bound: %d words in %q", n, got)
	}
}

func TestSimplified_ShortSentenceKeptWhole(t *testing.T) {
	got := Default().Simplified("Fees are waived this term.", 1, 18)
	if got != "- Fees are waived this term." {
		t.Fatalf("got %q", got)
	}
}

func TestSimplified_BulletFormatAndOrder(t *testing.T) {
	text := "The attendance policy covers all schools. Miscellaneous remarks follow below accordingly. Schools must ensure attendance devices."
	got := Default().Simplified(text, 2, 18)
	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 bullets, got %d:\n%s", len(lines), got)
	}
	for _, line := range lines {
		if !strings.HasPrefix(line, "- ") {
			t.Fatalf("bullet missing marker: %q", line)
		}
		if !strings.HasSuffix(line, ".") {
			t.Fatalf("bullet missing terminal punctuation: %q", line)
		}
	}
	if !strings.Contains(lines[0], "attendance policy") || !strings.Contains(lines[1], "must ensure") {
		t.Fatalf("bullets not in source order:\n%s", got)
	}
}

func TestSimplified_EmptyInput(t *testing.T) {
	if got := Default().Simplified("   ", 5, 18); got != "" {
		t.Fatalf("got %q, want empty", got)
	}
}

func TestSplitSentences_DevanagariFullStop(t *testing.T) {
	got := splitSentences("सभी विभाग पालन करें। यह आदेश तुरंत लागू होगा। अंतिम वाक्य")
	if len(got) != 3 {
		t.Fatalf("expected 3 sentences, got %d: %v", len(got), got)
	}
	if !strings.HasSuffix(got[0], "।") {
		t.Fatalf("terminal mark should stay with its sentence: %q", got[0])
	}
}

func TestSplitSentences_KeepsOrderAndDropsEmpties(t *testing.T) {
	got := splitSentences("One here. Two there! Three maybe? ")
	want := []string{"One here.", "Two there!", "Three maybe?"}
	if len(got) != len(want) {
		t.Fatalf("got %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("sentence %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestConfig_CustomDirectiveTerms(t *testing.T) {
	s := New(Config{DirectiveTerms: []string{"kindly"}})
	text := "The weather report mentions light rain. Kindly submit forms tomorrow. Other routine matters continue as usual always."
	got := s.Official(text, 1)
	if !strings.Contains(got, "Kindly") {
		t.Fatalf("custom directive term should boost its sentence: %q", got)
	}
}
