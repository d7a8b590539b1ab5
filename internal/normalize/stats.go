package normalize

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Stats reports read-only counts over a text, typically after Normalize.
type Stats struct {
	Characters         int
	CharactersNoSpaces int
	Words              int
	Lines              int
	Paragraphs         int
	// Scripts lists the registered script blocks with at least one rune
	// present, in registry order.
	Scripts        []string
	HasIndicScript bool
	HasLatin       bool
}

// Statistics computes Stats for text. It never modifies its input.
func Statistics(text string) Stats {
	s := Stats{
		Characters: utf8.RuneCountInString(text),
		Words:      len(strings.Fields(text)),
		Lines:      strings.Count(text, "\n") + 1,
	}
	if text == "" {
		s.Lines = 0
	}

	for _, p := range strings.Split(text, "\n\n") {
		if strings.TrimSpace(p) != "" {
			s.Paragraphs++
		}
	}

	seen := make(map[string]bool, len(scriptBlocks))
	for _, r := range text {
		if !unicode.IsSpace(r) {
			s.CharactersNoSpaces++
		}
		if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' {
			s.HasLatin = true
			continue
		}
		for _, blk := range scriptBlocks {
			if r >= blk.Lo && r <= blk.Hi {
				seen[blk.Name] = true
				s.HasIndicScript = true
				break
			}
		}
	}
	for _, blk := range scriptBlocks {
		if seen[blk.Name] {
			s.Scripts = append(s.Scripts, blk.Name)
		}
	}
	return s
}
