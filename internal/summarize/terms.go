package summarize

// defaultStopwords is a small fixed list of articles, conjunctions and
// common auxiliary verbs excluded from term-frequency scoring.
var defaultStopwords = []string{
	"a", "an", "the",
	"and", "or", "but", "nor", "so", "yet",
	"if", "then", "than", "as", "because", "while",
	"that", "this", "these", "those",
	"is", "are", "was", "were", "be", "been", "being", "am",
	"do", "does", "did",
	"have", "has", "had",
	"will", "would", "can", "could", "may", "might",
	"of", "in", "on", "at", "to", "for", "with", "by", "from",
	"it", "its", "not", "no",
}

// defaultDirectiveTerms mark obligations and operative clauses. Matched as
// case-insensitive substrings, so "instruct" also covers "instructed" and
// "issue" covers "issued".
var defaultDirectiveTerms = []string{
	"must", "shall", "should",
	"require", "instruct", "ensure", "implement",
	"comply", "compliance", "notify", "mandatory",
	"direct", "order", "issue", "deadline", "effective",
}
