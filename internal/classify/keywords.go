package classify

// defaultKeywords is the built-in signal table. Terms are matched as
// case-insensitive substrings of the input.
var defaultKeywords = []Keyword{
	// English
	{Script: "latin", Term: "government"},
	{Script: "latin", Term: "govt"},
	{Script: "latin", Term: "department"},
	{Script: "latin", Term: "ministry"},
	{Script: "latin", Term: "secretary"},
	{Script: "latin", Term: "circular"},
	{Script: "latin", Term: "notification"},
	{Script: "latin", Term: "order"},
	{Script: "latin", Term: "proceedings"},
	{Script: "latin", Term: "office memorandum"},
	{Script: "latin", Term: "office order"},
	{Script: "latin", Term: "official"},
	{Script: "latin", Term: "g.o."},
	{Script: "latin", Term: "g.o"}, // "G.O Ms.No" style, without the second dot

	// Tamil
	{Script: "tamil", Term: "அரசு"},
	{Script: "tamil", Term: "சுற்றறிக்கை"},
	{Script: "tamil", Term: "அறிவிப்பு"},
	{Script: "tamil", Term: "துறை"},
	{Script: "tamil", Term: "உத்தரவு"},
	{Script: "tamil", Term: "அரசாணை"},
	{Script: "tamil", Term: "கல்வித்துறை"},
	{Script: "tamil", Term: "நிதித்துறை"},

	// Hindi
	{Script: "devanagari", Term: "सरकार"},
	{Script: "devanagari", Term: "विभाग"},
	{Script: "devanagari", Term: "मंत्रालय"},
	{Script: "devanagari", Term: "अधिसूचना"},
	{Script: "devanagari", Term: "आदेश"},
	{Script: "devanagari", Term: "परिपत्र"},
	{Script: "devanagari", Term: "राज्य सरकार"},
	{Script: "devanagari", Term: "केंद्र सरकार"},

	// Telugu
	{Script: "telugu", Term: "ప్రభుత్వం"},
	{Script: "telugu", Term: "విభాగం"},
	{Script: "telugu", Term: "సర్క్యులర్"},
	{Script: "telugu", Term: "ప్రకటన"},

	// Kannada
	{Script: "kannada", Term: "ಸರ್ಕಾರ"},
	{Script: "kannada", Term: "ವಿಭಾಗ"},
	{Script: "kannada", Term: "ಅಧಿಸೂಚನೆ"},
	{Script: "kannada", Term: "ಆದೇಶ"},

	// Malayalam
	{Script: "malayalam", Term: "സർക്കാർ"},
	{Script: "malayalam", Term: "വകുപ്പ്"},
	{Script: "malayalam", Term: "അറിയിപ്പ്"},
	{Script: "malayalam", Term: "സർക്കുലർ"},
}

// defaultHeaderPatterns match the letterhead formats circulars open with.
// Evaluated against lowercased text.
var defaultHeaderPatterns = []string{
	`government of [a-z ]+`,
	`govt\.? of [a-z ]+`,
	`department of [a-z ]+`,
	`ministry of [a-z ]+`,
	`அரசு அறிவிப்பு`,
	`தமிழ்நாடு அரசு`,
	`भारत सरकार`,
	`राज्य सरकार`,
}
