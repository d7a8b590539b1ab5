package classify

import (
	"strings"
	"testing"
)

const circularText = "Government of Tamil Nadu. Subject: Attendance. All Headmasters are instructed to ensure installation of devices before 30th August 2024."

func TestClassify_RecognizesCircular(t *testing.T) {
	res := Default().Classify(circularText)
	if !res.IsCircular {
		t.Fatalf("expected circular verdict: %+v", res)
	}
	if res.Confidence < 0.2 || res.Confidence > 1 {
		t.Fatalf("confidence out of expected range: %+v", res)
	}
	if !strings.Contains(res.Reason, "government") {
		t.Fatalf("reason should name the matched keyword: %+v", res)
	}
}

func TestClassify_EmptyAndShortInput(t *testing.T) {
	c := Default()
	for _, in := range []string{"", "   ", "hi there"} {
		res := c.Classify(in)
		if res.IsCircular || res.Confidence != 0 {
			t.Fatalf("Classify(%q) = %+v, want negative zero-confidence", in, res)
		}
		if res.Reason != "no readable text" {
			t.Fatalf("Classify(%q) reason = %q", in, res.Reason)
		}
	}
}

func TestClassify_GeneralDocument(t *testing.T) {
	res := Default().Classify("The quick brown fox jumps over the lazy dog near the river bank today.")
	if res.IsCircular || res.Confidence != 0 {
		t.Fatalf("expected negative verdict: %+v", res)
	}
	if res.Reason != "no official signals found" {
		t.Fatalf("unexpected reason: %q", res.Reason)
	}
}

func TestClassify_GovernmentOrderAbbreviation(t *testing.T) {
	// Tamil Nadu G.O references often drop the second dot.
	res := Default().Classify("Ref: G.O Ms.No 123 dated 12.05.2024 regarding school timings.")
	if !res.IsCircular {
		t.Fatalf("expected circular verdict for G.O reference: %+v", res)
	}
	if !strings.Contains(res.Reason, "g.o") {
		t.Fatalf("reason should name the abbreviation: %+v", res)
	}
}

func TestClassify_ConfidenceMonotonicity(t *testing.T) {
	c := Default()
	base := "This government communication covers routine matters for all concerned."
	more := base + " The ministry circular is a notification from the department."

	lo := c.Classify(base).Confidence
	hi := c.Classify(more).Confidence
	if hi < lo {
		t.Fatalf("confidence decreased with more keywords: %f -> %f", lo, hi)
	}
	if hi <= lo {
		t.Fatalf("four extra distinct keywords should raise confidence: %f -> %f", lo, hi)
	}
}

func TestClassify_FullConfidenceAtSignalBasis(t *testing.T) {
	res := Default().Classify("Government circular notification: the ministry department issues this official order today.")
	if res.Confidence != 1 {
		t.Fatalf("five or more distinct signals should saturate confidence: %+v", res)
	}
	if !res.IsCircular {
		t.Fatalf("expected circular verdict: %+v", res)
	}
}

func TestClassify_MultilingualKeywords(t *testing.T) {
	c := Default()
	cases := []string{
		"தமிழ்நாடு அரசு சுற்றறிக்கை அனைவருக்கும் அனுப்பப்படுகிறது",
		"यह परिपत्र सभी कार्यालयों के लिए सरकार द्वारा जारी किया गया है",
		"ಈ ಅಧಿಸೂಚನೆ ಎಲ್ಲಾ ಶಾಲೆಗಳಿಗೆ ಅನ್ವಯಿಸುತ್ತದೆ",
	}
	for _, in := range cases {
		if res := c.Classify(in); !res.IsCircular {
			t.Fatalf("expected circular verdict for %q: %+v", in, res)
		}
	}
}

func TestClassify_HeaderFallbackWhenNoKeywordMatches(t *testing.T) {
	c, err := New(Options{Keywords: []Keyword{{Script: "latin", Term: "circular"}}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	res := c.Classify("Government of Kerala invites attention to the following matter.")
	if !res.IsCircular {
		t.Fatalf("header pattern should carry the verdict: %+v", res)
	}
	if !strings.Contains(res.Reason, "header") {
		t.Fatalf("reason should name the header match: %+v", res)
	}
}

func TestClassify_ThresholdIsTunable(t *testing.T) {
	strictish, err := New(Options{Threshold: 0.8})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	// One keyword signal is 0.2 confidence with the default basis.
	res := strictish.Classify("A single government mention in otherwise ordinary text here.")
	if res.IsCircular {
		t.Fatalf("one signal should not pass a 0.8 threshold: %+v", res)
	}
	if res.Confidence == 0 {
		t.Fatalf("confidence should still reflect the matched signal: %+v", res)
	}
}

func TestMatches_StrictVariant(t *testing.T) {
	c := Default()
	if !c.Matches(circularText) {
		t.Fatal("strict variant should match on any keyword")
	}
	if c.Matches("nothing remotely administrative appears in this plain sentence at all") {
		t.Fatal("strict variant matched a general document")
	}
	if c.Matches("   ") {
		t.Fatal("strict variant must reject unreadable input")
	}
}

func TestNew_RejectsMalformedHeaderPattern(t *testing.T) {
	if _, err := New(Options{HeaderPatterns: []string{"(["}}); err == nil {
		t.Fatal("expected error for malformed pattern")
	}
}
