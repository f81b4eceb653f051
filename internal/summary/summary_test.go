package summary

import (
	"strings"
	"testing"
)

func TestGenerateShortTextShortcut(t *testing.T) {
	got := Generate("We need a Go developer to build APIs.")
	if got != "We need a Go developer to build APIs." {
		t.Fatalf("Generate = %q", got)
	}
}

func TestGenerateCapitalizesAndPunctuates(t *testing.T) {
	got := Generate("join a small team shipping weekly")
	if got != "Join a small team shipping weekly." {
		t.Fatalf("Generate = %q", got)
	}
}

func TestGeneratePrefersSummarySection(t *testing.T) {
	filler := strings.Repeat("Miscellaneous detail sentence for padding purposes. ", 10)
	text := "About the role:\nLead our backend team and ship features every sprint.\n\n" + filler

	got := Generate(text)
	if !strings.Contains(got, "Lead our backend team") {
		t.Fatalf("Generate = %q, want the section text", got)
	}
}

func TestGenerateRespectsMaxLength(t *testing.T) {
	text := strings.Repeat("An impressively long sentence about the position that keeps going and going without pause ", 20)
	got := Generate(text)
	if len(got) > MaxLength+3 {
		t.Fatalf("len(Generate) = %d, want <= %d", len(got), MaxLength+3)
	}
	if got == "" {
		t.Fatal("Generate returned empty summary")
	}
}

func TestGenerateEndsWithTerminalPunctuation(t *testing.T) {
	texts := []string{
		"A tiny posting",
		"First sentence here. Second sentence follows! Third one too?",
	}
	for _, text := range texts {
		got := Generate(text)
		if got == "" {
			t.Fatalf("Generate(%q) returned empty", text)
		}
		last := got[len(got)-1]
		if last != '.' && last != '!' && last != '?' {
			t.Errorf("Generate(%q) = %q, missing terminal punctuation", text, got)
		}
	}
}

func TestGenerateEmptyText(t *testing.T) {
	if got := Generate("   \n  "); got != "" {
		t.Fatalf("Generate = %q, want empty", got)
	}
}

func TestSplitSentences(t *testing.T) {
	got := splitSentences("First one. Second two! Version 2.5 stays whole. Last?")
	want := []string{"First one.", "Second two!", "Version 2.5 stays whole.", "Last?"}
	if len(got) != len(want) {
		t.Fatalf("splitSentences = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sentence %d = %q, want %q", i, got[i], want[i])
		}
	}
}
