package fields

import (
	"strings"
	"testing"
)

func TestDescriptionBetweenHeadings(t *testing.T) {
	text := "Senior Engineer\n\nJob Description:\nBuild great software with a small team.\n\nRequirements:\n- Go\n- SQL\n"
	got := Description(text)
	if !strings.Contains(got, "Build great software") {
		t.Fatalf("Description = %q, want the description body", got)
	}
	if strings.Contains(got, "Requirements") || strings.Contains(got, "SQL") {
		t.Fatalf("Description = %q, leaked past the end marker", got)
	}
}

func TestDescriptionStopsAtEarliestEndMarker(t *testing.T) {
	text := "About the role:\nShip features.\n\nBenefits:\nGym.\n\nRequirements:\n- Go\n"
	got := Description(text)
	if strings.Contains(got, "Gym") || strings.Contains(got, "Go") {
		t.Fatalf("Description = %q, want it cut at the first following section", got)
	}
}

func TestDescriptionFallsBackToFullText(t *testing.T) {
	text := "A short posting with no headings at all.\n\n\n\nJust two paragraphs."
	got := Description(text)
	want := "A short posting with no headings at all.\n\nJust two paragraphs."
	if got != want {
		t.Fatalf("Description = %q, want %q", got, want)
	}
}
