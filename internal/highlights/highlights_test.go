package highlights

import (
	"strings"
	"testing"
)

func TestExtractBenefitsSection(t *testing.T) {
	text := "Role details here.\n\nBenefits:\nHealth insurance and a gym stipend for everyone.\n\nHow to apply: email us."
	got := Extract(text)
	if len(got) == 0 {
		t.Fatal("Extract returned no highlights")
	}
	if !strings.HasPrefix(got[0], "Benefits: ") {
		t.Fatalf("got[0] = %q, want section-derived entry first", got[0])
	}
	if !strings.Contains(got[0], "Health insurance") {
		t.Fatalf("got[0] = %q", got[0])
	}
}

func TestExtractBenefitSummaryGroups(t *testing.T) {
	text := "We offer health insurance, dental, 401k matching and flexible hours to all staff members over time."
	got := Extract(text)

	var summaryLine string
	for _, h := range got {
		if strings.HasPrefix(h, "Benefits include: ") {
			summaryLine = h
			break
		}
	}
	if summaryLine == "" {
		t.Fatalf("Extract = %v, want an aggregated benefits line", got)
	}
	for _, want := range []string{"Health insurance", "Dental & vision", "Retirement plan", "Flexible schedule"} {
		if !strings.Contains(summaryLine, want) {
			t.Errorf("benefit summary %q missing %q", summaryLine, want)
		}
	}
}

func TestExtractCapsAtFive(t *testing.T) {
	text := "Benefits:\nFull coverage.\n\nOur culture:\nOpen and friendly.\n\nGrowth:\nPromotions yearly.\n\n" +
		"- great salary and equity on offer\n" +
		"- flexible hours and autonomy for all\n" +
		"- mentor program with training budget\n" +
		"We value work-life balance deeply. Stock options vest over four years."
	got := Extract(text)
	if len(got) > MaxHighlights {
		t.Fatalf("Extract returned %d highlights, want <= %d", len(got), MaxHighlights)
	}
	if len(got) == 0 {
		t.Fatal("Extract returned no highlights")
	}
}

func TestExtractDropsStrictSubstrings(t *testing.T) {
	text := "Benefits:\nUnlimited vacation policy.\n\n- unlimited vacation\n- unlimited vacation plus a wellness budget for everyone"
	got := Extract(text)
	for i, a := range got {
		for j, b := range got {
			if i == j {
				continue
			}
			la, lb := strings.ToLower(a), strings.ToLower(b)
			if la != lb && strings.Contains(lb, la) {
				t.Fatalf("highlight %q is a strict substring of %q", a, b)
			}
		}
	}
}

func TestExtractEmptyText(t *testing.T) {
	got := Extract(" \n ")
	if got == nil || len(got) != 0 {
		t.Fatalf("Extract = %v, want empty non-nil slice", got)
	}
}
