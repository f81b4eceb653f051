// Package highlights surfaces the parts of a posting a candidate cares
// about beyond the role itself: benefits, culture and growth sections,
// notable bullet points, and keyword-bearing sentences.
package highlights

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jobsift/jobsift/internal/section"
)

// MaxHighlights caps the final list.
const MaxHighlights = 5

const (
	sectionFallbackSpan = 250
	maxSectionChars     = 150
	maxBulletChars      = 100
	maxBullets          = 3
	maxSentences        = 2
	maxBenefitGroups    = 5
)

// Each highlight category owns a fixed heading set; the label prefixes the
// extracted section text in the output.
var sectionCategories = []struct {
	label    string
	headings []string
}{
	{"Benefits", []string{"benefits", "perks", "what we offer", "what you'll get", "we offer", "you'll receive", "compensation", "package"}},
	{"Company Culture", []string{"our culture", "company culture", "team culture", "who we are", "why join us", "why work with us", "why work for us", "working at"}},
	{"Growth Opportunities", []string{"growth", "career", "advancement", "development", "learning", "what you'll learn", "how you'll grow"}},
}

var importantKeywords = []string{
	"salary", "compensation", "equity", "bonus", "commission", "stock options",
	"promotion", "growth", "career path", "advancement", "mentor", "training",
	"market leader", "startup", "fast-growing", "fast-paced", "work-life balance",
	"flexible", "autonomy", "ownership", "impact", "mission", "values",
	"diversity", "inclusive", "inclusion", "equal opportunity",
	"collaboration", "innovation", "cutting-edge", "latest technologies",
	"tech stack", "funded", "profitable", "benefits", "perks", "culture",
	"4-day work week", "unlimited vacation", "remote-first", "distributed team",
}

var benefitKeywords = []string{
	"health insurance", "dental", "vision", "medical", "401k", "retirement",
	"pto", "paid time off", "vacation", "holidays", "sick leave", "parental leave",
	"maternity", "paternity", "bonus", "stock options", "equity", "flexible hours",
	"flexible schedule", "work-life balance", "remote work", "work from home", "wfh",
	"hybrid", "gym", "fitness", "wellness", "mental health", "tuition",
	"professional development", "training", "meals", "snacks",
	"commuter", "relocation", "child care", "sabbatical",
}

// benefitGroups collapse synonymous benefit mentions into one canonical
// name each, in a fixed order.
var benefitGroups = []struct {
	name  string
	terms []string
}{
	{"Health insurance", []string{"health insurance", "medical", "healthcare"}},
	{"Dental & vision", []string{"dental", "vision"}},
	{"Retirement plan", []string{"401k", "retirement"}},
	{"Paid time off", []string{"pto", "paid time off", "vacation", "holidays", "sick leave"}},
	{"Parental leave", []string{"parental leave", "maternity", "paternity"}},
	{"Performance bonuses/equity", []string{"bonus", "stock options", "equity"}},
	{"Flexible schedule", []string{"flexible hours", "flexible schedule", "work-life balance"}},
	{"Remote/hybrid work", []string{"remote work", "work from home", "wfh", "hybrid"}},
	{"Wellness programs", []string{"gym", "fitness", "wellness", "mental health"}},
	{"Education & development", []string{"tuition", "professional development", "training"}},
}

var (
	bulletLine = regexp.MustCompile(`(?m)^[ \t]*[•\-*·]\s*(.+)$`)
	titleCaser = cases.Title(language.English)
	spaceRuns  = regexp.MustCompile(`\s+`)
)

// Extract returns up to MaxHighlights highlights, section-derived entries
// first, deduplicated with strict substrings dropped.
func Extract(text string) []string {
	if strings.TrimSpace(text) == "" {
		return []string{}
	}

	var sectionDerived, other []string
	for _, cat := range sectionCategories {
		if body := section.Locate(text, cat.headings, sectionFallbackSpan); body != "" {
			sectionDerived = append(sectionDerived, cat.label+": "+clip(section.Collapse(body), maxSectionChars))
		}
	}

	other = append(other, fromBullets(text)...)
	if b := benefitSummary(text); b != "" {
		other = append(other, b)
	}
	other = append(other, keywordSentences(text)...)

	return dedupe(sectionDerived, other)
}

// fromBullets keeps up to maxBullets bullet lines that mention an important
// keyword.
func fromBullets(text string) []string {
	var out []string
	for _, m := range bulletLine.FindAllStringSubmatch(text, -1) {
		item := strings.TrimSpace(m[1])
		if len(item) < 5 || item == strings.ToUpper(item) || strings.HasSuffix(item, ":") {
			continue
		}
		if containsAnyKeyword(item, importantKeywords) {
			out = append(out, clip(item, maxBulletChars))
			if len(out) == maxBullets {
				break
			}
		}
	}
	return out
}

// benefitSummary builds one aggregated "Benefits include" line from benefit
// keyword mentions, collapsed into canonical group names.
func benefitSummary(text string) string {
	lower := strings.ToLower(text)
	var found []string
	for _, b := range benefitKeywords {
		if strings.Contains(lower, b) {
			found = append(found, b)
		}
	}
	if len(found) == 0 {
		return ""
	}
	grouped := groupBenefits(found)
	listed := grouped
	if len(listed) > maxBenefitGroups {
		listed = listed[:maxBenefitGroups]
	}
	line := "Benefits include: " + strings.Join(listed, ", ")
	if len(grouped) > maxBenefitGroups {
		line += ", and more"
	}
	return line
}

func groupBenefits(found []string) []string {
	var out []string
	used := map[int]bool{}
	inGroup := func(term string) int {
		for i, g := range benefitGroups {
			for _, t := range g.terms {
				if strings.Contains(term, t) {
					return i
				}
			}
		}
		return -1
	}
	for _, term := range found {
		if i := inGroup(term); i >= 0 {
			if !used[i] {
				used[i] = true
				out = append(out, benefitGroups[i].name)
			}
			continue
		}
		out = append(out, titleCaser.String(term))
	}
	return out
}

// keywordSentences adds up to maxSentences non-bullet sentences carrying an
// important keyword.
func keywordSentences(text string) []string {
	flat := spaceRuns.ReplaceAllString(text, " ")
	var out []string
	start := 0
	for i := 0; i < len(flat) && len(out) < maxSentences; i++ {
		if flat[i] != '.' && flat[i] != '!' && flat[i] != '?' {
			continue
		}
		if i+1 < len(flat) && flat[i+1] != ' ' {
			continue
		}
		sentence := strings.TrimSpace(flat[start : i+1])
		start = i + 1
		if len(sentence) < 10 || len(sentence) > 150 {
			continue
		}
		if containsAnyKeyword(sentence, importantKeywords) {
			out = append(out, sentence)
		}
	}
	return out
}

// dedupe removes case-insensitive duplicates and entries that are strict
// substrings of another entry, keeping section-derived entries first.
func dedupe(sectionDerived, other []string) []string {
	all := append(append([]string{}, sectionDerived...), other...)

	var unique []string
	seen := map[string]bool{}
	for _, h := range all {
		key := strings.ToLower(h)
		if !seen[key] {
			seen[key] = true
			unique = append(unique, h)
		}
	}

	result := make([]string, 0, MaxHighlights)
	for _, h := range unique {
		sub := false
		for _, o := range unique {
			lh, lo := strings.ToLower(h), strings.ToLower(o)
			if lh != lo && strings.Contains(lo, lh) {
				sub = true
				break
			}
		}
		if !sub {
			result = append(result, h)
			if len(result) == MaxHighlights {
				break
			}
		}
	}
	return result
}

func containsAnyKeyword(s string, keywords []string) bool {
	lower := strings.ToLower(s)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func clip(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return strings.TrimSpace(s[:limit-3]) + "..."
}
