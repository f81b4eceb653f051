// Package skills recognizes technical and soft skills in posting text by
// combining section-scoped extraction, bullet scanning and direct taxonomy
// matches, then ranking the result by frequency.
package skills

import (
	"regexp"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jobsift/jobsift/internal/section"
)

const (
	maxTechnical = 15
	maxSoft      = 10
	maxOther     = 5
	maxTotal     = 20
)

var skillsHeadings = []string{
	"technical skills", "required skills", "key skills", "skills",
	"requirements", "qualifications", "minimum qualifications",
	"what you'll need", "what you need", "your skills", "your experience",
}

var bulletLine = regexp.MustCompile(`(?m)^[ \t]*[•\-*·]\s*(.+)$`)

var titleCaser = cases.Title(language.English)

// termMatcher pairs a taxonomy term with its whole-word matcher. The slice
// keeps taxonomy declaration order so matching is deterministic.
type termMatcher struct {
	term      string
	re        *regexp.Regexp
	technical bool
}

var termMatchers = buildTermMatchers()

func buildTermMatchers() []termMatcher {
	var out []termMatcher
	for _, t := range allTechnical() {
		out = append(out, termMatcher{t, wordMatch(t), true})
	}
	for _, s := range softSkills {
		out = append(out, termMatcher{s, wordMatch(s), false})
	}
	return out
}

// wordMatch builds a whole-word matcher, dropping the boundary assertion on
// ends that are not word characters (".net", "c++").
func wordMatch(term string) *regexp.Regexp {
	pattern := regexp.QuoteMeta(term)
	if isWordChar(term[0]) {
		pattern = `\b` + pattern
	}
	if isWordChar(term[len(term)-1]) {
		pattern += `\b`
	}
	return regexp.MustCompile(pattern)
}

func isWordChar(b byte) bool {
	return b == '_' || ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z') || ('0' <= b && b <= '9')
}

// Extract returns the deduplicated, frequency-ranked skill list for a
// posting, technical skills first, capped at 20 entries.
func Extract(text string) []string {
	if strings.TrimSpace(text) == "" {
		return []string{}
	}
	norm := normalizeText(strings.ToLower(text))

	var candidates []string
	candidates = append(candidates, fromSections(norm)...)
	candidates = append(candidates, fromBullets(norm)...)
	candidates = append(candidates, fromKeywords(norm)...)
	return rank(candidates)
}

func normalizeText(lower string) string {
	for _, r := range normalizeReplacements {
		lower = wordMatch(r.from).ReplaceAllString(lower, r.to)
	}
	return lower
}

// fromSections pulls candidates out of skills/requirements-style sections:
// bullet items when present, otherwise sentence fragments of sane size.
func fromSections(text string) []string {
	var out []string
	for _, heading := range skillsHeadings {
		body := section.Locate(text, []string{heading}, section.DefaultFallbackSpan)
		if body == "" {
			continue
		}
		bullets := bulletLine.FindAllStringSubmatch(body, -1)
		if len(bullets) > 0 {
			for _, b := range bullets {
				if item := strings.TrimSpace(b[1]); len(item) > 3 {
					out = append(out, item)
				}
			}
			continue
		}
		for _, frag := range splitFragments(body) {
			if len(frag) > 3 && len(frag) < 150 {
				out = append(out, frag)
			}
		}
	}
	return out
}

// fromBullets keeps any bullet line in the whole text that mentions a
// taxonomy term.
func fromBullets(text string) []string {
	var out []string
	for _, b := range bulletLine.FindAllStringSubmatch(text, -1) {
		item := strings.TrimSpace(b[1])
		if len(item) < 3 {
			continue
		}
		for _, tm := range termMatchers {
			if tm.re.MatchString(item) {
				out = append(out, item)
				break
			}
		}
	}
	return out
}

// fromKeywords records every taxonomy term that appears anywhere in the
// text as a whole word.
func fromKeywords(text string) []string {
	var out []string
	for _, tm := range termMatchers {
		if tm.re.MatchString(text) {
			out = append(out, tm.term)
		}
	}
	return out
}

// splitFragments breaks a section body into rough sentence fragments on
// terminal punctuation and commas.
func splitFragments(body string) []string {
	fields := strings.FieldsFunc(body, func(r rune) bool {
		return r == '.' || r == '!' || r == '?' || r == ';' || r == ','
	})
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

// rank resolves raw candidates to known terms where possible, counts
// frequencies, and assembles the final technical/soft/other buckets.
func rank(candidates []string) []string {
	counts := map[string]int{}
	var order []string
	note := func(term string) {
		if counts[term] == 0 {
			order = append(order, term)
		}
		counts[term]++
	}

	for _, raw := range candidates {
		if isTechnical(raw) || isSoft(raw) {
			note(raw)
			continue
		}
		found := false
		for _, tm := range termMatchers {
			if tm.re.MatchString(raw) {
				note(tm.term)
				found = true
			}
		}
		if !found && len(raw) < 50 {
			note(raw)
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	var tech, soft, other []string
	for _, term := range order {
		switch {
		case len(term) < 3 && !isTechnical(term):
		case isTechnical(term):
			tech = appendUnique(tech, term, maxTechnical)
		case isSoft(term):
			soft = appendUnique(soft, titleCaser.String(term), maxSoft)
		default:
			other = appendUnique(other, titleCaser.String(term), maxOther)
		}
	}

	result := append(append(tech, soft...), other...)
	if len(result) > maxTotal {
		result = result[:maxTotal]
	}
	if result == nil {
		result = []string{}
	}
	return result
}

func appendUnique(list []string, term string, limit int) []string {
	if len(list) >= limit {
		return list
	}
	for _, existing := range list {
		if strings.EqualFold(existing, term) {
			return list
		}
	}
	return append(list, term)
}
