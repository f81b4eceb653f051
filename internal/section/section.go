// Package section finds labeled spans of text such as "Benefits:" or
// "Requirements". It is the single section-boundary implementation shared by
// the skills, summary, highlights and description extractors, which differ
// only in the heading sets and fallback spans they pass in.
package section

import (
	"regexp"
	"strings"
	"sync"
)

// DefaultFallbackSpan bounds how much text is taken after a heading when no
// clear section end can be found.
const DefaultFallbackSpan = 500

// sectionEnd marks where a section stops: the next blank-line run or the
// next heading-looking line (all caps or colon-terminated).
var sectionEnd = regexp.MustCompile(`\n\s*\n|\n[A-Z][^a-z\n]+:`)

var (
	headingMu    sync.Mutex
	headingCache = map[string]*regexp.Regexp{}
)

// headingPattern compiles a case-insensitive matcher for a heading label at
// the start of a line, tolerating a plural "s" and requiring either a colon
// or a line break after the label. Compiled patterns are cached since the
// heading sets are small and fixed.
func headingPattern(label string) *regexp.Regexp {
	headingMu.Lock()
	defer headingMu.Unlock()
	if re, ok := headingCache[label]; ok {
		return re
	}
	re := regexp.MustCompile(`(?i)(?:^|\n)[ \t]*` + regexp.QuoteMeta(label) + `s?[ \t]*(?::|\r?\n)`)
	headingCache[label] = re
	return re
}

// Find reports the bounds of the first matching heading, tried in priority
// order. It returns the match start, the offset where the section body
// begins, and whether any heading matched.
func Find(text string, headings []string) (start, bodyStart int, ok bool) {
	for _, label := range headings {
		if loc := headingPattern(label).FindStringIndex(text); loc != nil {
			return loc[0], loc[1], true
		}
	}
	return 0, 0, false
}

// Locate returns the body text of the first section whose heading matches
// one of the given labels. The section ends at the next blank-line run or
// heading-looking line; when neither occurs before the text runs out, at
// most fallbackSpan characters after the heading are kept. The empty string
// means no heading matched or the section was empty.
func Locate(text string, headings []string, fallbackSpan int) string {
	if text == "" || len(headings) == 0 {
		return ""
	}
	if fallbackSpan <= 0 {
		fallbackSpan = DefaultFallbackSpan
	}
	_, bodyStart, ok := Find(text, headings)
	if !ok {
		return ""
	}
	body := text[bodyStart:]
	body = strings.TrimLeft(body, " \t\r\n")
	if end := sectionEnd.FindStringIndex(body); end != nil {
		body = body[:end[0]]
	} else if len(body) > fallbackSpan {
		body = body[:fallbackSpan]
	}
	return strings.TrimSpace(body)
}

// Collapse squeezes whitespace runs in a section body down to single
// spaces, the form most callers want for one-line output.
func Collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
