// Package fields holds the independent pattern-driven extractors for the
// scalar fields of a job record. Every extractor is a pure function over
// clean text that returns a neutral default when nothing matches.
package fields

import (
	"regexp"
	"strings"
)

var titlePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:job title|position|role|job)[\s:]+([a-z0-9][a-z0-9 \-&/(),.]*?)(?:\n|\.|,)`),
	regexp.MustCompile(`(?i)hiring[\s:]+(?:an?\s+)?([a-z0-9][a-z0-9 \-&/()]*?)(?:\n|\.|,)`),
	regexp.MustCompile(`(?i)([a-z0-9][a-z0-9 \-&/()]*?)\s+(?:position|role)\s`),
}

var (
	titleLeadNoise   = regexp.MustCompile(`(?i)^\s*(?:for|the|a|an)\s+`)
	titleLineReject  = regexp.MustCompile(`(?i)apply|about|company|www|http|location`)
	titleLineKeyword = regexp.MustCompile(`(?i)\b(?:developer|engineer|manager|analyst|designer|specialist|coordinator)\b`)
)

// Title extracts the job title. Labeled patterns are tried in priority
// order; candidates outside a sane length band are rejected. As a fallback
// the first few lines are scanned for a short line carrying a known
// job-title keyword.
func Title(text string) string {
	for _, re := range titlePatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		title := strings.TrimSpace(m[1])
		if len(title) > 3 && len(title) < 100 {
			return strings.TrimSpace(titleLeadNoise.ReplaceAllString(title, ""))
		}
	}

	lines := strings.Split(text, "\n")
	if len(lines) > 5 {
		lines = lines[:5]
	}
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if len(line) <= 10 || len(line) >= 100 {
			continue
		}
		if titleLineReject.MatchString(line) {
			continue
		}
		if titleLineKeyword.MatchString(line) {
			return line
		}
	}
	return ""
}
