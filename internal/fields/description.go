package fields

import (
	"regexp"
	"strings"

	"github.com/jobsift/jobsift/internal/section"
)

// descriptionHeadings are tried in priority order to find where the
// description proper begins.
var descriptionHeadings = []string{
	"job description", "about the role", "about the job",
	"position overview", "position description", "role details",
	"what you'll do", "responsibilities", "duties",
	"about the position", "the role",
}

// descriptionEndMarkers name the sections that commonly follow the
// description; the first one found truncates it.
var descriptionEndMarkers = []string{
	"requirements", "qualifications", "skills required",
	"what you'll need", "about the company", "benefits",
	"about us", "who you are", "how to apply", "education",
	"experience required", "key skills", "desired skills",
	"application process", "apply now",
}

var descriptionEndPatterns = buildEndPatterns()

func buildEndPatterns() []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(descriptionEndMarkers))
	for _, marker := range descriptionEndMarkers {
		out = append(out, regexp.MustCompile(`(?i)\n\s*`+regexp.QuoteMeta(marker)+`s?[ \t:]*\r?\n?`))
	}
	return out
}

var blankRuns = regexp.MustCompile(`\n\s*\n`)

// Description extracts the description body: everything from the first
// description-style heading down to the next known section, or the whole
// text when no heading exists. The final full-text length cap is applied by
// the validator, not here.
func Description(text string) string {
	desc := text
	if start, _, ok := section.Find(text, descriptionHeadings); ok {
		desc = strings.TrimSpace(text[start:])
		end := len(desc)
		for _, re := range descriptionEndPatterns {
			if loc := re.FindStringIndex(desc); loc != nil && loc[0] < end && loc[0] > 0 {
				end = loc[0]
			}
		}
		desc = strings.TrimSpace(desc[:end])
	}
	return blankRuns.ReplaceAllString(desc, "\n\n")
}
