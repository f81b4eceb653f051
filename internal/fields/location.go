package fields

import (
	"regexp"
	"strings"
)

// Remote indicators are checked before anything else since they are the
// most reliable signal a posting gives about location.
var remotePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(?:fully[\s-]+remote|100%[\s-]+remote)\b`),
	regexp.MustCompile(`(?i)\bremote(?:\s+position|\s+job|\s+work|\s+opportunity)?\b`),
	regexp.MustCompile(`(?i)\b(?:work[\s-]+from[\s-]+home|wfh|telecommute)\b`),
}

var hybridPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bhybrid(?:\s+position|\s+job|\s+work|\s+opportunity)?\b`),
	regexp.MustCompile(`(?i)\b(?:remote\s*/\s*on[\s-]*site|on[\s-]*site\s*/\s*remote)\b`),
	regexp.MustCompile(`(?i)\bpartially[\s-]+remote\b`),
}

var locationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:location|place|based\s+in|located\s+in|position\s+is\s+in)[\s:]+([a-z0-9][a-z0-9 \-]*?)(?:\n|\.|,|$)`),
	regexp.MustCompile(`([A-Za-z]+(?:\s*,\s*[A-Za-z]+)?)\s+office\b`),
}

var locationStopwords = regexp.MustCompile(`(?i)\b(?:the|a|an|is|are|we|our|this|that)\b`)

// Location extracts where the job is. Remote indicators win outright and
// return the "Remote" sentinel, hybrid indicators return "Hybrid", and only
// then are labeled location patterns consulted.
func Location(text string) string {
	for _, re := range remotePatterns {
		if re.MatchString(text) {
			return "Remote"
		}
	}
	for _, re := range hybridPatterns {
		if re.MatchString(text) {
			return "Hybrid"
		}
	}
	for _, re := range locationPatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		loc := strings.TrimSpace(locationStopwords.ReplaceAllString(m[1], ""))
		loc = strings.Trim(strings.Join(strings.Fields(loc), " "), ",.")
		if len(loc) > 2 && len(loc) < 50 {
			return loc
		}
	}
	return ""
}
