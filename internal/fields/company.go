package fields

import (
	"regexp"
	"strings"
)

var companyPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:company|organization|employer)[\s:]+([a-z0-9][a-z0-9 \-&.]*?)(?:\n|\.|,)`),
	regexp.MustCompile(`(?i)\b(?:at|with|for|by)\s+([a-z0-9][a-z0-9 \-&.]*?)(?:\s+is|\s+are|\s+has|\s+have|\n|\.|,)`),
	regexp.MustCompile(`(?i)\babout\s+([a-z0-9][a-z0-9 \-&.]*?)(?:\n|\.|,|:)`),
}

var companyStopwords = regexp.MustCompile(`(?i)\b(?:the|a|an|is|are|we|our|this|that)\b`)

// legalSuffixes are corporate-entity markers scanned for in the first
// paragraph when no labeled pattern matched.
var legalSuffixes = []string{"Inc", "LLC", "Ltd", "Limited", "Corporation", "Corp", "GmbH"}

// Company extracts the hiring company's name: labeled patterns first, then
// a legal-entity suffix scan over the opening paragraph. Stop-words are
// stripped from the captured span and implausible lengths rejected.
func Company(text string) string {
	for _, re := range companyPatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		company := strings.TrimSpace(companyStopwords.ReplaceAllString(m[1], ""))
		company = strings.Join(strings.Fields(company), " ")
		if len(company) > 3 && len(company) < 50 {
			return company
		}
	}

	first := firstParagraph(text)
	for _, suffix := range legalSuffixes {
		if !strings.Contains(first, suffix) {
			continue
		}
		re := regexp.MustCompile(`([A-Za-z0-9][A-Za-z0-9 \-&.]*` + regexp.QuoteMeta(suffix) + `)\b`)
		if m := re.FindStringSubmatch(first); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}

func firstParagraph(text string) string {
	if i := strings.Index(text, "\n\n"); i >= 0 {
		return text[:i]
	}
	if i := strings.Index(text, "\n"); i >= 0 {
		return text[:i]
	}
	return text
}
