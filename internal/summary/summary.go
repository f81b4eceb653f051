// Package summary produces a short abstract of a posting. Short texts are
// returned nearly verbatim, an explicit summary section wins when present,
// and only then does sentence scoring kick in.
package summary

import (
	"regexp"
	"sort"
	"strings"

	"github.com/jobsift/jobsift/internal/section"
)

const (
	// MaxLength caps the summary; it also doubles as the "already short
	// enough" threshold for the verbatim shortcut.
	MaxLength    = 300
	maxSentences = 3
)

// priorityKeywords mark sentences that tend to describe the role itself.
var priorityKeywords = []string{
	"job description", "overview", "summary", "role", "position",
	"opportunity", "responsibilities", "duties", "mission",
	"looking for", "seeking", "hiring", "ideal candidate",
	"position summary", "job summary", "about the role",
}

var summaryHeadings = []string{
	"job summary", "position summary", "role summary",
	"about the role", "about the position", "about the job",
	"about the opportunity", "overview", "summary", "introduction",
}

var stopwords = map[string]bool{}

func init() {
	for _, w := range strings.Fields(
		"a an the and or but if because as what while of to in for with on at " +
			"from by about against between into through during before after above " +
			"below up down is are am was were be been being have has had having do " +
			"does did doing would should could ought i you he she it we they which " +
			"who whom this that these those") {
		stopwords[w] = true
	}
}

var (
	bulletStart = regexp.MustCompile(`^[ \t]*[•\-*·]`)
	wordRe      = regexp.MustCompile(`\b[a-zA-Z]{3,}\b`)
	spaceRuns   = regexp.MustCompile(`\s+`)
)

// Generate builds the summary for cleaned posting text. The result is
// length-capped and always ends with terminal punctuation.
func Generate(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	if len(text) < MaxLength {
		return finish(firstParagraph(text))
	}
	if s := fromSection(text); s != "" {
		return finish(s)
	}
	return finish(keySentences(text))
}

// fromSection tries an explicit summary-style section, then the first
// reasonably sized prose paragraph.
func fromSection(text string) string {
	if body := section.Locate(text, summaryHeadings, section.DefaultFallbackSpan); body != "" {
		if collapsed := section.Collapse(body); len(collapsed) <= MaxLength {
			return collapsed
		}
	}
	paragraphs := strings.Split(text, "\n\n")
	if len(paragraphs) > 3 {
		paragraphs = paragraphs[:3]
	}
	for _, p := range paragraphs {
		p = strings.TrimSpace(p)
		if len(p) > 50 && len(p) <= MaxLength && p != strings.ToUpper(p) && !bulletStart.MatchString(p) {
			return section.Collapse(p)
		}
	}
	return ""
}

// keySentences scores every sentence and rebuilds a summary from the top
// few, restored to document order.
func keySentences(text string) string {
	sentences := splitSentences(text)
	kept := sentences[:0]
	for _, s := range sentences {
		if len(s) > 20 && s != strings.ToUpper(s) && !bulletStart.MatchString(s) {
			kept = append(kept, s)
		}
	}
	if len(kept) == 0 {
		return firstParagraph(text)
	}

	type scored struct {
		index int
		score float64
	}
	ranked := make([]scored, len(kept))
	for i, s := range kept {
		ranked[i] = scored{i, scoreSentence(s, i, len(kept))}
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })
	if len(ranked) > maxSentences {
		ranked = ranked[:maxSentences]
	}
	sort.Slice(ranked, func(i, j int) bool { return ranked[i].index < ranked[j].index })

	parts := make([]string, len(ranked))
	for i, r := range ranked {
		parts[i] = kept[r.index]
	}
	return strings.Join(parts, " ")
}

// scoreSentence weighs position in the document, a preferred length band,
// summary-indicating keywords and the fraction of non-stopword tokens.
func scoreSentence(sentence string, position, total int) float64 {
	score := 0.0
	lower := strings.ToLower(sentence)

	score += (1.0 - float64(position)/float64(total)) * 2

	length := len(sentence)
	switch {
	case length >= 30 && length <= 150:
		score += 1.0
	case length < 30:
		score += float64(length) / 30
	default:
		score += 1.0 - float64(length-150)/200
	}

	hits := 0
	for _, kw := range priorityKeywords {
		if strings.Contains(lower, kw) {
			hits++
		}
	}
	if hits > 3 {
		hits = 3
	}
	score += float64(hits) / 3 * 3

	words := wordRe.FindAllString(lower, -1)
	if len(words) > 0 {
		informative := 0
		for _, w := range words {
			if !stopwords[w] {
				informative++
			}
		}
		score += float64(informative) / float64(len(words))
	}
	return score
}

func splitSentences(text string) []string {
	flat := spaceRuns.ReplaceAllString(text, " ")
	var out []string
	start := 0
	for i := 0; i < len(flat); i++ {
		switch flat[i] {
		case '.', '!', '?':
			// Sentence ends at punctuation followed by whitespace.
			if i+1 < len(flat) && flat[i+1] != ' ' {
				continue
			}
			if s := strings.TrimSpace(flat[start : i+1]); s != "" {
				out = append(out, s)
			}
			start = i + 1
		}
	}
	if s := strings.TrimSpace(flat[start:]); s != "" {
		out = append(out, s)
	}
	return out
}

func firstParagraph(text string) string {
	if i := strings.Index(text, "\n\n"); i >= 0 {
		text = text[:i]
	}
	return section.Collapse(text)
}

// finish normalizes capitalization, guarantees terminal punctuation and
// applies the length cap.
func finish(s string) string {
	s = strings.TrimSpace(bulletStart.ReplaceAllString(s, ""))
	if s == "" {
		return ""
	}
	if len(s) > MaxLength {
		s = strings.TrimSpace(s[:MaxLength]) + "..."
	}
	r := []rune(s)
	if r[0] >= 'a' && r[0] <= 'z' {
		r[0] = r[0] - 'a' + 'A'
	}
	s = string(r)
	if !strings.HasSuffix(s, ".") && !strings.HasSuffix(s, "!") && !strings.HasSuffix(s, "?") {
		s += "."
	}
	return s
}
