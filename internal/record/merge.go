package record

import "strings"

// Merge reconciles two candidate records for the same posting. meta is the
// record recovered from page metadata, body the one extracted from the
// posting text. Precedence is expressed as an ordered per-field rule list so
// new fields can be added without touching control flow. Merge is pure: it
// never drops a value that exists in either source.
func Merge(meta, body JobRecord) JobRecord {
	out := New()
	for _, r := range mergeRules {
		r.merge(&meta, &body, &out)
	}
	return out
}

type mergeRule struct {
	field string
	merge func(meta, body, out *JobRecord)
}

var mergeRules = []mergeRule{
	{"position", func(meta, body, out *JobRecord) {
		out.Position = firstNonEmpty(meta.Position, body.Position)
	}},
	{"company", func(meta, body, out *JobRecord) {
		out.Company = firstNonEmpty(meta.Company, body.Company)
	}},
	{"location", func(meta, body, out *JobRecord) {
		out.JobLocation = mergeLocation(meta.JobLocation, body.JobLocation)
	}},
	{"jobType", func(meta, body, out *JobRecord) {
		out.JobType = mergeJobType(meta.JobType, body.JobType)
	}},
	{"salary", func(meta, body, out *JobRecord) {
		out.Salary = mergeSalary(meta.Salary, body.Salary)
	}},
	{"description", func(meta, body, out *JobRecord) {
		out.JobDescription = mergeDescription(meta.JobDescription, body.JobDescription)
	}},
	{"url", func(meta, body, out *JobRecord) {
		out.JobURL = firstNonEmpty(meta.JobURL, body.JobURL)
	}},
	{"skills", func(meta, body, out *JobRecord) {
		out.Skills = firstNonEmptyList(meta.Skills, body.Skills)
	}},
	{"summary", func(meta, body, out *JobRecord) {
		out.Summary = firstNonEmpty(meta.Summary, body.Summary)
	}},
	{"highlights", func(meta, body, out *JobRecord) {
		out.Highlights = firstNonEmptyList(meta.Highlights, body.Highlights)
	}},
	{"qualityScore", func(meta, body, out *JobRecord) {
		if meta.QualityScore > 0 {
			out.QualityScore = meta.QualityScore
		} else {
			out.QualityScore = body.QualityScore
		}
	}},
}

// mergeLocation prefers a concrete place over the bare "Remote" sentinel,
// then any non-empty value, then the longer value when the other is
// suspiciously short.
func mergeLocation(a, b string) string {
	switch {
	case a == "" && b == "":
		return ""
	case a == "":
		return b
	case b == "":
		return a
	}
	if isRemoteSentinel(a) && !isRemoteSentinel(b) {
		return b
	}
	if isRemoteSentinel(b) && !isRemoteSentinel(a) {
		return a
	}
	if len(a) < 5 && len(b) >= 5 {
		return b
	}
	return a
}

func isRemoteSentinel(s string) bool {
	return strings.EqualFold(strings.TrimSpace(s), "remote")
}

// mergeJobType treats "remote" as a weak signal: a more specific category
// from the other source wins over it.
func mergeJobType(a, b JobType) JobType {
	switch {
	case a == "" && b == "":
		return TypeFullTime
	case a == "":
		return b
	case b == "":
		return a
	}
	if a == TypeRemote && b != TypeRemote {
		return b
	}
	if b == TypeRemote && a != TypeRemote {
		return a
	}
	return a
}

// mergeSalary prefers a full range over a partial one, and a partial one
// over nothing.
func mergeSalary(a, b Salary) Salary {
	fullA := a.Min > 0 && a.Max > 0
	fullB := b.Min > 0 && b.Max > 0
	switch {
	case fullA:
		return a
	case fullB:
		return b
	case a.Min > 0 || a.Max > 0:
		return a
	case b.Min > 0 || b.Max > 0:
		return b
	}
	if a.Currency != "" {
		return a
	}
	return b
}

// mergeDescription keeps the metadata value unless the body text is at least
// 1.5x longer, in which case the extra detail wins.
func mergeDescription(meta, body string) string {
	if meta == "" {
		return body
	}
	if len(body) >= len(meta)*3/2 {
		return body
	}
	return meta
}

func firstNonEmpty(a, b string) string {
	if strings.TrimSpace(a) != "" {
		return a
	}
	return b
}

func firstNonEmptyList(a, b []string) []string {
	if len(a) > 0 {
		return a
	}
	if len(b) > 0 {
		return b
	}
	return []string{}
}
