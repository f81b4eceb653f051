package record

import "strings"

const (
	maxPositionLen    = 100
	maxDescriptionLen = 2000
)

var remoteHints = []string{"remote", "work from home", "wfh"}

// Clean enforces the record invariants as a final pass after extraction and
// merging: length caps, the remote-location fallback, and salary ordering.
// It is idempotent, so applying it twice yields the same record. fullText is
// the cleaned posting text the record was extracted from.
func Clean(r *JobRecord, fullText string) {
	if r.Position == "" {
		// Fall back to the first reasonably short line of the posting.
		for _, line := range strings.Split(fullText, "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			if len(line) < maxPositionLen {
				r.Position = line
			}
			break
		}
	}
	if len(r.Position) > maxPositionLen {
		r.Position = strings.TrimSpace(r.Position[:maxPositionLen-3]) + "..."
	}

	if r.JobType == "" {
		r.JobType = TypeFullTime
	}

	if r.JobLocation == "" {
		lower := strings.ToLower(fullText)
		for _, hint := range remoteHints {
			if strings.Contains(lower, hint) {
				r.JobLocation = "Remote"
				break
			}
		}
	}

	// Do not echo the entire posting as the description.
	if r.JobDescription == fullText && len(fullText) > maxDescriptionLen {
		r.JobDescription = strings.TrimSpace(fullText[:maxDescriptionLen]) + "..."
	}

	if r.Salary.Min > r.Salary.Max && r.Salary.Max > 0 {
		r.Salary.Min, r.Salary.Max = r.Salary.Max, r.Salary.Min
	}
	if r.Salary.Currency == "" {
		r.Salary.Currency = "INR"
	}

	if r.Skills == nil {
		r.Skills = []string{}
	}
	if r.Highlights == nil {
		r.Highlights = []string{}
	}
}
