package fields

import (
	"regexp"
	"strings"

	"github.com/jobsift/jobsift/internal/record"
)

// jobTypeTable maps categories to the keywords that vote for them. Order
// matters twice: it is the tie-break between categories with equal votes,
// and full-time comes first because it is also the default.
var jobTypeTable = []struct {
	category record.JobType
	keywords []string
}{
	{record.TypeFullTime, []string{"full time", "full-time", "permanent", "ft", "regular"}},
	{record.TypePartTime, []string{"part time", "part-time", "pt"}},
	{record.TypeContract, []string{"contract", "contractor", "temporary", "temp", "fixed term", "fixed-term"}},
	{record.TypeInternship, []string{"intern", "internship", "trainee", "training"}},
	{record.TypeRemote, []string{"remote", "work from home", "wfh", "telecommute"}},
	{record.TypeFreelance, []string{"freelance", "freelancer", "self-employed"}},
}

var jobTypeMatchers = buildJobTypeMatchers()

func buildJobTypeMatchers() [][]*regexp.Regexp {
	out := make([][]*regexp.Regexp, len(jobTypeTable))
	for i, row := range jobTypeTable {
		for _, kw := range row.keywords {
			out[i] = append(out[i], regexp.MustCompile(`\b`+regexp.QuoteMeta(kw)+`\b`))
		}
	}
	return out
}

// Type picks the employment category by keyword-frequency vote: the
// category whose keywords occur most often wins, ties go to the earlier
// table entry, and full-time is the default when nothing matches.
func Type(text string) record.JobType {
	lower := strings.ToLower(text)
	best := record.TypeFullTime
	bestCount := 0
	for i, row := range jobTypeTable {
		count := 0
		for _, re := range jobTypeMatchers[i] {
			count += len(re.FindAllStringIndex(lower, -1))
		}
		if count > bestCount {
			best = row.category
			bestCount = count
		}
	}
	return best
}
