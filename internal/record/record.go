package record

// JobType is the employment category reported for a posting. The zero value
// is not valid; extraction defaults to TypeFullTime when nothing matches.
type JobType string

const (
	TypeFullTime   JobType = "full-time"
	TypePartTime   JobType = "part-time"
	TypeContract   JobType = "contract"
	TypeInternship JobType = "internship"
	TypeFreelance  JobType = "freelance"
	TypeRemote     JobType = "remote"
)

// Salary is a best-effort salary range. Min and Max are zero when the
// posting did not state a figure; Min <= Max holds after Clean whenever
// Max is non-zero.
type Salary struct {
	Min      int    `json:"min"`
	Max      int    `json:"max"`
	Currency string `json:"currency"`
}

// JobRecord is the structured result of processing one posting. Every field
// is best-effort: extraction fills what it can and leaves the rest at its
// neutral default, so callers always receive a well-formed record.
type JobRecord struct {
	Company        string   `json:"company"`
	Position       string   `json:"position"`
	JobType        JobType  `json:"jobType"`
	JobLocation    string   `json:"jobLocation"`
	Salary         Salary   `json:"salary"`
	JobDescription string   `json:"jobDescription"`
	JobURL         string   `json:"jobUrl,omitempty"`
	Skills         []string `json:"skills"`
	Summary        string   `json:"summary"`
	Highlights     []string `json:"highlights"`

	// QualityScore is only set by the enhancer path; rule-based extraction
	// leaves it zero and it is omitted from JSON output.
	QualityScore float64 `json:"qualityScore,omitempty"`
}

// New returns a record with neutral defaults matching the output schema.
func New() JobRecord {
	return JobRecord{
		JobType:    TypeFullTime,
		Salary:     Salary{Currency: "INR"},
		Skills:     []string{},
		Highlights: []string{},
	}
}
