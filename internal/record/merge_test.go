package record

import (
	"reflect"
	"testing"
)

func TestMergeMetadataWinsScalars(t *testing.T) {
	meta := JobRecord{Position: "Data Analyst", Company: "Initech", JobURL: "https://example.com/job"}
	body := JobRecord{Position: "Analyst (from body)", Company: "wrong co", JobURL: "https://other.example"}

	out := Merge(meta, body)
	if out.Position != "Data Analyst" {
		t.Errorf("Position = %q", out.Position)
	}
	if out.Company != "Initech" {
		t.Errorf("Company = %q", out.Company)
	}
	if out.JobURL != "https://example.com/job" {
		t.Errorf("JobURL = %q", out.JobURL)
	}
}

func TestMergeBodyFillsGaps(t *testing.T) {
	meta := JobRecord{}
	body := JobRecord{Position: "Backend Engineer", Company: "Acme Corp"}

	out := Merge(meta, body)
	if out.Position != "Backend Engineer" || out.Company != "Acme Corp" {
		t.Fatalf("Merge = %+v", out)
	}
}

func TestMergeConcreteLocationBeatsRemoteSentinel(t *testing.T) {
	out := Merge(JobRecord{JobLocation: "Berlin, Germany"}, JobRecord{JobLocation: "Remote"})
	if out.JobLocation != "Berlin, Germany" {
		t.Fatalf("JobLocation = %q", out.JobLocation)
	}

	out = Merge(JobRecord{JobLocation: "Remote"}, JobRecord{JobLocation: "Berlin, Germany"})
	if out.JobLocation != "Berlin, Germany" {
		t.Fatalf("JobLocation = %q (reversed)", out.JobLocation)
	}
}

func TestMergeSpecificJobTypeBeatsRemote(t *testing.T) {
	out := Merge(JobRecord{JobType: TypeFullTime}, JobRecord{JobType: TypeRemote})
	if out.JobType != TypeFullTime {
		t.Fatalf("JobType = %q", out.JobType)
	}
}

func TestMergeAbsentJobTypeDoesNotMaskBody(t *testing.T) {
	out := Merge(JobRecord{}, JobRecord{JobType: TypeContract})
	if out.JobType != TypeContract {
		t.Fatalf("JobType = %q, want %q", out.JobType, TypeContract)
	}
}

func TestMergeFullSalaryRangeWins(t *testing.T) {
	partial := Salary{Min: 50000, Currency: "USD"}
	full := Salary{Min: 60000, Max: 80000, Currency: "EUR"}

	out := Merge(JobRecord{Salary: partial}, JobRecord{Salary: full})
	if out.Salary != full {
		t.Fatalf("Salary = %+v, want the full range", out.Salary)
	}
}

func TestMergeDescriptionLengthRule(t *testing.T) {
	meta := JobRecord{JobDescription: "short meta text here"}

	longBody := JobRecord{JobDescription: "this body description is clearly much longer than the metadata one"}
	if out := Merge(meta, longBody); out.JobDescription != longBody.JobDescription {
		t.Fatalf("JobDescription = %q, want the longer body text", out.JobDescription)
	}

	shortBody := JobRecord{JobDescription: "also short body text"}
	if out := Merge(meta, shortBody); out.JobDescription != meta.JobDescription {
		t.Fatalf("JobDescription = %q, want the metadata text kept", out.JobDescription)
	}
}

func TestMergeListsFirstNonEmpty(t *testing.T) {
	body := JobRecord{Skills: []string{"python", "aws"}, Highlights: []string{"Benefits include: Health insurance"}}
	out := Merge(JobRecord{}, body)
	if !reflect.DeepEqual(out.Skills, body.Skills) {
		t.Errorf("Skills = %v", out.Skills)
	}
	if !reflect.DeepEqual(out.Highlights, body.Highlights) {
		t.Errorf("Highlights = %v", out.Highlights)
	}
}

func TestMergeEmptyInputsYieldDefaults(t *testing.T) {
	out := Merge(JobRecord{}, JobRecord{})
	if out.JobType != TypeFullTime {
		t.Errorf("JobType = %q", out.JobType)
	}
	if out.Skills == nil || out.Highlights == nil {
		t.Error("Merge returned nil slices")
	}
}
