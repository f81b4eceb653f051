package record

import (
	"reflect"
	"strings"
	"testing"
)

func TestCleanPositionFallsBackToFirstLine(t *testing.T) {
	r := JobRecord{}
	Clean(&r, "Senior Backend Engineer\nAcme Corp is hiring.")
	if r.Position != "Senior Backend Engineer" {
		t.Fatalf("Position = %q", r.Position)
	}
}

func TestCleanCapsPositionLength(t *testing.T) {
	r := JobRecord{Position: strings.Repeat("x", 150)}
	Clean(&r, "")
	if len(r.Position) > 100 {
		t.Fatalf("Position length = %d, want <= 100", len(r.Position))
	}
	if !strings.HasSuffix(r.Position, "...") {
		t.Fatalf("Position = %q, want ellipsis suffix", r.Position)
	}
}

func TestCleanRemoteLocationFallback(t *testing.T) {
	r := JobRecord{}
	Clean(&r, "Great opportunity.\nYou can work from home full time.")
	if r.JobLocation != "Remote" {
		t.Fatalf("JobLocation = %q, want Remote", r.JobLocation)
	}
}

func TestCleanTruncatesEchoedDescription(t *testing.T) {
	full := strings.Repeat("All work and no play makes for a dull posting. ", 60)
	r := JobRecord{JobDescription: full}
	Clean(&r, full)
	if len(r.JobDescription) > 2010 {
		t.Fatalf("JobDescription length = %d, want truncated", len(r.JobDescription))
	}
	if !strings.HasSuffix(r.JobDescription, "...") {
		t.Fatal("JobDescription missing ellipsis after truncation")
	}
}

func TestCleanSwapsInvertedSalary(t *testing.T) {
	r := JobRecord{Salary: Salary{Min: 120000, Max: 90000, Currency: "USD"}}
	Clean(&r, "")
	if r.Salary.Min != 90000 || r.Salary.Max != 120000 {
		t.Fatalf("Salary = %+v, want ordered range", r.Salary)
	}
}

func TestCleanDefaultsAndSliceRepair(t *testing.T) {
	r := JobRecord{}
	Clean(&r, "")
	if r.JobType != TypeFullTime {
		t.Errorf("JobType = %q", r.JobType)
	}
	if r.Salary.Currency != "INR" {
		t.Errorf("Currency = %q", r.Salary.Currency)
	}
	if r.Skills == nil || r.Highlights == nil {
		t.Error("Clean left nil slices")
	}
}

func TestCleanIsIdempotent(t *testing.T) {
	r := JobRecord{
		Position: strings.Repeat("y", 150),
		Salary:   Salary{Min: 9, Max: 5},
	}
	Clean(&r, "first line of text\nmore")
	once := r
	Clean(&r, "first line of text\nmore")
	if !reflect.DeepEqual(once, r) {
		t.Fatalf("Clean not idempotent:\nfirst  %+v\nsecond %+v", once, r)
	}
}
