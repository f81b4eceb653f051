package pipeline

import (
	"context"
	"reflect"
	"strings"
	"testing"

	"github.com/jobsift/jobsift/internal/cache"
	"github.com/jobsift/jobsift/internal/record"
)

const samplePosting = `Senior Backend Engineer

Company: Acme Corp
Job Type: Full-time
Location: Remote
Salary: $90,000 - $120,000 per year

Job Description:
Build and scale our core services.

Requirements:
- 5+ years of python experience
- Experience with aws
- Strong communication skills

Benefits:
Health insurance and flexible hours.
`

func TestExtractPlainTextPosting(t *testing.T) {
	p := &Pipeline{}
	rec := p.Extract(context.Background(), samplePosting, false, Options{})

	if rec.Position != "Senior Backend Engineer" {
		t.Errorf("Position = %q", rec.Position)
	}
	if rec.Company != "Acme Corp" {
		t.Errorf("Company = %q", rec.Company)
	}
	if rec.JobLocation != "Remote" {
		t.Errorf("JobLocation = %q", rec.JobLocation)
	}
	if rec.JobType != record.TypeFullTime {
		t.Errorf("JobType = %q", rec.JobType)
	}
	want := record.Salary{Min: 90000, Max: 120000, Currency: "USD"}
	if rec.Salary != want {
		t.Errorf("Salary = %+v, want %+v", rec.Salary, want)
	}
	if !strings.Contains(rec.JobDescription, "Build and scale") {
		t.Errorf("JobDescription = %q", rec.JobDescription)
	}
	for _, skill := range []string{"python", "aws"} {
		found := false
		for _, s := range rec.Skills {
			if strings.EqualFold(s, skill) {
				found = true
			}
		}
		if !found {
			t.Errorf("Skills = %v, missing %q", rec.Skills, skill)
		}
	}
	if rec.Summary == "" {
		t.Error("Summary is empty")
	}
	if len(rec.Highlights) == 0 || len(rec.Highlights) > 5 {
		t.Errorf("Highlights = %v", rec.Highlights)
	}
}

func TestExtractIsDeterministic(t *testing.T) {
	p := &Pipeline{}
	a := p.Extract(context.Background(), samplePosting, false, Options{})
	b := p.Extract(context.Background(), samplePosting, false, Options{})
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("extraction not deterministic:\nfirst  %+v\nsecond %+v", a, b)
	}
}

func TestExtractEmptyInputYieldsDefaults(t *testing.T) {
	p := &Pipeline{}
	rec := p.Extract(context.Background(), "   ", false, Options{})

	if rec.JobType != record.TypeFullTime {
		t.Errorf("JobType = %q", rec.JobType)
	}
	if rec.Salary.Currency != "INR" {
		t.Errorf("Currency = %q", rec.Salary.Currency)
	}
	if rec.Skills == nil || rec.Highlights == nil {
		t.Error("nil slices in default record")
	}
}

func TestExtractBasicDetailSkipsRecognizers(t *testing.T) {
	p := &Pipeline{}
	rec := p.Extract(context.Background(), samplePosting, false, Options{DetailLevel: DetailBasic})

	if len(rec.Skills) != 0 {
		t.Errorf("Skills = %v, want none at basic detail", rec.Skills)
	}
	if len(rec.Highlights) != 0 {
		t.Errorf("Highlights = %v, want none at basic detail", rec.Highlights)
	}
	if rec.Position == "" {
		t.Error("basic detail still extracts scalar fields")
	}
}

func TestExtractMarkupMergesMetadata(t *testing.T) {
	html := `<html><head>
		<meta property="og:title" content="Data Analyst">
		<meta property="og:site_name" content="Initech">
		<meta name="location" content="Berlin, Germany">
		<link rel="canonical" href="https://jobs.initech.example/123">
	</head><body>
		<h1>Data Analyst</h1>
		<p>Initech is hiring a Data Analyst for our remote-friendly analytics team.</p>
	</body></html>`

	p := &Pipeline{}
	rec := p.Extract(context.Background(), html, true, Options{})

	if rec.Position != "Data Analyst" {
		t.Errorf("Position = %q", rec.Position)
	}
	if rec.Company != "Initech" {
		t.Errorf("Company = %q", rec.Company)
	}
	// Metadata names a concrete city; the body's "Remote" loses.
	if rec.JobLocation != "Berlin, Germany" {
		t.Errorf("JobLocation = %q", rec.JobLocation)
	}
	if rec.JobURL != "https://jobs.initech.example/123" {
		t.Errorf("JobURL = %q", rec.JobURL)
	}
}

func TestExtractMarkupKeepsBodyJobType(t *testing.T) {
	// Page metadata never states an employment category, so the type voted
	// from the body text must survive the metadata merge.
	text := "This is a contract position for six months. The contract may be extended."
	html := "<html><body><p>" + text + "</p></body></html>"
	p := &Pipeline{}

	plain := p.Extract(context.Background(), text, false, Options{})
	if plain.JobType != record.TypeContract {
		t.Fatalf("plain JobType = %q, want %q", plain.JobType, record.TypeContract)
	}

	marked := p.Extract(context.Background(), html, true, Options{})
	if marked.JobType != record.TypeContract {
		t.Fatalf("markup JobType = %q, want %q", marked.JobType, record.TypeContract)
	}
}

func TestExtractUsesCache(t *testing.T) {
	c := cache.New(4, 0)
	defer c.Close()
	p := &Pipeline{Cache: c}

	first := p.Extract(context.Background(), samplePosting, false, Options{})
	// Mutating the returned record must not poison the cache.
	if len(first.Skills) > 0 {
		first.Skills[0] = "tampered"
	}
	second := p.Extract(context.Background(), samplePosting, false, Options{})

	if len(second.Skills) > 0 && second.Skills[0] == "tampered" {
		t.Fatal("cache returned a record aliased to a caller's copy")
	}
	if second.Position != "Senior Backend Engineer" {
		t.Fatalf("cached Position = %q", second.Position)
	}
}

type stubEnhancer struct {
	rec   *record.JobRecord
	calls int
}

func (s *stubEnhancer) Enhance(ctx context.Context, text string) (*record.JobRecord, error) {
	s.calls++
	return s.rec, nil
}

func TestExtractEnhancerFillsOnlyEmptyFields(t *testing.T) {
	stub := &stubEnhancer{rec: &record.JobRecord{
		Skills:       []string{"negotiation"},
		Summary:      "Model-written summary.",
		Highlights:   []string{"Free lunches"},
		QualityScore: 0.5,
	}}
	p := &Pipeline{Enhancer: stub}

	text := "An opening on our operations team in the city.\n\nNo particulars are given."
	rec := p.Extract(context.Background(), text, false, Options{UseEnhancer: true})

	if stub.calls != 1 {
		t.Fatalf("enhancer calls = %d, want 1", stub.calls)
	}
	if !reflect.DeepEqual(rec.Skills, []string{"negotiation"}) {
		t.Errorf("Skills = %v, want the enhancer's list", rec.Skills)
	}
	// The rule-based pass produced a summary, so the model's must not win.
	if rec.Summary == "Model-written summary." {
		t.Error("enhancer overwrote a non-empty summary")
	}
	if rec.QualityScore != 0.5 {
		t.Errorf("QualityScore = %v", rec.QualityScore)
	}
}

func TestExtractEnhancerDisabledByDefault(t *testing.T) {
	stub := &stubEnhancer{}
	p := &Pipeline{Enhancer: stub}
	p.Extract(context.Background(), "some posting text", false, Options{})
	if stub.calls != 0 {
		t.Fatalf("enhancer calls = %d, want 0", stub.calls)
	}
}
