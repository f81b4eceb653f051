package fields

import "testing"

func TestCompanyLabeled(t *testing.T) {
	got := Company("Company: TechNova Solutions\nOpen role below.")
	if got != "TechNova Solutions" {
		t.Fatalf("Company = %q", got)
	}
}

func TestCompanyPrepositionPhrase(t *testing.T) {
	got := Company("Join us at Acme Corp, where we make everything.")
	if got != "Acme Corp" {
		t.Fatalf("Company = %q", got)
	}
}

func TestCompanyAboutSection(t *testing.T) {
	got := Company("About Initech:\nInitech builds enterprise software.")
	if got != "Initech" {
		t.Fatalf("Company = %q", got)
	}
}

func TestCompanyLegalSuffixScan(t *testing.T) {
	got := Company("Wayne Enterprises Inc announced a new opening today.\n\nDetails below.")
	if got != "Wayne Enterprises Inc" {
		t.Fatalf("Company = %q", got)
	}
}

func TestCompanyNoMatch(t *testing.T) {
	if got := Company("nothing useful here"); got != "" {
		t.Fatalf("Company = %q, want empty", got)
	}
}
