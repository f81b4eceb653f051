package fields

import "testing"

func TestLocationRemote(t *testing.T) {
	cases := []string{
		"This is a fully remote position.",
		"Work from home with flexible hours.",
		"100% remote, async-first team.",
	}
	for _, text := range cases {
		if got := Location(text); got != "Remote" {
			t.Errorf("Location(%q) = %q, want Remote", text, got)
		}
	}
}

func TestLocationHybrid(t *testing.T) {
	got := Location("Hybrid schedule: three days in the office.")
	if got != "Hybrid" {
		t.Fatalf("Location = %q, want Hybrid", got)
	}
}

func TestLocationLabeled(t *testing.T) {
	got := Location("Location: Bangalore\nCome join the team.")
	if got != "Bangalore" {
		t.Fatalf("Location = %q", got)
	}
}

func TestLocationBasedIn(t *testing.T) {
	got := Location("The team is based in Amsterdam. Apply below.")
	if got != "Amsterdam" {
		t.Fatalf("Location = %q", got)
	}
}

func TestLocationOfficePhrase(t *testing.T) {
	got := Location("Candidates will join the Austin office next quarter.")
	if got != "Austin" {
		t.Fatalf("Location = %q", got)
	}
}

func TestLocationRemoteBeatsLabel(t *testing.T) {
	got := Location("Location: Pune\nThis role can also be fully remote.")
	if got != "Remote" {
		t.Fatalf("Location = %q, want Remote", got)
	}
}

func TestLocationNoMatch(t *testing.T) {
	if got := Location("a role that never says where"); got != "" {
		t.Fatalf("Location = %q, want empty", got)
	}
}
