package catalog

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefaultCatalog(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("load default: %v", err)
	}
	if c.Len() != 43 {
		t.Fatalf("expected 43 languages, got %d", c.Len())
	}
	for _, name := range []string{"French", "Welsh", "Vietnamese", "Afrikaans"} {
		if !c.Contains(name) {
			t.Errorf("expected %s in catalog", name)
		}
	}
	if c.Contains("french") || c.Contains("") || c.Contains("Klingon") {
		t.Errorf("membership must be exact")
	}
}

func TestEmbeddedDatasetAnswersAreInCatalog(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatal(err)
	}
	// keep in sync with assets/game_data.csv
	answers := []string{"French", "Welsh", "Finnish", "Swahili", "Georgian", "Tamil", "Icelandic"}
	if missing := c.Missing(answers); len(missing) != 0 {
		t.Fatalf("answers missing from catalog: %v", missing)
	}
}

func TestParseDedupesAndKeepsOrder(t *testing.T) {
	c, err := Parse([]byte("languages:\n  - Welsh\n  - French\n  - Welsh\n  - \"\"\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if diff := cmp.Diff([]string{"Welsh", "French"}, c.Names()); diff != "" {
		t.Fatalf("names (-want +got):\n%s", diff)
	}
}

func TestParseRejectsEmpty(t *testing.T) {
	if _, err := Parse([]byte("languages: []\n")); err == nil {
		t.Fatalf("expected error for empty catalog")
	}
	if _, err := Parse([]byte("languages: [unterminated\n")); err == nil {
		t.Fatalf("expected YAML error")
	}
}

func TestMissing(t *testing.T) {
	c := New("French", "Welsh")
	got := c.Missing([]string{"French", "Klingon", "Welsh", "Klingon", "Elvish"})
	if diff := cmp.Diff([]string{"Klingon", "Elvish"}, got); diff != "" {
		t.Fatalf("missing (-want +got):\n%s", diff)
	}
}

func TestNamesReturnsCopy(t *testing.T) {
	c := New("French", "Welsh")
	n := c.Names()
	n[0] = "Changed"
	if c.Names()[0] != "French" {
		t.Fatalf("Names must not expose internal slice")
	}
}
