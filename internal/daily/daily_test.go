package daily

import (
	"testing"
	"time"

	"github.com/robalobadob/langr/internal/dataset"
)

func TestHashMatchesReferenceValues(t *testing.T) {
	cases := map[string]int32{
		"":           0,
		"a":          97,
		"2024-01-01": -613341632,
		"2024-02-30": -613311749,
		"2025-06-15": 274311039,
		"1999-12-31": -45774139,
	}
	for in, want := range cases {
		if got := Hash(in); got != want {
			t.Errorf("Hash(%q) = %d, want %d", in, got, want)
		}
	}
}

func TestFallbackIndex(t *testing.T) {
	cases := []struct {
		date string
		n    int
		want int
	}{
		{"2024-02-30", 3, 2},
		{"2024-02-30", 5, 4},
		{"2024-02-30", 7, 1},
		{"2025-06-15", 3, 0},
		{"1999-12-31", 7, 5},
		{"anything", 0, 0},
	}
	for _, c := range cases {
		if got := FallbackIndex(c.date, c.n); got != c.want {
			t.Errorf("FallbackIndex(%q, %d) = %d, want %d", c.date, c.n, got, c.want)
		}
	}
}

func TestStableIndexDeterministic(t *testing.T) {
	a := StableIndex("2024-02-30", "salt", 10)
	b := StableIndex("2024-02-30", "salt", 10)
	if a != b || a < 0 || a >= 10 {
		t.Fatalf("unstable or out of range: %d %d", a, b)
	}
	if StableIndex("x", "salt", 0) != 0 {
		t.Fatalf("empty range should map to 0")
	}
}

func TestDateKeyUsesLocation(t *testing.T) {
	ts := time.Date(2024, 1, 1, 23, 30, 0, 0, time.UTC)
	if got := DateKey(ts, time.UTC); got != "2024-01-01" {
		t.Fatalf("UTC: got %s", got)
	}
	east := time.FixedZone("UTC+2", 2*60*60)
	if got := DateKey(ts, east); got != "2024-01-02" {
		t.Fatalf("UTC+2: got %s", got)
	}
}

func TestValidDate(t *testing.T) {
	if !ValidDate("2024-02-29") {
		t.Errorf("leap day should be valid")
	}
	for _, s := range []string{"2024-02-30", "2024-1-1", "", "tomorrow"} {
		if ValidDate(s) {
			t.Errorf("ValidDate(%q) should be false", s)
		}
	}
}

func testIndex() *dataset.Index {
	return dataset.NewIndex([]dataset.Record{
		{Date: "2024-01-01", Language: "French"},
		{Date: "2024-01-02", Language: "Welsh"},
		{Date: "2024-01-03", Language: "Finnish"},
	})
}

func TestResolveExact(t *testing.T) {
	rec, sel, ok := Resolve("2024-01-01", testIndex())
	if !ok || !sel.Exact || rec.Language != "French" {
		t.Fatalf("expected exact French, got %+v %+v ok=%v", rec, sel, ok)
	}
}

func TestResolveFallbackIsDeterministic(t *testing.T) {
	idx := testIndex()
	first, sel, ok := Resolve("2024-02-30", idx)
	if !ok || sel.Exact {
		t.Fatalf("expected fallback, got %+v ok=%v", sel, ok)
	}
	// abs(-613311749) % 3 == 2
	if first.Date != "2024-01-03" || first.Language != "Finnish" {
		t.Fatalf("unexpected fallback: %+v %+v", first, sel)
	}
	for i := 0; i < 5; i++ {
		again, _, _ := Resolve("2024-02-30", idx)
		if again.Date != first.Date {
			t.Fatalf("fallback changed between calls: %s vs %s", again.Date, first.Date)
		}
	}
}

func TestResolveTotality(t *testing.T) {
	idx := testIndex()
	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	for d := 0; d < 800; d++ {
		date := start.AddDate(0, 0, d).Format(DateLayout)
		if _, _, ok := Resolve(date, idx); !ok {
			t.Fatalf("no record for %s", date)
		}
	}
	if _, _, ok := Resolve("2024-01-01", dataset.NewIndex(nil)); ok {
		t.Fatalf("empty index should report ok=false")
	}
}

func TestSelectorStableStrategy(t *testing.T) {
	idx := testIndex()
	sel := NewSelector(idx, StrategyStable, "salt")

	rec, s, ok := sel.Resolve("2024-01-02")
	if !ok || !s.Exact || rec.Language != "Welsh" {
		t.Fatalf("exact match must win under stable strategy: %+v", rec)
	}

	// Reordering rows must not change the stable fallback.
	reordered := dataset.NewIndex([]dataset.Record{
		{Date: "2024-01-03", Language: "Finnish"},
		{Date: "2024-01-01", Language: "French"},
		{Date: "2024-01-02", Language: "Welsh"},
	})
	a, _, _ := sel.Resolve("2030-05-05")
	b, _, _ := NewSelector(reordered, StrategyStable, "salt").Resolve("2030-05-05")
	if a.Date != b.Date {
		t.Fatalf("stable fallback moved with row order: %s vs %s", a.Date, b.Date)
	}
}

func TestParseStrategy(t *testing.T) {
	for in, want := range map[string]Strategy{"": StrategyLoadOrder, "load-order": StrategyLoadOrder, " Stable ": StrategyStable} {
		got, err := ParseStrategy(in)
		if err != nil || got != want {
			t.Errorf("ParseStrategy(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := ParseStrategy("random"); err == nil {
		t.Errorf("expected error for unknown strategy")
	}
}
