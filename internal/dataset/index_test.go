package dataset

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func sampleRows() []Record {
	return []Record{
		{Date: "2024-01-03", Language: "Welsh"},
		{Date: "2024-01-01", Language: "French"},
		{Date: "2024-01-02", Language: "Finnish"},
		{Date: "2024-01-01", Language: "German"}, // duplicate date
		{Date: "2024-02-01", Language: "Tamil"},
	}
}

func TestIndexFindByDate(t *testing.T) {
	idx := NewIndex(sampleRows())

	r, ok := idx.FindByDate("2024-01-01")
	if !ok || r.Language != "French" {
		t.Fatalf("expected first row for duplicate date, got %+v ok=%v", r, ok)
	}
	if _, ok := idx.FindByDate("2023-12-31"); ok {
		t.Fatalf("expected no row for missing date")
	}
	if idx.Len() != 5 {
		t.Fatalf("duplicate rows stay in load order: want 5, got %d", idx.Len())
	}
	if idx.At(0).Language != "Welsh" {
		t.Fatalf("At(0) should follow load order, got %s", idx.At(0).Language)
	}
}

func TestIndexDatesAtOrBefore(t *testing.T) {
	idx := NewIndex(sampleRows())

	cases := []struct {
		until string
		want  []string
	}{
		{"2023-12-31", []string{}},
		{"2024-01-01", []string{"2024-01-01"}},
		{"2024-01-15", []string{"2024-01-01", "2024-01-02", "2024-01-03"}},
		{"2099-01-01", []string{"2024-01-01", "2024-01-02", "2024-01-03", "2024-02-01"}},
	}
	for _, c := range cases {
		got := idx.DatesAtOrBefore(c.until)
		if diff := cmp.Diff(c.want, got); diff != "" {
			t.Errorf("DatesAtOrBefore(%s) (-want +got):\n%s", c.until, diff)
		}
	}
}
