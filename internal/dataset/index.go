// internal/dataset/index.go
//
// Read-only, in-memory index over loaded puzzle rows: exact lookup by date,
// ascending date listing, and positional access in load order.

package dataset

import (
	"sort"

	"github.com/rs/zerolog/log"
)

// Index is the in-memory, read-only collection of puzzle records.
// Row order is load order; fallback selection depends on it.
type Index struct {
	rows   []Record
	byDate map[string]int
	dates  []string // unique dates, ascending
}

// NewIndex builds an Index. For duplicate dates the first row wins for
// exact lookups, but every row stays in Rows().
func NewIndex(rows []Record) *Index {
	idx := &Index{
		rows:   rows,
		byDate: make(map[string]int, len(rows)),
	}
	for i, r := range rows {
		if _, dup := idx.byDate[r.Date]; dup {
			log.Warn().Str("date", r.Date).Int("row", i).Msg("duplicate dataset date ignored for lookup")
			continue
		}
		idx.byDate[r.Date] = i
		idx.dates = append(idx.dates, r.Date)
	}
	sort.Strings(idx.dates)
	return idx
}

// FindByDate returns the record keyed by date, if any.
func (x *Index) FindByDate(date string) (Record, bool) {
	i, ok := x.byDate[date]
	if !ok {
		return Record{}, false
	}
	return x.rows[i], true
}

// DatesAtOrBefore lists dataset dates <= date in ascending order.
// ISO dates compare correctly as strings.
func (x *Index) DatesAtOrBefore(date string) []string {
	n := sort.Search(len(x.dates), func(i int) bool { return x.dates[i] > date })
	out := make([]string, n)
	copy(out, x.dates[:n])
	return out
}

// Dates lists every unique dataset date in ascending order.
func (x *Index) Dates() []string {
	out := make([]string, len(x.dates))
	copy(out, x.dates)
	return out
}

// Rows returns the records in load order.
func (x *Index) Rows() []Record { return x.rows }

// Len reports the number of rows (including rows shadowed by duplicate dates).
func (x *Index) Len() int { return len(x.rows) }

// At returns the row at position i in load order.
func (x *Index) At(i int) Record { return x.rows[i] }
