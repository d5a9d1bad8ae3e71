// internal/daily/selector.go
//
// Puzzle selection: resolves any date string to exactly one dataset record.
//
// Policy:
//   1. Exact date match → that record.
//   2. Otherwise a deterministic fallback chosen by Strategy:
//        - load-order (default): FallbackIndex(date, rowCount) into the rows
//          as loaded. Moves when rows are inserted or removed.
//        - stable: StableIndex(date, salt, dateCount) into the sorted unique
//          date list. Survives reordering of the source rows.
//
// Falling back is never an error; it is logged at info.

package daily

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/langr/internal/dataset"
)

// Strategy names a fallback policy.
type Strategy string

const (
	StrategyLoadOrder Strategy = "load-order"
	StrategyStable    Strategy = "stable"
)

// ParseStrategy accepts the config spelling of a Strategy ("" → load-order).
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(strings.ToLower(strings.TrimSpace(s))) {
	case "", StrategyLoadOrder:
		return StrategyLoadOrder, nil
	case StrategyStable:
		return StrategyStable, nil
	}
	return "", fmt.Errorf("daily: unknown fallback strategy %q", s)
}

// Selection describes how a record was chosen.
type Selection struct {
	Date  string `json:"date"`  // requested date
	Exact bool   `json:"exact"` // true when the dataset has a row for Date
}

// Selector resolves dates against one Index.
type Selector struct {
	idx      *dataset.Index
	strategy Strategy
	salt     string
}

// NewSelector binds a selector to idx. salt is used only by StrategyStable.
func NewSelector(idx *dataset.Index, strategy Strategy, salt string) *Selector {
	if strategy == "" {
		strategy = StrategyLoadOrder
	}
	return &Selector{idx: idx, strategy: strategy, salt: salt}
}

// Resolve returns the record to play for date. ok is false only when the
// index is empty.
func (s *Selector) Resolve(date string) (dataset.Record, Selection, bool) {
	if s.strategy == StrategyStable {
		return resolveStable(s.idx, date, s.salt)
	}
	return Resolve(date, s.idx)
}

// Resolve applies the default load-order policy.
func Resolve(date string, idx *dataset.Index) (dataset.Record, Selection, bool) {
	if idx == nil || idx.Len() == 0 {
		return dataset.Record{}, Selection{Date: date}, false
	}
	if rec, ok := idx.FindByDate(date); ok {
		return rec, Selection{Date: date, Exact: true}, true
	}
	pos := FallbackIndex(date, idx.Len())
	rec := idx.At(pos)
	log.Info().Str("date", date).Int("position", pos).Str("fallbackDate", rec.Date).Msg("no row for date; using fallback")
	return rec, Selection{Date: date}, true
}

func resolveStable(idx *dataset.Index, date, salt string) (dataset.Record, Selection, bool) {
	if idx == nil || idx.Len() == 0 {
		return dataset.Record{}, Selection{Date: date}, false
	}
	if rec, ok := idx.FindByDate(date); ok {
		return rec, Selection{Date: date, Exact: true}, true
	}
	dates := idx.Dates()
	pos := StableIndex(date, salt, len(dates))
	rec, _ := idx.FindByDate(dates[pos])
	log.Info().Str("date", date).Int("position", pos).Str("fallbackDate", rec.Date).Msg("no row for date; using stable fallback")
	return rec, Selection{Date: date}, true
}
