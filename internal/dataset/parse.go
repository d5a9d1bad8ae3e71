// internal/dataset/parse.go
//
// Delimited-text parser for the puzzle dataset.
//
// Format:
//   - First non-blank line is the header; column order is free.
//   - A double quote toggles "quoted" mode; commas inside quotes are literal.
//   - Quote characters never survive into values; values are whitespace-trimmed.
//   - Rows whose field count differs from the header are dropped.
//   - Embedded newlines inside quotes are not supported.

package dataset

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

// Parse converts dataset text into records in source order.
// Returns an error wrapping ErrParse if there is no header + data row,
// a required column is missing, or every data row was malformed.
func Parse(text string) ([]Record, error) {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	if len(lines) < 2 {
		return nil, fmt.Errorf("%w: need a header and at least one row, got %d line(s)", ErrParse, len(lines))
	}

	header := strings.Split(lines[0], ",")
	cols := make(map[string]int, len(header))
	for i, h := range header {
		name := strings.ReplaceAll(strings.TrimSpace(h), `"`, "")
		if _, dup := cols[name]; !dup {
			cols[name] = i
		}
	}
	for _, c := range requiredColumns {
		if _, ok := cols[c]; !ok {
			return nil, fmt.Errorf("%w: missing column %q", ErrParse, c)
		}
	}

	out := make([]Record, 0, len(lines)-1)
	dropped := 0
	for n, line := range lines[1:] {
		values := splitLine(line)
		if len(values) != len(header) {
			dropped++
			log.Debug().Int("line", n+2).Int("fields", len(values)).Int("want", len(header)).Msg("dropping malformed dataset row")
			continue
		}
		out = append(out, recordFrom(cols, values))
	}
	if dropped > 0 {
		log.Warn().Int("dropped", dropped).Int("kept", len(out)).Msg("dataset rows dropped")
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: no well-formed rows", ErrParse)
	}
	return out, nil
}

// splitLine splits one row on commas outside of quoted sections.
func splitLine(line string) []string {
	var (
		values   []string
		current  strings.Builder
		inQuotes bool
	)
	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case r == ',' && !inQuotes:
			values = append(values, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}
	return append(values, strings.TrimSpace(current.String()))
}

// recordFrom resolves named columns once so callers never touch raw rows.
func recordFrom(cols map[string]int, values []string) Record {
	get := func(name string) string {
		if i, ok := cols[name]; ok {
			return values[i]
		}
		return ""
	}
	rate, err := strconv.Atoi(get(ColSamplingRate))
	if err != nil {
		rate = 0
	}
	return Record{
		Date:           get(ColDate),
		Language:       get(ColLanguage),
		IPA:            get(ColIPA),
		Translation:    get(ColTranslation),
		Sentence:       get(ColSentence),
		AudioFile:      get(ColWave),
		SamplingRateHz: rate,
		Family:         familyPath(get(ColFamily0), get(ColFamily1), get(ColFamily2)),
	}
}

// familyPath drops trailing empty segments (family_2 is frequently blank).
func familyPath(segments ...string) []string {
	end := len(segments)
	for end > 0 && segments[end-1] == "" {
		end--
	}
	out := make([]string, end)
	copy(out, segments[:end])
	return out
}
