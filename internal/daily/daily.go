// internal/daily/daily.go
//
// Calendar-date keys and the deterministic date → row index functions used
// when the dataset has no row for a requested date.

package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
	"unicode/utf16"
)

// DateLayout is the calendar-date key format used throughout the dataset.
const DateLayout = "2006-01-02"

// DateKey returns YYYY-MM-DD for t as seen in loc (nil → time.Local).
func DateKey(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format(DateLayout)
}

// Today returns the current calendar date in loc.
func Today(loc *time.Location) string { return DateKey(time.Now(), loc) }

// ValidDate reports whether s is a real YYYY-MM-DD calendar date.
func ValidDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// Hash folds s into a signed 32-bit value with h = h*31 + c over UTF-16
// code units, wrapping on overflow.
func Hash(s string) int32 {
	var h int32
	for _, c := range utf16.Encode([]rune(s)) {
		h = h*31 + int32(c)
	}
	return h
}

// FallbackIndex maps date to a row position in [0, n): abs(Hash) mod n.
// The result depends on n, so it changes when rows are added or removed.
func FallbackIndex(date string, n int) int {
	if n <= 0 {
		return 0
	}
	h := int64(Hash(date))
	if h < 0 {
		h = -h
	}
	return int(h % int64(n))
}

// StableIndex returns a deterministic index for a date using
// HMAC(salt, date) % n. Paired with a sorted date list it does not depend
// on row order.
func StableIndex(date, salt string, n int) int {
	if n <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(date))
	sum := h.Sum(nil)
	// first 8 bytes → uint64 for modulus distribution
	v := binary.BigEndian.Uint64(sum[:8])
	return int(v % uint64(n))
}
