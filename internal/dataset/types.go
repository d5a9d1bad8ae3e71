// internal/dataset/types.go
//
// Core type definitions for the puzzle dataset.
// Defines:
//   - Record: one dated puzzle row (answer language + clue material).
//   - Error sentinels shared by the parser and every Source.

package dataset

import "errors"

// Column names expected in the dataset header.
const (
	ColDate         = "date"
	ColLanguage     = "language"
	ColIPA          = "IPA"
	ColTranslation  = "translation"
	ColSentence     = "sentence"
	ColWave         = "wave"
	ColSamplingRate = "sampling_rate"
	ColFamily0      = "family_0"
	ColFamily1      = "family_1"
	ColFamily2      = "family_2" // optional
)

// requiredColumns must all be present in the header row.
var requiredColumns = []string{
	ColDate, ColLanguage, ColIPA, ColTranslation, ColSentence,
	ColWave, ColSamplingRate, ColFamily0, ColFamily1,
}

var (
	// ErrParse reports a source whose text cannot produce any usable rows.
	ErrParse = errors.New("dataset: parse error")
	// ErrLoad wraps every failure to obtain the dataset (I/O, HTTP, parse, DB).
	ErrLoad = errors.New("dataset: load failed")
)

// Record is one row of the dataset for one calendar date.
// Records are created once at load time and never mutated afterwards.
type Record struct {
	Date           string   `json:"date"`           // "YYYY-MM-DD", unique within an Index
	Language       string   `json:"language"`       // canonical answer
	IPA            string   `json:"ipa"`            // phonetic transcription
	Translation    string   `json:"translation"`    // English translation of Sentence
	Sentence       string   `json:"sentence"`       // original-language text
	AudioFile      string   `json:"audioFile"`      // file name under the audio directory
	SamplingRateHz int      `json:"samplingRateHz"` // 0 if the source value was not an integer
	Family         []string `json:"family"`         // broad → narrow, trailing empties dropped
}
