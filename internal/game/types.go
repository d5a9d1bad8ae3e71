// internal/game/types.go
//
// Core type definitions for the round state machine.
// Defines:
//   - Status: in_progress → solved | exhausted.
//   - Outcome: result tag of a single SubmitGuess call.
//   - ClueKind / Clue: one revealed clue as handed to presentation.
//   - Round: state for a single in-progress or finished round.

package game

import "github.com/robalobadob/langr/internal/dataset"

const (
	// MaxClues is the number of clues in the reveal sequence.
	MaxClues = 5
	// MaxGuesses is the attempt budget: the 6th incorrect guess ends the round.
	MaxGuesses = 6
	// AudioPathPrefix is prepended to the dataset's audio file name.
	AudioPathPrefix = "assets/audio/"
)

// Status is the coarse state of a round.
type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusSolved     Status = "solved"
	StatusExhausted  Status = "exhausted"
)

// Outcome tags the result of SubmitGuess.
type Outcome string

const (
	OutcomeIgnored            Outcome = "ignored"   // empty name, or round already over
	OutcomeDuplicate          Outcome = "duplicate" // name already guessed; nothing changed
	OutcomeCorrect            Outcome = "correct"
	OutcomeIncorrectContinue  Outcome = "incorrect"
	OutcomeIncorrectExhausted Outcome = "exhausted"
)

// ClueKind identifies a position in the fixed reveal order.
type ClueKind string

const (
	ClueAudio         ClueKind = "audio"
	ClueTranscription ClueKind = "transcription"
	ClueTranslation   ClueKind = "translation"
	ClueFamily        ClueKind = "family"
	ClueSentence      ClueKind = "text"
)

// clueOrder is the reveal sequence; never reordered or randomized.
var clueOrder = [MaxClues]ClueKind{
	ClueAudio, ClueTranscription, ClueTranslation, ClueFamily, ClueSentence,
}

// AudioClip is what the audio widget needs; playback state is not tracked here.
type AudioClip struct {
	Src            string `json:"src"`
	SamplingRateHz int    `json:"samplingRateHz"`
}

// Clue is a revealed clue: a header and renderable text content.
type Clue struct {
	Kind    ClueKind   `json:"kind"`
	Header  string     `json:"header"`
	Content string     `json:"content"`
	Audio   *AudioClip `json:"audio,omitempty"`
}

// Round holds the state of one round. It is owned by exactly one caller and
// replaced, never patched, when the player switches date.
type Round struct {
	Puzzle     dataset.Record // answer and clue material
	Date       string         // date being explored; may differ from today
	ClueCursor int            // clues revealed so far (0..MaxClues)
	GuessCount int            // starts at 1; +1 per incorrect, non-duplicate guess
	Guesses    []string       // submitted names in order, no duplicates
	Status     Status
}
