// internal/game/engine.go
//
// Round state machine for the daily language puzzle.
// Responsibilities:
//   - Start rounds with the audio clue already revealed.
//   - Apply guesses: duplicate rejection, win detection, attempt budget.
//   - Reveal clues strictly in order, at most once each.
//   - Track state transitions: in_progress → solved/exhausted.
//
// Notes:
//   - Catalog membership is NOT checked here; callers validate before submitting.
//   - Once terminal, no call changes the round.
package game

import (
	"fmt"
	"strings"

	"github.com/robalobadob/langr/internal/dataset"
)

// Start constructs a fresh round for puzzle on date and reveals the first clue.
func Start(puzzle dataset.Record, date string) *Round {
	r := &Round{
		Puzzle:     puzzle,
		Date:       date,
		GuessCount: 1,
		Guesses:    []string{},
		Status:     StatusInProgress,
	}
	r.RevealNextClue()
	return r
}

// Terminal reports whether the round has ended.
func (r *Round) Terminal() bool { return r.Status != StatusInProgress }

// RevealNextClue advances the clue cursor by one unless the round is over
// or every clue is already shown.
func (r *Round) RevealNextClue() {
	if r.Terminal() || r.ClueCursor >= MaxClues {
		return
	}
	r.ClueCursor++
}

// SubmitGuess applies one guess and reports what happened.
//
// Rules, in order:
//   - Empty name → ignored.
//   - Already guessed → duplicate (also after the round ended); nothing changes.
//   - Round over → ignored.
//   - Exact match with the answer → solved; GuessCount is not incremented.
//   - GuessCount already at MaxGuesses → exhausted; no clue revealed.
//   - Otherwise reveal the next clue, then increment GuessCount.
func (r *Round) SubmitGuess(name string) Outcome {
	if name == "" {
		return OutcomeIgnored
	}
	if r.hasGuessed(name) {
		return OutcomeDuplicate
	}
	if r.Terminal() {
		return OutcomeIgnored
	}

	r.Guesses = append(r.Guesses, name)

	switch {
	case name == r.Puzzle.Language:
		r.Status = StatusSolved
		return OutcomeCorrect
	case r.GuessCount >= MaxGuesses:
		r.Status = StatusExhausted
		return OutcomeIncorrectExhausted
	default:
		r.RevealNextClue()
		r.GuessCount++
		return OutcomeIncorrectContinue
	}
}

// GiveUp ends an in-progress round as exhausted without recording a guess.
func (r *Round) GiveUp() {
	if r.Terminal() {
		return
	}
	r.Status = StatusExhausted
}

// Clues returns the revealed clues in reveal order.
func (r *Round) Clues() []Clue {
	out := make([]Clue, 0, r.ClueCursor)
	for _, k := range clueOrder[:r.ClueCursor] {
		out = append(out, buildClue(k, r.Puzzle))
	}
	return out
}

// Answer returns the target language once the round is over, else "".
func (r *Round) Answer() string {
	if !r.Terminal() {
		return ""
	}
	return r.Puzzle.Language
}

// Summary is the share line for a finished round, e.g. "Langr 2025-01-01 2/6".
// Returns "" while the round is in progress.
func (r *Round) Summary() string {
	switch r.Status {
	case StatusSolved:
		return fmt.Sprintf("Langr %s %d/%d", r.Date, r.GuessCount, MaxGuesses)
	case StatusExhausted:
		return fmt.Sprintf("Langr %s X/%d", r.Date, MaxGuesses)
	}
	return ""
}

func (r *Round) hasGuessed(name string) bool {
	for _, g := range r.Guesses {
		if g == name {
			return true
		}
	}
	return false
}

// buildClue renders one clue's header and content from the puzzle.
func buildClue(k ClueKind, p dataset.Record) Clue {
	switch k {
	case ClueAudio:
		return Clue{
			Kind:    k,
			Header:  "🔊 Audio Clue",
			Content: fmt.Sprintf("Sample rate: %d Hz", p.SamplingRateHz),
			Audio:   &AudioClip{Src: AudioPathPrefix + p.AudioFile, SamplingRateHz: p.SamplingRateHz},
		}
	case ClueTranscription:
		return Clue{Kind: k, Header: "👂 Phonetic Transcription", Content: p.IPA}
	case ClueTranslation:
		return Clue{Kind: k, Header: "🔤 English Translation", Content: p.Translation}
	case ClueFamily:
		return Clue{Kind: k, Header: "🌳 Language Family", Content: strings.Join(p.Family, " → ")}
	default:
		return Clue{Kind: ClueSentence, Header: "📝 Original Text", Content: p.Sentence}
	}
}
