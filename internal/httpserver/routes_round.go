// internal/httpserver/routes_round.go
//
// HTTP routes for playing a round.
// Exposes endpoints under /round:
//   - POST /round/new    → start (or restart) a round for today or an explored date
//   - GET  /round        → current round view
//   - POST /round/guess  → submit a language guess
//   - POST /round/giveup → end the round without solving it
//   - GET  /round/share  → share line for a finished round
//
// Each session owns at most one round; starting a new one replaces it.

package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"slices"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/langr/internal/daily"
	"github.com/robalobadob/langr/internal/game"
	"github.com/robalobadob/langr/internal/store"
)

// mountRound registers all /round routes.
func (s *Server) mountRound(r chi.Router) {
	r.Route("/round", func(r chi.Router) {
		r.Get("/", s.handleRound)
		r.Post("/new", s.handleNewRound)
		r.Post("/guess", s.handleGuess)
		r.Post("/giveup", s.handleGiveUp)
		r.Get("/share", s.handleShare)
	})
}

// roundView is the presentation payload for a round.
type roundView struct {
	Date        string      `json:"date"`
	Exact       bool        `json:"exact"`
	Clues       []game.Clue `json:"clues"`
	GuessCount  int         `json:"guessCount"`
	MaxGuesses  int         `json:"maxGuesses"`
	Guesses     []string    `json:"guesses"`
	Status      game.Status `json:"status"`
	Terminal    bool        `json:"terminal"`
	Answer      string      `json:"answer,omitempty"` // only once terminal
	Summary     string      `json:"summary,omitempty"`
	FallbackFor string      `json:"fallbackFor,omitempty"` // dataset date actually played, when not exact
}

func viewOf(r game.Round) roundView {
	v := roundView{
		Date:       r.Date,
		Exact:      r.Puzzle.Date == r.Date,
		Clues:      r.Clues(),
		GuessCount: r.GuessCount,
		MaxGuesses: game.MaxGuesses,
		Guesses:    r.Guesses,
		Status:     r.Status,
		Terminal:   r.Terminal(),
		Answer:     r.Answer(),
		Summary:    r.Summary(),
	}
	if !v.Exact && v.Terminal {
		v.FallbackFor = r.Puzzle.Date
	}
	return v
}

// -----------------------------------------------------------------------------
// /round/new

type newRoundReq struct {
	Date string `json:"date"` // optional; defaults to today
}

// handleNewRound resolves the date to a puzzle and replaces the session's round.
// Explored dates must be dataset dates not after today.
func (s *Server) handleNewRound(w http.ResponseWriter, r *http.Request) {
	var req newRoundReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	today := s.today()
	date := strings.TrimSpace(req.Date)
	if date == "" {
		date = today
	}
	if date != today {
		if !daily.ValidDate(date) || !slices.Contains(s.d.Index.DatesAtOrBefore(today), date) {
			writeError(w, http.StatusBadRequest, "date_unavailable")
			return
		}
	}

	puzzle, sel, ok := s.d.Selector.Resolve(date)
	if !ok {
		writeError(w, http.StatusServiceUnavailable, "no_dataset")
		return
	}
	round := game.Start(puzzle, date)
	view := viewOf(*round) // before Replace hands the round to other requests
	view.Exact = sel.Exact
	sid := sessionID(r)
	if err := s.d.Store.Replace(r.Context(), sid, round); err != nil {
		writeStoreError(w, err)
		return
	}
	log.Debug().Str("session", sid).Str("date", date).Bool("exact", sel.Exact).Msg("round started")

	_ = json.NewEncoder(w).Encode(view)
}

// -----------------------------------------------------------------------------
// /round

func (s *Server) handleRound(w http.ResponseWriter, r *http.Request) {
	snap, err := s.d.Store.Get(r.Context(), sessionID(r))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(viewOf(snap))
}

// -----------------------------------------------------------------------------
// /round/guess

type guessReq struct {
	Language string `json:"language"`
}

type guessRes struct {
	Outcome game.Outcome `json:"outcome"`
	Round   roundView    `json:"round"`
}

// handleGuess validates catalog membership then applies the guess.
// Duplicate and post-terminal guesses are outcomes, not errors.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	if req.Language == "" || !s.d.Catalog.Contains(req.Language) {
		writeError(w, http.StatusBadRequest, "not_in_catalog")
		return
	}

	var outcome game.Outcome
	snap, err := s.d.Store.Update(r.Context(), sessionID(r), func(g *game.Round) {
		outcome = g.SubmitGuess(req.Language)
	})
	if err != nil {
		writeStoreError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(guessRes{Outcome: outcome, Round: viewOf(snap)})
}

// -----------------------------------------------------------------------------
// /round/giveup

func (s *Server) handleGiveUp(w http.ResponseWriter, r *http.Request) {
	snap, err := s.d.Store.Update(r.Context(), sessionID(r), func(g *game.Round) { g.GiveUp() })
	if err != nil {
		writeStoreError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(viewOf(snap))
}

// -----------------------------------------------------------------------------
// /round/share

func (s *Server) handleShare(w http.ResponseWriter, r *http.Request) {
	snap, err := s.d.Store.Get(r.Context(), sessionID(r))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if !snap.Terminal() {
		writeError(w, http.StatusConflict, "in_progress")
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]string{"summary": snap.Summary()})
}

func writeStoreError(w http.ResponseWriter, err error) {
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "no_round")
		return
	}
	log.Error().Err(err).Msg("round store")
	writeError(w, http.StatusInternalServerError, "store_failed")
}
