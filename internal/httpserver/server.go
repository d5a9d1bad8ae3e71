// internal/httpserver/server.go
//
// HTTP server wiring for the Langr backend.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health", "/catalog", "/dates".
//   - Round endpoints: mounted under /round (see routes_round.go).
//   - Session cookie: a signed JWT carrying a random session ID.
//   - Optional static audio under /audio/.
//
// Notes:
//   - CORS is origin‑aware and credentials‑enabled (so cookies work).
//   - Sessions are anonymous; a missing or invalid cookie mints a new one.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/langr/internal/catalog"
	"github.com/robalobadob/langr/internal/config"
	"github.com/robalobadob/langr/internal/daily"
	"github.com/robalobadob/langr/internal/dataset"
	"github.com/robalobadob/langr/internal/store"
)

const sessionTTL = 180 * 24 * time.Hour

// Deps are the collaborators a Server needs. Index must be loaded.
type Deps struct {
	Store    store.Store
	Index    *dataset.Index
	Selector *daily.Selector
	Catalog  *catalog.Catalog
	Config   config.Config
	Now      func() time.Time // nil → time.Now
}

// Server bundles router and game collaborators.
type Server struct {
	r   *chi.Mux
	d   Deps
	cfg config.Config
}

// New constructs a Server, installs middleware, and registers routes.
func New(d Deps) *Server {
	if d.Now == nil {
		d.Now = time.Now
	}
	s := &Server{r: chi.NewRouter(), d: d, cfg: d.Config}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(s.corsFromConfig)                // credentials-friendly CORS

	// --- audio (raw files, not JSON) ---
	if s.cfg.AudioDir != "" {
		fs := http.StripPrefix("/audio/", http.FileServer(http.Dir(s.cfg.AudioDir)))
		s.r.Handle("/audio/*", fs)
	}

	s.r.Group(func(r chi.Router) {
		r.Use(jsonContentType) // default JSON responses

		// --- diagnostics ---
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"service":"langr-go","endpoints":["/health","/catalog","/dates","POST /round/new","POST /round/guess","POST /round/giveup","/round","/round/share"]}`))
		})
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"ok":true}`))
		})

		r.Get("/catalog", s.handleCatalog)
		r.Get("/dates", s.handleDates)

		// Rounds are per anonymous session.
		s.mountRound(r.With(s.withSession))

		// JSON 404 for easier debugging
		r.NotFound(func(w http.ResponseWriter, r *http.Request) {
			writeError(w, http.StatusNotFound, "not_found")
		})
	})

	return s
}

// Start begins serving HTTP on addr until ctx is cancelled.
func (s *Server) Start(ctx context.Context, addr string) error {
	hs := &http.Server{Addr: addr, Handler: s.r, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		<-ctx.Done()
		shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = hs.Shutdown(shutdown)
	}()
	if err := hs.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// today is the current calendar date in the configured zone.
func (s *Server) today() string { return daily.DateKey(s.d.Now(), s.cfg.Location) }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// corsFromConfig enables credentialed CORS for a single origin.
func (s *Server) corsFromConfig(next http.Handler) http.Handler {
	origin := s.cfg.ClientOrigin
	if origin == "" {
		origin = "http://localhost:5173"
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ------------------------------ sessions -----------------------------------

// ctxSessionKey is the context key type for the session ID.
type ctxSessionKey struct{}

// withSession resolves the session ID from a bearer token or cookie,
// minting and setting a new one when absent or invalid.
func (s *Server) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := s.parseSession(bearerOrCookie(r, s.cookieName()))
		if err != nil {
			id = uuid.NewString()
			tok, err := s.signSession(id)
			if err != nil {
				log.Error().Err(err).Msg("sign session")
				writeError(w, http.StatusInternalServerError, "session_failed")
				return
			}
			s.setSessionCookie(w, tok)
		}
		ctx := context.WithValue(r.Context(), ctxSessionKey{}, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// sessionID returns the ID installed by withSession.
func sessionID(r *http.Request) string {
	id, _ := r.Context().Value(ctxSessionKey{}).(string)
	return id
}

// signSession creates an HS256 JWT whose subject is the session ID.
func (s *Server) signSession(id string) (string, error) {
	now := s.d.Now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   id,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(sessionTTL)),
	})
	return t.SignedString([]byte(s.cfg.JWTSecret))
}

// parseSession verifies tok and returns its subject.
func (s *Server) parseSession(tok string) (string, error) {
	if tok == "" {
		return "", errors.New("no session")
	}
	claims := &jwt.RegisteredClaims{}
	t, err := jwt.ParseWithClaims(tok, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.JWTSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.d.Now))
	if err != nil || !t.Valid {
		return "", errors.New("invalid session")
	}
	if _, err := uuid.Parse(claims.Subject); err != nil {
		return "", errors.New("invalid session")
	}
	return claims.Subject, nil
}

func (s *Server) cookieName() string {
	if s.cfg.CookieName == "" {
		return "langr_session"
	}
	return s.cfg.CookieName
}

// setSessionCookie writes the session cookie with appropriate security attributes.
// Lifetime is relative (Max-Age) so clients age it by their own clock.
func (s *Server) setSessionCookie(w http.ResponseWriter, token string) {
	sameSite := http.SameSiteLaxMode
	if s.cfg.Production {
		sameSite = http.SameSiteNoneMode // required for third‑party contexts when Secure
	}
	http.SetCookie(w, &http.Cookie{
		Name:     s.cookieName(),
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.cfg.Production,
		SameSite: sameSite,
		MaxAge:   int(sessionTTL / time.Second),
	})
}

// bearerOrCookie extracts a bearer token from Authorization header or the session cookie.
func bearerOrCookie(r *http.Request, cookie string) string {
	// Authorization: Bearer <token>
	if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	if c, err := r.Cookie(cookie); err == nil {
		return c.Value
	}
	return ""
}

// ------------------------------- public ------------------------------------

// handleCatalog lists the selectable languages.
func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	_ = json.NewEncoder(w).Encode(map[string][]string{"languages": s.d.Catalog.Names()})
}

type datesRes struct {
	Today string   `json:"today"`
	Dates []string `json:"dates"`
}

// handleDates lists the explorable dates (dataset dates up to today).
func (s *Server) handleDates(w http.ResponseWriter, r *http.Request) {
	today := s.today()
	_ = json.NewEncoder(w).Encode(datesRes{Today: today, Dates: s.d.Index.DatesAtOrBefore(today)})
}

// ------------------------------- small util --------------------------------

// writeError writes {"error": code} with status.
func writeError(w http.ResponseWriter, status int, code string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": code})
}
