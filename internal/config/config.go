// internal/config/config.go
//
// Environment-driven configuration. `.env` files are loaded by main via
// godotenv before Load is called; every key has a development default.
//
// Environment variables:
//   PORT=5175                 HTTP listen port
//   LOG_LEVEL=info            zerolog level
//   DATASET_DB=               SQLite file with a puzzles table
//   DATASET_URL=              URL of delimited dataset text
//   DATASET_FILE=             path of delimited dataset text
//   AUDIO_DIR=                directory served under /audio/
//   TIMEZONE=                 IANA zone for "today" (default: local)
//   FALLBACK_STRATEGY=        load-order | stable
//   DAILY_SALT=               HMAC salt for the stable strategy
//   JWT_SECRET=               session cookie signing key
//   COOKIE_NAME=langr_session
//   CLIENT_ORIGIN=http://localhost:5173
//   NODE_ENV=                 "production" enables Secure cookies

package config

import (
	"fmt"
	"os"
	"time"

	"github.com/robalobadob/langr/internal/daily"
)

// Config is the resolved runtime configuration.
type Config struct {
	Port         string
	LogLevel     string
	DatasetDB    string
	DatasetURL   string
	DatasetFile  string
	AudioDir     string
	Location     *time.Location
	Strategy     daily.Strategy
	Salt         string
	JWTSecret    string
	CookieName   string
	ClientOrigin string
	Production   bool
}

// Load reads the process environment.
func Load() (Config, error) {
	c := Config{
		Port:         GetEnv("PORT", "5175"),
		LogLevel:     GetEnv("LOG_LEVEL", "info"),
		DatasetDB:    os.Getenv("DATASET_DB"),
		DatasetURL:   os.Getenv("DATASET_URL"),
		DatasetFile:  os.Getenv("DATASET_FILE"),
		AudioDir:     os.Getenv("AUDIO_DIR"),
		Location:     time.Local,
		Salt:         GetEnv("DAILY_SALT", "local_dev_salt"),
		JWTSecret:    GetEnv("JWT_SECRET", "dev_secret_change_me"),
		CookieName:   GetEnv("COOKIE_NAME", "langr_session"),
		ClientOrigin: GetEnv("CLIENT_ORIGIN", "http://localhost:5173"),
		Production:   os.Getenv("NODE_ENV") == "production",
	}
	if tz := os.Getenv("TIMEZONE"); tz != "" {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			return c, fmt.Errorf("TIMEZONE: %w", err)
		}
		c.Location = loc
	}
	s, err := daily.ParseStrategy(os.Getenv("FALLBACK_STRATEGY"))
	if err != nil {
		return c, err
	}
	c.Strategy = s
	return c, nil
}

// GetEnv returns the value of k or def if unset/empty.
func GetEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
