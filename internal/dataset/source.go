// internal/dataset/source.go
//
// Dataset sources and the one-shot loader.
//
// Selection behavior (FromEnv):
//   1. DATASET_DB set   → read the `puzzles` table from that SQLite file.
//   2. DATASET_URL set  → fetch delimited text over HTTP.
//   3. DATASET_FILE set → read delimited text from disk.
//   4. otherwise        → the embedded sample dataset.
//
// Every failure is wrapped with ErrLoad; callers treat it as fatal for the
// session and never retry automatically.

package dataset

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/langr/assets"
)

// Source produces dataset records.
type Source interface {
	Load(ctx context.Context) ([]Record, error)
	String() string
}

// Load reads src once and builds the Index. Refuses an empty dataset.
func Load(ctx context.Context, src Source) (*Index, error) {
	rows, err := src.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrLoad, src, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %s: no rows", ErrLoad, src)
	}
	log.Info().Str("source", src.String()).Int("rows", len(rows)).Msg("dataset loaded")
	return NewIndex(rows), nil
}

// FromEnv picks a Source from explicit settings; empty strings are unset.
func FromEnv(dbPath, url, file string) Source {
	switch {
	case dbPath != "":
		return SQLiteSource{Path: dbPath}
	case url != "":
		return URLSource{URL: url}
	case file != "":
		return FileSource{Path: file}
	default:
		return EmbeddedSource{}
	}
}

// FileSource reads delimited text from a local file.
type FileSource struct{ Path string }

func (s FileSource) Load(ctx context.Context) ([]Record, error) {
	b, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, err
	}
	return Parse(string(b))
}

func (s FileSource) String() string { return "file:" + s.Path }

// URLSource fetches delimited text over HTTP(S).
type URLSource struct {
	URL    string
	Client *http.Client // nil → http.DefaultClient
}

func (s URLSource) Load(ctx context.Context) ([]Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, err
	}
	c := s.Client
	if c == nil {
		c = http.DefaultClient
	}
	res, err := c.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, fmt.Errorf("HTTP error! status: %d", res.StatusCode)
	}
	b, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}
	return Parse(string(b))
}

func (s URLSource) String() string { return "url:" + s.URL }

// EmbeddedSource parses the sample dataset compiled into the binary.
type EmbeddedSource struct{}

func (EmbeddedSource) Load(ctx context.Context) ([]Record, error) {
	text, err := assets.SampleDataset()
	if err != nil {
		return nil, err
	}
	return Parse(text)
}

func (EmbeddedSource) String() string { return "embedded:game_data.csv" }
