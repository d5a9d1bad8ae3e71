package dataset

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

const twoRows = header + "\n" +
	"2024-01-01,French,a,b,c,fr.wav,48000,Indo-European,Romance,\n" +
	"2024-01-02,Welsh,a,b,c,cy.wav,48000,Indo-European,Celtic,Brythonic\n"

func TestFileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game_data.csv")
	if err := os.WriteFile(path, []byte(twoRows), 0o644); err != nil {
		t.Fatal(err)
	}
	idx, err := Load(context.Background(), FileSource{Path: path})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if idx.Len() != 2 {
		t.Fatalf("expected 2 rows, got %d", idx.Len())
	}
}

func TestFileSourceMissingIsLoadError(t *testing.T) {
	_, err := Load(context.Background(), FileSource{Path: filepath.Join(t.TempDir(), "nope.csv")})
	if !errors.Is(err, ErrLoad) {
		t.Fatalf("expected ErrLoad, got %v", err)
	}
}

func TestURLSource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/game_data.csv" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(twoRows))
	}))
	defer srv.Close()

	idx, err := Load(context.Background(), URLSource{URL: srv.URL + "/game_data.csv"})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if r, ok := idx.FindByDate("2024-01-02"); !ok || r.Language != "Welsh" {
		t.Fatalf("unexpected lookup: %+v ok=%v", r, ok)
	}

	_, err = Load(context.Background(), URLSource{URL: srv.URL + "/missing.csv"})
	if !errors.Is(err, ErrLoad) {
		t.Fatalf("expected ErrLoad on 404, got %v", err)
	}
}

func TestParseFailureIsLoadError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(header + "\n"))
	}))
	defer srv.Close()

	_, err := Load(context.Background(), URLSource{URL: srv.URL})
	if !errors.Is(err, ErrLoad) || !errors.Is(err, ErrParse) {
		t.Fatalf("expected ErrLoad wrapping ErrParse, got %v", err)
	}
}

func TestEmbeddedSource(t *testing.T) {
	idx, err := Load(context.Background(), EmbeddedSource{})
	if err != nil {
		t.Fatalf("load embedded: %v", err)
	}
	if idx.Len() == 0 {
		t.Fatalf("embedded dataset is empty")
	}
	for _, r := range idx.Rows() {
		if r.Language == "" || r.Date == "" || len(r.Family) < 2 {
			t.Errorf("incomplete embedded row: %+v", r)
		}
	}
}

func TestFromEnvPrecedence(t *testing.T) {
	cases := []struct {
		db, url, file string
		want          string
	}{
		{"x.db", "http://h/d.csv", "d.csv", "sqlite:x.db"},
		{"", "http://h/d.csv", "d.csv", "url:http://h/d.csv"},
		{"", "", "d.csv", "file:d.csv"},
		{"", "", "", "embedded:game_data.csv"},
	}
	for _, c := range cases {
		if got := FromEnv(c.db, c.url, c.file).String(); got != c.want {
			t.Errorf("FromEnv(%q,%q,%q) = %s, want %s", c.db, c.url, c.file, got, c.want)
		}
	}
}
