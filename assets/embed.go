// assets/embed.go
//
// Files compiled into the binary:
//   - catalog.yaml:  curated language choices for the guess picker.
//   - game_data.csv: sample dataset used when no external source is configured.
//   - sql/*.sql:     SQLite migrations for the puzzles table.

package assets

import (
	"embed"
	"io/fs"
)

//go:embed catalog.yaml game_data.csv sql/*.sql
var FS embed.FS

// Catalog returns the raw catalog YAML.
func Catalog() ([]byte, error) {
	return FS.ReadFile("catalog.yaml")
}

// SampleDataset returns the embedded delimited-text dataset.
func SampleDataset() (string, error) {
	b, err := FS.ReadFile("game_data.csv")
	return string(b), err
}

// Migrations exposes sql/ as the root of an fs.FS.
func Migrations() fs.FS {
	sub, err := fs.Sub(FS, "sql")
	if err != nil {
		// embed paths are fixed at compile time
		panic(err)
	}
	return sub
}
