// internal/catalog/catalog.go
//
// Language catalog: the fixed, curated set of selectable language names.
//
// Responsibilities:
//   - Load the embedded catalog.yaml exactly once (sync.Once).
//   - Answer membership queries for guess validation (exact, case-sensitive).
//   - Report dataset answers that the catalog cannot produce.
//
// The catalog is a superset of every possible answer; membership is checked
// by callers before a guess reaches a round.

package catalog

import (
	"errors"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/robalobadob/langr/assets"
)

type file struct {
	Languages []string `yaml:"languages"`
}

// Catalog is an immutable, ordered set of language names.
type Catalog struct {
	names []string
	set   map[string]struct{}
}

var (
	initOnce   sync.Once
	defaultCat *Catalog
	initialErr error
)

// Default returns the embedded catalog, loading it on first use.
func Default() (*Catalog, error) {
	initOnce.Do(func() {
		raw, err := assets.Catalog()
		if err != nil {
			initialErr = err
			return
		}
		defaultCat, initialErr = Parse(raw)
	})
	return defaultCat, initialErr
}

// Parse decodes catalog YAML. Blank and repeated names are dropped;
// curated order is preserved.
func Parse(raw []byte) (*Catalog, error) {
	var f file
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	c := New(f.Languages...)
	if c.Len() == 0 {
		return nil, errors.New("catalog: languages list is empty")
	}
	return c, nil
}

// New builds a catalog from names.
func New(names ...string) *Catalog {
	c := &Catalog{set: make(map[string]struct{}, len(names))}
	for _, n := range names {
		if n == "" {
			continue
		}
		if _, ok := c.set[n]; ok {
			continue
		}
		c.set[n] = struct{}{}
		c.names = append(c.names, n)
	}
	return c
}

// Names returns a copy of the languages in curated order.
func (c *Catalog) Names() []string { return append([]string(nil), c.names...) }

// Contains reports whether name is selectable.
func (c *Catalog) Contains(name string) bool {
	_, ok := c.set[name]
	return ok
}

// Len returns the number of languages.
func (c *Catalog) Len() int { return len(c.names) }

// Missing returns answers not present in the catalog, deduplicated, in input order.
func (c *Catalog) Missing(answers []string) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, a := range answers {
		if c.Contains(a) {
			continue
		}
		if _, ok := seen[a]; ok {
			continue
		}
		seen[a] = struct{}{}
		out = append(out, a)
	}
	return out
}
