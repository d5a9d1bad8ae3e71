package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/robalobadob/langr/assets"
	"github.com/robalobadob/langr/internal/catalog"
	"github.com/robalobadob/langr/internal/dataset"
	"github.com/robalobadob/langr/internal/game"
)

func TestPlayRoundSolves(t *testing.T) {
	r := game.Start(dataset.Record{Date: "2024-01-01", Language: "French", IPA: "bɔ̃ʒuʁ", AudioFile: "fr.wav", Family: []string{"Indo-European", "Romance"}}, "2024-01-01")
	cat := catalog.New("French", "German")
	in := strings.NewReader("Klingon\nGerman\nGerman\nFrench\n")
	var out bytes.Buffer

	if err := playRound(r, cat, in, &out); err != nil {
		t.Fatalf("play: %v", err)
	}
	if r.Status != game.StatusSolved || r.GuessCount != 2 {
		t.Fatalf("unexpected round: %+v", r)
	}
	for _, want := range []string{"not a language choice", "already guessed", "bɔ̃ʒuʁ", "Langr 2024-01-01 2/6"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestPlayRoundGiveUp(t *testing.T) {
	r := game.Start(dataset.Record{Date: "2024-01-01", Language: "French"}, "2024-01-01")
	var out bytes.Buffer
	if err := playRound(r, catalog.New("French"), strings.NewReader("giveup\n"), &out); err != nil {
		t.Fatal(err)
	}
	if r.Status != game.StatusExhausted || !strings.Contains(out.String(), "The language was French.") {
		t.Fatalf("give up: %s\n%s", r.Status, out.String())
	}
}

func TestMigrateIsIdempotent(t *testing.T) {
	ctx := context.Background()
	db, err := openDB(filepath.Join(t.TempDir(), "data", "langr.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close()

	for i := 0; i < 2; i++ {
		if err := migrate(ctx, db, assets.Migrations()); err != nil {
			t.Fatalf("migrate pass %d: %v", i+1, err)
		}
	}
	var n int
	if err := db.QueryRow(`SELECT COUNT(1) FROM _migrations`).Scan(&n); err != nil || n != 1 {
		t.Fatalf("expected 1 recorded migration, got %d (%v)", n, err)
	}

	rows, err := dataset.EmbeddedSource{}.Load(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := dataset.Save(ctx, db, rows); err != nil {
		t.Fatalf("save: %v", err)
	}
	idx, err := dataset.Load(ctx, dataset.SQLiteSource{DB: db})
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if idx.Len() != len(rows) {
		t.Fatalf("expected %d rows, got %d", len(rows), idx.Len())
	}
}
