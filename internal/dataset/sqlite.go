// internal/dataset/sqlite.go
//
// SQLite persistence for the dataset (`puzzles` table).
// The schema lives in assets/sql and is applied by the CLI's migrate step.
// Family segments are stored as three nullable-as-empty columns, matching
// the delimited-text layout.

package dataset

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteSource reads every row of the `puzzles` table, ordered by id
// so load order is import order.
type SQLiteSource struct {
	Path string
	DB   *sql.DB // optional pre-opened handle; takes precedence over Path
}

func (s SQLiteSource) Load(ctx context.Context) ([]Record, error) {
	db := s.DB
	if db == nil {
		var err error
		db, err = sql.Open("sqlite3", s.Path+"?_busy_timeout=5000")
		if err != nil {
			return nil, err
		}
		defer db.Close()
	}
	return ReadAll(ctx, db)
}

func (s SQLiteSource) String() string { return "sqlite:" + s.Path }

// ReadAll loads all puzzles from db in import order.
func ReadAll(ctx context.Context, db *sql.DB) ([]Record, error) {
	rows, err := db.QueryContext(ctx, `
        SELECT date, language, ipa, translation, sentence, wave, sampling_rate,
               family_0, family_1, family_2
        FROM puzzles
        ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("query puzzles: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var (
			r          Record
			f0, f1, f2 string
		)
		if err := rows.Scan(&r.Date, &r.Language, &r.IPA, &r.Translation, &r.Sentence,
			&r.AudioFile, &r.SamplingRateHz, &f0, &f1, &f2); err != nil {
			return nil, err
		}
		r.Family = familyPath(f0, f1, f2)
		out = append(out, r)
	}
	return out, rows.Err()
}

// Save replaces the table contents with records, in order, inside one
// transaction. Rows are never merged by date, so a database import resolves
// exactly like the file it came from.
func Save(ctx context.Context, db *sql.DB, records []Record) (int, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM puzzles`); err != nil {
		return 0, fmt.Errorf("clear puzzles: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx, `
        INSERT INTO puzzles
            (date, language, ipa, translation, sentence, wave, sampling_rate, family_0, family_1, family_2)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		fam := [3]string{}
		copy(fam[:], r.Family)
		if _, err := stmt.ExecContext(ctx, r.Date, r.Language, r.IPA, r.Translation, r.Sentence,
			r.AudioFile, r.SamplingRateHz, fam[0], fam[1], fam[2]); err != nil {
			return 0, fmt.Errorf("insert %s: %w", r.Date, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return len(records), nil
}
