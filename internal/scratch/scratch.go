// Package scratch handles ephemeral SQLite staging of classified characters.
//
// The store lives in memory for the duration of one run and leaves no
// artifact on disk; the pipeline works without it.
package scratch

import (
	"context"
	"database/sql"

	"github.com/ldwg/diacritica/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Store wraps an in-memory SQLite database used as a per-run scratch pad.
type Store struct {
	db *sql.DB
}

// Open creates the in-memory database and applies the schema.
func Open() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, err
	}
	// A second pool connection would see a fresh empty database.
	db.SetMaxOpenConns(1)
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close discards the database and everything staged in it.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS characters (
			id INTEGER PRIMARY KEY,
			codepoint INTEGER NOT NULL,
			name TEXT NOT NULL,
			category TEXT NOT NULL,
			script TEXT NOT NULL,
			decomposition TEXT NOT NULL,
			qualifying INTEGER NOT NULL,
			diacritic_count INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_characters_count ON characters(diacritic_count);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// InsertRecord stages one classified character.
func (s *Store) InsertRecord(ctx context.Context, rec model.DecompositionRecord) error {
	qualifying := 0
	if rec.Qualifying {
		qualifying = 1
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO characters (codepoint, name, category, script, decomposition, qualifying, diacritic_count)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		int64(rec.CodePoint),
		rec.Meta.Name,
		rec.Meta.Category,
		rec.Meta.Script,
		string(rec.CanonicalDecomposition),
		qualifying,
		rec.DiacriticCount,
	)
	return err
}

// CountByQualification returns the staged totals for sanity checks.
func (s *Store) CountByQualification(ctx context.Context) (qualifying, nonQualifying int, err error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT
			COALESCE(SUM(qualifying), 0),
			COALESCE(SUM(1 - qualifying), 0)
		 FROM characters`)
	if err := row.Scan(&qualifying, &nonQualifying); err != nil {
		return 0, 0, err
	}
	return qualifying, nonQualifying, nil
}

// ListQualifyingCodePoints returns staged qualifying code points for a given
// diacritic count, in insertion order.
func (s *Store) ListQualifyingCodePoints(ctx context.Context, diacriticCount int) ([]rune, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT codepoint FROM characters
		 WHERE qualifying = 1 AND diacritic_count = ?
		 ORDER BY id ASC`, diacriticCount)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var result []rune
	for rows.Next() {
		var cp int64
		if err := rows.Scan(&cp); err != nil {
			return nil, err
		}
		result = append(result, rune(cp))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
