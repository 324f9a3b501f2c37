package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"

	"art-catalog-service/internal/core/domain"
)

// position preserves insertion order; queries depend on it.
const schema = `
	CREATE TABLE IF NOT EXISTS artist (
		position      BIGSERIAL PRIMARY KEY,
		country       TEXT NOT NULL,
		first_name    TEXT NOT NULL,
		last_name     TEXT NOT NULL,
		year_of_birth INTEGER NOT NULL,
		year_of_death INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS painting (
		position BIGSERIAL PRIMARY KEY,
		artist   TEXT NOT NULL,
		title    TEXT NOT NULL,
		method   TEXT NOT NULL,
		year     INTEGER NOT NULL,
		width    INTEGER NOT NULL,
		height   INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_painting_artist ON painting (artist);
`

// EnsureSchema creates the catalog tables if they do not exist.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("ensure catalog schema: %w", err)
	}
	return nil
}

// SeedIfEmpty copies the given dataset into empty catalog tables. Tables that
// already hold rows are left alone.
func SeedIfEmpty(ctx context.Context, pool *pgxpool.Pool, artists []domain.Artist, paintings []domain.Painting) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin seed: %w", err)
	}
	defer tx.Rollback(ctx)

	var existing int
	if err := tx.QueryRow(ctx, "SELECT (SELECT COUNT(*) FROM artist) + (SELECT COUNT(*) FROM painting)").Scan(&existing); err != nil {
		return fmt.Errorf("count catalog rows: %w", err)
	}
	if existing > 0 {
		log.WithField("rows", existing).Info("catalog tables already populated, skipping seed")
		return nil
	}

	_, err = tx.CopyFrom(ctx,
		pgx.Identifier{"artist"},
		[]string{"country", "first_name", "last_name", "year_of_birth", "year_of_death"},
		pgx.CopyFromSlice(len(artists), func(i int) ([]any, error) {
			a := artists[i]
			return []any{a.Country, a.FirstName, a.LastName, a.YearOfBirth, a.YearOfDeath}, nil
		}),
	)
	if err != nil {
		return fmt.Errorf("copy artists: %w", err)
	}

	_, err = tx.CopyFrom(ctx,
		pgx.Identifier{"painting"},
		[]string{"artist", "title", "method", "year", "width", "height"},
		pgx.CopyFromSlice(len(paintings), func(i int) ([]any, error) {
			p := paintings[i]
			return []any{p.Artist, p.Title, p.Method, p.Year, p.Width, p.Height}, nil
		}),
	)
	if err != nil {
		return fmt.Errorf("copy paintings: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit seed: %w", err)
	}

	log.WithFields(log.Fields{
		"artists":   len(artists),
		"paintings": len(paintings),
	}).Info("catalog tables seeded")
	return nil
}
