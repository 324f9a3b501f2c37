package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"art-catalog-service/internal/core/domain"
	ports "art-catalog-service/internal/core/ports/output"
)

type artistRepo struct {
	pool *pgxpool.Pool
}

func NewArtistRepository(pool *pgxpool.Pool) ports.ArtistRepository {
	return &artistRepo{pool: pool}
}

func (r *artistRepo) ListArtists(ctx context.Context) ([]domain.Artist, error) {
	query := `
		SELECT country, first_name, last_name, year_of_birth, year_of_death
		FROM artist
		ORDER BY position
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list artists: %w", err)
	}
	defer rows.Close()

	artists := []domain.Artist{}
	for rows.Next() {
		var a domain.Artist
		if err := rows.Scan(&a.Country, &a.FirstName, &a.LastName, &a.YearOfBirth, &a.YearOfDeath); err != nil {
			return nil, fmt.Errorf("scan artist row: %w", err)
		}
		artists = append(artists, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate artist rows: %w", err)
	}

	return artists, nil
}
