package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"art-catalog-service/internal/core/domain"
	ports "art-catalog-service/internal/core/ports/output"
)

type paintingRepo struct {
	pool *pgxpool.Pool
}

func NewPaintingRepository(pool *pgxpool.Pool) ports.PaintingRepository {
	return &paintingRepo{pool: pool}
}

func (r *paintingRepo) ListPaintings(ctx context.Context) ([]domain.Painting, error) {
	query := `
		SELECT artist, title, method, year, width, height
		FROM painting
		ORDER BY position
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list paintings: %w", err)
	}
	defer rows.Close()

	paintings := []domain.Painting{}
	for rows.Next() {
		var p domain.Painting
		if err := rows.Scan(&p.Artist, &p.Title, &p.Method, &p.Year, &p.Width, &p.Height); err != nil {
			return nil, fmt.Errorf("scan painting row: %w", err)
		}
		paintings = append(paintings, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate painting rows: %w", err)
	}

	return paintings, nil
}
