package memory

import (
	"context"

	"art-catalog-service/internal/core/domain"
	ports "art-catalog-service/internal/core/ports/output"
)

// Repository serves a fixed in-memory dataset. It implements both
// ArtistRepository and PaintingRepository.
type Repository struct {
	artists   []domain.Artist
	paintings []domain.Painting
}

var (
	_ ports.ArtistRepository   = (*Repository)(nil)
	_ ports.PaintingRepository = (*Repository)(nil)
)

func NewRepository(artists []domain.Artist, paintings []domain.Painting) *Repository {
	return &Repository{artists: artists, paintings: paintings}
}

// NewSeedRepository returns a repository over the built-in dataset.
func NewSeedRepository() *Repository {
	return NewRepository(SeedArtists(), SeedPaintings())
}

func (r *Repository) ListArtists(ctx context.Context) ([]domain.Artist, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return append([]domain.Artist(nil), r.artists...), nil
}

func (r *Repository) ListPaintings(ctx context.Context) ([]domain.Painting, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return append([]domain.Painting(nil), r.paintings...), nil
}
