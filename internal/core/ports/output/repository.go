package ports

import (
	"context"

	"art-catalog-service/internal/core/domain"
)

// ArtistRepository returns every artist in insertion order.
type ArtistRepository interface {
	ListArtists(ctx context.Context) ([]domain.Artist, error)
}

// PaintingRepository returns every painting in insertion order.
type PaintingRepository interface {
	ListPaintings(ctx context.Context) ([]domain.Painting, error)
}
