package services

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"art-catalog-service/internal/core/domain"
	ports "art-catalog-service/internal/core/ports/output"
)

// CatalogService loads the catalog once from its repositories and hands out
// a QueryEngine bound to that snapshot.
type CatalogService struct {
	source       string
	artistRepo   ports.ArtistRepository
	paintingRepo ports.PaintingRepository
	metrics      ports.QueryMetrics
}

func NewCatalogService(source string, artistRepo ports.ArtistRepository, paintingRepo ports.PaintingRepository, metrics ports.QueryMetrics) *CatalogService {
	if metrics == nil {
		metrics = ports.NopQueryMetrics{}
	}
	return &CatalogService{
		source:       source,
		artistRepo:   artistRepo,
		paintingRepo: paintingRepo,
		metrics:      metrics,
	}
}

// Load reads both collections concurrently and builds an immutable catalog.
func (s *CatalogService) Load(ctx context.Context) (*domain.Catalog, error) {
	var (
		artists   []domain.Artist
		paintings []domain.Painting
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		artists, err = s.artistRepo.ListArtists(gctx)
		if err != nil {
			return fmt.Errorf("list artists: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		paintings, err = s.paintingRepo.ListPaintings(gctx)
		if err != nil {
			return fmt.Errorf("list paintings: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load catalog from %s: %w", s.source, err)
	}

	catalog := domain.NewCatalog(artists, paintings)
	s.metrics.ObserveCatalogLoad(s.source, len(artists), len(paintings))

	log.WithFields(log.Fields{
		"source":    s.source,
		"artists":   len(artists),
		"paintings": len(paintings),
	}).Info("catalog loaded")

	return catalog, nil
}

// Engine loads the catalog and returns a QueryEngine over it.
func (s *CatalogService) Engine(ctx context.Context) (*QueryEngine, error) {
	catalog, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}

	engine := NewQueryEngine(catalog, s.metrics)
	if orphans := engine.ListOrphanedPaintings(); len(orphans) > 0 {
		log.WithField("count", len(orphans)).Warn("paintings reference unknown artists and will not appear in joins")
	}
	return engine, nil
}
