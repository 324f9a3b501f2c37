// Package catalogsource turns configuration into the repositories a catalog
// is loaded from.
package catalogsource

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"

	"art-catalog-service/internal/adapters/secondary/memory"
	"art-catalog-service/internal/adapters/secondary/postgres"
	"art-catalog-service/internal/adapters/secondary/yamlfile"
	"art-catalog-service/internal/config"
	"art-catalog-service/internal/core/domain"
	ports "art-catalog-service/internal/core/ports/output"
)

// Source bundles the repositories for one configured catalog source.
type Source struct {
	Name      string
	Artists   ports.ArtistRepository
	Paintings ports.PaintingRepository

	close func()
}

// Close releases anything the source holds open, such as a database pool.
func (s *Source) Close() {
	if s.close != nil {
		s.close()
	}
}

// Open builds the repositories for cfg.Catalog.Source.
func Open(ctx context.Context, cfg *config.Config) (*Source, error) {
	switch cfg.Catalog.Source {
	case config.SourceSeed:
		repo := memory.NewSeedRepository()
		return &Source{Name: config.SourceSeed, Artists: repo, Paintings: repo}, nil

	case config.SourceFile:
		repo, err := yamlfile.Open(cfg.Catalog.File)
		if err != nil {
			return nil, err
		}
		log.WithField("file", cfg.Catalog.File).Info("catalog file opened")
		return &Source{Name: config.SourceFile, Artists: repo, Paintings: repo}, nil

	case config.SourcePostgres:
		return openPostgres(ctx, cfg)

	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownSource, cfg.Catalog.Source)
	}
}

func openPostgres(ctx context.Context, cfg *config.Config) (*Source, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.Database.DSN())
	if err != nil {
		return nil, fmt.Errorf("parse db config: %w", err)
	}
	poolCfg.MaxConns = int32(cfg.Database.MaxOpenConns)
	poolCfg.MinConns = int32(cfg.Database.MaxIdleConns)
	poolCfg.MaxConnLifetime = cfg.Database.ConnMaxLifetime

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create db pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}
	log.Info("database connection established")

	if cfg.Catalog.SeedDatabase {
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		if err := postgres.SeedIfEmpty(ctx, pool, memory.SeedArtists(), memory.SeedPaintings()); err != nil {
			pool.Close()
			return nil, err
		}
	}

	return &Source{
		Name:      config.SourcePostgres,
		Artists:   postgres.NewArtistRepository(pool),
		Paintings: postgres.NewPaintingRepository(pool),
		close:     pool.Close,
	}, nil
}
