package testutil

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"art-catalog-service/internal/core/domain"
)

// MockArtistRepo is a mock of ArtistRepository.
type MockArtistRepo struct {
	mock.Mock
}

func (m *MockArtistRepo) ListArtists(ctx context.Context) ([]domain.Artist, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Artist), args.Error(1)
}

// MockPaintingRepo is a mock of PaintingRepository.
type MockPaintingRepo struct {
	mock.Mock
}

func (m *MockPaintingRepo) ListPaintings(ctx context.Context) ([]domain.Painting, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Painting), args.Error(1)
}

// MockQueryMetrics is a mock of QueryMetrics.
type MockQueryMetrics struct {
	mock.Mock
}

func (m *MockQueryMetrics) ObserveQuery(name string, rows int, elapsed time.Duration, err error) {
	m.Called(name, rows, elapsed, err)
}

func (m *MockQueryMetrics) ObserveCatalogLoad(source string, artists, paintings int) {
	m.Called(source, artists, paintings)
}
