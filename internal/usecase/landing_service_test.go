package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/ubuntu-explorer/internal/domain/catalog"
	"github.com/riskibarqy/ubuntu-explorer/internal/infrastructure/repository/memory"
	catalogmock "github.com/riskibarqy/ubuntu-explorer/internal/mocks/domain/catalog"
)

func TestLandingService_GetLanding(t *testing.T) {
	svc := NewLandingService(memory.NewCatalogRepository(memory.SeedCatalog()))

	landing, err := svc.GetLanding(context.Background())
	if err != nil {
		t.Fatalf("get landing: %v", err)
	}
	if landing.Headline == "" || len(landing.Features) != 3 {
		t.Fatalf("unexpected landing content: %+v", landing)
	}
	if len(landing.HeroCountries) != 4 {
		t.Fatalf("expected 4 hero countries, got %d", len(landing.HeroCountries))
	}
}

func TestLandingService_GetCatalogOptions(t *testing.T) {
	svc := NewLandingService(memory.NewCatalogRepository(memory.SeedCatalog()))

	options, err := svc.GetCatalogOptions(context.Background())
	require.NoError(t, err)
	require.Len(t, options.Interests, 6)
	require.Len(t, options.Countries, 8)
	require.Len(t, options.BusinessCategories, 6)
	require.Equal(t, "south-africa", options.Countries[0].Value)
}

func TestLandingService_CatalogOptionsFailure(t *testing.T) {
	repo := catalogmock.NewRepository(t)
	repo.On("ListInterests", mock.Anything).Return(nil, errors.New("catalog down")).Once()
	repo.On("ListCountries", mock.Anything).Return([]catalog.Country{}, nil).Maybe()
	repo.On("ListBusinessCategories", mock.Anything).Return([]catalog.BusinessCategory{}, nil).Maybe()

	_, err := NewLandingService(repo).GetCatalogOptions(context.Background())
	require.ErrorIs(t, err, ErrDependencyUnavailable)
}

func TestLandingService_LandingFailure(t *testing.T) {
	repo := catalogmock.NewRepository(t)
	repo.On("GetLanding", mock.Anything).Return(catalog.Landing{}, errors.New("catalog down")).Once()

	_, err := NewLandingService(repo).GetLanding(context.Background())
	require.ErrorIs(t, err, ErrDependencyUnavailable)
}

func TestLandingService_Warmup(t *testing.T) {
	svc := NewLandingService(memory.NewCatalogRepository(memory.SeedCatalog()))
	require.NoError(t, svc.Warmup(context.Background()))
}
