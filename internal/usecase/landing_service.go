package usecase

import (
	"context"
	"fmt"

	"github.com/sourcegraph/conc/pool"

	"github.com/riskibarqy/ubuntu-explorer/internal/domain/catalog"
)

// CatalogOptions are the selectable values of the onboarding forms.
type CatalogOptions struct {
	Interests          []catalog.Interest
	Countries          []catalog.Country
	BusinessCategories []catalog.BusinessCategory
}

type LandingService struct {
	catalog catalog.Repository
}

func NewLandingService(catalogRepo catalog.Repository) *LandingService {
	return &LandingService{catalog: catalogRepo}
}

func (s *LandingService) GetLanding(ctx context.Context) (catalog.Landing, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LandingService.GetLanding")
	defer span.End()

	landing, err := s.catalog.GetLanding(ctx)
	if err != nil {
		return catalog.Landing{}, fmt.Errorf("%w: get landing: %w", ErrDependencyUnavailable, err)
	}
	return landing, nil
}

func (s *LandingService) GetCatalogOptions(ctx context.Context) (CatalogOptions, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LandingService.GetCatalogOptions")
	defer span.End()

	var out CatalogOptions
	p := pool.New().WithContext(ctx)
	p.Go(func(ctx context.Context) error {
		items, err := s.catalog.ListInterests(ctx)
		if err != nil {
			return fmt.Errorf("list interests: %w", err)
		}
		out.Interests = items
		return nil
	})
	p.Go(func(ctx context.Context) error {
		items, err := s.catalog.ListCountries(ctx)
		if err != nil {
			return fmt.Errorf("list countries: %w", err)
		}
		out.Countries = items
		return nil
	})
	p.Go(func(ctx context.Context) error {
		items, err := s.catalog.ListBusinessCategories(ctx)
		if err != nil {
			return fmt.Errorf("list business categories: %w", err)
		}
		out.BusinessCategories = items
		return nil
	})

	if err := p.Wait(); err != nil {
		return CatalogOptions{}, fmt.Errorf("%w: %w", ErrDependencyUnavailable, err)
	}
	return out, nil
}

// Warmup loads every catalog list once so the first requests hit the cache.
func (s *LandingService) Warmup(ctx context.Context) error {
	p := pool.New().WithContext(ctx).WithMaxGoroutines(4)
	p.Go(func(ctx context.Context) error { _, err := s.catalog.ListInterests(ctx); return err })
	p.Go(func(ctx context.Context) error { _, err := s.catalog.ListCountries(ctx); return err })
	p.Go(func(ctx context.Context) error { _, err := s.catalog.ListBusinessCategories(ctx); return err })
	p.Go(func(ctx context.Context) error { _, err := s.catalog.ListRecommendations(ctx); return err })
	p.Go(func(ctx context.Context) error { _, err := s.catalog.ListBookings(ctx); return err })
	p.Go(func(ctx context.Context) error { _, err := s.catalog.GetBusinessStats(ctx); return err })
	p.Go(func(ctx context.Context) error { _, err := s.catalog.GetFoodCrawl(ctx); return err })
	p.Go(func(ctx context.Context) error { _, err := s.catalog.ListEmergencyContacts(ctx); return err })
	if err := p.Wait(); err != nil {
		return fmt.Errorf("warm catalog: %w", err)
	}
	return nil
}
