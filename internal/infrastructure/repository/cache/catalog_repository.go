package cache

import (
	"context"

	"github.com/riskibarqy/ubuntu-explorer/internal/domain/catalog"
	basecache "github.com/riskibarqy/ubuntu-explorer/internal/platform/cache"
)

const catalogKeyPrefix = "catalog:"

// CatalogRepository memoizes catalog reads. Slices are copied on the way out
// so callers never share the cached backing arrays.
type CatalogRepository struct {
	next  catalog.Repository
	cache *basecache.Store
}

func NewCatalogRepository(next catalog.Repository, cache *basecache.Store) *CatalogRepository {
	return &CatalogRepository{next: next, cache: cache}
}

func (r *CatalogRepository) ListInterests(ctx context.Context) ([]catalog.Interest, error) {
	v, err := r.cache.GetOrLoad(ctx, catalogKeyPrefix+"interests", func(ctx context.Context) (any, error) {
		return r.next.ListInterests(ctx)
	})
	if err != nil {
		return nil, err
	}
	items, _ := v.([]catalog.Interest)
	return append([]catalog.Interest(nil), items...), nil
}

func (r *CatalogRepository) ListCountries(ctx context.Context) ([]catalog.Country, error) {
	v, err := r.cache.GetOrLoad(ctx, catalogKeyPrefix+"countries", func(ctx context.Context) (any, error) {
		return r.next.ListCountries(ctx)
	})
	if err != nil {
		return nil, err
	}
	items, _ := v.([]catalog.Country)
	return append([]catalog.Country(nil), items...), nil
}

func (r *CatalogRepository) ListBusinessCategories(ctx context.Context) ([]catalog.BusinessCategory, error) {
	v, err := r.cache.GetOrLoad(ctx, catalogKeyPrefix+"business_categories", func(ctx context.Context) (any, error) {
		return r.next.ListBusinessCategories(ctx)
	})
	if err != nil {
		return nil, err
	}
	items, _ := v.([]catalog.BusinessCategory)
	return append([]catalog.BusinessCategory(nil), items...), nil
}

func (r *CatalogRepository) ListRecommendations(ctx context.Context) ([]catalog.Recommendation, error) {
	v, err := r.cache.GetOrLoad(ctx, catalogKeyPrefix+"recommendations", func(ctx context.Context) (any, error) {
		return r.next.ListRecommendations(ctx)
	})
	if err != nil {
		return nil, err
	}
	items, _ := v.([]catalog.Recommendation)
	return append([]catalog.Recommendation(nil), items...), nil
}

func (r *CatalogRepository) ListBookings(ctx context.Context) ([]catalog.Booking, error) {
	v, err := r.cache.GetOrLoad(ctx, catalogKeyPrefix+"bookings", func(ctx context.Context) (any, error) {
		return r.next.ListBookings(ctx)
	})
	if err != nil {
		return nil, err
	}
	items, _ := v.([]catalog.Booking)
	return append([]catalog.Booking(nil), items...), nil
}

func (r *CatalogRepository) GetBusinessStats(ctx context.Context) (catalog.BusinessStats, error) {
	v, err := r.cache.GetOrLoad(ctx, catalogKeyPrefix+"business_stats", func(ctx context.Context) (any, error) {
		return r.next.GetBusinessStats(ctx)
	})
	if err != nil {
		return catalog.BusinessStats{}, err
	}
	stats, _ := v.(catalog.BusinessStats)
	return stats, nil
}

func (r *CatalogRepository) GetFoodCrawl(ctx context.Context) (catalog.FoodCrawl, error) {
	v, err := r.cache.GetOrLoad(ctx, catalogKeyPrefix+"food_crawl", func(ctx context.Context) (any, error) {
		return r.next.GetFoodCrawl(ctx)
	})
	if err != nil {
		return catalog.FoodCrawl{}, err
	}
	crawl, _ := v.(catalog.FoodCrawl)
	return crawl, nil
}

func (r *CatalogRepository) ListEmergencyContacts(ctx context.Context) ([]catalog.EmergencyContact, error) {
	v, err := r.cache.GetOrLoad(ctx, catalogKeyPrefix+"emergency_contacts", func(ctx context.Context) (any, error) {
		return r.next.ListEmergencyContacts(ctx)
	})
	if err != nil {
		return nil, err
	}
	items, _ := v.([]catalog.EmergencyContact)
	return append([]catalog.EmergencyContact(nil), items...), nil
}

// GetLanding is not cached: the landing model nests slices, and the
// underlying source already returns a private copy.
func (r *CatalogRepository) GetLanding(ctx context.Context) (catalog.Landing, error) {
	return r.next.GetLanding(ctx)
}
