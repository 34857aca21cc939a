package memory

import (
	"context"

	"github.com/riskibarqy/ubuntu-explorer/internal/domain/catalog"
)

// CatalogRepository serves a CatalogSeed. Every read returns a copy.
type CatalogRepository struct {
	seed CatalogSeed
}

func NewCatalogRepository(seed CatalogSeed) *CatalogRepository {
	return &CatalogRepository{seed: seed}
}

func (r *CatalogRepository) ListInterests(_ context.Context) ([]catalog.Interest, error) {
	return append([]catalog.Interest(nil), r.seed.Interests...), nil
}

func (r *CatalogRepository) ListCountries(_ context.Context) ([]catalog.Country, error) {
	return append([]catalog.Country(nil), r.seed.Countries...), nil
}

func (r *CatalogRepository) ListBusinessCategories(_ context.Context) ([]catalog.BusinessCategory, error) {
	return append([]catalog.BusinessCategory(nil), r.seed.BusinessCategories...), nil
}

func (r *CatalogRepository) ListRecommendations(_ context.Context) ([]catalog.Recommendation, error) {
	return append([]catalog.Recommendation(nil), r.seed.Recommendations...), nil
}

func (r *CatalogRepository) ListBookings(_ context.Context) ([]catalog.Booking, error) {
	return append([]catalog.Booking(nil), r.seed.Bookings...), nil
}

func (r *CatalogRepository) GetBusinessStats(_ context.Context) (catalog.BusinessStats, error) {
	return r.seed.BusinessStats, nil
}

func (r *CatalogRepository) GetFoodCrawl(_ context.Context) (catalog.FoodCrawl, error) {
	return r.seed.FoodCrawl, nil
}

func (r *CatalogRepository) ListEmergencyContacts(_ context.Context) ([]catalog.EmergencyContact, error) {
	return append([]catalog.EmergencyContact(nil), r.seed.EmergencyContacts...), nil
}

func (r *CatalogRepository) GetLanding(_ context.Context) (catalog.Landing, error) {
	out := r.seed.Landing
	out.HeroCountries = append([]catalog.Country(nil), out.HeroCountries...)
	out.Features = append([]catalog.Feature(nil), out.Features...)
	out.FooterGroups = make([]catalog.LinkGroup, 0, len(r.seed.Landing.FooterGroups))
	for _, group := range r.seed.Landing.FooterGroups {
		group.Links = append([]catalog.Link(nil), group.Links...)
		out.FooterGroups = append(out.FooterGroups, group)
	}
	return out, nil
}
