package catalog

import "context"

// Repository serves the read-only catalog compiled into the application.
type Repository interface {
	ListInterests(ctx context.Context) ([]Interest, error)
	ListCountries(ctx context.Context) ([]Country, error)
	ListBusinessCategories(ctx context.Context) ([]BusinessCategory, error)
	ListRecommendations(ctx context.Context) ([]Recommendation, error)
	ListBookings(ctx context.Context) ([]Booking, error)
	GetBusinessStats(ctx context.Context) (BusinessStats, error)
	GetFoodCrawl(ctx context.Context) (FoodCrawl, error)
	ListEmergencyContacts(ctx context.Context) ([]EmergencyContact, error)
	GetLanding(ctx context.Context) (Landing, error)
}
