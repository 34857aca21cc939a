package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/sourcegraph/conc/pool"

	"github.com/riskibarqy/ubuntu-explorer/internal/domain/catalog"
	"github.com/riskibarqy/ubuntu-explorer/internal/domain/dashboard"
	"github.com/riskibarqy/ubuntu-explorer/internal/domain/onboarding"
	"github.com/riskibarqy/ubuntu-explorer/internal/domain/session"
)

type InterestBadge struct {
	ID    string
	Label string
}

type TravelerDashboard struct {
	Greeting          string
	Profile           onboarding.Payload
	Destination       catalog.Country
	Tabs              []dashboard.TabOption
	ActiveTab         dashboard.Tab
	InterestBadges    []InterestBadge
	Recommendations   []catalog.Recommendation
	Panel             *dashboard.Panel
	FoodCrawl         catalog.FoodCrawl
	EmergencyOpen     bool
	EmergencyContacts []catalog.EmergencyContact
}

type BusinessDashboard struct {
	Heading        string
	Profile        onboarding.Payload
	CategoryLabel  string
	Stats          catalog.BusinessStats
	Tabs           []dashboard.TabOption
	ActiveTab      dashboard.Tab
	Bookings       []catalog.Booking
	QuickActions   []string
	ProfileEditing bool
}

// DashboardView is the active dashboard of a session. Exactly one of
// Traveler and Business is set.
type DashboardView struct {
	SessionID string
	View      session.View
	Traveler  *TravelerDashboard
	Business  *BusinessDashboard
}

type DashboardService struct {
	sessions session.Repository
	catalog  catalog.Repository
}

func NewDashboardService(sessions session.Repository, catalogRepo catalog.Repository) *DashboardService {
	return &DashboardService{
		sessions: sessions,
		catalog:  catalogRepo,
	}
}

func (s *DashboardService) Get(ctx context.Context, sessionID string) (DashboardView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DashboardService.Get")
	defer span.End()

	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return DashboardView{}, fmt.Errorf("%w: session id is required", ErrInvalidInput)
	}

	item, exists, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return DashboardView{}, fmt.Errorf("%w: get session: %w", ErrDependencyUnavailable, err)
	}
	if !exists {
		return DashboardView{}, fmt.Errorf("%w: session=%s", ErrNotFound, sessionID)
	}
	return s.compose(ctx, item)
}

func (s *DashboardService) SelectTab(ctx context.Context, sessionID, tab string) (DashboardView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DashboardService.SelectTab")
	defer span.End()

	return s.mutate(ctx, sessionID, func(current *session.Session) error {
		_, err := current.SelectTab(strings.TrimSpace(tab))
		return err
	})
}

func (s *DashboardService) ToggleEmergency(ctx context.Context, sessionID string) (DashboardView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DashboardService.ToggleEmergency")
	defer span.End()

	return s.mutate(ctx, sessionID, func(current *session.Session) error {
		_, err := current.ToggleEmergency()
		return err
	})
}

func (s *DashboardService) ToggleProfileEditing(ctx context.Context, sessionID string) (DashboardView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DashboardService.ToggleProfileEditing")
	defer span.End()

	return s.mutate(ctx, sessionID, func(current *session.Session) error {
		_, err := current.ToggleProfileEditing()
		return err
	})
}

func (s *DashboardService) mutate(ctx context.Context, sessionID string, fn func(*session.Session) error) (DashboardView, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return DashboardView{}, fmt.Errorf("%w: session id is required", ErrInvalidInput)
	}

	item, err := s.sessions.Update(ctx, sessionID, fn)
	if err != nil {
		return DashboardView{}, classify(err)
	}
	return s.compose(ctx, item)
}

func (s *DashboardService) compose(ctx context.Context, item session.Session) (DashboardView, error) {
	view, payload, err := item.ActiveDashboard()
	if err != nil {
		return DashboardView{}, classify(err)
	}

	out := DashboardView{SessionID: item.ID, View: view}
	switch view {
	case session.ViewTraveler:
		traveler, err := s.composeTraveler(ctx, item, payload)
		if err != nil {
			return DashboardView{}, err
		}
		out.Traveler = &traveler
	case session.ViewBusiness:
		business, err := s.composeBusiness(ctx, item, payload)
		if err != nil {
			return DashboardView{}, err
		}
		out.Business = &business
	}
	return out, nil
}

func (s *DashboardService) composeTraveler(ctx context.Context, item session.Session, payload onboarding.Payload) (TravelerDashboard, error) {
	out := TravelerDashboard{
		Greeting:      dashboard.TravelerGreeting(payload.Name),
		Profile:       payload,
		Tabs:          dashboard.TravelerTabs(),
		ActiveTab:     item.TravelerTab,
		EmergencyOpen: item.EmergencyOpen,
	}
	for _, interest := range payload.Interests {
		out.InterestBadges = append(out.InterestBadges, InterestBadge{ID: interest, Label: dashboard.BadgeLabel(interest)})
	}
	if panel, ok := dashboard.TravelerPanel(item.TravelerTab); ok {
		out.Panel = &panel
	}

	p := pool.New().WithContext(ctx)
	p.Go(func(ctx context.Context) error {
		countries, err := s.catalog.ListCountries(ctx)
		if err != nil {
			return fmt.Errorf("list countries: %w", err)
		}
		for _, country := range countries {
			if country.Value == payload.Country {
				out.Destination = country
				break
			}
		}
		return nil
	})
	p.Go(func(ctx context.Context) error {
		crawl, err := s.catalog.GetFoodCrawl(ctx)
		if err != nil {
			return fmt.Errorf("get food crawl: %w", err)
		}
		out.FoodCrawl = crawl
		return nil
	})
	p.Go(func(ctx context.Context) error {
		contacts, err := s.catalog.ListEmergencyContacts(ctx)
		if err != nil {
			return fmt.Errorf("list emergency contacts: %w", err)
		}
		out.EmergencyContacts = contacts
		return nil
	})
	if item.TravelerTab == dashboard.TabExplore {
		p.Go(func(ctx context.Context) error {
			items, err := s.catalog.ListRecommendations(ctx)
			if err != nil {
				return fmt.Errorf("list recommendations: %w", err)
			}
			out.Recommendations = items
			return nil
		})
	}

	if err := p.Wait(); err != nil {
		return TravelerDashboard{}, fmt.Errorf("%w: %w", ErrDependencyUnavailable, err)
	}
	return out, nil
}

func (s *DashboardService) composeBusiness(ctx context.Context, item session.Session, payload onboarding.Payload) (BusinessDashboard, error) {
	out := BusinessDashboard{
		Heading:        dashboard.BusinessHeading(payload.BusinessName),
		Profile:        payload,
		CategoryLabel:  payload.BusinessCategory,
		Tabs:           dashboard.BusinessTabs(),
		ActiveTab:      item.BusinessTab,
		ProfileEditing: item.ProfileEditing,
	}
	if item.BusinessTab == dashboard.TabOverview {
		out.QuickActions = dashboard.BusinessQuickActions()
	}

	p := pool.New().WithContext(ctx)
	p.Go(func(ctx context.Context) error {
		stats, err := s.catalog.GetBusinessStats(ctx)
		if err != nil {
			return fmt.Errorf("get business stats: %w", err)
		}
		out.Stats = stats
		return nil
	})
	p.Go(func(ctx context.Context) error {
		categories, err := s.catalog.ListBusinessCategories(ctx)
		if err != nil {
			return fmt.Errorf("list business categories: %w", err)
		}
		for _, category := range categories {
			if category.Value == payload.BusinessCategory {
				out.CategoryLabel = category.Label
				break
			}
		}
		return nil
	})
	if item.BusinessTab == dashboard.TabOverview || item.BusinessTab == dashboard.TabBookings {
		p.Go(func(ctx context.Context) error {
			bookings, err := s.catalog.ListBookings(ctx)
			if err != nil {
				return fmt.Errorf("list bookings: %w", err)
			}
			if item.BusinessTab == dashboard.TabOverview && len(bookings) > dashboard.RecentBookingsLimit {
				bookings = bookings[:dashboard.RecentBookingsLimit]
			}
			out.Bookings = bookings
			return nil
		})
	}

	if err := p.Wait(); err != nil {
		return BusinessDashboard{}, fmt.Errorf("%w: %w", ErrDependencyUnavailable, err)
	}
	return out, nil
}
