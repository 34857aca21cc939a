package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/ubuntu-explorer/internal/domain/catalog"
	"github.com/riskibarqy/ubuntu-explorer/internal/domain/dashboard"
	"github.com/riskibarqy/ubuntu-explorer/internal/domain/session"
	catalogmock "github.com/riskibarqy/ubuntu-explorer/internal/mocks/domain/catalog"
)

func TestDashboardService_TravelerDefaults(t *testing.T) {
	f := newShellFixture(t)
	id := f.completeTraveler(t)

	view, err := f.dashboard.Get(context.Background(), id)
	if err != nil {
		t.Fatalf("get dashboard: %v", err)
	}
	if view.View != session.ViewTraveler || view.Traveler == nil || view.Business != nil {
		t.Fatalf("expected traveler dashboard only, got %+v", view)
	}

	tr := view.Traveler
	if tr.Greeting != "Welcome back, Thandi!" {
		t.Fatalf("unexpected greeting %q", tr.Greeting)
	}
	if tr.ActiveTab != dashboard.TabExplore {
		t.Fatalf("expected explore tab, got %s", tr.ActiveTab)
	}
	if tr.Destination.Label != "South Africa" {
		t.Fatalf("unexpected destination %+v", tr.Destination)
	}
	if len(tr.Recommendations) == 0 {
		t.Fatalf("explore tab must carry recommendations")
	}
	if tr.Panel != nil {
		t.Fatalf("explore tab has no placeholder panel")
	}
	require.Equal(t, []InterestBadge{{ID: "food", Label: "Food"}, {ID: "culture", Label: "Culture"}}, tr.InterestBadges)
	require.Len(t, tr.EmergencyContacts, 3)
	require.Equal(t, 12, tr.FoodCrawl.Total)
}

func TestDashboardService_TravelerPlaceholderTabs(t *testing.T) {
	tests := []struct {
		tab   string
		title string
	}{
		{tab: "map", title: "Interactive Map"},
		{tab: "saved", title: "Saved Experiences"},
		{tab: "photos", title: "My Journey"},
	}

	for _, tt := range tests {
		t.Run(tt.tab, func(t *testing.T) {
			f := newShellFixture(t)
			id := f.completeTraveler(t)

			view, err := f.dashboard.SelectTab(context.Background(), id, tt.tab)
			if err != nil {
				t.Fatalf("select tab: %v", err)
			}
			tr := view.Traveler
			if string(tr.ActiveTab) != tt.tab {
				t.Fatalf("expected %s tab, got %s", tt.tab, tr.ActiveTab)
			}
			if tr.Panel == nil || tr.Panel.Title != tt.title {
				t.Fatalf("expected panel %q, got %+v", tt.title, tr.Panel)
			}
			if tr.Recommendations != nil {
				t.Fatalf("recommendations belong to the explore tab only")
			}
		})
	}
}

func TestDashboardService_TabsAreScopedToTheirDashboard(t *testing.T) {
	f := newShellFixture(t)
	traveler := f.completeTraveler(t)
	business := f.completeBusiness(t)
	ctx := context.Background()

	if _, err := f.dashboard.SelectTab(ctx, traveler, "analytics"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("traveler accepted a business tab: %v", err)
	}
	if _, err := f.dashboard.SelectTab(ctx, business, "photos"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("business accepted a traveler tab: %v", err)
	}
}

func TestDashboardService_BusinessOverviewAndBookings(t *testing.T) {
	f := newShellFixture(t)
	id := f.completeBusiness(t)
	ctx := context.Background()

	view, err := f.dashboard.Get(ctx, id)
	if err != nil {
		t.Fatalf("get dashboard: %v", err)
	}
	biz := view.Business
	if biz == nil || view.Traveler != nil {
		t.Fatalf("expected business dashboard only, got %+v", view)
	}
	if biz.Heading != "Joe's Tours" || biz.CategoryLabel != "Tour & Activities" {
		t.Fatalf("unexpected heading %q / category %q", biz.Heading, biz.CategoryLabel)
	}
	if biz.ActiveTab != dashboard.TabOverview {
		t.Fatalf("expected overview, got %s", biz.ActiveTab)
	}
	if len(biz.Bookings) > dashboard.RecentBookingsLimit {
		t.Fatalf("overview shows at most %d bookings, got %d", dashboard.RecentBookingsLimit, len(biz.Bookings))
	}
	if len(biz.QuickActions) != 4 {
		t.Fatalf("expected quick actions on overview, got %v", biz.QuickActions)
	}
	if biz.Stats.Views != 1247 {
		t.Fatalf("unexpected stats %+v", biz.Stats)
	}

	view, err = f.dashboard.SelectTab(ctx, id, "analytics")
	if err != nil {
		t.Fatalf("select analytics: %v", err)
	}
	if view.Business.Bookings != nil || view.Business.QuickActions != nil {
		t.Fatalf("analytics tab must not carry overview content")
	}
}

func TestDashboardService_Toggles(t *testing.T) {
	f := newShellFixture(t)
	traveler := f.completeTraveler(t)
	business := f.completeBusiness(t)
	ctx := context.Background()

	view, err := f.dashboard.ToggleEmergency(ctx, traveler)
	if err != nil {
		t.Fatalf("toggle emergency: %v", err)
	}
	if !view.Traveler.EmergencyOpen {
		t.Fatalf("expected emergency panel open")
	}
	if _, err := f.dashboard.ToggleEmergency(ctx, business); !errors.Is(err, ErrConflict) {
		t.Fatalf("business has no emergency panel, got %v", err)
	}

	view, err = f.dashboard.ToggleProfileEditing(ctx, business)
	if err != nil {
		t.Fatalf("toggle profile editing: %v", err)
	}
	if !view.Business.ProfileEditing {
		t.Fatalf("expected profile editing on")
	}
	if _, err := f.dashboard.ToggleProfileEditing(ctx, traveler); !errors.Is(err, ErrConflict) {
		t.Fatalf("traveler has no business profile, got %v", err)
	}
}

func TestDashboardService_LandingHasNoDashboard(t *testing.T) {
	f := newShellFixture(t)
	id := f.newSession(t)

	if _, err := f.dashboard.Get(context.Background(), id); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict on landing, got %v", err)
	}
	if _, err := f.dashboard.Get(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDashboardService_LogoutResetsTabs(t *testing.T) {
	f := newShellFixture(t)
	ctx := context.Background()
	id := f.completeTraveler(t)

	if _, err := f.dashboard.SelectTab(ctx, id, "saved"); err != nil {
		t.Fatalf("select saved: %v", err)
	}
	if _, err := f.shell.Logout(ctx, id); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, err := f.shell.OpenOnboarding(ctx, id, "signup"); err != nil {
		t.Fatalf("reopen: %v", err)
	}
	f.apply(t, id, travelerEvents()...)

	view, err := f.dashboard.Get(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if view.Traveler.ActiveTab != dashboard.TabExplore {
		t.Fatalf("expected explore after re-onboarding, got %s", view.Traveler.ActiveTab)
	}
}

func TestDashboardService_CatalogFailure(t *testing.T) {
	f := newShellFixture(t)
	id := f.completeBusiness(t)

	catalogRepo := catalogmock.NewRepository(t)
	catalogRepo.On("GetBusinessStats", mock.Anything).Return(catalog.BusinessStats{}, errors.New("catalog down")).Maybe()
	catalogRepo.On("ListBusinessCategories", mock.Anything).Return([]catalog.BusinessCategory{}, nil).Maybe()
	catalogRepo.On("ListBookings", mock.Anything).Return([]catalog.Booking{}, nil).Maybe()

	svc := NewDashboardService(f.sessions, catalogRepo)
	_, err := svc.Get(context.Background(), id)
	require.ErrorIs(t, err, ErrDependencyUnavailable)
}
