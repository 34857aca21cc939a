package session

import (
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/ubuntu-explorer/internal/domain/dashboard"
	"github.com/riskibarqy/ubuntu-explorer/internal/domain/onboarding"
)

func newSession() Session {
	return New("s-1", time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC))
}

func apply(t *testing.T, s *Session, events ...onboarding.Event) *onboarding.Payload {
	t.Helper()
	var last *onboarding.Payload
	for _, ev := range events {
		payload, err := s.ApplyOnboarding(ev)
		if err != nil {
			t.Fatalf("apply %s: %v", ev.Type, err)
		}
		last = payload
	}
	return last
}

func signupEvents() []onboarding.Event {
	return []onboarding.Event{
		{Type: onboarding.EventSetField, Field: onboarding.FieldName, Value: "Thandi"},
		{Type: onboarding.EventSetField, Field: onboarding.FieldEmail, Value: "thandi@example.com"},
		{Type: onboarding.EventSetField, Field: onboarding.FieldPassword, Value: "secret"},
		{Type: onboarding.EventSubmit},
	}
}

func completeTraveler(t *testing.T, s *Session) {
	t.Helper()
	if err := s.OpenOnboarding(onboarding.StepSignup); err != nil {
		t.Fatalf("open onboarding: %v", err)
	}
	apply(t, s, signupEvents()...)
	payload := apply(t, s,
		onboarding.Event{Type: onboarding.EventSelectRole, Role: onboarding.RoleTraveler},
		onboarding.Event{Type: onboarding.EventToggleInterest, Interest: "food"},
		onboarding.Event{Type: onboarding.EventSelectCountry, Country: "south-africa"},
		onboarding.Event{Type: onboarding.EventSubmit},
	)
	if payload == nil {
		t.Fatalf("expected traveler completion")
	}
}

func completeBusiness(t *testing.T, s *Session) {
	t.Helper()
	if err := s.OpenOnboarding(onboarding.StepSignup); err != nil {
		t.Fatalf("open onboarding: %v", err)
	}
	apply(t, s, signupEvents()...)
	payload := apply(t, s,
		onboarding.Event{Type: onboarding.EventSelectRole, Role: onboarding.RoleBusiness},
		onboarding.Event{Type: onboarding.EventSetField, Field: onboarding.FieldBusinessName, Value: "Joe's Tours"},
		onboarding.Event{Type: onboarding.EventSetField, Field: onboarding.FieldBusinessCategory, Value: "tour"},
		onboarding.Event{Type: onboarding.EventSetField, Field: onboarding.FieldBusinessLocation, Value: "Cape Town"},
		onboarding.Event{Type: onboarding.EventSubmit},
	)
	if payload == nil {
		t.Fatalf("expected business completion")
	}
}

func TestNew_StartsOnLandingWithoutOverlay(t *testing.T) {
	s := newSession()
	if s.View != ViewLanding {
		t.Fatalf("expected landing, got %s", s.View)
	}
	if s.OverlayOpen() {
		t.Fatalf("overlay must start closed")
	}
	if s.TravelerTab != dashboard.TabExplore || s.BusinessTab != dashboard.TabOverview {
		t.Fatalf("unexpected default tabs: %s %s", s.TravelerTab, s.BusinessTab)
	}
}

func TestOpenOnboarding_InitialMode(t *testing.T) {
	for _, step := range []onboarding.Step{onboarding.StepLogin, onboarding.StepSignup} {
		s := newSession()
		if err := s.OpenOnboarding(step); err != nil {
			t.Fatalf("open %s: %v", step, err)
		}
		if !s.OverlayOpen() || s.Onboarding.Step != step {
			t.Fatalf("expected overlay at %s, got %+v", step, s.Onboarding)
		}
		if s.View != ViewLanding {
			t.Fatalf("opening the overlay must keep the landing view")
		}
	}
}

func TestCloseOnboarding_DiscardsDraft(t *testing.T) {
	s := newSession()
	_ = s.OpenOnboarding(onboarding.StepSignup)
	apply(t, &s, onboarding.Event{Type: onboarding.EventSetField, Field: onboarding.FieldName, Value: "Thandi"})

	s.CloseOnboarding()
	if s.OverlayOpen() || s.Payload != nil || s.View != ViewLanding {
		t.Fatalf("close must return to a bare landing: %+v", s)
	}

	_ = s.OpenOnboarding(onboarding.StepSignup)
	if s.Onboarding.Draft.Name != "" {
		t.Fatalf("reopening must start from an empty draft")
	}
}

func TestApplyOnboarding_ClosedOverlay(t *testing.T) {
	s := newSession()
	if _, err := s.ApplyOnboarding(onboarding.Event{Type: onboarding.EventSubmit}); !errors.Is(err, ErrOnboardingClosed) {
		t.Fatalf("expected ErrOnboardingClosed, got %v", err)
	}
}

func TestApplyOnboarding_FailedEventKeepsState(t *testing.T) {
	s := newSession()
	_ = s.OpenOnboarding(onboarding.StepLogin)
	_, err := s.ApplyOnboarding(onboarding.Event{Type: onboarding.EventSubmit})
	if !errors.Is(err, onboarding.ErrIncomplete) {
		t.Fatalf("expected ErrIncomplete, got %v", err)
	}
	if s.Onboarding.Step != onboarding.StepLogin {
		t.Fatalf("failed submit moved the flow to %s", s.Onboarding.Step)
	}
}

func TestCompletion_RoutesByRole(t *testing.T) {
	tests := []struct {
		name     string
		complete func(*testing.T, *Session)
		want     View
	}{
		{name: "traveler", complete: completeTraveler, want: ViewTraveler},
		{name: "business", complete: completeBusiness, want: ViewBusiness},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newSession()
			tt.complete(t, &s)

			if s.View != tt.want {
				t.Fatalf("expected %s view, got %s", tt.want, s.View)
			}
			if s.OverlayOpen() {
				t.Fatalf("overlay must close on completion")
			}
			view, payload, err := s.ActiveDashboard()
			if err != nil {
				t.Fatalf("active dashboard: %v", err)
			}
			if view != tt.want || string(payload.Role) != string(tt.want) {
				t.Fatalf("dashboard/payload mismatch: view=%s role=%s", view, payload.Role)
			}
		})
	}
}

func TestOpenOnboarding_RejectedOnDashboard(t *testing.T) {
	s := newSession()
	completeTraveler(t, &s)
	if err := s.OpenOnboarding(onboarding.StepLogin); !errors.Is(err, ErrNotOnLanding) {
		t.Fatalf("expected ErrNotOnLanding, got %v", err)
	}
}

func TestLogout_ReturnsToLandingAndIsIdempotent(t *testing.T) {
	s := newSession()
	completeBusiness(t, &s)
	if _, err := s.SelectTab("bookings"); err != nil {
		t.Fatalf("select tab: %v", err)
	}
	_, _ = s.ToggleProfileEditing()

	s.Logout()
	first := s.Clone()
	s.Logout()

	if s.View != ViewLanding || s.Payload != nil || s.OverlayOpen() {
		t.Fatalf("logout must clear the dashboard: %+v", s)
	}
	if s.BusinessTab != dashboard.TabOverview || s.ProfileEditing {
		t.Fatalf("logout must reset dashboard state: %+v", s)
	}
	if first.View != s.View || first.BusinessTab != s.BusinessTab {
		t.Fatalf("second logout changed state")
	}
}

func TestLogout_FromLandingIsNoop(t *testing.T) {
	s := newSession()
	s.Logout()
	if s.View != ViewLanding {
		t.Fatalf("expected landing, got %s", s.View)
	}
}

func TestSelectTab(t *testing.T) {
	s := newSession()
	if _, err := s.SelectTab("map"); !errors.Is(err, ErrDashboardNotActive) {
		t.Fatalf("expected ErrDashboardNotActive on landing, got %v", err)
	}

	completeTraveler(t, &s)
	tab, err := s.SelectTab("photos")
	if err != nil {
		t.Fatalf("select photos: %v", err)
	}
	if tab != dashboard.TabPhotos || s.TravelerTab != dashboard.TabPhotos {
		t.Fatalf("expected photos, got %s", s.TravelerTab)
	}
	if _, err := s.SelectTab("analytics"); !errors.Is(err, dashboard.ErrUnknownTab) {
		t.Fatalf("business tab on traveler dashboard should fail, got %v", err)
	}
}

func TestToggleEmergency_TravelerOnly(t *testing.T) {
	s := newSession()
	completeTraveler(t, &s)

	open, err := s.ToggleEmergency()
	if err != nil || !open {
		t.Fatalf("expected modal open, got open=%v err=%v", open, err)
	}
	open, _ = s.ToggleEmergency()
	if open {
		t.Fatalf("second toggle must close the modal")
	}

	b := newSession()
	completeBusiness(t, &b)
	if _, err := b.ToggleEmergency(); !errors.Is(err, ErrWrongDashboard) {
		t.Fatalf("expected ErrWrongDashboard, got %v", err)
	}
}

func TestClone_IsDeep(t *testing.T) {
	s := newSession()
	completeTraveler(t, &s)
	c := s.Clone()
	s.Payload.Interests[0] = "changed"
	if c.Payload.Interests[0] != "food" {
		t.Fatalf("clone shares payload interests")
	}
}
