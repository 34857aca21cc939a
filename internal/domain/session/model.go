package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/riskibarqy/ubuntu-explorer/internal/domain/dashboard"
	"github.com/riskibarqy/ubuntu-explorer/internal/domain/onboarding"
)

// View is the top-level screen shown by the application shell.
type View string

const (
	ViewLanding  View = "landing"
	ViewTraveler View = "traveler"
	ViewBusiness View = "business"
)

var (
	ErrNotFound           = errors.New("session not found")
	ErrOnboardingClosed   = errors.New("onboarding overlay is not open")
	ErrNotOnLanding       = errors.New("onboarding can only be opened from the landing view")
	ErrDashboardNotActive = errors.New("no dashboard is active")
	ErrWrongDashboard     = errors.New("action does not belong to the active dashboard")
	ErrIncompleteHandoff  = errors.New("dashboard requires a completed onboarding payload")
)

// Session is the view state of one browser session.
type Session struct {
	ID             string              `json:"id"`
	View           View                `json:"view"`
	Onboarding     *onboarding.Flow    `json:"onboarding,omitempty"`
	Payload        *onboarding.Payload `json:"payload,omitempty"`
	TravelerTab    dashboard.Tab       `json:"traveler_tab"`
	BusinessTab    dashboard.Tab       `json:"business_tab"`
	EmergencyOpen  bool                `json:"emergency_open"`
	ProfileEditing bool                `json:"profile_editing"`
	ClientIP       string              `json:"client_ip,omitempty"`
	CountryHint    string              `json:"country_hint,omitempty"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
}

func New(id string, now time.Time) Session {
	return Session{
		ID:          id,
		View:        ViewLanding,
		TravelerTab: dashboard.DefaultTravelerTab(),
		BusinessTab: dashboard.DefaultBusinessTab(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// OverlayOpen reports whether the onboarding overlay is visible.
func (s Session) OverlayOpen() bool {
	return s.Onboarding != nil
}

// OpenOnboarding shows the overlay with a fresh draft. Reopening restarts the
// flow in the requested mode.
func (s *Session) OpenOnboarding(initial onboarding.Step) error {
	if s.View != ViewLanding {
		return ErrNotOnLanding
	}
	flow, err := onboarding.NewFlow(initial)
	if err != nil {
		return err
	}
	s.Onboarding = &flow
	return nil
}

// CloseOnboarding hides the overlay and discards the draft.
func (s *Session) CloseOnboarding() {
	s.Onboarding = nil
}

// ApplyOnboarding feeds one event to the open flow. When the event completes
// the flow the overlay closes and the shell routes to the role's dashboard.
func (s *Session) ApplyOnboarding(ev onboarding.Event) (*onboarding.Payload, error) {
	if s.Onboarding == nil {
		return nil, ErrOnboardingClosed
	}

	next := s.Onboarding.Clone()
	payload, err := next.Apply(ev)
	if err != nil {
		return nil, err
	}
	if payload == nil {
		s.Onboarding = &next
		return nil, nil
	}

	if err := s.complete(*payload); err != nil {
		return nil, err
	}
	return payload, nil
}

func (s *Session) complete(payload onboarding.Payload) error {
	var view View
	switch payload.Role {
	case onboarding.RoleTraveler:
		view = ViewTraveler
	case onboarding.RoleBusiness:
		view = ViewBusiness
	default:
		return fmt.Errorf("%w: role %q", ErrIncompleteHandoff, payload.Role)
	}

	s.Payload = &payload
	s.View = view
	s.Onboarding = nil
	s.resetDashboards()
	return nil
}

// Logout returns to the landing view and forgets the completed payload.
func (s *Session) Logout() {
	s.View = ViewLanding
	s.Payload = nil
	s.Onboarding = nil
	s.resetDashboards()
}

// ActiveDashboard returns the dashboard view together with the payload it
// renders. It fails when the shell is on the landing view.
func (s Session) ActiveDashboard() (View, onboarding.Payload, error) {
	if s.View != ViewTraveler && s.View != ViewBusiness {
		return "", onboarding.Payload{}, ErrDashboardNotActive
	}
	if s.Payload == nil {
		return "", onboarding.Payload{}, ErrIncompleteHandoff
	}
	return s.View, *s.Payload, nil
}

func (s *Session) SelectTab(raw string) (dashboard.Tab, error) {
	view, _, err := s.ActiveDashboard()
	if err != nil {
		return "", err
	}

	if view == ViewTraveler {
		tab, err := dashboard.ParseTravelerTab(raw)
		if err != nil {
			return "", err
		}
		s.TravelerTab = tab
		return tab, nil
	}

	tab, err := dashboard.ParseBusinessTab(raw)
	if err != nil {
		return "", err
	}
	s.BusinessTab = tab
	return tab, nil
}

// ToggleEmergency opens or closes the traveler's emergency contacts modal.
func (s *Session) ToggleEmergency() (bool, error) {
	view, _, err := s.ActiveDashboard()
	if err != nil {
		return false, err
	}
	if view != ViewTraveler {
		return false, ErrWrongDashboard
	}
	s.EmergencyOpen = !s.EmergencyOpen
	return s.EmergencyOpen, nil
}

// ToggleProfileEditing flips the business profile edit flag.
func (s *Session) ToggleProfileEditing() (bool, error) {
	view, _, err := s.ActiveDashboard()
	if err != nil {
		return false, err
	}
	if view != ViewBusiness {
		return false, ErrWrongDashboard
	}
	s.ProfileEditing = !s.ProfileEditing
	return s.ProfileEditing, nil
}

// Clone returns a deep copy so callers can mutate without aliasing stored state.
func (s Session) Clone() Session {
	out := s
	if s.Onboarding != nil {
		flow := s.Onboarding.Clone()
		out.Onboarding = &flow
	}
	if s.Payload != nil {
		payload := *s.Payload
		payload.Interests = append([]string(nil), s.Payload.Interests...)
		out.Payload = &payload
	}
	return out
}

func (s *Session) resetDashboards() {
	s.TravelerTab = dashboard.DefaultTravelerTab()
	s.BusinessTab = dashboard.DefaultBusinessTab()
	s.EmergencyOpen = false
	s.ProfileEditing = false
}
