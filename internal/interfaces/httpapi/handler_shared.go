package httpapi

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/ubuntu-explorer/internal/domain/catalog"
	"github.com/riskibarqy/ubuntu-explorer/internal/domain/dashboard"
	"github.com/riskibarqy/ubuntu-explorer/internal/domain/onboarding"
	"github.com/riskibarqy/ubuntu-explorer/internal/domain/profile"
	"github.com/riskibarqy/ubuntu-explorer/internal/domain/session"
	"github.com/riskibarqy/ubuntu-explorer/internal/usecase"
)

type openOnboardingRequest struct {
	Mode string `json:"mode" validate:"omitempty,oneof=login signup"`
}

type onboardingEventRequest struct {
	Type     string `json:"type" validate:"required,oneof=switch_mode set_field submit select_role toggle_interest select_country"`
	Mode     string `json:"mode" validate:"required_if=Type switch_mode"`
	Field    string `json:"field" validate:"required_if=Type set_field"`
	Value    string `json:"value" validate:"max=200"`
	Role     string `json:"role" validate:"required_if=Type select_role"`
	Interest string `json:"interest" validate:"required_if=Type toggle_interest"`
	Country  string `json:"country" validate:"required_if=Type select_country"`
}

func (r onboardingEventRequest) toEvent() (onboarding.Event, error) {
	ev := onboarding.Event{
		Type:     onboarding.EventType(r.Type),
		Mode:     onboarding.Step(strings.TrimSpace(r.Mode)),
		Value:    r.Value,
		Role:     onboarding.Role(strings.TrimSpace(r.Role)),
		Interest: strings.TrimSpace(r.Interest),
		Country:  strings.TrimSpace(r.Country),
	}
	if r.Field != "" {
		field, err := onboarding.ParseField(strings.TrimSpace(r.Field))
		if err != nil {
			return onboarding.Event{}, fmt.Errorf("%w: %w: %q", usecase.ErrInvalidInput, err, r.Field)
		}
		ev.Field = field
	}
	return ev, nil
}

type selectTabRequest struct {
	Tab string `json:"tab" validate:"required,max=32"`
}

type interestDTO struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

type countryDTO struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Flag  string `json:"flag"`
}

type businessCategoryDTO struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type catalogDTO struct {
	Interests          []interestDTO         `json:"interests"`
	Countries          []countryDTO          `json:"countries"`
	BusinessCategories []businessCategoryDTO `json:"business_categories"`
}

type featureDTO struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type linkDTO struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

type linkGroupDTO struct {
	Title string    `json:"title"`
	Links []linkDTO `json:"links"`
}

type landingDTO struct {
	Headline         string         `json:"headline"`
	Tagline          string         `json:"tagline"`
	NavActions       []string       `json:"nav_actions"`
	HeroCountries    []countryDTO   `json:"hero_countries"`
	FeaturesHeading  string         `json:"features_heading"`
	Features         []featureDTO   `json:"features"`
	TrustedTravelers string         `json:"trusted_travelers"`
	CallToAction     string         `json:"call_to_action"`
	FooterGroups     []linkGroupDTO `json:"footer_groups"`
}

// draftDTO never carries the password, only whether one was typed.
type draftDTO struct {
	Email            string   `json:"email"`
	Name             string   `json:"name"`
	HasPassword      bool     `json:"has_password"`
	Role             string   `json:"role,omitempty"`
	Interests        []string `json:"interests"`
	Country          string   `json:"country"`
	BusinessName     string   `json:"business_name"`
	BusinessCategory string   `json:"business_category"`
	BusinessLocation string   `json:"business_location"`
}

type flowDTO struct {
	Step      string   `json:"step"`
	Title     string   `json:"title"`
	CanSubmit bool     `json:"can_submit"`
	Finished  bool     `json:"finished"`
	Draft     draftDTO `json:"draft"`
}

type payloadDTO struct {
	Role             string   `json:"role"`
	Email            string   `json:"email"`
	Name             string   `json:"name"`
	Interests        []string `json:"interests"`
	Country          string   `json:"country,omitempty"`
	BusinessName     string   `json:"business_name,omitempty"`
	BusinessCategory string   `json:"business_category,omitempty"`
	BusinessLocation string   `json:"business_location,omitempty"`
}

type sessionDTO struct {
	ID          string      `json:"id"`
	View        string      `json:"view"`
	OverlayOpen bool        `json:"overlay_open"`
	Onboarding  *flowDTO    `json:"onboarding,omitempty"`
	Payload     *payloadDTO `json:"payload,omitempty"`
	CreatedAt   string      `json:"created_at"`
	UpdatedAt   string      `json:"updated_at"`
}

type onboardingEventResponseDTO struct {
	Session   sessionDTO  `json:"session"`
	Completed *payloadDTO `json:"completed,omitempty"`
}

type tabDTO struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

type badgeDTO struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

type panelDTO struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

type recommendationDTO struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Category    string  `json:"category"`
	Location    string  `json:"location"`
	Rating      float64 `json:"rating"`
	Price       string  `json:"price"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
	Host        string  `json:"host"`
	Distance    string  `json:"distance"`
}

type foodCrawlDTO struct {
	Name      string  `json:"name"`
	Completed int     `json:"completed"`
	Total     int     `json:"total"`
	Percent   float64 `json:"percent"`
	NextDish  string  `json:"next_dish"`
	Location  string  `json:"location"`
}

type emergencyContactDTO struct {
	Name   string `json:"name"`
	Number string `json:"number"`
}

type travelerDashboardDTO struct {
	Greeting          string                `json:"greeting"`
	Profile           payloadDTO            `json:"profile"`
	Destination       countryDTO            `json:"destination"`
	Tabs              []tabDTO              `json:"tabs"`
	ActiveTab         string                `json:"active_tab"`
	InterestBadges    []badgeDTO            `json:"interest_badges"`
	Recommendations   []recommendationDTO   `json:"recommendations,omitempty"`
	Panel             *panelDTO             `json:"panel,omitempty"`
	FoodCrawl         foodCrawlDTO          `json:"food_crawl"`
	EmergencyOpen     bool                  `json:"emergency_open"`
	EmergencyContacts []emergencyContactDTO `json:"emergency_contacts"`
}

type businessStatsDTO struct {
	Views             int64   `json:"views"`
	Favorites         int64   `json:"favorites"`
	Bookings          int64   `json:"bookings"`
	Rating            float64 `json:"rating"`
	Reviews           int64   `json:"reviews"`
	MonthlyGrowth     string  `json:"monthly_growth"`
	BookingConversion string  `json:"booking_conversion"`
	RepeatCustomers   string  `json:"repeat_customers"`
	Website           string  `json:"website"`
	Verified          bool    `json:"verified"`
}

type bookingDTO struct {
	ID           int64  `json:"id"`
	CustomerName string `json:"customer_name"`
	Experience   string `json:"experience"`
	Date         string `json:"date"`
	Status       string `json:"status"`
	Tone         string `json:"tone"`
	Amount       string `json:"amount"`
}

type businessDashboardDTO struct {
	Heading        string           `json:"heading"`
	Profile        payloadDTO       `json:"profile"`
	CategoryLabel  string           `json:"category_label"`
	Stats          businessStatsDTO `json:"stats"`
	Tabs           []tabDTO         `json:"tabs"`
	ActiveTab      string           `json:"active_tab"`
	Bookings       []bookingDTO     `json:"bookings,omitempty"`
	QuickActions   []string         `json:"quick_actions,omitempty"`
	ProfileEditing bool             `json:"profile_editing"`
}

type dashboardDTO struct {
	SessionID string                `json:"session_id"`
	View      string                `json:"view"`
	Traveler  *travelerDashboardDTO `json:"traveler,omitempty"`
	Business  *businessDashboardDTO `json:"business,omitempty"`
}

type directoryProfileDTO struct {
	ID               string   `json:"id"`
	SessionID        string   `json:"session_id"`
	Role             string   `json:"role"`
	Email            string   `json:"email"`
	Name             string   `json:"name"`
	Interests        []string `json:"interests"`
	Country          string   `json:"country,omitempty"`
	BusinessName     string   `json:"business_name,omitempty"`
	BusinessCategory string   `json:"business_category,omitempty"`
	BusinessLocation string   `json:"business_location,omitempty"`
	CountryHint      string   `json:"country_hint,omitempty"`
	CreatedAt        string   `json:"created_at"`
}

func countryToDTO(v catalog.Country) countryDTO {
	return countryDTO{Value: v.Value, Label: v.Label, Flag: v.Flag}
}

func catalogToDTO(ctx context.Context, v usecase.CatalogOptions) catalogDTO {
	_, span := startSpan(ctx, "httpapi.catalogToDTO")
	defer span.End()

	out := catalogDTO{
		Interests:          make([]interestDTO, 0, len(v.Interests)),
		Countries:          make([]countryDTO, 0, len(v.Countries)),
		BusinessCategories: make([]businessCategoryDTO, 0, len(v.BusinessCategories)),
	}
	for _, item := range v.Interests {
		out.Interests = append(out.Interests, interestDTO{ID: item.ID, Label: item.Label, Icon: item.Icon})
	}
	for _, item := range v.Countries {
		out.Countries = append(out.Countries, countryToDTO(item))
	}
	for _, item := range v.BusinessCategories {
		out.BusinessCategories = append(out.BusinessCategories, businessCategoryDTO{Value: item.Value, Label: item.Label})
	}
	return out
}

func landingToDTO(ctx context.Context, v catalog.Landing) landingDTO {
	_, span := startSpan(ctx, "httpapi.landingToDTO")
	defer span.End()

	out := landingDTO{
		Headline:         v.Headline,
		Tagline:          v.Tagline,
		NavActions:       []string{string(onboarding.StepLogin), string(onboarding.StepSignup)},
		HeroCountries:    make([]countryDTO, 0, len(v.HeroCountries)),
		FeaturesHeading:  v.FeaturesHeading,
		Features:         make([]featureDTO, 0, len(v.Features)),
		TrustedTravelers: v.TrustedTravelers,
		CallToAction:     v.CallToAction,
		FooterGroups:     make([]linkGroupDTO, 0, len(v.FooterGroups)),
	}
	for _, item := range v.HeroCountries {
		out.HeroCountries = append(out.HeroCountries, countryToDTO(item))
	}
	for _, item := range v.Features {
		out.Features = append(out.Features, featureDTO{Title: item.Title, Description: item.Description})
	}
	for _, group := range v.FooterGroups {
		links := make([]linkDTO, 0, len(group.Links))
		for _, link := range group.Links {
			links = append(links, linkDTO{Label: link.Label, Href: link.Href})
		}
		out.FooterGroups = append(out.FooterGroups, linkGroupDTO{Title: group.Title, Links: links})
	}
	return out
}

func payloadToDTO(v onboarding.Payload) payloadDTO {
	return payloadDTO{
		Role:             string(v.Role),
		Email:            v.Email,
		Name:             v.Name,
		Interests:        nonNilStrings(v.Interests),
		Country:          v.Country,
		BusinessName:     v.BusinessName,
		BusinessCategory: v.BusinessCategory,
		BusinessLocation: v.BusinessLocation,
	}
}

func flowToDTO(v onboarding.Flow) flowDTO {
	return flowDTO{
		Step:      string(v.Step),
		Title:     v.Title(),
		CanSubmit: v.CanSubmit(),
		Finished:  v.Finished,
		Draft: draftDTO{
			Email:            v.Draft.Email,
			Name:             v.Draft.Name,
			HasPassword:      v.Draft.Password != "",
			Role:             string(v.Draft.Role),
			Interests:        nonNilStrings(v.Draft.Interests),
			Country:          v.Draft.Country,
			BusinessName:     v.Draft.BusinessName,
			BusinessCategory: v.Draft.BusinessCategory,
			BusinessLocation: v.Draft.BusinessLocation,
		},
	}
}

func sessionToDTO(ctx context.Context, v session.Session) sessionDTO {
	_, span := startSpan(ctx, "httpapi.sessionToDTO")
	defer span.End()

	out := sessionDTO{
		ID:          v.ID,
		View:        string(v.View),
		OverlayOpen: v.OverlayOpen(),
		CreatedAt:   formatTime(v.CreatedAt),
		UpdatedAt:   formatTime(v.UpdatedAt),
	}
	if v.Onboarding != nil {
		flow := flowToDTO(*v.Onboarding)
		out.Onboarding = &flow
	}
	if v.Payload != nil {
		payload := payloadToDTO(*v.Payload)
		out.Payload = &payload
	}
	return out
}

func tabsToDTO(items []dashboard.TabOption) []tabDTO {
	out := make([]tabDTO, 0, len(items))
	for _, item := range items {
		out = append(out, tabDTO{ID: string(item.ID), Label: item.Label})
	}
	return out
}

func travelerToDTO(v usecase.TravelerDashboard) *travelerDashboardDTO {
	out := &travelerDashboardDTO{
		Greeting:          v.Greeting,
		Profile:           payloadToDTO(v.Profile),
		Destination:       countryToDTO(v.Destination),
		Tabs:              tabsToDTO(v.Tabs),
		ActiveTab:         string(v.ActiveTab),
		InterestBadges:    make([]badgeDTO, 0, len(v.InterestBadges)),
		EmergencyOpen:     v.EmergencyOpen,
		EmergencyContacts: make([]emergencyContactDTO, 0, len(v.EmergencyContacts)),
		FoodCrawl: foodCrawlDTO{
			Name:      v.FoodCrawl.Name,
			Completed: v.FoodCrawl.Completed,
			Total:     v.FoodCrawl.Total,
			Percent:   v.FoodCrawl.Percent(),
			NextDish:  v.FoodCrawl.NextDish,
			Location:  v.FoodCrawl.Location,
		},
	}
	for _, badge := range v.InterestBadges {
		out.InterestBadges = append(out.InterestBadges, badgeDTO{ID: badge.ID, Label: badge.Label})
	}
	for _, item := range v.Recommendations {
		out.Recommendations = append(out.Recommendations, recommendationDTO{
			ID:          item.ID,
			Title:       item.Title,
			Category:    item.Category,
			Location:    item.Location,
			Rating:      item.Rating,
			Price:       item.Price,
			Image:       item.Image,
			Description: item.Description,
			Host:        item.Host,
			Distance:    item.Distance,
		})
	}
	if v.Panel != nil {
		out.Panel = &panelDTO{Title: v.Panel.Title, Message: v.Panel.Message}
	}
	for _, contact := range v.EmergencyContacts {
		out.EmergencyContacts = append(out.EmergencyContacts, emergencyContactDTO{Name: contact.Name, Number: contact.Number})
	}
	return out
}

func businessToDTO(v usecase.BusinessDashboard) *businessDashboardDTO {
	out := &businessDashboardDTO{
		Heading:       v.Heading,
		Profile:       payloadToDTO(v.Profile),
		CategoryLabel: v.CategoryLabel,
		Stats: businessStatsDTO{
			Views:             v.Stats.Views,
			Favorites:         v.Stats.Favorites,
			Bookings:          v.Stats.Bookings,
			Rating:            v.Stats.Rating,
			Reviews:           v.Stats.Reviews,
			MonthlyGrowth:     v.Stats.MonthlyGrowth,
			BookingConversion: v.Stats.BookingConversion,
			RepeatCustomers:   v.Stats.RepeatCustomers,
			Website:           v.Stats.Website,
			Verified:          v.Stats.Verified,
		},
		Tabs:           tabsToDTO(v.Tabs),
		ActiveTab:      string(v.ActiveTab),
		QuickActions:   v.QuickActions,
		ProfileEditing: v.ProfileEditing,
	}
	for _, item := range v.Bookings {
		out.Bookings = append(out.Bookings, bookingDTO{
			ID:           item.ID,
			CustomerName: item.CustomerName,
			Experience:   item.Experience,
			Date:         item.Date,
			Status:       string(item.Status),
			Tone:         item.Status.Tone(),
			Amount:       item.Amount,
		})
	}
	return out
}

func dashboardToDTO(ctx context.Context, v usecase.DashboardView) dashboardDTO {
	_, span := startSpan(ctx, "httpapi.dashboardToDTO")
	defer span.End()

	out := dashboardDTO{SessionID: v.SessionID, View: string(v.View)}
	if v.Traveler != nil {
		out.Traveler = travelerToDTO(*v.Traveler)
	}
	if v.Business != nil {
		out.Business = businessToDTO(*v.Business)
	}
	return out
}

func directoryProfileToDTO(v profile.Profile) directoryProfileDTO {
	return directoryProfileDTO{
		ID:               v.ID,
		SessionID:        v.SessionID,
		Role:             string(v.Role),
		Email:            v.Email,
		Name:             v.Name,
		Interests:        nonNilStrings(v.Interests),
		Country:          v.Country,
		BusinessName:     v.BusinessName,
		BusinessCategory: v.BusinessCategory,
		BusinessLocation: v.BusinessLocation,
		CountryHint:      v.CountryHint,
		CreatedAt:        formatTime(v.CreatedAt),
	}
}

func nonNilStrings(in []string) []string {
	if in == nil {
		return []string{}
	}
	return append([]string(nil), in...)
}

func formatTime(v time.Time) string {
	if v.IsZero() {
		return ""
	}
	return v.UTC().Format(time.RFC3339)
}
