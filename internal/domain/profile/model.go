package profile

import (
	"context"
	"time"

	"github.com/riskibarqy/ubuntu-explorer/internal/domain/onboarding"
)

// Profile is the durable record of one finished onboarding. It never carries
// the password.
type Profile struct {
	ID               string
	SessionID        string
	Role             onboarding.Role
	Email            string
	Name             string
	Interests        []string
	Country          string
	BusinessName     string
	BusinessCategory string
	BusinessLocation string
	ClientIP         string
	CountryHint      string
	CreatedAt        time.Time
}

func FromPayload(id, sessionID string, p onboarding.Payload, createdAt time.Time) Profile {
	return Profile{
		ID:               id,
		SessionID:        sessionID,
		Role:             p.Role,
		Email:            p.Email,
		Name:             p.Name,
		Interests:        append([]string(nil), p.Interests...),
		Country:          p.Country,
		BusinessName:     p.BusinessName,
		BusinessCategory: p.BusinessCategory,
		BusinessLocation: p.BusinessLocation,
		CreatedAt:        createdAt,
	}
}

// Repository is the append-only directory of finished onboardings.
type Repository interface {
	Insert(ctx context.Context, p Profile) error
	ListRecent(ctx context.Context, limit int) ([]Profile, error)
}
