package memory

import (
	"github.com/riskibarqy/ubuntu-explorer/internal/domain/onboarding"
	"github.com/riskibarqy/ubuntu-explorer/internal/domain/profile"
)

func profileFixture(id string) profile.Profile {
	return profile.Profile{
		ID:        id,
		SessionID: "s-" + id,
		Role:      onboarding.RoleTraveler,
		Email:     "thandi@example.com",
		Name:      "Thandi",
		Interests: []string{"food"},
		Country:   "south-africa",
	}
}
