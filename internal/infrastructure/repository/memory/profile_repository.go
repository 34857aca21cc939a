package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/ubuntu-explorer/internal/domain/profile"
)

// ProfileRepository is an append-only in-memory directory.
type ProfileRepository struct {
	mu    sync.RWMutex
	items []profile.Profile
}

func NewProfileRepository() *ProfileRepository {
	return &ProfileRepository{}
}

func (r *ProfileRepository) Insert(_ context.Context, p profile.Profile) error {
	p.Interests = append([]string(nil), p.Interests...)

	r.mu.Lock()
	r.items = append(r.items, p)
	r.mu.Unlock()
	return nil
}

// ListRecent returns the newest entries first.
func (r *ProfileRepository) ListRecent(_ context.Context, limit int) ([]profile.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if limit <= 0 || limit > len(r.items) {
		limit = len(r.items)
	}

	out := make([]profile.Profile, 0, limit)
	for i := len(r.items) - 1; i >= 0 && len(out) < limit; i-- {
		item := r.items[i]
		item.Interests = append([]string(nil), item.Interests...)
		out = append(out, item)
	}
	return out, nil
}
