package session

import "context"

// Repository stores sessions. Update runs fn against the latest state and
// persists the result atomically per session; it returns ErrNotFound for
// unknown or expired ids.
type Repository interface {
	Create(ctx context.Context, s Session) error
	Get(ctx context.Context, id string) (Session, bool, error)
	Update(ctx context.Context, id string, fn func(*Session) error) (Session, error)
}
