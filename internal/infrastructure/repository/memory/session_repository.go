package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/riskibarqy/ubuntu-explorer/internal/domain/session"
	"github.com/riskibarqy/ubuntu-explorer/internal/platform/cache"
)

const sessionKeyPrefix = "session:"

// SessionRepository keeps sessions in a TTL store. Every write restarts the
// session's TTL. Updates are serialized per session.
type SessionRepository struct {
	store *cache.Store
	now   func() time.Time

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewSessionRepository(store *cache.Store) *SessionRepository {
	return &SessionRepository{
		store: store,
		now:   time.Now,
		locks: make(map[string]*sync.Mutex),
	}
}

func (r *SessionRepository) Create(ctx context.Context, s session.Session) error {
	if s.ID == "" {
		return fmt.Errorf("session id is required")
	}
	key := sessionKeyPrefix + s.ID
	if _, exists := r.store.Get(ctx, key); exists {
		return fmt.Errorf("session %s already exists", s.ID)
	}
	r.store.Set(ctx, key, s.Clone())
	return nil
}

func (r *SessionRepository) Get(ctx context.Context, id string) (session.Session, bool, error) {
	v, ok := r.store.Get(ctx, sessionKeyPrefix+id)
	if !ok {
		return session.Session{}, false, nil
	}
	s, _ := v.(session.Session)
	return s.Clone(), true, nil
}

func (r *SessionRepository) Update(ctx context.Context, id string, fn func(*session.Session) error) (session.Session, error) {
	lock := r.lockFor(id)
	lock.Lock()
	defer lock.Unlock()

	key := sessionKeyPrefix + id
	v, ok := r.store.Get(ctx, key)
	if !ok {
		r.forget(id)
		return session.Session{}, session.ErrNotFound
	}

	current, _ := v.(session.Session)
	next := current.Clone()
	if err := fn(&next); err != nil {
		return session.Session{}, err
	}
	next.UpdatedAt = r.now()

	r.store.Set(ctx, key, next.Clone())
	return next, nil
}

// Sweep drops expired sessions and their locks.
func (r *SessionRepository) Sweep(ctx context.Context) int {
	removed := r.store.DeleteExpired(ctx)

	r.mu.Lock()
	for id := range r.locks {
		if _, ok := r.store.Get(ctx, sessionKeyPrefix+id); !ok {
			delete(r.locks, id)
		}
	}
	r.mu.Unlock()

	return removed
}

func (r *SessionRepository) lockFor(id string) *sync.Mutex {
	r.mu.Lock()
	defer r.mu.Unlock()

	lock, ok := r.locks[id]
	if !ok {
		lock = &sync.Mutex{}
		r.locks[id] = lock
	}
	return lock
}

func (r *SessionRepository) forget(id string) {
	r.mu.Lock()
	delete(r.locks, id)
	r.mu.Unlock()
}
