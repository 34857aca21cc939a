package redis

import (
	"context"
	"time"

	"github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"
	goredis "github.com/redis/go-redis/v9"

	"github.com/riskibarqy/ubuntu-explorer/internal/domain/session"
)

const (
	sessionKeyPrefix  = "ubuntu-explorer:session:"
	maxUpdateAttempts = 5
)

var errSessionExists = errors.New("session already exists")

// SessionRepository stores one JSON document per session under a TTL key.
// Updates use optimistic WATCH/MULTI so two writers on the same session never
// interleave.
type SessionRepository struct {
	client goredis.UniversalClient
	ttl    time.Duration
	now    func() time.Time
}

func NewSessionRepository(client goredis.UniversalClient, ttl time.Duration) *SessionRepository {
	return &SessionRepository{
		client: client,
		ttl:    ttl,
		now:    time.Now,
	}
}

func (r *SessionRepository) Create(ctx context.Context, s session.Session) error {
	if s.ID == "" {
		return errors.New("session id is required")
	}

	payload, err := sonic.Marshal(s)
	if err != nil {
		return errors.Wrap(err, "encode session")
	}

	created, err := r.client.SetNX(ctx, sessionKey(s.ID), payload, r.ttl).Result()
	if err != nil {
		return errors.Wrapf(err, "create session %s", s.ID)
	}
	if !created {
		return errors.Wrapf(errSessionExists, "create session %s", s.ID)
	}
	return nil
}

func (r *SessionRepository) Get(ctx context.Context, id string) (session.Session, bool, error) {
	raw, err := r.client.Get(ctx, sessionKey(id)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return session.Session{}, false, nil
	}
	if err != nil {
		return session.Session{}, false, errors.Wrapf(err, "get session %s", id)
	}

	s, err := decodeSession(raw)
	if err != nil {
		return session.Session{}, false, errors.Wrapf(err, "decode session %s", id)
	}
	return s, true, nil
}

func (r *SessionRepository) Update(ctx context.Context, id string, fn func(*session.Session) error) (session.Session, error) {
	key := sessionKey(id)

	for attempt := 0; attempt < maxUpdateAttempts; attempt++ {
		var out session.Session
		err := r.client.Watch(ctx, func(tx *goredis.Tx) error {
			raw, err := tx.Get(ctx, key).Bytes()
			if errors.Is(err, goredis.Nil) {
				return session.ErrNotFound
			}
			if err != nil {
				return errors.Wrapf(err, "get session %s", id)
			}

			current, err := decodeSession(raw)
			if err != nil {
				return errors.Wrapf(err, "decode session %s", id)
			}
			if err := fn(&current); err != nil {
				return err
			}
			current.UpdatedAt = r.now()

			payload, err := sonic.Marshal(current)
			if err != nil {
				return errors.Wrap(err, "encode session")
			}

			_, err = tx.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
				pipe.Set(ctx, key, payload, r.ttl)
				return nil
			})
			if err != nil {
				return err
			}
			out = current
			return nil
		}, key)

		if errors.Is(err, goredis.TxFailedErr) {
			continue
		}
		if err != nil {
			return session.Session{}, err
		}
		return out, nil
	}

	return session.Session{}, errors.Newf("update session %s: too many concurrent writers", id)
}

// Ping reports whether the backing Redis answers.
func (r *SessionRepository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func decodeSession(raw []byte) (session.Session, error) {
	var s session.Session
	if err := sonic.Unmarshal(raw, &s); err != nil {
		return session.Session{}, err
	}
	return s, nil
}

func sessionKey(id string) string {
	return sessionKeyPrefix + id
}
