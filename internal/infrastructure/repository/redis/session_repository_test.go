package redis

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/ubuntu-explorer/internal/domain/onboarding"
	"github.com/riskibarqy/ubuntu-explorer/internal/domain/session"
)

func setupRepository(t *testing.T, ttl time.Duration) (*SessionRepository, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	require.NoError(t, client.Ping(context.Background()).Err())
	return NewSessionRepository(client, ttl), mr
}

func TestSessionRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo, mr := setupRepository(t, 30*time.Minute)

	s := session.New("s-1", time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC))
	require.NoError(t, repo.Create(ctx, s))
	require.Error(t, repo.Create(ctx, s), "duplicate create must fail")

	require.True(t, mr.Exists(sessionKey("s-1")))
	require.Equal(t, 30*time.Minute, mr.TTL(sessionKey("s-1")))

	got, ok, err := repo.Get(ctx, "s-1")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, session.ViewLanding, got.View)
	require.True(t, got.CreatedAt.Equal(s.CreatedAt))
}

func TestSessionRepository_UpdatePersistsFlowState(t *testing.T) {
	ctx := context.Background()
	repo, _ := setupRepository(t, time.Hour)
	require.NoError(t, repo.Create(ctx, session.New("s-1", time.Now())))

	_, err := repo.Update(ctx, "s-1", func(s *session.Session) error {
		if err := s.OpenOnboarding(onboarding.StepSignup); err != nil {
			return err
		}
		_, err := s.ApplyOnboarding(onboarding.Event{
			Type:  onboarding.EventSetField,
			Field: onboarding.FieldName,
			Value: "Thandi",
		})
		return err
	})
	require.NoError(t, err)

	got, ok, err := repo.Get(ctx, "s-1")
	require.NoError(t, err)
	require.True(t, ok)
	require.NotNil(t, got.Onboarding)
	require.Equal(t, onboarding.StepSignup, got.Onboarding.Step)
	require.Equal(t, "Thandi", got.Onboarding.Draft.Name)
}

func TestSessionRepository_UpdateMissingAndFailing(t *testing.T) {
	ctx := context.Background()
	repo, _ := setupRepository(t, time.Hour)

	_, err := repo.Update(ctx, "missing", func(*session.Session) error { return nil })
	require.ErrorIs(t, err, session.ErrNotFound)

	require.NoError(t, repo.Create(ctx, session.New("s-1", time.Now())))
	_, err = repo.Update(ctx, "s-1", func(s *session.Session) error {
		s.View = session.ViewTraveler
		return session.ErrDashboardNotActive
	})
	require.True(t, errors.Is(err, session.ErrDashboardNotActive))

	got, _, err := repo.Get(ctx, "s-1")
	require.NoError(t, err)
	require.Equal(t, session.ViewLanding, got.View)
}

func TestSessionRepository_Expiry(t *testing.T) {
	ctx := context.Background()
	repo, mr := setupRepository(t, time.Minute)
	require.NoError(t, repo.Create(ctx, session.New("s-1", time.Now())))

	mr.FastForward(2 * time.Minute)

	_, ok, err := repo.Get(ctx, "s-1")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestSessionRepository_ConcurrentToggles(t *testing.T) {
	ctx := context.Background()
	repo, _ := setupRepository(t, time.Hour)
	require.NoError(t, repo.Create(ctx, session.New("s-1", time.Now())))

	_, err := repo.Update(ctx, "s-1", func(s *session.Session) error {
		if err := s.OpenOnboarding(onboarding.StepLogin); err != nil {
			return err
		}
		for _, ev := range []onboarding.Event{
			{Type: onboarding.EventSetField, Field: onboarding.FieldEmail, Value: "t@example.com"},
			{Type: onboarding.EventSetField, Field: onboarding.FieldPassword, Value: "pw"},
			{Type: onboarding.EventSubmit},
			{Type: onboarding.EventSelectRole, Role: onboarding.RoleTraveler},
		} {
			if _, err := s.ApplyOnboarding(ev); err != nil {
				return err
			}
		}
		return nil
	})
	require.NoError(t, err)

	interests := []string{"food", "nature", "culture"}
	var wg sync.WaitGroup
	errs := make(chan error, len(interests))
	for _, interest := range interests {
		wg.Add(1)
		go func(interest string) {
			defer wg.Done()
			_, err := repo.Update(ctx, "s-1", func(s *session.Session) error {
				_, err := s.ApplyOnboarding(onboarding.Event{Type: onboarding.EventToggleInterest, Interest: interest})
				return err
			})
			errs <- err
		}(interest)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	got, _, err := repo.Get(ctx, "s-1")
	require.NoError(t, err)
	require.ElementsMatch(t, interests, got.Onboarding.Draft.Interests)
}

func TestSessionRepository_Ping(t *testing.T) {
	ctx := context.Background()
	repo, mr := setupRepository(t, time.Hour)
	require.NoError(t, repo.Ping(ctx))

	mr.Close()
	require.Error(t, repo.Ping(ctx))
}
