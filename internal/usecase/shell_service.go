package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/ubuntu-explorer/internal/domain/catalog"
	"github.com/riskibarqy/ubuntu-explorer/internal/domain/profile"
	"github.com/riskibarqy/ubuntu-explorer/internal/domain/session"
	"github.com/riskibarqy/ubuntu-explorer/internal/platform/id"
	"github.com/riskibarqy/ubuntu-explorer/internal/platform/logging"
	"github.com/riskibarqy/ubuntu-explorer/internal/platform/metrics"
)

// DirectoryWriter receives finished onboardings. Record must not block the
// caller on the directory backend.
type DirectoryWriter interface {
	Record(ctx context.Context, p profile.Profile)
}

type noopDirectoryWriter struct{}

func (noopDirectoryWriter) Record(context.Context, profile.Profile) {}

type CreateSessionInput struct {
	ClientIP    string
	CountryHint string
}

// ShellService owns the top-level view of each session: landing, the
// onboarding overlay, and the hand-off to a dashboard.
type ShellService struct {
	sessions  session.Repository
	catalog   catalog.Repository
	ids       id.Generator
	directory DirectoryWriter
	metrics   *metrics.Metrics
	logger    *logging.Logger
	now       func() time.Time
}

func NewShellService(
	sessions session.Repository,
	catalogRepo catalog.Repository,
	ids id.Generator,
	directory DirectoryWriter,
	m *metrics.Metrics,
	logger *logging.Logger,
) *ShellService {
	if directory == nil {
		directory = noopDirectoryWriter{}
	}
	if logger == nil {
		logger = logging.Default()
	}

	return &ShellService{
		sessions:  sessions,
		catalog:   catalogRepo,
		ids:       ids,
		directory: directory,
		metrics:   m,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *ShellService) CreateSession(ctx context.Context, input CreateSessionInput) (session.Session, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ShellService.CreateSession")
	defer span.End()

	sessionID, err := s.ids.NewID()
	if err != nil {
		return session.Session{}, fmt.Errorf("%w: generate session id: %w", ErrDependencyUnavailable, err)
	}

	item := session.New(sessionID, s.now().UTC())
	item.ClientIP = strings.TrimSpace(input.ClientIP)
	item.CountryHint = strings.ToUpper(strings.TrimSpace(input.CountryHint))

	if err := s.sessions.Create(ctx, item); err != nil {
		return session.Session{}, fmt.Errorf("%w: create session: %w", ErrDependencyUnavailable, err)
	}

	s.metrics.SessionCreated()
	s.logger.DebugContext(ctx, "session created", "session_id", sessionID, "country_hint", item.CountryHint)
	return item, nil
}

func (s *ShellService) GetSession(ctx context.Context, sessionID string) (session.Session, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ShellService.GetSession")
	defer span.End()

	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return session.Session{}, fmt.Errorf("%w: session id is required", ErrInvalidInput)
	}

	item, exists, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return session.Session{}, fmt.Errorf("%w: get session: %w", ErrDependencyUnavailable, err)
	}
	if !exists {
		return session.Session{}, fmt.Errorf("%w: session=%s", ErrNotFound, sessionID)
	}
	return item, nil
}

// Logout returns the shell to landing. It is a no-op on landing.
func (s *ShellService) Logout(ctx context.Context, sessionID string) (session.Session, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ShellService.Logout")
	defer span.End()

	var from session.View
	item, err := s.update(ctx, sessionID, func(current *session.Session) error {
		from = current.View
		current.Logout()
		return nil
	})
	if err != nil {
		return session.Session{}, err
	}

	if from != session.ViewLanding {
		s.metrics.Logout(string(from))
		s.logger.InfoContext(ctx, "session logged out", "session_id", sessionID, "from_view", from)
	}
	return item, nil
}

func (s *ShellService) update(ctx context.Context, sessionID string, fn func(*session.Session) error) (session.Session, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return session.Session{}, fmt.Errorf("%w: session id is required", ErrInvalidInput)
	}

	item, err := s.sessions.Update(ctx, sessionID, fn)
	if err != nil {
		return session.Session{}, classify(err)
	}
	return item, nil
}
