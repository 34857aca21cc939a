package usecase

import (
	"errors"
	"fmt"

	"github.com/riskibarqy/ubuntu-explorer/internal/domain/dashboard"
	"github.com/riskibarqy/ubuntu-explorer/internal/domain/onboarding"
	"github.com/riskibarqy/ubuntu-explorer/internal/domain/session"
)

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrConflict              = errors.New("action not allowed in the current state")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)

// classify tags a domain error with the usecase sentinel the transport maps
// to a status code. The domain error stays in the chain.
func classify(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, ErrInvalidInput),
		errors.Is(err, ErrNotFound),
		errors.Is(err, ErrConflict),
		errors.Is(err, ErrDependencyUnavailable):
		return err
	case errors.Is(err, session.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	case errors.Is(err, onboarding.ErrIncomplete),
		errors.Is(err, onboarding.ErrInvalidInitialStep),
		errors.Is(err, onboarding.ErrUnknownField),
		errors.Is(err, onboarding.ErrUnknownRole),
		errors.Is(err, onboarding.ErrUnknownEvent),
		errors.Is(err, onboarding.ErrUnknownOption),
		errors.Is(err, dashboard.ErrUnknownTab):
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	case errors.Is(err, onboarding.ErrInvalidTransition),
		errors.Is(err, onboarding.ErrFinished),
		errors.Is(err, session.ErrOnboardingClosed),
		errors.Is(err, session.ErrNotOnLanding),
		errors.Is(err, session.ErrDashboardNotActive),
		errors.Is(err, session.ErrWrongDashboard),
		errors.Is(err, session.ErrIncompleteHandoff):
		return fmt.Errorf("%w: %w", ErrConflict, err)
	default:
		return fmt.Errorf("%w: %w", ErrDependencyUnavailable, err)
	}
}
