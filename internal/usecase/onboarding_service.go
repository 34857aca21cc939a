package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/ubuntu-explorer/internal/domain/onboarding"
	"github.com/riskibarqy/ubuntu-explorer/internal/domain/profile"
	"github.com/riskibarqy/ubuntu-explorer/internal/domain/session"
)

// OnboardingResult is the session after an event. Completed is set only when
// the event finished the flow.
type OnboardingResult struct {
	Session   session.Session
	Completed *onboarding.Payload
}

// OpenOnboarding shows the overlay in login or signup mode (signup when mode
// is empty).
func (s *ShellService) OpenOnboarding(ctx context.Context, sessionID, mode string) (session.Session, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ShellService.OpenOnboarding")
	defer span.End()

	step, err := onboarding.ParseInitialStep(strings.TrimSpace(mode))
	if err != nil {
		return session.Session{}, classify(err)
	}

	return s.update(ctx, sessionID, func(current *session.Session) error {
		return current.OpenOnboarding(step)
	})
}

// CloseOnboarding discards the draft. Closing an already closed overlay is
// accepted.
func (s *ShellService) CloseOnboarding(ctx context.Context, sessionID string) (session.Session, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ShellService.CloseOnboarding")
	defer span.End()

	return s.update(ctx, sessionID, func(current *session.Session) error {
		current.CloseOnboarding()
		return nil
	})
}

func (s *ShellService) ApplyOnboardingEvent(ctx context.Context, sessionID string, ev onboarding.Event) (OnboardingResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ShellService.ApplyOnboardingEvent")
	defer span.End()

	if err := s.validateOption(ctx, ev); err != nil {
		s.metrics.OnboardingEvent(string(ev.Type), "rejected")
		return OnboardingResult{}, err
	}

	var completed *onboarding.Payload
	item, err := s.update(ctx, sessionID, func(current *session.Session) error {
		payload, err := current.ApplyOnboarding(ev)
		if err != nil {
			return err
		}
		completed = payload
		return nil
	})
	if err != nil {
		s.metrics.OnboardingEvent(string(ev.Type), "rejected")
		return OnboardingResult{}, err
	}
	s.metrics.OnboardingEvent(string(ev.Type), "applied")

	if completed != nil {
		s.recordCompletion(ctx, item, *completed)
	}

	return OnboardingResult{Session: item, Completed: completed}, nil
}

func (s *ShellService) recordCompletion(ctx context.Context, item session.Session, payload onboarding.Payload) {
	s.metrics.Completed(string(payload.Role))
	s.logger.InfoContext(ctx, "onboarding completed",
		"session_id", item.ID,
		"role", payload.Role,
		"interests", len(payload.Interests),
	)

	profileID, err := s.ids.NewID()
	if err != nil {
		s.logger.WarnContext(ctx, "skip directory record", "session_id", item.ID, "error", err)
		return
	}

	entry := profile.FromPayload(profileID, item.ID, payload, s.now().UTC())
	entry.ClientIP = item.ClientIP
	entry.CountryHint = item.CountryHint
	s.directory.Record(ctx, entry)
}

// validateOption checks catalog-backed values before they reach the flow.
func (s *ShellService) validateOption(ctx context.Context, ev onboarding.Event) error {
	switch ev.Type {
	case onboarding.EventToggleInterest:
		items, err := s.catalog.ListInterests(ctx)
		if err != nil {
			return fmt.Errorf("%w: list interests: %w", ErrDependencyUnavailable, err)
		}
		for _, item := range items {
			if item.ID == strings.TrimSpace(ev.Interest) {
				return nil
			}
		}
		return optionError("interest", ev.Interest)

	case onboarding.EventSelectCountry:
		items, err := s.catalog.ListCountries(ctx)
		if err != nil {
			return fmt.Errorf("%w: list countries: %w", ErrDependencyUnavailable, err)
		}
		for _, item := range items {
			if item.Value == strings.TrimSpace(ev.Country) {
				return nil
			}
		}
		return optionError("country", ev.Country)

	case onboarding.EventSetField:
		if ev.Field != onboarding.FieldBusinessCategory || strings.TrimSpace(ev.Value) == "" {
			return nil
		}
		items, err := s.catalog.ListBusinessCategories(ctx)
		if err != nil {
			return fmt.Errorf("%w: list business categories: %w", ErrDependencyUnavailable, err)
		}
		for _, item := range items {
			if item.Value == strings.TrimSpace(ev.Value) {
				return nil
			}
		}
		return optionError("business_category", ev.Value)
	}
	return nil
}

func optionError(kind, value string) error {
	return classify(fmt.Errorf("%w: %s %q", onboarding.ErrUnknownOption, kind, value))
}
