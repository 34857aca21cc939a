package usecase

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/riskibarqy/ubuntu-explorer/internal/domain/onboarding"
	"github.com/riskibarqy/ubuntu-explorer/internal/domain/profile"
	"github.com/riskibarqy/ubuntu-explorer/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/ubuntu-explorer/internal/platform/cache"
	"github.com/riskibarqy/ubuntu-explorer/internal/platform/logging"
	"github.com/riskibarqy/ubuntu-explorer/internal/platform/metrics"
)

type sequenceIDs struct {
	mu   sync.Mutex
	next int
}

func (g *sequenceIDs) NewID() (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.next++
	return fmt.Sprintf("id-%d", g.next), nil
}

type recordingDirectory struct {
	mu      sync.Mutex
	entries []profile.Profile
}

func (d *recordingDirectory) Record(_ context.Context, p profile.Profile) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.entries = append(d.entries, p)
}

func (d *recordingDirectory) recorded() []profile.Profile {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]profile.Profile(nil), d.entries...)
}

type shellFixture struct {
	shell     *ShellService
	dashboard *DashboardService
	sessions  *memory.SessionRepository
	directory *recordingDirectory
	metrics   *metrics.Metrics
}

func newShellFixture(t *testing.T) shellFixture {
	t.Helper()

	sessions := memory.NewSessionRepository(cache.NewStore(time.Hour))
	catalogRepo := memory.NewCatalogRepository(memory.SeedCatalog())
	directory := &recordingDirectory{}
	m := metrics.New("test")

	return shellFixture{
		shell:     NewShellService(sessions, catalogRepo, &sequenceIDs{}, directory, m, logging.NewNop()),
		dashboard: NewDashboardService(sessions, catalogRepo),
		sessions:  sessions,
		directory: directory,
		metrics:   m,
	}
}

func (f shellFixture) newSession(t *testing.T) string {
	t.Helper()
	item, err := f.shell.CreateSession(context.Background(), CreateSessionInput{ClientIP: "203.0.113.7", CountryHint: "za"})
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	return item.ID
}

func (f shellFixture) apply(t *testing.T, sessionID string, events ...onboarding.Event) OnboardingResult {
	t.Helper()
	var out OnboardingResult
	for _, ev := range events {
		res, err := f.shell.ApplyOnboardingEvent(context.Background(), sessionID, ev)
		if err != nil {
			t.Fatalf("apply %s: %v", ev.Type, err)
		}
		out = res
	}
	return out
}

func signupEvents(name string) []onboarding.Event {
	return []onboarding.Event{
		{Type: onboarding.EventSetField, Field: onboarding.FieldName, Value: name},
		{Type: onboarding.EventSetField, Field: onboarding.FieldEmail, Value: "thandi@example.com"},
		{Type: onboarding.EventSetField, Field: onboarding.FieldPassword, Value: "secret"},
		{Type: onboarding.EventSubmit},
	}
}

func travelerEvents() []onboarding.Event {
	events := signupEvents("Thandi")
	return append(events,
		onboarding.Event{Type: onboarding.EventSelectRole, Role: onboarding.RoleTraveler},
		onboarding.Event{Type: onboarding.EventToggleInterest, Interest: "food"},
		onboarding.Event{Type: onboarding.EventToggleInterest, Interest: "culture"},
		onboarding.Event{Type: onboarding.EventSelectCountry, Country: "south-africa"},
		onboarding.Event{Type: onboarding.EventSubmit},
	)
}

func businessEvents() []onboarding.Event {
	events := signupEvents("Joe")
	return append(events,
		onboarding.Event{Type: onboarding.EventSelectRole, Role: onboarding.RoleBusiness},
		onboarding.Event{Type: onboarding.EventSetField, Field: onboarding.FieldBusinessName, Value: "Joe's Tours"},
		onboarding.Event{Type: onboarding.EventSetField, Field: onboarding.FieldBusinessCategory, Value: "tour"},
		onboarding.Event{Type: onboarding.EventSetField, Field: onboarding.FieldBusinessLocation, Value: "Cape Town"},
		onboarding.Event{Type: onboarding.EventSubmit},
	)
}

func (f shellFixture) completeTraveler(t *testing.T) string {
	t.Helper()
	id := f.newSession(t)
	if _, err := f.shell.OpenOnboarding(context.Background(), id, "signup"); err != nil {
		t.Fatalf("open onboarding: %v", err)
	}
	f.apply(t, id, travelerEvents()...)
	return id
}

func (f shellFixture) completeBusiness(t *testing.T) string {
	t.Helper()
	id := f.newSession(t)
	if _, err := f.shell.OpenOnboarding(context.Background(), id, "signup"); err != nil {
		t.Fatalf("open onboarding: %v", err)
	}
	f.apply(t, id, businessEvents()...)
	return id
}
