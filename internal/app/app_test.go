package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	"github.com/riskibarqy/ubuntu-explorer/internal/config"
	"github.com/riskibarqy/ubuntu-explorer/internal/platform/logging"
)

func testConfig() config.Config {
	return config.Config{
		AppEnv:                         config.EnvDev,
		ServiceName:                    "ubuntu-explorer-api",
		HTTPAddr:                       ":0",
		ReadTimeout:                    time.Second,
		WriteTimeout:                   time.Second,
		SessionTTL:                     time.Minute,
		SessionSweepInterval:           time.Minute,
		SessionStore:                   config.SessionStoreMemory,
		CatalogCacheTTL:                time.Minute,
		DirectoryWorkers:               2,
		DirectoryCircuitEnabled:        true,
		DirectoryCircuitFailureCount:   3,
		DirectoryCircuitOpenTimeout:    time.Second,
		DirectoryCircuitHalfOpenMaxReq: 1,
		MetricsEnabled:                 true,
		InternalJobToken:               "job-token",
	}
}

func TestNew_MemoryStoresServeRequests(t *testing.T) {
	a, err := New(context.Background(), testConfig(), logging.NewNop())
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	t.Cleanup(func() { _ = a.Shutdown(context.Background()) })

	if a.sweeper == nil {
		t.Fatalf("memory session store must register a sweeper")
	}

	for _, path := range []string{"/healthz", "/v1/landing", "/metrics"} {
		rec := httptest.NewRecorder()
		a.Server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("GET %s: expected 200, got %d body=%s", path, rec.Code, rec.Body.String())
		}
	}

	rec := httptest.NewRecorder()
	a.Server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/sessions", strings.NewReader("")))
	if rec.Code != http.StatusCreated {
		t.Fatalf("create session: expected 201, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestNew_MetricsDisabledHidesEndpoint(t *testing.T) {
	cfg := testConfig()
	cfg.MetricsEnabled = false

	a, err := New(context.Background(), cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	t.Cleanup(func() { _ = a.Shutdown(context.Background()) })

	rec := httptest.NewRecorder()
	a.Server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for /metrics when disabled, got %d", rec.Code)
	}
}

func TestNew_RedisSessionStore(t *testing.T) {
	mr := miniredis.RunT(t)

	cfg := testConfig()
	cfg.SessionStore = config.SessionStoreRedis
	cfg.RedisAddr = mr.Addr()

	a, err := New(context.Background(), cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	t.Cleanup(func() { _ = a.Shutdown(context.Background()) })

	if a.sweeper != nil {
		t.Fatalf("redis session store must not register a sweeper")
	}

	rec := httptest.NewRecorder()
	a.Server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/sessions", strings.NewReader("")))
	if rec.Code != http.StatusCreated {
		t.Fatalf("create session: expected 201, got %d body=%s", rec.Code, rec.Body.String())
	}
	if len(mr.Keys()) != 1 {
		t.Fatalf("expected one session key in redis, got %v", mr.Keys())
	}
}

func TestNew_RedisUnavailable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	cfg := testConfig()
	cfg.SessionStore = config.SessionStoreRedis
	cfg.RedisAddr = addr

	if _, err := New(context.Background(), cfg, logging.NewNop()); err == nil {
		t.Fatalf("expected error when redis is unreachable")
	}
}

func TestNew_RejectsEmptyAddr(t *testing.T) {
	cfg := testConfig()
	cfg.HTTPAddr = ""
	if _, err := New(context.Background(), cfg, logging.NewNop()); err == nil {
		t.Fatalf("expected error for empty http addr")
	}
}

type countingSweeper struct {
	calls atomic.Int32
}

func (s *countingSweeper) Sweep(context.Context) int {
	s.calls.Add(1)
	return 1
}

func TestRunSessionSweeper_StopsWithContext(t *testing.T) {
	sweeper := &countingSweeper{}
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		runSessionSweeper(ctx, sweeper, 5*time.Millisecond, logging.NewNop())
		close(done)
	}()

	deadline := time.Now().Add(time.Second)
	for sweeper.calls.Load() < 2 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("sweeper did not stop after cancel")
	}
	if sweeper.calls.Load() < 2 {
		t.Fatalf("expected at least two sweeps, got %d", sweeper.calls.Load())
	}
}
