package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/riskibarqy/ubuntu-explorer/internal/domain/profile"
	"github.com/riskibarqy/ubuntu-explorer/internal/platform/logging"
	"github.com/riskibarqy/ubuntu-explorer/internal/platform/metrics"
	"github.com/riskibarqy/ubuntu-explorer/internal/platform/resilience"
)

const (
	directoryWriteTimeout     = 5 * time.Second
	defaultDirectoryQueueSize = 256
	defaultDirectoryLimit     = 20
	maxDirectoryLimit         = 200
)

type DirectoryRecorderConfig struct {
	Workers        int
	QueueSize      int
	CircuitBreaker resilience.CircuitBreakerConfig
}

type directoryJob struct {
	ctx     context.Context
	profile profile.Profile
}

// DirectoryRecorder writes finished onboardings to the profile directory on a
// bounded worker pool. Profiles wait in a queue of QueueSize while every
// worker is busy; only a full queue drops them. Write failures are logged and
// counted; they never reach the session that produced the profile.
type DirectoryRecorder struct {
	repo    profile.Repository
	pool    *ants.Pool
	breaker *resilience.CircuitBreaker
	metrics *metrics.Metrics
	logger  *logging.Logger

	queue      chan directoryJob
	dispatched chan struct{}

	mu     sync.RWMutex
	closed bool
}

func NewDirectoryRecorder(repo profile.Repository, cfg DirectoryRecorderConfig, m *metrics.Metrics, logger *logging.Logger) (*DirectoryRecorder, error) {
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	queueSize := cfg.QueueSize
	if queueSize < 1 {
		queueSize = defaultDirectoryQueueSize
	}
	if logger == nil {
		logger = logging.Default()
	}

	p, err := ants.NewPool(workers)
	if err != nil {
		return nil, fmt.Errorf("create directory worker pool: %w", err)
	}

	r := &DirectoryRecorder{
		repo:       repo,
		pool:       p,
		breaker:    resilience.NewCircuitBreakerFromConfig(cfg.CircuitBreaker),
		metrics:    m,
		logger:     logger.Named("directory"),
		queue:      make(chan directoryJob, queueSize),
		dispatched: make(chan struct{}),
	}
	go r.dispatch()
	return r, nil
}

// Record queues p for insertion. The request context only contributes its
// trace; the write runs with its own deadline.
func (r *DirectoryRecorder) Record(ctx context.Context, p profile.Profile) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.closed {
		r.metrics.DirectoryWrite("dropped")
		r.logger.WarnContext(ctx, "directory closed, profile dropped", "profile_id", p.ID)
		return
	}

	select {
	case r.queue <- directoryJob{ctx: context.WithoutCancel(ctx), profile: p}:
	default:
		r.metrics.DirectoryWrite("dropped")
		r.logger.WarnContext(ctx, "directory queue full, profile dropped",
			"profile_id", p.ID,
			"queue_size", cap(r.queue),
		)
	}
}

// dispatch hands queued profiles to the pool. Submit blocks while every
// worker is busy, which keeps the backlog in the queue.
func (r *DirectoryRecorder) dispatch() {
	defer close(r.dispatched)

	for job := range r.queue {
		err := r.pool.Submit(func() {
			writeCtx, cancel := context.WithTimeout(job.ctx, directoryWriteTimeout)
			defer cancel()
			r.write(writeCtx, job.profile)
		})
		if err != nil {
			r.metrics.DirectoryWrite("dropped")
			r.logger.ErrorContext(job.ctx, "directory pool rejected profile", "profile_id", job.profile.ID, "error", err)
		}
	}
}

func (r *DirectoryRecorder) write(ctx context.Context, p profile.Profile) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DirectoryRecorder.write")
	defer span.End()

	err := r.breaker.Execute(func() error {
		return r.repo.Insert(ctx, p)
	})
	if err != nil {
		status := "failed"
		if errors.Is(err, resilience.ErrCircuitOpen) {
			status = "circuit_open"
		}
		r.metrics.DirectoryWrite(status)
		r.logger.ErrorContext(ctx, "directory write failed",
			"profile_id", p.ID,
			"session_id", p.SessionID,
			"role", p.Role,
			"error", err,
		)
		return
	}

	r.metrics.DirectoryWrite("ok")
	r.logger.DebugContext(ctx, "directory write ok", "profile_id", p.ID, "role", p.Role)
}

// ListRecent reads the newest directory entries. limit is clamped to
// [1, 200] with 20 as the default.
func (r *DirectoryRecorder) ListRecent(ctx context.Context, limit int) ([]profile.Profile, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DirectoryRecorder.ListRecent")
	defer span.End()

	switch {
	case limit <= 0:
		limit = defaultDirectoryLimit
	case limit > maxDirectoryLimit:
		limit = maxDirectoryLimit
	}

	items, err := r.repo.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: list directory: %w", ErrDependencyUnavailable, err)
	}
	return items, nil
}

// Close stops accepting profiles and waits up to timeout for the queue and
// the in-flight writes to finish. Calling it again is a no-op.
func (r *DirectoryRecorder) Close(timeout time.Duration) error {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil
	}
	r.closed = true
	close(r.queue)
	r.mu.Unlock()

	deadline := time.Now().Add(timeout)
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-r.dispatched:
	case <-timer.C:
		r.pool.Release()
		return fmt.Errorf("drain directory queue: %d profiles left after %s", len(r.queue), timeout)
	}

	if err := r.pool.ReleaseTimeout(max(time.Until(deadline), time.Millisecond)); err != nil {
		return fmt.Errorf("release directory pool: %w", err)
	}
	return nil
}
