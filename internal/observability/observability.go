package observability

import (
	"context"
	"errors"
	"fmt"

	"github.com/riskibarqy/ubuntu-explorer/internal/config"
	"github.com/riskibarqy/ubuntu-explorer/internal/platform/logging"
)

type stopper struct {
	name string
	stop func(context.Context) error
}

// Stack is the telemetry started for one process: Uptrace tracing and log
// export, Pyroscope profiling and the pprof debug server. Each part is
// optional and driven by config.
type Stack struct {
	logger    *logging.Logger
	stoppers  []stopper
	pprofAddr string
}

// Start brings up every enabled part. When one fails, the parts already
// running are stopped before the error is returned.
func Start(cfg config.Config, logger *logging.Logger) (*Stack, error) {
	if logger == nil {
		logger = logging.Default()
	}
	s := &Stack{logger: logger}

	stopTracing, err := startTracing(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("start tracing: %w", err)
	}
	s.add("uptrace", stopTracing)

	stopProfiler, err := startProfiler(cfg, logger)
	if err != nil {
		_ = s.Shutdown(context.Background())
		return nil, fmt.Errorf("start profiler: %w", err)
	}
	s.add("pyroscope", stopProfiler)

	addr, stopPprof, err := startPprof(cfg, logger)
	if err != nil {
		_ = s.Shutdown(context.Background())
		return nil, fmt.Errorf("start pprof: %w", err)
	}
	s.pprofAddr = addr
	s.add("pprof", stopPprof)

	return s, nil
}

// PprofAddr is the bound pprof listener address, or "" when disabled.
func (s *Stack) PprofAddr() string {
	return s.pprofAddr
}

// Shutdown stops the running parts in reverse start order.
func (s *Stack) Shutdown(ctx context.Context) error {
	var errs []error
	for i := len(s.stoppers) - 1; i >= 0; i-- {
		st := s.stoppers[i]
		if err := st.stop(ctx); err != nil {
			errs = append(errs, fmt.Errorf("stop %s: %w", st.name, err))
		}
	}
	s.stoppers = nil
	return errors.Join(errs...)
}

func (s *Stack) add(name string, stop func(context.Context) error) {
	if stop == nil {
		return
	}
	s.stoppers = append(s.stoppers, stopper{name: name, stop: stop})
}
