package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the service counters. A nil *Metrics records nothing.
type Metrics struct {
	registry *prometheus.Registry

	SessionsCreated     prometheus.Counter
	OnboardingEvents    *prometheus.CounterVec
	OnboardingCompleted *prometheus.CounterVec
	Logouts             *prometheus.CounterVec
	DirectoryWrites     *prometheus.CounterVec
}

func New(namespace string) *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		SessionsCreated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_created_total",
			Help:      "Total number of browser sessions created",
		}),
		OnboardingEvents: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "onboarding_events_total",
				Help:      "Onboarding events applied, by event type and outcome",
			},
			[]string{"event", "outcome"},
		),
		OnboardingCompleted: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "onboarding_completed_total",
				Help:      "Completed onboarding flows by role",
			},
			[]string{"role"},
		),
		Logouts: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "logouts_total",
				Help:      "Logouts by the view they were issued from",
			},
			[]string{"view"},
		),
		DirectoryWrites: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "directory_writes_total",
				Help:      "Profile directory writes by status",
			},
			[]string{"status"},
		),
	}
}

func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) SessionCreated() {
	if m == nil {
		return
	}
	m.SessionsCreated.Inc()
}

func (m *Metrics) OnboardingEvent(event, outcome string) {
	if m == nil {
		return
	}
	m.OnboardingEvents.WithLabelValues(event, outcome).Inc()
}

func (m *Metrics) Completed(role string) {
	if m == nil {
		return
	}
	m.OnboardingCompleted.WithLabelValues(role).Inc()
}

func (m *Metrics) Logout(view string) {
	if m == nil {
		return
	}
	m.Logouts.WithLabelValues(view).Inc()
}

func (m *Metrics) DirectoryWrite(status string) {
	if m == nil {
		return
	}
	m.DirectoryWrites.WithLabelValues(status).Inc()
}
