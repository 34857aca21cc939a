package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetrics_CountersAndHandler(t *testing.T) {
	m := New("ubuntu_explorer")

	m.SessionCreated()
	m.SessionCreated()
	m.Completed("traveler")
	m.OnboardingEvent("submit", "ok")
	m.DirectoryWrite("failed")

	if got := testutil.ToFloat64(m.SessionsCreated); got != 2 {
		t.Fatalf("sessions created=%v want 2", got)
	}
	if got := testutil.ToFloat64(m.OnboardingCompleted.WithLabelValues("traveler")); got != 1 {
		t.Fatalf("traveler completions=%v want 1", got)
	}

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body, _ := io.ReadAll(rec.Body)
	if !strings.Contains(string(body), `ubuntu_explorer_directory_writes_total{status="failed"} 1`) {
		t.Fatalf("metrics output missing directory counter:\n%s", body)
	}
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	m.SessionCreated()
	m.Logout("traveler")
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	if rec.Code != 404 {
		t.Fatalf("nil metrics handler status = %d, want 404", rec.Code)
	}
}
