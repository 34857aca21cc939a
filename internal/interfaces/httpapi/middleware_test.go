package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/riskibarqy/ubuntu-explorer/internal/platform/id"
)

func TestRequireInternalJobToken(t *testing.T) {
	tests := []struct {
		name       string
		configured string
		provided   string
		want       int
	}{
		{name: "match", configured: "s3cret", provided: "s3cret", want: http.StatusOK},
		{name: "mismatch", configured: "s3cret", provided: "nope", want: http.StatusUnauthorized},
		{name: "prefix of token", configured: "s3cret", provided: "s3cre", want: http.StatusUnauthorized},
		{name: "token with suffix", configured: "s3cret", provided: "s3cret-extra", want: http.StatusUnauthorized},
		{name: "padded match", configured: "s3cret", provided: " s3cret ", want: http.StatusOK},
		{name: "missing header", configured: "s3cret", provided: "", want: http.StatusUnauthorized},
		{name: "not configured", configured: "", provided: "anything", want: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
			})
			handler := RequireInternalJobToken(tt.configured, next)

			req := httptest.NewRequest(http.MethodGet, "/v1/internal/directory/profiles", nil)
			if tt.provided != "" {
				req.Header.Set(internalJobTokenHeader, tt.provided)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tt.want {
				t.Fatalf("expected status %d, got %d", tt.want, rec.Code)
			}
		})
	}
}

func TestRequestID_KeepsOrMints(t *testing.T) {
	var seen string
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = requestIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/v1/landing", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if seen != "abc-123" || rec.Header().Get(requestIDHeader) != "abc-123" {
		t.Fatalf("expected caller request id to be kept, ctx=%q header=%q", seen, rec.Header().Get(requestIDHeader))
	}

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/landing", nil))
	if !id.Valid(seen) {
		t.Fatalf("expected a minted uuid, got %q", seen)
	}
}
