package httpapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestResolveClientHints(t *testing.T) {
	tests := []struct {
		name        string
		headers     map[string]string
		remoteAddr  string
		wantIP      string
		wantCountry string
	}{
		{
			name:        "fly headers win",
			headers:     map[string]string{"Fly-Client-IP": "203.0.113.7", "X-Forwarded-For": "198.51.100.1", "Fly-Client-Country": "za"},
			remoteAddr:  "10.0.0.1:1234",
			wantIP:      "203.0.113.7",
			wantCountry: "ZA",
		},
		{
			name:        "first forwarded hop",
			headers:     map[string]string{"X-Forwarded-For": "198.51.100.1, 10.0.0.2", "CF-IPCountry": "BR"},
			remoteAddr:  "10.0.0.1:1234",
			wantIP:      "198.51.100.1",
			wantCountry: "BR",
		},
		{
			name:        "remote addr fallback",
			remoteAddr:  "192.0.2.10:5555",
			wantIP:      "192.0.2.10",
			wantCountry: "",
		},
		{
			name:        "unknown country codes dropped",
			headers:     map[string]string{"CF-IPCountry": "XX", "X-Vercel-IP-Country": "in"},
			remoteAddr:  "192.0.2.10:5555",
			wantIP:      "192.0.2.10",
			wantCountry: "IN",
		},
		{
			name:        "garbage ignored",
			headers:     map[string]string{"X-Real-IP": "not-an-ip", "CF-IPCountry": "South Africa"},
			remoteAddr:  "192.0.2.10:5555",
			wantIP:      "192.0.2.10",
			wantCountry: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/v1/sessions", nil)
			req.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}

			got := resolveClientHints(context.Background(), req)
			if got.IP != tt.wantIP || got.Country != tt.wantCountry {
				t.Fatalf("hints=%+v want ip=%q country=%q", got, tt.wantIP, tt.wantCountry)
			}
		})
	}
}
