package httpapi

import (
	"context"
	"net"
	"net/http"
	"strings"
)

// clientHints are what the edge proxy tells us about the caller. Both values
// are best effort and only end up in the profile directory.
type clientHints struct {
	IP      string
	Country string
}

var (
	clientIPHeaders = []string{"Fly-Client-IP", "X-Forwarded-For", "X-Real-IP"}

	countryHeaders = []string{
		"Fly-Client-Country",
		"CF-IPCountry",
		"X-Vercel-IP-Country",
		"X-AppEngine-Country",
		"CloudFront-Viewer-Country",
	}
)

func resolveClientHints(ctx context.Context, r *http.Request) clientHints {
	_, span := startSpan(ctx, "httpapi.resolveClientHints")
	defer span.End()

	return clientHints{
		IP:      resolveClientIP(r),
		Country: resolveCountryCode(r),
	}
}

func resolveClientIP(r *http.Request) string {
	for _, header := range clientIPHeaders {
		if ip := normalizeIP(r.Header.Get(header)); ip != "" {
			return ip
		}
	}
	return normalizeIP(r.RemoteAddr)
}

// resolveCountryCode returns "" when no proxy header carries a usable ISO
// code. Cloudflare's XX (unknown) and T1 (Tor) are treated as unknown.
func resolveCountryCode(r *http.Request) string {
	for _, header := range countryHeaders {
		code := normalizeCountry(r.Header.Get(header))
		if code != "" && code != "XX" && code != "T1" {
			return code
		}
	}
	return ""
}

func normalizeIP(raw string) string {
	value := strings.TrimSpace(raw)
	if value == "" {
		return ""
	}
	if first, _, found := strings.Cut(value, ","); found {
		value = strings.TrimSpace(first)
	}

	if host, _, err := net.SplitHostPort(value); err == nil {
		value = strings.TrimSpace(host)
	}

	parsed := net.ParseIP(value)
	if parsed == nil {
		return ""
	}
	return parsed.String()
}

func normalizeCountry(raw string) string {
	code := strings.ToUpper(strings.TrimSpace(raw))
	if len(code) != 2 {
		return ""
	}
	for _, r := range code {
		if (r < 'A' || r > 'Z') && (r < '0' || r > '9') {
			return ""
		}
	}
	return code
}
