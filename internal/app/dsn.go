package app

import (
	"net/url"
	"strings"
)

const (
	maxTracedQueryLength = 512
	preparedBinaryParam  = "disable_prepared_binary_result"
)

// dbTarget is DB_URL after normalization, plus the database name used as the
// db.name span attribute.
type dbTarget struct {
	DSN  string
	Name string
}

// parseDBTarget accepts both URL ("postgres://...") and keyword ("host=...
// dbname=...") connection strings. Only URL strings get the prepared-binary
// flag appended; an explicit value in the URL is left alone.
func parseDBTarget(raw string, disablePreparedBinary bool) dbTarget {
	raw = strings.TrimSpace(raw)
	target := dbTarget{DSN: raw}

	parsed, err := url.Parse(raw)
	if err != nil || parsed.Scheme == "" {
		target.Name = keywordValue(raw, "dbname")
		return target
	}

	target.Name = strings.TrimPrefix(parsed.Path, "/")
	if disablePreparedBinary {
		query := parsed.Query()
		if query.Get(preparedBinaryParam) == "" {
			query.Set(preparedBinaryParam, "yes")
			parsed.RawQuery = query.Encode()
			target.DSN = parsed.String()
		}
	}
	return target
}

func keywordValue(dsn, key string) string {
	prefix := key + "="
	for _, token := range strings.Fields(dsn) {
		if value, ok := strings.CutPrefix(token, prefix); ok {
			return strings.Trim(value, `"'`)
		}
	}
	return ""
}

// formatDBQueryForTrace collapses whitespace so multi-line SQL reads as one
// line in span attributes, and caps the length.
func formatDBQueryForTrace(query string) string {
	normalized := strings.Join(strings.Fields(query), " ")
	if len(normalized) <= maxTracedQueryLength {
		return normalized
	}
	return normalized[:maxTracedQueryLength] + "..."
}
