package validators

import (
	"net/http"
	"strconv"
	"strings"
)

// Query parsing is deliberately tolerant: a malformed value is treated the
// same as an absent one, never a request failure.

// QueryString returns the first non-empty value among the given keys.
func QueryString(r *http.Request, keys ...string) *string {
	for _, key := range keys {
		if raw := strings.TrimSpace(r.URL.Query().Get(key)); raw != "" {
			return &raw
		}
	}
	return nil
}

// QueryInt parses the first non-empty value among the given keys as an
// integer, returning nil when absent or unparsable.
func QueryInt(r *http.Request, keys ...string) *int {
	raw := QueryString(r, keys...)
	if raw == nil {
		return nil
	}
	value, err := strconv.Atoi(*raw)
	if err != nil {
		return nil
	}
	return &value
}

// QueryLimit parses the limit parameter. Negative values are ignored like
// malformed ones; zero is a valid limit and truncates to nothing.
func QueryLimit(r *http.Request) *int {
	value := QueryInt(r, "limit")
	if value == nil || *value < 0 {
		return nil
	}
	return value
}

// QueryBoolFlag reports whether any of the given keys carries a value that
// parses as true. Absent, false and unparsable values all read as false.
func QueryBoolFlag(r *http.Request, keys ...string) bool {
	raw := QueryString(r, keys...)
	if raw == nil {
		return false
	}
	value, err := strconv.ParseBool(strings.ToLower(*raw))
	return err == nil && value
}
