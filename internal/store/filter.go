package store

import "strings"

// MatchFold is the case-insensitive string match used by every filter site,
// kept in one place so role and category filtering behave identically.
func MatchFold(value, filter string) bool {
	return strings.EqualFold(value, filter)
}

// Truncate keeps the first limit elements. A nil or negative limit applies
// no truncation; callers translate malformed query values to nil upstream,
// so a malformed limit is ignored rather than erroring.
func Truncate[T any](items []T, limit *int) []T {
	if limit == nil || *limit < 0 || *limit >= len(items) {
		return items
	}
	return items[:*limit]
}
