package origin

import "strings"

// Normalize strips the trailing slash from an origin so "https://a.com/" and
// "https://a.com" compare equal. An empty origin is returned as is.
// Every trailing slash is removed, not just one, so Normalize is idempotent.
func Normalize(origin string) string {
	return strings.TrimRight(origin, "/")
}
