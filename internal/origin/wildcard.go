package origin

import (
	"net/url"
	"strings"
)

// VercelPreviewSuffix matches preview deployments such as
// https://dashfi-frontend-git-preview123.vercel.app.
const VercelPreviewSuffix = ".vercel.app"

// MatchWildcard reports whether the origin's hostname ends with suffix.
// Origins that do not parse never match. The check is anchored at the end
// of the hostname, so "x.vercel.app.attacker.io" is rejected.
func MatchWildcard(origin, suffix string) bool {
	if suffix == "" {
		return false
	}
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	host := strings.ToLower(u.Hostname())
	if host == "" {
		return false
	}
	return strings.HasSuffix(host, strings.ToLower(suffix))
}
