package origin

import "strings"

// DefaultOrigins are the local dev servers that are always allowed
// (vite dev, CRA/next dev, vite preview).
var DefaultOrigins = []string{
	"http://localhost:5173",
	"http://localhost:3000",
	"http://localhost:4173",
}

// FrontendURLKeys name env vars holding one origin each.
var FrontendURLKeys = []string{"FRONTEND_URL", "FRONTEND_URL_2", "FRONTEND_URL_3"}

// ExtraOriginsKey names the comma-separated list of additional origins.
const ExtraOriginsKey = "EXTRA_CORS_ORIGINS"

// ResolveAllowList assembles the exact-match allow-list from the defaults,
// the FRONTEND_URL variables and EXTRA_CORS_ORIGINS. Entries are trimmed,
// normalized and de-duplicated; order of first appearance is kept.
// lookup is usually os.Getenv. Missing variables contribute nothing.
func ResolveAllowList(lookup func(string) string) []string {
	candidates := append([]string{}, DefaultOrigins...)
	if lookup != nil {
		for _, key := range FrontendURLKeys {
			candidates = append(candidates, lookup(key))
		}
		candidates = append(candidates, SplitList(lookup(ExtraOriginsKey))...)
	}

	seen := make(map[string]bool, len(candidates))
	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		c = Normalize(strings.TrimSpace(c))
		if c == "" {
			continue
		}
		key := strings.ToLower(c)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, c)
	}
	return out
}

// SplitList splits a comma-separated value, trimming each entry and dropping blanks.
func SplitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
