package origin

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnshRaj112/dashfi-server/pkg/logging"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"https://a.com/", "https://a.com"},
		{"https://a.com", "https://a.com"},
		{"http://localhost:5173/", "http://localhost:5173"},
		{"", ""},
		{"https://a.com//", "https://a.com"},
	}
	for _, tt := range tests {
		got := Normalize(tt.in)
		assert.Equal(t, tt.want, got, "Normalize(%q)", tt.in)
		assert.Equal(t, got, Normalize(got), "Normalize must be idempotent for %q", tt.in)
	}
}

func TestResolveAllowListDefaultsOnly(t *testing.T) {
	got := ResolveAllowList(envMap(nil))
	assert.Equal(t, DefaultOrigins, got)

	assert.Equal(t, DefaultOrigins, ResolveAllowList(nil))
}

func TestResolveAllowListFromEnv(t *testing.T) {
	got := ResolveAllowList(envMap(map[string]string{
		"FRONTEND_URL":       "https://dashfi-frontend.vercel.app/",
		"FRONTEND_URL_3":     "  https://dash.example.com ",
		"EXTRA_CORS_ORIGINS": "https://x.com, https://y.com, ,http://localhost:3000/",
	}))

	assert.Equal(t, []string{
		"http://localhost:5173",
		"http://localhost:3000",
		"http://localhost:4173",
		"https://dashfi-frontend.vercel.app",
		"https://dash.example.com",
		"https://x.com",
		"https://y.com",
	}, got)
}

func TestSplitList(t *testing.T) {
	assert.Nil(t, SplitList(""))
	assert.Nil(t, SplitList("   "))
	assert.Equal(t, []string{"a", "b"}, SplitList(" a ,, b ,"))
}

func TestMatchWildcard(t *testing.T) {
	tests := []struct {
		origin string
		want   bool
	}{
		{"https://dashfi-frontend-git-preview123.vercel.app", true},
		{"https://DASHFI.Vercel.App", true},
		{"https://x.vercel.app:443", true},
		{"https://vercel.app", false},
		{"https://notvercel.app", false},
		{"https://dashfi-frontend.vercel.app.attacker.io", false},
		{"https://notvercel.app.evil.com", false},
		{"dashfi.vercel.app", false},
		{"http://[::1", false},
		{"null", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MatchWildcard(tt.origin, VercelPreviewSuffix), "MatchWildcard(%q)", tt.origin)
	}
	assert.False(t, MatchWildcard("https://a.vercel.app", ""))
}

func TestPolicyEvaluate(t *testing.T) {
	origins := ResolveAllowList(envMap(map[string]string{
		"FRONTEND_URL":       "https://dashfi-frontend.vercel.app",
		"EXTRA_CORS_ORIGINS": "https://x.com, https://y.com",
	}))
	p := NewPolicy(origins, VercelPreviewSuffix, nil)

	tests := []struct {
		name     string
		origin   string
		decision Decision
		reason   Reason
	}{
		{"no origin", "", Allow, ReasonNoOrigin},
		{"default local", "http://localhost:5173", Allow, ReasonAllowList},
		{"trailing slash", "https://dashfi-frontend.vercel.app/", Allow, ReasonAllowList},
		{"extra origin x", "https://x.com", Allow, ReasonAllowList},
		{"extra origin y slash", "https://y.com/", Allow, ReasonAllowList},
		{"case insensitive", "HTTPS://X.COM", Allow, ReasonAllowList},
		{"preview deploy", "https://dashfi-frontend-git-preview123.vercel.app", Allow, ReasonWildcard},
		{"suffix smuggling", "https://dashfi-frontend.vercel.app.attacker.io", Deny, ReasonDenied},
		{"unknown", "https://evil.example.com", Deny, ReasonDenied},
		{"other port", "http://localhost:8080", Deny, ReasonDenied},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, r := p.Evaluate(tt.origin)
			assert.Equal(t, tt.decision, d)
			assert.Equal(t, tt.reason, r)
			assert.Equal(t, tt.decision, p.Decide(tt.origin))
		})
	}
}

func TestPolicyAllowsEveryResolvedOrigin(t *testing.T) {
	origins := ResolveAllowList(envMap(map[string]string{
		"FRONTEND_URL":       "https://app.example.com",
		"FRONTEND_URL_2":     "https://admin.example.com/",
		"EXTRA_CORS_ORIGINS": "https://x.com,https://y.com",
	}))
	p := NewPolicy(origins, "", nil)

	for _, o := range origins {
		assert.Equal(t, Allow, p.Decide(o), o)
		assert.Equal(t, Allow, p.Decide(o+"/"), o+"/")
	}
}

func TestPolicyDenyLogsOnce(t *testing.T) {
	var buf bytes.Buffer
	p := NewPolicy(DefaultOrigins, VercelPreviewSuffix, logging.NewWithWriter(&buf, "info"))

	require.Equal(t, Deny, p.Decide("https://evil.example.com"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], `"level":"WARN"`)
	assert.Contains(t, lines[0], `"msg":"origin rejected"`)
	assert.Contains(t, lines[0], `"origin":"https://evil.example.com"`)

	buf.Reset()
	p.Decide("http://localhost:3000")
	p.Decide("")
	p.Decide("https://preview.vercel.app")
	assert.Empty(t, buf.String())
}

func TestNewPolicyDedupes(t *testing.T) {
	p := NewPolicy([]string{"https://a.com", "https://a.com/", " ", "https://A.com"}, ".vercel.app", nil)
	assert.Equal(t, []string{"https://a.com"}, p.Origins())
	assert.Equal(t, ".vercel.app", p.Suffix())
}

func TestPolicyConcurrentUse(t *testing.T) {
	p := NewPolicy(DefaultOrigins, VercelPreviewSuffix, nil)

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if p.Decide("http://localhost:5173") != Allow {
					t.Error("expected allow")
				}
				if p.Decide("https://evil.example.com") != Deny {
					t.Error("expected deny")
				}
			}
		}()
	}
	wg.Wait()
}

func TestDecisionString(t *testing.T) {
	assert.Equal(t, "allow", Allow.String())
	assert.Equal(t, "deny", Deny.String())
}
