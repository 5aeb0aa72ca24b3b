package config

import (
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/AnshRaj112/dashfi-server/internal/origin"
)

// defaultMongoDatabase matches mongoose, which uses "test" when the URI names no database.
const defaultMongoDatabase = "test"

type Config struct {
	Port          string
	MongoURL      string
	MongoDatabase string
	RedisURL      string        // empty disables the read cache
	CacheTTL      time.Duration // lifetime of cached collection reads
	Environment   string        // NODE_ENV: production, development, etc.
	LogLevel      string
	TrustProxy    bool // take the client IP from X-Forwarded-For (behind Render/Vercel)

	// CORS
	AllowedOrigins []string // defaults + FRONTEND_URL(_2,_3) + EXTRA_CORS_ORIGINS, normalized
	WildcardSuffix string   // hostname suffix for preview deployments
	AllowedMethods []string
	AllowedHeaders []string
}

// Load reads configuration from the environment. It never fails: missing
// variables fall back to defaults.
func Load() *Config {
	return LoadFrom(os.Getenv)
}

// LoadFrom is Load with an explicit lookup, used by tests.
func LoadFrom(lookup func(string) string) *Config {
	getEnv := func(key, defaultValue string) string {
		if value := strings.TrimSpace(lookup(key)); value != "" {
			return value
		}
		return defaultValue
	}

	mongoURL := getEnv("MONGO_URL", getEnv("MONGODB_URI", "mongodb://localhost:27017/dashfi"))

	return &Config{
		Port:           getEnv("PORT", "9000"),
		MongoURL:       mongoURL,
		MongoDatabase:  getEnv("MONGO_DB", databaseFromURI(mongoURL)),
		RedisURL:       getEnv("REDIS_URL", ""),
		CacheTTL:       parseDuration(getEnv("CACHE_TTL", ""), 5*time.Minute),
		Environment:    strings.ToLower(getEnv("NODE_ENV", "development")),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		TrustProxy:     parseBool(getEnv("TRUST_PROXY", "")),
		AllowedOrigins: origin.ResolveAllowList(lookup),
		WildcardSuffix: origin.VercelPreviewSuffix,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	}
}

// IsProduction returns true when NODE_ENV is "production".
func (c *Config) IsProduction() bool {
	return strings.ToLower(strings.TrimSpace(c.Environment)) == "production"
}

// Addr is the listen address for net/http.
func (c *Config) Addr() string {
	return ":" + c.Port
}

// databaseFromURI extracts the database name from mongodb://host/name?opts.
// The driver's own parser resolves SRV records, which Load must not do.
func databaseFromURI(uri string) string {
	u, err := url.Parse(uri)
	if err != nil {
		return defaultMongoDatabase
	}
	if name := strings.Trim(u.Path, "/"); name != "" {
		return name
	}
	return defaultMongoDatabase
}

func parseDuration(v string, def time.Duration) time.Duration {
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d < 0 {
		return def
	}
	return d
}

func parseBool(v string) bool {
	b, err := strconv.ParseBool(v)
	return err == nil && b
}
