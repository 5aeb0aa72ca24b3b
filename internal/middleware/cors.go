package middleware

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/AnshRaj112/dashfi-server/internal/origin"
)

// OriginObserver records origin decisions, e.g. as metrics.
type OriginObserver interface {
	ObserveOrigin(decision, reason string)
}

// CORSOptions carries the headers advertised on preflight responses.
type CORSOptions struct {
	AllowedMethods []string
	AllowedHeaders []string
	MaxAge         time.Duration
	Observer       OriginObserver
}

// corsRejection is the body sent to denied origins.
const corsRejection = "Not allowed by CORS"

// CORS gates every request on the origin policy. Allowed origins get the
// request Origin echoed back with credentials; preflights are answered with
// 200 and the configured methods and headers. Requests without an Origin pass
// through untouched. Denied origins get a 403 and no CORS headers.
func CORS(policy *origin.Policy, opts CORSOptions) func(http.Handler) http.Handler {
	methods := strings.Join(opts.AllowedMethods, ", ")
	headers := strings.Join(opts.AllowedHeaders, ", ")
	maxAge := ""
	if opts.MaxAge > 0 {
		maxAge = strconv.Itoa(int(opts.MaxAge.Seconds()))
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqOrigin := r.Header.Get("Origin")
			decision, reason := policy.Evaluate(reqOrigin)
			if opts.Observer != nil {
				opts.Observer.ObserveOrigin(decision.String(), string(reason))
			}

			if decision == origin.Deny {
				w.Header().Add("Vary", "Origin")
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(map[string]string{"message": corsRejection})
				return
			}

			if reqOrigin == "" {
				next.ServeHTTP(w, r)
				return
			}

			h := w.Header()
			h.Set("Access-Control-Allow-Origin", reqOrigin)
			h.Set("Access-Control-Allow-Credentials", "true")
			h.Add("Vary", "Origin")

			if isPreflight(r) {
				if methods != "" {
					h.Set("Access-Control-Allow-Methods", methods)
				}
				if headers != "" {
					h.Set("Access-Control-Allow-Headers", headers)
				}
				if maxAge != "" {
					h.Set("Access-Control-Max-Age", maxAge)
				}
				h.Set("Content-Length", "0")
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func isPreflight(r *http.Request) bool {
	return r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != ""
}
