package middleware

import (
	"net/http"
	"strconv"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/AnshRaj112/dashfi-server/pkg/clientip"
	"github.com/AnshRaj112/dashfi-server/pkg/logging"
)

// RequestObserver records per-request metrics.
type RequestObserver interface {
	ObserveRequest(method, status string, seconds float64)
}

// AccessLog writes one structured line per request with the fields of the
// Apache common log format, and feeds the observer if one is given.
func AccessLog(logger *logging.Logger, trustProxy bool, observer RequestObserver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			elapsed := time.Since(start)
			if observer != nil {
				observer.ObserveRequest(r.Method, strconv.Itoa(status), elapsed.Seconds())
			}
			logger.Info("request",
				"remote_addr", clientip.RealClientIP(r, trustProxy),
				"method", r.Method,
				"url", r.URL.RequestURI(),
				"proto", r.Proto,
				"status", status,
				"bytes", ww.BytesWritten(),
				"duration_ms", elapsed.Milliseconds(),
				"request_id", GetRequestID(r.Context()),
			)
		})
	}
}
