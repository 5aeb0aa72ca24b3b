package handlers

import (
	"net/http"
	"strings"
)

// Health answers liveness checks.
func Health(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("OK"))
}

// Options answers OPTIONS requests that are not CORS preflights. Preflights
// are completed by the CORS middleware before routing.
func Options(methods []string) http.HandlerFunc {
	allow := strings.Join(methods, ", ")
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Allow", allow)
		w.WriteHeader(http.StatusOK)
	}
}
