package routes

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/AnshRaj112/dashfi-server/internal/config"
	"github.com/AnshRaj112/dashfi-server/internal/handlers"
	"github.com/AnshRaj112/dashfi-server/internal/metrics"
	"github.com/AnshRaj112/dashfi-server/internal/middleware"
	"github.com/AnshRaj112/dashfi-server/internal/origin"
	"github.com/AnshRaj112/dashfi-server/pkg/logging"
)

// Deps are the collaborators the router wires together.
type Deps struct {
	Config    *config.Config
	Policy    *origin.Policy
	Dashboard *handlers.Dashboard
	Metrics   *metrics.HTTPMetrics
	Logger    *logging.Logger
}

// NewRouter builds the chi router: request id, access log, panic recovery,
// security headers and the origin gate run before any route.
func NewRouter(d Deps) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog(d.Logger, d.Config.TrustProxy, d.Metrics))
	r.Use(chimw.Recoverer)
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.CORS(d.Policy, middleware.CORSOptions{
		AllowedMethods: d.Config.AllowedMethods,
		AllowedHeaders: d.Config.AllowedHeaders,
		MaxAge:         10 * time.Minute,
		Observer:       d.Metrics,
	}))

	SetupRoutes(r, d)
	return r
}

// SetupRoutes mounts the dashboard collections under the paths the client uses.
func SetupRoutes(r chi.Router, d Deps) {
	r.Get("/health", handlers.Health)
	r.Method(http.MethodGet, "/metrics", d.Metrics.Handler())

	r.Route("/kpi", func(r chi.Router) {
		r.Get("/kpis", d.Dashboard.GetKPIs)
	})
	r.Route("/products", func(r chi.Router) {
		r.Get("/products", d.Dashboard.GetProducts)
	})
	r.Route("/transaction", func(r chi.Router) {
		r.Get("/transactions", d.Dashboard.GetTransactions)
	})

	// Preflights never get here; this covers bare OPTIONS requests.
	r.Options("/*", handlers.Options(d.Config.AllowedMethods))
}
