package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/AnshRaj112/dashfi-server/internal/models"
	"github.com/AnshRaj112/dashfi-server/pkg/logging"
)

// requestTimeout bounds each collection read.
const requestTimeout = 5 * time.Second

// DashboardSource is the read side of the dashboard collections.
type DashboardSource interface {
	KPIs(ctx context.Context) ([]models.KPI, error)
	Products(ctx context.Context) ([]models.Product, error)
	Transactions(ctx context.Context) ([]models.Transaction, error)
}

// ErrorResponse is the body of every failed read.
type ErrorResponse struct {
	Message string `json:"message"`
}

// Dashboard serves the KPI, product and transaction collections.
type Dashboard struct {
	source DashboardSource
	logger *logging.Logger
}

func NewDashboard(source DashboardSource, logger *logging.Logger) *Dashboard {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Dashboard{source: source, logger: logger}
}

// GetKPIs handles GET /kpi/kpis
func (h *Dashboard) GetKPIs(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	kpis, err := h.source.KPIs(ctx)
	h.respond(w, r, kpis, err)
}

// GetProducts handles GET /products/products
func (h *Dashboard) GetProducts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	products, err := h.source.Products(ctx)
	h.respond(w, r, products, err)
}

// GetTransactions handles GET /transaction/transactions
func (h *Dashboard) GetTransactions(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	transactions, err := h.source.Transactions(ctx)
	h.respond(w, r, transactions, err)
}

// respond writes body as JSON, or a 404 with the error message as the
// dashboard client expects for failed finds.
func (h *Dashboard) respond(w http.ResponseWriter, r *http.Request, body any, err error) {
	w.Header().Set("Content-Type", "application/json")
	if err != nil {
		h.logger.Error("dashboard read failed", "path", r.URL.Path, "error", err)
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(ErrorResponse{Message: err.Error()})
		return
	}
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(body)
}
