package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnshRaj112/dashfi-server/internal/models"
)

type fakeSource struct {
	kpis         []models.KPI
	products     []models.Product
	transactions []models.Transaction
	err          error
}

func (f *fakeSource) KPIs(ctx context.Context) ([]models.KPI, error) {
	return f.kpis, f.err
}

func (f *fakeSource) Products(ctx context.Context) ([]models.Product, error) {
	return f.products, f.err
}

func (f *fakeSource) Transactions(ctx context.Context) ([]models.Transaction, error) {
	return f.transactions, f.err
}

func TestGetKPIs(t *testing.T) {
	h := NewDashboard(&fakeSource{kpis: []models.KPI{{TotalProfit: 21224, TotalRevenue: 28300}}}, nil)

	rec := httptest.NewRecorder()
	h.GetKPIs(rec, httptest.NewRequest(http.MethodGet, "/kpi/kpis", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, 212.24, body[0]["totalProfit"])
	assert.Equal(t, 283.0, body[0]["totalRevenue"])
}

func TestGetProductsEmpty(t *testing.T) {
	h := NewDashboard(&fakeSource{products: []models.Product{}}, nil)

	rec := httptest.NewRecorder()
	h.GetProducts(rec, httptest.NewRequest(http.MethodGet, "/products/products", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestGetTransactions(t *testing.T) {
	h := NewDashboard(&fakeSource{transactions: []models.Transaction{{Buyer: "Ada", Amount: 1999}}}, nil)

	rec := httptest.NewRecorder()
	h.GetTransactions(rec, httptest.NewRequest(http.MethodGet, "/transaction/transactions", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, "Ada", body[0]["buyer"])
	assert.Equal(t, 19.99, body[0]["amount"])
}

func TestReadFailureIs404(t *testing.T) {
	h := NewDashboard(&fakeSource{err: errors.New("find products: connection refused")}, nil)

	rec := httptest.NewRecorder()
	h.GetProducts(rec, httptest.NewRequest(http.MethodGet, "/products/products", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"find products: connection refused"}`, rec.Body.String())
}

func TestHealthAndOptions(t *testing.T) {
	rec := httptest.NewRecorder()
	Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())

	rec = httptest.NewRecorder()
	Options([]string{"GET", "OPTIONS"})(rec, httptest.NewRequest(http.MethodOptions, "/kpi/kpis", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "GET, OPTIONS", rec.Header().Get("Allow"))
}
