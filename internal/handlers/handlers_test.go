package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/avibhor77/rent-sub001/internal/handlers"
	"github.com/avibhor77/rent-sub001/internal/health"
	routerpkg "github.com/avibhor77/rent-sub001/internal/http"
	"github.com/avibhor77/rent-sub001/internal/models"
	"github.com/avibhor77/rent-sub001/internal/services"
	"github.com/avibhor77/rent-sub001/internal/store"
	"github.com/avibhor77/rent-sub001/internal/timeutil"
)

func f64(v float64) *float64 { return &v }

func newTestStore() *store.MemoryStore {
	return store.NewMemoryStoreFromDataset(&store.Dataset{
		TenantConfigs: []*models.TenantConfig{
			{Tenant: "A-88 G", Name: "Rakesh Sharma", Floor: models.FloorGround, BaseRent: 26000, Maintenance: 500},
			{Tenant: "A-206", Name: "Mohan Lal", Floor: models.FloorA206, BaseRent: 12000, Maintenance: 300},
		},
		MeterReadings: []*models.MeterReading{
			{Month: "August 25", MainMeter: 45210, GroundFloorConsumed: f64(352)},
		},
		RentRecords: []*models.RentRecord{
			{Month: "August 25", Tenant: "A-88 G", Name: "Rakesh Sharma", Floor: models.FloorGround, BaseRent: 26000, Maintenance: 500, EnergyCharges: 3520, TotalRent: 30020, Status: models.StatusNotPaid},
		},
	})
}

func newRouterFor(s store.Store, cacheEnabled bool) *mux.Router {
	cmp := timeutil.Comparer{Order: timeutil.OrderLexicographic}
	charges := services.NewChargeService(s)
	rent := services.NewRentService(s, charges)

	return routerpkg.NewRouter(
		handlers.NewDashboardHandler(services.NewDashboardService(s, cmp), cacheEnabled),
		handlers.NewRentHandler(rent, cacheEnabled),
		handlers.NewTenantHandler(rent, cacheEnabled),
		handlers.NewMeterHandler(rent, charges),
		handlers.NewReportHandler(services.NewReportService(s, cmp, "August 25")),
		handlers.NewHealthHandler(health.NewHealthChecker(s)),
	)
}

func newTestRouter() *mux.Router {
	return newRouterFor(newTestStore(), false)
}

func doJSON(t *testing.T, router *mux.Router, method, path string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		assert.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	var payload map[string]interface{}
	if rr.Header().Get("Content-Type") == "application/json" {
		json.Unmarshal(rr.Body.Bytes(), &payload)
	}
	return rr, payload
}

func TestDashboardDataRequiresMonth(t *testing.T) {
	router := newTestRouter()

	rr, payload := doJSON(t, router, http.MethodGet, "/api/dashboard-data", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, false, payload["success"])
}

func TestDashboardData(t *testing.T) {
	router := newTestRouter()

	rr, payload := doJSON(t, router, http.MethodGet, "/api/dashboard-data?month=August+25", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, true, payload["success"])
	assert.Equal(t, "August 25", payload["month"])

	data := payload["data"].(map[string]interface{})
	assert.Len(t, data["tenants"], 2)
	summary := data["summary"].(map[string]interface{})
	assert.Equal(t, summary["expected"].(float64)-summary["collected"].(float64), summary["pending"])
}

func TestMarkPaymentPaid(t *testing.T) {
	router := newTestRouter()

	rr, payload := doJSON(t, router, http.MethodPost, "/api/mark-payment-paid",
		models.MarkPaidRequest{Tenant: "A-88 G", Month: "August 25"})
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, true, payload["success"])

	// Visible on the next read.
	_, payload = doJSON(t, router, http.MethodGet, "/api/rent-data", nil)
	records := payload["data"].([]interface{})
	rec := records[0].(map[string]interface{})
	assert.Equal(t, models.StatusPaid, rec["status"])
	assert.Equal(t, 30020.0, rec["totalRent"])
}

func TestMarkPaymentPaidNotFound(t *testing.T) {
	router := newTestRouter()

	rr, payload := doJSON(t, router, http.MethodPost, "/api/mark-payment-paid",
		models.MarkPaidRequest{Tenant: "A-206", Month: "August 25"})
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, false, payload["success"])
}

func TestAdjustRentNotFound(t *testing.T) {
	router := newTestRouter()

	rr, _ := doJSON(t, router, http.MethodPost, "/api/adjust-rent",
		models.AdjustRentRequest{Tenant: "A-88 G", Month: "October 25", Amount: 30000})
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestUpsertRentRecordCreates(t *testing.T) {
	router := newTestRouter()

	rr, _ := doJSON(t, router, http.MethodPost, "/api/upsert-rent-record",
		models.UpsertRentRecordRequest{Tenant: "A-206", Month: "August 25"})
	assert.Equal(t, http.StatusOK, rr.Code)

	// The created record now accepts mark-paid.
	rr, _ = doJSON(t, router, http.MethodPost, "/api/mark-payment-paid",
		models.MarkPaidRequest{Tenant: "A-206", Month: "August 25"})
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestUpdateTenantConfigRoundTrip(t *testing.T) {
	router := newTestRouter()

	rent := 27500.0
	rr, _ := doJSON(t, router, http.MethodPost, "/api/update-tenant-config",
		models.UpdateTenantConfigRequest{Tenant: "A-88 G", Updates: models.TenantConfigUpdate{BaseRent: &rent}})
	assert.Equal(t, http.StatusOK, rr.Code)

	_, payload := doJSON(t, router, http.MethodGet, "/api/tenant-configs", nil)
	configs := payload["data"].([]interface{})
	var cfg map[string]interface{}
	for _, c := range configs {
		if c.(map[string]interface{})["tenant"] == "A-88 G" {
			cfg = c.(map[string]interface{})
		}
	}
	assert.NotNil(t, cfg)
	assert.Equal(t, 27500.0, cfg["baseRent"])
	assert.Equal(t, "Rakesh Sharma", cfg["name"])
	assert.Equal(t, 500.0, cfg["maintenance"])
}

func TestUpdateMeterReadingsNotFound(t *testing.T) {
	router := newTestRouter()

	rr, _ := doJSON(t, router, http.MethodPost, "/api/update-meter-readings",
		models.UpdateMeterReadingsRequest{Month: "January 99"})
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestEnergyChargesEndpoint(t *testing.T) {
	router := newTestRouter()

	rr, payload := doJSON(t, router, http.MethodGet, "/api/energy-charges?month=August+25", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	data := payload["data"].(map[string]interface{})
	assert.Equal(t, 3520.0, data["A-88 G"])

	// No meter data: success with an empty mapping.
	rr, payload = doJSON(t, router, http.MethodGet, "/api/energy-charges?month=September+25", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, payload["data"])
}

func TestNextMonthEndpoint(t *testing.T) {
	router := newTestRouter()

	rr, payload := doJSON(t, router, http.MethodGet, "/api/next-month", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "September 25", payload["data"])
}

func TestMonthExistsEndpoint(t *testing.T) {
	router := newTestRouter()

	rr, payload := doJSON(t, router, http.MethodGet, "/api/month-exists/August%2025", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, true, payload["exists"])

	rr, payload = doJSON(t, router, http.MethodGet, "/api/month-exists/March%2025", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, false, payload["exists"])
}

func TestPaymentReportEndpoint(t *testing.T) {
	router := newTestRouter()

	rr, payload := doJSON(t, router, http.MethodGet, "/api/payment-report?period=ytd", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	data := payload["data"].(map[string]interface{})
	assert.Equal(t, "ytd", data["period"])

	rr, _ = doJSON(t, router, http.MethodGet, "/api/payment-report?period=bogus", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestPaymentReportPDFEndpoint(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/payment-report/pdf?period=ytd", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/pdf", rr.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(rr.Body.Bytes(), []byte("%PDF")))
}

func TestReadiness(t *testing.T) {
	router := newTestRouter()

	rr, _ := doJSON(t, router, http.MethodGet, "/readyz", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestReadinessFlipsAfterLoad(t *testing.T) {
	seed := filepath.Join(t.TempDir(), "seed.json")
	assert.NoError(t, os.WriteFile(seed, []byte(`{"rentRecords":[],"tenantConfigs":[],"meterReadings":[]}`), 0o644))

	router := newRouterFor(store.NewMemoryStore(time.Second, seed), false)

	// Nothing has touched the store yet, so it reports not ready.
	rr, _ := doJSON(t, router, http.MethodGet, "/readyz", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)

	// The first data access waits for the seed load to finish.
	rr, _ = doJSON(t, router, http.MethodGet, "/api/rent-data", nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	rr, _ = doJSON(t, router, http.MethodGet, "/readyz", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestReadinessStaysDownOnFailedLoad(t *testing.T) {
	router := newRouterFor(store.NewMemoryStore(time.Second, filepath.Join(t.TempDir(), "missing.json")), false)

	doJSON(t, router, http.MethodGet, "/api/rent-data", nil)

	rr, _ := doJSON(t, router, http.MethodGet, "/readyz", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
}
