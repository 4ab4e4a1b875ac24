package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"

	"github.com/avibhor77/rent-sub001/internal/cache"
	"github.com/avibhor77/rent-sub001/internal/models"
)

func TestDashboardCacheInvalidatedOnMarkPaid(t *testing.T) {
	mr := miniredis.RunT(t)
	assert.NoError(t, cache.Init(mr.Addr(), "", time.Minute))
	defer cache.Close()

	router := newRouterFor(newTestStore(), true)

	// First read renders the dashboard and caches the envelope.
	rr, _ := doJSON(t, router, http.MethodGet, "/api/dashboard-data?month=August+25", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, mr.Exists("dashboard:August 25"))

	// Repeat reads come from the cache: plant a marker payload and make
	// sure it is what gets served.
	assert.NoError(t, mr.Set("dashboard:August 25", `{"success":true,"marker":"cached"}`))
	rr, payload := doJSON(t, router, http.MethodGet, "/api/dashboard-data?month=August+25", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "cached", payload["marker"])

	// Marking a payment drops every cached dashboard.
	rr, _ = doJSON(t, router, http.MethodPost, "/api/mark-payment-paid",
		models.MarkPaidRequest{Tenant: "A-88 G", Month: "August 25"})
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.False(t, mr.Exists("dashboard:August 25"))

	// The next read rebuilds from the store and reflects the payment.
	rr, payload = doJSON(t, router, http.MethodGet, "/api/dashboard-data?month=August+25", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	data := payload["data"].(map[string]interface{})
	summary := data["summary"].(map[string]interface{})
	assert.Equal(t, 30020.0, summary["collected"])
	assert.True(t, mr.Exists("dashboard:August 25"))
}

func TestDashboardCacheInvalidatedOnUpsert(t *testing.T) {
	mr := miniredis.RunT(t)
	assert.NoError(t, cache.Init(mr.Addr(), "", time.Minute))
	defer cache.Close()

	router := newRouterFor(newTestStore(), true)

	doJSON(t, router, http.MethodGet, "/api/dashboard-data?month=August+25", nil)
	assert.True(t, mr.Exists("dashboard:August 25"))

	rr, _ := doJSON(t, router, http.MethodPost, "/api/upsert-rent-record",
		models.UpsertRentRecordRequest{Tenant: "A-206", Month: "August 25"})
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.False(t, mr.Exists("dashboard:August 25"))
}
