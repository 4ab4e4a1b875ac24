package http

import (
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/avibhor77/rent-sub001/internal/handlers"
)

func NewRouter(
	dashboardHandler *handlers.DashboardHandler,
	rentHandler *handlers.RentHandler,
	tenantHandler *handlers.TenantHandler,
	meterHandler *handlers.MeterHandler,
	reportHandler *handlers.ReportHandler,
	healthHandler *handlers.HealthHandler,
) *mux.Router {
	r := mux.NewRouter()

	// Probes and metrics
	r.HandleFunc("/healthz", healthHandler.BasicHealth).Methods("GET")
	r.HandleFunc("/readyz", healthHandler.ReadinessHealth).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()

	// Dashboard and raw data
	api.HandleFunc("/dashboard-data", dashboardHandler.GetDashboardData).Methods("GET")
	api.HandleFunc("/rent-data", rentHandler.GetRentData).Methods("GET")
	api.HandleFunc("/meter-data", meterHandler.GetMeterData).Methods("GET")
	api.HandleFunc("/tenant-configs", tenantHandler.GetTenantConfigs).Methods("GET")
	api.HandleFunc("/energy-charges", meterHandler.GetEnergyCharges).Methods("GET")

	// Mutations
	api.HandleFunc("/mark-payment-paid", rentHandler.MarkPaymentPaid).Methods("POST")
	api.HandleFunc("/adjust-rent", rentHandler.AdjustRent).Methods("POST")
	api.HandleFunc("/upsert-rent-record", rentHandler.UpsertRentRecord).Methods("POST")
	api.HandleFunc("/update-tenant-config", tenantHandler.UpdateTenantConfig).Methods("POST")
	api.HandleFunc("/update-meter-readings", meterHandler.UpdateMeterReadings).Methods("POST")
	api.HandleFunc("/update-a206-meter", meterHandler.UpdateA206Meter).Methods("POST")

	// Reports and month helpers
	api.HandleFunc("/payment-report", reportHandler.GetPaymentReport).Methods("GET")
	api.HandleFunc("/payment-report/pdf", reportHandler.GetPaymentReportPDF).Methods("GET")
	api.HandleFunc("/next-month", reportHandler.GetNextMonth).Methods("GET")
	api.HandleFunc("/month-exists/{month}", reportHandler.GetMonthExists).Methods("GET")
	api.HandleFunc("/health/detailed", healthHandler.DetailedHealth).Methods("GET")

	return r
}
